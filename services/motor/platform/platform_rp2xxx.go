// services/motor/platform/platform_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"machine"
	"time"

	"spiro/services/motor"
)

// Default wiring for the Pico fan board:
//   GP26/ADC0: knob
//   GP3:       mode switch (pull-up; closed = direct)
//   GP0/PWM0A: motor drive
const (
	KnobPin   = machine.ADC0
	SwitchPin = machine.GP3
	MotorPin  = machine.GP0
)

// pwmSlice is the subset of machine.PWM the motor output needs.
type pwmSlice interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(ch uint8, value uint32)
}

// adcKnob left-justifies the 16-bit machine reading down to 8 bits.
type adcKnob struct {
	adc machine.ADC
}

func (k adcKnob) Sample() uint8 { return uint8(k.adc.Get() >> 8) }

// pwmMotor maps an 8-bit duty onto the slice's wrap value.
type pwmMotor struct {
	pwm pwmSlice
	ch  uint8
}

func (m pwmMotor) SetDuty(d uint8) {
	top := m.pwm.Top()
	m.pwm.Set(m.ch, uint32(d)*top/255)
}

// switchPin reads the mode switch. With the pull-up enabled an open
// switch floats high, selecting wander mode; closing it grounds the pin
// and selects direct mode.
type switchPin struct {
	pin machine.Pin
}

func (s switchPin) Wander() bool { return s.pin.Get() }

// DefaultHardware configures the default wiring. The PWM carrier runs at
// 25kHz, above the audible range.
func DefaultHardware() (motor.Hardware, error) {
	machine.InitADC()
	adc := machine.ADC{Pin: KnobPin}
	adc.Configure(machine.ADCConfig{})

	SwitchPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	pwm := machine.PWM0
	err := pwm.Configure(machine.PWMConfig{
		Period: uint64(time.Second) / 25000,
	})
	if err != nil {
		return motor.Hardware{}, err
	}
	ch, err := pwm.Channel(MotorPin)
	if err != nil {
		return motor.Hardware{}, err
	}

	return motor.Hardware{
		Knob:   adcKnob{adc: adc},
		Motor:  pwmMotor{pwm: pwm, ch: ch},
		Switch: switchPin{pin: SwitchPin},
		Delay:  SpinDelay{},
	}, nil
}
