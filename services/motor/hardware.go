// services/motor/hardware.go
package motor

// Hardware boundary of the controller. Implementations live in the platform
// subpackage: machine-backed on rp2 builds, fakes on the host.

// Knob is the analog speed input. Sample blocks until the conversion
// completes and returns a left-justified 8-bit reading.
type Knob interface {
	Sample() uint8
}

// Motor is the drive output. SetDuty applies an 8-bit duty cycle
// immediately; it cannot fail and re-applying the same value is a no-op.
type Motor interface {
	SetDuty(duty uint8)
}

// ModeSwitch reports the physical mode switch: true selects wander mode,
// false selects direct knob-to-duty passthrough.
type ModeSwitch interface {
	Wander() bool
}

// TickDelay turns a countdown iteration count into an actual wait. The MCU
// implementation busy-waits; hosted implementations may sleep instead.
type TickDelay interface {
	Wait(iterations uint16)
}

// Hardware bundles the three inputs/outputs plus the delay strategy.
type Hardware struct {
	Knob   Knob
	Motor  Motor
	Switch ModeSwitch
	Delay  TickDelay
}
