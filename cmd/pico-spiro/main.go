//go:build rp2040 || rp2350

// Command pico-spiro: fan controller bring-up for RP2040/Pico.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./cmd/pico-spiro
//
// Wiring assumptions (edit in platform.DefaultHardware as needed):
// - Knob pot on GP26/ADC0.
// - Mode switch on GP3 (pull-up; closed = direct mode).
// - Motor PWM on GP0, 25kHz carrier.
// - Telemetry on UART0 at 115200.
package main

import (
	"context"
	"time"

	"spiro/bus"
	"spiro/services/config"
	"spiro/services/motor"
	"spiro/services/motor/platform"
	"spiro/services/telemetry"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("spiro: boot")

	hw, err := platform.DefaultHardware()
	if err != nil {
		println("spiro: hardware setup failed:", err.Error())
		return
	}

	b := bus.NewBus(16)
	ctx := context.Background()

	cfgCtx := context.WithValue(ctx, config.CtxDeviceKey, "spiro")
	config.NewConfigService().Start(cfgCtx, b.NewConnection("config"))

	if out, err := telemetry.UARTSink(115200); err == nil {
		go telemetry.Run(ctx, b.NewConnection("telemetry"), out)
	} else {
		println("spiro: telemetry uart unavailable:", err.Error())
	}

	// Kick-start: hold full power long enough to overcome static friction
	// before the control loop takes over.
	hw.Motor.SetDuty(motor.KickStartDuty)
	time.Sleep(time.Duration(motor.DefaultWarmupMs) * time.Millisecond)

	motor.Run(ctx, b.NewConnection("motor"), hw, motor.Config{})
}
