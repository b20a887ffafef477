//go:build !rp2040 && !rp2350

// Command simulate runs the fan controller on the host against fake
// hardware: the knob sweeps slowly, the mode switch starts in wander, and
// telemetry prints to stdout.
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"spiro/bus"
	"spiro/services/config"
	"spiro/services/motor"
	"spiro/services/motor/platform"
	"spiro/services/telemetry"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	b := bus.NewBus(64)

	cfgCtx := context.WithValue(ctx, config.CtxDeviceKey, "spiro")
	config.NewConfigService().Start(cfgCtx, b.NewConnection("config"))

	hw, knob, _, sw := platform.NewFakeHardware(platform.SleepDelay{})
	sw.Set(true)

	go telemetry.Run(ctx, b.NewConnection("telemetry"), os.Stdout)
	go motor.Run(ctx, b.NewConnection("motor"), hw, motor.Config{})

	// Sweep the knob so the wander ramp rate visibly changes.
	tick := time.NewTicker(3 * time.Second)
	defer tick.Stop()
	v := uint8(32)
	for {
		select {
		case <-ctx.Done():
			println("simulate: bye")
			return
		case <-tick.C:
			v += 48
			knob.Set(v)
		}
	}
}
