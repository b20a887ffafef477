// services/motor/platform/delay.go
package platform

import "time"

// SleepDelay converts countdown iterations into a scheduler sleep. The
// inverse-proportionality contract is preserved (iterations already track
// the knob); only the per-iteration cost is a tuning knob. The 20µs
// default puts a full 256-tick pass around 0.3s at mid knob.
type SleepDelay struct {
	PerIteration time.Duration
}

func (d SleepDelay) Wait(iterations uint16) {
	per := d.PerIteration
	if per == 0 {
		per = 20 * time.Microsecond
	}
	time.Sleep(time.Duration(iterations) * per)
}

// NoDelay skips waiting entirely; tests use it to run passes at full speed.
type NoDelay struct{}

func (NoDelay) Wait(uint16) {}

// SpinDelay busy-waits instead of sleeping, for ports where the
// scheduler's sleep granularity is too coarse for per-tick delays.
type SpinDelay struct {
	// Spins per iteration; calibrate against the target clock.
	Spins uint32
}

//go:noinline
func spin(n uint32) uint32 {
	acc := n
	for i := uint32(0); i < n; i++ {
		acc ^= i
	}
	return acc
}

func (d SpinDelay) Wait(iterations uint16) {
	spins := d.Spins
	if spins == 0 {
		spins = 6
	}
	for i := uint16(0); i < iterations; i++ {
		spin(spins)
	}
}
