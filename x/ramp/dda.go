// Package ramp walks a duty cycle toward a target in unit steps using
// integer error accumulation (the DDA technique): the steps are spread
// evenly across a fixed number of timing ticks without any division.
package ramp

import "spiro/x/mathx"

// Step applies the duty after one unit move.
type Step func(duty uint8)

// Tick runs the inter-step delay. It is called once per tick, whether or
// not a step was emitted, so a pass always spans the same number of ticks.
type Tick func()

// DefaultTicks is the tick budget of one pass. Every pass takes the same
// number of ticks regardless of distance; short moves emit sparse steps,
// a full-range move emits nearly one step per tick.
const DefaultTicks = 255

// Run walks cur to target across ticks+1 ticks and returns the final duty
// (always target). ticks <= 0 snaps immediately.
//
// Accumulator bounds: magnitude is at most 2*255 and the error term stays
// within [-2*ticks, magnitude), so int16 suffices for any ticks <= 8191.
func Run(cur, target uint8, ticks int16, tick Tick, step Step) uint8 {
	if ticks <= 0 {
		if cur != target {
			step(target)
		}
		return target
	}

	dir := int16(1)
	if target < cur {
		dir = -1
	}
	mag := mathx.Abs(int16(target) - int16(cur))
	mag <<= 1 // doubled distance for rounding precision
	err := -ticks

	for t := ticks; t >= 0; t-- {
		err += mag
		if err >= 0 {
			err -= ticks << 1
			// The pass spans ticks+1 ticks, so the accumulator can ask
			// for one extra step on moves longer than ticks/2; stepping
			// stops at the target instead of overshooting it.
			if cur != target {
				cur = uint8(int16(cur) + dir)
				step(cur)
			}
		}
		tick()
	}
	return cur
}
