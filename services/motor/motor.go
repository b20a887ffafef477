// services/motor/motor.go
package motor

import (
	"spiro/types"
	"spiro/x/lcg"
	"spiro/x/mathx"
	"spiro/x/ramp"
)

// Compiled defaults; config/motor overrides them at runtime.
const (
	// DefaultMinDuty corresponds to roughly 0.8V on a 3.3V rail, below
	// which the motor stalls. Calibrated empirically.
	DefaultMinDuty = 62

	DefaultTicks      = ramp.DefaultTicks
	DefaultDelayFloor = 10
	DefaultCounter    = 0x2000
	DefaultWarmupMs   = 250

	// KickStartDuty is the initial full-power level the firmware holds for
	// the warm-up interval so the motor overcomes static friction.
	KickStartDuty = 0xFF
)

// Config carries the tuning constants. Zero fields fall back to defaults.
type Config struct {
	MinDuty    uint8
	Ticks      uint16
	DelayFloor uint8
	Counter    uint16
	WarmupMs   uint32
}

func (c Config) withDefaults() Config {
	if c.MinDuty == 0 {
		c.MinDuty = DefaultMinDuty
	}
	if c.Ticks == 0 {
		c.Ticks = DefaultTicks
	}
	// Ramp arithmetic runs in int16; cap the tick budget well inside it.
	c.Ticks = mathx.Clamp(c.Ticks, 1, 1024)
	if c.DelayFloor == 0 {
		c.DelayFloor = DefaultDelayFloor
	}
	if c.Counter == 0 {
		c.Counter = DefaultCounter
	}
	if c.WarmupMs == 0 {
		c.WarmupMs = DefaultWarmupMs
	}
	return c
}

// FromTypes converts the bus config payload.
func FromTypes(tc types.MotorConfig) Config {
	return Config{
		MinDuty:    tc.MinDuty,
		Ticks:      tc.Ticks,
		DelayFloor: tc.DelayFloor,
		Counter:    tc.Counter,
		WarmupMs:   tc.WarmupMs,
	}
}

// Controller owns the three process-lifetime scalars (duty, generator
// state, scaler). The duty persists across mode switches; each wander
// pass gets a fresh target and accumulator.
type Controller struct {
	hw    Hardware
	cfg   Config
	scale Scaler

	duty uint8
	rnd  uint16
}

// NewController seeds the target generator from one knob sample (spread
// into the high bits) and starts at the kick-start duty, matching the
// power-on state the warm-up pulse leaves behind.
func NewController(hw Hardware, cfg Config) *Controller {
	cfg = cfg.withDefaults()
	return &Controller{
		hw:    hw,
		cfg:   cfg,
		scale: Scaler{Min: cfg.MinDuty},
		duty:  KickStartDuty,
		rnd:   lcg.Seed(hw.Knob.Sample()),
	}
}

func (c *Controller) Duty() uint8    { return c.duty }
func (c *Controller) Config() Config { return c.cfg }

// Retune applies new tuning constants between passes. The duty and
// generator state are left alone.
func (c *Controller) Retune(cfg Config) {
	c.cfg = cfg.withDefaults()
	c.scale = Scaler{Min: c.cfg.MinDuty}
}

// DirectOnce runs one direct-mode iteration: sample the knob, stir the
// sample into the generator state, scale and apply. Returns the new duty.
func (c *Controller) DirectOnce() uint8 {
	a := c.hw.Knob.Sample()
	c.rnd += uint16(a)
	c.duty = c.scale.Scale(a)
	c.hw.Motor.SetDuty(c.duty)
	return c.duty
}

// WanderOnce runs one full wander pass: advance the generator, pick the
// next target, and ramp to it with the adaptive delay after every tick.
// The pass is atomic; the mode switch is not re-read until it finishes.
func (c *Controller) WanderOnce() types.PassEvent {
	c.rnd = lcg.Next(c.rnd)
	target := c.scale.Scale(lcg.High(c.rnd))
	from := c.duty

	c.duty = ramp.Run(c.duty, target, int16(c.cfg.Ticks),
		c.tick,
		func(d uint8) { c.hw.Motor.SetDuty(d) })

	steps := mathx.Abs(int16(target) - int16(from))
	return types.PassEvent{
		From:  from,
		To:    target,
		Steps: uint8(steps),
		Ticks: c.cfg.Ticks + 1,
	}
}

// tick is the adaptive inter-step delay: a fresh knob sample sets the
// countdown decrement, so turning the knob changes ramp speed mid-pass.
func (c *Controller) tick() {
	r := c.hw.Knob.Sample()
	c.hw.Delay.Wait(Iterations(r, c.cfg.DelayFloor, c.cfg.Counter))
}
