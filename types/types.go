package types

// ---- Controller state (retained) ----

// Mode mirrors the physical mode switch.
type Mode string

const (
	ModeDirect Mode = "direct" // knob drives the duty cycle directly
	ModeWander Mode = "wander" // controller ramps between random targets
)

// MotorState is published retained at motor/state.
type MotorState struct {
	Duty   uint8 `json:"duty"`             // current output duty, 0..255
	Target uint8 `json:"target,omitempty"` // wander target; 0 in direct mode
	Mode   Mode  `json:"mode"`
	TS     int64 `json:"ts_ms"`
}

// PassEvent is published (non-retained) at motor/pass after each wander pass.
type PassEvent struct {
	From  uint8  `json:"from"`
	To    uint8  `json:"to"`
	Steps uint8  `json:"steps"` // unit steps emitted, |to-from|
	Ticks uint16 `json:"ticks"` // timing ticks spent (fixed per pass)
	TS    int64  `json:"ts_ms"`
}

// ---- Input values ----

type KnobValue struct {
	Raw uint8 `json:"raw"` // left-justified 8-bit reading
}

type SwitchValue struct {
	Wander bool `json:"wander"`
}

// ---- Discovery ----

// Info envelope each hardware point exposes (retained).
type Info struct {
	SchemaVersion int    `json:"schema_version"`
	Driver        string `json:"driver"`
	Detail        any    `json:"detail,omitempty"`
}

type KnobInfo struct {
	Pin     int    `json:"pin"`
	Bus     string `json:"bus,omitempty"`  // set for I2C-attached knobs
	Addr    uint16 `json:"addr,omitempty"` // I2C address, if any
	Channel uint8  `json:"channel,omitempty"`
}

type MotorInfo struct {
	Pin    int    `json:"pin"`
	FreqHz uint64 `json:"freq_hz,omitempty"`
	Top    uint16 `json:"top,omitempty"`
}

type SwitchInfo struct {
	Pin int `json:"pin"`
}

// ---- Configuration ----

// MotorConfig arrives retained on config/motor. Zero fields fall back to
// compiled defaults in services/motor.
type MotorConfig struct {
	MinDuty    uint8  `json:"min_duty"`    // lowest duty that keeps the motor turning
	Ticks      uint16 `json:"ticks"`       // timing ticks per wander pass
	DelayFloor uint8  `json:"delay_floor"` // added to the knob reading per tick
	Counter    uint16 `json:"counter"`     // countdown budget per tick
	WarmupMs   uint32 `json:"warmup_ms"`   // full-power kick-start duration
}

// ---- Generic replies ----

type OKReply struct {
	OK bool `json:"ok"`
}

type ErrorReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
