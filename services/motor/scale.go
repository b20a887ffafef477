// services/motor/scale.go
package motor

import (
	"spiro/x/mathx"
)

// Scaler maps a raw 8-bit reading affinely onto [Min, 255]. Below Min the
// PWM average voltage is too low to keep the motor turning, so the whole
// knob range is compressed into the band that actually spins it.
type Scaler struct {
	Min uint8
}

// Scale returns RoundDiv(in * (255-Min), 255) + Min. Pure integer
// arithmetic; the 16-bit intermediate cannot overflow (at most 255*255 + 127).
func (s Scaler) Scale(in uint8) uint8 {
	span := uint16(255 - s.Min)
	return uint8(mathx.RoundDiv(span*uint16(in), 255)) + s.Min
}
