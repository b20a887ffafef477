// Package lcg is the 16-bit linear congruential generator the wander mode
// picks its targets from: state' = state*5 + 0x3333 (mod 2^16).
//
// The constants are load-bearing. With m = 2^16, a-1 = 4 is a multiple of 4
// and c = 0x3333 is odd, so the Hull-Dobell conditions hold and the sequence
// has full period: every 16-bit state is visited once per 65536 steps, and
// the high byte sweeps the whole 0..255 range. Do not substitute a
// different multiplier/increment pair.
package lcg

const increment = 0x3333

// Next advances the generator one step. The multiplier is realized as
// (s<<2)+s; uint16 arithmetic supplies the mod 2^16 wraparound.
func Next(s uint16) uint16 {
	return (s << 2) + s + increment
}

// High extracts the byte used for target selection.
func High(s uint16) uint8 {
	return uint8(s >> 8)
}

// Seed spreads an 8-bit sensor sample into the high byte of the state.
func Seed(sample uint8) uint16 {
	return uint16(sample) << 8
}
