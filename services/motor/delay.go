// services/motor/delay.go
package motor

// Iterations computes the adaptive inter-tick delay as a countdown count:
// the knob reading plus a fixed floor is subtracted from counter until it
// goes negative. A higher reading means a larger decrement and so fewer
// iterations, making the wander ramp speed track the knob without a
// division on the embedded side (the MCU delay runs the subtraction loop
// verbatim; this closed form is iteration-exact).
//
// floor keeps the decrement positive at a zero reading, bounding the
// worst-case delay.
func Iterations(reading, floor uint8, counter uint16) uint16 {
	dec := uint16(reading) + uint16(floor)
	if dec == 0 {
		dec = 1
	}
	return counter/dec + 1
}
