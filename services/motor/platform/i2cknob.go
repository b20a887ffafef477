// services/motor/platform/i2cknob.go
package platform

import (
	"tinygo.org/x/drivers"
)

// I2CKnob samples a PCF8591-style 8-bit I2C ADC, for boards where the pot
// hangs off an expander instead of an MCU pin. The chip returns the
// previous conversion first, so every read fetches two bytes and keeps
// the second.
type I2CKnob struct {
	bus     drivers.I2C
	addr    uint16
	channel uint8
	ctrl    [1]byte
	buf     [2]byte
	last    uint8
}

const DefaultI2CKnobAddr = 0x48

func NewI2CKnob(bus drivers.I2C, addr uint16, channel uint8) *I2CKnob {
	if addr == 0 {
		addr = DefaultI2CKnobAddr
	}
	k := &I2CKnob{bus: bus, addr: addr, channel: channel & 0x03}
	k.ctrl[0] = k.channel
	return k
}

// Sample blocks on the bus transaction. The knob interface cannot report
// errors; a failed transaction repeats the last good reading, which the
// controller tolerates (one stale tick delay or duty sample).
func (k *I2CKnob) Sample() uint8 {
	if err := k.bus.Tx(k.addr, k.ctrl[:], k.buf[:]); err != nil {
		return k.last
	}
	k.last = k.buf[1]
	return k.last
}
