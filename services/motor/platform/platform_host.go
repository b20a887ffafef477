// services/motor/platform/platform_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"sync"

	"spiro/services/motor"
)

// Host fakes implementing the motor hardware interfaces, for tests and the
// simulator. All are safe for concurrent use so a test can turn the knob
// while the controller is mid-pass.

// FakeKnob returns a settable reading.
type FakeKnob struct {
	mu sync.RWMutex
	v  uint8
}

func NewFakeKnob(initial uint8) *FakeKnob { return &FakeKnob{v: initial} }

func (k *FakeKnob) Set(v uint8) {
	k.mu.Lock()
	k.v = v
	k.mu.Unlock()
}

func (k *FakeKnob) Sample() uint8 {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.v
}

// FakeMotor records every applied duty.
type FakeMotor struct {
	mu      sync.Mutex
	duty    uint8
	history []uint8
}

func (m *FakeMotor) SetDuty(d uint8) {
	m.mu.Lock()
	m.duty = d
	m.history = append(m.history, d)
	m.mu.Unlock()
}

func (m *FakeMotor) Duty() uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duty
}

func (m *FakeMotor) History() []uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uint8(nil), m.history...)
}

// FakeSwitch is a settable mode switch.
type FakeSwitch struct {
	mu     sync.RWMutex
	wander bool
}

func (s *FakeSwitch) Set(wander bool) {
	s.mu.Lock()
	s.wander = wander
	s.mu.Unlock()
}

func (s *FakeSwitch) Wander() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wander
}

// NewFakeHardware bundles fresh fakes with the given delay strategy.
func NewFakeHardware(delay motor.TickDelay) (motor.Hardware, *FakeKnob, *FakeMotor, *FakeSwitch) {
	k := NewFakeKnob(128)
	m := &FakeMotor{}
	s := &FakeSwitch{}
	return motor.Hardware{Knob: k, Motor: m, Switch: s, Delay: delay}, k, m, s
}
