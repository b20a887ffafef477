package lcg

import "testing"

func TestNextReferenceVectors(t *testing.T) {
	// First steps from the zero state: s' = s*5 + 0x3333 (mod 2^16).
	vectors := []struct {
		in, out uint16
	}{
		{0x0000, 0x3333},
		{0x3333, (0x3333*5 + 0x3333) & 0xFFFF},
		{0xFFFF, (0xFFFF*5 + 0x3333) & 0xFFFF}, // wraps mod 2^16
		{0x1234, 0x1234*5 + 0x3333},
		{0x8000, (0x8000*5 + 0x3333) & 0xFFFF},
	}
	for _, v := range vectors {
		if got := Next(v.in); got != v.out {
			t.Errorf("Next(%#04x) = %#04x, want %#04x", v.in, got, v.out)
		}
	}
}

func TestDeterministicSequence(t *testing.T) {
	a, b := Seed(0xA7), Seed(0xA7)
	for i := 0; i < 1000; i++ {
		a, b = Next(a), Next(b)
		if a != b {
			t.Fatalf("sequences diverged at step %d: %#04x vs %#04x", i, a, b)
		}
	}
}

func TestFullPeriod(t *testing.T) {
	// Hull-Dobell constants: every state must appear exactly once per 2^16
	// steps, so the high byte covers the whole 0..255 range.
	seen := make([]bool, 65536)
	s := uint16(0)
	for i := 0; i < 65536; i++ {
		s = Next(s)
		if seen[s] {
			t.Fatalf("state %#04x repeated after %d steps", s, i+1)
		}
		seen[s] = true
	}
	if s != 0 {
		t.Errorf("expected return to seed state after full period, got %#04x", s)
	}

	hi := make([]bool, 256)
	s = Seed(0x42)
	for i := 0; i < 65536; i++ {
		s = Next(s)
		hi[High(s)] = true
	}
	for b, ok := range hi {
		if !ok {
			t.Errorf("high byte %#02x never produced", b)
		}
	}
}

func TestSeed(t *testing.T) {
	if got := Seed(0xAB); got != 0xAB00 {
		t.Errorf("Seed(0xAB) = %#04x, want 0xAB00", got)
	}
}
