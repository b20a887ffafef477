package motor

import "testing"

func TestScaleEndpoints(t *testing.T) {
	s := Scaler{Min: 62}
	if got := s.Scale(0); got != 62 {
		t.Errorf("Scale(0) = %d, want 62", got)
	}
	if got := s.Scale(255); got != 255 {
		t.Errorf("Scale(255) = %d, want 255", got)
	}
}

func TestScaleExhaustive(t *testing.T) {
	// The domain is 256 values; check range and monotonicity for every
	// plausible minimum, including the degenerate Min=0 passthrough.
	for _, min := range []uint8{0, 1, 62, 100, 200, 254} {
		s := Scaler{Min: min}
		prev := -1
		for in := 0; in < 256; in++ {
			got := int(s.Scale(uint8(in)))
			if got < int(min) || got > 255 {
				t.Fatalf("Min=%d: Scale(%d) = %d out of range", min, in, got)
			}
			if got < prev {
				t.Fatalf("Min=%d: Scale(%d) = %d < Scale(%d) = %d", min, in, got, in-1, prev)
			}
			prev = got
		}
		if s.Scale(0) != min || s.Scale(255) != 255 {
			t.Fatalf("Min=%d: endpoints %d..%d", min, s.Scale(0), s.Scale(255))
		}
	}
}

func TestScaleMatchesRoundedFloat(t *testing.T) {
	// The integer formula must agree with round(in * (255-Min) / 255) + Min
	// on the whole domain.
	s := Scaler{Min: 62}
	for in := 0; in < 256; in++ {
		want := (in*193 + 127) / 255
		if got := int(s.Scale(uint8(in))) - 62; got != want {
			t.Fatalf("Scale(%d) offset = %d, want %d", in, got, want)
		}
	}
}
