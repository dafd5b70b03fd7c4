package stagefft

import "testing"

func TestPackRealRoundTrip(t *testing.T) {
	real := []float64{1.5, -2, 0, 3.25}
	packed := PackReal(real)
	for i, c := range packed {
		if c.Re != real[i] || c.Im != 0 {
			t.Errorf("sample %d: got %v", i, c)
		}
	}
	back := RealParts(packed)
	for i := range real {
		if back[i] != real[i] {
			t.Errorf("sample %d: got %v, want %v", i, back[i], real[i])
		}
	}
}

func TestPackReal_Empty(t *testing.T) {
	if got := PackReal[float64](nil); len(got) != 0 {
		t.Errorf("PackReal(nil) = %v", got)
	}
}
