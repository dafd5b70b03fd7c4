package stagefft

import "testing"

// Radix-4 stages address buffers of length 4^stage, so agreement with the
// radix-2 kernel is checked at the power-of-four lengths both support.
func TestRadix4_MatchesRadix2(t *testing.T) {
	for stage := uint(1); stage <= 4; stage++ {
		n := 1 << (2 * stage)
		in := randomSignal(n, int64(n))
		for _, dir := range []Direction{Forward, Inverse} {
			for _, dec := range []Decimation{DecimationInTime, DecimationInFrequency} {
				r4 := run(t, Options{Radix: Radix4, Decimation: dec, Direction: dir}, stage, in)
				r2 := run(t, Options{Radix: Radix2, Decimation: dec, Direction: dir}, uint(log2(n)), in)
				if d := maxDeviation(r4, r2); d > 1e-5 {
					t.Errorf("n=%d dec=%d dir=%d: radix-4 and radix-2 disagree by %v", n, dec, dir, d)
				}
			}
		}
	}
}

func TestRadix4DIT_SquarePulseRoundTrip(t *testing.T) {
	// 32 ones followed by 32 zeros, forward then inverse at N = 64.
	pulse := make([]float64, 64)
	for i := 0; i < 32; i++ {
		pulse[i] = 1
	}
	in := PackReal(pulse)

	opts := Options{
		Radix:         Radix4,
		Decimation:    DecimationInTime,
		Direction:     Forward,
		Normalization: NormalizationSquareRoot,
	}
	forward := run(t, opts, 3, in)

	opts.Direction = Inverse
	back := run(t, opts, 3, forward)

	if d := maxDeviation(back, in); d > 1e-10 {
		t.Errorf("square pulse round trip off by %v", d)
	}
}

func TestRadix4_RoundTrip(t *testing.T) {
	for _, dec := range []Decimation{DecimationInTime, DecimationInFrequency} {
		for stage := uint(0); stage <= 4; stage++ {
			in := randomSignal(1<<(2*stage), 11)
			forward := run(t, Options{Radix: Radix4, Decimation: dec, Direction: Forward, Normalization: NormalizationSquareRoot}, stage, in)
			back := run(t, Options{Radix: Radix4, Decimation: dec, Direction: Inverse, Normalization: NormalizationSquareRoot}, stage, forward)
			if d := maxDeviation(back, in); d > 1e-5 {
				t.Errorf("dec %d stage %d: round trip off by %v", dec, stage, d)
			}
		}
	}
}
