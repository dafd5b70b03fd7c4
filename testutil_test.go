package stagefft

import (
	"math"
	"math/rand"
	"testing"
)

// run builds a one-stage factory for opts, fetches the handle, and applies
// it to a copy of the input.
func run(t *testing.T, opts Options, stage uint, in []Complex[float64]) []Complex[float64] {
	t.Helper()
	factory, err := NewFactory[float64](stage, stage+1, opts)
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	tr, err := factory.Get(stage)
	if err != nil {
		t.Fatalf("Get(%d): %v", stage, err)
	}
	out := append([]Complex[float64](nil), in...)
	tr.Apply(out)
	return out
}

// randomSignal produces a deterministic complex signal in [-1, 1)².
func randomSignal(n int, seed int64) []Complex[float64] {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Complex[float64], n)
	for i := range out {
		out[i] = Complex[float64]{2*rng.Float64() - 1, 2*rng.Float64() - 1}
	}
	return out
}

// maxDeviation returns the largest per-component difference between two
// equal-length buffers.
func maxDeviation(a, b []Complex[float64]) float64 {
	var max float64
	for i := range a {
		if d := math.Abs(a[i].Re - b[i].Re); d > max {
			max = d
		}
		if d := math.Abs(a[i].Im - b[i].Im); d > max {
			max = d
		}
	}
	return max
}

func magnitude(c Complex[float64]) float64 {
	return math.Hypot(c.Re, c.Im)
}

func toComplex128(in []Complex[float64]) []complex128 {
	out := make([]complex128, len(in))
	for i, c := range in {
		out[i] = complex(c.Re, c.Im)
	}
	return out
}
