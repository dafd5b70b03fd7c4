package stagefft

import (
	"math/cmplx"
	"path/filepath"
	"testing"

	"github.com/go-spectral/stagefft/internal/testvectors"
)

// Bundled case files carry analytically exact spectra for the forward
// transform with 1/√N normalization.
func TestTransform_VectorFixtures(t *testing.T) {
	cases := []struct {
		file  string
		stage uint
	}{
		{"constant4.xml", 2},
		{"impulse4.xml", 2},
		{"alternating8.xml", 3},
	}
	opts := Options{
		Radix:         Radix2,
		Decimation:    DecimationInFrequency,
		Direction:     Forward,
		Normalization: NormalizationSquareRoot,
	}

	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join("internal", "testvectors", "testdata", tc.file)
			in, want, err := testvectors.Load(path, "input", "fft")
			if err != nil {
				t.Fatal(err)
			}

			buf := make([]Complex[float64], len(in))
			for i, c := range in {
				buf[i] = Complex[float64]{real(c), imag(c)}
			}
			out := run(t, opts, tc.stage, buf)

			for i := range want {
				got := complex(out[i].Re, out[i].Im)
				if cmplx.Abs(got-want[i]) > 1e-9 {
					t.Errorf("bin %d: got %v, want %v", i, got, want[i])
				}
			}
		})
	}
}
