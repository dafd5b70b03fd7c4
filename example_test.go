package stagefft_test

import (
	"fmt"

	"github.com/go-spectral/stagefft"
)

func ExampleFactory() {
	factory, err := stagefft.NewFactory[float64](1, 5, stagefft.Options{
		Radix:         stagefft.Radix2,
		Decimation:    stagefft.DecimationInFrequency,
		Direction:     stagefft.Forward,
		Normalization: stagefft.NormalizationSquareRoot,
	})
	if err != nil {
		panic(err)
	}

	fft, err := factory.Get(2) // N = 4
	if err != nil {
		panic(err)
	}

	data := stagefft.PackReal([]float64{1, 1, 1, 1})
	fft.Apply(data)
	for _, c := range data {
		fmt.Printf("(%g, %g)\n", c.Re, c.Im)
	}
	// Output:
	// (2, 0)
	// (0, 0)
	// (0, 0)
	// (0, 0)
}
