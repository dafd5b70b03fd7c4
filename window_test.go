package stagefft

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closedForm mirrors each shape's defining formula with the standard
// library, independently of the series-based table builder.
func closedForm(shape Window, i, n int) float64 {
	x := float64(i)
	nn := float64(n)
	half := float64(n / 2)
	switch shape {
	case WindowBartlett:
		return 1 - math.Abs(x-half)/half
	case WindowBlackman:
		return 0.42 - 0.5*math.Cos(2*math.Pi*x/nn) + 0.08*math.Cos(4*math.Pi*x/nn)
	case WindowBlackmanHarris:
		return 0.35875 +
			0.48829*math.Cos(2*math.Pi*(x-half)/nn) +
			0.14128*math.Cos(4*math.Pi*(x-half)/nn) +
			0.01168*math.Cos(6*math.Pi*(x-half)/nn)
	case WindowCosine:
		return math.Cos(math.Pi*x/nn - math.Pi/2)
	case WindowFlatTop:
		return 1 -
			1.93*math.Cos(2*math.Pi*x/nn) +
			1.29*math.Cos(4*math.Pi*x/nn) -
			0.388*math.Cos(6*math.Pi*x/nn) +
			0.028*math.Cos(8*math.Pi*x/nn)
	case WindowHamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*x/nn)
	case WindowVonHann:
		return 0.5 * (1 + math.Cos(2*math.Pi*(x-half)/nn))
	case WindowWelch:
		c := (x - (nn-1)/2) / ((nn + 1) / 2)
		return 1 - c*c
	}
	return 1
}

func TestWindow_CoefficientTables(t *testing.T) {
	shapes := []Window{
		WindowBartlett, WindowBlackman, WindowBlackmanHarris, WindowCosine,
		WindowFlatTop, WindowHamming, WindowVonHann, WindowWelch,
	}
	const n = 64
	for _, shape := range shapes {
		step := newWindowStep[float64](shape, n, false)
		require.NotNil(t, step)
		require.Len(t, step.coeffs, n)
		for i := 0; i < n; i++ {
			assert.InDeltaf(t, closedForm(shape, i, n), step.coeffs[i], 1e-9,
				"shape %d index %d", shape, i)
		}
	}
}

func TestWindow_NoneEmitsNoStep(t *testing.T) {
	assert.Nil(t, newWindowStep[float64](WindowNone, 16, false))
}

func TestWindow_RealPartOnlyByDefault(t *testing.T) {
	step := newWindowStep[float64](WindowVonHann, 8, false)
	data := make([]Complex[float64], 8)
	for i := range data {
		data[i] = Complex[float64]{1, 1}
	}
	step.apply(data)
	for i := range data {
		assert.Equal(t, step.coeffs[i], data[i].Re)
		assert.Equal(t, 1.0, data[i].Im, "imaginary part must pass through")
	}
}

func TestWindow_BothParts(t *testing.T) {
	step := newWindowStep[float64](WindowVonHann, 8, true)
	data := make([]Complex[float64], 8)
	for i := range data {
		data[i] = Complex[float64]{1, 1}
	}
	step.apply(data)
	for i := range data {
		assert.Equal(t, step.coeffs[i], data[i].Re)
		assert.Equal(t, step.coeffs[i], data[i].Im)
	}
}

func TestWindow_Idempotence(t *testing.T) {
	// Applying a window twice must equal one application of the
	// pointwise-squared coefficient table.
	const n = 32
	step := newWindowStep[float64](WindowHamming, n, false)

	twice := randomSignal(n, 7)
	squared := append([]Complex[float64](nil), twice...)

	step.apply(twice)
	step.apply(twice)
	for i := range squared {
		squared[i].Re *= step.coeffs[i] * step.coeffs[i]
	}
	assert.Less(t, maxDeviation(twice, squared), 1e-12)
}
