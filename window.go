package stagefft

import "github.com/go-spectral/stagefft/util"

// windowStep multiplies each sample by a precomputed real coefficient.
// Only the real part is scaled unless the both flag is set; see
// Options.WindowBoth.
type windowStep[T util.Float] struct {
	coeffs []T
	both   bool
}

// newWindowStep tabulates the selected shape for n samples, or returns
// nil for WindowNone (the rectangular window leaves the buffer untouched,
// so no step is emitted at all).
func newWindowStep[T util.Float](shape Window, n int, both bool) *windowStep[T] {
	if shape == WindowNone {
		return nil
	}
	coeffs := make([]T, n)
	for i := range coeffs {
		coeffs[i] = T(windowSample(shape, i, n))
	}
	return &windowStep[T]{coeffs: coeffs, both: both}
}

// windowSample evaluates the shape's coefficient formula at index i. The
// tables are built once per pipeline, so evaluation always runs in double
// precision and narrows on store.
func windowSample(shape Window, i, n int) float64 {
	if n == 1 {
		return 1
	}
	var (
		x    = float64(i)
		nn   = float64(n)
		half = float64(n >> 1)
		w    = 2 * util.Pi / nn // fundamental phase step
	)
	switch shape {
	case WindowBartlett:
		return 1 - util.Abs(x-half)/half
	case WindowBlackman:
		return 0.42 - 0.5*util.Cosine(w*x) + 0.08*util.Cosine(2*w*x)
	case WindowBlackmanHarris:
		return 0.35875 +
			0.48829*util.Cosine(w*(x-half)) +
			0.14128*util.Cosine(2*w*(x-half)) +
			0.01168*util.Cosine(3*w*(x-half))
	case WindowCosine:
		return util.Cosine(util.Pi*x/nn - util.Pi/2)
	case WindowFlatTop:
		return 1 -
			1.93*util.Cosine(w*x) +
			1.29*util.Cosine(2*w*x) -
			0.388*util.Cosine(3*w*x) +
			0.028*util.Cosine(4*w*x)
	case WindowHamming:
		return 0.54 - 0.46*util.Cosine(w*x)
	case WindowVonHann:
		return 0.5 * (1 + util.Cosine(w*(x-half)))
	case WindowWelch:
		c := (x - (nn-1)/2) / ((nn + 1) / 2)
		return 1 - c*c
	}
	return 1
}

func (w *windowStep[T]) apply(data []Complex[T]) {
	if w.both {
		for i := range data {
			data[i].Re *= w.coeffs[i]
			data[i].Im *= w.coeffs[i]
		}
		return
	}
	for i := range data {
		data[i].Re *= w.coeffs[i]
	}
}
