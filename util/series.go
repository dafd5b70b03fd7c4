package util

// Cody-Waite split of 2π used for range reduction. The head constant is
// exactly representable in a handful of mantissa bits, so x - k*reduceC1
// is exact for the small k seen here; the tail restores the remaining
// precision.
const (
	reduceC1 = 6.283203125
	reduceC2 = -1.7817819752963e-5
)

// seriesTerms returns the series end bound for the element type: 34 for
// 8-byte floats, 24 for 4-byte. Passed as end to sineCosineSeries, it
// carries the sine series through the x^33 (x^23) term.
func seriesTerms[T Float]() int {
	var z T
	if _, single := any(z).(float32); single {
		return 24
	}
	return 34
}

// sineCosineSeries evaluates the Horner-schematized tail common to the
// sine and cosine power series:
//
//	1 - x^2/(s(s+1)) (1 - x^2/((s+2)(s+3)) (1 - ...))
//
// starting at s = start and stepping s by 2 while s < end.
func sineCosineSeries[T Float](start, end int, x T) T {
	if start >= end {
		return 1
	}
	return 1 - x*x/T(start)/T(start+1)*sineCosineSeries(start+2, end, x)
}

// reduce maps x into [-π, π] before a series evaluation. Arguments
// already inside the interval pass through untouched, so the usual case
// (twiddle seeds, centered window phases) costs two comparisons.
func reduce[T Float](x T) T {
	if x <= Pi && x >= -Pi {
		return x
	}
	k := Round(x / (2 * Pi))
	x -= k * reduceC1
	x -= k * reduceC2
	return x
}

// Sine computes sin(x) from the Horner power series
//
//	sin x = x (1 - x^2 (1/3! - x^2 (1/5! - x^2 (1/7! ...))))
//
// after range reduction into [-π, π].
func Sine[T Float](x T) T {
	x = reduce(x)
	return x * sineCosineSeries(2, seriesTerms[T](), x)
}

// Cosine computes cos(x) from the matching series with the end bound one
// lower (through the x^32 term for float64):
//
//	cos x = 1 - x^2 (1/2! - x^2 (1/4! - x^2 (1/6! ...)))
func Cosine[T Float](x T) T {
	x = reduce(x)
	return sineCosineSeries(1, seriesTerms[T]()-1, x)
}

// SinePi computes sin(numerator·π/denominator). Twiddle recurrence seeds
// are all of this form.
func SinePi[T Float](numerator, denominator int) T {
	return Sine(T(numerator) * Pi / T(denominator))
}
