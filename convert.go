package stagefft

import "github.com/go-spectral/stagefft/util"

// PackReal widens a real signal into complex samples with zero imaginary
// parts, ready for a transform buffer.
func PackReal[T util.Float](real []T) []Complex[T] {
	out := make([]Complex[T], len(real))
	for i, r := range real {
		out[i].Re = r
	}
	return out
}

// RealParts extracts the real part of every sample.
func RealParts[T util.Float](data []Complex[T]) []T {
	out := make([]T, len(data))
	for i, c := range data {
		out[i] = c.Re
	}
	return out
}
