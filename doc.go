// Package stagefft implements statically specialized Fast Fourier
// Transform pipelines for complex-valued signals of power-of-two length.
//
// A pipeline is assembled from an option tuple — butterfly kernel (radix-2,
// radix-4, or split-radix 2/4), decimation mode (in time or in frequency),
// direction, window shape, and normalization mode — and is fixed to a
// single transform length N determined by its stage exponent: N = 2^stage
// for radix-2 and split-radix, N = 4^stage for radix-4. All lookup state
// (bit-reversal permutation, window coefficients, twiddle recurrence seeds)
// is computed once when the pipeline is built; Apply then runs in place
// with no allocation and no trigonometric evaluation beyond the recurrence.
//
// # Usage
//
// A Factory materializes one pipeline constructor per stage in a
// half-open range and hands out transform handles by stage at runtime:
//
//	factory, err := stagefft.NewFactory[float64](1, 9, stagefft.Options{
//		Radix:         stagefft.Radix2,
//		Decimation:    stagefft.DecimationInFrequency,
//		Direction:     stagefft.Forward,
//		Normalization: stagefft.NormalizationSquareRoot,
//	})
//	if err != nil { ... }
//	fft, err := factory.Get(8) // N = 256
//	if err != nil { ... }
//	fft.Apply(buf) // len(buf) must be 256
//
// Handles are independent values with immutable internal tables; distinct
// handles may be used concurrently. The buffer passed to Apply is owned by
// the caller and mutated in place.
//
// # Direction convention
//
// Forward advances twiddles with a positive imaginary seed (e^{+i2π/N});
// Inverse uses the negative seed. A forward/inverse pair with
// NormalizationSquareRoot on both sides composes to the identity.
package stagefft
