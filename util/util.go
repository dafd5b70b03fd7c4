// Package util provides the numeric primitives shared by the transform
// pipelines: power-series sine and cosine, a Newton-Heron square root, and
// generic rounding helpers.
//
// The series functions exist so that every coefficient table in the library
// (window samples, twiddle recurrence seeds, normalization factors) comes
// from one deterministic evaluation scheme that is computed once, at
// pipeline construction. Steady-state transform calls never evaluate a
// series; they only run the trigonometric recurrence.
package util

// Float is a constraint for the sample element types supported by a
// pipeline.
type Float interface {
	~float32 | ~float64
}

// Pi with more digits than float64 can hold; converts exactly per type.
const Pi = 3.14159265358979323846264338327950288

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
