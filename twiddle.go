package stagefft

import (
	"math/bits"

	"github.com/go-spectral/stagefft/util"
)

// log2 of a power of two.
func log2(n int) int {
	return bits.Len(uint(n)) - 1
}

// twiddleMultiplier returns the recurrence increment M for a butterfly
// level spanning n samples: starting from W = 1, repeatedly applying
// W ← W + M·W advances W by e^{i·dir·2π/n} per step with low accumulated
// error. The -2sin² real part is the standard trick for cancelling the
// roundoff a plain cos(2π/n)-based recurrence would build up.
func twiddleMultiplier[T util.Float](n int, dir T) Complex[T] {
	s := util.SinePi[T](1, n)
	return Complex[T]{Re: -2 * s * s, Im: dir * util.SinePi[T](2, n)}
}

// levelMultipliers tabulates the recurrence increment for every butterfly
// level from first (smallest general level) up to n, stepping the level
// size by the given shift. Indexed by log2 of the level size; built once
// at kernel construction so Apply never evaluates a sine series.
func levelMultipliers[T util.Float](n, first int, shift uint, dir T) []Complex[T] {
	if n < first {
		return nil
	}
	muls := make([]Complex[T], log2(n)+1)
	for m := first; m <= n; m <<= shift {
		muls[log2(m)] = twiddleMultiplier(m, dir)
	}
	return muls
}

// renormalize applies one Newton step pulling w back onto the unit
// circle: t = 1.5 - 0.5·|w|². Keeps the recurrence from drifting when its
// value feeds further twiddle products.
func renormalize[T util.Float](w Complex[T]) Complex[T] {
	t := 1.5 - 0.5*(w.Re*w.Re+w.Im*w.Im)
	return Complex[T]{w.Re * t, w.Im * t}
}
