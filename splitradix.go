package stagefft

import "github.com/go-spectral/stagefft/util"

// Split-radix 2/4 kernels. Even-indexed subbands halve recursively through
// trivial radix-2 butterflies; odd quarter-bands receive full L-shaped
// radix-4 butterflies with twiddles w and w³. The recursion over halves
// flattens into one pass per level size m, each walking the whole buffer
// with the L-shaped segment-skip pattern; a separate terminal pass applies
// the length-2 butterflies that the L-shapes assume.

type splitRadixDIT[T util.Float] struct {
	dir  T
	muls []Complex[T]
}

func newSplitRadixDIT[T util.Float](n int, dir T) *splitRadixDIT[T] {
	return &splitRadixDIT[T]{dir: dir, muls: levelMultipliers(n, 8, 1, dir)}
}

func (k *splitRadixDIT[T]) apply(data []Complex[T]) {
	n := len(data)
	if n < 2 {
		return
	}
	splitTerminalButterflies(data)
	for m := 4; m <= n; m <<= 1 {
		if m == 4 {
			k.level4(data)
		} else {
			k.level(data, m)
		}
	}
}

// level runs the L-shaped butterflies belonging to level size m across
// the whole buffer.
func (k *splitRadixDIT[T]) level(data []Complex[T], m int) {
	n := len(data)
	q := m >> 2
	mul := k.muls[log2(m)]
	w := Complex[T]{Re: 1}
	for g := 0; g < q; g++ {
		w1 := renormalize(w)
		w3 := w1.Mul(w1).Mul(w1)

		seg := g
		lDist := 2 * m
		for seg < n {
			for tu := seg; tu < n; tu += lDist {
				i0 := tu
				i1 := i0 + q
				i2 := i1 + q
				i3 := i2 + q

				// X[r]      = Y[r]     +  (W^r·Z[r] + W^3r·H[r])
				// X[r+N/4]  = Y[r+N/4] - i(W^r·Z[r] - W^3r·H[r])
				// X[r+N/2]  = Y[r]     -  (W^r·Z[r] + W^3r·H[r])
				// X[r+3N/4] = Y[r+N/4] + i(W^r·Z[r] - W^3r·H[r])
				t1 := data[i2].Mul(w1)
				t2 := data[i3].Mul(w3)
				t3 := t2.Sub(t1)
				t1 = t1.Add(t2)
				t2 = t3.MulJ(k.dir)

				data[i3] = data[i1].Add(t2)
				data[i2] = data[i0].Sub(t1)
				data[i1] = data[i1].Sub(t2)
				data[i0] = data[i0].Add(t1)
			}
			seg = 2*lDist - m + g
			lDist <<= 2
		}

		if g+1 < q {
			w = w.Add(mul.Mul(w))
		}
	}
}

// level4 is the unrolled terminal L-shape: both twiddles are 1 and the
// ±i rotation folds into the direction sign.
func (k *splitRadixDIT[T]) level4(data []Complex[T]) {
	n := len(data)
	seg := 0
	lDist := 8
	for seg < n {
		for tu := seg; tu < n; tu += lDist {
			i0, i1, i2, i3 := tu, tu+1, tu+2, tu+3

			sr := data[i3].Re + data[i2].Re
			si := data[i3].Im + data[i2].Im
			dr := data[i3].Im - data[i2].Im
			di := data[i3].Re - data[i2].Re

			t0 := data[i0]
			t1 := data[i1]
			data[i0] = Complex[T]{t0.Re + sr, t0.Im + si}
			data[i1] = Complex[T]{t1.Re + k.dir*dr, t1.Im - k.dir*di}
			data[i2] = Complex[T]{t0.Re - sr, t0.Im - si}
			data[i3] = Complex[T]{t1.Re - k.dir*dr, t1.Im + k.dir*di}
		}
		seg = 2*lDist - 4
		lDist <<= 2
	}
}

type splitRadixDIF[T util.Float] struct {
	dir  T
	muls []Complex[T]
}

func newSplitRadixDIF[T util.Float](n int, dir T) *splitRadixDIF[T] {
	return &splitRadixDIF[T]{dir: dir, muls: levelMultipliers(n, 8, 1, dir)}
}

func (k *splitRadixDIF[T]) apply(data []Complex[T]) {
	n := len(data)
	if n < 2 {
		return
	}
	for m := n; m >= 4; m >>= 1 {
		if m == 4 {
			k.level4(data)
		} else {
			k.level(data, m)
		}
	}
	splitTerminalButterflies(data)
}

func (k *splitRadixDIF[T]) level(data []Complex[T], m int) {
	n := len(data)
	q := m >> 2
	mul := k.muls[log2(m)]
	w := Complex[T]{Re: 1}
	for g := 0; g < q; g++ {
		w1 := renormalize(w)
		w3 := w1.Mul(w1).Mul(w1)

		seg := g
		lDist := 2 * m
		for seg < n {
			for tu := seg; tu < n; tu += lDist {
				i0 := tu
				i1 := i0 + q
				i2 := i1 + q
				i3 := i2 + q

				// Y[l]      = x[l]     + x[l+N/2]
				// Y[l+N/4]  = x[l+N/4] + x[l+3N/4]
				// Z[l] = W^l ((x[l] - x[l+N/2]) + i(x[l+N/4] - x[l+3N/4]))
				// H[l] = W^3l((x[l] - x[l+N/2]) - i(x[l+N/4] - x[l+3N/4]))
				t1 := data[i0].Sub(data[i2])
				t2 := data[i1].Sub(data[i3]).MulJ(k.dir)

				data[i0] = data[i0].Add(data[i2])
				data[i1] = data[i1].Add(data[i3])
				data[i2] = w1.Mul(t1.Add(t2))
				data[i3] = w3.Mul(t1.Sub(t2))
			}
			seg = 2*lDist - m + g
			lDist <<= 2
		}

		if g+1 < q {
			w = w.Add(mul.Mul(w))
		}
	}
}

func (k *splitRadixDIF[T]) level4(data []Complex[T]) {
	n := len(data)
	seg := 0
	lDist := 8
	for seg < n {
		for tu := seg; tu < n; tu += lDist {
			i0, i1, i2, i3 := tu, tu+1, tu+2, tu+3

			tr3 := data[i0].Re - data[i2].Re
			ti3 := data[i0].Im - data[i2].Im
			tr4 := data[i1].Im - data[i3].Im
			ti4 := data[i1].Re - data[i3].Re

			data[i0] = data[i0].Add(data[i2])
			data[i1] = data[i1].Add(data[i3])
			data[i2] = Complex[T]{tr3 - k.dir*tr4, ti3 + k.dir*ti4}
			data[i3] = Complex[T]{tr3 + k.dir*tr4, ti3 - k.dir*ti4}
		}
		seg = 2*lDist - 4
		lDist <<= 2
	}
}

// splitTerminalButterflies applies the trivial length-2 butterflies on the
// terminal pairs the L-shaped levels leave untouched. The group-skip walk
// visits exactly the even-subband positions of every recursion depth.
func splitTerminalButterflies[T util.Float](data []Complex[T]) {
	n := len(data)
	for g, lDist := 0, 4; g < n; lDist *= 4 {
		for s := g; s < n; s += lDist {
			t := data[s].Sub(data[s+1])
			data[s] = data[s].Add(data[s+1])
			data[s+1] = t
		}
		g = 2 * (lDist - 1)
	}
}
