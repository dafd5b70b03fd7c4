package stagefft

import "github.com/go-spectral/stagefft/util"

// Radix-2 butterfly kernels, decimation in time and in frequency. Both
// recurse on the two halves of the buffer and combine dual nodes at
// distance N/2 with twiddles advanced by trigonometric recurrence.
// Neither reorders nor normalizes; the pipeline sequences those steps.

type radix2DIT[T util.Float] struct {
	dir  T
	muls []Complex[T]
}

func newRadix2DIT[T util.Float](n int, dir T) *radix2DIT[T] {
	return &radix2DIT[T]{dir: dir, muls: levelMultipliers(n, 8, 1, dir)}
}

func (k *radix2DIT[T]) apply(data []Complex[T]) {
	n := len(data)
	switch n {
	case 0, 1:
		return
	case 2:
		butterfly2(data, 0, 1)
	case 4:
		// Terminal 4-point transform: two trivial stages plus one ±i
		// rotation, no twiddle multiplies.
		butterfly2(data, 0, 1)
		butterfly2(data, 2, 3)
		butterfly2(data, 0, 2)
		t := data[3].MulJ(k.dir)
		data[3] = data[1].Sub(t)
		data[1] = data[1].Add(t)
	default:
		half := n >> 1
		k.apply(data[:half])
		k.apply(data[half:])

		mul := k.muls[log2(n)]
		w := Complex[T]{Re: 1}
		for i := 0; i < half; i++ {
			// X[r] = G[r] + W^r·H[r], X[r+N/2] = G[r] - W^r·H[r]
			p := w.Mul(data[half+i])
			data[half+i] = data[i].Sub(p)
			data[i] = data[i].Add(p)
			if i+1 < half {
				w = w.Add(mul.Mul(w))
			}
		}
	}
}

type radix2DIF[T util.Float] struct {
	dir  T
	muls []Complex[T]
}

func newRadix2DIF[T util.Float](n int, dir T) *radix2DIF[T] {
	return &radix2DIF[T]{dir: dir, muls: levelMultipliers(n, 8, 1, dir)}
}

func (k *radix2DIF[T]) apply(data []Complex[T]) {
	n := len(data)
	switch n {
	case 0, 1:
		return
	case 2:
		butterfly2(data, 0, 1)
	case 4:
		butterfly2(data, 0, 2)
		t := data[1].Sub(data[3]).MulJ(k.dir)
		data[1] = data[1].Add(data[3])
		data[3] = t
		butterfly2(data, 0, 1)
		butterfly2(data, 2, 3)
	default:
		half := n >> 1
		mul := k.muls[log2(n)]
		w := Complex[T]{Re: 1}
		for i := 0; i < half; i++ {
			// G[l] = x[l] + x[l+N/2], H[l] = (x[l] - x[l+N/2])·W^l
			s := data[i].Add(data[half+i])
			data[half+i] = data[i].Sub(data[half+i]).Mul(w)
			data[i] = s
			if i+1 < half {
				w = w.Add(mul.Mul(w))
			}
		}

		k.apply(data[:half])
		k.apply(data[half:])
	}
}

// butterfly2 is the additive two-point butterfly shared by every kernel's
// trivial stages.
func butterfly2[T util.Float](data []Complex[T], a, b int) {
	t := data[b]
	data[b] = data[a].Sub(t)
	data[a] = data[a].Add(t)
}
