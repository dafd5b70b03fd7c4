package stagefft

import "github.com/go-spectral/stagefft/util"

// Radix-4 butterfly kernels. Groups of four nodes at distance N/4 are
// combined with twiddles w, w², w³ derived from the recurrence value: one
// Newton renormalization yields w_{N/4}, squaring and one product give the
// rest. The output index ordering follows the Burrus rearrangement so
// plain bit reversal (not digit reversal) restores natural order.

type radix4DIT[T util.Float] struct {
	dir  T
	muls []Complex[T]
}

func newRadix4DIT[T util.Float](n int, dir T) *radix4DIT[T] {
	return &radix4DIT[T]{dir: dir, muls: levelMultipliers(n, 16, 2, dir)}
}

func (k *radix4DIT[T]) apply(data []Complex[T]) {
	n := len(data)
	switch n {
	case 0, 1:
		return
	case 4:
		// All twiddles are 1 or ±i: eight complex additions.
		r1 := data[0].Add(data[1])
		r2 := data[2].Add(data[3])
		r3 := data[0].Sub(data[1])
		r4 := data[2].Sub(data[3]).MulJ(k.dir)
		data[0] = r1.Add(r2)
		data[1] = r3.Add(r4)
		data[2] = r1.Sub(r2)
		data[3] = r3.Sub(r4)
	default:
		q := n >> 2
		k.apply(data[:q])
		k.apply(data[q : 2*q])
		k.apply(data[2*q : 3*q])
		k.apply(data[3*q:])

		mul := k.muls[log2(n)]
		w := Complex[T]{Re: 1}
		for i := 0; i < q; i++ {
			w1 := renormalize(w)
			w2 := w1.Mul(w1)
			w3 := w2.Mul(w1)

			t1 := data[i]
			t2 := data[2*q+i].Mul(w1)
			t3 := data[q+i].Mul(w2)
			t4 := data[3*q+i].Mul(w3)

			s13 := t1.Add(t3)
			d13 := t1.Sub(t3)
			s24 := t2.Add(t4)
			d24 := t2.Sub(t4).MulJ(k.dir)

			data[i] = s13.Add(s24)
			data[q+i] = d13.Add(d24)
			data[2*q+i] = s13.Sub(s24)
			data[3*q+i] = d13.Sub(d24)

			if i+1 < q {
				w = w.Add(mul.Mul(w))
			}
		}
	}
}

type radix4DIF[T util.Float] struct {
	dir  T
	muls []Complex[T]
}

func newRadix4DIF[T util.Float](n int, dir T) *radix4DIF[T] {
	return &radix4DIF[T]{dir: dir, muls: levelMultipliers(n, 16, 2, dir)}
}

func (k *radix4DIF[T]) apply(data []Complex[T]) {
	n := len(data)
	switch n {
	case 0, 1:
		return
	case 4:
		r1 := data[0].Add(data[2])
		r2 := data[1].Add(data[3])
		r3 := data[0].Sub(data[2])
		r4 := data[1].Sub(data[3]).MulJ(k.dir)
		data[0] = r1.Add(r2)
		data[1] = r1.Sub(r2)
		data[2] = r3.Add(r4)
		data[3] = r3.Sub(r4)
	default:
		q := n >> 2
		mul := k.muls[log2(n)]
		w := Complex[T]{Re: 1}
		for i := 0; i < q; i++ {
			w1 := renormalize(w)
			w2 := w1.Mul(w1)
			w3 := w2.Mul(w1)

			t1 := data[i].Add(data[2*q+i])
			t2 := data[i].Sub(data[2*q+i])
			t3 := data[q+i].Add(data[3*q+i])
			t4 := data[q+i].Sub(data[3*q+i]).MulJ(k.dir)

			data[i] = t1.Add(t3)
			data[q+i] = w2.Mul(t1.Sub(t3))
			data[2*q+i] = w1.Mul(t2.Add(t4))
			data[3*q+i] = w3.Mul(t2.Sub(t4))

			if i+1 < q {
				w = w.Add(mul.Mul(w))
			}
		}

		k.apply(data[:q])
		k.apply(data[q : 2*q])
		k.apply(data[2*q : 3*q])
		k.apply(data[3*q:])
	}
}
