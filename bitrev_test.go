package stagefft

import "testing"

func TestBitReverse_KnownPermutation(t *testing.T) {
	want := []int{0, 4, 2, 6, 1, 5, 3, 7}
	step := newBitReverseStep[float64](8)
	for i, w := range want {
		if step.table[i] != w {
			t.Errorf("table[%d] = %d, want %d", i, step.table[i], w)
		}
	}
}

func TestBitReverse_Involution(t *testing.T) {
	for n := 1; n <= 1024; n <<= 1 {
		step := newBitReverseStep[float64](n)
		data := randomSignal(n, int64(n))
		orig := append([]Complex[float64](nil), data...)
		step.apply(data)
		step.apply(data)
		if maxDeviation(data, orig) != 0 {
			t.Errorf("n=%d: applying the permutation twice is not the identity", n)
		}
	}
}

func TestBitReverse_SingleSample(t *testing.T) {
	step := newBitReverseStep[float64](1)
	data := []Complex[float64]{{3, -4}}
	step.apply(data)
	if data[0] != (Complex[float64]{3, -4}) {
		t.Errorf("n=1 must be a no-op, got %v", data[0])
	}
}

func TestBitReverse_TableIsSelfInverse(t *testing.T) {
	for n := 2; n <= 65536; n <<= 1 {
		step := newBitReverseStep[float64](n)
		for i, j := range step.table {
			if j < 0 || j >= n {
				t.Fatalf("n=%d: table[%d] = %d out of range", n, i, j)
			}
			if step.table[j] != i {
				t.Fatalf("n=%d: table[table[%d]] = %d, want %d", n, i, step.table[j], i)
			}
		}
	}
}
