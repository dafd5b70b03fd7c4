package stagefft

import (
	"math/bits"

	"github.com/go-spectral/stagefft/util"
)

// bitReverseStep exchanges each sample with its bit-reversed counterpart,
// bringing DIT input (or DIF output) into natural order. The permutation
// table is derived once, at construction, from the transform length.
type bitReverseStep[T util.Float] struct {
	table []int
}

// reverse16 reverses all 16 bits of i with three masked shift pairs plus
// the final byte swap.
func reverse16(i int) int {
	v := ((i & 0xAAAA) >> 1) | ((i & 0x5555) << 1)
	v = ((v & 0xCCCC) >> 2) | ((v & 0x3333) << 2)
	v = ((v & 0xF0F0) >> 4) | ((v & 0x0F0F) << 4)
	return ((v & 0xFF00) >> 8) | ((v & 0x00FF) << 8)
}

// newBitReverseStep builds the permutation for a buffer of n = 2^k
// samples, k ≤ 16. Reversal always runs over 16 bits; discarding the
// (16-k) leading zeros of the result restores the k-bit reversal.
func newBitReverseStep[T util.Float](n int) *bitReverseStep[T] {
	k := bits.Len(uint(n)) - 1
	shift := 16 - k
	table := make([]int, n)
	for i := range table {
		table[i] = reverse16(i) >> shift
	}
	return &bitReverseStep[T]{table: table}
}

func (b *bitReverseStep[T]) apply(data []Complex[T]) {
	for i, j := range b.table {
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}
}
