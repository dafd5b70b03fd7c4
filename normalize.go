package stagefft

import "github.com/go-spectral/stagefft/util"

// normalizeStep scales every sample by a factor fixed at construction:
// 1/N keeps signal energy when applied in one direction only, 1/√N makes
// a forward/inverse pair an exact mutual inverse.
type normalizeStep[T util.Float] struct {
	factor T
}

// newNormalizeStep returns nil for NormalizationNone.
func newNormalizeStep[T util.Float](mode Normalization, n int) *normalizeStep[T] {
	switch mode {
	case NormalizationLength:
		return &normalizeStep[T]{factor: 1 / T(n)}
	case NormalizationSquareRoot:
		return &normalizeStep[T]{factor: 1 / util.SquareRoot[T](n)}
	}
	return nil
}

func (s *normalizeStep[T]) apply(data []Complex[T]) {
	for i := range data {
		data[i] = data[i].Scale(s.factor)
	}
}
