package stagefft

import (
	"github.com/pkg/errors"

	"github.com/go-spectral/stagefft/util"
)

// maxTotalBits caps the transform length at 2^16 samples, the base width
// of the index-reversal tables.
const maxTotalBits = 16

// Factory materializes one pipeline constructor per stage in the
// half-open range given at construction and resolves stages to fresh
// transform handles at runtime. Lookup is a slice index, O(1).
type Factory[T util.Float] struct {
	begin, end uint
	ctors      []func() Transform[T]
}

// NewFactory builds a factory for stages [begin, end) over the given
// option tuple. The range may be empty. It fails if the range is
// reversed, holds an unrecognized option value, or reaches transform
// lengths beyond 2^16 samples.
func NewFactory[T util.Float](begin, end uint, opts Options) (*Factory[T], error) {
	if !opts.valid() {
		return nil, errors.WithStack(ErrInvalidOptions)
	}
	if begin > end {
		return nil, errors.Wrapf(ErrInvalidStageRange, "begin %d after end %d", begin, end)
	}
	if end > begin {
		top := end - 1
		bits := uint(maxTotalBits)
		if opts.Radix == Radix4 {
			bits /= 2
		}
		if top > bits {
			return nil, errors.Wrapf(ErrInvalidStageRange, "stage %d exceeds maximum %d", top, bits)
		}
	}

	f := &Factory[T]{
		begin: begin,
		end:   end,
		ctors: make([]func() Transform[T], end-begin),
	}
	for stage := begin; stage < end; stage++ {
		stage := stage
		f.ctors[stage-begin] = func() Transform[T] {
			return newPipeline[T](stage, opts)
		}
	}
	return f, nil
}

// Get returns a fresh, independently owned transform handle for the given
// stage. Stages outside the factory's range yield an error satisfying
// errors.Is(err, ErrUnknownStage).
func (f *Factory[T]) Get(stage uint) (Transform[T], error) {
	if stage < f.begin || stage >= f.end {
		return nil, errors.Wrapf(ErrUnknownStage, "stage %d outside [%d, %d)", stage, f.begin, f.end)
	}
	return f.ctors[stage-f.begin](), nil
}
