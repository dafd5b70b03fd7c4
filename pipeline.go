package stagefft

import (
	"fmt"

	"github.com/go-spectral/stagefft/util"
)

// Transform is the handle a Factory hands out: an in-place transform
// bound to one length and one option tuple. Implementations are immutable
// after construction; distinct handles may run concurrently.
type Transform[T util.Float] interface {
	// Apply runs the transform chain in place. The buffer length must
	// equal SampleCount; a mismatch is a programming error and panics.
	Apply(data []Complex[T])

	// SampleCount returns the exact buffer length the transform accepts.
	SampleCount() int

	// FrequencyCount returns the number of distinct frequency bins,
	// half the sample count (Shannon-Nyquist).
	FrequencyCount() int
}

// subTask is one in-place stage of a pipeline.
type subTask[T util.Float] interface {
	apply(data []Complex[T])
}

// pipeline chains the sub-tasks of one transform in fixed order: window,
// then kernel and index reversal (reversal first for decimation in time,
// after the kernel for decimation in frequency), then normalization.
type pipeline[T util.Float] struct {
	n     int
	tasks []subTask[T]
}

func newPipeline[T util.Float](stage uint, opts Options) *pipeline[T] {
	n := opts.sampleCount(stage)
	dir := T(opts.directionFactor())

	var kernel subTask[T]
	switch opts.Radix {
	case Radix4:
		if opts.Decimation == DecimationInTime {
			kernel = newRadix4DIT[T](n, dir)
		} else {
			kernel = newRadix4DIF[T](n, dir)
		}
	case RadixSplit24:
		if opts.Decimation == DecimationInTime {
			kernel = newSplitRadixDIT[T](n, dir)
		} else {
			kernel = newSplitRadixDIF[T](n, dir)
		}
	default:
		if opts.Decimation == DecimationInTime {
			kernel = newRadix2DIT[T](n, dir)
		} else {
			kernel = newRadix2DIF[T](n, dir)
		}
	}

	reverse := newBitReverseStep[T](n)
	tasks := make([]subTask[T], 0, 4)
	if w := newWindowStep[T](opts.Window, n, opts.WindowBoth); w != nil {
		tasks = append(tasks, w)
	}
	if opts.Decimation == DecimationInTime {
		tasks = append(tasks, reverse, kernel)
	} else {
		tasks = append(tasks, kernel, reverse)
	}
	if norm := newNormalizeStep[T](opts.Normalization, n); norm != nil {
		tasks = append(tasks, norm)
	}
	return &pipeline[T]{n: n, tasks: tasks}
}

func (p *pipeline[T]) Apply(data []Complex[T]) {
	if len(data) != p.n {
		panic(fmt.Sprintf("stagefft: buffer length %d, transform expects %d", len(data), p.n))
	}
	for _, task := range p.tasks {
		task.apply(data)
	}
}

func (p *pipeline[T]) SampleCount() int {
	return p.n
}

func (p *pipeline[T]) FrequencyCount() int {
	return p.n >> 1
}
