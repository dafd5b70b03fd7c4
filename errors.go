// errors.go defines public error types for the stagefft package.

package stagefft

import "errors"

var (
	// ErrUnknownStage indicates a Factory.Get call with a stage outside
	// the factory's [begin, end) range.
	ErrUnknownStage = errors.New("stagefft: unknown stage")

	// ErrInvalidStageRange indicates a factory range that is reversed or
	// whose largest transform length exceeds the 16-bit index-reversal
	// base (N > 65536).
	ErrInvalidStageRange = errors.New("stagefft: invalid stage range")

	// ErrInvalidOptions indicates an option tuple holding an
	// unrecognized enum value.
	ErrInvalidOptions = errors.New("stagefft: invalid options")
)
