package symspell

import "errors"

var (
	// ErrArenaExhausted is returned when a string or entry arena has no
	// room left for an allocation. Arena exhaustion is a load-time failure
	// surfaced to the caller, never a panic or process exit.
	ErrArenaExhausted = errors.New("symspell: arena exhausted")

	// ErrDeleteTableFull is returned when the delete index has no free
	// slot left for a new key after a full probe sequence.
	ErrDeleteTableFull = errors.New("symspell: delete table full")

	// ErrInvalidConfig is returned by Create when max edit distance or
	// prefix length fall outside their documented ranges.
	ErrInvalidConfig = errors.New("symspell: invalid configuration")
)
