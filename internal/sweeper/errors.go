package sweeper

import "errors"

// Sentinel errors returned by the rules core. Callers match them with
// errors.Is; the returned errors wrap them with context.
var (
	// ErrOutOfRange is returned for a cell index outside [1, rows*cols].
	ErrOutOfRange = errors.New("sweeper: cell index out of range")

	// ErrInvalidConfig is returned for impossible grid or bomb parameters.
	ErrInvalidConfig = errors.New("sweeper: invalid config")

	// ErrUnknownDifficulty is returned when a difficulty name has no tier.
	ErrUnknownDifficulty = errors.New("sweeper: unknown difficulty")
)
