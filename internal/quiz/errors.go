package quiz

import "errors"

// Invariant violations signal a caller bug, not a learner-input problem.
// They must surface loudly rather than being silently coerced.
var (
	// ErrLevelRange reports a difficulty level outside [MinDifficulty, MaxDifficulty].
	ErrLevelRange = errors.New("difficulty level out of range")

	// ErrNegativeTime reports a negative elapsed time on a recorded attempt.
	ErrNegativeTime = errors.New("negative elapsed time")
)
