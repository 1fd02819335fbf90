package schedule

import (
	"errors"
	"fmt"
)

// ErrInvalidDuration is the sentinel wrapped by InvalidDurationError.
var ErrInvalidDuration = errors.New("invalid duration")

// InvalidDurationError reports a duration_weeks value that is neither
// the span-to-end sentinel nor a non-negative number. It names the task
// so the user can find the offending config entry.
type InvalidDurationError struct {
	Task  string
	Value string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration %q for task %q", e.Value, e.Task)
}

func (e *InvalidDurationError) Unwrap() error { return ErrInvalidDuration }
