package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingContent indicates the service response has no task title
	ErrMissingContent = errors.New("task content is required")

	// ErrInvalidPriority indicates a priority outside [1,4]
	ErrInvalidPriority = errors.New("priority must be between 1 and 4")

	// ErrServiceRefused indicates the service signalled an error instead
	// of a task (e.g. the input looked like a greeting)
	ErrServiceRefused = errors.New("service declined to extract a task")
)

// ExtractionError is returned when the service output cannot be parsed
// into a valid TaskRecord. Raw carries the offending output for diagnostics.
type ExtractionError struct {
	Raw string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
