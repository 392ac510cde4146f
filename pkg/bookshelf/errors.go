package bookshelf

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user backed out of a prompt, such as leaving
// the search keyboard without confirming. It is flow control, not a failure.
var ErrCancelled = errors.New("operation cancelled by user")

var errNotInitialized = errors.New("screens used before Init")

// InfrastructureError represents a failure in the UI layer itself (SDL
// refused to start, the font is missing, the renderer failed). The
// application cannot recover from these at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "sdl_init", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bookshelf: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("bookshelf: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
