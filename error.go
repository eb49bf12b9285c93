package funcz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Error provides rich context about connector failures. It wraps the
// underlying error with information about where and when the failure
// occurred, what data was being processed, and whether the failure was
// due to timeout or cancellation.
//
// The Path records every named component the failure passed through,
// outermost first. A rejection inside a password validator reads
// ["password-validator", "min_length"], identifying the exact rule.
type Error[T any] struct {
	InputData T
	Err       error
	Timestamp time.Time
	Path      []Name
	Duration  time.Duration
	Timeout   bool
	Canceled  bool
}

// Error implements the error interface, providing a detailed error message.
func (e *Error[T]) Error() string {
	location := strings.Join(e.Path, " -> ")
	if location == "" {
		location = "unknown"
	}

	if e.Timeout {
		return fmt.Sprintf("%s timed out after %v: %v", location, e.Duration, e.Err)
	}
	if e.Canceled {
		return fmt.Sprintf("%s canceled after %v: %v", location, e.Duration, e.Err)
	}
	return fmt.Sprintf("%s failed after %v: %v", location, e.Duration, e.Err)
}

// Unwrap returns the underlying error, supporting errors.Is and errors.As.
func (e *Error[T]) Unwrap() error {
	return e.Err
}

// IsTimeout returns true if the error was caused by a timeout.
func (e *Error[T]) IsTimeout() bool {
	return e.Timeout || errors.Is(e.Err, context.DeadlineExceeded)
}

// IsCanceled returns true if the error was caused by cancellation.
func (e *Error[T]) IsCanceled() bool {
	return e.Canceled || errors.Is(e.Err, context.Canceled)
}

// newError wraps err for the named component, prepending name to the path
// when err is already an *Error[T] so nested failures keep their origin.
func newError[T any](name Name, input T, err error, start time.Time) error {
	var wrapped *Error[T]
	if errors.As(err, &wrapped) {
		wrapped.Path = append([]Name{name}, wrapped.Path...)
		return wrapped
	}
	return &Error[T]{
		Path:      []Name{name},
		InputData: input,
		Err:       err,
		Timestamp: time.Now(),
		Duration:  time.Since(start),
		Timeout:   errors.Is(err, context.DeadlineExceeded),
		Canceled:  errors.Is(err, context.Canceled),
	}
}

// recoverFromPanic converts a panic inside a connector into an *Error[T]
// so callers always see an error value rather than a crash.
func recoverFromPanic[T any](result *T, err *error, name Name, input T) {
	if r := recover(); r != nil {
		var zero T
		*result = zero
		*err = &Error[T]{
			Path:      []Name{name},
			InputData: input,
			Err:       fmt.Errorf("panic: %v", r),
			Timestamp: time.Now(),
		}
	}
}
