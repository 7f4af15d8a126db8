package mongo

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectionAttemptFailed marks a single failed dial or ping.
	ErrConnectionAttemptFailed = errors.New("mongo connection attempt failed")
	// ErrRetriesExhausted is recorded once every attempt has failed.
	ErrRetriesExhausted = errors.New("mongo connection retries exhausted")
	// ErrNotConnected is returned by checks while the connectivity flag is unset.
	ErrNotConnected = errors.New("mongo is not connected")
	// ErrHealthcheckFailed wraps a failed ping of a connected client.
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
)

// AttemptError describes one failed connection attempt. Attempt is 0-based.
// It matches both ErrConnectionAttemptFailed and the underlying cause with errors.Is.
type AttemptError struct {
	Attempt int
	Err     error
}

// Error reports the 1-based attempt number and the cause.
func (e *AttemptError) Error() string {
	return fmt.Sprintf("%s (attempt %d): %v", ErrConnectionAttemptFailed, e.Attempt+1, e.Err)
}

// Unwrap exposes ErrConnectionAttemptFailed and the cause to errors.Is.
func (e *AttemptError) Unwrap() []error {
	return []error{ErrConnectionAttemptFailed, e.Err}
}
