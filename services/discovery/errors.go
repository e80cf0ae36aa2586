package discovery

import (
	"errors"
	"fmt"
)

// CapacityError signals a join attempt against a full event. It is surfaced
// as an "event full" state and not retried.
type CapacityError struct {
	EventID string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("event %s has no available spots", e.EventID)
}

// IsCapacityError reports whether err is a join-capacity rejection.
func IsCapacityError(err error) bool {
	var ce *CapacityError
	return errors.As(err, &ce)
}

// TransientFetchError means the catalog was unavailable. It is distinct from
// an empty result set and supports a user-triggered retry.
type TransientFetchError struct {
	Op  string
	Err error
}

func (e *TransientFetchError) Error() string {
	return fmt.Sprintf("%s temporarily unavailable: %v", e.Op, e.Err)
}

func (e *TransientFetchError) Unwrap() error { return e.Err }

// IsTransientFetchError reports whether err is a retryable catalog failure.
func IsTransientFetchError(err error) bool {
	var te *TransientFetchError
	return errors.As(err, &te)
}
