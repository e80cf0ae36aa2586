package onboarding

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound signals that the referenced onboarding session does not
// exist, expired, or was abandoned. Results arriving for a torn-down session
// are dropped, not applied.
var ErrSessionNotFound = errors.New("onboarding session not found")

// ValidationError is a local, user-correctable rejection of step input. The
// session stays on the same step and the draft is untouched.
type ValidationError struct {
	Step   Step
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s at step %s: %s", e.Field, e.Step, e.Reason)
}

func newValidationError(step Step, field, reason string) error {
	return &ValidationError{Step: step, Field: field, Reason: reason}
}

// IsValidationError reports whether err is a step validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ChallengeError is an OTP mismatch or expiry. It is not a data error; the
// caller re-requests a code and tries again.
type ChallengeError struct {
	Reason string
}

func (e *ChallengeError) Error() string {
	return "verification challenge failed: " + e.Reason
}

// IsChallengeError reports whether err is an OTP challenge failure.
func IsChallengeError(err error) bool {
	var ce *ChallengeError
	return errors.As(err, &ce)
}

// DeliveryError means a verification code could not be sent. Unlike a
// ChallengeError the code itself was never wrong; the gateway was, so the
// caller retries the request.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return "failed to send verification code: " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// IsDeliveryError reports whether err is a code delivery failure.
func IsDeliveryError(err error) bool {
	var de *DeliveryError
	return errors.As(err, &de)
}
