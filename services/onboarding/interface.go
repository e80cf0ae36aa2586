package onboarding

import (
	"context"

	"eventvibe/models"
	"eventvibe/services/account"
	"eventvibe/services/geocode"
	"eventvibe/utils"
)

// OTPService issues and verifies phone challenge codes. At most one code is
// outstanding per phone; a new request invalidates the prior code.
type OTPService interface {
	Request(ctx context.Context, phone string) error
	Verify(ctx context.Context, phone, code string) error
}

// StepResult reports the outcome of an accepted step submission.
// PasswordStrength is advisory only and never blocks submission.
type StepResult struct {
	SessionID        string                `json:"sessionID"`
	Step             Step                  `json:"step"`
	OTPPending       bool                  `json:"otpPending,omitempty"`
	PasswordStrength string                `json:"passwordStrength,omitempty"`
	Complete         bool                  `json:"complete,omitempty"`
	Auth             *account.AuthResponse `json:"auth,omitempty"`
}

// OnboardingService drives the multi-step registration wizard.
type OnboardingService interface {
	// Start creates an empty draft positioned at the phone step.
	Start(ctx context.Context) (*StepResult, error)
	// Submit validates the input for the session's current step, merges it
	// into the draft and advances. Rejections leave state and draft unchanged.
	Submit(ctx context.Context, req models.RegistrationStepRequest) (*StepResult, error)
	// Back moves to the preceding step and discards everything collected by
	// the departed step and all later steps.
	Back(ctx context.Context, sessionID string) (*StepResult, error)
	// Abandon discards the session; no partial record persists.
	Abandon(ctx context.Context, sessionID string) error
}

// DefaultOnboardingService is the production implementation.
type DefaultOnboardingService struct {
	Sessions SessionStore
	OTP      OTPService
	Geo      geocode.Geocoder
	Accounts account.AccountService
}

// RedisOTPService is the production OTPService backed by the OTP cache.
type RedisOTPService struct{}

func (RedisOTPService) Request(ctx context.Context, phone string) error {
	return utils.InitiatePhoneOTP(phone)
}

func (RedisOTPService) Verify(ctx context.Context, phone, code string) error {
	return utils.VerifyPhoneOTPRecord(phone, code)
}
