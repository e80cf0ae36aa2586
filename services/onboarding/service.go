package onboarding

import (
	"context"
	"fmt"
	"time"

	"eventvibe/models"
	"eventvibe/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start creates an empty registration session positioned at the phone step.
func (s *DefaultOnboardingService) Start(ctx context.Context) (*StepResult, error) {
	session := models.RegistrationSession{
		TempID:    uuid.New().String(),
		Step:      string(StepPhone),
		CreatedAt: time.Now(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to start onboarding: %w", err)
	}
	return &StepResult{SessionID: session.TempID, Step: StepPhone}, nil
}

// Submit validates the input for the session's current step, merges it into
// the draft and advances to the next step. A rejection leaves the session on
// the same step with the draft untouched; the caller may retry indefinitely.
func (s *DefaultOnboardingService) Submit(ctx context.Context, req models.RegistrationStepRequest) (*StepResult, error) {
	session, err := s.Sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	current := Step(session.Step)
	if req.Step != "" && Step(req.Step) != current {
		return nil, newValidationError(current, "step",
			fmt.Sprintf("session is at step %q, not %q", current, req.Step))
	}

	result := &StepResult{SessionID: session.TempID}

	// A re-submission fully overwrites the step's prior answer, skips
	// included. Errors below return before the session is saved, so a
	// rejection still leaves the stored draft untouched.
	clearStepFields(&session.Draft, current)

	switch current {
	case StepPhone:
		done, otpPending, err := s.submitPhone(ctx, session, req)
		if err != nil {
			return nil, err
		}
		if !done {
			result.Step = StepPhone
			result.OTPPending = otpPending
			return result, nil
		}
	case StepPassword:
		if err := ValidatePassword(req.Password, req.ConfirmPassword); err != nil {
			return nil, err
		}
		session.Draft.Password = req.Password
		result.PasswordStrength = PasswordStrength(req.Password)
	case StepName:
		if err := ValidateName(req.Name); err != nil {
			return nil, err
		}
		session.Draft.Name = trimName(req.Name)
	case StepPhoto:
		// The upload handler has already validated type and size; an empty
		// reference is a valid skip.
		if !req.PhotoSkipped {
			session.Draft.ProfilePicture = req.ProfilePicture
		}
	case StepGender:
		if err := ValidateGender(req.Gender); err != nil {
			return nil, err
		}
		session.Draft.Gender = req.Gender
	case StepBirthDate:
		birthDate, age, err := ValidateBirthDate(req.BirthDay, req.BirthMonth, req.BirthYear, time.Now())
		if err != nil {
			return nil, err
		}
		session.Draft.BirthDate = birthDate
		session.Draft.Age = age
	case StepOccupation:
		occupation, err := ValidateOccupation(req.Occupation, req.CustomOccupation, req.OccupationSkipped)
		if err != nil {
			return nil, err
		}
		session.Draft.Occupation = occupation
		if occupation != "" {
			session.Draft.Company = req.Company
		}
	case StepLanguages:
		session.Draft.Languages = NormalizeLanguages(req.Languages)
	case StepHobbies:
		hobbies, err := ValidateHobbies(req.Hobbies)
		if err != nil {
			return nil, err
		}
		session.Draft.Hobbies = hobbies
	case StepLocation:
		s.applyLocation(ctx, session, req)
		return s.finalize(ctx, session)
	case StepComplete:
		return nil, newValidationError(StepComplete, "step", "registration is already complete")
	default:
		return nil, fmt.Errorf("unknown onboarding step %q", session.Step)
	}

	session.Step = string(nextStep(current))
	if err := s.Sessions.Save(ctx, *session); err != nil {
		return nil, err
	}
	result.Step = Step(session.Step)
	return result, nil
}

// submitPhone handles the two-phase phone step. Without a code it validates
// the number and issues a challenge; with a code it verifies and, on match,
// accepts the phone into the draft. done reports whether the step passed.
func (s *DefaultOnboardingService) submitPhone(ctx context.Context, session *models.RegistrationSession, req models.RegistrationStepRequest) (done bool, otpPending bool, err error) {
	if err := ValidatePhone(req.Phone); err != nil {
		return false, false, err
	}

	if req.OTP == "" {
		if err := s.OTP.Request(ctx, req.Phone); err != nil {
			return false, false, &DeliveryError{Err: err}
		}
		session.OTPStatus = "pending"
		if err := s.Sessions.Save(ctx, *session); err != nil {
			return false, false, err
		}
		return false, true, nil
	}

	if err := s.OTP.Verify(ctx, req.Phone, req.OTP); err != nil {
		return false, false, &ChallengeError{Reason: err.Error()}
	}
	session.OTPStatus = "verified"
	session.Draft.Phone = req.Phone
	return true, false, nil
}

// applyLocation populates coordinates and a resolved city when the user
// granted geolocation. Denial, skip and resolution failure are all valid
// terminal outcomes; none are retried.
func (s *DefaultOnboardingService) applyLocation(ctx context.Context, session *models.RegistrationSession, req models.RegistrationStepRequest) {
	if !req.LocationGranted {
		return
	}
	city, err := s.Geo.Resolve(ctx, req.Lat, req.Lng)
	if err != nil {
		utils.GetLogger().Warn("Location resolution failed, continuing without location",
			zap.String("sessionID", session.TempID), zap.Error(err))
		return
	}
	session.Draft.Location = &models.GeoLocation{Lat: req.Lat, Lng: req.Lng, City: city}
}

// finalize hands the completed draft to the account service and tears down
// the session. Only a draft that passed every step gets here.
func (s *DefaultOnboardingService) finalize(ctx context.Context, session *models.RegistrationSession) (*StepResult, error) {
	auth, err := s.Accounts.FinalizeRegistration(ctx, session.Draft)
	if err != nil {
		return nil, err
	}
	if err := s.Sessions.Delete(ctx, session.TempID); err != nil {
		utils.GetLogger().Warn("Failed to delete completed onboarding session",
			zap.String("sessionID", session.TempID), zap.Error(err))
	}
	return &StepResult{
		SessionID: session.TempID,
		Step:      StepComplete,
		Complete:  true,
		Auth:      auth,
	}, nil
}

// Back moves the session to the immediately preceding step and discards all
// draft fields collected by the departed step and everything after it.
func (s *DefaultOnboardingService) Back(ctx context.Context, sessionID string) (*StepResult, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	current := Step(session.Step)
	previous := prevStep(current)
	if previous == current {
		return &StepResult{SessionID: session.TempID, Step: current}, nil
	}

	// Discard everything collected by the departed step and after it, so a
	// changed earlier answer can never leave stale downstream fields behind.
	truncateFrom(&session.Draft, current)
	if previous == StepPhone {
		session.OTPStatus = ""
	}
	session.Step = string(previous)

	if err := s.Sessions.Save(ctx, *session); err != nil {
		return nil, err
	}
	return &StepResult{SessionID: session.TempID, Step: previous}, nil
}

// Abandon tears the session down. Late OTP or geocoding results for a
// missing session fail with ErrSessionNotFound and are simply dropped.
func (s *DefaultOnboardingService) Abandon(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}
