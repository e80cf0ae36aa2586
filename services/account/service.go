package account

import (
	"context"
	"fmt"
	"time"

	"eventvibe/models"
	"eventvibe/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// FinalizeRegistration builds and persists the user record from a completed
// draft, mints an auth token and returns an AuthResponse.
func (s *DefaultAccountService) FinalizeRegistration(ctx context.Context, draft models.RegistrationDraft) (*AuthResponse, error) {
	if draft.Phone == "" || draft.Password == "" || draft.Name == "" {
		return nil, fmt.Errorf("registration draft is incomplete")
	}

	existing, err := s.Repo.GetByPhone(ctx, draft.Phone)
	if err != nil {
		utils.GetLogger().Error("FinalizeRegistration: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this phone number already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(draft.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("FinalizeRegistration: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	userObj := models.User{
		ID:             uuid.New().String(),
		Phone:          draft.Phone,
		PasswordHash:   string(hashedPassword),
		Name:           draft.Name,
		ProfilePicture: draft.ProfilePicture,
		Gender:         draft.Gender,
		BirthDate:      draft.BirthDate,
		Age:            draft.Age,
		Occupation:     draft.Occupation,
		Company:        draft.Company,
		Languages:      draft.Languages,
		Hobbies:        draft.Hobbies,
		Location:       draft.Location,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Phone, utils.AuthTokenDuration)
	if err != nil {
		utils.GetLogger().Error("FinalizeRegistration: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	userObj.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(ctx, &userObj); err != nil {
		utils.GetLogger().Error("FinalizeRegistration: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		ID:             userObj.ID,
		Token:          token,
		Name:           userObj.Name,
		Phone:          userObj.Phone,
		ProfilePicture: userObj.ProfilePicture,
	}, nil
}

// Authenticate verifies phone+password credentials and rotates the token.
func (s *DefaultAccountService) Authenticate(ctx context.Context, phone, password string) (*AuthResponse, error) {
	user, err := s.Repo.GetByPhone(ctx, phone)
	if err != nil {
		utils.GetLogger().Error("Authenticate: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}
	if user == nil {
		return nil, fmt.Errorf("invalid phone number or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid phone number or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Phone, utils.AuthTokenDuration)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}
	if err := s.Repo.UpdateTokenHash(ctx, user.ID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}

	return &AuthResponse{
		ID:             user.ID,
		Token:          token,
		Name:           user.Name,
		Phone:          user.Phone,
		ProfilePicture: user.ProfilePicture,
	}, nil
}

// GetProfile retrieves a registered user by ID.
func (s *DefaultAccountService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}
