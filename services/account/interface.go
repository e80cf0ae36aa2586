package account

import (
	"context"

	userRepo "eventvibe/database/repository/user"
	"eventvibe/models"
)

// AuthResponse is returned once an account exists and a token was minted.
type AuthResponse struct {
	ID             string `json:"id"`
	Token          string `json:"token"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// AccountService owns registered accounts. The onboarding wizard hands a
// completed draft to FinalizeRegistration; partial drafts never reach it.
type AccountService interface {
	FinalizeRegistration(ctx context.Context, draft models.RegistrationDraft) (*AuthResponse, error)
	Authenticate(ctx context.Context, phone, password string) (*AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo userRepo.UserRepository
}
