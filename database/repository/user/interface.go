package user

import (
	"context"

	"eventvibe/models"
)

// UserRepository defines persistence for registered accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByPhone returns nil when no account exists for the phone number.
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
}
