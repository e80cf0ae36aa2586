package traveler

import (
	"context"

	"eventvibe/models"
)

// TravelerRepository is the catalog port for companion profiles.
type TravelerRepository interface {
	GetAll(ctx context.Context) ([]models.Traveler, error)
}
