package event

import (
	"context"
	"errors"

	"eventvibe/models"
)

// ErrNoCapacity is returned by CommitJoin when the event has no spots left at
// commit time.
var ErrNoCapacity = errors.New("event has no available spots")

// EventRepository is the catalog port for joinable events.
type EventRepository interface {
	// GetAll returns the full event catalog snapshot.
	GetAll(ctx context.Context) ([]models.Event, error)
	// GetByID returns a single event, or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*models.Event, error)
	// CommitJoin atomically claims one spot and appends the joining user to
	// the roster. The capacity precondition is re-validated inside the update
	// so concurrent joins can never oversell an event. The authoritative
	// post-commit event is returned.
	CommitJoin(ctx context.Context, eventID string, user models.JoinedUser) (*models.Event, error)
}
