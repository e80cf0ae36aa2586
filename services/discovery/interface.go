package discovery

import (
	"context"

	eventRepo "eventvibe/database/repository/event"
	travelerRepo "eventvibe/database/repository/traveler"
	"eventvibe/models"

	"github.com/go-redis/redis/v8"
)

// SearchResult is a filtered, sorted, paginated view over the catalog.
// Events is never nil; an empty slice is the valid "no matches" state,
// distinct from the TransientFetchError the service returns when the
// catalog itself was unavailable.
type SearchResult struct {
	Events []models.Event `json:"events"`
	Total  int            `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

// DiscoveryService combines filtering, sorting, capacity handling and
// companion matching over the catalog.
type DiscoveryService interface {
	SearchEvents(ctx context.Context, criteria Criteria, sortKey SortKey, page, limit int) (*SearchResult, error)
	GetEvent(ctx context.Context, eventID string) (*models.Event, Availability, error)
	// JoinEvent claims one spot for the user. The not-Full precondition is
	// checked before the attempt and re-validated at commit time.
	JoinEvent(ctx context.Context, eventID string, user models.JoinedUser) (*models.Event, error)
	MatchBuddies(ctx context.Context, profile MatchProfile) ([]models.BuddyMatch, error)
}

// DefaultDiscoveryService is the production implementation.
type DefaultDiscoveryService struct {
	Events    eventRepo.EventRepository
	Travelers travelerRepo.TravelerRepository
	// Cache is optional; when nil, results are recomputed on every call.
	Cache *redis.Client
}
