package discovery

import (
	"context"
	"encoding/json"
	"fmt"

	eventRepo "eventvibe/database/repository/event"
	"eventvibe/models"
	"eventvibe/utils"

	"go.uber.org/zap"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// SearchEvents returns the filtered, sorted, paginated catalog view. Catalog
// failures surface as TransientFetchError so callers can distinguish
// "results unavailable" from a valid empty result.
func (s *DefaultDiscoveryService) SearchEvents(ctx context.Context, criteria Criteria, sortKey SortKey, page, limit int) (*SearchResult, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if page < 1 {
		page = 1
	}

	cacheKey := s.searchCacheKey(criteria, sortKey, page, limit)
	if cached := s.cachedResult(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	events, err := s.Events.GetAll(ctx)
	if err != nil {
		return nil, &TransientFetchError{Op: "event catalog", Err: err}
	}

	filtered := FilterEvents(events, criteria)
	SortEvents(filtered, sortKey)

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	result := &SearchResult{
		Events: filtered[start:end],
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	s.cacheResult(ctx, cacheKey, result)
	return result, nil
}

// GetEvent returns a single event with its derived availability state.
func (s *DefaultDiscoveryService) GetEvent(ctx context.Context, eventID string) (*models.Event, Availability, error) {
	ev, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, "", &TransientFetchError{Op: "event catalog", Err: err}
	}
	if ev == nil {
		return nil, "", fmt.Errorf("event %s not found", eventID)
	}
	return ev, AvailabilityOf(*ev), nil
}

// JoinEvent claims one spot. The precondition check rejects joins against a
// known-full event before any mutation; the repository re-validates capacity
// inside the commit, so a concurrent fill between check and commit still
// cannot oversell. The authoritative post-commit event is returned so the
// caller can reconcile optimistic local state.
func (s *DefaultDiscoveryService) JoinEvent(ctx context.Context, eventID string, user models.JoinedUser) (*models.Event, error) {
	ev, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, &TransientFetchError{Op: "event catalog", Err: err}
	}
	if ev == nil {
		return nil, fmt.Errorf("event %s not found", eventID)
	}
	if !CanJoin(*ev) {
		return nil, &CapacityError{EventID: eventID}
	}

	updated, err := s.Events.CommitJoin(ctx, eventID, user)
	if err == eventRepo.ErrNoCapacity {
		return nil, &CapacityError{EventID: eventID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to join event %s: %w", eventID, err)
	}

	utils.GetLogger().Info("User joined event",
		zap.String("eventID", eventID),
		zap.String("user", user.Name),
		zap.Int("currentParticipants", updated.CurrentParticipants))
	return updated, nil
}

// MatchBuddies scores every candidate against the profile and returns them
// ranked best match first.
func (s *DefaultDiscoveryService) MatchBuddies(ctx context.Context, profile MatchProfile) ([]models.BuddyMatch, error) {
	travelers, err := s.Travelers.GetAll(ctx)
	if err != nil {
		return nil, &TransientFetchError{Op: "traveler catalog", Err: err}
	}

	matches := make([]models.BuddyMatch, 0, len(travelers))
	for _, t := range travelers {
		matches = append(matches, models.BuddyMatch{
			Traveler:        t,
			Compatibility:   CompatibilityScore(profile, t),
			MutualInterests: MutualInterests(profile.Interests, t.Interests),
		})
	}
	SortMatches(matches)
	return matches, nil
}

func (s *DefaultDiscoveryService) searchCacheKey(criteria Criteria, sortKey SortKey, page, limit int) string {
	payload, err := json.Marshal(struct {
		Criteria Criteria `json:"criteria"`
		Sort     SortKey  `json:"sort"`
		Page     int      `json:"page"`
		Limit    int      `json:"limit"`
	}{criteria, sortKey, page, limit})
	if err != nil {
		return ""
	}
	return fmt.Sprintf("search:%x", payload)
}

func (s *DefaultDiscoveryService) cachedResult(ctx context.Context, key string) *SearchResult {
	if s.Cache == nil || key == "" {
		return nil
	}
	cached, err := s.Cache.Get(ctx, key).Result()
	if err != nil || cached == "" {
		return nil
	}
	var result SearchResult
	if err := json.Unmarshal([]byte(cached), &result); err != nil {
		return nil
	}
	return &result
}

func (s *DefaultDiscoveryService) cacheResult(ctx context.Context, key string, result *SearchResult) {
	if s.Cache == nil || key == "" {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	s.Cache.Set(ctx, key, data, utils.DiscoveryCacheTTL)
}
