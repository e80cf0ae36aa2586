package discovery

import (
	"context"
	"errors"
	"testing"

	eventRepo "eventvibe/database/repository/event"
	"eventvibe/models"
)

// fakeEventRepo serves a fixed catalog. joinErr lets a test force the
// commit-time outcome independently of the snapshot the precheck saw.
type fakeEventRepo struct {
	events  []models.Event
	err     error
	joinErr error
}

func (f *fakeEventRepo) GetAll(ctx context.Context) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.events {
		if f.events[i].ID == id {
			e := f.events[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) CommitJoin(ctx context.Context, eventID string, user models.JoinedUser) (*models.Event, error) {
	if f.joinErr != nil {
		return nil, f.joinErr
	}
	for i := range f.events {
		if f.events[i].ID == eventID {
			if f.events[i].AvailableSpots() == 0 {
				return nil, eventRepo.ErrNoCapacity
			}
			f.events[i].CurrentParticipants++
			f.events[i].JoinedUsers = append(f.events[i].JoinedUsers, user)
			e := f.events[i]
			return &e, nil
		}
	}
	return nil, errors.New("event not found")
}

type fakeTravelerRepo struct {
	travelers []models.Traveler
	err       error
}

func (f *fakeTravelerRepo) GetAll(ctx context.Context) ([]models.Traveler, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.travelers, nil
}

func TestSearchEventsEmptyResultIsNotAnError(t *testing.T) {
	svc := &DefaultDiscoveryService{
		Events:    &fakeEventRepo{events: testCatalog()},
		Travelers: &fakeTravelerRepo{},
	}

	result, err := svc.SearchEvents(context.Background(), Criteria{Query: "nothing matches this"}, SortPopularity, 1, 20)
	if err != nil {
		t.Fatalf("SearchEvents failed: %v", err)
	}
	if result.Events == nil {
		t.Fatal("Events is nil; the empty result must be a valid state")
	}
	if len(result.Events) != 0 || result.Total != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}

func TestSearchEventsFetchFailure(t *testing.T) {
	svc := &DefaultDiscoveryService{
		Events:    &fakeEventRepo{err: errors.New("connection refused")},
		Travelers: &fakeTravelerRepo{},
	}

	_, err := svc.SearchEvents(context.Background(), Criteria{}, SortPopularity, 1, 20)
	if !IsTransientFetchError(err) {
		t.Fatalf("catalog failure error = %v, want TransientFetchError", err)
	}
}

func TestSearchEventsPagination(t *testing.T) {
	svc := &DefaultDiscoveryService{
		Events:    &fakeEventRepo{events: testCatalog()},
		Travelers: &fakeTravelerRepo{},
	}
	ctx := context.Background()

	page1, err := svc.SearchEvents(ctx, Criteria{}, SortAlphabetical, 1, 2)
	if err != nil {
		t.Fatalf("SearchEvents failed: %v", err)
	}
	if len(page1.Events) != 2 || page1.Total != 3 {
		t.Fatalf("page 1 = %d events of %d total, want 2 of 3", len(page1.Events), page1.Total)
	}

	page2, err := svc.SearchEvents(ctx, Criteria{}, SortAlphabetical, 2, 2)
	if err != nil {
		t.Fatalf("SearchEvents failed: %v", err)
	}
	if len(page2.Events) != 1 {
		t.Fatalf("page 2 = %d events, want 1", len(page2.Events))
	}
	if page1.Events[0].ID == page2.Events[0].ID {
		t.Error("pages overlap")
	}

	// A page past the end is empty, not an error.
	page9, err := svc.SearchEvents(ctx, Criteria{}, SortAlphabetical, 9, 2)
	if err != nil {
		t.Fatalf("SearchEvents failed: %v", err)
	}
	if len(page9.Events) != 0 {
		t.Errorf("page past the end = %d events, want 0", len(page9.Events))
	}
}

func TestGetEvent(t *testing.T) {
	svc := &DefaultDiscoveryService{
		Events:    &fakeEventRepo{events: testCatalog()},
		Travelers: &fakeTravelerRepo{},
	}
	ctx := context.Background()

	ev, availability, err := svc.GetEvent(ctx, "e1")
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if ev.ID != "e1" || availability != Open {
		t.Errorf("GetEvent = %q/%q, want e1/open", ev.ID, availability)
	}

	if _, _, err := svc.GetEvent(ctx, "missing"); err == nil {
		t.Error("GetEvent for unknown id succeeded")
	}
}

func TestJoinEvent(t *testing.T) {
	repo := &fakeEventRepo{events: []models.Event{
		{ID: "open", MaxParticipants: 6, CurrentParticipants: 3},
		{ID: "full", MaxParticipants: 4, CurrentParticipants: 4},
	}}
	svc := &DefaultDiscoveryService{Events: repo, Travelers: &fakeTravelerRepo{}}
	ctx := context.Background()
	user := models.JoinedUser{Name: "Asha"}

	updated, err := svc.JoinEvent(ctx, "open", user)
	if err != nil {
		t.Fatalf("JoinEvent failed: %v", err)
	}
	if updated.CurrentParticipants != 4 {
		t.Errorf("participants = %d, want 4", updated.CurrentParticipants)
	}
	if len(updated.JoinedUsers) != 1 || updated.JoinedUsers[0].Name != "Asha" {
		t.Errorf("roster = %v, want the joining user appended", updated.JoinedUsers)
	}

	_, err = svc.JoinEvent(ctx, "full", user)
	if !IsCapacityError(err) {
		t.Fatalf("join of full event error = %v, want CapacityError", err)
	}

	// The full event's state is untouched by the rejected attempt.
	full, _ := repo.GetByID(ctx, "full")
	if full.CurrentParticipants != 4 || len(full.JoinedUsers) != 0 {
		t.Errorf("rejected join mutated the event: %+v", full)
	}
}

func TestJoinEventCommitTimeRevalidation(t *testing.T) {
	// The snapshot shows a free spot, but the store reports no capacity at
	// commit time: someone else took the last spot in between.
	repo := &fakeEventRepo{
		events:  []models.Event{{ID: "racy", MaxParticipants: 6, CurrentParticipants: 5}},
		joinErr: eventRepo.ErrNoCapacity,
	}
	svc := &DefaultDiscoveryService{Events: repo, Travelers: &fakeTravelerRepo{}}

	_, err := svc.JoinEvent(context.Background(), "racy", models.JoinedUser{Name: "Asha"})
	if !IsCapacityError(err) {
		t.Fatalf("lost race error = %v, want CapacityError", err)
	}
}

func TestMatchBuddies(t *testing.T) {
	travelers := []models.Traveler{
		{ID: "t1", Name: "Ravi", Interests: []string{"chess"}},
		{ID: "t2", Name: "Meera", Interests: []string{"hiking", "food"}, Languages: []string{"English"}},
		{ID: "t3", Name: "Dev", Interests: []string{"hiking"}},
	}
	svc := &DefaultDiscoveryService{
		Events:    &fakeEventRepo{},
		Travelers: &fakeTravelerRepo{travelers: travelers},
	}

	profile := MatchProfile{Interests: []string{"hiking", "food"}, Languages: []string{"English"}}
	matches, err := svc.MatchBuddies(context.Background(), profile)
	if err != nil {
		t.Fatalf("MatchBuddies failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("matches = %d, want every candidate scored", len(matches))
	}
	if matches[0].Traveler.ID != "t2" {
		t.Errorf("best match = %s, want t2", matches[0].Traveler.ID)
	}
	if matches[0].MutualInterests != 2 {
		t.Errorf("mutual interests = %d, want 2", matches[0].MutualInterests)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Compatibility > matches[i-1].Compatibility {
			t.Fatalf("matches not ranked: %d before %d", matches[i-1].Compatibility, matches[i].Compatibility)
		}
	}
}

func TestMatchBuddiesFetchFailure(t *testing.T) {
	svc := &DefaultDiscoveryService{
		Events:    &fakeEventRepo{},
		Travelers: &fakeTravelerRepo{err: errors.New("connection refused")},
	}

	_, err := svc.MatchBuddies(context.Background(), MatchProfile{})
	if !IsTransientFetchError(err) {
		t.Fatalf("traveler catalog failure error = %v, want TransientFetchError", err)
	}
}
