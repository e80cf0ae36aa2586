package discovery

import (
	"reflect"
	"testing"
	"time"

	"eventvibe/models"
)

func titles(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Title
	}
	return out
}

func TestSortEventsAlphabetical(t *testing.T) {
	events := []models.Event{
		{Title: "Goa"},
		{Title: "ajanta"},
		{Title: "Hampi"},
	}

	SortEvents(events, SortAlphabetical)
	want := []string{"ajanta", "Goa", "Hampi"}
	if got := titles(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("alphabetical sort = %v, want %v (case-insensitive)", got, want)
	}

	// Sorting already-sorted input changes nothing.
	SortEvents(events, SortAlphabetical)
	if got := titles(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("resort changed order: %v", got)
	}
}

func TestSortEventsPopularity(t *testing.T) {
	events := []models.Event{
		{Title: "quiet", CurrentParticipants: 2},
		{Title: "packed", CurrentParticipants: 9},
		{Title: "mid", CurrentParticipants: 5},
	}
	SortEvents(events, SortPopularity)
	want := []string{"packed", "mid", "quiet"}
	if got := titles(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("popularity sort = %v, want %v", got, want)
	}
}

func TestSortEventsRating(t *testing.T) {
	events := []models.Event{
		{Title: "b", Organizer: models.Organizer{Rating: 4.2}},
		{Title: "a", Organizer: models.Organizer{Rating: 4.9}},
		{Title: "c", Organizer: models.Organizer{Rating: 3.1}},
	}
	SortEvents(events, SortRating)
	want := []string{"a", "b", "c"}
	if got := titles(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("rating sort = %v, want %v", got, want)
	}
}

func TestSortEventsDate(t *testing.T) {
	day := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		{Title: "later day", Date: day.AddDate(0, 0, 7)},
		{Title: "same day evening", Date: day, Time: "19:00"},
		{Title: "same day morning", Date: day, Time: "07:00"},
	}
	SortEvents(events, SortDate)
	want := []string{"same day morning", "same day evening", "later day"}
	if got := titles(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("date sort = %v, want %v", got, want)
	}
}

func TestSortEventsStability(t *testing.T) {
	// Equal keys keep their relative input order.
	events := []models.Event{
		{ID: "first", CurrentParticipants: 5},
		{ID: "second", CurrentParticipants: 5},
		{ID: "third", CurrentParticipants: 5},
	}
	SortEvents(events, SortPopularity)
	if events[0].ID != "first" || events[1].ID != "second" || events[2].ID != "third" {
		t.Fatalf("equal-key order changed: %v", eventIDs(events))
	}
}

func TestSortMatches(t *testing.T) {
	matches := []models.BuddyMatch{
		{Traveler: models.Traveler{ID: "low"}, Compatibility: 20},
		{Traveler: models.Traveler{ID: "high"}, Compatibility: 85},
		{Traveler: models.Traveler{ID: "tie-a"}, Compatibility: 50},
		{Traveler: models.Traveler{ID: "tie-b"}, Compatibility: 50},
	}
	SortMatches(matches)

	gotIDs := make([]string, len(matches))
	for i, m := range matches {
		gotIDs[i] = m.Traveler.ID
	}
	want := []string{"high", "tie-a", "tie-b", "low"}
	if !reflect.DeepEqual(gotIDs, want) {
		t.Fatalf("SortMatches = %v, want %v", gotIDs, want)
	}
}
