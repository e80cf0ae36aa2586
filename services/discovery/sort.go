package discovery

import (
	"sort"
	"strings"

	"eventvibe/models"
)

// SortKey selects the active result ordering.
type SortKey string

const (
	SortPopularity   SortKey = "popularity"
	SortRating       SortKey = "rating"
	SortAlphabetical SortKey = "alphabetical"
	SortDate         SortKey = "date"
)

// SortEvents reorders the slice in place by the given key. All comparators
// are stable so equal keys keep their relative input order and repeated
// sorts of unchanged input are deterministic.
func SortEvents(events []models.Event, key SortKey) {
	switch key {
	case SortPopularity:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].CurrentParticipants > events[j].CurrentParticipants
		})
	case SortRating:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Organizer.Rating > events[j].Organizer.Rating
		})
	case SortAlphabetical:
		sort.SliceStable(events, func(i, j int) bool {
			return strings.ToLower(events[i].Title) < strings.ToLower(events[j].Title)
		})
	case SortDate:
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].Date.Equal(events[j].Date) {
				return events[i].Time < events[j].Time
			}
			return events[i].Date.Before(events[j].Date)
		})
	}
}

// SortMatches orders buddy matches by compatibility, best first. Stable, so
// ties keep catalog order.
func SortMatches(matches []models.BuddyMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Compatibility > matches[j].Compatibility
	})
}
