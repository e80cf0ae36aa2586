package discovery

import (
	"strings"
	"time"

	"eventvibe/models"
)

// Criteria is one discovery filter set. Zero-valued ("all"/unset) criteria
// impose no constraint; an event is included iff it satisfies every
// non-default criterion, so application order never changes the result.
type Criteria struct {
	Query     string     `json:"query,omitempty"`
	Category  string     `json:"category,omitempty"`
	State     string     `json:"state,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	PriceKind string     `json:"priceKind,omitempty"`
	Interests []string   `json:"interests,omitempty"`
	Languages []string   `json:"languages,omitempty"`
	GroupSize string     `json:"groupSize,omitempty"`
	AgeBand   string     `json:"ageBand,omitempty"`
}

// Group size bands offered by the filter UI.
const (
	GroupSizeSmall  = "2-5"
	GroupSizeMedium = "6-10"
	GroupSizeLarge  = "10+"
)

func isDefault(value string) bool {
	return value == "" || strings.EqualFold(value, "all")
}

// Matches reports whether the event satisfies the logical AND of every
// non-default criterion.
func (c Criteria) Matches(e models.Event) bool {
	if !c.matchesQuery(e) {
		return false
	}
	if !isDefault(c.Category) && !strings.EqualFold(e.Category, c.Category) {
		return false
	}
	if !isDefault(c.State) && !strings.EqualFold(e.State, c.State) {
		return false
	}
	if c.Date != nil && !sameCalendarDay(e.Date, *c.Date) {
		return false
	}
	if !isDefault(c.PriceKind) && !strings.EqualFold(e.Price.Kind, c.PriceKind) {
		return false
	}
	if len(c.Interests) > 0 && !anyOverlap(e.Tags, c.Interests) {
		return false
	}
	if len(c.Languages) > 0 && !anyOverlap(e.Languages, c.Languages) {
		return false
	}
	if !isDefault(c.GroupSize) && groupSizeBand(e.MaxParticipants) != c.GroupSize {
		return false
	}
	if !isDefault(c.AgeBand) && e.AgeBand != "" && !strings.EqualFold(e.AgeBand, c.AgeBand) {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring match against title,
// description and location, ORed across the three fields.
func (c Criteria) matchesQuery(e models.Event) bool {
	if c.Query == "" {
		return true
	}
	q := strings.ToLower(c.Query)
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Location), q)
}

// sameCalendarDay compares calendar dates only; time of day is ignored.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func anyOverlap(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func groupSizeBand(maxParticipants int) string {
	switch {
	case maxParticipants > 10:
		return GroupSizeLarge
	case maxParticipants >= 6:
		return GroupSizeMedium
	default:
		return GroupSizeSmall
	}
}

// FilterEvents returns the events satisfying the criteria, preserving the
// catalog order. The result is never nil: an empty slice is the valid
// "no matches" state.
func FilterEvents(events []models.Event, c Criteria) []models.Event {
	filtered := make([]models.Event, 0, len(events))
	for _, e := range events {
		if c.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
