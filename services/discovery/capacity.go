package discovery

import "eventvibe/models"

// Availability is the capacity state of an event.
type Availability string

const (
	Open       Availability = "open"
	AlmostFull Availability = "almost_full"
	Full       Availability = "full"
)

// almostFullThreshold is the spot count at or below which an event is
// flagged as almost full.
const almostFullThreshold = 2

// AvailabilityOf derives the capacity state from the participant counts.
func AvailabilityOf(e models.Event) Availability {
	spots := e.AvailableSpots()
	switch {
	case spots == 0:
		return Full
	case spots <= almostFullThreshold:
		return AlmostFull
	default:
		return Open
	}
}

// CanJoin reports whether a join attempt is permitted at all. This is the
// render-time precondition; the commit re-validates against the store.
func CanJoin(e models.Event) bool {
	return AvailabilityOf(e) != Full
}
