package models

import "time"

// Event categories offered in the catalog.
const (
	CategoryTravel      = "travel"
	CategoryFitness     = "fitness"
	CategorySocial      = "social"
	CategoryAdventure   = "adventure"
	CategoryFood        = "food"
	CategoryPhotography = "photography"
)

// Price kinds. Fixed prices carry an amount; the others do not.
const (
	PriceFree  = "free"
	PriceFixed = "fixed"
	PriceSplit = "split" // everyone pays their own way
)

// Price describes what joining an event costs.
type Price struct {
	Kind   string  `json:"kind" bson:"kind"`
	Amount float64 `json:"amount,omitempty" bson:"amount,omitempty"`
}

// Organizer is the person hosting an event.
type Organizer struct {
	Name     string  `json:"name" bson:"name"`
	Rating   float64 `json:"rating" bson:"rating"`
	Verified bool    `json:"verified" bson:"verified"`
}

// JoinedUser is one attendee on an event's roster, in join order.
type JoinedUser struct {
	Name   string `json:"name" bson:"name"`
	Avatar string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

// Event is one joinable activity instance. Records are owned by the catalog;
// the only mutation this service performs is the join commit.
type Event struct {
	ID                  string       `json:"id" bson:"id"`
	Title               string       `json:"title" bson:"title"`
	Description         string       `json:"description" bson:"description"`
	Category            string       `json:"category" bson:"category"`
	Location            string       `json:"location" bson:"location"`
	State               string       `json:"state" bson:"state"`
	Date                time.Time    `json:"date" bson:"date"`
	Time                string       `json:"time" bson:"time"`
	Duration            string       `json:"duration" bson:"duration"`
	MaxParticipants     int          `json:"maxParticipants" bson:"maxParticipants"`
	CurrentParticipants int          `json:"currentParticipants" bson:"currentParticipants"`
	Price               Price        `json:"price" bson:"price"`
	Organizer           Organizer    `json:"organizer" bson:"organizer"`
	Tags                []string     `json:"tags,omitempty" bson:"tags,omitempty"`
	Languages           []string     `json:"languages,omitempty" bson:"languages,omitempty"`
	AgeBand             string       `json:"ageBand,omitempty" bson:"ageBand,omitempty"`
	JoinedUsers         []JoinedUser `json:"joinedUsers,omitempty" bson:"joinedUsers,omitempty"`
	CreatedAt           time.Time    `json:"createdAt" bson:"createdAt"`
}

// AvailableSpots is the remaining joinable capacity, never negative.
func (e Event) AvailableSpots() int {
	spots := e.MaxParticipants - e.CurrentParticipants
	if spots < 0 {
		return 0
	}
	return spots
}
