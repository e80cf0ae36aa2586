package models

import "time"

// Traveler is a prospective companion profile served by the catalog.
type Traveler struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Age          int       `json:"age" bson:"age"`
	City         string    `json:"city" bson:"city"`
	ProfilePhoto string    `json:"profilePhoto,omitempty" bson:"profilePhoto,omitempty"`
	Rating       float64   `json:"rating" bson:"rating"`
	TripCount    int       `json:"tripCount" bson:"tripCount"`
	Interests    []string  `json:"interests" bson:"interests"`
	Languages    []string  `json:"languages" bson:"languages"`
	Destination  string    `json:"destination" bson:"destination"`
	TravelDates  DateRange `json:"travelDates" bson:"travelDates"`
	BudgetBand   string    `json:"budgetBand,omitempty" bson:"budgetBand,omitempty"`
	GroupSize    string    `json:"groupSize,omitempty" bson:"groupSize,omitempty"`
	Bio          string    `json:"bio,omitempty" bson:"bio,omitempty"`
	ResponseRate int       `json:"responseRate" bson:"responseRate"`
	LastActive   time.Time `json:"lastActive" bson:"lastActive"`
}

// BuddyMatch pairs a traveler with the scores computed against the
// requesting user's profile.
type BuddyMatch struct {
	Traveler        Traveler `json:"traveler"`
	Compatibility   int      `json:"compatibility"`
	MutualInterests int      `json:"mutualInterests"`
}
