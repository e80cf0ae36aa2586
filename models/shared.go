package models

import "time"

// GeoLocation is a resolved point on the map.
type GeoLocation struct {
	Lat  float64 `json:"lat" bson:"lat"`
	Lng  float64 `json:"lng" bson:"lng"`
	City string  `json:"city" bson:"city"`
}

// DateRange is an inclusive calendar interval.
type DateRange struct {
	From time.Time `json:"from" bson:"from"`
	To   time.Time `json:"to" bson:"to"`
}

// Overlaps reports whether two ranges share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.From.IsZero() || other.From.IsZero() {
		return false
	}
	return !r.From.After(other.To) && !other.From.After(r.To)
}
