package geocode

import "context"

// Geocoder resolves coordinates to a human-readable city name.
type Geocoder interface {
	Resolve(ctx context.Context, lat, lng float64) (string, error)
}
