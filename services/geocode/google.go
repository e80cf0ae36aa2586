package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"eventvibe/config"
)

// geocodeResponse represents the structure of the response from the Google
// Geocoding API, reduced to the fields we read.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// GoogleGeocoder resolves coordinates via the Google Geocoding API.
type GoogleGeocoder struct {
	Client *http.Client
}

// NewGoogleGeocoder returns a geocoder with a bounded request timeout.
func NewGoogleGeocoder() *GoogleGeocoder {
	return &GoogleGeocoder{Client: &http.Client{Timeout: 10 * time.Second}}
}

// Resolve reverse-geocodes the coordinates and returns the locality name.
func (g *GoogleGeocoder) Resolve(ctx context.Context, lat, lng float64) (string, error) {
	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		return "", fmt.Errorf("geocoding API key not configured")
	}

	url := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?latlng=%f,%f&key=%s",
		lat, lng, apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build geocoding request: %w", err)
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return "", fmt.Errorf("no geocoding result for %f,%f", lat, lng)
	}

	for _, component := range decoded.Results[0].AddressComponents {
		for _, t := range component.Types {
			if t == "locality" {
				return component.LongName, nil
			}
		}
	}
	return "", fmt.Errorf("no locality in geocoding result for %f,%f", lat, lng)
}
