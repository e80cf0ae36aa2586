package discovery

import (
	"testing"
	"time"

	"eventvibe/models"
)

func TestCompatibilityScoreComponents(t *testing.T) {
	dates := models.DateRange{
		From: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		profile  MatchProfile
		traveler models.Traveler
		want     int
	}{
		{
			"nothing in common",
			MatchProfile{Interests: []string{"hiking"}},
			models.Traveler{Interests: []string{"cooking"}},
			0,
		},
		{
			"identical interests only",
			MatchProfile{Interests: []string{"hiking", "photography"}},
			models.Traveler{Interests: []string{"hiking", "photography"}},
			70,
		},
		{
			"language bonus only",
			MatchProfile{Languages: []string{"English"}},
			models.Traveler{Languages: []string{"english"}},
			15,
		},
		{
			"destination bonus only",
			MatchProfile{Destination: "Goa"},
			models.Traveler{Destination: "goa"},
			10,
		},
		{
			"date overlap bonus only",
			MatchProfile{TravelDates: dates},
			models.Traveler{TravelDates: dates},
			5,
		},
		{
			"everything lines up",
			MatchProfile{
				Interests:   []string{"hiking", "food"},
				Languages:   []string{"English"},
				Destination: "Goa",
				TravelDates: dates,
			},
			models.Traveler{
				Interests:   []string{"Hiking", "Food"},
				Languages:   []string{"English", "Konkani"},
				Destination: "Goa",
				TravelDates: dates,
			},
			100,
		},
		{
			"half interest overlap",
			MatchProfile{Interests: []string{"hiking", "food"}},
			models.Traveler{Interests: []string{"hiking", "surfing"}},
			23, // 70 * 1/3, rounded
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompatibilityScore(tt.profile, tt.traveler); got != tt.want {
				t.Errorf("CompatibilityScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompatibilityScoreSymmetry(t *testing.T) {
	a := []string{"hiking", "food", "photography"}
	b := []string{"food", "surfing"}

	forward := CompatibilityScore(MatchProfile{Interests: a}, models.Traveler{Interests: b})
	reverse := CompatibilityScore(MatchProfile{Interests: b}, models.Traveler{Interests: a})
	if forward != reverse {
		t.Errorf("interest component is asymmetric: %d vs %d", forward, reverse)
	}
}

func TestCompatibilityScoreMonotonicInSharedInterests(t *testing.T) {
	traveler := models.Traveler{Interests: []string{"hiking", "food", "photography"}}

	two := CompatibilityScore(MatchProfile{Interests: []string{"hiking", "food", "chess"}}, traveler)
	three := CompatibilityScore(MatchProfile{Interests: []string{"hiking", "food", "photography"}}, traveler)
	if three <= two {
		t.Errorf("score did not grow with shared interests: 2 shared = %d, 3 shared = %d", two, three)
	}
}

func TestCompatibilityScoreBounds(t *testing.T) {
	profiles := []MatchProfile{
		{},
		{Interests: []string{"a", "b", "c"}},
		{Interests: []string{"x"}, Languages: []string{"English"}, Destination: "Goa"},
	}
	travelers := []models.Traveler{
		{},
		{Interests: []string{"a"}},
		{Interests: []string{"x"}, Languages: []string{"English"}, Destination: "Goa"},
	}
	for _, p := range profiles {
		for _, tr := range travelers {
			got := CompatibilityScore(p, tr)
			if got < 0 || got > 100 {
				t.Errorf("CompatibilityScore(%+v, %+v) = %d, out of [0,100]", p, tr, got)
			}
		}
	}
}

func TestMutualInterests(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want int
	}{
		{"disjoint", []string{"hiking"}, []string{"food"}, 0},
		{"case-insensitive", []string{"Hiking", "Food"}, []string{"hiking", "surfing"}, 1},
		{"duplicates count once", []string{"food", "food"}, []string{"food"}, 1},
		{"both empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MutualInterests(tt.a, tt.b); got != tt.want {
				t.Errorf("MutualInterests(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
