package discovery

import (
	"math"
	"strings"

	"eventvibe/models"
)

// Scoring weights. Interest overlap dominates; the boolean bonuses reward
// shared language and matching travel plans. Weights sum to 100 so the
// score is already normalized.
const (
	interestWeight   = 70.0
	languageBonus    = 15.0
	destinationBonus = 10.0
	dateOverlapBonus = 5.0
)

// MatchProfile is the requesting user's side of a compatibility computation.
type MatchProfile struct {
	Interests   []string
	Languages   []string
	Destination string
	TravelDates models.DateRange
}

// ProfileFromUser derives a match profile from a registered account.
func ProfileFromUser(u models.User) MatchProfile {
	return MatchProfile{
		Interests: u.Hobbies,
		Languages: u.Languages,
	}
}

// CompatibilityScore computes a normalized score in [0,100] between the
// profile and a candidate. The interest component is the Jaccard ratio of
// the two interest sets, so the score is symmetric in its inputs and never
// decreases when the mutual-interest count grows with all else fixed.
func CompatibilityScore(p MatchProfile, t models.Traveler) int {
	score := interestWeight * jaccard(p.Interests, t.Interests)
	if anyOverlap(p.Languages, t.Languages) {
		score += languageBonus
	}
	if p.Destination != "" && strings.EqualFold(p.Destination, t.Destination) {
		score += destinationBonus
	}
	if p.TravelDates.Overlaps(t.TravelDates) {
		score += dateOverlapBonus
	}
	return int(math.Round(score))
}

// MutualInterests counts the distinct interests shared by both sides.
func MutualInterests(a, b []string) int {
	return len(intersect(a, b))
}

// jaccard is |A∩B| / |A∪B|, with 0 for two empty sets.
func jaccard(a, b []string) float64 {
	union := make(map[string]bool)
	for _, s := range normalizeSet(a) {
		union[s] = true
	}
	inter := 0
	for _, s := range normalizeSet(b) {
		if union[s] {
			inter++
		}
		union[s] = true
	}
	if len(union) == 0 {
		return 0
	}
	return float64(inter) / float64(len(union))
}

func intersect(a, b []string) []string {
	inA := make(map[string]bool)
	for _, s := range normalizeSet(a) {
		inA[s] = true
	}
	var out []string
	for _, s := range normalizeSet(b) {
		if inA[s] {
			out = append(out, s)
			inA[s] = false
		}
	}
	return out
}

func normalizeSet(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
