package discovery

import (
	"testing"

	"eventvibe/models"
)

func TestAvailabilityOf(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		current int
		want    Availability
		canJoin bool
	}{
		{"plenty of room", 6, 3, Open, true},
		{"three spots is still open", 10, 7, Open, true},
		{"two spots is almost full", 6, 4, AlmostFull, true},
		{"one spot is almost full", 6, 5, AlmostFull, true},
		{"no spots is full", 6, 6, Full, false},
		{"overbooked clamps to full", 6, 7, Full, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := models.Event{MaxParticipants: tt.max, CurrentParticipants: tt.current}
			if got := AvailabilityOf(e); got != tt.want {
				t.Errorf("AvailabilityOf(%d/%d) = %q, want %q", tt.current, tt.max, got, tt.want)
			}
			if got := CanJoin(e); got != tt.canJoin {
				t.Errorf("CanJoin(%d/%d) = %v, want %v", tt.current, tt.max, got, tt.canJoin)
			}
		})
	}
}

func TestAvailableSpotsAcrossJoins(t *testing.T) {
	e := models.Event{MaxParticipants: 6, CurrentParticipants: 3}
	if got := e.AvailableSpots(); got != 3 {
		t.Fatalf("AvailableSpots = %d, want 3", got)
	}

	e.CurrentParticipants++
	if got := e.AvailableSpots(); got != 2 {
		t.Fatalf("AvailableSpots after join = %d, want 2", got)
	}
	if AvailabilityOf(e) != AlmostFull {
		t.Errorf("event with 2 spots should be almost full")
	}

	e.CurrentParticipants = e.MaxParticipants
	if got := e.AvailableSpots(); got != 0 {
		t.Fatalf("AvailableSpots at capacity = %d, want 0", got)
	}
}
