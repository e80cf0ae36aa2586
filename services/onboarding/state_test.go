package onboarding

import (
	"reflect"
	"testing"
	"time"

	"eventvibe/models"
)

func TestStepOrder(t *testing.T) {
	if got := nextStep(StepPhone); got != StepPassword {
		t.Errorf("nextStep(StepPhone) = %q, want %q", got, StepPassword)
	}
	if got := nextStep(StepLocation); got != StepComplete {
		t.Errorf("nextStep(StepLocation) = %q, want %q", got, StepComplete)
	}
	if got := nextStep(StepComplete); got != StepComplete {
		t.Errorf("nextStep(StepComplete) = %q, want %q", got, StepComplete)
	}
	if got := prevStep(StepPhone); got != StepPhone {
		t.Errorf("prevStep(StepPhone) = %q, want %q", got, StepPhone)
	}
	if got := prevStep(StepPassword); got != StepPhone {
		t.Errorf("prevStep(StepPassword) = %q, want %q", got, StepPhone)
	}

	// Walking forward from the first step visits every state exactly once.
	seen := map[Step]bool{StepPhone: true}
	for s := StepPhone; s != StepComplete; s = nextStep(s) {
		next := nextStep(s)
		if next != StepComplete && seen[next] {
			t.Fatalf("step %q visited twice", next)
		}
		seen[next] = true
	}
	if len(seen) != len(stepOrder) {
		t.Errorf("walk visited %d states, want %d", len(seen), len(stepOrder))
	}
}

func TestTruncateFrom(t *testing.T) {
	fullDraft := func() models.RegistrationDraft {
		return models.RegistrationDraft{
			Phone:          "9876543210",
			Password:       "sunnybeach42",
			Name:           "Asha",
			ProfilePicture: "profiles/abc",
			Gender:         "female",
			BirthDate:      time.Date(1996, 6, 15, 0, 0, 0, 0, time.UTC),
			Age:            30,
			Occupation:     "Student",
			Company:        "IIT",
			Languages:      []string{"English", "Hindi"},
			Hobbies:        []string{"Hiking", "Cooking", "Yoga"},
			Location:       &models.GeoLocation{Lat: 12.9, Lng: 77.5, City: "Bengaluru"},
		}
	}

	t.Run("from gender clears gender and everything after", func(t *testing.T) {
		draft := fullDraft()
		truncateFrom(&draft, StepGender)

		if draft.Phone == "" || draft.Password == "" || draft.Name == "" || draft.ProfilePicture == "" {
			t.Error("fields before the truncation point were cleared")
		}
		if draft.Gender != "" || !draft.BirthDate.IsZero() || draft.Age != 0 ||
			draft.Occupation != "" || draft.Company != "" ||
			draft.Languages != nil || draft.Hobbies != nil || draft.Location != nil {
			t.Errorf("fields from the truncation point survived: %+v", draft)
		}
	})

	t.Run("from phone clears the whole draft", func(t *testing.T) {
		draft := fullDraft()
		truncateFrom(&draft, StepPhone)
		if !reflect.DeepEqual(draft, models.RegistrationDraft{}) {
			t.Errorf("draft not fully cleared: %+v", draft)
		}
	})

	t.Run("from location clears only location", func(t *testing.T) {
		draft := fullDraft()
		truncateFrom(&draft, StepLocation)
		if draft.Location != nil {
			t.Error("location survived truncation")
		}
		if draft.Hobbies == nil || draft.Languages == nil {
			t.Error("earlier fields were cleared")
		}
	})
}
