package onboarding

import (
	"time"

	"eventvibe/models"
)

// Step identifies one state of the onboarding wizard.
type Step string

const (
	StepPhone      Step = "phone"
	StepPassword   Step = "password"
	StepName       Step = "name"
	StepPhoto      Step = "photo"
	StepGender     Step = "gender"
	StepBirthDate  Step = "birthdate"
	StepOccupation Step = "occupation"
	StepLanguages  Step = "languages"
	StepHobbies    Step = "hobbies"
	StepLocation   Step = "location"
	StepComplete   Step = "complete"
)

// stepOrder is the fixed wizard sequence. StepComplete is terminal and only
// reachable by passing StepLocation.
var stepOrder = []Step{
	StepPhone,
	StepPassword,
	StepName,
	StepPhoto,
	StepGender,
	StepBirthDate,
	StepOccupation,
	StepLanguages,
	StepHobbies,
	StepLocation,
	StepComplete,
}

func stepIndex(s Step) int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// nextStep returns the state following s, or StepComplete when s is terminal.
func nextStep(s Step) Step {
	idx := stepIndex(s)
	if idx < 0 || idx >= len(stepOrder)-1 {
		return StepComplete
	}
	return stepOrder[idx+1]
}

// prevStep returns the state preceding s, or s itself when already initial.
func prevStep(s Step) Step {
	idx := stepIndex(s)
	if idx <= 0 {
		return s
	}
	return stepOrder[idx-1]
}

// clearStepFields removes from the draft the fields collected by the given
// step. Used on back-navigation so stale answers never survive a revisit.
func clearStepFields(draft *models.RegistrationDraft, s Step) {
	switch s {
	case StepPhone:
		draft.Phone = ""
	case StepPassword:
		draft.Password = ""
	case StepName:
		draft.Name = ""
	case StepPhoto:
		draft.ProfilePicture = ""
	case StepGender:
		draft.Gender = ""
	case StepBirthDate:
		draft.BirthDate = time.Time{}
		draft.Age = 0
	case StepOccupation:
		draft.Occupation = ""
		draft.Company = ""
	case StepLanguages:
		draft.Languages = nil
	case StepHobbies:
		draft.Hobbies = nil
	case StepLocation:
		draft.Location = nil
	}
}

// truncateFrom clears the draft fields of step s and every step after it,
// so re-submission fully overwrites rather than merges.
func truncateFrom(draft *models.RegistrationDraft, s Step) {
	idx := stepIndex(s)
	if idx < 0 {
		return
	}
	for _, step := range stepOrder[idx:] {
		clearStepFields(draft, step)
	}
}
