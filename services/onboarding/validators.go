package onboarding

import (
	"strings"
	"time"
	"unicode"

	"eventvibe/models"
)

const (
	minPhoneDigits  = 10
	maxPhoneDigits  = 15
	minPasswordLen  = 8
	minNameLen      = 2
	maxPhotoBytes   = 5 * 1024 * 1024
	minHobbies      = 3
	minAge          = 13
	maxAge          = 120
	defaultLanguage = "English"
	occupationOther = "Other"
)

// occupationOptions mirrors the choices offered by the client. "Other"
// requires a free-text value; skipping the step entirely is also valid.
var occupationOptions = []string{
	"Software Engineer/Developer",
	"Teacher/Educator",
	"Healthcare Professional",
	"Student",
	"Business Professional",
	"Creative/Artist",
	"Engineer",
	"Sales/Marketing",
	"Consultant",
	"Entrepreneur",
	"Finance Professional",
	"Government Employee",
	"Freelancer",
	"Retired",
	"Homemaker",
	occupationOther,
}

// ValidatePhone checks that the value is a syntactically plausible phone
// number. Anything stricter (country formats, carrier lookups) is delegated
// to the SMS gateway.
func ValidatePhone(phone string) error {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
			// separator characters are fine
		default:
			return newValidationError(StepPhone, "phone", "contains invalid characters")
		}
	}
	if digits < minPhoneDigits {
		return newValidationError(StepPhone, "phone", "please enter a valid phone number")
	}
	if digits > maxPhoneDigits {
		return newValidationError(StepPhone, "phone", "phone number is too long")
	}
	return nil
}

// PasswordStrength classifies a password as weak, medium or strong. The
// classification is informational only and never blocks submission.
func PasswordStrength(pw string) string {
	if len(pw) < 6 {
		return "weak"
	}
	if len(pw) < minPasswordLen {
		return "medium"
	}
	hasUpper := strings.IndexFunc(pw, unicode.IsUpper) >= 0
	hasDigit := strings.IndexFunc(pw, unicode.IsDigit) >= 0
	if hasUpper && hasDigit {
		return "strong"
	}
	return "medium"
}

// ValidatePassword enforces the minimum length and confirmation equality.
func ValidatePassword(password, confirm string) error {
	if password == "" {
		return newValidationError(StepPassword, "password", "please enter a password")
	}
	if len(password) < minPasswordLen {
		return newValidationError(StepPassword, "password", "password must be at least 8 characters")
	}
	if password != confirm {
		return newValidationError(StepPassword, "confirmPassword", "passwords do not match")
	}
	return nil
}

// ValidateName requires a trimmed length of at least two characters and
// restricts the value to letters and spaces.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len([]rune(trimmed)) < minNameLen {
		return newValidationError(StepName, "name", "name must be at least 2 characters")
	}
	for _, r := range trimmed {
		if !unicode.IsLetter(r) && r != ' ' {
			return newValidationError(StepName, "name", "name may only contain letters and spaces")
		}
	}
	return nil
}

func trimName(name string) string {
	return strings.TrimSpace(name)
}

// ValidatePhoto checks an uploaded file's content type and size. The photo
// step itself is optional; this runs only when a file was supplied.
func ValidatePhoto(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return newValidationError(StepPhoto, "profilePicture", "file must be an image")
	}
	if size > maxPhotoBytes {
		return newValidationError(StepPhoto, "profilePicture", "image must be 5MB or smaller")
	}
	return nil
}

// ValidateGender accepts only the fixed enumerated options.
func ValidateGender(gender string) error {
	if !models.ValidGender(gender) {
		return newValidationError(StepGender, "gender", "please select one of the listed options")
	}
	return nil
}

// ValidateBirthDate checks the day/month/year ranges, that they compose into
// a real calendar date not in the future, and that the derived age is within
// 13..120. It returns the composed date and age on success.
func ValidateBirthDate(day, month, year int, now time.Time) (time.Time, int, error) {
	if day < 1 || day > 31 {
		return time.Time{}, 0, newValidationError(StepBirthDate, "day", "day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, 0, newValidationError(StepBirthDate, "month", "month must be between 1 and 12")
	}
	if year < 1900 || year > now.Year() {
		return time.Time{}, 0, newValidationError(StepBirthDate, "year", "please enter a valid year")
	}

	birthDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. Feb 30 becomes Mar 2), so a changed
	// component means the date never existed.
	if birthDate.Day() != day || birthDate.Month() != time.Month(month) || birthDate.Year() != year {
		return time.Time{}, 0, newValidationError(StepBirthDate, "birthDate", "that date does not exist")
	}
	if birthDate.After(now) {
		return time.Time{}, 0, newValidationError(StepBirthDate, "birthDate", "birth date cannot be in the future")
	}

	age := computeAge(birthDate, now)
	if age < minAge {
		return time.Time{}, 0, newValidationError(StepBirthDate, "age", "you must be at least 13 years old to use EventVibe")
	}
	if age > maxAge {
		return time.Time{}, 0, newValidationError(StepBirthDate, "age", "please enter a valid birth date")
	}
	return birthDate, age, nil
}

func computeAge(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// ValidateOccupation accepts any listed option, requires free text when
// "Other" is selected, and allows an explicit skip.
func ValidateOccupation(occupation, custom string, skipped bool) (string, error) {
	if skipped {
		return "", nil
	}
	if occupation == occupationOther {
		trimmed := strings.TrimSpace(custom)
		if trimmed == "" {
			return "", newValidationError(StepOccupation, "customOccupation", "please tell us what you do")
		}
		return trimmed, nil
	}
	for _, opt := range occupationOptions {
		if occupation == opt {
			return occupation, nil
		}
	}
	return "", newValidationError(StepOccupation, "occupation", "please select an occupation or skip")
}

// toggleLanguage flips a language in or out of the selection. Removing
// English when it is the sole remaining entry is a no-op, so the set is
// never empty. The HTTP flow submits whole sets; this captures the selection
// semantics the submitted sets are built under.
func toggleLanguage(selected []string, language string) []string {
	for i, l := range selected {
		if l == language {
			if language == defaultLanguage && len(selected) == 1 {
				return selected
			}
			return append(append([]string{}, selected[:i]...), selected[i+1:]...)
		}
	}
	return append(append([]string{}, selected...), language)
}

// NormalizeLanguages deduplicates the submitted set and falls back to the
// default selection when it is empty.
func NormalizeLanguages(languages []string) []string {
	seen := make(map[string]bool, len(languages))
	var out []string
	for _, l := range languages {
		l = strings.TrimSpace(l)
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	if len(out) == 0 {
		return []string{defaultLanguage}
	}
	return out
}

// toggleHobby flips a hobby selection; selecting an already-selected hobby
// deselects it.
func toggleHobby(selected []string, hobby string) []string {
	for i, h := range selected {
		if h == hobby {
			return append(append([]string{}, selected[:i]...), selected[i+1:]...)
		}
	}
	return append(append([]string{}, selected...), hobby)
}

// ValidateHobbies requires at least three distinct selections.
func ValidateHobbies(hobbies []string) ([]string, error) {
	seen := make(map[string]bool, len(hobbies))
	var distinct []string
	for _, h := range hobbies {
		h = strings.TrimSpace(h)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		distinct = append(distinct, h)
	}
	if len(distinct) < minHobbies {
		return nil, newValidationError(StepHobbies, "hobbies", "please select at least 3 hobbies")
	}
	return distinct, nil
}
