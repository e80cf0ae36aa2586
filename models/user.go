package models

import "time"

// Gender options offered during onboarding. Free text is not accepted.
const (
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderNonBinary      = "non_binary"
	GenderTransgender    = "transgender"
	GenderPreferNotToSay = "prefer_not_to_say"
	GenderOther          = "other"
)

// User is a fully registered account, materialized only when the onboarding
// flow reaches its terminal step.
type User struct {
	ID             string       `json:"id" bson:"id"`
	Phone          string       `json:"phone" bson:"phone"`
	PasswordHash   string       `json:"-" bson:"passwordHash"`
	Name           string       `json:"name" bson:"name"`
	ProfilePicture string       `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	Gender         string       `json:"gender" bson:"gender"`
	BirthDate      time.Time    `json:"birthDate" bson:"birthDate"`
	Age            int          `json:"age" bson:"age"`
	Occupation     string       `json:"occupation,omitempty" bson:"occupation,omitempty"`
	Company        string       `json:"company,omitempty" bson:"company,omitempty"`
	Languages      []string     `json:"languages" bson:"languages"`
	Hobbies        []string     `json:"hobbies" bson:"hobbies"`
	Location       *GeoLocation `json:"location,omitempty" bson:"location,omitempty"`
	TokenHash      string       `json:"-" bson:"tokenHash,omitempty"`
	CreatedAt      time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// ValidGender reports whether g is one of the fixed gender options.
func ValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderNonBinary, GenderTransgender, GenderPreferNotToSay, GenderOther:
		return true
	}
	return false
}
