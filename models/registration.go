package models

import "time"

// RegistrationDraft accumulates the data collected across onboarding steps.
// A field is only set once its step has passed validation; revisiting an
// earlier step truncates everything collected after it.
type RegistrationDraft struct {
	Phone          string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Password       string       `json:"password,omitempty" bson:"password,omitempty"`
	Name           string       `json:"name,omitempty" bson:"name,omitempty"`
	ProfilePicture string       `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	Gender         string       `json:"gender,omitempty" bson:"gender,omitempty"`
	BirthDate      time.Time    `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	Age            int          `json:"age,omitempty" bson:"age,omitempty"`
	Occupation     string       `json:"occupation,omitempty" bson:"occupation,omitempty"`
	Company        string       `json:"company,omitempty" bson:"company,omitempty"`
	Languages      []string     `json:"languages,omitempty" bson:"languages,omitempty"`
	Hobbies        []string     `json:"hobbies,omitempty" bson:"hobbies,omitempty"`
	Location       *GeoLocation `json:"location,omitempty" bson:"location,omitempty"`
}

// RegistrationSession holds all transient data during multi-step onboarding.
type RegistrationSession struct {
	TempID        string            `json:"tempId"`
	Step          string            `json:"step"`
	Draft         RegistrationDraft `json:"draft"`
	OTPStatus     string            `json:"otpStatus"` // "pending" or "verified"
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// RegistrationStepRequest is the composite request payload for multi-step
// onboarding. The client sets "step" to indicate which part of the flow is
// being executed and fills only the fields that step needs.
type RegistrationStepRequest struct {
	Step      string `json:"step"`
	SessionID string `json:"sessionID,omitempty"`

	// Phone step.
	Phone string `json:"phone,omitempty"`
	OTP   string `json:"otp,omitempty"`

	// Password step.
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`

	// Name step.
	Name string `json:"name,omitempty"`

	// Photo step. The reference is issued by the storage service after upload.
	ProfilePicture string `json:"profilePicture,omitempty"`
	PhotoSkipped   bool   `json:"photoSkipped,omitempty"`

	// Gender step.
	Gender string `json:"gender,omitempty"`

	// Birth date step.
	BirthDay   int `json:"birthDay,omitempty"`
	BirthMonth int `json:"birthMonth,omitempty"`
	BirthYear  int `json:"birthYear,omitempty"`

	// Occupation step.
	Occupation        string `json:"occupation,omitempty"`
	CustomOccupation  string `json:"customOccupation,omitempty"`
	Company           string `json:"company,omitempty"`
	OccupationSkipped bool   `json:"occupationSkipped,omitempty"`

	// Languages step.
	Languages []string `json:"languages,omitempty"`

	// Hobbies step.
	Hobbies []string `json:"hobbies,omitempty"`

	// Location step.
	Lat             float64 `json:"lat,omitempty"`
	Lng             float64 `json:"lng,omitempty"`
	LocationGranted bool    `json:"locationGranted,omitempty"`
}
