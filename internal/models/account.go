package models

import (
	"time"

	"gorm.io/datatypes"
)

// AccountStatus tracks the onboarding wizard position. Statuses only move
// forward; disabled is terminal.
type AccountStatus string

const (
	StatusOnboardingStep1 AccountStatus = "onboarding_step_1"
	StatusOnboardingStep2 AccountStatus = "onboarding_step_2"
	StatusOnboardingStep3 AccountStatus = "onboarding_step_3"
	StatusVerified        AccountStatus = "verified"
	StatusDisabled        AccountStatus = "disabled"
)

// Account is a verified, persisted user identity. Accounts are only
// materialized through OTP verification of a pending registration.
type Account struct {
	BaseModel
	Email        string        `gorm:"uniqueIndex;not null"`
	PasswordHash string        `gorm:"not null"`
	Status       AccountStatus `gorm:"type:varchar(32);default:'onboarding_step_1'"`

	FirstName string
	LastName  string
	Pronouns  string
	Gender    string
	Title     string
	DOB       *time.Time

	ResetToken    string
	ResetTokenExp *time.Time

	Availability datatypes.JSON `gorm:"type:jsonb"` // weekly availability, e.g. {"mon":["09:00-17:00"]}

	PracticeID string `gorm:"type:uuid;index"`

	// Relations
	Practice *Practice    `gorm:"foreignKey:PracticeID"`
	Forms    []IntakeForm `gorm:"foreignKey:AccountID"`
}

// PendingRegistration bridges an unverified registration attempt to an
// Account. At most one record exists per email; repeat registration
// attempts overwrite the hash and OTP in place.
type PendingRegistration struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	OTP          string `gorm:"column:otp;not null"`
}
