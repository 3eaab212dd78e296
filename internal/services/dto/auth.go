package dto

import (
	"time"

	"practicehub_backend/internal/models"
)

// RegisterRequest starts a registration; the account is not materialized
// until the OTP is verified.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// VerifyOTPRequest consumes a pending registration.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=5,numeric"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RequestResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// RegistrationPending is the register response body; it never carries the
// password or the OTP.
type RegistrationPending struct {
	Email string `json:"email"`
}

// AccountDTO is the sanitized account representation. The password hash and
// reset token never leave the service layer.
type AccountDTO struct {
	ID           string               `json:"id"`
	Email        string               `json:"email"`
	Status       models.AccountStatus `json:"status"`
	FirstName    string               `json:"first_name,omitempty"`
	LastName     string               `json:"last_name,omitempty"`
	Pronouns     string               `json:"pronouns,omitempty"`
	Gender       string               `json:"gender,omitempty"`
	Title        string               `json:"title,omitempty"`
	DOB          *time.Time           `json:"dob,omitempty"`
	PracticeID   string               `json:"practice_id,omitempty"`
	Availability interface{}          `json:"availability,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// AuthResponse pairs a sanitized account with a session token.
type AuthResponse struct {
	User  *AccountDTO `json:"user"`
	Token string      `json:"token"`
}

// NewAccountDTO strips credentials from an account.
func NewAccountDTO(account *models.Account) *AccountDTO {
	dto := &AccountDTO{
		ID:         account.ID,
		Email:      account.Email,
		Status:     account.Status,
		FirstName:  account.FirstName,
		LastName:   account.LastName,
		Pronouns:   account.Pronouns,
		Gender:     account.Gender,
		Title:      account.Title,
		DOB:        account.DOB,
		PracticeID: account.PracticeID,
		CreatedAt:  account.CreatedAt,
	}
	if len(account.Availability) > 0 {
		dto.Availability = account.Availability
	}
	return dto
}
