package apperrors

import (
	"net/http"
)

// Predefined errors for the registration, verification and credential flows.
// Login failures share one message regardless of which check failed, so the
// endpoint cannot be used to enumerate registered emails.

var ErrAccountExists = New(
	CodeAlreadyExists,
	"auth",
	"An account with this email already exists",
	http.StatusBadRequest,
)

var ErrPendingRegistrationNotFound = New(
	CodeNotFound,
	"auth",
	"No pending registration for this email. Please register first.",
	http.StatusNotFound,
)

var ErrInvalidOtp = New(
	CodeInvalidOtp,
	"auth",
	"The verification code is incorrect",
	http.StatusBadRequest,
)

var ErrAccountNotFound = New(
	CodeNotFound,
	"account",
	"Account not found",
	http.StatusNotFound,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidOrExpiredToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusBadRequest,
)

var ErrInvalidOldPassword = New(
	CodeInvalidCredentials,
	"auth",
	"Old password is incorrect",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

// --- Practice & addresses ---

var ErrPracticeNotFound = New(
	CodeNotFound,
	"practice",
	"Practice not found",
	http.StatusNotFound,
)

var ErrInvalidAddress = New(
	CodeValidationFailed,
	"practice",
	"Address could not be verified",
	http.StatusBadRequest,
)

// --- Intake forms & uploads ---

var ErrFormNotFound = New(
	CodeNotFound,
	"forms",
	"Intake form not found",
	http.StatusNotFound,
)

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// EmailDispatchError surfaces an outbound email failure as a 502-class
// server error. Registration must not report success when the OTP email
// never left the building.
func EmailDispatchError(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "email", "Failed to send email", http.StatusInternalServerError)
}

// GeocodingError surfaces a geocoding transport failure.
func GeocodingError(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "geo", "Address verification service unavailable", http.StatusInternalServerError)
}
