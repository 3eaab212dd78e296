package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application-wide error envelope. HTTPCode and the wrapped
// cause are never serialized to clients.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds a fresh AppError.
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying cause to a new AppError.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// MarshalJSON hides the internal cause and HTTP code from the wire format.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Domain:  e.Domain,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// InternalError wraps an unexpected system failure as a 500.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// ValidationError builds a 400 carrying per-field details.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

// NewUnauthorizedError builds a 401 with a caller-facing message.
func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

// NewBadRequestError builds a generic 400.
func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}

// NewNotFoundError builds a 404 scoped to a domain.
func NewNotFoundError(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}
