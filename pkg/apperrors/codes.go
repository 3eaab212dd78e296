package apperrors

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// System and unknown failures
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Generic business-logic failures
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeLimitExceeded    ErrorCode = "LIMIT_EXCEEDED"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeInvalidOtp         ErrorCode = "INVALID_OTP"
)
