package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an error response for Gin. Unknown errors are wrapped
// as InternalError; 5xx causes are logged, never returned to the client.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error(), "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
