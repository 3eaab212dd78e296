package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"practicehub_backend/internal/validator"
	"practicehub_backend/pkg/apperrors"
	"practicehub_backend/pkg/contextkeys"
)

// BaseHandler carries the pieces every handler needs.
type BaseHandler struct {
	Validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{Validator: v}
}

// BindAndValidateJSON binds the request body and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.Validator.Validate(obj); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			apperrors.HandleError(c, apperrors.ValidationError(valErr.Errors))
			return false
		}
		apperrors.HandleError(c, err)
		return false
	}

	return true
}

// HandleServiceError forwards a service-layer error to the client.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// GetAccountID returns the authenticated account id set by the auth
// middleware; it aborts with 401 when the request is unauthenticated.
func (h *BaseHandler) GetAccountID(c *gin.Context) (string, bool) {
	accountID := c.GetString(string(contextkeys.AccountIDKey))
	if accountID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return "", false
	}
	return accountID, true
}
