package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"practicehub_backend/internal/services"
	"practicehub_backend/internal/services/dto"
)

// UserHandler exposes profile and availability endpoints.
type UserHandler struct {
	*BaseHandler
	users services.UserService
}

func NewUserHandler(base *BaseHandler, users services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, users: users}
}

// GetProfile returns the authenticated account.
// GET /api/v1/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	account, err := h.users.GetProfile(accountID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": account})
}

// UpdateProfile saves personal details; on the first onboarding step it
// advances the account.
// PUT /api/v1/onboarding/profile, PUT /api/v1/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	account, err := h.users.UpdateProfile(accountID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": account})
}

// UpdateAvailability saves the weekly schedule; on the third onboarding
// step it completes the wizard.
// PUT /api/v1/onboarding/availability, PUT /api/v1/users/me/availability
func (h *UserHandler) UpdateAvailability(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateAvailabilityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	account, err := h.users.UpdateAvailability(accountID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": account})
}
