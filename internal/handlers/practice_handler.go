package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"practicehub_backend/internal/services"
	"practicehub_backend/internal/services/dto"
)

// PracticeHandler exposes the practice endpoints.
type PracticeHandler struct {
	*BaseHandler
	practices services.PracticeService
}

func NewPracticeHandler(base *BaseHandler, practices services.PracticeService) *PracticeHandler {
	return &PracticeHandler{BaseHandler: base, practices: practices}
}

// GetPractice returns the practice of the authenticated account.
// GET /api/v1/practice
func (h *PracticeHandler) GetPractice(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	practice, err := h.practices.GetPractice(accountID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"practice": practice})
}

// UpdatePractice saves business details and the geocoded address set; on
// the second onboarding step it advances the account.
// PUT /api/v1/onboarding/practice, PUT /api/v1/practice
func (h *PracticeHandler) UpdatePractice(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdatePracticeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	practice, err := h.practices.UpdatePractice(c.Request.Context(), accountID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"practice": practice})
}
