package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"practicehub_backend/internal/services"
	"practicehub_backend/pkg/apperrors"
)

// FormHandler exposes the intake-form endpoints. Uploads arrive as
// multipart form data under the "file" field.
type FormHandler struct {
	*BaseHandler
	forms   services.FormService
	maxSize int64
}

func NewFormHandler(base *BaseHandler, forms services.FormService, maxSize int64) *FormHandler {
	return &FormHandler{BaseHandler: base, forms: forms, maxSize: maxSize}
}

// Upload stores a new intake form.
// POST /api/v1/forms
func (h *FormHandler) Upload(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	// Bound the request body before multipart parsing buffers it.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize+4096)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("A 'file' form field is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	form, uploadErr := h.forms.Upload(c.Request.Context(), accountID,
		fileHeader.Filename, contentType, fileHeader.Size, file)
	if uploadErr != nil {
		h.HandleServiceError(c, uploadErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"form": form})
}

// List returns the account's intake forms, newest first.
// GET /api/v1/forms
func (h *FormHandler) List(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	forms, err := h.forms.List(accountID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"forms": forms})
}

// GetDownloadURL returns a short-lived signed download link.
// GET /api/v1/forms/:id/url
func (h *FormHandler) GetDownloadURL(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	resp, err := h.forms.GetDownloadURL(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete removes an intake form and its stored payload.
// DELETE /api/v1/forms/:id
func (h *FormHandler) Delete(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	if err := h.forms.Delete(c.Request.Context(), accountID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Form deleted"})
}
