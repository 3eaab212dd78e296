package dto

import (
	"time"

	"practicehub_backend/internal/models"
)

type FormDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

type FormURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

func NewFormDTO(form *models.IntakeForm) *FormDTO {
	return &FormDTO{
		ID:          form.ID,
		Name:        form.Name,
		ContentType: form.ContentType,
		Size:        form.Size,
		CreatedAt:   form.CreatedAt,
	}
}
