package handlers

import (
	"practicehub_backend/internal/services"
	"practicehub_backend/internal/validator"
)

// AppHandlers bundles the HTTP layer for route registration.
type AppHandlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Practice *PracticeHandler
	Form     *FormHandler
}

// NewAppHandlers wires handlers onto the service container.
func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator, uploadMaxSize int64) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:     NewAuthHandler(base, svc.Auth),
		User:     NewUserHandler(base, svc.User),
		Practice: NewPracticeHandler(base, svc.Practice),
		Form:     NewFormHandler(base, svc.Form, uploadMaxSize),
	}
}
