package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"practicehub_backend/internal/handlers"
	"practicehub_backend/internal/middleware"
)

// RegisterRoutes mounts the API under /api/v1. Auth endpoints are public;
// everything else requires a Bearer session token. The onboarding routes
// reuse the profile/practice handlers: a wizard step is just the first save
// of the corresponding resource.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, jwtSecret string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/verify-registration-otp", h.Auth.VerifyOTP)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/request-reset-password", h.Auth.RequestPasswordReset)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		protected.POST("/auth/change-password", h.Auth.ChangePassword)
		protected.POST("/auth/verify-user-token", h.Auth.VerifyToken)

		onboarding := protected.Group("/onboarding")
		{
			onboarding.PUT("/profile", h.User.UpdateProfile)
			onboarding.PUT("/practice", h.Practice.UpdatePractice)
			onboarding.PUT("/availability", h.User.UpdateAvailability)
		}

		users := protected.Group("/users")
		{
			users.GET("/me", h.User.GetProfile)
			users.PUT("/me", h.User.UpdateProfile)
			users.PUT("/me/availability", h.User.UpdateAvailability)
		}

		practice := protected.Group("/practice")
		{
			practice.GET("", h.Practice.GetPractice)
			practice.PUT("", h.Practice.UpdatePractice)
		}

		forms := protected.Group("/forms")
		{
			forms.POST("", h.Form.Upload)
			forms.GET("", h.Form.List)
			forms.GET("/:id/url", h.Form.GetDownloadURL)
			forms.DELETE("/:id", h.Form.Delete)
		}
	}
}
