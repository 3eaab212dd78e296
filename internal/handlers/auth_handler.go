package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"practicehub_backend/internal/services"
	"practicehub_backend/internal/services/dto"
)

// AuthHandler exposes the registration, login and password endpoints.
type AuthHandler struct {
	*BaseHandler
	auth services.AuthService
}

func NewAuthHandler(base *BaseHandler, auth services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, auth: auth}
}

// Register starts a registration and emails a verification code.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pending, err := h.auth.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    gin.H{"email": pending.Email},
		"message": "Verification code sent",
	})
}

// VerifyOTP consumes the code, creates the account and returns a session.
// POST /api/v1/auth/verify-registration-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.auth.VerifyRegistrationOTP(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    resp.User,
		"token":   resp.Token,
		"message": "Account created",
	})
}

// Login exchanges credentials for a session token.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.auth.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    resp.User,
		"token":   resp.Token,
		"message": "Login successful",
	})
}

// RequestPasswordReset emails a single-use reset link.
// POST /api/v1/auth/request-reset-password
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.RequestResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.auth.RequestPasswordReset(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

// ResetPassword completes a reset and signs the account in.
// POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.auth.ResetPassword(req.Token, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    resp.User,
		"token":   resp.Token,
		"message": "Password has been reset",
	})
}

// ChangePassword replaces the password of the authenticated account.
// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.auth.ChangePassword(accountID, req.OldPassword, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// VerifyToken resolves the session token back to its account. Clients use
// it to restore a session on page load.
// POST /api/v1/auth/verify-user-token
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	account, err := h.auth.ResolveAccount(accountID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Echo the presented token so clients can keep a single response shape
	// across login, verification and session restore.
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	c.JSON(http.StatusOK, gin.H{
		"user":    account,
		"token":   strings.TrimSpace(token),
		"message": "Token is valid",
	})
}
