package services

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"practicehub_backend/internal/auth"
	"practicehub_backend/internal/config"
	"practicehub_backend/internal/email"
	"practicehub_backend/internal/logger"
	"practicehub_backend/internal/models"
	"practicehub_backend/internal/repositories"
	"practicehub_backend/internal/services/dto"
	"practicehub_backend/pkg/apperrors"
)

// AuthService owns the account lifecycle: registration, OTP verification,
// login, and the password flows.
type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegistrationPending, error)
	VerifyRegistrationOTP(req *dto.VerifyOTPRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	RequestPasswordReset(emailAddr string) error
	ResetPassword(token, newPassword string) (*dto.AuthResponse, error)
	ChangePassword(accountID, oldPassword, newPassword string) error
	ResolveAccount(accountID string) (*dto.AccountDTO, error)
}

type AuthServiceImpl struct {
	accounts repositories.AccountRepository
	pending  repositories.PendingRegistrationRepository
	mailer   email.Provider
	cfg      *config.Config
}

func NewAuthService(
	accounts repositories.AccountRepository,
	pending repositories.PendingRegistrationRepository,
	mailer email.Provider,
	cfg *config.Config,
) AuthService {
	return &AuthServiceImpl{
		accounts: accounts,
		pending:  pending,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// Register stores a pending registration and emails the OTP. Registering an
// email that already has a verified account fails immediately; registering an
// email with only a pending record replaces that record, so the latest
// password and OTP win.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.RegistrationPending, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.accounts.ExistsByEmail(req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAccountExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	otp, err := auth.GenerateOTP()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	record := &models.PendingRegistration{
		Email:        req.Email,
		PasswordHash: hash,
		OTP:          otp,
	}
	if err := s.pending.Upsert(record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The email is sent synchronously: a registration whose OTP never
	// arrived is worse than a failed one, so delivery errors propagate.
	if err := s.mailer.SendOTP(req.Email, otp); err != nil {
		return nil, apperrors.EmailDispatchError(err)
	}

	logger.Info("registration started", "email", req.Email)
	return &dto.RegistrationPending{Email: req.Email}, nil
}

// VerifyRegistrationOTP consumes the pending record and materializes the
// account together with an empty default practice.
func (s *AuthServiceImpl) VerifyRegistrationOTP(req *dto.VerifyOTPRequest) (*dto.AuthResponse, error) {
	record, err := s.pending.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrPendingNotFound) {
			return nil, apperrors.ErrPendingRegistrationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if record.OTP != req.OTP {
		return nil, apperrors.ErrInvalidOtp
	}

	account := &models.Account{
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		Status:       models.StatusOnboardingStep1,
	}
	practice := &models.Practice{}

	if err := s.accounts.CreateWithPractice(account, practice); err != nil {
		if errors.Is(err, repositories.ErrAccountAlreadyExists) {
			return nil, apperrors.ErrAccountExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.issueSessionToken(account.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("account created", "account_id", account.ID, "email", account.Email)
	return &dto.AuthResponse{User: dto.NewAccountDTO(account), Token: token}, nil
}

// Login answers wrong-email and wrong-password with the same error so the
// endpoint cannot be used to probe which emails are registered.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	account, err := s.accounts.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, account.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issueSessionToken(account.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("login", "account_id", account.ID)
	return &dto.AuthResponse{User: dto.NewAccountDTO(account), Token: token}, nil
}

// RequestPasswordReset issues a reset token and mails the reset link. The
// token is also persisted on the account so it can be invalidated after a
// single use.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	account, err := s.accounts.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}

	token, err := auth.GenerateResetToken(account.ID, s.cfg.JWT.Secret)
	if err != nil {
		return apperrors.InternalError(err)
	}

	exp := time.Now().Add(auth.ResetTokenTTL)
	if err := s.accounts.UpdateResetToken(account.ID, token, &exp); err != nil {
		return apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s?token=%s", s.cfg.Email.ResetBaseURL, url.QueryEscape(token))
	if err := s.mailer.SendPasswordReset(account.Email, resetURL); err != nil {
		return apperrors.EmailDispatchError(err)
	}

	logger.Info("password reset requested", "account_id", account.ID)
	return nil
}

// ResetPassword completes a reset. The token must parse, carry the reset
// purpose, and still match the one stored on the account; completing the
// reset clears the stored token, so each token works exactly once.
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return nil, err
	}

	claims, err := auth.ParseToken(token, s.cfg.JWT.Secret)
	if err != nil || claims.Purpose != auth.PurposePasswordReset {
		return nil, apperrors.ErrInvalidOrExpiredToken
	}

	account, err := s.accounts.FindByID(claims.AccountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidOrExpiredToken
		}
		return nil, apperrors.InternalError(err)
	}

	if account.ResetToken == "" || account.ResetToken != token {
		return nil, apperrors.ErrInvalidOrExpiredToken
	}
	if account.ResetTokenExp == nil || time.Now().After(*account.ResetTokenExp) {
		return nil, apperrors.ErrInvalidOrExpiredToken
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// UpdatePassword clears the stored reset token alongside the hash.
	if err := s.accounts.UpdatePassword(account.ID, hash); err != nil {
		return nil, apperrors.InternalError(err)
	}

	sessionToken, err := s.issueSessionToken(account.ID)
	if err != nil {
		return nil, err
	}

	account.PasswordHash = hash
	logger.Info("password reset completed", "account_id", account.ID)
	return &dto.AuthResponse{User: dto.NewAccountDTO(account), Token: sessionToken}, nil
}

// ChangePassword verifies the current password before replacing it.
func (s *AuthServiceImpl) ChangePassword(accountID, oldPassword, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}

	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(oldPassword, account.PasswordHash) {
		return apperrors.ErrInvalidOldPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.accounts.UpdatePassword(account.ID, hash); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("password changed", "account_id", account.ID)
	return nil
}

// ResolveAccount loads the account behind a verified session token.
func (s *AuthServiceImpl) ResolveAccount(accountID string) (*dto.AccountDTO, error) {
	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewAccountDTO(account), nil
}

func (s *AuthServiceImpl) issueSessionToken(accountID string) (string, error) {
	ttl := time.Duration(s.cfg.JWT.TTLMinutes) * time.Minute
	token, err := auth.GenerateToken(accountID, s.cfg.JWT.Secret, ttl)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}
