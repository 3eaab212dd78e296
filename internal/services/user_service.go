package services

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"

	"practicehub_backend/internal/logger"
	"practicehub_backend/internal/models"
	"practicehub_backend/internal/repositories"
	"practicehub_backend/internal/services/dto"
	"practicehub_backend/pkg/apperrors"
)

// UserService covers the profile side of the account: personal details
// (onboarding step one) and weekly availability (step three).
type UserService interface {
	GetProfile(accountID string) (*dto.AccountDTO, error)
	UpdateProfile(accountID string, req *dto.UpdateProfileRequest) (*dto.AccountDTO, error)
	UpdateAvailability(accountID string, req *dto.UpdateAvailabilityRequest) (*dto.AccountDTO, error)
}

type UserServiceImpl struct {
	accounts repositories.AccountRepository
}

func NewUserService(accounts repositories.AccountRepository) UserService {
	return &UserServiceImpl{accounts: accounts}
}

func (s *UserServiceImpl) GetProfile(accountID string) (*dto.AccountDTO, error) {
	account, err := s.findAccount(accountID)
	if err != nil {
		return nil, err
	}
	return dto.NewAccountDTO(account), nil
}

// UpdateProfile saves the personal details and, when the account is still on
// the first onboarding step, advances it to the second. Statuses never move
// backward, so re-editing the profile later leaves the status alone.
func (s *UserServiceImpl) UpdateProfile(accountID string, req *dto.UpdateProfileRequest) (*dto.AccountDTO, error) {
	account, err := s.findAccount(accountID)
	if err != nil {
		return nil, err
	}

	account.FirstName = req.FirstName
	account.LastName = req.LastName
	account.Pronouns = req.Pronouns
	account.Gender = req.Gender
	account.Title = req.Title

	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date of birth")
		}
		account.DOB = &dob
	}

	if account.Status == models.StatusOnboardingStep1 {
		account.Status = models.StatusOnboardingStep2
	}

	if err := s.accounts.Update(account); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("profile updated", "account_id", account.ID, "status", account.Status)
	return dto.NewAccountDTO(account), nil
}

// UpdateAvailability stores the weekly schedule and, when the account is on
// the third onboarding step, completes the wizard.
func (s *UserServiceImpl) UpdateAvailability(accountID string, req *dto.UpdateAvailabilityRequest) (*dto.AccountDTO, error) {
	account, err := s.findAccount(accountID)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(req.Availability)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid availability payload")
	}
	account.Availability = datatypes.JSON(raw)

	if account.Status == models.StatusOnboardingStep3 {
		account.Status = models.StatusVerified
	}

	if err := s.accounts.Update(account); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("availability updated", "account_id", account.ID, "status", account.Status)
	return dto.NewAccountDTO(account), nil
}

func (s *UserServiceImpl) findAccount(accountID string) (*models.Account, error) {
	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return account, nil
}
