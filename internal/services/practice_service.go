package services

import (
	"context"
	"errors"
	"strings"

	"practicehub_backend/internal/geo"
	"practicehub_backend/internal/logger"
	"practicehub_backend/internal/models"
	"practicehub_backend/internal/repositories"
	"practicehub_backend/internal/services/dto"
	"practicehub_backend/pkg/apperrors"
)

// PracticeService covers the business side of the account: practice details
// and geocoded addresses (onboarding step two).
type PracticeService interface {
	GetPractice(accountID string) (*dto.PracticeDTO, error)
	UpdatePractice(ctx context.Context, accountID string, req *dto.UpdatePracticeRequest) (*dto.PracticeDTO, error)
}

type PracticeServiceImpl struct {
	accounts  repositories.AccountRepository
	practices repositories.PracticeRepository
	geocoder  geo.Geocoder
}

func NewPracticeService(
	accounts repositories.AccountRepository,
	practices repositories.PracticeRepository,
	geocoder geo.Geocoder,
) PracticeService {
	return &PracticeServiceImpl{
		accounts:  accounts,
		practices: practices,
		geocoder:  geocoder,
	}
}

func (s *PracticeServiceImpl) GetPractice(accountID string) (*dto.PracticeDTO, error) {
	practice, err := s.loadPractice(accountID)
	if err != nil {
		return nil, err
	}
	return dto.NewPracticeDTO(practice), nil
}

// UpdatePractice saves the business details and the address set. Every
// submitted address must geocode to at least one candidate; a single
// unresolvable address rejects the whole request, so a saved address set is
// always fully verified. On the second onboarding step a successful save
// advances the account to step three.
func (s *PracticeServiceImpl) UpdatePractice(ctx context.Context, accountID string, req *dto.UpdatePracticeRequest) (*dto.PracticeDTO, error) {
	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if account.PracticeID == "" {
		return nil, apperrors.ErrPracticeNotFound
	}

	addresses := make([]models.Address, 0, len(req.Addresses))
	for _, a := range req.Addresses {
		result, err := s.geocoder.Geocode(ctx, formatAddressQuery(a))
		if err != nil {
			return nil, apperrors.GeocodingError(err)
		}
		if result == nil {
			return nil, apperrors.ErrInvalidAddress
		}

		addresses = append(addresses, models.Address{
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			Latitude:   result.Latitude,
			Longitude:  result.Longitude,
			Verified:   true,
		})
	}

	practice := &models.Practice{
		BusinessName: req.BusinessName,
		IsCompany:    req.IsCompany,
		Website:      req.Website,
	}
	practice.ID = account.PracticeID

	if err := s.practices.Update(practice); err != nil {
		if errors.Is(err, repositories.ErrPracticeNotFound) {
			return nil, apperrors.ErrPracticeNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.practices.ReplaceAddresses(practice.ID, addresses); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if account.Status == models.StatusOnboardingStep2 {
		if err := s.accounts.UpdateStatus(account.ID, models.StatusOnboardingStep3); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	logger.Info("practice updated", "account_id", account.ID, "practice_id", practice.ID,
		"addresses", len(addresses))

	saved, err := s.practices.FindByID(practice.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPracticeDTO(saved), nil
}

func (s *PracticeServiceImpl) loadPractice(accountID string) (*models.Practice, error) {
	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if account.PracticeID == "" {
		return nil, apperrors.ErrPracticeNotFound
	}

	practice, err := s.practices.FindByID(account.PracticeID)
	if err != nil {
		if errors.Is(err, repositories.ErrPracticeNotFound) {
			return nil, apperrors.ErrPracticeNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return practice, nil
}

func formatAddressQuery(a dto.AddressRequest) string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
