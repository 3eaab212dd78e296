package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practicehub_backend/internal/models"
	"practicehub_backend/internal/services/dto"
	"practicehub_backend/pkg/apperrors"
)

func newPracticeFixture(t *testing.T, geocoder *fakeGeocoder) (PracticeService, *authFixture, string) {
	t.Helper()
	f := newAuthFixture()
	resp := registerAndVerify(t, f, "sam@example.com", "supersecret")
	return NewPracticeService(f.accounts, f.practice, geocoder), f, resp.User.ID
}

func validPracticeRequest() *dto.UpdatePracticeRequest {
	return &dto.UpdatePracticeRequest{
		BusinessName: "Northside Therapy",
		IsCompany:    true,
		Website:      "https://northside.example.com",
		Addresses: []dto.AddressRequest{
			{Line1: "12 High Street", City: "Bristol", PostalCode: "BS1 4DJ", Country: "GB"},
		},
	}
}

func TestUpdatePracticeGeocodesAddresses(t *testing.T) {
	geocoder := &fakeGeocoder{}
	practices, _, accountID := newPracticeFixture(t, geocoder)

	updated, err := practices.UpdatePractice(context.Background(), accountID, validPracticeRequest())
	require.NoError(t, err)

	assert.Equal(t, "Northside Therapy", updated.BusinessName)
	require.Len(t, updated.Addresses, 1)
	assert.Equal(t, 52.52, updated.Addresses[0].Latitude)
	assert.Equal(t, 13.405, updated.Addresses[0].Longitude)
	assert.True(t, updated.Addresses[0].Verified)

	// The geocoder saw the assembled freeform query.
	require.Len(t, geocoder.queries, 1)
	assert.Contains(t, geocoder.queries[0], "12 High Street")
	assert.Contains(t, geocoder.queries[0], "Bristol")
}

func TestUpdatePracticeAdvancesOnboardingFromStepTwo(t *testing.T) {
	practices, f, accountID := newPracticeFixture(t, &fakeGeocoder{})
	require.NoError(t, f.accounts.UpdateStatus(accountID, models.StatusOnboardingStep2))

	_, err := practices.UpdatePractice(context.Background(), accountID, validPracticeRequest())
	require.NoError(t, err)

	account, err := f.accounts.FindByID(accountID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnboardingStep3, account.Status)
}

func TestUpdatePracticeKeepsStatusOutsideStepTwo(t *testing.T) {
	practices, f, accountID := newPracticeFixture(t, &fakeGeocoder{})
	require.NoError(t, f.accounts.UpdateStatus(accountID, models.StatusVerified))

	_, err := practices.UpdatePractice(context.Background(), accountID, validPracticeRequest())
	require.NoError(t, err)

	account, err := f.accounts.FindByID(accountID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, account.Status)
}

func TestUpdatePracticeRejectsUnresolvableAddress(t *testing.T) {
	practices, f, accountID := newPracticeFixture(t, &fakeGeocoder{noMatch: true})

	_, err := practices.UpdatePractice(context.Background(), accountID, validPracticeRequest())
	assert.ErrorIs(t, err, apperrors.ErrInvalidAddress)

	// Nothing was saved.
	account, findErr := f.accounts.FindByID(accountID)
	require.NoError(t, findErr)
	practice, findErr := f.practice.FindByID(account.PracticeID)
	require.NoError(t, findErr)
	assert.Empty(t, practice.BusinessName)
	assert.Empty(t, practice.Addresses)
}

func TestUpdatePracticeSurfacesGeocoderOutage(t *testing.T) {
	practices, _, accountID := newPracticeFixture(t, &fakeGeocoder{err: errors.New("connection refused")})

	_, err := practices.UpdatePractice(context.Background(), accountID, validPracticeRequest())
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.HTTPCode)
}

func TestGetPractice(t *testing.T) {
	practices, _, accountID := newPracticeFixture(t, &fakeGeocoder{})

	_, err := practices.UpdatePractice(context.Background(), accountID, validPracticeRequest())
	require.NoError(t, err)

	practice, err := practices.GetPractice(accountID)
	require.NoError(t, err)
	assert.Equal(t, "Northside Therapy", practice.BusinessName)
	assert.Len(t, practice.Addresses, 1)
}

func TestGetPracticeUnknownAccount(t *testing.T) {
	practices, _, _ := newPracticeFixture(t, &fakeGeocoder{})

	_, err := practices.GetPractice("no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}
