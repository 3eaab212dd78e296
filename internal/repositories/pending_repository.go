package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"practicehub_backend/internal/models"
)

var ErrPendingNotFound = errors.New("pending registration not found")

// PendingRegistrationRepository is the keyed store bridging registration and
// OTP verification. Upsert keeps the at-most-one-record-per-email invariant
// at the database level instead of with a read-then-write.
type PendingRegistrationRepository interface {
	FindByEmail(email string) (*models.PendingRegistration, error)
	Upsert(pending *models.PendingRegistration) error
	DeleteByEmail(email string) error
}

type PendingRegistrationRepositoryImpl struct {
	db *gorm.DB
}

func NewPendingRegistrationRepository(db *gorm.DB) PendingRegistrationRepository {
	return &PendingRegistrationRepositoryImpl{db: db}
}

func (r *PendingRegistrationRepositoryImpl) FindByEmail(email string) (*models.PendingRegistration, error) {
	var pending models.PendingRegistration
	err := r.db.First(&pending, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPendingNotFound
		}
		return nil, err
	}
	return &pending, nil
}

func (r *PendingRegistrationRepositoryImpl) Upsert(pending *models.PendingRegistration) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "otp", "updated_at"}),
	}).Create(pending).Error
}

func (r *PendingRegistrationRepositoryImpl) DeleteByEmail(email string) error {
	return r.db.Where("email = ?", email).Delete(&models.PendingRegistration{}).Error
}
