package repositories

import (
	"errors"

	"gorm.io/gorm"

	"practicehub_backend/internal/models"
)

var ErrFormNotFound = errors.New("intake form not found")

type FormRepository interface {
	Create(form *models.IntakeForm) error
	FindByID(id string) (*models.IntakeForm, error)
	FindByAccount(accountID string) ([]models.IntakeForm, error)
	Delete(id string) error
}

type FormRepositoryImpl struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &FormRepositoryImpl{db: db}
}

func (r *FormRepositoryImpl) Create(form *models.IntakeForm) error {
	return r.db.Create(form).Error
}

func (r *FormRepositoryImpl) FindByID(id string) (*models.IntakeForm, error) {
	var form models.IntakeForm
	err := r.db.First(&form, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

func (r *FormRepositoryImpl) FindByAccount(accountID string) ([]models.IntakeForm, error) {
	var forms []models.IntakeForm
	err := r.db.Where("account_id = ?", accountID).Order("created_at DESC").Find(&forms).Error
	return forms, err
}

func (r *FormRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.IntakeForm{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFormNotFound
	}
	return nil
}
