package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"practicehub_backend/internal/models"
)

var ErrPracticeNotFound = errors.New("practice not found")

type PracticeRepository interface {
	FindByID(id string) (*models.Practice, error)
	Update(practice *models.Practice) error
	ReplaceAddresses(practiceID string, addresses []models.Address) error
}

type PracticeRepositoryImpl struct {
	db *gorm.DB
}

func NewPracticeRepository(db *gorm.DB) PracticeRepository {
	return &PracticeRepositoryImpl{db: db}
}

func (r *PracticeRepositoryImpl) FindByID(id string) (*models.Practice, error) {
	var practice models.Practice
	err := r.db.Preload("Addresses").First(&practice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPracticeNotFound
		}
		return nil, err
	}
	return &practice, nil
}

func (r *PracticeRepositoryImpl) Update(practice *models.Practice) error {
	result := r.db.Model(practice).Updates(map[string]interface{}{
		"business_name": practice.BusinessName,
		"is_company":    practice.IsCompany,
		"website":       practice.Website,
		"updated_at":    time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPracticeNotFound
	}
	return nil
}

// ReplaceAddresses swaps the practice's address set atomically.
func (r *PracticeRepositoryImpl) ReplaceAddresses(practiceID string, addresses []models.Address) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("practice_id = ?", practiceID).Delete(&models.Address{}).Error; err != nil {
			return err
		}

		for i := range addresses {
			addresses[i].PracticeID = practiceID
		}
		if len(addresses) == 0 {
			return nil
		}
		return tx.Create(&addresses).Error
	})
}
