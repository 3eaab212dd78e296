package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"practicehub_backend/internal/models"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
)

type AccountRepository interface {
	FindByID(id string) (*models.Account, error)
	FindByEmail(email string) (*models.Account, error)
	ExistsByEmail(email string) (bool, error)

	// CreateWithPractice materializes an account together with its default
	// practice and consumes the pending registration, all in one
	// transaction. A duplicate email surfaces as ErrAccountAlreadyExists
	// via the unique index, regardless of any earlier existence check.
	CreateWithPractice(account *models.Account, practice *models.Practice) error

	Update(account *models.Account) error
	UpdatePassword(id, hash string) error
	UpdateResetToken(id, token string, exp *time.Time) error
	UpdateStatus(id string, status models.AccountStatus) error
}

type AccountRepositoryImpl struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

func (r *AccountRepositoryImpl) FindByID(id string) (*models.Account, error) {
	var account models.Account
	err := r.db.Preload("Practice").Preload("Practice.Addresses").Preload("Forms").
		First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountRepositoryImpl) CreateWithPractice(account *models.Account, practice *models.Practice) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(practice).Error; err != nil {
			return err
		}

		account.PracticeID = practice.ID
		if err := tx.Create(account).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAccountAlreadyExists
			}
			return err
		}

		// OTP codes are single-use: the pending record dies with the
		// account creation, in the same transaction.
		return tx.Where("email = ?", account.Email).
			Delete(&models.PendingRegistration{}).Error
	})
}

func (r *AccountRepositoryImpl) Update(account *models.Account) error {
	result := r.db.Model(account).Updates(map[string]interface{}{
		"first_name":   account.FirstName,
		"last_name":    account.LastName,
		"pronouns":     account.Pronouns,
		"gender":       account.Gender,
		"title":        account.Title,
		"dob":          account.DOB,
		"availability": account.Availability,
		"status":       account.Status,
		"updated_at":   time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) UpdatePassword(id, hash string) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash":   hash,
		"reset_token":     "",
		"reset_token_exp": nil,
		"updated_at":      time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) UpdateResetToken(id, token string, exp *time.Time) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reset_token":     token,
		"reset_token_exp": exp,
		"updated_at":      time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) UpdateStatus(id string, status models.AccountStatus) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
