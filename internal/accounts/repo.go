package accounts

import (
	"context"
	"errors"

	"github.com/motormart/motormart-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes account persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an accounts repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new account and returns the persisted model.
func (r *Repository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

// FindByEmail retrieves the account matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByID loads an account by its id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// EmailExists reports whether any account already uses the email.
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	err := r.db.WithContext(ctx).
		Select("id").
		Where("email = ?", email).
		First(&models.Account{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// EmailExistsExcluding reports whether another account uses the email.
// The excluded id lets an account keep its own address on update.
func (r *Repository) EmailExistsExcluding(ctx context.Context, email string, accountID uint) (bool, error) {
	err := r.db.WithContext(ctx).
		Select("id").
		Where("email = ? AND id <> ?", email, accountID).
		First(&models.Account{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateProfile overwrites name and email; returns rows affected.
func (r *Repository) UpdateProfile(ctx context.Context, id uint, firstName, lastName, email string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"first_name": firstName,
			"last_name":  lastName,
			"email":      email,
		})
	return result.RowsAffected, result.Error
}

// UpdatePasswordHash replaces the stored hash.
func (r *Repository) UpdatePasswordHash(ctx context.Context, id uint, hash string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		UpdateColumn("password_hash", hash)
	return result.RowsAffected, result.Error
}
