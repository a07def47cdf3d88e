package reviews

import (
	"context"
	"errors"

	"github.com/motormart/motormart-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes review persistence. Every mutation carries the
// caller's account id in the WHERE clause, so a non-owner write is a
// zero-row no-op at the SQL level regardless of what the service checks.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reviews repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a review.
func (r *Repository) Create(ctx context.Context, row *models.Review) (*models.Review, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByID loads one review with its author and vehicle attached.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	var row models.Review
	err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Inventory").
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByInventory returns a vehicle's reviews, newest first.
func (r *Repository) ListByInventory(ctx context.Context, inventoryID uint) ([]*models.Review, error) {
	var rows []*models.Review
	err := r.db.WithContext(ctx).
		Preload("Account").
		Where("inventory_id = ?", inventoryID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// ListByAccount returns everything one account has written, newest first,
// with the reviewed vehicles attached for display.
func (r *Repository) ListByAccount(ctx context.Context, accountID uint) ([]*models.Review, error) {
	var rows []*models.Review
	err := r.db.WithContext(ctx).
		Preload("Inventory").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// Owns reports whether the review exists and belongs to the account.
func (r *Repository) Owns(ctx context.Context, reviewID, accountID uint) (bool, error) {
	err := r.db.WithContext(ctx).
		Select("id").
		Where("id = ? AND account_id = ?", reviewID, accountID).
		First(&models.Review{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InventoryExists reports whether the vehicle a review targets is real.
func (r *Repository) InventoryExists(ctx context.Context, inventoryID uint) (bool, error) {
	err := r.db.WithContext(ctx).
		Select("id").
		Where("id = ?", inventoryID).
		First(&models.InventoryItem{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateText rewrites the review body if the caller owns it; returns rows
// affected.
func (r *Repository) UpdateText(ctx context.Context, reviewID, accountID uint, text string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ? AND account_id = ?", reviewID, accountID).
		Update("text", text)
	return result.RowsAffected, result.Error
}

// Delete removes the review if the caller owns it; returns rows affected.
func (r *Repository) Delete(ctx context.Context, reviewID, accountID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&models.Review{}, "id = ? AND account_id = ?", reviewID, accountID)
	return result.RowsAffected, result.Error
}
