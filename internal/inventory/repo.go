package inventory

import (
	"context"
	"errors"

	"github.com/motormart/motormart-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes classification and vehicle persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an inventory repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListClassifications returns every classification ordered by name.
func (r *Repository) ListClassifications(ctx context.Context) ([]*models.Classification, error) {
	var rows []*models.Classification
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

// FindClassificationByID loads a single classification.
func (r *Repository) FindClassificationByID(ctx context.Context, id uint) (*models.Classification, error) {
	var row models.Classification
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateClassification inserts a classification.
func (r *Repository) CreateClassification(ctx context.Context, row *models.Classification) (*models.Classification, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// ClassificationNameExists reports whether the exact name is taken.
func (r *Repository) ClassificationNameExists(ctx context.Context, name string) (bool, error) {
	err := r.db.WithContext(ctx).
		Select("id").
		Where("name = ?", name).
		First(&models.Classification{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ClassificationExists reports whether the id resolves to a classification.
func (r *Repository) ClassificationExists(ctx context.Context, id uint) (bool, error) {
	err := r.db.WithContext(ctx).
		Select("id").
		Where("id = ?", id).
		First(&models.Classification{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateVehicle inserts a vehicle row.
func (r *Repository) CreateVehicle(ctx context.Context, row *models.InventoryItem) (*models.InventoryItem, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindVehicleByID loads a vehicle with its classification attached.
func (r *Repository) FindVehicleByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	var row models.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Classification").
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListVehiclesByClassification returns the vehicles in one classification,
// classification preloaded, ordered for stable listings.
func (r *Repository) ListVehiclesByClassification(ctx context.Context, classificationID uint) ([]*models.InventoryItem, error) {
	var rows []*models.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Classification").
		Where("classification_id = ?", classificationID).
		Order("make ASC, model ASC").
		Find(&rows).Error
	return rows, err
}

// UpdateVehicle overwrites every editable column; returns rows affected.
func (r *Repository) UpdateVehicle(ctx context.Context, row *models.InventoryItem) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"classification_id": row.ClassificationID,
			"make":              row.Make,
			"model":             row.Model,
			"description":       row.Description,
			"image_path":        row.ImagePath,
			"thumbnail_path":    row.ThumbnailPath,
			"price":             row.Price,
			"year":              row.Year,
			"miles":             row.Miles,
			"color":             row.Color,
		})
	return result.RowsAffected, result.Error
}

// DeleteVehicle removes the row; returns rows affected so callers can
// distinguish a miss from a delete.
func (r *Repository) DeleteVehicle(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
