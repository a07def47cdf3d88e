package models

import "time"

// InventoryItem is a vehicle on the lot.
type InventoryItem struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	ClassificationID uint      `gorm:"column:classification_id;not null;index"`
	Make             string    `gorm:"column:make;not null"`
	Model            string    `gorm:"column:model;not null"`
	Description      string    `gorm:"column:description;not null"`
	ImagePath        string    `gorm:"column:image_path;not null"`
	ThumbnailPath    string    `gorm:"column:thumbnail_path;not null"`
	Price            int64     `gorm:"column:price;not null"`
	Year             int       `gorm:"column:year;not null"`
	Miles            int64     `gorm:"column:miles;not null"`
	Color            string    `gorm:"column:color;not null"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Classification *Classification `gorm:"foreignKey:ClassificationID"`
}
