package models

import "time"

// Review is a customer note attached to a vehicle. Mutations are allowed
// only for the owning account; ownership is re-verified server-side on
// every edit and delete.
type Review struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Text        string    `gorm:"column:text;not null"`
	InventoryID uint      `gorm:"column:inventory_id;not null;index"`
	AccountID   uint      `gorm:"column:account_id;not null;index"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Inventory *InventoryItem `gorm:"foreignKey:InventoryID"`
	Account   *Account       `gorm:"foreignKey:AccountID"`
}
