package models

import (
	"time"

	"github.com/motormart/motormart-backend/pkg/enums"
)

// Account represents a registered dealership user. The password hash is
// stripped from every value that leaves the accounts service.
type Account struct {
	ID           uint              `gorm:"primaryKey;autoIncrement"`
	FirstName    string            `gorm:"column:first_name;not null"`
	LastName     string            `gorm:"column:last_name;not null"`
	Email        string            `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string            `gorm:"column:password_hash;not null"`
	AccountType  enums.AccountType `gorm:"column:account_type;not null;default:Client"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
