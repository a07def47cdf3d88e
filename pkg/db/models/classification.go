package models

// Classification groups inventory items (SUV, Sedan, Truck, ...).
// Classifications are created by elevated accounts and never updated or
// deleted through the application.
type Classification struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;not null;uniqueIndex"`
}
