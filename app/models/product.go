package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is an item in the catalogue. Deleting a product is a soft delete;
// cart rows that still point at it are left in place.
type Product struct {
	ID          uint           `gorm:"primaryKey"             json:"id"`
	Name        string         `gorm:"size:120;not null"      json:"name"`
	Price       float64        `gorm:"not null"               json:"price"`
	Image       string         `gorm:"size:255"               json:"image"`
	Category    string         `gorm:"size:100;index"         json:"category"`
	Description string         `gorm:"type:text"              json:"description"`
	Stock       int            `gorm:"not null;default:0"     json:"stock"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index"                  json:"-"`
}
