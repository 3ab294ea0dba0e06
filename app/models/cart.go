package models

import "time"

// CartItem is one product line in an anonymous, session-keyed cart.
type CartItem struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID string    `gorm:"size:120;not null;uniqueIndex:idx_cart_session_product"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_session_product"`
	Quantity  int       `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
