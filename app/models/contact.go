package models

import "time"

// ContactMessage is append-only.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey"          json:"id"`
	Name      string    `gorm:"size:120;not null"   json:"name"`
	Email     string    `gorm:"size:120;not null"   json:"email"`
	Phone     string    `gorm:"size:20"             json:"phone"`
	Message   string    `gorm:"type:text;not null"  json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
