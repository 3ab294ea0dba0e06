package models

import "time"

type Admin struct {
	ID           uint      `gorm:"primaryKey"                      json:"id"`
	Email        string    `gorm:"size:120;uniqueIndex;not null"   json:"email"`
	PasswordHash string    `gorm:"size:255;not null"               json:"-"`
	CreatedAt    time.Time `json:"-"`
}

type Customer struct {
	ID           uint      `gorm:"primaryKey"                      json:"id"`
	Name         string    `gorm:"size:120;not null"               json:"name"`
	Email        string    `gorm:"size:120;uniqueIndex;not null"   json:"email"`
	Phone        string    `gorm:"size:20"                         json:"phone"`
	PasswordHash string    `gorm:"size:255;not null"               json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
