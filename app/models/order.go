package models

import (
	"fmt"
	"time"
)

// OrderStatus is the lifecycle state of an order. Any recognised status may
// replace any other.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus accepts only the recognised statuses.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case StatusPending, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

func (s OrderStatus) Valid() bool {
	_, err := ParseOrderStatus(string(s))
	return err == nil
}

// Order is a placed order. CustomerID is set only for orders placed by a
// signed-in customer; guest checkouts carry just the contact fields.
type Order struct {
	ID           uint        `gorm:"primaryKey"                         json:"id"`
	CustomerID   *uint       `gorm:"index"                              json:"customer_id,omitempty"`
	CustomerName string      `gorm:"size:120;not null"                  json:"customer_name"`
	Phone        string      `gorm:"size:20;not null"                   json:"phone"`
	Email        string      `gorm:"size:120"                           json:"email"`
	Total        float64     `gorm:"not null"                           json:"total"`
	Status       OrderStatus `gorm:"size:20;not null;default:pending;index" json:"status"`
	Items        []OrderItem `gorm:"foreignKey:OrderID"                 json:"items,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"-"`
}

// OrderItem is one line of an order. ProductName and Price are copied from
// the product when the order is placed.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey"        json:"id"`
	OrderID     uint    `gorm:"not null;index"    json:"-"`
	ProductID   uint    `gorm:"not null;index"    json:"product_id"`
	ProductName string  `gorm:"size:120"          json:"product_name"`
	Quantity    int     `gorm:"not null"          json:"quantity"`
	Price       float64 `gorm:"not null"          json:"price"`
}
