package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/models"
	"github.com/bedjos/storefront/pkg/auth"
	"github.com/bedjos/storefront/pkg/testkit"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testkit.NewDB(t,
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.CartItem{},
		&models.Admin{},
		&models.Customer{},
		&models.ContactMessage{},
	)
}

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, Stock: stock, Image: "/images/" + name + ".jpg"}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
