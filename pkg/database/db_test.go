package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectSQLiteMemory(t *testing.T) {
	db, err := Connect("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	type probe struct {
		ID   uint
		Code string `gorm:"uniqueIndex"`
	}
	require.NoError(t, db.AutoMigrate(&probe{}))
	require.NoError(t, db.Create(&probe{Code: "a"}).Error)

	err = db.Create(&probe{Code: "a"}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestConnectUnsupportedDriver(t *testing.T) {
	_, err := Connect("oracle", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(gorm.ErrRecordNotFound))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_customers_email"`)))
	assert.True(t, IsUniqueViolation(errors.New("Error 1062: Duplicate entry 'a@b.c' for key 'email'")))
}
