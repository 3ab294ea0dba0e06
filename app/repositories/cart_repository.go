package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/models"
)

// CartRepository handles database operations for CartItem.
type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) WithTx(tx *gorm.DB) *CartRepository {
	return &CartRepository{db: tx}
}

// Increment adds qty to the existing (session, product) row and reports
// whether one existed.
func (r *CartRepository) Increment(ctx context.Context, sessionID string, productID uint, qty int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Update("quantity", gorm.Expr("quantity + ?", qty))
	return res.RowsAffected > 0, res.Error
}

func (r *CartRepository) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// ForSession returns the session's rows oldest first.
func (r *CartRepository) ForSession(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("id asc").Find(&items).Error
	return items, err
}

// DeleteItem removes one row only if it belongs to sessionID.
func (r *CartRepository) DeleteItem(ctx context.Context, sessionID string, itemID uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND session_id = ?", itemID, sessionID).Delete(&models.CartItem{})
	return res.RowsAffected > 0, res.Error
}

func (r *CartRepository) Clear(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}
