package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/models"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, m *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// All returns every message newest first.
func (r *ContactRepository) All(ctx context.Context) ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at desc, id desc").Find(&out).Error
	return out, err
}
