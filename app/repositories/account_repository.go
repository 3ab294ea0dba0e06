package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/models"
)

// AccountRepository handles database operations for Admin and Customer.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindAdmin(ctx context.Context, id uint) (models.Admin, error) {
	var a models.Admin
	err := r.db.WithContext(ctx).First(&a, id).Error
	return a, err
}

func (r *AccountRepository) FindAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	var a models.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error
	return a, err
}

func (r *AccountRepository) CreateAdmin(ctx context.Context, a *models.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) FindCustomer(ctx context.Context, id uint) (models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	return c, err
}

func (r *AccountRepository) FindCustomerByEmail(ctx context.Context, email string) (models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	return c, err
}

func (r *AccountRepository) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Customers returns every customer newest first.
func (r *AccountRepository) Customers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	err := r.db.WithContext(ctx).Order("created_at desc, id desc").Find(&out).Error
	return out, err
}
