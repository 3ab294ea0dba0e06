package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/models"
	"github.com/bedjos/storefront/app/repositories"
	"github.com/bedjos/storefront/pkg/logger"
)

type CreateProductInput struct {
	Name        string  `json:"name"        validate:"required,max=120"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Image       string  `json:"image"       validate:"nullable,max=255"`
	Category    string  `json:"category"    validate:"nullable,max=100"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"       validate:"gte=0"`
}

// UpdateProductInput carries a partial update; nil fields stay unchanged.
type UpdateProductInput struct {
	Name        *string  `json:"name"        validate:"min=1,max=120"`
	Price       *float64 `json:"price"       validate:"gt=0"`
	Image       *string  `json:"image"       validate:"max=255"`
	Category    *string  `json:"category"    validate:"max=100"`
	Description *string  `json:"description"`
	Stock       *int     `json:"stock"       validate:"gte=0"`
}

func (in UpdateProductInput) fields() map[string]any {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Stock != nil {
		fields["stock"] = *in.Stock
	}
	return fields
}

// CatalogService manages the product catalogue.
type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{products: repositories.NewProductRepository(db)}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *CatalogService) Get(ctx context.Context, id uint) (models.Product, error) {
	p, err := s.products.Find(ctx, id)
	if err != nil {
		return p, notFoundOr(err, "find product", "Product not found")
	}
	return p, nil
}

// Create stores a new product and returns its id.
func (s *CatalogService) Create(ctx context.Context, in CreateProductInput) (uint, error) {
	p := models.Product{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Description: in.Description,
		Stock:       in.Stock,
	}
	if err := s.products.Create(ctx, &p); err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}

	logger.WithCtx(ctx).Info("product created", "product_id", p.ID, "name", p.Name)
	return p.ID, nil
}

// Update overwrites only the supplied fields.
func (s *CatalogService) Update(ctx context.Context, id uint, in UpdateProductInput) error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return newError(ErrValidation, "The name field is required.")
	}
	if _, err := s.products.Find(ctx, id); err != nil {
		return notFoundOr(err, "find product", "Product not found")
	}
	if err := s.products.Update(ctx, id, in.fields()); err != nil {
		return fmt.Errorf("update product %d: %w", id, err)
	}
	return nil
}

// Delete soft-deletes the product. Cart rows referencing it are left alone.
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	ok, err := s.products.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if !ok {
		return newError(ErrNotFound, "Product not found")
	}

	logger.WithCtx(ctx).Info("product deleted", "product_id", id)
	return nil
}
