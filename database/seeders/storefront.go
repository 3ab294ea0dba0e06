package seeders

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/models"
	"github.com/bedjos/storefront/app/services"
	"github.com/bedjos/storefront/config"
	"github.com/bedjos/storefront/pkg/auth"
	"github.com/bedjos/storefront/pkg/logger"
)

func init() {
	Register("admin", SeedAdmin)
	Register("products", SeedProducts)
}

const sampleStock = 100

// SampleProducts is the starter catalogue.
var SampleProducts = []models.Product{
	{Name: "Premium Business Cards", Price: 1500, Image: "/images/business-cards.jpg", Category: "Printing",
		Description: "High-quality business cards with glossy finish, perfect for professional branding"},
	{Name: "Custom Letterheads", Price: 2500, Image: "/images/letterheads.jpg", Category: "Printing",
		Description: "Professional letterheads with company branding and contact information"},
	{Name: "Flyers & Brochures", Price: 3000, Image: "/images/flyers.jpg", Category: "Printing",
		Description: "Eye-catching flyers and brochures for marketing campaigns"},
	{Name: "ID Card Holders", Price: 800, Image: "/images/id-holders.jpg", Category: "Accessories",
		Description: "Durable ID card holders with lanyard for professional use"},
	{Name: "Custom T-Shirts", Price: 1200, Image: "/images/tshirts.jpg", Category: "Branding",
		Description: "Custom printed t-shirts for team uniforms and promotional events"},
	{Name: "Website Development", Price: 25000, Image: "/images/website.jpg", Category: "Digital Services",
		Description: "Professional website development with responsive design and SEO optimization"},
	{Name: "Logo Design Package", Price: 15000, Image: "/images/logo-design.jpg", Category: "Design Services",
		Description: "Complete logo design package including multiple formats and brand guidelines"},
	{Name: "Social Media Management", Price: 10000, Image: "/images/social-media.jpg", Category: "Digital Marketing",
		Description: "Monthly social media management and content creation service"},
}

// SeedAdmin creates the configured admin account unless it exists. Nothing
// happens while ADMIN_PASSWORD is empty.
func SeedAdmin(ctx context.Context, db *gorm.DB) error {
	email, password := config.AdminEmail(), config.AdminPassword()
	if email == "" || password == "" {
		logger.Warn("seeders: ADMIN_EMAIL or ADMIN_PASSWORD empty, admin skipped")
		return nil
	}

	svc := services.NewAuthService(db, auth.NewTokenManager(config.JWTSecret(), config.JWTTTL()))
	_, err := svc.EnsureAdmin(ctx, email, password)
	return err
}

// SeedProducts inserts each sample product whose name is not yet taken.
func SeedProducts(ctx context.Context, db *gorm.DB) error {
	for _, sample := range SampleProducts {
		var existing models.Product
		err := db.WithContext(ctx).Where("name = ?", sample.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find product %q: %w", sample.Name, err)
		}

		p := sample
		p.Stock = sampleStock
		if err := db.WithContext(ctx).Create(&p).Error; err != nil {
			return fmt.Errorf("create product %q: %w", sample.Name, err)
		}
	}
	return nil
}
