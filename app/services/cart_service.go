package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/models"
	"github.com/bedjos/storefront/app/repositories"
	"github.com/bedjos/storefront/pkg/collection"
	"github.com/bedjos/storefront/pkg/database"
)

type AddToCartInput struct {
	ProductID uint   `json:"product_id" validate:"required"`
	SessionID string `json:"session_id" validate:"required,max=120"`
	Quantity  *int   `json:"quantity"   validate:"gte=1"`
}

// CartLine is one cart row joined to its product.
type CartLine struct {
	ID           uint    `json:"id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	ItemTotal    float64 `json:"item_total"`
}

type Cart struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

// CartService manages anonymous, session-keyed carts.
type CartService struct {
	db       *gorm.DB
	cart     *repositories.CartRepository
	products *repositories.ProductRepository
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{
		db:       db,
		cart:     repositories.NewCartRepository(db),
		products: repositories.NewProductRepository(db),
	}
}

// Add puts quantity units of a product into the session's cart, adding to
// the existing line when there is one.
func (s *CartService) Add(ctx context.Context, in AddToCartInput) error {
	qty := 1
	if in.Quantity != nil {
		qty = *in.Quantity
	}

	if _, err := s.products.Find(ctx, in.ProductID); err != nil {
		return notFoundOr(err, "find product", "Product not found")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart := s.cart.WithTx(tx)

		found, err := cart.Increment(ctx, in.SessionID, in.ProductID, qty)
		if err != nil || found {
			return err
		}
		return cart.Create(ctx, &models.CartItem{SessionID: in.SessionID, ProductID: in.ProductID, Quantity: qty})
	})
	if database.IsUniqueViolation(err) {
		// A concurrent add inserted the row first.
		_, err = s.cart.Increment(ctx, in.SessionID, in.ProductID, qty)
	}
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	return nil
}

// Get returns the session's cart. Lines whose product has since been
// deleted are skipped.
func (s *CartService) Get(ctx context.Context, sessionID string) (Cart, error) {
	items, err := s.cart.ForSession(ctx, sessionID)
	if err != nil {
		return Cart{}, fmt.Errorf("load cart: %w", err)
	}

	ids := collection.Unique(collection.Map(items, func(it models.CartItem) uint { return it.ProductID }))
	products, err := s.products.FindMany(ctx, ids)
	if err != nil {
		return Cart{}, fmt.Errorf("load cart products: %w", err)
	}

	lines := make([]CartLine, 0, len(items))
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok {
			continue
		}

		itemTotal := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))

		lines = append(lines, CartLine{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductName:  p.Name,
			ProductPrice: p.Price,
			ProductImage: p.Image,
			Quantity:     it.Quantity,
			ItemTotal:    itemTotal.InexactFloat64(),
		})
	}

	total := collection.SumDecimal(lines, func(l CartLine) decimal.Decimal {
		return decimal.NewFromFloat(l.ProductPrice).Mul(decimal.NewFromInt(int64(l.Quantity)))
	})
	return Cart{Items: lines, Total: total.InexactFloat64(), Count: len(lines)}, nil
}

// Remove deletes one line, which must belong to sessionID.
func (s *CartService) Remove(ctx context.Context, sessionID string, itemID uint) error {
	ok, err := s.cart.DeleteItem(ctx, sessionID, itemID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if !ok {
		return newError(ErrNotFound, "Item not found in cart")
	}
	return nil
}

// Clear empties the session's cart. Clearing an empty cart succeeds.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.cart.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
