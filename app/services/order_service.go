package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/models"
	"github.com/bedjos/storefront/app/repositories"
	"github.com/bedjos/storefront/pkg/logger"
)

// GuestOrderInput is the simple checkout: the client supplies the total.
type GuestOrderInput struct {
	CustomerName string  `json:"customer_name" validate:"required,max=120"`
	Phone        string  `json:"phone"         validate:"required,max=20"`
	Email        string  `json:"email"         validate:"nullable,email,max=120"`
	Total        float64 `json:"total"         validate:"required,gt=0"`
}

type OrderLineInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CustomerOrderInput is the stock-aware checkout: prices come from the catalogue.
type CustomerOrderInput struct {
	Items []OrderLineInput `json:"items" validate:"required"`
}

type UpdateStatusInput struct {
	Status string `json:"status"`
}

// OrderService places and manages orders.
type OrderService struct {
	db       *gorm.DB
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:       db,
		orders:   repositories.NewOrderRepository(db),
		products: repositories.NewProductRepository(db),
	}
}

// PlaceGuestOrder stores a pending order with the client's total and no items.
func (s *OrderService) PlaceGuestOrder(ctx context.Context, in GuestOrderInput) (uint, error) {
	o := models.Order{
		CustomerName: strings.TrimSpace(in.CustomerName),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		Total:        in.Total,
		Status:       models.StatusPending,
	}
	if err := s.orders.Create(ctx, &o); err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	logger.WithCtx(ctx).Info("order placed", "order_id", o.ID, "total", o.Total)
	return o.ID, nil
}

// PlaceCustomerOrder prices every line from the catalogue, takes the stock
// and stores the order in one transaction. A missing product or a short
// line aborts the whole order and leaves all stock untouched.
func (s *OrderService) PlaceCustomerOrder(ctx context.Context, customer models.Customer, in CustomerOrderInput) (models.Order, error) {
	if len(in.Items) == 0 {
		return models.Order{}, newError(ErrValidation, "Order must contain at least one item")
	}
	for _, line := range in.Items {
		if line.ProductID == 0 || line.Quantity < 1 {
			return models.Order{}, newError(ErrValidation, "Each item needs a product_id and a quantity of at least 1")
		}
	}

	customerID := customer.ID
	order := models.Order{
		CustomerID:   &customerID,
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		Email:        customer.Email,
		Status:       models.StatusPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := s.products.WithTx(tx)
		total := decimal.Zero

		for _, line := range in.Items {
			p, err := products.Find(ctx, line.ProductID)
			if err != nil {
				return notFoundOr(err, "find product", "Product not found")
			}

			ok, err := products.DecrementStock(ctx, p.ID, line.Quantity)
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
			if !ok {
				return newError(ErrInsufficientStock, "Insufficient stock for %s", p.Name)
			}

			order.Items = append(order.Items, models.OrderItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    line.Quantity,
				Price:       p.Price,
			})
			total = total.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		order.Total = total.InexactFloat64()
		return s.orders.WithTx(tx).Create(ctx, &order)
	})
	if err != nil {
		return models.Order{}, err
	}

	logger.WithCtx(ctx).Info("customer order placed",
		"order_id", order.ID,
		"customer_id", customer.ID,
		"items", len(order.Items),
		"total", order.Total,
	)
	return order, nil
}

// Get returns an order with its items.
func (s *OrderService) Get(ctx context.Context, id uint) (models.Order, error) {
	o, err := s.orders.Find(ctx, id)
	if err != nil {
		return o, notFoundOr(err, "find order", "Order not found")
	}
	return o, nil
}

// ForCustomer lists a customer's own orders, newest first.
func (s *OrderService) ForCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	orders, err := s.orders.ForCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}
	return orders, nil
}

// List returns every order, newest first.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets any recognised status; there are no transition rules.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return newError(ErrValidation, "Status required")
	}
	status, err := models.ParseOrderStatus(strings.TrimSpace(raw))
	if err != nil {
		return newError(ErrInvalidStatus, "Status must be one of pending, completed, cancelled")
	}

	if _, err := s.orders.Find(ctx, id); err != nil {
		return notFoundOr(err, "find order", "Order not found")
	}
	if _, err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update order %d status: %w", id, err)
	}

	logger.WithCtx(ctx).Info("order status updated", "order_id", id, "status", status)
	return nil
}
