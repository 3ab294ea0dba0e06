package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/models"
	"github.com/bedjos/storefront/app/repositories"
)

type Stats struct {
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	PendingOrders int64   `json:"pending_orders"`
	TotalProducts int64   `json:"total_products"`
}

// StatsService aggregates dashboard figures. Nothing is cached.
type StatsService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		orders:   repositories.NewOrderRepository(db),
		products: repositories.NewProductRepository(db),
	}
}

func (s *StatsService) Summary(ctx context.Context) (Stats, error) {
	var (
		st  Stats
		err error
	)

	if st.TotalOrders, err = s.orders.Count(ctx); err != nil {
		return Stats{}, fmt.Errorf("count orders: %w", err)
	}
	if st.PendingOrders, err = s.orders.CountByStatus(ctx, models.StatusPending); err != nil {
		return Stats{}, fmt.Errorf("count pending orders: %w", err)
	}
	if st.TotalProducts, err = s.products.Count(ctx); err != nil {
		return Stats{}, fmt.Errorf("count products: %w", err)
	}

	revenue, err := s.orders.Revenue(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("sum revenue: %w", err)
	}
	st.TotalRevenue = revenue.InexactFloat64()

	return st, nil
}
