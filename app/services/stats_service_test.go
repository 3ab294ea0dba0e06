package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsEmpty(t *testing.T) {
	st, err := NewStatsService(newTestDB(t)).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}

func TestStatsSummary(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	orders := NewOrderService(db)
	seedProduct(t, db, "Flyers", 3000, 1)
	seedProduct(t, db, "Letterheads", 2500, 1)

	id, err := orders.PlaceGuestOrder(ctx, GuestOrderInput{CustomerName: "A", Phone: "1", Total: 1500.5})
	require.NoError(t, err)
	_, err = orders.PlaceGuestOrder(ctx, GuestOrderInput{CustomerName: "B", Phone: "2", Total: 0.25})
	require.NoError(t, err)
	require.NoError(t, orders.UpdateStatus(ctx, id, "completed"))

	st, err := NewStatsService(db).Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{TotalOrders: 2, TotalRevenue: 1500.75, PendingOrders: 1, TotalProducts: 2}, st)
}
