package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newTestDB(t))

	id, err := svc.Create(ctx, CreateProductInput{Name: "Business Cards", Price: 1500, Category: "Printing", Stock: 10})
	require.NoError(t, err)
	assert.NotZero(t, id)

	p, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Business Cards", p.Name)
	assert.Equal(t, 1500.0, p.Price)

	require.NoError(t, svc.Update(ctx, id, UpdateProductInput{Price: floatPtr(1800), Stock: intPtr(0)}))
	p, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, p.Price)
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, "Business Cards", p.Name, "unsupplied fields are untouched")
	assert.Equal(t, "Printing", p.Category)

	require.NoError(t, svc.Update(ctx, id, UpdateProductInput{Name: strPtr("Premium Cards")}))
	p, _ = svc.Get(ctx, id)
	assert.Equal(t, "Premium Cards", p.Name)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, id), ErrNotFound)
	assert.ErrorIs(t, svc.Update(ctx, id, UpdateProductInput{Name: strPtr("x")}), ErrNotFound)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalogListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCatalogService(db)

	seedProduct(t, db, "Flyers", 3000, 1)
	seedProduct(t, db, "Letterheads", 2500, 1)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Flyers", list[0].Name)
	assert.Equal(t, "Letterheads", list[1].Name)
}

func TestNotFoundMessage(t *testing.T) {
	_, err := NewCatalogService(newTestDB(t)).Get(context.Background(), 42)
	msg, ok := PublicMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Product not found", msg)
}

func TestCatalogUpdateRejectsBlankName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCatalogService(db)
	p := seedProduct(t, db, "Flyers", 3000, 1)

	err := svc.Update(ctx, p.ID, UpdateProductInput{Name: strPtr("   "), Price: floatPtr(3500)})
	assert.ErrorIs(t, err, ErrValidation)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flyers", got.Name)
	assert.Equal(t, 3000.0, got.Price, "a rejected update changes nothing")

	require.NoError(t, svc.Update(ctx, p.ID, UpdateProductInput{Name: strPtr("  Flyers A5  ")}))
	got, _ = svc.Get(ctx, p.ID)
	assert.Equal(t, "Flyers A5", got.Name)
}
