package seeders

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedjos/storefront/app/models"
	"github.com/bedjos/storefront/config"
	"github.com/bedjos/storefront/pkg/testkit"
)

func TestRunAllIsIdempotent(t *testing.T) {
	config.Set("ADMIN_EMAIL", "Owner@Bedjos.co.ke")
	config.Set("ADMIN_PASSWORD", "Admin@123")
	t.Cleanup(func() { config.Set("ADMIN_PASSWORD", "") })

	db := testkit.NewDB(t, &models.Product{}, &models.Admin{})
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, RunAll(ctx, db, &out))
	require.NoError(t, RunAll(ctx, db, &out))
	assert.Contains(t, out.String(), "Running seeder: products")

	var products, admins int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.Admin{}).Count(&admins).Error)
	assert.EqualValues(t, len(SampleProducts), products)
	assert.EqualValues(t, 1, admins)

	var admin models.Admin
	require.NoError(t, db.First(&admin).Error)
	assert.Equal(t, "owner@bedjos.co.ke", admin.Email)

	var p models.Product
	require.NoError(t, db.Where("name = ?", "ID Card Holders").First(&p).Error)
	assert.Equal(t, 800.0, p.Price)
	assert.Equal(t, sampleStock, p.Stock)
}

func TestSeedAdminSkippedWithoutPassword(t *testing.T) {
	config.Set("ADMIN_PASSWORD", "")
	db := testkit.NewDB(t, &models.Admin{})

	require.NoError(t, SeedAdmin(context.Background(), db))

	var n int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&n).Error)
	assert.Zero(t, n)
}
