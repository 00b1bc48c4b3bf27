package list_offers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

const feed = `[
  {"id": "1", "sku": "A1", "name": "Arroz Diana", "price": 2500, "originalPrice": 3200, "category": "Granos", "rating": 4.8, "stock": 10, "isOffer": true, "tags": []},
  {"id": "2", "sku": "L2", "name": "Leche Alpina", "price": 4200, "category": "Lácteos", "rating": 4.6, "stock": 5, "tags": []},
  {"id": "3", "sku": "C3", "name": "Café Sello Rojo", "price": 8900, "originalPrice": 10500, "category": "Bebidas", "rating": 4.8, "stock": 3, "isOffer": true, "tags": []}
]`

func TestQuery_Execute(t *testing.T) {
	loadTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(loadTime)

	catalog, err := repo.NewCatalog(strings.NewReader(feed))
	require.NoError(t, err)
	q := NewQuery(catalog, clk)
	ctx := context.Background()

	offers, err := q.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 2, "only discounted is-offer products become offers")

	t.Run("derives offer fields from the product", func(t *testing.T) {
		assert.Equal(t, "offer-1", offers[0].ID)
		assert.Equal(t, "Arroz Diana", offers[0].Product.Name)
		assert.Equal(t, 22, offers[0].DiscountPercent) // round(700/3200*100)
		assert.Equal(t, "offer-3", offers[1].ID)
		assert.Equal(t, 15, offers[1].DiscountPercent) // round(1600/10500*100)
	})

	t.Run("end dates stagger from load time", func(t *testing.T) {
		assert.Equal(t, loadTime.Add(3*24*time.Hour), offers[0].EndDate)
		assert.Equal(t, loadTime.Add(4*24*time.Hour), offers[1].EndDate)
	})

	t.Run("countdown is live against the clock", func(t *testing.T) {
		assert.Equal(t, 3, offers[0].Countdown.Days)
		assert.False(t, offers[0].Countdown.Expired)

		clk.Advance(3*24*time.Hour + time.Second)
		offers, err := q.Execute(ctx)
		require.NoError(t, err)
		assert.True(t, offers[0].Countdown.Expired)
		assert.False(t, offers[1].Countdown.Expired)
	})

	t.Run("end dates are stable across requests", func(t *testing.T) {
		again, err := q.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, offers[0].EndDate, again[0].EndDate)
	})
}

func TestQuery_NextExpiry(t *testing.T) {
	loadTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(loadTime)

	catalog, err := repo.NewCatalog(strings.NewReader(feed))
	require.NoError(t, err)
	q := NewQuery(catalog, clk)
	ctx := context.Background()

	next, ok := q.NextExpiry(ctx)
	require.True(t, ok)
	assert.Equal(t, loadTime.Add(3*24*time.Hour), next)

	clk.Advance(3*24*time.Hour + time.Second)
	next, ok = q.NextExpiry(ctx)
	require.True(t, ok)
	assert.Equal(t, loadTime.Add(4*24*time.Hour), next)

	clk.Advance(24 * time.Hour)
	_, ok = q.NextExpiry(ctx)
	assert.False(t, ok, "all offers expired")
}
