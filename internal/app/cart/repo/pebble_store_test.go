package repo

import (
	"context"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/cart/domain"
	"github.com/light-bringer/storefront-service/internal/metrics"
	"github.com/light-bringer/storefront-service/internal/models/m_cart"
)

func testSnapshot(id string, price int64) domain.ProductSnapshot {
	return domain.ProductSnapshot{
		ID:       id,
		SKU:      "SKU-" + id,
		Name:     "Product " + id,
		Price:    catalog.MustMoney(price),
		Category: "Granos",
	}
}

func TestPebbleStore_RoundTrip(t *testing.T) {
	store, err := NewPebbleStore(t.TempDir(), metrics.NewRegistry())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	cart := domain.NewCart(m_cart.DefaultSlot)
	require.NoError(t, cart.AddItem(testSnapshot("1", 2500), 2))
	require.NoError(t, cart.AddItem(testSnapshot("2", 4200), 1))
	require.NoError(t, store.Save(ctx, cart))

	loaded, err := store.Load(ctx, m_cart.DefaultSlot)
	require.NoError(t, err)

	lines := loaded.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].Product().ID)
	assert.Equal(t, 2, lines[0].Quantity())
	assert.Equal(t, int64(2500), lines[0].Product().Price.Amount())
	assert.Equal(t, int64(2*2500+4200), loaded.TotalPrice().Amount())
}

func TestPebbleStore_SaveReplacesSnapshot(t *testing.T) {
	store, err := NewPebbleStore(t.TempDir(), nil)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	cart := domain.NewCart(m_cart.DefaultSlot)
	require.NoError(t, cart.AddItem(testSnapshot("1", 2500), 2))
	require.NoError(t, store.Save(ctx, cart))

	cart.Clear()
	require.NoError(t, store.Save(ctx, cart))

	loaded, err := store.Load(ctx, m_cart.DefaultSlot)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestPebbleStore_MissingSnapshotLoadsEmpty(t *testing.T) {
	store, err := NewPebbleStore(t.TempDir(), nil)
	require.NoError(t, err)
	defer store.Close()

	cart, err := store.Load(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "never-saved", cart.ID())
}

func TestPebbleStore_MalformedSnapshotLoadsEmpty(t *testing.T) {
	dir := t.TempDir()

	// Plant garbage under the slot key, as a crashed writer or an old
	// incompatible layout would.
	db, err := pebble.Open(dir, &pebble.Options{})
	require.NoError(t, err)
	require.NoError(t, db.Set(m_cart.Key(m_cart.DefaultSlot), []byte("{not json"), pebble.Sync))
	require.NoError(t, db.Close())

	store, err := NewPebbleStore(dir, metrics.NewRegistry())
	require.NoError(t, err)
	defer store.Close()

	cart, err := store.Load(context.Background(), m_cart.DefaultSlot)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestPebbleStore_EmptyCartIDRejected(t *testing.T) {
	store, err := NewPebbleStore(t.TempDir(), nil)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyCartID)
}
