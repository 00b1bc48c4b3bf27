package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

func snapshot(id string, price int64) ProductSnapshot {
	return ProductSnapshot{
		ID:       id,
		SKU:      "SKU-" + id,
		Name:     "Product " + id,
		Price:    catalog.MustMoney(price),
		Category: "Granos",
	}
}

func TestCart_AddItem(t *testing.T) {
	t.Run("new product appends one line", func(t *testing.T) {
		c := NewCart("test")
		require.NoError(t, c.AddItem(snapshot("1", 2500), 2))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "1", lines[0].Product().ID)
		assert.Equal(t, 2, lines[0].Quantity())
	})

	t.Run("same product accumulates, never duplicates", func(t *testing.T) {
		c := NewCart("test")
		require.NoError(t, c.AddItem(snapshot("1", 2500), 1))
		require.NoError(t, c.AddItem(snapshot("1", 2500), 3))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 4, lines[0].Quantity())
	})

	t.Run("line order is preserved, new lines append", func(t *testing.T) {
		c := NewCart("test")
		require.NoError(t, c.AddItem(snapshot("1", 2500), 1))
		require.NoError(t, c.AddItem(snapshot("2", 4200), 1))
		require.NoError(t, c.AddItem(snapshot("1", 2500), 1))
		require.NoError(t, c.AddItem(snapshot("3", 9800), 1))

		var ids []string
		for _, l := range c.Lines() {
			ids = append(ids, l.Product().ID)
		}
		assert.Equal(t, []string{"1", "2", "3"}, ids)
	})

	t.Run("quantity below 1 rejected", func(t *testing.T) {
		c := NewCart("test")
		assert.ErrorIs(t, c.AddItem(snapshot("1", 2500), 0), ErrInvalidQuantity)
		assert.ErrorIs(t, c.AddItem(snapshot("1", 2500), -2), ErrInvalidQuantity)
		assert.True(t, c.IsEmpty())
	})
}

func TestCart_RemoveItem(t *testing.T) {
	c := NewCart("test")
	require.NoError(t, c.AddItem(snapshot("1", 2500), 1))
	require.NoError(t, c.AddItem(snapshot("2", 4200), 1))

	c.RemoveItem("1")
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "2", lines[0].Product().ID)

	// Absent id is a no-op.
	c.RemoveItem("missing")
	assert.Len(t, c.Lines(), 1)
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("replaces quantity in place", func(t *testing.T) {
		c := NewCart("test")
		require.NoError(t, c.AddItem(snapshot("1", 2500), 1))
		require.NoError(t, c.AddItem(snapshot("2", 4200), 1))

		c.SetQuantity("1", 5)
		lines := c.Lines()
		assert.Equal(t, "1", lines[0].Product().ID)
		assert.Equal(t, 5, lines[0].Quantity())
	})

	t.Run("zero and negative behave as remove", func(t *testing.T) {
		for _, qty := range []int{0, -3} {
			c := NewCart("test")
			require.NoError(t, c.AddItem(snapshot("1", 2500), 2))
			c.SetQuantity("1", qty)
			assert.True(t, c.IsEmpty())
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		c := NewCart("test")
		require.NoError(t, c.AddItem(snapshot("1", 2500), 2))
		c.SetQuantity("missing", 7)
		assert.Len(t, c.Lines(), 1)
		assert.Equal(t, 2, c.Lines()[0].Quantity())
	})
}

func TestCart_Totals(t *testing.T) {
	c := NewCart("test")
	require.NoError(t, c.AddItem(snapshot("1", 2500), 2))
	require.NoError(t, c.AddItem(snapshot("2", 4200), 3))

	assert.Equal(t, 5, c.TotalItems())
	assert.Equal(t, int64(2*2500+3*4200), c.TotalPrice().Amount())
}

func TestCart_TotalPriceUsesAddTimeSnapshot(t *testing.T) {
	c := NewCart("test")
	require.NoError(t, c.AddItem(snapshot("1", 2500), 2))

	// Re-adding the same product after a catalog repricing merges into
	// the existing line and keeps its captured price.
	repriced := snapshot("1", 9999)
	require.NoError(t, c.AddItem(repriced, 1))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity())
	assert.Equal(t, int64(3*2500), c.TotalPrice().Amount())
}

func TestCart_Clear(t *testing.T) {
	c := NewCart("test")
	require.NoError(t, c.AddItem(snapshot("1", 2500), 2))
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalPrice().IsZero())
}

func TestReconstructCart(t *testing.T) {
	cart := ReconstructCart("viveres-cart", []SnapshotLine{
		{Product: snapshot("1", 2500), Quantity: 2},
		{Product: snapshot("2", 4200), Quantity: 0}, // dropped
		{Product: snapshot("3", 9800), Quantity: 1},
	})

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].Product().ID)
	assert.Equal(t, "3", lines[1].Product().ID)
	assert.Equal(t, "viveres-cart", cart.ID())
}
