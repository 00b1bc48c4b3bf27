package domain

import (
	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// ProductSnapshot is the slice of a catalog product a cart line carries.
// The price is captured at add time; later catalog repricing never
// changes the totals of an existing line.
type ProductSnapshot struct {
	ID       string
	SKU      string
	Name     string
	Price    catalog.Money
	Image    string
	Category string
}

// Line is one (product, quantity) pairing within a cart. Quantity is
// always at least 1; a line that would drop to 0 is removed instead.
type Line struct {
	product  ProductSnapshot
	quantity int
}

// Product returns the product snapshot of the line.
func (l *Line) Product() ProductSnapshot { return l.product }

// Quantity returns the line quantity.
func (l *Line) Quantity() int { return l.quantity }

// Subtotal returns price x quantity for the line.
func (l *Line) Subtotal() catalog.Money {
	return l.product.Price.MultiplyQty(l.quantity)
}

// Cart is the aggregate for the shopping cart: an ordered sequence of
// lines with at most one line per product id.
type Cart struct {
	id    string
	lines []*Line
}

// NewCart creates an empty cart with the given slot id.
func NewCart(id string) *Cart {
	return &Cart{id: id}
}

// SnapshotLine is one persisted line as handed back by a cart store.
type SnapshotLine struct {
	Product  ProductSnapshot
	Quantity int
}

// ReconstructCart reconstitutes a cart from a persisted snapshot. Lines
// with a non-positive quantity are dropped rather than resurrected.
func ReconstructCart(id string, lines []SnapshotLine) *Cart {
	c := NewCart(id)
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		c.lines = append(c.lines, &Line{product: l.Product, quantity: l.Quantity})
	}
	return c
}

// ID returns the cart slot id.
func (c *Cart) ID() string { return c.id }

// Lines returns the cart lines in order.
func (c *Cart) Lines() []*Line {
	return append([]*Line(nil), c.lines...)
}

// AddItem adds quantity units of the product. An existing line for the
// same product id is incremented in place; otherwise a new line is
// appended at the end.
func (c *Cart) AddItem(product ProductSnapshot, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for _, l := range c.lines {
		if l.product.ID == product.ID {
			l.quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, &Line{product: product, quantity: quantity})
	return nil
}

// RemoveItem deletes the line for the product id. An absent id is a
// no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	for i, l := range c.lines {
		if l.product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity of an existing line, preserving its
// position. A quantity of zero or below behaves as RemoveItem.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for _, l := range c.lines {
		if l.product.ID == productID {
			l.quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// TotalItems returns the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.quantity
	}
	return total
}

// TotalPrice returns the sum of line subtotals over the captured price
// snapshots.
func (c *Cart) TotalPrice() catalog.Money {
	total := catalog.Money{}
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// IsEmpty returns true when the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
