package get_cart

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/cart/contracts"
)

// LineDTO is one cart line with its computed subtotal.
type LineDTO struct {
	ProductID         string `json:"productId"`
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	Price             int64  `json:"price"`
	PriceFormatted    string `json:"priceFormatted"`
	Image             string `json:"image"`
	Category          string `json:"category"`
	Quantity          int    `json:"quantity"`
	Subtotal          int64  `json:"subtotal"`
	SubtotalFormatted string `json:"subtotalFormatted"`
}

// CartDTO is the full cart view with totals.
type CartDTO struct {
	CartID              string    `json:"cartId"`
	Lines               []LineDTO `json:"items"`
	TotalItems          int       `json:"totalItems"`
	TotalPrice          int64     `json:"totalPrice"`
	TotalPriceFormatted string    `json:"totalPriceFormatted"`
}

// Query handles the get cart query use case.
type Query struct {
	store contracts.CartStore
}

// NewQuery creates a new get cart query.
func NewQuery(store contracts.CartStore) *Query {
	return &Query{store: store}
}

// Execute loads the cart snapshot and computes totals over the price
// snapshots captured at add time.
func (q *Query) Execute(ctx context.Context, cartID string) (*CartDTO, error) {
	cart, err := q.store.Load(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	dto := &CartDTO{
		CartID: cart.ID(),
		Lines:  make([]LineDTO, 0, len(cart.Lines())),
	}
	for _, l := range cart.Lines() {
		p := l.Product()
		subtotal := l.Subtotal()
		dto.Lines = append(dto.Lines, LineDTO{
			ProductID:         p.ID,
			SKU:               p.SKU,
			Name:              p.Name,
			Price:             p.Price.Amount(),
			PriceFormatted:    p.Price.Format(),
			Image:             p.Image,
			Category:          p.Category,
			Quantity:          l.Quantity(),
			Subtotal:          subtotal.Amount(),
			SubtotalFormatted: subtotal.Format(),
		})
	}
	dto.TotalItems = cart.TotalItems()
	total := cart.TotalPrice()
	dto.TotalPrice = total.Amount()
	dto.TotalPriceFormatted = total.Format()

	return dto, nil
}
