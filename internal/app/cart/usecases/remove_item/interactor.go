package remove_item

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/shared"
	"github.com/light-bringer/storefront-service/internal/metrics"
)

// Request contains the data needed to remove an item from the cart.
type Request struct {
	CartID    string
	ProductID string
}

// Interactor handles the remove item use case.
type Interactor struct {
	store contracts.CartStore
	reg   *metrics.Registry
}

// NewInteractor creates a new remove item interactor.
func NewInteractor(store contracts.CartStore, reg *metrics.Registry) *Interactor {
	return &Interactor{store: store, reg: reg}
}

// Execute deletes the matching line and persists the new snapshot. An
// absent product id is a no-op.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	cart, err := i.store.Load(ctx, req.CartID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	cart.RemoveItem(req.ProductID)

	shared.Persist(ctx, i.store, i.reg, cart)
	return nil
}
