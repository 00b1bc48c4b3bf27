package clear_cart

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/shared"
	"github.com/light-bringer/storefront-service/internal/metrics"
)

// Request identifies the cart to empty.
type Request struct {
	CartID string
}

// Interactor handles the clear cart use case.
type Interactor struct {
	store contracts.CartStore
	reg   *metrics.Registry
}

// NewInteractor creates a new clear cart interactor.
func NewInteractor(store contracts.CartStore, reg *metrics.Registry) *Interactor {
	return &Interactor{store: store, reg: reg}
}

// Execute empties the cart and persists the empty snapshot.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	cart, err := i.store.Load(ctx, req.CartID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	cart.Clear()

	shared.Persist(ctx, i.store, i.reg, cart)
	return nil
}
