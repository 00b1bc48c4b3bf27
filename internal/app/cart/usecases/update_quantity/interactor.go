package update_quantity

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/shared"
	"github.com/light-bringer/storefront-service/internal/metrics"
)

// Request contains the data needed to update a line quantity.
type Request struct {
	CartID    string
	ProductID string
	Quantity  int
}

// Interactor handles the update quantity use case.
type Interactor struct {
	store contracts.CartStore
	reg   *metrics.Registry
}

// NewInteractor creates a new update quantity interactor.
func NewInteractor(store contracts.CartStore, reg *metrics.Registry) *Interactor {
	return &Interactor{store: store, reg: reg}
}

// Execute replaces the line's quantity in place. A quantity of zero or
// below removes the line entirely.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	cart, err := i.store.Load(ctx, req.CartID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	cart.SetQuantity(req.ProductID, req.Quantity)

	shared.Persist(ctx, i.store, i.reg, cart)
	return nil
}
