package add_item

import (
	"context"
	"fmt"

	catalogcontracts "github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-service/internal/app/cart/domain"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/shared"
	"github.com/light-bringer/storefront-service/internal/metrics"
)

// Request contains the data needed to add an item to the cart.
type Request struct {
	CartID    string
	ProductID string
	Quantity  int
}

// Interactor handles the add item use case.
type Interactor struct {
	catalog catalogcontracts.CatalogRepository
	store   contracts.CartStore
	reg     *metrics.Registry
}

// NewInteractor creates a new add item interactor.
func NewInteractor(catalog catalogcontracts.CatalogRepository, store contracts.CartStore, reg *metrics.Registry) *Interactor {
	return &Interactor{catalog: catalog, store: store, reg: reg}
}

// Execute resolves the product, merges it into the cart and persists the
// new snapshot. An existing line for the same product accumulates; a new
// product appends at the end.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.Quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	product, err := i.catalog.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	cart, err := i.store.Load(ctx, req.CartID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	snapshot := domain.ProductSnapshot{
		ID:       product.ID(),
		SKU:      product.SKU(),
		Name:     product.Name(),
		Price:    product.Price(),
		Image:    product.Image(),
		Category: product.Category(),
	}
	if err := cart.AddItem(snapshot, req.Quantity); err != nil {
		return err
	}

	shared.Persist(ctx, i.store, i.reg, cart)
	return nil
}
