package shared

import (
	"context"
	"log"

	"github.com/light-bringer/storefront-service/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-service/internal/app/cart/domain"
	"github.com/light-bringer/storefront-service/internal/metrics"
)

// Persist writes the cart snapshot best-effort after a mutation. A
// failing local store degrades the cart to in-memory-only operation
// instead of failing the request; the failure is logged and counted.
func Persist(ctx context.Context, store contracts.CartStore, reg *metrics.Registry, cart *domain.Cart) {
	if reg != nil {
		reg.CartMutations.Inc()
	}
	if err := store.Save(ctx, cart); err != nil {
		log.Printf("cart: snapshot save failed for %q: %v", cart.ID(), err)
		if reg != nil {
			reg.CartSaveFailures.Inc()
		}
	}
}
