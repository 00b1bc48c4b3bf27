package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/cart/domain"
)

// CartStore persists whole cart snapshots under a fixed slot key. There
// is no per-line persistence: every Save replaces the stored snapshot.
type CartStore interface {
	// Load reads the persisted snapshot for the cart id. A missing or
	// malformed snapshot yields an empty cart, never an error.
	Load(ctx context.Context, cartID string) (*domain.Cart, error)

	// Save writes the full snapshot. Failures are reported to the caller,
	// who decides whether to degrade to in-memory-only operation.
	Save(ctx context.Context, cart *domain.Cart) error
}
