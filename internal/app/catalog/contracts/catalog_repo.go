package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// CatalogRepository defines read access to the product catalog. The
// catalog is loaded wholesale at startup and never mutated, so there are
// no write methods.
type CatalogRepository interface {
	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// All returns every product in feed order
	All(ctx context.Context) ([]*domain.Product, error)
}
