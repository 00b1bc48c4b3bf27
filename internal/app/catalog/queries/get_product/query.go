package get_product

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
)

// Query handles the get product query use case.
type Query struct {
	catalog contracts.CatalogRepository
}

// NewQuery creates a new get product query.
func NewQuery(catalog contracts.CatalogRepository) *Query {
	return &Query{catalog: catalog}
}

// Execute retrieves a single product by ID.
func (q *Query) Execute(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	p, err := q.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	dto := contracts.NewProductDTO(p)
	return &dto, nil
}
