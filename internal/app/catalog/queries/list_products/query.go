package list_products

import (
	"context"
	"strings"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
)

// AllCategories is the sentinel category value that matches every product.
const AllCategories = "Todas"

// Request contains the catalog filter parameters.
type Request struct {
	Search   string
	Category string
}

// Query handles the filtered product listing.
type Query struct {
	catalog contracts.CatalogRepository
}

// NewQuery creates a new list products query.
func NewQuery(catalog contracts.CatalogRepository) *Query {
	return &Query{catalog: catalog}
}

// Execute returns the products whose name or SKU contains the search term
// (case-insensitively) and whose category matches the requested one. An
// empty category behaves like the sentinel.
func (q *Query) Execute(ctx context.Context, req *Request) ([]contracts.ProductDTO, error) {
	products, err := q.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(req.Search)
	category := req.Category
	if category == "" {
		category = AllCategories
	}

	result := make([]contracts.ProductDTO, 0, len(products))
	for _, p := range products {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(p.Name()), term) ||
			strings.Contains(strings.ToLower(p.SKU()), term)
		matchesCategory := category == AllCategories || p.Category() == category

		if matchesSearch && matchesCategory {
			result = append(result, contracts.NewProductDTO(p))
		}
	}

	return result, nil
}
