package list_categories

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
)

// Query derives the category filter options from the catalog.
type Query struct {
	catalog contracts.CatalogRepository
}

// NewQuery creates a new list categories query.
func NewQuery(catalog contracts.CatalogRepository) *Query {
	return &Query{catalog: catalog}
}

// Execute returns the distinct categories in first-seen feed order,
// always prefixed with the sentinel that matches everything.
func (q *Query) Execute(ctx context.Context) ([]string, error) {
	products, err := q.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	categories := []string{list_products.AllCategories}
	seen := make(map[string]struct{})
	for _, p := range products {
		if _, ok := seen[p.Category()]; ok {
			continue
		}
		seen[p.Category()] = struct{}{}
		categories = append(categories, p.Category())
	}

	return categories, nil
}
