package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// feedRecord mirrors one entry of the catalog feed file.
type feedRecord struct {
	ID            string   `json:"id"`
	SKU           string   `json:"sku"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Stock         int      `json:"stock"`
	IsOffer       bool     `json:"isOffer,omitempty"`
	IsNew         bool     `json:"isNew,omitempty"`
	Tags          []string `json:"tags"`
}

// Catalog is an in-memory CatalogRepository backed by the static feed.
// It is read-only after construction, so it needs no locking.
type Catalog struct {
	products []*domain.Product
	byID     map[string]*domain.Product
}

// NewCatalogFromFile loads the whole feed from a JSON file.
func NewCatalogFromFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog feed: %w", err)
	}
	defer f.Close()
	return NewCatalog(f)
}

// NewCatalog loads the whole feed from a reader holding a JSON array of
// product records. Feed order is preserved; duplicate ids or SKUs are a
// load error.
func NewCatalog(r io.Reader) (*Catalog, error) {
	var records []feedRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog feed: %w", err)
	}

	c := &Catalog{
		products: make([]*domain.Product, 0, len(records)),
		byID:     make(map[string]*domain.Product, len(records)),
	}
	seenSKU := make(map[string]struct{}, len(records))

	for i, rec := range records {
		price, err := domain.NewMoney(rec.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog feed record %d (%q): %w", i, rec.ID, err)
		}
		var original *domain.Money
		if rec.OriginalPrice != nil {
			op, err := domain.NewMoney(*rec.OriginalPrice)
			if err != nil {
				return nil, fmt.Errorf("catalog feed record %d (%q): %w", i, rec.ID, err)
			}
			original = &op
		}

		p, err := domain.NewProduct(
			rec.ID, rec.SKU, rec.Name,
			price, original,
			rec.Image, rec.Category,
			rec.Rating, rec.Stock,
			rec.IsOffer, rec.IsNew,
			rec.Tags,
		)
		if err != nil {
			return nil, fmt.Errorf("catalog feed record %d (%q): %w", i, rec.ID, err)
		}

		if _, dup := c.byID[p.ID()]; dup {
			return nil, fmt.Errorf("catalog feed record %d: duplicate product id %q", i, p.ID())
		}
		if _, dup := seenSKU[p.SKU()]; dup {
			return nil, fmt.Errorf("catalog feed record %d: duplicate product sku %q", i, p.SKU())
		}
		seenSKU[p.SKU()] = struct{}{}
		c.byID[p.ID()] = p
		c.products = append(c.products, p)
	}

	return c, nil
}

// GetByID retrieves a product by ID.
func (c *Catalog) GetByID(_ context.Context, productID string) (*domain.Product, error) {
	p, ok := c.byID[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// All returns every product in feed order.
func (c *Catalog) All(_ context.Context) ([]*domain.Product, error) {
	return append([]*domain.Product(nil), c.products...), nil
}

// Len returns the number of products loaded.
func (c *Catalog) Len() int {
	return len(c.products)
}
