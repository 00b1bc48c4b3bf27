package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	"github.com/cockroachdb/pebble"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/cart/domain"
	"github.com/light-bringer/storefront-service/internal/metrics"
	"github.com/light-bringer/storefront-service/internal/models/m_cart"
)

// PebbleStore persists cart snapshots in a local PebbleDB directory.
// One JSON record per cart under m_cart.Key.
type PebbleStore struct {
	db  *pebble.DB
	reg *metrics.Registry
}

// NewPebbleStore opens (or creates) the cart store at dir.
func NewPebbleStore(dir string, reg *metrics.Registry) (*PebbleStore, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &PebbleStore{db: db, reg: reg}, nil
}

// Close closes the underlying database.
func (s *PebbleStore) Close() error { return s.db.Close() }

// Load reads the persisted snapshot for the cart id. Missing and
// malformed snapshots both yield an empty cart: stale on-disk data must
// never take the storefront down.
func (s *PebbleStore) Load(_ context.Context, cartID string) (*domain.Cart, error) {
	if cartID == "" {
		return nil, domain.ErrEmptyCartID
	}

	val, closer, err := s.db.Get(m_cart.Key(cartID))
	if err == pebble.ErrNotFound {
		return domain.NewCart(cartID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart snapshot: %w", err)
	}
	defer closer.Close()

	var data m_cart.Data
	if err := json.Unmarshal(val, &data); err != nil {
		log.Printf("cart store: discarding malformed snapshot for %q: %v", cartID, err)
		if s.reg != nil {
			s.reg.CartDiscarded.Inc()
		}
		return domain.NewCart(cartID), nil
	}

	lines := make([]domain.SnapshotLine, 0, len(data.Lines))
	for _, l := range data.Lines {
		price, err := catalog.NewMoney(l.Product.Price)
		if err != nil {
			log.Printf("cart store: discarding malformed snapshot for %q: %v", cartID, err)
			if s.reg != nil {
				s.reg.CartDiscarded.Inc()
			}
			return domain.NewCart(cartID), nil
		}
		lines = append(lines, domain.SnapshotLine{
			Product: domain.ProductSnapshot{
				ID:       l.Product.ID,
				SKU:      l.Product.SKU,
				Name:     l.Product.Name,
				Price:    price,
				Image:    l.Product.Image,
				Category: l.Product.Category,
			},
			Quantity: l.Quantity,
		})
	}

	return domain.ReconstructCart(cartID, lines), nil
}

// Save writes the full snapshot for the cart, replacing any previous one.
func (s *PebbleStore) Save(_ context.Context, cart *domain.Cart) error {
	data := m_cart.Data{
		CartID: cart.ID(),
		Lines:  make([]m_cart.LineData, 0, len(cart.Lines())),
	}
	for _, l := range cart.Lines() {
		p := l.Product()
		data.Lines = append(data.Lines, m_cart.LineData{
			Product: m_cart.ProductData{
				ID:       p.ID,
				SKU:      p.SKU,
				Name:     p.Name,
				Price:    p.Price.Amount(),
				Image:    p.Image,
				Category: p.Category,
			},
			Quantity: l.Quantity(),
		})
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := s.db.Set(m_cart.Key(cart.ID()), payload, pebble.NoSync); err != nil {
		return fmt.Errorf("write cart snapshot: %w", err)
	}
	if s.reg != nil {
		s.reg.CartSaves.Inc()
	}
	return nil
}
