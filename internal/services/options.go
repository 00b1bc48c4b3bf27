package services

import (
	"context"
	"fmt"
	"time"

	"github.com/light-bringer/storefront-service/internal/app/cart/queries/get_cart"
	cartrepo "github.com/light-bringer/storefront-service/internal/app/cart/repo"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/clear_cart"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/update_quantity"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_offers"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	catalogrepo "github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/app/handoff"
	"github.com/light-bringer/storefront-service/internal/app/whatsapp"
	"github.com/light-bringer/storefront-service/internal/metrics"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/sched"
	"github.com/light-bringer/storefront-service/internal/transport/http/storefront"
)

// Config holds the dependencies' wiring parameters.
type Config struct {
	CatalogPath    string
	CartDBPath     string
	WhatsAppNumber string
	HandoffDelay   time.Duration
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Metrics           *metrics.Registry
	StorefrontHandler *storefront.Handler

	cartStore     *cartrepo.PebbleStore
	handoffs      *handoff.Service
	expiryWatcher *sched.Countdown
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg Config) (*ServiceOptions, error) {
	// 1. Infrastructure
	clk := clock.NewRealClock()
	reg := metrics.NewRegistry()

	// 2. Catalog feed (loaded wholesale, read-only afterwards)
	catalog, err := catalogrepo.NewCatalogFromFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog feed: %w", err)
	}

	// 3. Cart store
	cartStore, err := cartrepo.NewPebbleStore(cfg.CartDBPath, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to open cart store: %w", err)
	}

	// 4. Queries (read operations)
	listProductsQuery := list_products.NewQuery(catalog)
	listCategoriesQuery := list_categories.NewQuery(catalog)
	getProductQuery := get_product.NewQuery(catalog)
	listOffersQuery := list_offers.NewQuery(catalog, clk)
	getCartQuery := get_cart.NewQuery(cartStore)

	// 5. Command use cases (write operations)
	addItemUseCase := add_item.NewInteractor(catalog, cartStore, reg)
	removeItemUseCase := remove_item.NewInteractor(cartStore, reg)
	updateQuantityUseCase := update_quantity.NewInteractor(cartStore, reg)
	clearCartUseCase := clear_cart.NewInteractor(cartStore, reg)

	// 6. Conversion funnel
	messenger := whatsapp.NewMessenger(cfg.WhatsAppNumber)
	handoffs := handoff.NewService(catalog, messenger, clk, cfg.HandoffDelay, reg)

	// 7. HTTP handler
	handler := storefront.NewHandler(
		listProductsQuery,
		listCategoriesQuery,
		getProductQuery,
		listOffersQuery,
		getCartQuery,
		addItemUseCase,
		removeItemUseCase,
		updateQuantityUseCase,
		clearCartUseCase,
		handoffs,
		messenger,
		reg,
	)

	opts := &ServiceOptions{
		Metrics:           reg,
		StorefrontHandler: handler,
		cartStore:         cartStore,
		handoffs:          handoffs,
	}

	// 8. Track the nearest offer expiry on the metrics gauge. The watcher
	// stops itself at expiry and is cancelled on Close.
	if next, ok := listOffersQuery.NextExpiry(ctx); ok {
		opts.expiryWatcher = sched.NewCountdown(next, clk, time.Second, func(r sched.Remaining) {
			secs := ((r.Days*24+r.Hours)*60+r.Minutes)*60 + r.Seconds
			reg.OfferExpirySec.Set(float64(secs))
		})
	}

	return opts, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.expiryWatcher != nil {
		s.expiryWatcher.Stop()
	}
	if s.handoffs != nil {
		s.handoffs.Close()
	}
	if s.cartStore != nil {
		s.cartStore.Close()
	}
}
