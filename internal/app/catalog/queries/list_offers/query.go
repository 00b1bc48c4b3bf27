package list_offers

import (
	"context"
	"sync"
	"time"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/sched"
)

// offerDescription matches the storefront's fixed offer copy.
const offerDescription = "¡Aprovecha esta increíble oferta especial por tiempo limitado!"

// offerWindow staggers offer expiries: the first offer runs 3 days from
// load, each following one a day longer.
const offerWindow = 3

// Query derives the weekly offers from discounted catalog products.
// End dates are anchored to the time the offer set is first built, so
// they stay stable across requests instead of sliding with the clock.
type Query struct {
	catalog contracts.CatalogRepository
	clk     clock.Clock

	once     sync.Once
	buildErr error
	offers   []offer
}

type offer struct {
	id      string
	product contracts.ProductDTO
	percent int
	endDate time.Time
}

// NewQuery creates a new list offers query.
func NewQuery(catalog contracts.CatalogRepository, clk clock.Clock) *Query {
	return &Query{catalog: catalog, clk: clk}
}

// Execute returns the current offers with live countdown state. Expired
// offers remain in the response flagged as expired; the storefront
// decides how to render them.
func (q *Query) Execute(ctx context.Context) ([]contracts.OfferDTO, error) {
	q.once.Do(func() { q.buildErr = q.build(ctx) })
	if q.buildErr != nil {
		return nil, q.buildErr
	}

	now := q.clk.Now()
	result := make([]contracts.OfferDTO, 0, len(q.offers))
	for _, o := range q.offers {
		result = append(result, contracts.OfferDTO{
			ID:              o.id,
			Product:         o.product,
			DiscountPercent: o.percent,
			EndDate:         o.endDate,
			Description:     offerDescription,
			Countdown:       sched.Until(o.endDate, now),
		})
	}
	return result, nil
}

// NextExpiry returns the soonest offer end date still in the future, or
// false when every offer has expired.
func (q *Query) NextExpiry(ctx context.Context) (time.Time, bool) {
	q.once.Do(func() { q.buildErr = q.build(ctx) })
	if q.buildErr != nil {
		return time.Time{}, false
	}

	now := q.clk.Now()
	var next time.Time
	for _, o := range q.offers {
		if !o.endDate.After(now) {
			continue
		}
		if next.IsZero() || o.endDate.Before(next) {
			next = o.endDate
		}
	}
	return next, !next.IsZero()
}

func (q *Query) build(ctx context.Context) error {
	products, err := q.catalog.All(ctx)
	if err != nil {
		return err
	}

	loadedAt := q.clk.Now()
	idx := 0
	for _, p := range products {
		if !p.IsOffer() || !p.HasDiscount() {
			continue
		}
		q.offers = append(q.offers, offer{
			id:      "offer-" + p.ID(),
			product: contracts.NewProductDTO(p),
			percent: p.DiscountPercent(),
			endDate: loadedAt.Add(time.Duration(offerWindow+idx) * 24 * time.Hour),
		})
		idx++
	}
	return nil
}
