package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg              *prometheus.Registry
	CartMutations    prometheus.Counter
	CartSaves        prometheus.Counter
	CartSaveFailures prometheus.Counter
	CartDiscarded    prometheus.Counter
	WhatsAppLinks    prometheus.Counter

	// Handoff (ack-then-redirect) metrics
	HandoffsCreated   prometheus.Counter
	HandoffsReady     prometheus.Counter
	HandoffsCancelled prometheus.Counter

	// Seconds until the nearest offer expiry, updated by the countdown
	OfferExpirySec prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	cartMutations := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_cart_mutations_total"})
	cartSaves := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_cart_saves_total"})
	cartSaveFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_cart_save_failures_total"})
	cartDiscarded := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_cart_snapshots_discarded_total"})
	whatsappLinks := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_whatsapp_links_total"})

	handoffsCreated := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_handoffs_created_total"})
	handoffsReady := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_handoffs_ready_total"})
	handoffsCancelled := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_handoffs_cancelled_total"})

	offerExpiry := prometheus.NewGauge(prometheus.GaugeOpts{Name: "storefront_offer_expiry_seconds"})

	r.MustRegister(cartMutations, cartSaves, cartSaveFailures, cartDiscarded, whatsappLinks,
		handoffsCreated, handoffsReady, handoffsCancelled, offerExpiry)
	return &Registry{
		reg:               r,
		CartMutations:     cartMutations,
		CartSaves:         cartSaves,
		CartSaveFailures:  cartSaveFailures,
		CartDiscarded:     cartDiscarded,
		WhatsAppLinks:     whatsappLinks,
		HandoffsCreated:   handoffsCreated,
		HandoffsReady:     handoffsReady,
		HandoffsCancelled: handoffsCancelled,
		OfferExpirySec:    offerExpiry,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
