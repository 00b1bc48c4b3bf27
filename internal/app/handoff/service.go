// Package handoff models the storefront's ack-then-redirect flow: a
// conversion is acknowledged immediately, and the WhatsApp redirect
// becomes ready after a short fixed delay unless cancelled first. The
// delayed step is an owned one-shot token, so a stale pending redirect
// can never fire after cancellation.
package handoff

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	catalogcontracts "github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/whatsapp"
	"github.com/light-bringer/storefront-service/internal/metrics"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/sched"
)

// State is the lifecycle state of a handoff.
type State string

const (
	StateAcknowledged State = "acknowledged"
	StateReady        State = "ready"
	StateCancelled    State = "cancelled"
)

// DefaultDelay matches the storefront's acknowledgement display time.
const DefaultDelay = 1500 * time.Millisecond

// Records older than this are pruned on the next Create.
const retention = 10 * time.Minute

// Handoff is one pending or completed redirect.
type Handoff struct {
	ID        string    `json:"id"`
	State     State     `json:"state"`
	URL       string    `json:"url"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type record struct {
	handoff Handoff
	timer   *sched.OneShot
}

// Service owns the handoff registry. All records live in memory; a
// handoff is a transient conversion artifact, not durable state.
type Service struct {
	catalog   catalogcontracts.CatalogRepository
	messenger *whatsapp.Messenger
	clk       clock.Clock
	delay     time.Duration
	reg       *metrics.Registry

	mu      sync.Mutex
	records map[string]*record
}

// NewService creates a handoff service with the given redirect delay.
func NewService(
	catalog catalogcontracts.CatalogRepository,
	messenger *whatsapp.Messenger,
	clk clock.Clock,
	delay time.Duration,
	reg *metrics.Registry,
) *Service {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Service{
		catalog:   catalog,
		messenger: messenger,
		clk:       clk,
		delay:     delay,
		reg:       reg,
		records:   make(map[string]*record),
	}
}

// CreateProduct starts a buy-now handoff for a catalog product.
func (s *Service) CreateProduct(ctx context.Context, productID string, quantity int) (Handoff, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return Handoff{}, err
	}
	if quantity < 1 {
		quantity = 1
	}
	msg := whatsapp.ProductMessage(product.Name(), product.SKU(), product.Price(), quantity)
	return s.create(msg), nil
}

// CreateContact starts a contact handoff. Name, phone and message are
// required; the product of interest is optional.
func (s *Service) CreateContact(name, phone, message, product string) (Handoff, error) {
	if name == "" {
		return Handoff{}, ErrMissingName
	}
	if phone == "" {
		return Handoff{}, ErrMissingPhone
	}
	if message == "" {
		return Handoff{}, ErrMissingMessage
	}
	msg := whatsapp.ContactMessage(name, phone, message, product)
	return s.create(msg), nil
}

func (s *Service) create(msg whatsapp.Message) Handoff {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()

	id := uuid.New().String()
	rec := &record{
		handoff: Handoff{
			ID:        id,
			State:     StateAcknowledged,
			URL:       s.messenger.URL(msg.Encoded),
			Message:   msg.Text,
			CreatedAt: s.clk.Now(),
		},
	}
	rec.timer = sched.NewOneShot(s.delay, func() { s.markReady(id) })
	s.records[id] = rec

	if s.reg != nil {
		s.reg.HandoffsCreated.Inc()
		s.reg.WhatsAppLinks.Inc()
	}
	return rec.handoff
}

func (s *Service) markReady(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok || rec.handoff.State != StateAcknowledged {
		return
	}
	rec.handoff.State = StateReady
	if s.reg != nil {
		s.reg.HandoffsReady.Inc()
	}
}

// Get returns the current state of a handoff.
func (s *Service) Get(id string) (Handoff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return Handoff{}, ErrNotFound
	}
	return rec.handoff, nil
}

// Cancel stops a pending handoff. Once Cancel succeeds the redirect
// never becomes ready. Cancelling a handoff that already completed
// returns ErrAlreadyCompleted.
//
// The timer is cancelled outside s.mu: the one-shot callback takes s.mu
// itself, so holding it here while waiting on the timer would deadlock.
func (s *Service) Cancel(id string) (Handoff, error) {
	s.mu.Lock()
	rec, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return Handoff{}, ErrNotFound
	}
	if rec.handoff.State != StateAcknowledged {
		h := rec.handoff
		s.mu.Unlock()
		return h, ErrAlreadyCompleted
	}
	timer := rec.timer
	s.mu.Unlock()

	won := timer.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !won {
		// The one-shot fired first; by now markReady has run.
		return rec.handoff, ErrAlreadyCompleted
	}
	rec.handoff.State = StateCancelled
	if s.reg != nil {
		s.reg.HandoffsCancelled.Inc()
	}
	return rec.handoff, nil
}

// Close cancels every pending handoff. Called on shutdown so no timer
// outlives the service.
func (s *Service) Close() {
	s.mu.Lock()
	var pending []*sched.OneShot
	var ids []string
	for id, rec := range s.records {
		if rec.handoff.State == StateAcknowledged {
			pending = append(pending, rec.timer)
			ids = append(ids, id)
		}
	}
	s.mu.Unlock()

	for _, t := range pending {
		t.Cancel()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if rec, ok := s.records[id]; ok && rec.handoff.State == StateAcknowledged {
			rec.handoff.State = StateCancelled
		}
	}
}

// pruneLocked drops records past retention. Caller holds s.mu.
func (s *Service) pruneLocked() {
	cutoff := s.clk.Now().Add(-retention)
	for id, rec := range s.records {
		if rec.handoff.CreatedAt.Before(cutoff) {
			delete(s.records, id)
		}
	}
}
