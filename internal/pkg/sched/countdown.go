// Package sched provides the small scheduling primitives the storefront
// needs: a ticking countdown toward a fixed expiry and a cancellable
// delayed one-shot action.
package sched

import (
	"sync"
	"time"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// Millisecond sizes of the display units.
const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Remaining is the decomposed time left until a target instant.
// All fields are clamped to zero once the target is reached.
type Remaining struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"isExpired"`
}

// Until decomposes the delta between now and target into whole days,
// hours, minutes and seconds. A past or exactly-reached target yields the
// zero value with Expired set; fields are never negative.
func Until(target, now time.Time) Remaining {
	delta := target.Sub(now).Milliseconds()
	if delta <= 0 {
		return Remaining{Expired: true}
	}
	return Remaining{
		Days:    int(delta / msPerDay),
		Hours:   int((delta % msPerDay) / msPerHour),
		Minutes: int((delta % msPerHour) / msPerMinute),
		Seconds: int((delta % msPerMinute) / msPerSecond),
	}
}

// Countdown recomputes Remaining on a fixed interval and delivers each
// snapshot to a callback. It stops ticking on its own once the target
// expires; Stop releases the timer early.
//
// The callback runs under the countdown's lock, so Stop never returns
// while a delivery is in flight and no delivery happens after Stop
// returns.
type Countdown struct {
	target   time.Time
	clk      clock.Clock
	interval time.Duration
	fn       func(Remaining)

	mu      sync.Mutex
	stopped bool
	quit    chan struct{}
}

// NewCountdown starts a countdown toward target, delivering one snapshot
// immediately and then one per interval until expiry or Stop.
func NewCountdown(target time.Time, clk clock.Clock, interval time.Duration, fn func(Remaining)) *Countdown {
	c := &Countdown{
		target:   target,
		clk:      clk,
		interval: interval,
		fn:       fn,
		quit:     make(chan struct{}),
	}
	if !c.deliver() {
		return c
	}
	go c.loop()
	return c
}

func (c *Countdown) loop() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.quit:
			return
		case <-ticker.C:
			if !c.deliver() {
				return
			}
		}
	}
}

// deliver computes and publishes one snapshot. It reports whether the
// countdown should keep ticking.
func (c *Countdown) deliver() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return false
	}
	r := Until(c.target, c.clk.Now())
	c.fn(r)
	if r.Expired {
		c.stopped = true
		return false
	}
	return true
}

// Stop cancels the countdown. It is idempotent and safe to call from any
// goroutine; once it returns, the callback will not fire again.
func (c *Countdown) Stop() {
	c.mu.Lock()
	if !c.stopped {
		c.stopped = true
		close(c.quit)
	}
	c.mu.Unlock()
}
