package sched

import (
	"sync"
	"time"
)

// OneShot runs a single action after a fixed delay unless cancelled
// first. Unlike a bare time.AfterFunc, the token makes the race explicit:
// Cancel reports whether it won, and once it returns true the action is
// guaranteed never to run.
type OneShot struct {
	mu        sync.Mutex
	timer     *time.Timer
	fired     bool
	cancelled bool
}

// NewOneShot schedules fn to run once after delay.
func NewOneShot(delay time.Duration, fn func()) *OneShot {
	o := &OneShot{}
	o.timer = time.AfterFunc(delay, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.cancelled {
			return
		}
		o.fired = true
		fn()
	})
	return o
}

// Cancel stops the pending action. It returns true if the action had not
// yet run and now never will. A false return means the action already ran
// (or was running; Cancel waits for it to finish before returning).
func (o *OneShot) Cancel() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fired || o.cancelled {
		return o.cancelled && !o.fired
	}
	o.cancelled = true
	o.timer.Stop()
	return true
}

// Fired reports whether the action has run.
func (o *OneShot) Fired() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.fired
}
