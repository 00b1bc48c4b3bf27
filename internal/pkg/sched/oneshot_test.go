package sched

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneShot_Fires(t *testing.T) {
	var fired atomic.Bool
	o := NewOneShot(5*time.Millisecond, func() { fired.Store(true) })

	require.Eventually(t, fired.Load, time.Second, time.Millisecond)
	assert.True(t, o.Fired())
}

func TestOneShot_CancelPreventsAction(t *testing.T) {
	var fired atomic.Bool
	o := NewOneShot(20*time.Millisecond, func() { fired.Store(true) })

	assert.True(t, o.Cancel())
	time.Sleep(50 * time.Millisecond)
	assert.False(t, fired.Load(), "action ran after successful cancel")
	assert.False(t, o.Fired())
}

func TestOneShot_CancelAfterFire(t *testing.T) {
	var fired atomic.Bool
	o := NewOneShot(time.Millisecond, func() { fired.Store(true) })

	require.Eventually(t, fired.Load, time.Second, time.Millisecond)
	assert.False(t, o.Cancel(), "cancel cannot win once the action ran")
}

func TestOneShot_CancelIsIdempotent(t *testing.T) {
	o := NewOneShot(time.Hour, func() {})
	assert.True(t, o.Cancel())
	assert.True(t, o.Cancel())
}
