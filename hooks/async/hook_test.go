package asynchook

import (
	"errors"
	"sync"
	"testing"

	"github.com/unkn0wn-root/percent"
)

type countHooks struct {
	percent.NopHooks
	mu    sync.Mutex
	block chan struct{}
	keys  []string
}

func (c *countHooks) KeyRejected(k string, _ error) {
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	c.keys = append(c.keys, k)
	c.mu.Unlock()
}

func TestDeliversBeforeClose(t *testing.T) {
	inner := &countHooks{}
	h := New(inner, 2, 16)
	for i := 0; i < 10; i++ {
		h.KeyRejected("user:%zz", errors.New("bad"))
	}
	h.Close()

	if len(inner.keys) != 10 {
		t.Fatalf("delivered %d events, want 10", len(inner.keys))
	}
	if h.Dropped() != 0 {
		t.Fatalf("dropped = %d", h.Dropped())
	}
}

func TestDropsWhenFullAndAfterClose(t *testing.T) {
	inner := &countHooks{block: make(chan struct{})}
	h := New(inner, 1, 1)

	// first event occupies the worker (may still sit in the queue), the
	// second fills or waits in the queue, the rest must be dropped
	for i := 0; i < 5; i++ {
		h.KeyRejected("k", nil)
	}
	if h.Dropped() < 3 {
		t.Fatalf("dropped = %d, want >= 3", h.Dropped())
	}
	close(inner.block)
	h.Close()

	before := h.Dropped()
	h.KeyRejected("late", nil)
	h.Close() // idempotent
	if h.Dropped() != before+1 {
		t.Fatalf("event after Close not dropped")
	}
}
