// Package correlator turns connectionless OSC send/receive into typed
// request/response calls. The wire protocol carries no correlation ID, so
// matching is done by OSC address alone, FIFO per address (spec §4.3).
package correlator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrTimeout is returned when a waiter's deadline fires before a reply
// arrives. It is a recoverable, per-call error — it never tears down the
// transport.
var ErrTimeout = errors.New("correlator: timeout waiting for response")

// ErrCancelled is returned to every pending waiter when Shutdown is called.
var ErrCancelled = errors.New("correlator: cancelled")

// DefaultTimeout is the deadline applied to a waiter when none is given.
const DefaultTimeout = 2 * time.Second

// waiter is one pending registration at a given address.
type waiter struct {
	resultCh chan result
	timer    *time.Timer
}

type result struct {
	args []any
	err  error
}

// Handle is returned by Expect; callers block on Wait for the outcome.
type Handle struct {
	w *waiter
	c *Correlator
	addr string
}

// Correlator holds, per OSC address, a FIFO queue of pending waiters.
// All mutations are serialized behind one mutex (spec §5): this is the
// only shared mutable state in the system.
type Correlator struct {
	mu      sync.Mutex
	pending map[string][]*waiter
	closed  bool
}

// New returns an empty Correlator.
func New() *Correlator {
	return &Correlator{pending: make(map[string][]*waiter)}
}

// Expect registers a waiter at the tail of the queue for address, with a
// deadline of timeout from now (DefaultTimeout if timeout <= 0). The
// returned Handle resolves exactly once: with a value, ErrTimeout, or
// ErrCancelled (spec §8 invariant 3).
func (c *Correlator) Expect(address string, timeout time.Duration) *Handle {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	w := &waiter{resultCh: make(chan result, 1)}
	h := &Handle{w: w, c: c, addr: address}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		w.resultCh <- result{err: ErrCancelled}
		return h
	}
	c.pending[address] = append(c.pending[address], w)
	c.mu.Unlock()

	w.timer = time.AfterFunc(timeout, func() {
		c.expire(address, w)
	})

	return h
}

// expire removes w from address's queue, if still present, and resolves it
// with ErrTimeout. If w already resolved (a reply raced the timer), this
// is a no-op.
func (c *Correlator) expire(address string, w *waiter) {
	c.mu.Lock()
	queue := c.pending[address]
	for i, q := range queue {
		if q == w {
			c.pending[address] = append(queue[:i], queue[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	select {
	case w.resultCh <- result{err: ErrTimeout}:
	default:
		// Already resolved by HandleResponse or CancelAll.
	}
}

// HandleResponse dequeues the head waiter for address, if any, and resolves
// it with args. If no waiter is queued, the packet is dropped silently —
// a reply racing a caller's timeout is normal, not an error (spec §4.3).
func (c *Correlator) HandleResponse(address string, args []any) {
	c.mu.Lock()
	queue := c.pending[address]
	if len(queue) == 0 {
		c.mu.Unlock()
		return
	}
	w := queue[0]
	c.pending[address] = queue[1:]
	c.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	select {
	case w.resultCh <- result{args: args}:
	default:
		// Already timed out between being dequeued and here; drop.
	}
}

// CancelAll fails every pending waiter with ErrCancelled. Used only on
// shutdown (spec §4.3).
func (c *Correlator) CancelAll() {
	c.mu.Lock()
	c.closed = true
	all := c.pending
	c.pending = make(map[string][]*waiter)
	c.mu.Unlock()

	count := 0
	for _, queue := range all {
		for _, w := range queue {
			if w.timer != nil {
				w.timer.Stop()
			}
			select {
			case w.resultCh <- result{err: ErrCancelled}:
				count++
			default:
			}
		}
	}
	if count > 0 {
		slog.Info("correlator cancelled pending waiters", "count", count)
	}
}

// PendingCount returns the number of outstanding waiters, optionally
// restricted to one address (empty string means all addresses). Used by
// the status endpoint (SPEC_FULL.md httpapi).
func (c *Correlator) PendingCount(address string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if address != "" {
		return len(c.pending[address])
	}
	total := 0
	for _, q := range c.pending {
		total += len(q)
	}
	return total
}

// Wait blocks until the Handle resolves, or until ctx is cancelled (in
// which case the waiter is removed from its queue and ErrCancelled-like
// behavior is surfaced as ctx.Err()).
func (h *Handle) Wait(ctx context.Context) ([]any, error) {
	select {
	case r := <-h.w.resultCh:
		return r.args, r.err
	case <-ctx.Done():
		h.c.cancelOne(h.addr, h.w)
		return nil, ctx.Err()
	}
}

// cancelOne removes w from address's queue if still present, without
// resolving its channel (the caller already gave up via ctx).
func (c *Correlator) cancelOne(address string, w *waiter) {
	if w.timer != nil {
		w.timer.Stop()
	}
	c.mu.Lock()
	queue := c.pending[address]
	for i, q := range queue {
		if q == w {
			c.pending[address] = append(queue[:i], queue[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
}
