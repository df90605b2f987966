package correlator

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestHandleResponseResolvesWaiter(t *testing.T) {
	c := New()
	h := c.Expect("/song/get/tempo", time.Second)

	c.HandleResponse("/song/get/tempo", []any{float32(120.0)})

	args, err := h.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if len(args) != 1 || args[0].(float32) != 120.0 {
		t.Fatalf("args: got %#v", args)
	}
}

func TestTimeout(t *testing.T) {
	c := New()
	h := c.Expect("/song/get/tempo", 20*time.Millisecond)

	_, err := h.Wait(context.Background())
	if err != ErrTimeout {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}

	// A later call on the same address must still work — timeout does not
	// poison the correlator.
	h2 := c.Expect("/song/get/tempo", time.Second)
	c.HandleResponse("/song/get/tempo", []any{float32(100.0)})
	args, err := h2.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait after timeout: %v", err)
	}
	if args[0].(float32) != 100.0 {
		t.Fatalf("args: got %#v", args)
	}
}

func TestLateReplyAfterTimeoutIsDroppedSilently(t *testing.T) {
	c := New()
	h := c.Expect("/song/get/tempo", 10*time.Millisecond)

	_, err := h.Wait(context.Background())
	if err != ErrTimeout {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}

	// A reply arriving after the waiter is gone must not panic or resolve
	// a since-registered, unrelated waiter.
	c.HandleResponse("/song/get/tempo", []any{float32(999.0)})

	h2 := c.Expect("/song/get/tempo", time.Second)
	c.HandleResponse("/song/get/tempo", []any{float32(42.0)})
	args, err := h2.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if args[0].(float32) != 42.0 {
		t.Fatalf("late reply leaked into a fresh waiter: got %#v", args)
	}
}

func TestFIFOOrderingPerAddress(t *testing.T) {
	c := New()
	const n = 20

	handles := make([]*Handle, n)
	for i := range handles {
		handles[i] = c.Expect("/track/get/name", time.Second)
	}

	for i := range n {
		c.HandleResponse("/track/get/name", []any{fmt.Sprintf("track-%d", i)})
	}

	for i, h := range handles {
		args, err := h.Wait(context.Background())
		if err != nil {
			t.Fatalf("waiter %d: %v", i, err)
		}
		want := fmt.Sprintf("track-%d", i)
		if args[0].(string) != want {
			t.Fatalf("waiter %d: got %q, want %q (FIFO order violated)", i, args[0], want)
		}
	}
}

func TestCancelAll(t *testing.T) {
	c := New()
	h1 := c.Expect("/song/get/tempo", time.Second)
	h2 := c.Expect("/track/get/name", time.Second)

	c.CancelAll()

	if _, err := h1.Wait(context.Background()); err != ErrCancelled {
		t.Errorf("h1: expected ErrCancelled, got %v", err)
	}
	if _, err := h2.Wait(context.Background()); err != ErrCancelled {
		t.Errorf("h2: expected ErrCancelled, got %v", err)
	}

	// Expect after CancelAll resolves immediately as cancelled too.
	h3 := c.Expect("/song/get/tempo", time.Second)
	if _, err := h3.Wait(context.Background()); err != ErrCancelled {
		t.Errorf("h3: expected ErrCancelled, got %v", err)
	}
}

func TestWaitContextCancellation(t *testing.T) {
	c := New()
	h := c.Expect("/song/get/tempo", 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := h.Wait(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if c.PendingCount("/song/get/tempo") != 0 {
		t.Fatalf("waiter should have been removed from the queue")
	}
}

// TestConcurrentFIFOStress mirrors the spec §8 invariant 2 property at
// scale: K waiters on one address, K replies delivered in order from a
// separate goroutine while the waiters are being awaited, must resolve in
// enqueue order even though delivery and waiting race.
func TestConcurrentFIFOStress(t *testing.T) {
	c := New()
	const n = 500

	handles := make([]*Handle, n)
	for i := range handles {
		handles[i] = c.Expect("/clip/get/notes", 5*time.Second)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range n {
			c.HandleResponse("/clip/get/notes", []any{i})
		}
	}()
	defer wg.Wait()

	for i, h := range handles {
		args, err := h.Wait(context.Background())
		if err != nil {
			t.Fatalf("waiter %d: %v", i, err)
		}
		if args[0].(int) != i {
			t.Fatalf("waiter %d: got %d, FIFO order violated", i, args[0])
		}
	}
}
