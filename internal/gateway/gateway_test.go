package gateway

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dawbridge/internal/correlator"
)

// fakeSender records every Send call and can be toggled disconnected.
type fakeSender struct {
	mu        sync.Mutex
	connected bool
	sent      []sentCall
	sendErr   error
}

type sentCall struct {
	address string
	args    []any
}

func (f *fakeSender) Send(address string, args []any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentCall{address, args})
	return nil
}

func (f *fakeSender) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func newFakeSender() *fakeSender { return &fakeSender{connected: true} }

func TestSendFailsWhenNotConnected(t *testing.T) {
	fs := &fakeSender{connected: false}
	corr := correlator.New()
	g := New(nil, corr, time.Second)
	g.transport = fs

	if err := g.send("/song/start_playing"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestRequestRoundTrip(t *testing.T) {
	fs := newFakeSender()
	corr := correlator.New()
	g := New(nil, corr, time.Second)
	g.transport = fs
	g.corr = corr

	go func() {
		// Simulate the remote replying once the send has been recorded.
		for {
			fs.mu.Lock()
			n := len(fs.sent)
			fs.mu.Unlock()
			if n > 0 {
				break
			}
			time.Sleep(time.Millisecond)
		}
		corr.HandleResponse("/song/get/tempo", []any{float32(128.0)})
	}()

	got, err := g.requestFloat(context.Background(), "/song/get/tempo")
	if err != nil {
		t.Fatalf("requestFloat: %v", err)
	}
	if got != 128.0 {
		t.Fatalf("got %v, want 128.0", got)
	}
}

func TestRequestTimesOutWithoutReply(t *testing.T) {
	fs := newFakeSender()
	corr := correlator.New()
	g := New(nil, corr, 20*time.Millisecond)
	g.transport = fs
	g.corr = corr

	_, err := g.request(context.Background(), "/song/get/tempo")
	if !errors.Is(err, ErrCommunication) {
		t.Fatalf("expected ErrCommunication, got %v", err)
	}
}

// TestPerAddressSerialization verifies that the gateway never has more
// than one outstanding request on a given address at a time: a background
// responder drains exactly one pending waiter at a time, and every caller
// must get back the echo it sent — if requests interleaved, a caller could
// receive another goroutine's reply instead of its own.
func TestPerAddressSerialization(t *testing.T) {
	fs := newFakeSender()
	corr := correlator.New()
	g := New(nil, corr, time.Second)
	g.transport = fs
	g.corr = corr

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			fs.mu.Lock()
			n := len(fs.sent)
			var last sentCall
			if n > 0 {
				last = fs.sent[n-1]
			}
			fs.mu.Unlock()
			if n > 0 && corr.PendingCount("/track/get/name") > 0 {
				corr.HandleResponse("/track/get/name", last.args)
			}
			time.Sleep(time.Millisecond)
		}
	}()

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			reply, err := g.request(context.Background(), "/track/get/name", int32(i))
			if err != nil {
				t.Errorf("request %d: %v", i, err)
				return
			}
			if reply[0].(int32) != int32(i) {
				t.Errorf("request %d: got back reply for request %d (requests interleaved)", i, reply[0])
			}
		}(i)
	}
	wg.Wait()
}
