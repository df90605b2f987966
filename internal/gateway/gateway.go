// Package gateway exposes typed request/response and fire-and-forget
// methods modeling the DAW's live object model (spec §4.4). It is a thin,
// stateless façade: every method queries the DAW fresh and never caches
// the result (spec §9, "container of references" redesign note).
package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dawbridge/internal/correlator"
	"dawbridge/internal/osc"
	"dawbridge/internal/udptransport"
)

// sender is the subset of *udptransport.Transport the gateway depends on;
// an interface here lets tests inject a fake without a real socket pair.
type sender interface {
	Send(address string, args []any) error
	IsConnected() bool
}

// responder is the subset of *correlator.Correlator the gateway depends on.
type responder interface {
	Expect(address string, timeout time.Duration) *correlator.Handle
}

// Gateway composes a transport and a correlator into the typed DAW API.
// Two tool calls touching the same OSC address are serialized by an
// address-keyed mutex (spec §4.4, §5) — FIFO correlation only works if
// callers never interleave two in-flight requests on one address.
type Gateway struct {
	transport sender
	corr      responder
	timeout   time.Duration

	addrMu sync.Mutex
	locks  map[string]*sync.Mutex
}

// New returns a Gateway bound to transport and corr, using timeout as the
// default per-request deadline (correlator.DefaultTimeout if timeout <= 0).
func New(transport *udptransport.Transport, corr *correlator.Correlator, timeout time.Duration) *Gateway {
	return &Gateway{
		transport: transport,
		corr:      corr,
		timeout:   timeout,
		locks:     make(map[string]*sync.Mutex),
	}
}

// lockFor returns the serializer mutex for address, creating it on first
// use. The map itself is protected by addrMu; the returned mutex is held
// only for the duration of one request/response round trip.
func (g *Gateway) lockFor(address string) *sync.Mutex {
	g.addrMu.Lock()
	defer g.addrMu.Unlock()
	m, ok := g.locks[address]
	if !ok {
		m = &sync.Mutex{}
		g.locks[address] = m
	}
	return m
}

// send is the fire-and-forget shape: encode and send, no reply expected.
func (g *Gateway) send(address string, args ...any) error {
	if !g.transport.IsConnected() {
		return ErrNotConnected
	}
	if err := g.transport.Send(address, args); err != nil {
		return fmt.Errorf("%w: %v", ErrCommunication, err)
	}
	return nil
}

// request is the request/response shape: register a waiter, send, await
// the reply with the gateway's default timeout, serialized per address
// so a second concurrent caller on the same address can't steal this
// one's reply out of FIFO order.
func (g *Gateway) request(ctx context.Context, address string, args ...any) ([]any, error) {
	if !g.transport.IsConnected() {
		return nil, ErrNotConnected
	}

	lock := g.lockFor(address)
	lock.Lock()
	defer lock.Unlock()

	h := g.corr.Expect(address, g.timeout)
	if err := g.transport.Send(address, args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommunication, err)
	}

	reply, err := h.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommunication, err)
	}
	if len(reply) == 0 {
		return nil, fmt.Errorf("%w: empty response from %s", ErrProtocol, address)
	}
	return reply, nil
}

// requestFloat issues a request and coerces the first argument to float32.
func (g *Gateway) requestFloat(ctx context.Context, address string, args ...any) (float32, error) {
	reply, err := g.request(ctx, address, args...)
	if err != nil {
		return 0, err
	}
	v, ok := argFloat(reply[0])
	if !ok {
		return 0, fmt.Errorf("%w: expected float from %s, got %T", ErrProtocol, address, reply[0])
	}
	return v, nil
}

// requestInt issues a request and coerces the first argument to int.
func (g *Gateway) requestInt(ctx context.Context, address string, args ...any) (int, error) {
	reply, err := g.request(ctx, address, args...)
	if err != nil {
		return 0, err
	}
	v, ok := argInt(reply[0])
	if !ok {
		return 0, fmt.Errorf("%w: expected int from %s, got %T", ErrProtocol, address, reply[0])
	}
	return v, nil
}

// requestString issues a request and coerces the first argument to string.
func (g *Gateway) requestString(ctx context.Context, address string, args ...any) (string, error) {
	reply, err := g.request(ctx, address, args...)
	if err != nil {
		return "", err
	}
	v, ok := reply[0].(string)
	if !ok {
		return "", fmt.Errorf("%w: expected string from %s, got %T", ErrProtocol, address, reply[0])
	}
	return v, nil
}

// requestBool issues a request and coerces the first argument to bool,
// accepting either an OSC boolean tag or a 0/1 integer (spec §6.1: the
// remote script is inconsistent about which it uses per address).
func (g *Gateway) requestBool(ctx context.Context, address string, args ...any) (bool, error) {
	reply, err := g.request(ctx, address, args...)
	if err != nil {
		return false, err
	}
	return argBool(reply[0])
}

func argFloat(a any) (float32, bool) {
	switch v := a.(type) {
	case float32:
		return v, true
	case int32:
		return float32(v), true
	default:
		return 0, false
	}
}

func argInt(a any) (int, bool) {
	switch v := a.(type) {
	case int32:
		return int(v), true
	case float32:
		return int(v), true
	default:
		return 0, false
	}
}

func argBool(a any) (bool, error) {
	switch v := a.(type) {
	case osc.Bool:
		return bool(v), nil
	case int32:
		return v != 0, nil
	case float32:
		return v != 0, nil
	default:
		return false, fmt.Errorf("%w: expected bool-like, got %T", ErrProtocol, a)
	}
}

func boolArg(b bool) osc.Bool { return osc.Bool(b) }
