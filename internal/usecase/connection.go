package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dawbridge/internal/correlator"
	"dawbridge/internal/gateway"
	"dawbridge/internal/udptransport"
)

// ConnectionState is the bridge's connection lifecycle (spec §4.6,
// connect_ableton): Disconnected -> Connecting -> Connected, and back to
// Disconnected on disconnect or on a failed liveness probe.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
)

func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}

// Connection owns the transport/correlator/gateway stack and the
// connection state machine wrapped around it. It is the root object
// internal/dispatch holds for the lifetime of the process.
type Connection struct {
	transport *udptransport.Transport
	corr      *correlator.Correlator
	gw        *gateway.Gateway

	mu    sync.Mutex
	state ConnectionState
}

// NewConnection wires a transport, correlator, and gateway together. The
// transport's receive handler is the correlator's HandleResponse: every
// decoded OSC message is treated as a reply to the oldest pending request
// on its address (spec §5 — there is no other dispatch path). sendHost is
// the DAW's address; recvHost is the local address the bridge listens on
// (typically 0.0.0.0 or 127.0.0.1, not necessarily sendHost).
func NewConnection(sendHost string, sendPort int, recvHost string, recvPort int, timeout time.Duration) *Connection {
	t := udptransport.New(sendHost, sendPort, recvHost, recvPort)
	corr := correlator.New()
	t.SetHandler(func(address string, args []any) {
		corr.HandleResponse(address, args)
	})
	return &Connection{
		transport: t,
		corr:      corr,
		gw:        gateway.New(t, corr, timeout),
	}
}

// Gateway returns the bound gateway façade for use-case functions that
// need direct access (the DAW-facing functions in this package take one as
// a parameter, while ConnectAbleton and DisconnectAbleton take the
// Connection itself — this accessor exists for internal/dispatch's wiring).
func (c *Connection) Gateway() *gateway.Gateway { return c.gw }

// State returns the current connection state.
func (c *Connection) State() ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// PendingRequests reports how many requests are awaiting a reply across
// all addresses, for internal/httpapi's status surface.
func (c *Connection) PendingRequests() int {
	return c.corr.PendingCount("")
}

// ConnectAbleton opens the UDP sockets and probes the remote script with
// /test before declaring the connection live. A probe timeout tears the
// transport back down and leaves the state machine Disconnected, rather
// than leaving a half-open connection callers might mistake for healthy
// (spec §4.6).
func ConnectAbleton(ctx context.Context, c *Connection, probeTimeout time.Duration) Result {
	c.mu.Lock()
	if c.state == Connected {
		c.mu.Unlock()
		return ok("already connected", nil)
	}
	c.state = Connecting
	c.mu.Unlock()

	if err := c.transport.Connect(); err != nil {
		c.mu.Lock()
		c.state = Disconnected
		c.mu.Unlock()
		return fail(ErrCodeConnFailed, fmt.Sprintf("failed to open UDP sockets: %v", err))
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := c.gw.Probe(probeCtx); err != nil {
		slog.Warn("connect probe failed, tearing down", "error", err)
		c.transport.Disconnect()
		c.mu.Lock()
		c.state = Disconnected
		c.mu.Unlock()
		return fail(ErrCodeConnFailed, fmt.Sprintf("remote script did not respond to /test: %v", err))
	}

	c.mu.Lock()
	c.state = Connected
	c.mu.Unlock()
	return ok("connected to Ableton Live", map[string]string{"state": Connected.String()})
}

// DisconnectAbleton closes the UDP sockets and returns to Disconnected.
func DisconnectAbleton(c *Connection) Result {
	c.transport.Disconnect()
	c.mu.Lock()
	c.state = Disconnected
	c.mu.Unlock()
	return ok("disconnected", nil)
}
