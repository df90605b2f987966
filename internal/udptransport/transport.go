// Package udptransport owns the two UDP sockets the OSC bridge uses to talk
// to a DAW's remote script: one for sending, one for receiving. It decodes
// inbound datagrams and hands them to a single registered handler; it never
// interprets message semantics and never retries (spec §4.2).
package udptransport

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"dawbridge/internal/osc"
)

// ErrNotConnected is returned by Send when the transport has not been
// connected, or has since been disconnected.
var ErrNotConnected = errors.New("udptransport: not connected")

// Handler receives a decoded inbound OSC message. It must not block for long;
// the receive loop calls it synchronously for every datagram.
type Handler func(address string, args []any)

// Transport owns the outbound and inbound UDP sockets for one DAW endpoint.
// Connect/Disconnect/IsConnected are safe for concurrent use; exactly one
// receive loop runs at a time.
type Transport struct {
	sendHost string
	sendPort int
	recvHost string
	recvPort int

	mu        sync.Mutex
	sendConn  *net.UDPConn
	recvConn  *net.UDPConn
	connected bool
	handler   Handler
	done      chan struct{}
}

// New returns a Transport targeting sendHost:sendPort for outbound datagrams
// and bound to recvHost:recvPort for inbound ones. Connect must be called
// before Send or any datagrams will be received.
func New(sendHost string, sendPort int, recvHost string, recvPort int) *Transport {
	return &Transport{
		sendHost: sendHost,
		sendPort: sendPort,
		recvHost: recvHost,
		recvPort: recvPort,
	}
}

// SetHandler installs the sole dispatch target for decoded inbound messages.
// Replacing an existing handler is allowed; only one is active at a time.
func (t *Transport) SetHandler(h Handler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handler = h
}

// Connect opens both sockets and starts the receive loop. It is idempotent:
// calling Connect on an already-connected Transport is a no-op.
func (t *Transport) Connect() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.connected {
		return nil
	}

	sendAddr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(t.sendHost, portStr(t.sendPort)))
	if err != nil {
		return fmt.Errorf("udptransport: resolve send addr: %w", err)
	}
	sendConn, err := net.DialUDP("udp", nil, sendAddr)
	if err != nil {
		return fmt.Errorf("udptransport: dial send socket: %w", err)
	}

	recvAddr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(t.recvHost, portStr(t.recvPort)))
	if err != nil {
		sendConn.Close()
		return fmt.Errorf("udptransport: resolve receive addr: %w", err)
	}
	recvConn, err := net.ListenUDP("udp", recvAddr)
	if err != nil {
		sendConn.Close()
		return fmt.Errorf("udptransport: listen on receive socket: %w", err)
	}

	t.sendConn = sendConn
	t.recvConn = recvConn
	t.connected = true
	t.done = make(chan struct{})

	go t.receiveLoop(recvConn, t.done)

	slog.Info("osc transport connected",
		"send", net.JoinHostPort(t.sendHost, portStr(t.sendPort)),
		"receive", net.JoinHostPort(t.recvHost, portStr(t.recvPort)))

	return nil
}

// Disconnect closes both sockets and stops the receive loop. Safe to call
// repeatedly, including on a Transport that was never connected.
func (t *Transport) Disconnect() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.connected {
		return
	}

	t.connected = false
	close(t.done)
	if t.sendConn != nil {
		t.sendConn.Close()
		t.sendConn = nil
	}
	if t.recvConn != nil {
		t.recvConn.Close()
		t.recvConn = nil
	}

	slog.Info("osc transport disconnected")
}

// IsConnected reports whether Connect has succeeded and Disconnect has not
// since been called.
func (t *Transport) IsConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connected
}

// Send encodes address/args as an OSC message and writes it to the outbound
// socket. It does not wait for any reply — callers needing a response must
// register with the correlator before calling Send.
func (t *Transport) Send(address string, args []any) error {
	t.mu.Lock()
	conn := t.sendConn
	connected := t.connected
	t.mu.Unlock()

	if !connected || conn == nil {
		return ErrNotConnected
	}

	data, err := osc.Encode(address, args)
	if err != nil {
		return fmt.Errorf("udptransport: encode %s: %w", address, err)
	}

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("udptransport: send %s: %w", address, err)
	}
	return nil
}

// maxDatagramSize is large enough for any realistic OSC message this bridge
// emits or receives (the largest is /clip/get/notes for a dense clip).
const maxDatagramSize = 65507

func (t *Transport) receiveLoop(conn *net.UDPConn, done chan struct{}) {
	buf := make([]byte, maxDatagramSize)
	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-done:
				return // expected: Disconnect closed the socket.
			default:
				slog.Warn("osc receive error", "err", err)
				return
			}
		}

		packet := make([]byte, n)
		copy(packet, buf[:n])

		decoded, err := osc.Decode(packet)
		if err != nil {
			slog.Warn("osc decode error, dropping datagram", "err", err)
			continue
		}

		t.dispatch(decoded)
	}
}

// dispatch hands every Message inside decoded (recursing into bundles) to
// the registered handler. The core never emits bundles but must tolerate
// receiving one.
func (t *Transport) dispatch(decoded any) {
	switch v := decoded.(type) {
	case *osc.Message:
		t.mu.Lock()
		h := t.handler
		t.mu.Unlock()
		if h != nil {
			h(v.Address, v.Args)
		}
	case *osc.Bundle:
		for _, elem := range v.Elements {
			t.dispatch(elem)
		}
	}
}

func portStr(p int) string {
	return fmt.Sprintf("%d", p)
}
