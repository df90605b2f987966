package udptransport

import (
	"net"
	"sync"
	"testing"
	"time"

	"dawbridge/internal/osc"
)

func getFreePort(t *testing.T) int {
	t.Helper()
	addr, err := net.ResolveUDPAddr("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).Port
}

// loopbackPair wires two Transports at each other: a's send port is b's
// receive port and vice versa, the way the bridge talks to a DAW remote
// script listening on a fixed pair of UDP ports.
func loopbackPair(t *testing.T) (a, b *Transport) {
	t.Helper()
	portA := getFreePort(t)
	portB := getFreePort(t)

	a = New("127.0.0.1", portB, "127.0.0.1", portA)
	b = New("127.0.0.1", portA, "127.0.0.1", portB)

	if err := a.Connect(); err != nil {
		t.Fatalf("a.Connect: %v", err)
	}
	if err := b.Connect(); err != nil {
		t.Fatalf("b.Connect: %v", err)
	}
	t.Cleanup(func() {
		a.Disconnect()
		b.Disconnect()
	})
	return a, b
}

func TestConnectIdempotent(t *testing.T) {
	a, _ := loopbackPair(t)
	if err := a.Connect(); err != nil {
		t.Fatalf("second Connect should be a no-op, got: %v", err)
	}
	if !a.IsConnected() {
		t.Fatal("expected connected")
	}
}

func TestDisconnectThenNotConnected(t *testing.T) {
	a, _ := loopbackPair(t)
	a.Disconnect()
	if a.IsConnected() {
		t.Fatal("expected disconnected")
	}
	a.Disconnect() // repeat call must not panic

	if err := a.Send("/test", nil); err != ErrNotConnected {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestSendReceiveRoundTrip(t *testing.T) {
	a, b := loopbackPair(t)

	var mu sync.Mutex
	var gotAddr string
	var gotArgs []any
	received := make(chan struct{})

	b.SetHandler(func(address string, args []any) {
		mu.Lock()
		gotAddr = address
		gotArgs = args
		mu.Unlock()
		close(received)
	})

	if err := a.Send("/song/get/tempo", []any{int32(3)}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for datagram")
	}

	mu.Lock()
	defer mu.Unlock()
	if gotAddr != "/song/get/tempo" {
		t.Errorf("address: got %q", gotAddr)
	}
	if len(gotArgs) != 1 || gotArgs[0].(int32) != 3 {
		t.Errorf("args: got %#v", gotArgs)
	}
}

func TestReceiveLoopSurvivesGarbage(t *testing.T) {
	a, b := loopbackPair(t)

	var mu sync.Mutex
	var goodReceived bool
	received := make(chan struct{})

	b.SetHandler(func(address string, args []any) {
		mu.Lock()
		goodReceived = address == "/test"
		mu.Unlock()
		close(received)
	})

	// Send a malformed datagram directly, bypassing osc.Encode.
	raw, err := net.Dial("udp", net.JoinHostPort(b.recvHost, portStr(b.recvPort)))
	if err != nil {
		t.Fatalf("dial raw: %v", err)
	}
	if _, err := raw.Write([]byte{0xff, 0xfe, 0x01}); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	raw.Close()

	// Now send a well-formed message; the receive loop must still be alive.
	if err := a.Send("/test", nil); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("receive loop did not survive the malformed datagram")
	}

	mu.Lock()
	defer mu.Unlock()
	if !goodReceived {
		t.Error("expected to receive the well-formed /test message")
	}
}

func TestDispatchRecursesIntoBundles(t *testing.T) {
	tr := New("127.0.0.1", 0, "127.0.0.1", 0)

	var got []string
	tr.SetHandler(func(address string, _ []any) {
		got = append(got, address)
	})

	msg1, _ := osc.Encode("/a", nil)
	msg2, _ := osc.Encode("/b", nil)
	decodedMsg1, _ := osc.Decode(msg1)
	decodedMsg2, _ := osc.Decode(msg2)

	bundle := &osc.Bundle{Elements: []any{decodedMsg1, decodedMsg2}}
	tr.dispatch(bundle)

	if len(got) != 2 || got[0] != "/a" || got[1] != "/b" {
		t.Fatalf("expected [/a /b], got %v", got)
	}
}
