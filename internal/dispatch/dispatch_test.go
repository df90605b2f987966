package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"dawbridge/internal/usecase"
)

func newTestDispatcher() *Dispatcher {
	conn := usecase.NewConnection("127.0.0.1", 0, "127.0.0.1", 0, time.Second)
	return New(conn, 50*time.Millisecond)
}

func TestDispatchUnknownTool(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(context.Background(), "not_a_real_tool", nil)
	if res.Success {
		t.Fatalf("expected failure for unknown tool")
	}
	if res.ErrorCode != usecase.ErrCodeValidation {
		t.Fatalf("got error_code %q, want %q", res.ErrorCode, usecase.ErrCodeValidation)
	}
}

func TestDispatchSetTempoNotConnected(t *testing.T) {
	d := newTestDispatcher()
	args, _ := json.Marshal(map[string]any{"bpm": 120.0})
	res := d.Dispatch(context.Background(), "set_tempo", args)
	if res.Success {
		t.Fatalf("expected failure without a connection")
	}
	if res.ErrorCode != usecase.ErrCodeNotConnected {
		t.Fatalf("got error_code %q, want %q", res.ErrorCode, usecase.ErrCodeNotConnected)
	}
}

func TestDispatchMalformedArgs(t *testing.T) {
	d := newTestDispatcher()
	res := d.Dispatch(context.Background(), "set_tempo", json.RawMessage(`{not json`))
	if res.Success || res.ErrorCode != usecase.ErrCodeValidation {
		t.Fatalf("expected VALIDATION_ERROR for malformed JSON, got %+v", res)
	}
}

func TestFormatEncodesErrorCodeInMessage(t *testing.T) {
	r := usecase.Result{Success: false, Message: "not connected", ErrorCode: usecase.ErrCodeNotConnected}
	tr := Format(r)
	if tr.Success {
		t.Fatalf("expected failure")
	}
	if !strings.HasPrefix(tr.Message, "[NOT_CONNECTED] ") {
		t.Fatalf("got message %q, want prefix [NOT_CONNECTED]", tr.Message)
	}
}

func TestFormatSuccessCarriesData(t *testing.T) {
	r := usecase.Result{Success: true, Message: "ok", Data: map[string]int{"x": 1}}
	tr := Format(r)
	if !tr.Success || tr.Message != "ok" {
		t.Fatalf("got %+v", tr)
	}
}

func TestTrackOperationsUnknownAction(t *testing.T) {
	d := newTestDispatcher()
	args, _ := json.Marshal(map[string]any{"action": "nonsense"})
	res := d.Dispatch(context.Background(), "track_operations", args)
	if res.Success || res.ErrorCode != usecase.ErrCodeValidation {
		t.Fatalf("expected VALIDATION_ERROR for unknown action, got %+v", res)
	}
}

func TestDispatchSongPropertiesNotConnected(t *testing.T) {
	d := newTestDispatcher()
	args, _ := json.Marshal(map[string]any{"action": "get_tempo"})
	res := d.Dispatch(context.Background(), "song_properties", args)
	if res.Success || res.ErrorCode != usecase.ErrCodeNotConnected {
		t.Fatalf("got %+v, want NOT_CONNECTED", res)
	}
}

func TestServeRoundTrip(t *testing.T) {
	d := newTestDispatcher()
	in := strings.NewReader(`{"tool":"analyze_tempo","args":{"current_bpm":120,"genre":"house","energy_level":0.5}}` + "\n")
	var out bytes.Buffer

	if err := d.Serve(context.Background(), in, &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}

	var result ToolResult
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &result); err != nil {
		t.Fatalf("decode output: %v (%q)", err, out.String())
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
}

func TestServeSkipsMalformedLines(t *testing.T) {
	d := newTestDispatcher()
	in := strings.NewReader("not json at all\n" +
		`{"tool":"analyze_tempo","args":{"current_bpm":120,"genre":"pop","energy_level":0.2}}` + "\n")
	var out bytes.Buffer

	if err := d.Serve(context.Background(), in, &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one result line (malformed line skipped), got %d: %q", len(lines), out.String())
	}
}
