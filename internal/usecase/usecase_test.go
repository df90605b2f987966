package usecase

import (
	"context"
	"testing"
	"time"

	"dawbridge/internal/correlator"
	"dawbridge/internal/gateway"
	"dawbridge/internal/udptransport"
)

// newTestGateway wires a real gateway to an unconnected transport so tests
// can exercise validation and error-mapping without a live UDP endpoint.
func newTestGateway(timeout time.Duration) *gateway.Gateway {
	t := udptransport.New("127.0.0.1", 0, "127.0.0.1", 0)
	corr := correlator.New()
	return gateway.New(t, corr, timeout)
}

func TestTransportControlNotConnected(t *testing.T) {
	gw := newTestGateway(time.Second)
	res := TransportControl(gw, Play{})
	if res.Success {
		t.Fatalf("expected failure, got success")
	}
	if res.ErrorCode != ErrCodeNotConnected {
		t.Fatalf("got error_code %q, want %q", res.ErrorCode, ErrCodeNotConnected)
	}
}

func TestSetTempoValidation(t *testing.T) {
	gw := newTestGateway(time.Second)
	res := SetTempo(gw, 5.0) // below the 20.0 floor
	if res.Success {
		t.Fatalf("expected validation failure")
	}
	if res.ErrorCode != ErrCodeValidation {
		t.Fatalf("got error_code %q, want %q", res.ErrorCode, ErrCodeValidation)
	}
}

func TestGetSongInfoAllSubqueriesFailWhenDisconnected(t *testing.T) {
	gw := newTestGateway(50 * time.Millisecond)
	res := GetSongInfo(context.Background(), gw, 20*time.Millisecond, false, false)
	if res.Success {
		t.Fatalf("expected failure when nothing is connected")
	}
	if res.ErrorCode != ErrCodeNotConnected {
		t.Fatalf("got error_code %q, want %q", res.ErrorCode, ErrCodeNotConnected)
	}
}

func TestAnalyzeHarmonyScenario(t *testing.T) {
	res := AnalyzeHarmony([]int{60, 62, 64, 65, 67, 69, 71}, true, "pop")
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	data, ok := res.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected map data, got %T", res.Data)
	}
	if _, ok := data["progression"]; !ok {
		t.Fatalf("expected a progression field when suggestProgressions is true")
	}
}

func TestAnalyzeHarmonyEmptyInput(t *testing.T) {
	res := AnalyzeHarmony(nil, false, "pop")
	if res.Success {
		t.Fatalf("expected failure for empty pitch input")
	}
	if res.ErrorCode != ErrCodeValidation {
		t.Fatalf("got error_code %q, want %q", res.ErrorCode, ErrCodeValidation)
	}
}

func TestAnalyzeTempo(t *testing.T) {
	res := AnalyzeTempo(120, "house", 0.5)
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
}

func TestDefaultClipLengthRoundsUpToBar(t *testing.T) {
	notes := []gateway.Note{{Pitch: 60, Start: 3.5, Duration: 1.0}} // ends at 4.5
	got := defaultClipLength(notes)
	if got != 8.0 {
		t.Fatalf("got %v, want 8.0 (rounded up to next bar)", got)
	}
}

func TestTrackOperationsValidation(t *testing.T) {
	gw := newTestGateway(time.Second)
	res := TrackOperations(context.Background(), gw, SetTrackVolume{TrackID: 0, Volume: 2.0})
	if res.Success {
		t.Fatalf("expected validation failure for out-of-range volume")
	}
	if res.ErrorCode != ErrCodeValidation {
		t.Fatalf("got error_code %q, want %q", res.ErrorCode, ErrCodeValidation)
	}
}

func TestClipOperationsUnknownAction(t *testing.T) {
	res := ClipOperations(context.Background(), newTestGateway(time.Second), nil)
	if res.Success || res.ErrorCode != ErrCodeInternal {
		t.Fatalf("expected INTERNAL_ERROR for nil action, got %+v", res)
	}
}

func TestSongPropertiesNotConnected(t *testing.T) {
	gw := newTestGateway(time.Second)
	res := SongProperties(context.Background(), gw, GetSongTempo{})
	if res.Success || res.ErrorCode != ErrCodeNotConnected {
		t.Fatalf("expected NOT_CONNECTED, got %+v", res)
	}
}

func TestSongPropertiesUnknownAction(t *testing.T) {
	res := SongProperties(context.Background(), newTestGateway(time.Second), nil)
	if res.Success || res.ErrorCode != ErrCodeInternal {
		t.Fatalf("expected INTERNAL_ERROR for nil action, got %+v", res)
	}
}

func TestTrackOperationsStopAllClipsNotConnected(t *testing.T) {
	gw := newTestGateway(time.Second)
	res := TrackOperations(context.Background(), gw, StopAllClips{})
	if res.Success || res.ErrorCode != ErrCodeNotConnected {
		t.Fatalf("expected NOT_CONNECTED, got %+v", res)
	}
}

func TestSongPropertiesGetNotConnected(t *testing.T) {
	gw := newTestGateway(time.Second)
	res := SongProperties(context.Background(), gw, GetSongProperties{})
	if res.Success || res.ErrorCode != ErrCodeNotConnected {
		t.Fatalf("expected NOT_CONNECTED, got %+v", res)
	}
}

func TestSongPropertiesSetLoopStartNotConnected(t *testing.T) {
	gw := newTestGateway(time.Second)
	res := SongProperties(context.Background(), gw, SetSongLoopStart{Start: 4})
	if res.Success || res.ErrorCode != ErrCodeNotConnected {
		t.Fatalf("expected NOT_CONNECTED, got %+v", res)
	}
}

func TestTransportControlStopAllClipsReusesTrackAction(t *testing.T) {
	gw := newTestGateway(time.Second)
	res := TransportControl(gw, StopAllClips{})
	if res.Success || res.ErrorCode != ErrCodeNotConnected {
		t.Fatalf("expected NOT_CONNECTED, got %+v", res)
	}
}

func TestTransportControlJumpByNotConnected(t *testing.T) {
	gw := newTestGateway(time.Second)
	res := TransportControl(gw, JumpBy{Beats: 4})
	if res.Success || res.ErrorCode != ErrCodeNotConnected {
		t.Fatalf("expected NOT_CONNECTED, got %+v", res)
	}
}

func TestDeviceOperationsGetParamNotConnected(t *testing.T) {
	gw := newTestGateway(time.Second)
	res := DeviceOperations(context.Background(), gw, GetDeviceParam{TrackID: 0, DeviceID: 0, ParamIndex: 0})
	if res.Success || res.ErrorCode != ErrCodeNotConnected {
		t.Fatalf("expected NOT_CONNECTED, got %+v", res)
	}
}

func TestGetSongInfoWithTracksAllFailWhenDisconnected(t *testing.T) {
	gw := newTestGateway(50 * time.Millisecond)
	res := GetSongInfo(context.Background(), gw, 20*time.Millisecond, true, true)
	if res.Success {
		t.Fatalf("expected failure when nothing is connected")
	}
	if res.ErrorCode != ErrCodeNotConnected {
		t.Fatalf("got error_code %q, want %q", res.ErrorCode, ErrCodeNotConnected)
	}
}

func TestConnectionStateMachine(t *testing.T) {
	c := NewConnection("127.0.0.1", 19999, "127.0.0.1", 0, 50*time.Millisecond)
	if c.State() != Disconnected {
		t.Fatalf("initial state = %v, want Disconnected", c.State())
	}

	res := ConnectAbleton(context.Background(), c, 30*time.Millisecond)
	// No real Ableton instance is listening, so the probe must time out and
	// the state machine must fall back to Disconnected rather than leaving
	// a half-open connection.
	if res.Success {
		t.Fatalf("expected probe failure without a live endpoint")
	}
	if res.ErrorCode != ErrCodeConnFailed {
		t.Fatalf("got error_code %q, want %q", res.ErrorCode, ErrCodeConnFailed)
	}
	if c.State() != Disconnected {
		t.Fatalf("state after failed probe = %v, want Disconnected", c.State())
	}
}
