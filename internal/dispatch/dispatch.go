// Package dispatch is the tool-call boundary (spec §4.8/C7): it decodes
// each incoming tool call's JSON arguments into the tagged action types
// internal/usecase expects, routes to the matching use case, and formats
// the result back onto the wire. The stdio framing loop here is a thin,
// deliberately minimal boundary — spec §1 treats the assistant protocol's
// exact transport as out of scope; this is enough to drive it end to end.
package dispatch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"dawbridge/internal/gateway"
	"dawbridge/internal/usecase"
)

// ToolCall is one line of the stdio protocol's request side.
type ToolCall struct {
	Tool string          `json:"tool"`
	Args json.RawMessage `json:"args"`
}

// ToolResult is one line of the stdio protocol's response side. Message is
// the human-readable summary on success, or "[<error_code>] <reason>" on
// failure (spec §7).
type ToolResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// Dispatcher routes tool calls to internal/usecase against one Connection.
type Dispatcher struct {
	conn         *usecase.Connection
	probeTimeout time.Duration
}

// New returns a Dispatcher bound to conn.
func New(conn *usecase.Connection, probeTimeout time.Duration) *Dispatcher {
	return &Dispatcher{conn: conn, probeTimeout: probeTimeout}
}

// Dispatch decodes args for the named tool and runs it, returning the
// Result internal/usecase produced.
func (d *Dispatcher) Dispatch(ctx context.Context, tool string, args json.RawMessage) usecase.Result {
	gw := d.conn.Gateway()

	switch tool {
	case "connect_ableton":
		return usecase.ConnectAbleton(ctx, d.conn, d.probeTimeout)
	case "disconnect_ableton":
		return usecase.DisconnectAbleton(d.conn)
	case "get_song_info":
		p := struct {
			IncludeTracks  bool `json:"include_tracks"`
			IncludeDevices bool `json:"include_devices"`
		}{IncludeTracks: true, IncludeDevices: false}
		if bad, r := decode(args, &p); bad {
			return r
		}
		return usecase.GetSongInfo(ctx, gw, 500*time.Millisecond, p.IncludeTracks, p.IncludeDevices)
	case "set_tempo":
		var p struct {
			BPM float32 `json:"bpm"`
		}
		if bad, r := decode(args, &p); bad {
			return r
		}
		return usecase.SetTempo(gw, p.BPM)
	case "set_time_signature":
		var p struct {
			Numerator   int `json:"numerator"`
			Denominator int `json:"denominator"`
		}
		if bad, r := decode(args, &p); bad {
			return r
		}
		return usecase.SetTimeSignature(gw, p.Numerator, p.Denominator)
	case "set_master_volume":
		var p struct {
			Volume float32 `json:"volume"`
		}
		if bad, r := decode(args, &p); bad {
			return r
		}
		return usecase.SetMasterVolume(gw, p.Volume)
	case "set_master_pan":
		var p struct {
			Pan float32 `json:"pan"`
		}
		if bad, r := decode(args, &p); bad {
			return r
		}
		return usecase.SetMasterPan(gw, p.Pan)
	case "set_swing":
		var p struct {
			Amount float32 `json:"amount"`
		}
		if bad, r := decode(args, &p); bad {
			return r
		}
		return usecase.SetSwing(gw, p.Amount)
	case "song_properties":
		action, errResult := decodeSongAction(args)
		if errResult != nil {
			return *errResult
		}
		return usecase.SongProperties(ctx, gw, action)
	case "view_control":
		var p struct {
			View string `json:"view"`
		}
		if bad, r := decode(args, &p); bad {
			return r
		}
		return usecase.SetView(gw, p.View)
	case "transport_control":
		action, errResult := decodeTransportAction(args)
		if errResult != nil {
			return *errResult
		}
		return usecase.TransportControl(gw, action)
	case "track_operations":
		action, errResult := decodeTrackAction(args)
		if errResult != nil {
			return *errResult
		}
		return usecase.TrackOperations(ctx, gw, action)
	case "clip_operations":
		action, errResult := decodeClipAction(args)
		if errResult != nil {
			return *errResult
		}
		return usecase.ClipOperations(ctx, gw, action)
	case "scene_operations":
		action, errResult := decodeSceneAction(args)
		if errResult != nil {
			return *errResult
		}
		return usecase.SceneOperations(ctx, gw, action)
	case "device_operations":
		action, errResult := decodeDeviceAction(args)
		if errResult != nil {
			return *errResult
		}
		return usecase.DeviceOperations(ctx, gw, action)
	case "return_track_operations":
		action, errResult := decodeReturnTrackAction(args)
		if errResult != nil {
			return *errResult
		}
		return usecase.ReturnTrackOperations(ctx, gw, action)
	case "add_notes":
		var p struct {
			TrackID       int             `json:"track_id"`
			ClipID        int             `json:"clip_id"`
			Notes         []gateway.Note  `json:"notes"`
			Quantize      bool            `json:"quantize"`
			QuantizeValue float32         `json:"quantize_value"`
			ScaleFilter   string          `json:"scale_filter"`
			RootNote      json.RawMessage `json:"root_note"`
		}
		if bad, r := decode(args, &p); bad {
			return r
		}
		rootNote, errResult := decodeRootNote(p.RootNote)
		if errResult != nil {
			return *errResult
		}
		return usecase.AddNotes(ctx, gw, usecase.AddNotesParams{
			TrackID: p.TrackID, ClipID: p.ClipID, Notes: p.Notes,
			Quantize: p.Quantize, QuantizeValue: p.QuantizeValue,
			ScaleFilter: p.ScaleFilter, RootNote: rootNote,
		})
	case "analyze_harmony":
		var p struct {
			Notes               []int  `json:"notes"`
			SuggestProgressions bool   `json:"suggest_progressions"`
			Genre               string `json:"genre"`
		}
		if bad, r := decode(args, &p); bad {
			return r
		}
		return usecase.AnalyzeHarmony(p.Notes, p.SuggestProgressions, p.Genre)
	case "analyze_tempo":
		var p struct {
			CurrentBPM float32 `json:"current_bpm"`
			Genre      string  `json:"genre"`
			Energy     float32 `json:"energy_level"`
		}
		if bad, r := decode(args, &p); bad {
			return r
		}
		return usecase.AnalyzeTempo(p.CurrentBPM, p.Genre, p.Energy)
	default:
		return usecase.Result{Success: false, Message: fmt.Sprintf("unknown tool %q", tool), ErrorCode: usecase.ErrCodeValidation}
	}
}

// decode unmarshals args into v. The returned bool is true when args were
// malformed, so call sites read as `if bad, r := decode(args, &p); bad {
// return r }`.
func decode(args json.RawMessage, v any) (bool, usecase.Result) {
	if len(args) == 0 {
		return false, usecase.Result{}
	}
	if err := json.Unmarshal(args, v); err != nil {
		return true, usecase.Result{Success: false, Message: "malformed arguments: " + err.Error(), ErrorCode: usecase.ErrCodeValidation}
	}
	return false, usecase.Result{}
}

// Format turns a usecase.Result into the wire-level ToolResult (spec §7):
// the error code is folded into the message on failure rather than being
// a separate field, matching the "[<error_code>] <message>" convention.
func Format(r usecase.Result) ToolResult {
	if r.Success {
		return ToolResult{Success: true, Data: r.Data, Message: r.Message}
	}
	return ToolResult{Success: false, Message: fmt.Sprintf("[%s] %s", r.ErrorCode, r.Message)}
}

// Serve runs the stdio framing loop: one JSON ToolCall per line in, one
// JSON ToolResult per line out. It blocks until r is exhausted or ctx is
// cancelled.
func (d *Dispatcher) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var call ToolCall
		if err := json.Unmarshal(line, &call); err != nil {
			slog.Warn("dispatch: malformed tool call line, skipping", "error", err)
			continue
		}

		result := Format(d.Dispatch(ctx, call.Tool, call.Args))
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("dispatch: write result: %w", err)
		}
	}
	return scanner.Err()
}
