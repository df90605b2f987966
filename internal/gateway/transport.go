package gateway

import "context"

// Play starts song playback from the current position.
func (g *Gateway) Play() error { return g.send("/song/start_playing") }

// Stop halts song playback.
func (g *Gateway) Stop() error { return g.send("/song/stop_playing") }

// ContinuePlaying resumes playback from where it was stopped.
func (g *Gateway) ContinuePlaying() error { return g.send("/song/continue_playing") }

// SetPosition jumps the playhead to the given beat time.
func (g *Gateway) SetPosition(beats float32) error {
	if beats < 0 {
		return validationErr("position", "must be >= 0")
	}
	return g.send("/song/set/current_song_time", beats)
}

// SetOverdub enables or disables overdub recording.
func (g *Gateway) SetOverdub(enabled bool) error {
	return g.send("/song/set/overdub", boolArg(enabled))
}

// SetRecordMode enables or disables arrangement record mode.
func (g *Gateway) SetRecordMode(enabled bool) error {
	return g.send("/song/set/record_mode", boolArg(enabled))
}

// SetSessionRecord enables or disables session record mode.
func (g *Gateway) SetSessionRecord(enabled bool) error {
	return g.send("/song/set/session_record", boolArg(enabled))
}

// SetPunchIn enables or disables punch-in.
func (g *Gateway) SetPunchIn(enabled bool) error {
	return g.send("/song/set/punch_in", boolArg(enabled))
}

// SetPunchOut enables or disables punch-out.
func (g *Gateway) SetPunchOut(enabled bool) error {
	return g.send("/song/set/punch_out", boolArg(enabled))
}

// TapTempo registers one tap of the tap-tempo button.
func (g *Gateway) TapTempo() error { return g.send("/song/tap_tempo") }

// Undo undoes the last action in the DAW's history.
func (g *Gateway) Undo() error { return g.send("/song/undo") }

// Redo redoes the last undone action.
func (g *Gateway) Redo() error { return g.send("/song/redo") }

// CaptureMIDI captures recently played MIDI into a new clip (spec §4.4).
func (g *Gateway) CaptureMIDI() error { return g.send("/song/capture_midi") }

// JumpBy moves the playhead by a relative number of beats (positive or
// negative).
func (g *Gateway) JumpBy(beats float32) error {
	return g.send("/song/jump_by", beats)
}

// NextCue jumps the playhead to the next cue point.
func (g *Gateway) NextCue() error { return g.send("/song/jump_to_next_cue") }

// PrevCue jumps the playhead to the previous cue point.
func (g *Gateway) PrevCue() error { return g.send("/song/jump_to_prev_cue") }

// Probe sends the connectivity test address and waits for a reply,
// bounding the call with ctx. Used by the connect_ableton use case and by
// the probe CLI subcommand.
func (g *Gateway) Probe(ctx context.Context) error {
	_, err := g.request(ctx, "/test")
	return err
}

// SetView switches the DAW's focused view (spec §4.4, view_control).
func (g *Gateway) SetView(view string) error {
	switch view {
	case "session", "arranger", "detail", "detail/clip", "detail/device", "browser":
		return g.send("/view/set/focused_document_view", view)
	default:
		return validationErr("view", "must be one of session, arranger, detail, detail/clip, detail/device, browser")
	}
}
