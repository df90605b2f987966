package usecase

import (
	"context"

	"dawbridge/internal/gateway"
)

// SongAction is a tagged variant for song_properties (spec §4.6) — the
// scalar song-level getters/setters that aren't part of get_song_info's
// fan-out or transport_control's play-state actions.
type SongAction interface{ isSongAction() }

type GetSongName struct{}
type GetSongTempo struct{}
type GetSongProperties struct{}
type SetSongTempo struct{ BPM float32 }
type SetSongTimeSignature struct{ Numerator, Denominator int }
type SetSongMasterVolume struct{ Volume float32 }
type SetSongMasterPan struct{ Pan float32 }
type SetSongSwing struct{ Amount float32 }
type SetSongMetronome struct{ Enabled bool }
type SetSongOverdub struct{ Enabled bool }
type SetSongLoop struct{ Enabled bool }
type SetSongLoopStart struct{ Start float32 }
type SetSongLoopLength struct{ Length float32 }

func (GetSongName) isSongAction()          {}
func (GetSongTempo) isSongAction()         {}
func (GetSongProperties) isSongAction()    {}
func (SetSongTempo) isSongAction()         {}
func (SetSongTimeSignature) isSongAction() {}
func (SetSongMasterVolume) isSongAction()  {}
func (SetSongMasterPan) isSongAction()     {}
func (SetSongSwing) isSongAction()         {}
func (SetSongMetronome) isSongAction()     {}
func (SetSongOverdub) isSongAction()       {}
func (SetSongLoop) isSongAction()          {}
func (SetSongLoopStart) isSongAction()     {}
func (SetSongLoopLength) isSongAction()    {}

// SongProperties dispatches a single tagged SongAction against the
// gateway (spec §4.6, song_properties).
func SongProperties(ctx context.Context, gw *gateway.Gateway, action SongAction) Result {
	switch a := action.(type) {
	case GetSongName:
		name, err := gw.GetName(ctx)
		if err != nil {
			return errResult(err)
		}
		return ok("fetched song name", map[string]any{"name": name})
	case GetSongTempo:
		bpm, err := gw.GetTempo(ctx)
		if err != nil {
			return errResult(err)
		}
		return ok("fetched song tempo", map[string]any{"tempo": bpm})
	case GetSongProperties:
		return getSongProperties(ctx, gw)
	case SetSongTempo:
		return SetTempo(gw, a.BPM)
	case SetSongTimeSignature:
		return SetTimeSignature(gw, a.Numerator, a.Denominator)
	case SetSongMasterVolume:
		return SetMasterVolume(gw, a.Volume)
	case SetSongMasterPan:
		return SetMasterPan(gw, a.Pan)
	case SetSongSwing:
		return SetSwing(gw, a.Amount)
	case SetSongMetronome:
		if err := gw.SetMetronome(a.Enabled); err != nil {
			return errResult(err)
		}
		return ok("metronome set", map[string]any{"enabled": a.Enabled})
	case SetSongOverdub:
		if err := gw.SetOverdub(a.Enabled); err != nil {
			return errResult(err)
		}
		return ok("overdub set", map[string]any{"enabled": a.Enabled})
	case SetSongLoop:
		if err := gw.SetLoop(a.Enabled); err != nil {
			return errResult(err)
		}
		return ok("loop enabled state set", map[string]any{"enabled": a.Enabled})
	case SetSongLoopStart:
		if err := gw.SetLoopStart(a.Start); err != nil {
			return errResult(err)
		}
		return ok("loop start set", map[string]any{"start": a.Start})
	case SetSongLoopLength:
		if err := gw.SetLoopLength(a.Length); err != nil {
			return errResult(err)
		}
		return ok("loop length set", map[string]any{"length": a.Length})
	default:
		return fail(ErrCodeInternal, "unknown song action")
	}
}

// getSongProperties fetches the scalar song-level state song_properties'
// "get" action promises: tempo, time signature, swing, metronome, overdub,
// and loop state. It is deliberately narrower than get_song_info, which
// also covers transport position and track/device fan-out (spec §6.2).
func getSongProperties(ctx context.Context, gw *gateway.Gateway) Result {
	tempo, err := gw.GetTempo(ctx)
	if err != nil {
		return errResult(err)
	}
	num, err := gw.GetSignatureNumerator(ctx)
	if err != nil {
		return errResult(err)
	}
	den, err := gw.GetSignatureDenominator(ctx)
	if err != nil {
		return errResult(err)
	}
	swing, err := gw.GetSwing(ctx)
	if err != nil {
		return errResult(err)
	}
	metronome, err := gw.GetMetronome(ctx)
	if err != nil {
		return errResult(err)
	}
	overdub, err := gw.GetOverdub(ctx)
	if err != nil {
		return errResult(err)
	}
	loopEnabled, err := gw.GetLoopEnabled(ctx)
	if err != nil {
		return errResult(err)
	}
	loopStart, err := gw.GetLoopStart(ctx)
	if err != nil {
		return errResult(err)
	}
	loopLength, err := gw.GetLoopLength(ctx)
	if err != nil {
		return errResult(err)
	}

	return ok("fetched song properties", map[string]any{
		"tempo":                 tempo,
		"signature_numerator":   num,
		"signature_denominator": den,
		"swing":                 swing,
		"metronome":             metronome,
		"overdub":               overdub,
		"loop_enabled":          loopEnabled,
		"loop_start":            loopStart,
		"loop_length":           loopLength,
	})
}
