package usecase

import (
	"context"

	"dawbridge/internal/gateway"
)

// ReturnTrackAction is a tagged variant for return_track_operations (spec
// §4.6).
type ReturnTrackAction interface{ isReturnTrackAction() }

type GetReturnTrack struct{ TrackID int }
type SetReturnTrackVolume struct {
	TrackID int
	Volume  float32
}
type SetReturnTrackName struct {
	TrackID int
	Name    string
}
type SetReturnTrackMute struct {
	TrackID int
	Muted   bool
}

func (GetReturnTrack) isReturnTrackAction()       {}
func (SetReturnTrackVolume) isReturnTrackAction() {}
func (SetReturnTrackName) isReturnTrackAction()   {}
func (SetReturnTrackMute) isReturnTrackAction()   {}

// ReturnTrackOperations dispatches a single tagged ReturnTrackAction
// against the gateway (spec §4.6, return_track_operations).
func ReturnTrackOperations(ctx context.Context, gw *gateway.Gateway, action ReturnTrackAction) Result {
	switch a := action.(type) {
	case GetReturnTrack:
		tr, err := gw.GetReturnTrack(ctx, a.TrackID)
		if err != nil {
			return errResult(err)
		}
		return ok("fetched return track", tr)
	case SetReturnTrackVolume:
		if err := gw.SetReturnTrackVolume(a.TrackID, a.Volume); err != nil {
			return errResult(err)
		}
		return ok("return track volume set", nil)
	case SetReturnTrackName:
		if err := gw.SetReturnTrackName(a.TrackID, a.Name); err != nil {
			return errResult(err)
		}
		return ok("return track renamed", nil)
	case SetReturnTrackMute:
		if err := gw.SetReturnTrackMute(a.TrackID, a.Muted); err != nil {
			return errResult(err)
		}
		return ok("return track mute set", nil)
	default:
		return fail(ErrCodeInternal, "unknown return track action")
	}
}
