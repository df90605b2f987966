package usecase

import (
	"context"

	"dawbridge/internal/gateway"
)

// TrackAction is a tagged variant for track_operations (spec §4.6, REDESIGN
// FLAGS — enumerated actions rather than a duck-typed parameter bag).
type TrackAction interface{ isTrackAction() }

type GetTrack struct{ TrackID int }
type SetTrackName struct {
	TrackID int
	Name    string
}
type SetTrackVolume struct {
	TrackID int
	Volume  float32
}
type SetTrackPan struct {
	TrackID int
	Pan     float32
}
type SetTrackMute struct {
	TrackID int
	Muted   bool
}
type SetTrackSolo struct {
	TrackID int
	Soloed  bool
}
type SetTrackArm struct {
	TrackID int
	Armed   bool
}
type SetTrackSend struct {
	TrackID int
	SendID  int
	Level   float32
}
type SetTrackColor struct {
	TrackID int
	Color   int
}
type CreateMIDITrack struct{ Index int }
type CreateAudioTrack struct{ Index int }
type CreateReturnTrack struct{}
type DeleteTrack struct{ TrackID int }
type DuplicateTrack struct{ TrackID int }
type StopAllClips struct{}

func (GetTrack) isTrackAction()         {}
func (SetTrackName) isTrackAction()     {}
func (SetTrackVolume) isTrackAction()   {}
func (SetTrackPan) isTrackAction()      {}
func (SetTrackMute) isTrackAction()     {}
func (SetTrackSolo) isTrackAction()     {}
func (SetTrackArm) isTrackAction()      {}
func (SetTrackSend) isTrackAction()      {}
func (SetTrackColor) isTrackAction()     {}
func (CreateMIDITrack) isTrackAction()   {}
func (CreateAudioTrack) isTrackAction()  {}
func (CreateReturnTrack) isTrackAction() {}
func (DeleteTrack) isTrackAction()       {}
func (DuplicateTrack) isTrackAction()    {}
func (StopAllClips) isTrackAction()      {}

// TrackOperations dispatches a single tagged TrackAction against the
// gateway (spec §4.6, track_operations).
func TrackOperations(ctx context.Context, gw *gateway.Gateway, action TrackAction) Result {
	switch a := action.(type) {
	case GetTrack:
		tr, err := gw.GetTrack(ctx, a.TrackID)
		if err != nil {
			return errResult(err)
		}
		return ok("fetched track", tr)
	case SetTrackName:
		if err := gw.SetTrackName(a.TrackID, a.Name); err != nil {
			return errResult(err)
		}
		return ok("track renamed", nil)
	case SetTrackVolume:
		if err := gw.SetTrackVolume(a.TrackID, a.Volume); err != nil {
			return errResult(err)
		}
		return ok("track volume set", nil)
	case SetTrackPan:
		if err := gw.SetTrackPan(a.TrackID, a.Pan); err != nil {
			return errResult(err)
		}
		return ok("track pan set", nil)
	case SetTrackMute:
		if err := gw.SetTrackMute(a.TrackID, a.Muted); err != nil {
			return errResult(err)
		}
		return ok("track mute set", nil)
	case SetTrackSolo:
		if err := gw.SetTrackSolo(a.TrackID, a.Soloed); err != nil {
			return errResult(err)
		}
		return ok("track solo set", nil)
	case SetTrackArm:
		if err := gw.SetTrackArm(a.TrackID, a.Armed); err != nil {
			return errResult(err)
		}
		return ok("track arm set", nil)
	case SetTrackSend:
		if err := gw.SetTrackSend(a.TrackID, a.SendID, a.Level); err != nil {
			return errResult(err)
		}
		return ok("track send set", nil)
	case SetTrackColor:
		if err := gw.SetTrackColor(a.TrackID, a.Color); err != nil {
			return errResult(err)
		}
		return ok("track color set", nil)
	case CreateMIDITrack:
		if err := gw.CreateMIDITrack(a.Index); err != nil {
			return errResult(err)
		}
		return ok("midi track created", nil)
	case CreateAudioTrack:
		if err := gw.CreateAudioTrack(a.Index); err != nil {
			return errResult(err)
		}
		return ok("audio track created", nil)
	case CreateReturnTrack:
		if err := gw.CreateReturnTrack(); err != nil {
			return errResult(err)
		}
		return ok("return track created", nil)
	case DeleteTrack:
		if err := gw.DeleteTrack(a.TrackID); err != nil {
			return errResult(err)
		}
		return ok("track deleted, track IDs may have shifted", nil)
	case DuplicateTrack:
		if err := gw.DuplicateTrack(a.TrackID); err != nil {
			return errResult(err)
		}
		return ok("track duplicated, track IDs may have shifted", nil)
	case StopAllClips:
		if err := gw.StopAllClips(); err != nil {
			return errResult(err)
		}
		return ok("all clips stopped", nil)
	default:
		return fail(ErrCodeInternal, "unknown track action")
	}
}
