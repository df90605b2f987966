package usecase

import (
	"context"

	"dawbridge/internal/gateway"
)

// ClipAction is a tagged variant for clip_operations (spec §4.6).
type ClipAction interface{ isClipAction() }

type GetClip struct{ TrackID, SceneID int }
type CreateClipAction struct {
	TrackID, SceneID int
	Length           float32
}
type DeleteClipAction struct{ TrackID, SceneID int }
type FireClipAction struct{ TrackID, SceneID int }
type StopClipAction struct{ TrackID, SceneID int }
type SetClipNameAction struct {
	TrackID, SceneID int
	Name             string
}
type SetClipLoopAction struct {
	TrackID, SceneID int
	Start, End       float32
}
type GetClipNotesAction struct{ TrackID, SceneID int }
type RemoveNotesAction struct{ TrackID, SceneID int }

func (GetClip) isClipAction()           {}
func (CreateClipAction) isClipAction()  {}
func (DeleteClipAction) isClipAction()  {}
func (FireClipAction) isClipAction()    {}
func (StopClipAction) isClipAction()    {}
func (SetClipNameAction) isClipAction() {}
func (SetClipLoopAction) isClipAction() {}
func (GetClipNotesAction) isClipAction() {}
func (RemoveNotesAction) isClipAction() {}

// ClipOperations dispatches a single tagged ClipAction against the
// gateway (spec §4.6, clip_operations).
func ClipOperations(ctx context.Context, gw *gateway.Gateway, action ClipAction) Result {
	switch a := action.(type) {
	case GetClip:
		slot, err := gw.GetClipSlot(ctx, a.TrackID, a.SceneID)
		if err != nil {
			return errResult(err)
		}
		if !slot.HasClip {
			return fail(ErrCodeClipNotFound, "no clip at the given track/scene")
		}
		return ok("fetched clip", slot.Clip)
	case CreateClipAction:
		if err := gw.CreateClip(a.TrackID, a.SceneID, a.Length); err != nil {
			return errResult(err)
		}
		return ok("clip created", nil)
	case DeleteClipAction:
		if err := gw.DeleteClip(a.TrackID, a.SceneID); err != nil {
			return errResult(err)
		}
		return ok("clip deleted", nil)
	case FireClipAction:
		if err := gw.FireClip(a.TrackID, a.SceneID); err != nil {
			return errResult(err)
		}
		return ok("clip fired", nil)
	case StopClipAction:
		if err := gw.StopClip(a.TrackID, a.SceneID); err != nil {
			return errResult(err)
		}
		return ok("clip stopped", nil)
	case SetClipNameAction:
		if err := gw.SetClipName(a.TrackID, a.SceneID, a.Name); err != nil {
			return errResult(err)
		}
		return ok("clip renamed", nil)
	case SetClipLoopAction:
		if err := gw.SetClipLoop(a.TrackID, a.SceneID, a.Start, a.End); err != nil {
			return errResult(err)
		}
		return ok("clip loop set", nil)
	case GetClipNotesAction:
		notes, err := gw.GetClipNotes(ctx, a.TrackID, a.SceneID)
		if err != nil {
			return errResult(err)
		}
		return ok("fetched clip notes", map[string]any{"notes": notes})
	case RemoveNotesAction:
		if err := gw.RemoveNotes(a.TrackID, a.SceneID); err != nil {
			return errResult(err)
		}
		return ok("clip notes removed", nil)
	default:
		return fail(ErrCodeInternal, "unknown clip action")
	}
}
