package usecase

import "dawbridge/internal/gateway"

// TransportAction is a tagged variant for transport_control (spec §4.6).
type TransportAction interface{ isTransportAction() }

type Play struct{}
type Stop struct{}
type ContinuePlaying struct{}
type SetPosition struct{ Beats float32 }
type SetOverdub struct{ Enabled bool }
type SetRecordMode struct{ Enabled bool }
type SetSessionRecord struct{ Enabled bool }
type SetPunchIn struct{ Enabled bool }
type SetPunchOut struct{ Enabled bool }
type TapTempo struct{}
type Undo struct{}
type Redo struct{}
type SetMetronome struct{ Enabled bool }
type SetLoop struct{ Enabled bool }
type SetLoopRegion struct{ Start, Length float32 }
type CaptureMIDI struct{}
type JumpTo struct{ Beats float32 }
type JumpBy struct{ Beats float32 }
type NextCue struct{}
type PrevCue struct{}

func (Play) isTransportAction()             {}
func (Stop) isTransportAction()             {}
func (ContinuePlaying) isTransportAction()  {}
func (SetPosition) isTransportAction()      {}
func (SetOverdub) isTransportAction()       {}
func (SetRecordMode) isTransportAction()    {}
func (SetSessionRecord) isTransportAction() {}
func (SetPunchIn) isTransportAction()       {}
func (SetPunchOut) isTransportAction()      {}
func (TapTempo) isTransportAction()         {}
func (Undo) isTransportAction()             {}
func (Redo) isTransportAction()             {}
func (SetMetronome) isTransportAction()     {}
func (SetLoop) isTransportAction()          {}
func (SetLoopRegion) isTransportAction()    {}
func (CaptureMIDI) isTransportAction() {}
func (JumpTo) isTransportAction()      {}
func (JumpBy) isTransportAction()      {}
func (NextCue) isTransportAction()     {}
func (PrevCue) isTransportAction()     {}

// StopAllClips also satisfies TransportAction so transport_control's
// "stop_all_clips" action can reuse track_operations' implementation
// (spec §6.2 lists it under both tools).
func (StopAllClips) isTransportAction() {}

// Record mirrors SetSessionRecord under the name spec §6.2 uses for
// transport_control ("record" rather than "set_session_record").
type Record struct{ Enabled bool }

func (Record) isTransportAction() {}

// TransportControl dispatches a single tagged TransportAction against the
// gateway (spec §4.6, transport_control). Every action here is
// fire-and-forget on the wire (spec §4.3).
func TransportControl(gw *gateway.Gateway, action TransportAction) Result {
	var err error
	switch a := action.(type) {
	case Play:
		err = gw.Play()
	case Stop:
		err = gw.Stop()
	case ContinuePlaying:
		err = gw.ContinuePlaying()
	case SetPosition:
		err = gw.SetPosition(a.Beats)
	case SetOverdub:
		err = gw.SetOverdub(a.Enabled)
	case SetRecordMode:
		err = gw.SetRecordMode(a.Enabled)
	case SetSessionRecord:
		err = gw.SetSessionRecord(a.Enabled)
	case SetPunchIn:
		err = gw.SetPunchIn(a.Enabled)
	case SetPunchOut:
		err = gw.SetPunchOut(a.Enabled)
	case TapTempo:
		err = gw.TapTempo()
	case Undo:
		err = gw.Undo()
	case Redo:
		err = gw.Redo()
	case SetMetronome:
		err = gw.SetMetronome(a.Enabled)
	case SetLoop:
		err = gw.SetLoop(a.Enabled)
	case SetLoopRegion:
		err = gw.SetLoopRegion(a.Start, a.Length)
	case CaptureMIDI:
		err = gw.CaptureMIDI()
	case StopAllClips:
		err = gw.StopAllClips()
	case Record:
		err = gw.SetSessionRecord(a.Enabled)
	case JumpTo:
		err = gw.SetPosition(a.Beats)
	case JumpBy:
		err = gw.JumpBy(a.Beats)
	case NextCue:
		err = gw.NextCue()
	case PrevCue:
		err = gw.PrevCue()
	default:
		return fail(ErrCodeInternal, "unknown transport action")
	}
	if err != nil {
		return errResult(err)
	}
	return ok("transport command sent", nil)
}

// SetView switches the DAW's focused view (spec §4.6, view_control).
func SetView(gw *gateway.Gateway, view string) Result {
	if err := gw.SetView(view); err != nil {
		return errResult(err)
	}
	return ok("view changed", map[string]string{"view": view})
}
