package dispatch

import (
	"encoding/json"
	"fmt"

	"dawbridge/internal/theory"
	"dawbridge/internal/usecase"
)

// decodeRootNote accepts root_note either as a raw pitch class integer or
// as a note name string (e.g. "F#"), per spec §4.5's
// note_name_to_pitch_class contract. An absent field decodes as pitch
// class 0 (C).
func decodeRootNote(raw json.RawMessage) (int, *usecase.Result) {
	if len(raw) == 0 {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return 0, malformed(err)
	}
	pc, err := theory.NoteNameToPitchClass(name)
	if err != nil {
		r := usecase.Result{Success: false, Message: err.Error(), ErrorCode: usecase.ErrCodeValidation}
		return 0, &r
	}
	return pc, nil
}

func badAction(action string) *usecase.Result {
	r := usecase.Result{Success: false, Message: fmt.Sprintf("unknown action %q", action), ErrorCode: usecase.ErrCodeValidation}
	return &r
}

func malformed(err error) *usecase.Result {
	r := usecase.Result{Success: false, Message: "malformed arguments: " + err.Error(), ErrorCode: usecase.ErrCodeValidation}
	return &r
}

// actionEnvelope is the common shape every *_operations tool call takes:
// a string-tagged action plus whatever fields that action needs (spec §9
// REDESIGN FLAGS — the wire schema stays a string-tagged union even though
// internal/usecase models each action as its own Go type).
type actionEnvelope struct {
	Action      string  `json:"action"`
	TrackID     int     `json:"track_id"`
	SceneID     int     `json:"scene_id"`
	DeviceID    int     `json:"device_id"`
	SendID      int     `json:"send_id"`
	ParamIndex  int     `json:"parameter_index"`
	Index       int     `json:"index"`
	Name        string  `json:"name"`
	Value       float32 `json:"value"`
	Volume      float32 `json:"volume"`
	Pan         float32 `json:"pan"`
	Level       float32 `json:"level"`
	Length      float32 `json:"length"`
	Start       float32 `json:"start"`
	End         float32 `json:"end"`
	Beats       float32 `json:"beats"`
	Color       int     `json:"color"`
	Enabled     bool    `json:"enabled"`
	Muted       bool    `json:"muted"`
	Soloed      bool    `json:"soloed"`
	Armed       bool    `json:"armed"`
	Numerator   int     `json:"numerator"`
	Denominator int     `json:"denominator"`
}

func decodeEnvelope(args json.RawMessage) (actionEnvelope, error) {
	var e actionEnvelope
	if len(args) == 0 {
		return e, nil
	}
	err := json.Unmarshal(args, &e)
	return e, err
}

func decodeTrackAction(args json.RawMessage) (usecase.TrackAction, *usecase.Result) {
	e, err := decodeEnvelope(args)
	if err != nil {
		return nil, malformed(err)
	}
	switch e.Action {
	case "get":
		return usecase.GetTrack{TrackID: e.TrackID}, nil
	case "set_name":
		return usecase.SetTrackName{TrackID: e.TrackID, Name: e.Name}, nil
	case "set_volume":
		return usecase.SetTrackVolume{TrackID: e.TrackID, Volume: e.Volume}, nil
	case "set_pan":
		return usecase.SetTrackPan{TrackID: e.TrackID, Pan: e.Pan}, nil
	case "mute":
		return usecase.SetTrackMute{TrackID: e.TrackID, Muted: e.Muted}, nil
	case "solo":
		return usecase.SetTrackSolo{TrackID: e.TrackID, Soloed: e.Soloed}, nil
	case "arm":
		return usecase.SetTrackArm{TrackID: e.TrackID, Armed: e.Armed}, nil
	case "set_send":
		return usecase.SetTrackSend{TrackID: e.TrackID, SendID: e.SendID, Level: e.Level}, nil
	case "set_color":
		return usecase.SetTrackColor{TrackID: e.TrackID, Color: e.Color}, nil
	case "create_midi":
		return usecase.CreateMIDITrack{Index: e.Index}, nil
	case "create_audio":
		return usecase.CreateAudioTrack{Index: e.Index}, nil
	case "create_return":
		return usecase.CreateReturnTrack{}, nil
	case "delete":
		return usecase.DeleteTrack{TrackID: e.TrackID}, nil
	case "duplicate":
		return usecase.DuplicateTrack{TrackID: e.TrackID}, nil
	case "stop_all_clips":
		return usecase.StopAllClips{}, nil
	default:
		return nil, badAction(e.Action)
	}
}

func decodeClipAction(args json.RawMessage) (usecase.ClipAction, *usecase.Result) {
	e, err := decodeEnvelope(args)
	if err != nil {
		return nil, malformed(err)
	}
	switch e.Action {
	case "get":
		return usecase.GetClip{TrackID: e.TrackID, SceneID: e.SceneID}, nil
	case "create":
		return usecase.CreateClipAction{TrackID: e.TrackID, SceneID: e.SceneID, Length: e.Length}, nil
	case "delete":
		return usecase.DeleteClipAction{TrackID: e.TrackID, SceneID: e.SceneID}, nil
	case "fire":
		return usecase.FireClipAction{TrackID: e.TrackID, SceneID: e.SceneID}, nil
	case "stop":
		return usecase.StopClipAction{TrackID: e.TrackID, SceneID: e.SceneID}, nil
	case "set_name":
		return usecase.SetClipNameAction{TrackID: e.TrackID, SceneID: e.SceneID, Name: e.Name}, nil
	case "set_loop":
		return usecase.SetClipLoopAction{TrackID: e.TrackID, SceneID: e.SceneID, Start: e.Start, End: e.End}, nil
	case "get_notes":
		return usecase.GetClipNotesAction{TrackID: e.TrackID, SceneID: e.SceneID}, nil
	case "remove_notes":
		return usecase.RemoveNotesAction{TrackID: e.TrackID, SceneID: e.SceneID}, nil
	default:
		return nil, badAction(e.Action)
	}
}

func decodeSceneAction(args json.RawMessage) (usecase.SceneAction, *usecase.Result) {
	e, err := decodeEnvelope(args)
	if err != nil {
		return nil, malformed(err)
	}
	switch e.Action {
	case "get":
		return usecase.GetScene{SceneID: e.SceneID}, nil
	case "fire":
		return usecase.FireScene{SceneID: e.SceneID}, nil
	case "create":
		return usecase.CreateScene{Index: e.Index}, nil
	case "delete":
		return usecase.DeleteScene{SceneID: e.SceneID}, nil
	case "set_name":
		return usecase.SetSceneName{SceneID: e.SceneID, Name: e.Name}, nil
	case "set_color":
		return usecase.SetSceneColor{SceneID: e.SceneID, Color: e.Color}, nil
	default:
		return nil, badAction(e.Action)
	}
}

func decodeDeviceAction(args json.RawMessage) (usecase.DeviceAction, *usecase.Result) {
	e, err := decodeEnvelope(args)
	if err != nil {
		return nil, malformed(err)
	}
	switch e.Action {
	case "get", "get_info":
		return usecase.GetDevice{TrackID: e.TrackID, DeviceID: e.DeviceID}, nil
	case "set_parameter", "set_param":
		return usecase.SetDeviceParameter{TrackID: e.TrackID, DeviceID: e.DeviceID, ParameterIndex: e.ParamIndex, Value: e.Value}, nil
	case "set_enabled", "toggle_active":
		return usecase.SetDeviceEnabled{TrackID: e.TrackID, DeviceID: e.DeviceID, Enabled: e.Enabled}, nil
	case "get_param":
		return usecase.GetDeviceParam{TrackID: e.TrackID, DeviceID: e.DeviceID, ParamIndex: e.ParamIndex}, nil
	case "get_param_name":
		return usecase.GetDeviceParamName{TrackID: e.TrackID, DeviceID: e.DeviceID, ParamIndex: e.ParamIndex}, nil
	case "get_param_display":
		return usecase.GetDeviceParamDisplay{TrackID: e.TrackID, DeviceID: e.DeviceID, ParamIndex: e.ParamIndex}, nil
	case "get_param_min":
		return usecase.GetDeviceParamMin{TrackID: e.TrackID, DeviceID: e.DeviceID, ParamIndex: e.ParamIndex}, nil
	case "get_param_max":
		return usecase.GetDeviceParamMax{TrackID: e.TrackID, DeviceID: e.DeviceID, ParamIndex: e.ParamIndex}, nil
	default:
		return nil, badAction(e.Action)
	}
}

func decodeReturnTrackAction(args json.RawMessage) (usecase.ReturnTrackAction, *usecase.Result) {
	e, err := decodeEnvelope(args)
	if err != nil {
		return nil, malformed(err)
	}
	switch e.Action {
	case "get":
		return usecase.GetReturnTrack{TrackID: e.TrackID}, nil
	case "set_volume":
		return usecase.SetReturnTrackVolume{TrackID: e.TrackID, Volume: e.Volume}, nil
	case "set_name":
		return usecase.SetReturnTrackName{TrackID: e.TrackID, Name: e.Name}, nil
	case "set_mute":
		return usecase.SetReturnTrackMute{TrackID: e.TrackID, Muted: e.Muted}, nil
	default:
		return nil, badAction(e.Action)
	}
}

func decodeSongAction(args json.RawMessage) (usecase.SongAction, *usecase.Result) {
	e, err := decodeEnvelope(args)
	if err != nil {
		return nil, malformed(err)
	}
	switch e.Action {
	case "get":
		return usecase.GetSongProperties{}, nil
	case "get_name":
		return usecase.GetSongName{}, nil
	case "get_tempo":
		return usecase.GetSongTempo{}, nil
	case "set_tempo":
		return usecase.SetSongTempo{BPM: e.Value}, nil
	case "set_time_signature", "set_signature":
		return usecase.SetSongTimeSignature{Numerator: e.Numerator, Denominator: e.Denominator}, nil
	case "set_master_volume":
		return usecase.SetSongMasterVolume{Volume: e.Volume}, nil
	case "set_master_pan":
		return usecase.SetSongMasterPan{Pan: e.Pan}, nil
	case "set_swing":
		return usecase.SetSongSwing{Amount: e.Value}, nil
	case "set_metronome":
		return usecase.SetSongMetronome{Enabled: e.Enabled}, nil
	case "set_overdub":
		return usecase.SetSongOverdub{Enabled: e.Enabled}, nil
	case "set_loop":
		return usecase.SetSongLoop{Enabled: e.Enabled}, nil
	case "set_loop_start":
		return usecase.SetSongLoopStart{Start: e.Start}, nil
	case "set_loop_length":
		return usecase.SetSongLoopLength{Length: e.Length}, nil
	default:
		return nil, badAction(e.Action)
	}
}

func decodeTransportAction(args json.RawMessage) (usecase.TransportAction, *usecase.Result) {
	e, err := decodeEnvelope(args)
	if err != nil {
		return nil, malformed(err)
	}
	switch e.Action {
	case "play":
		return usecase.Play{}, nil
	case "stop":
		return usecase.Stop{}, nil
	case "continue":
		return usecase.ContinuePlaying{}, nil
	case "set_position":
		return usecase.SetPosition{Beats: e.Beats}, nil
	case "set_overdub":
		return usecase.SetOverdub{Enabled: e.Enabled}, nil
	case "set_record_mode":
		return usecase.SetRecordMode{Enabled: e.Enabled}, nil
	case "set_session_record":
		return usecase.SetSessionRecord{Enabled: e.Enabled}, nil
	case "set_punch_in":
		return usecase.SetPunchIn{Enabled: e.Enabled}, nil
	case "set_punch_out":
		return usecase.SetPunchOut{Enabled: e.Enabled}, nil
	case "tap_tempo":
		return usecase.TapTempo{}, nil
	case "undo":
		return usecase.Undo{}, nil
	case "redo":
		return usecase.Redo{}, nil
	case "set_metronome":
		return usecase.SetMetronome{Enabled: e.Enabled}, nil
	case "set_loop":
		return usecase.SetLoop{Enabled: e.Enabled}, nil
	case "set_loop_region":
		return usecase.SetLoopRegion{Start: e.Start, Length: e.Length}, nil
	case "record":
		return usecase.Record{Enabled: e.Enabled}, nil
	case "capture_midi":
		return usecase.CaptureMIDI{}, nil
	case "stop_all_clips":
		return usecase.StopAllClips{}, nil
	case "jump_to":
		return usecase.JumpTo{Beats: e.Beats}, nil
	case "jump_by":
		return usecase.JumpBy{Beats: e.Beats}, nil
	case "next_cue":
		return usecase.NextCue{}, nil
	case "prev_cue":
		return usecase.PrevCue{}, nil
	default:
		return nil, badAction(e.Action)
	}
}
