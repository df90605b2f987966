package gateway

import (
	"context"
	"strconv"
)

// GetClipSlot reports whether a clip slot is occupied and, if so, the
// clip's scalar properties (not its notes — see GetClipNotes).
func (g *Gateway) GetClipSlot(ctx context.Context, trackID, sceneID int) (ClipSlot, error) {
	if err := validateTrackID(trackID); err != nil {
		return ClipSlot{}, err
	}
	if err := validateSceneID(sceneID); err != nil {
		return ClipSlot{}, err
	}

	hasClip, err := g.requestBool(ctx, "/clip_slot/get/has_clip", int32(trackID), int32(sceneID))
	if err != nil {
		return ClipSlot{}, err
	}
	if !hasClip {
		return ClipSlot{HasClip: false}, nil
	}

	clip := &Clip{TrackID: trackID, SceneID: sceneID}
	if clip.Name, err = g.requestString(ctx, "/clip/get/name", int32(trackID), int32(sceneID)); err != nil {
		return ClipSlot{}, err
	}
	if clip.Length, err = g.requestFloat(ctx, "/clip/get/length", int32(trackID), int32(sceneID)); err != nil {
		return ClipSlot{}, err
	}
	if clip.IsPlaying, err = g.requestBool(ctx, "/clip/get/is_playing", int32(trackID), int32(sceneID)); err != nil {
		return ClipSlot{}, err
	}
	return ClipSlot{HasClip: true, Clip: clip}, nil
}

// CreateClip creates an empty MIDI clip of the given length (in beats) in
// a clip slot.
func (g *Gateway) CreateClip(trackID, sceneID int, length float32) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validateSceneID(sceneID); err != nil {
		return err
	}
	if length <= 0 {
		return validationErr("length", "must be > 0")
	}
	return g.send("/clip_slot/create_clip", int32(trackID), int32(sceneID), length)
}

// DeleteClip removes the clip occupying a clip slot.
func (g *Gateway) DeleteClip(trackID, sceneID int) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validateSceneID(sceneID); err != nil {
		return err
	}
	return g.send("/clip_slot/delete_clip", int32(trackID), int32(sceneID))
}

// FireClip launches playback of a clip.
func (g *Gateway) FireClip(trackID, sceneID int) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validateSceneID(sceneID); err != nil {
		return err
	}
	return g.send("/clip_slot/fire", int32(trackID), int32(sceneID))
}

// StopClip stops playback of a clip without stopping the track.
func (g *Gateway) StopClip(trackID, sceneID int) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validateSceneID(sceneID); err != nil {
		return err
	}
	return g.send("/clip/stop", int32(trackID), int32(sceneID))
}

// SetClipName renames a clip.
func (g *Gateway) SetClipName(trackID, sceneID int, name string) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validateSceneID(sceneID); err != nil {
		return err
	}
	return g.send("/clip/set/name", int32(trackID), int32(sceneID), name)
}

// SetClipLoop sets a clip's loop start and end, in beats.
func (g *Gateway) SetClipLoop(trackID, sceneID int, start, end float32) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validateSceneID(sceneID); err != nil {
		return err
	}
	if err := validateLoop(start, end); err != nil {
		return err
	}
	if err := g.send("/clip/set/loop_start", int32(trackID), int32(sceneID), start); err != nil {
		return err
	}
	return g.send("/clip/set/loop_end", int32(trackID), int32(sceneID), end)
}

// GetClipNotes fetches every note in a clip, flattened into the wire's
// (pitch, start, duration, velocity, muted) quintuple encoding (spec §4.4,
// "/clip/get/notes"). The remote script returns them as one flat argument
// list; decodeFlatNotes below un-flattens it.
func (g *Gateway) GetClipNotes(ctx context.Context, trackID, sceneID int) ([]Note, error) {
	if err := validateTrackID(trackID); err != nil {
		return nil, err
	}
	if err := validateSceneID(sceneID); err != nil {
		return nil, err
	}

	reply, err := g.request(ctx, "/clip/get/notes", int32(trackID), int32(sceneID))
	if err != nil {
		return nil, err
	}
	return decodeFlatNotes(reply)
}

// AddNotes writes notes into a clip, flattened onto the wire in the same
// quintuple encoding GetClipNotes reads.
func (g *Gateway) AddNotes(trackID, sceneID int, notes []Note) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validateSceneID(sceneID); err != nil {
		return err
	}
	for i, n := range notes {
		if err := validateNote(n); err != nil {
			if ve, ok := err.(*ValidationError); ok {
				return validationErr(ve.Field, "note "+strconv.Itoa(i)+": "+ve.Reason)
			}
			return err
		}
	}

	args := make([]any, 0, 2+len(notes)*5)
	args = append(args, int32(trackID), int32(sceneID))
	args = append(args, encodeFlatNotes(notes)...)
	return g.send("/clip/add/notes", args...)
}

// RemoveNotes clears all notes from a clip (the wire protocol does not
// support partial removal by selection; callers that want to remove a
// subset must read, filter, clear, and re-add).
func (g *Gateway) RemoveNotes(trackID, sceneID int) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validateSceneID(sceneID); err != nil {
		return err
	}
	return g.send("/clip/remove/notes", int32(trackID), int32(sceneID))
}

func encodeFlatNotes(notes []Note) []any {
	args := make([]any, 0, len(notes)*5)
	for _, n := range notes {
		args = append(args, int32(n.Pitch), n.Start, n.Duration, int32(n.Velocity), boolArg(n.Muted))
	}
	return args
}

func decodeFlatNotes(args []any) ([]Note, error) {
	if len(args)%5 != 0 {
		return nil, ErrProtocol
	}
	notes := make([]Note, 0, len(args)/5)
	for i := 0; i < len(args); i += 5 {
		pitch, ok := argInt(args[i])
		if !ok {
			return nil, ErrProtocol
		}
		start, ok := argFloat(args[i+1])
		if !ok {
			return nil, ErrProtocol
		}
		duration, ok := argFloat(args[i+2])
		if !ok {
			return nil, ErrProtocol
		}
		velocity, ok := argInt(args[i+3])
		if !ok {
			return nil, ErrProtocol
		}
		muted, err := argBool(args[i+4])
		if err != nil {
			return nil, err
		}
		notes = append(notes, Note{
			Pitch:    pitch,
			Start:    start,
			Duration: duration,
			Velocity: velocity,
			Muted:    muted,
		})
	}
	return notes, nil
}
