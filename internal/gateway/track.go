package gateway

import "context"

// GetTrackCount returns the number of non-return, non-master tracks.
func (g *Gateway) GetTrackCount(ctx context.Context) (int, error) {
	return g.requestInt(ctx, "/song/get/num_tracks")
}

// GetTrack queries a full snapshot of one track, including its clip slots
// and devices.
func (g *Gateway) GetTrack(ctx context.Context, trackID int) (Track, error) {
	return g.getTrack(ctx, trackID, true)
}

// GetTrackWithoutDevices queries a track snapshot like GetTrack but skips
// the per-device round trips (spec §6.2 get_song_info, include_tracks
// without include_devices).
func (g *Gateway) GetTrackWithoutDevices(ctx context.Context, trackID int) (Track, error) {
	return g.getTrack(ctx, trackID, false)
}

func (g *Gateway) getTrack(ctx context.Context, trackID int, includeDevices bool) (Track, error) {
	if err := validateTrackID(trackID); err != nil {
		return Track{}, err
	}

	var tr Track
	tr.ID = trackID

	name, err := g.requestString(ctx, "/track/get/name", int32(trackID))
	if err != nil {
		return Track{}, err
	}
	tr.Name = name

	if tr.Volume, err = g.requestFloat(ctx, "/track/get/volume", int32(trackID)); err != nil {
		return Track{}, err
	}
	if tr.Pan, err = g.requestFloat(ctx, "/track/get/panning", int32(trackID)); err != nil {
		return Track{}, err
	}
	if tr.Mute, err = g.requestBool(ctx, "/track/get/mute", int32(trackID)); err != nil {
		return Track{}, err
	}
	if tr.Solo, err = g.requestBool(ctx, "/track/get/solo", int32(trackID)); err != nil {
		return Track{}, err
	}
	if tr.Arm, err = g.requestBool(ctx, "/track/get/arm", int32(trackID)); err != nil {
		return Track{}, err
	}
	if tr.Color, err = g.requestInt(ctx, "/track/get/color", int32(trackID)); err != nil {
		return Track{}, err
	}

	returnCount, err := g.GetReturnTrackCount(ctx)
	if err != nil {
		return Track{}, err
	}
	tr.Sends = make([]float32, returnCount)
	for i := 0; i < returnCount; i++ {
		if tr.Sends[i], err = g.GetTrackSend(ctx, trackID, i); err != nil {
			return Track{}, err
		}
	}

	sceneCount, err := g.GetSceneCount(ctx)
	if err != nil {
		return Track{}, err
	}
	tr.ClipSlots = make([]ClipSlot, sceneCount)
	for i := 0; i < sceneCount; i++ {
		if tr.ClipSlots[i], err = g.GetClipSlot(ctx, trackID, i); err != nil {
			return Track{}, err
		}
	}

	if includeDevices {
		deviceCount, err := g.GetDeviceCount(ctx, trackID)
		if err != nil {
			return Track{}, err
		}
		tr.Devices = make([]Device, deviceCount)
		for i := 0; i < deviceCount; i++ {
			if tr.Devices[i], err = g.GetDevice(ctx, trackID, i); err != nil {
				return Track{}, err
			}
		}
	}
	return tr, nil
}

// GetTrackSend returns the level of one of a track's sends in [0, 1].
func (g *Gateway) GetTrackSend(ctx context.Context, trackID, sendID int) (float32, error) {
	if err := validateTrackID(trackID); err != nil {
		return 0, err
	}
	if sendID < 0 {
		return 0, validationErr("send_id", "must be >= 0")
	}
	return g.requestFloat(ctx, "/track/get/send", int32(trackID), int32(sendID))
}

// SetTrackName renames a track.
func (g *Gateway) SetTrackName(trackID int, name string) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	return g.send("/track/set/name", int32(trackID), name)
}

// SetTrackVolume sets a track's volume in [0, 1].
func (g *Gateway) SetTrackVolume(trackID int, volume float32) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validateUnit("volume", volume); err != nil {
		return err
	}
	return g.send("/track/set/volume", int32(trackID), volume)
}

// SetTrackPan sets a track's pan in [-1, 1].
func (g *Gateway) SetTrackPan(trackID int, pan float32) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validatePan("pan", pan); err != nil {
		return err
	}
	return g.send("/track/set/panning", int32(trackID), pan)
}

// SetTrackMute mutes or unmutes a track.
func (g *Gateway) SetTrackMute(trackID int, muted bool) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	return g.send("/track/set/mute", int32(trackID), boolArg(muted))
}

// SetTrackSolo solos or unsolos a track.
func (g *Gateway) SetTrackSolo(trackID int, soloed bool) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	return g.send("/track/set/solo", int32(trackID), boolArg(soloed))
}

// SetTrackArm arms or disarms a track for recording.
func (g *Gateway) SetTrackArm(trackID int, armed bool) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	return g.send("/track/set/arm", int32(trackID), boolArg(armed))
}

// SetTrackSend sets the level of one of a track's sends in [0, 1].
func (g *Gateway) SetTrackSend(trackID, sendID int, level float32) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if sendID < 0 {
		return validationErr("send_id", "must be >= 0")
	}
	if err := validateUnit("level", level); err != nil {
		return err
	}
	return g.send("/track/set/send", int32(trackID), int32(sendID), level)
}

// SetTrackColor sets a track's color (DAW-native packed RGB integer).
func (g *Gateway) SetTrackColor(trackID, color int) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	return g.send("/track/set/color", int32(trackID), int32(color))
}

// StopAllClips stops every currently playing clip across all tracks.
func (g *Gateway) StopAllClips() error {
	return g.send("/song/stop_all_clips")
}

// CreateMIDITrack inserts a new MIDI track at the given index.
func (g *Gateway) CreateMIDITrack(index int) error {
	if index < -1 {
		return validationErr("index", "must be >= -1 (-1 appends at the end)")
	}
	return g.send("/song/create_midi_track", int32(index))
}

// CreateAudioTrack inserts a new audio track at the given index.
func (g *Gateway) CreateAudioTrack(index int) error {
	if index < -1 {
		return validationErr("index", "must be >= -1 (-1 appends at the end)")
	}
	return g.send("/song/create_audio_track", int32(index))
}

// DeleteTrack removes a track.
func (g *Gateway) DeleteTrack(trackID int) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	return g.send("/song/delete_track", int32(trackID))
}

// DuplicateTrack duplicates a track, inserting the copy immediately after.
func (g *Gateway) DuplicateTrack(trackID int) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	return g.send("/song/duplicate_track", int32(trackID))
}
