package gateway

import "context"

// GetReturnTrackCount returns the number of return tracks.
func (g *Gateway) GetReturnTrackCount(ctx context.Context) (int, error) {
	return g.requestInt(ctx, "/song/get/num_return_tracks")
}

// GetReturnTrack queries a return track's name, volume, and pan. Return
// tracks have no clip slots and no arm/solo state (spec §3).
func (g *Gateway) GetReturnTrack(ctx context.Context, trackID int) (Track, error) {
	if err := validateTrackID(trackID); err != nil {
		return Track{}, err
	}

	tr := Track{ID: trackID, Kind: TrackKindReturn}
	var err error
	if tr.Name, err = g.requestString(ctx, "/return_track/get/name", int32(trackID)); err != nil {
		return Track{}, err
	}
	if tr.Volume, err = g.requestFloat(ctx, "/return_track/get/volume", int32(trackID)); err != nil {
		return Track{}, err
	}
	if tr.Pan, err = g.requestFloat(ctx, "/return_track/get/panning", int32(trackID)); err != nil {
		return Track{}, err
	}
	if tr.Mute, err = g.requestBool(ctx, "/return_track/get/mute", int32(trackID)); err != nil {
		return Track{}, err
	}
	return tr, nil
}

// CreateReturnTrack adds a new return track (spec §4.6, track_operations
// action "create_return").
func (g *Gateway) CreateReturnTrack() error {
	return g.send("/song/create_return_track")
}

// SetReturnTrackVolume sets a return track's volume in [0, 1].
func (g *Gateway) SetReturnTrackVolume(trackID int, volume float32) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validateUnit("volume", volume); err != nil {
		return err
	}
	return g.send("/return_track/set/volume", int32(trackID), volume)
}

// SetReturnTrackName renames a return track.
func (g *Gateway) SetReturnTrackName(trackID int, name string) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	return g.send("/return_track/set/name", int32(trackID), name)
}

// SetReturnTrackMute mutes or unmutes a return track.
func (g *Gateway) SetReturnTrackMute(trackID int, muted bool) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	return g.send("/return_track/set/mute", int32(trackID), boolArg(muted))
}
