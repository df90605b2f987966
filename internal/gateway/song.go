package gateway

import "context"

// GetName returns the song's project name.
func (g *Gateway) GetName(ctx context.Context) (string, error) {
	return g.requestString(ctx, "/song/get/name")
}

// GetTempo returns the song's current tempo in BPM.
func (g *Gateway) GetTempo(ctx context.Context) (float32, error) {
	return g.requestFloat(ctx, "/song/get/tempo")
}

// SetTempo sets the song's tempo in BPM.
func (g *Gateway) SetTempo(bpm float32) error {
	if err := validateTempo(bpm); err != nil {
		return err
	}
	return g.send("/song/set/tempo", bpm)
}

// SetTimeSignature sets the song's time signature.
func (g *Gateway) SetTimeSignature(numerator, denominator int) error {
	if err := validateTimeSignaturePart("numerator", numerator); err != nil {
		return err
	}
	if err := validateTimeSignaturePart("denominator", denominator); err != nil {
		return err
	}
	return g.send("/song/set/signature", int32(numerator), int32(denominator))
}

// SetMasterVolume sets the master track volume in [0, 1].
func (g *Gateway) SetMasterVolume(volume float32) error {
	if err := validateUnit("volume", volume); err != nil {
		return err
	}
	return g.send("/master/set/volume", volume)
}

// SetMasterPan sets the master track pan in [-1, 1].
func (g *Gateway) SetMasterPan(pan float32) error {
	if err := validatePan("pan", pan); err != nil {
		return err
	}
	return g.send("/master/set/pan", pan)
}

// SetSwing sets the song's swing amount in [0, 1].
func (g *Gateway) SetSwing(amount float32) error {
	if err := validateUnit("swing", amount); err != nil {
		return err
	}
	return g.send("/song/set/swing_amount", amount)
}

// SetLoop enables or disables song looping.
func (g *Gateway) SetLoop(enabled bool) error {
	return g.send("/song/set/loop", boolArg(enabled))
}

// SetLoopRegion sets the loop start and length in beats.
func (g *Gateway) SetLoopRegion(start, length float32) error {
	if err := validateLoop(start, start+length); err != nil {
		return err
	}
	if err := g.send("/song/set/loop_start", start); err != nil {
		return err
	}
	return g.send("/song/set/loop_length", length)
}

// SetLoopStart sets only the loop region's start position, leaving its
// length untouched.
func (g *Gateway) SetLoopStart(start float32) error {
	if start < 0 {
		return validationErr("loop_start", "must be >= 0")
	}
	return g.send("/song/set/loop_start", start)
}

// SetLoopLength sets only the loop region's length, leaving its start
// untouched.
func (g *Gateway) SetLoopLength(length float32) error {
	if length <= 0 {
		return validationErr("loop_length", "must be > 0")
	}
	return g.send("/song/set/loop_length", length)
}

// SetMetronome enables or disables the metronome.
func (g *Gateway) SetMetronome(enabled bool) error {
	return g.send("/song/set/metronome", boolArg(enabled))
}

// GetSignatureNumerator returns the song's time signature numerator.
func (g *Gateway) GetSignatureNumerator(ctx context.Context) (int, error) {
	return g.requestInt(ctx, "/song/get/signature_numerator")
}

// GetSignatureDenominator returns the song's time signature denominator.
func (g *Gateway) GetSignatureDenominator(ctx context.Context) (int, error) {
	return g.requestInt(ctx, "/song/get/signature_denominator")
}

// GetIsPlaying reports whether the song is currently playing.
func (g *Gateway) GetIsPlaying(ctx context.Context) (bool, error) {
	return g.requestBool(ctx, "/song/get/is_playing")
}

// GetCurrentTime returns the current playhead position in beats.
func (g *Gateway) GetCurrentTime(ctx context.Context) (float32, error) {
	return g.requestFloat(ctx, "/song/get/current_song_time")
}

// GetLoopEnabled reports whether song looping is enabled.
func (g *Gateway) GetLoopEnabled(ctx context.Context) (bool, error) {
	return g.requestBool(ctx, "/song/get/loop")
}

// GetLoopStart returns the loop region's start position in beats.
func (g *Gateway) GetLoopStart(ctx context.Context) (float32, error) {
	return g.requestFloat(ctx, "/song/get/loop_start")
}

// GetLoopLength returns the loop region's length in beats.
func (g *Gateway) GetLoopLength(ctx context.Context) (float32, error) {
	return g.requestFloat(ctx, "/song/get/loop_length")
}

// GetMetronome reports whether the metronome is enabled.
func (g *Gateway) GetMetronome(ctx context.Context) (bool, error) {
	return g.requestBool(ctx, "/song/get/metronome")
}

// GetOverdub reports whether overdub recording is enabled.
func (g *Gateway) GetOverdub(ctx context.Context) (bool, error) {
	return g.requestBool(ctx, "/song/get/overdub")
}

// GetSwing returns the song's swing amount in [0, 1].
func (g *Gateway) GetSwing(ctx context.Context) (float32, error) {
	return g.requestFloat(ctx, "/song/get/swing_amount")
}

// GetRecordMode reports whether arrangement record mode is enabled.
func (g *Gateway) GetRecordMode(ctx context.Context) (bool, error) {
	return g.requestBool(ctx, "/song/get/record_mode")
}

// GetSessionRecord reports whether session record mode is enabled.
func (g *Gateway) GetSessionRecord(ctx context.Context) (bool, error) {
	return g.requestBool(ctx, "/song/get/session_record")
}

// GetPunchIn reports whether punch-in is enabled.
func (g *Gateway) GetPunchIn(ctx context.Context) (bool, error) {
	return g.requestBool(ctx, "/song/get/punch_in")
}

// GetPunchOut reports whether punch-out is enabled.
func (g *Gateway) GetPunchOut(ctx context.Context) (bool, error) {
	return g.requestBool(ctx, "/song/get/punch_out")
}

// GetMasterVolume returns the master track volume in [0, 1].
func (g *Gateway) GetMasterVolume(ctx context.Context) (float32, error) {
	return g.requestFloat(ctx, "/master/get/volume")
}

// GetMasterPan returns the master track pan in [-1, 1].
func (g *Gateway) GetMasterPan(ctx context.Context) (float32, error) {
	return g.requestFloat(ctx, "/master/get/pan")
}

// GetApplicationVersion returns the DAW's reported application version.
func (g *Gateway) GetApplicationVersion(ctx context.Context) (string, error) {
	return g.requestString(ctx, "/application/get/version")
}
