package gateway

// Validation at the gateway boundary, per spec §4.4. Every check here runs
// before any packet is sent; a failure is an *ValidationError wrapping
// ErrValidation, and the wire is never touched (spec §8 invariant 4).

func validateTempo(bpm float32) error {
	if bpm < 20.0 || bpm > 999.0 {
		return validationErr("tempo", "must be between 20.0 and 999.0 BPM")
	}
	return nil
}

func validateUnit(field string, v float32) error {
	if v < 0 || v > 1 {
		return validationErr(field, "must be between 0 and 1")
	}
	return nil
}

func validatePan(field string, v float32) error {
	if v < -1 || v > 1 {
		return validationErr(field, "must be between -1 and 1")
	}
	return nil
}

func validateTimeSignaturePart(field string, v int) error {
	if v < 1 || v > 99 {
		return validationErr(field, "must be between 1 and 99")
	}
	return nil
}

func validatePitch(pitch int) error {
	if pitch < 0 || pitch > 127 {
		return validationErr("pitch", "must be between 0 and 127")
	}
	return nil
}

func validateVelocity(velocity int) error {
	if velocity < 1 || velocity > 127 {
		return validationErr("velocity", "must be between 1 and 127 (0 is invalid)")
	}
	return nil
}

func validateNoteTiming(start, duration float32) error {
	if start < 0 {
		return validationErr("start", "must be >= 0")
	}
	if duration <= 0 {
		return validationErr("duration", "must be > 0")
	}
	return nil
}

func validateNote(n Note) error {
	if err := validatePitch(n.Pitch); err != nil {
		return err
	}
	if err := validateVelocity(n.Velocity); err != nil {
		return err
	}
	return validateNoteTiming(n.Start, n.Duration)
}

func validateLoop(start, end float32) error {
	if start < 0 {
		return validationErr("loop_start", "must be >= 0")
	}
	if end <= start {
		return validationErr("loop_end", "must be > loop_start")
	}
	return nil
}

func validateTrackID(id int) error {
	if id < 0 {
		return validationErr("track_id", "must be >= 0")
	}
	return nil
}

func validateSceneID(id int) error {
	if id < 0 {
		return validationErr("scene_id", "must be >= 0")
	}
	return nil
}

func validateDeviceID(id int) error {
	if id < 0 {
		return validationErr("device_id", "must be >= 0")
	}
	return nil
}
