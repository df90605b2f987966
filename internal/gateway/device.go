package gateway

import "context"

// GetDeviceCount returns the number of devices on a track.
func (g *Gateway) GetDeviceCount(ctx context.Context, trackID int) (int, error) {
	if err := validateTrackID(trackID); err != nil {
		return 0, err
	}
	return g.requestInt(ctx, "/track/get/num_devices", int32(trackID))
}

// GetDevice queries a device's name, enabled state, and parameter list.
func (g *Gateway) GetDevice(ctx context.Context, trackID, deviceID int) (Device, error) {
	if err := validateTrackID(trackID); err != nil {
		return Device{}, err
	}
	if err := validateDeviceID(deviceID); err != nil {
		return Device{}, err
	}

	d := Device{TrackID: trackID, DeviceID: deviceID}
	var err error
	if d.Name, err = g.requestString(ctx, "/device/get/name", int32(trackID), int32(deviceID)); err != nil {
		return Device{}, err
	}
	if d.IsEnabled, err = g.requestBool(ctx, "/device/get/is_active", int32(trackID), int32(deviceID)); err != nil {
		return Device{}, err
	}

	paramCount, err := g.requestInt(ctx, "/device/get/num_parameters", int32(trackID), int32(deviceID))
	if err != nil {
		return Device{}, err
	}
	d.Parameters = make([]DeviceParameter, 0, paramCount)
	for i := 0; i < paramCount; i++ {
		p, err := g.getDeviceParameter(ctx, trackID, deviceID, i)
		if err != nil {
			return Device{}, err
		}
		d.Parameters = append(d.Parameters, p)
	}
	return d, nil
}

func (g *Gateway) getDeviceParameter(ctx context.Context, trackID, deviceID, index int) (DeviceParameter, error) {
	p := DeviceParameter{Index: index}
	var err error
	if p.Name, err = g.requestString(ctx, "/device/get/parameter/name", int32(trackID), int32(deviceID), int32(index)); err != nil {
		return DeviceParameter{}, err
	}
	if p.Value, err = g.requestFloat(ctx, "/device/get/parameter/value", int32(trackID), int32(deviceID), int32(index)); err != nil {
		return DeviceParameter{}, err
	}
	if p.Min, err = g.requestFloat(ctx, "/device/get/parameter/min", int32(trackID), int32(deviceID), int32(index)); err != nil {
		return DeviceParameter{}, err
	}
	if p.Max, err = g.requestFloat(ctx, "/device/get/parameter/max", int32(trackID), int32(deviceID), int32(index)); err != nil {
		return DeviceParameter{}, err
	}
	if p.DisplayValue, err = g.requestString(ctx, "/device/get/parameter/display_value", int32(trackID), int32(deviceID), int32(index)); err != nil {
		return DeviceParameter{}, err
	}
	return p, nil
}

// GetDeviceParameterValue fetches only a parameter's current raw value.
func (g *Gateway) GetDeviceParameterValue(ctx context.Context, trackID, deviceID, index int) (float32, error) {
	if err := validateTrackID(trackID); err != nil {
		return 0, err
	}
	if err := validateDeviceID(deviceID); err != nil {
		return 0, err
	}
	return g.requestFloat(ctx, "/device/get/parameter/value", int32(trackID), int32(deviceID), int32(index))
}

// GetDeviceParameterName fetches only a parameter's display name.
func (g *Gateway) GetDeviceParameterName(ctx context.Context, trackID, deviceID, index int) (string, error) {
	if err := validateTrackID(trackID); err != nil {
		return "", err
	}
	if err := validateDeviceID(deviceID); err != nil {
		return "", err
	}
	return g.requestString(ctx, "/device/get/parameter/name", int32(trackID), int32(deviceID), int32(index))
}

// GetDeviceParameterDisplay fetches only a parameter's formatted display
// value (e.g. "-6.0 dB" rather than the raw float).
func (g *Gateway) GetDeviceParameterDisplay(ctx context.Context, trackID, deviceID, index int) (string, error) {
	if err := validateTrackID(trackID); err != nil {
		return "", err
	}
	if err := validateDeviceID(deviceID); err != nil {
		return "", err
	}
	return g.requestString(ctx, "/device/get/parameter/display_value", int32(trackID), int32(deviceID), int32(index))
}

// GetDeviceParameterMin fetches only a parameter's minimum value.
func (g *Gateway) GetDeviceParameterMin(ctx context.Context, trackID, deviceID, index int) (float32, error) {
	if err := validateTrackID(trackID); err != nil {
		return 0, err
	}
	if err := validateDeviceID(deviceID); err != nil {
		return 0, err
	}
	return g.requestFloat(ctx, "/device/get/parameter/min", int32(trackID), int32(deviceID), int32(index))
}

// GetDeviceParameterMax fetches only a parameter's maximum value.
func (g *Gateway) GetDeviceParameterMax(ctx context.Context, trackID, deviceID, index int) (float32, error) {
	if err := validateTrackID(trackID); err != nil {
		return 0, err
	}
	if err := validateDeviceID(deviceID); err != nil {
		return 0, err
	}
	return g.requestFloat(ctx, "/device/get/parameter/max", int32(trackID), int32(deviceID), int32(index))
}

// SetDeviceParameter sets a device parameter's raw value. Callers are
// responsible for clamping to [Min, Max] beforehand; the DAW itself clamps
// silently, so the gateway does not duplicate that check (spec §4.4).
func (g *Gateway) SetDeviceParameter(trackID, deviceID, paramIndex int, value float32) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validateDeviceID(deviceID); err != nil {
		return err
	}
	if paramIndex < 0 {
		return validationErr("parameter_index", "must be >= 0")
	}
	return g.send("/device/set/parameter/value", int32(trackID), int32(deviceID), int32(paramIndex), value)
}

// SetDeviceEnabled toggles a device's active/bypassed state.
func (g *Gateway) SetDeviceEnabled(trackID, deviceID int, enabled bool) error {
	if err := validateTrackID(trackID); err != nil {
		return err
	}
	if err := validateDeviceID(deviceID); err != nil {
		return err
	}
	return g.send("/device/set/is_active", int32(trackID), int32(deviceID), boolArg(enabled))
}
