package usecase

import (
	"context"

	"dawbridge/internal/gateway"
)

// DeviceAction is a tagged variant for device_operations (spec §4.6).
type DeviceAction interface{ isDeviceAction() }

type GetDevice struct{ TrackID, DeviceID int }
type SetDeviceParameter struct {
	TrackID, DeviceID, ParameterIndex int
	Value                             float32
}
type SetDeviceEnabled struct {
	TrackID, DeviceID int
	Enabled           bool
}
type GetDeviceParam struct{ TrackID, DeviceID, ParamIndex int }
type GetDeviceParamName struct{ TrackID, DeviceID, ParamIndex int }
type GetDeviceParamDisplay struct{ TrackID, DeviceID, ParamIndex int }
type GetDeviceParamMin struct{ TrackID, DeviceID, ParamIndex int }
type GetDeviceParamMax struct{ TrackID, DeviceID, ParamIndex int }

func (GetDevice) isDeviceAction()             {}
func (SetDeviceParameter) isDeviceAction()    {}
func (SetDeviceEnabled) isDeviceAction()      {}
func (GetDeviceParam) isDeviceAction()        {}
func (GetDeviceParamName) isDeviceAction()    {}
func (GetDeviceParamDisplay) isDeviceAction() {}
func (GetDeviceParamMin) isDeviceAction()     {}
func (GetDeviceParamMax) isDeviceAction()     {}

// DeviceOperations dispatches a single tagged DeviceAction against the
// gateway (spec §4.6, device_operations).
func DeviceOperations(ctx context.Context, gw *gateway.Gateway, action DeviceAction) Result {
	switch a := action.(type) {
	case GetDevice:
		d, err := gw.GetDevice(ctx, a.TrackID, a.DeviceID)
		if err != nil {
			return errResult(err)
		}
		return ok("fetched device", d)
	case SetDeviceParameter:
		if err := gw.SetDeviceParameter(a.TrackID, a.DeviceID, a.ParameterIndex, a.Value); err != nil {
			return errResult(err)
		}
		return ok("device parameter set", nil)
	case SetDeviceEnabled:
		if err := gw.SetDeviceEnabled(a.TrackID, a.DeviceID, a.Enabled); err != nil {
			return errResult(err)
		}
		return ok("device enabled state set", nil)
	case GetDeviceParam:
		v, err := gw.GetDeviceParameterValue(ctx, a.TrackID, a.DeviceID, a.ParamIndex)
		if err != nil {
			return errResult(err)
		}
		return ok("fetched parameter value", map[string]any{"value": v})
	case GetDeviceParamName:
		name, err := gw.GetDeviceParameterName(ctx, a.TrackID, a.DeviceID, a.ParamIndex)
		if err != nil {
			return errResult(err)
		}
		return ok("fetched parameter name", map[string]any{"name": name})
	case GetDeviceParamDisplay:
		display, err := gw.GetDeviceParameterDisplay(ctx, a.TrackID, a.DeviceID, a.ParamIndex)
		if err != nil {
			return errResult(err)
		}
		return ok("fetched parameter display value", map[string]any{"display_value": display})
	case GetDeviceParamMin:
		min, err := gw.GetDeviceParameterMin(ctx, a.TrackID, a.DeviceID, a.ParamIndex)
		if err != nil {
			return errResult(err)
		}
		return ok("fetched parameter minimum", map[string]any{"min": min})
	case GetDeviceParamMax:
		max, err := gw.GetDeviceParameterMax(ctx, a.TrackID, a.DeviceID, a.ParamIndex)
		if err != nil {
			return errResult(err)
		}
		return ok("fetched parameter maximum", map[string]any{"max": max})
	default:
		return fail(ErrCodeInternal, "unknown device action")
	}
}
