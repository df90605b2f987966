// Package usecase orchestrates internal/gateway and internal/theory into
// the tool-call shaped operations internal/dispatch routes to (spec §4.6).
// Every exported function here maps its errors onto the stable error_code
// taxonomy of spec §7 and returns a Result envelope ready for the
// dispatcher to serialize.
package usecase

import (
	"errors"

	"dawbridge/internal/gateway"
)

// Result is the {success, data, message, error_code} envelope every tool
// call resolves to (spec §7).
type Result struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
}

// Stable error codes (spec §7). These strings are part of the assistant
// protocol's contract and must never change once a client depends on them.
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeConnFailed    = "CONNECTION_FAILED"
	ErrCodeNotConnected  = "NOT_CONNECTED"
	ErrCodeOSCComm       = "OSC_COMMUNICATION_ERROR"
	ErrCodeTrackNotFound = "TRACK_NOT_FOUND"
	ErrCodeClipNotFound  = "CLIP_NOT_FOUND"
	ErrCodeDeviceNotFound = "DEVICE_NOT_FOUND"
	ErrCodeProtocol      = "PROTOCOL_ERROR"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

func ok(message string, data any) Result {
	return Result{Success: true, Message: message, Data: data}
}

func fail(code, message string) Result {
	return Result{Success: false, Message: message, ErrorCode: code}
}

// errResult maps a gateway (or other internal) error onto a Result,
// choosing the most specific error_code the error's sentinel chain
// permits.
func errResult(err error) Result {
	switch {
	case errors.Is(err, gateway.ErrValidation):
		return fail(ErrCodeValidation, err.Error())
	case errors.Is(err, gateway.ErrNotConnected):
		return fail(ErrCodeNotConnected, err.Error())
	case errors.Is(err, gateway.ErrCommunication):
		return fail(ErrCodeOSCComm, err.Error())
	case errors.Is(err, gateway.ErrProtocol):
		return fail(ErrCodeProtocol, err.Error())
	default:
		return fail(ErrCodeInternal, err.Error())
	}
}
