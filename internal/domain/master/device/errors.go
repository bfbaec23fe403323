package device

import "errors"

var (
	ErrDeviceNotFound   = errors.New("device not found")
	ErrDeviceNameExists = errors.New("device name already exists")
	ErrDeviceInactive   = errors.New("device is inactive")
)
