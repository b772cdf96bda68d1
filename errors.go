package excserial

import "errors"

// Predefined error types for robust error handling
var (
	ErrDeviceNotFound   = errors.New("serial device not found")
	ErrPermissionDenied = errors.New("permission denied accessing serial device")
	ErrDeviceInUse      = errors.New("serial device already in use")
	ErrDeviceGone       = errors.New("serial device disconnected")
	ErrInvalidBaudRate  = errors.New("invalid baud rate")
	ErrInvalidConfig    = errors.New("invalid serial configuration")
	ErrPortClosed       = errors.New("serial port is closed")
	ErrWriteTimeout     = errors.New("write operation timed out")

	// Transmission errors
	ErrZeroValue   = errors.New("value must be nonzero")
	ErrValueRange  = errors.New("value must be within +/-2147483647")
	ErrInvalidRate = errors.New("frequency must be between 1 and 1000 Hz")
)
