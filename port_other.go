//go:build !linux

package excserial

// Outside Linux go.bug.st/serial is the native driver; it also owns baud
// rate validation, so only obviously bad values are rejected here.

func checkBaudRate(rate int) error {
	if rate <= 0 {
		return ErrInvalidBaudRate
	}
	return nil
}

func openNative(device string, config Config) (Port, error) {
	return openPortable(device, config)
}
