package excserial

import "io"

// Port is an open, configured serial channel. Writes are bounded by the
// configured Timeouts; a stalled device surfaces as ErrWriteTimeout.
type Port interface {
	io.WriteCloser
	Name() string
	// Drain waits until all output written to the port has been transmitted
	Drain() error
	// FlushOutput discards any unwritten output data
	FlushOutput() error
}

// Parity represents the parity mode
type Parity int

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
	ParityMark
	ParitySpace
)

// Open opens a serial port with the given device path and options.
// With no options the port is 115200 8N1 with DefaultTimeouts.
func Open(device string, opts ...Option) (Port, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.Backend == BackendPortable {
		return openPortable(device, config)
	}
	return openNative(device, config)
}
