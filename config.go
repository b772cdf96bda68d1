package excserial

import "time"

// WriteMode represents the write synchronization mode
type WriteMode int

const (
	WriteModeBuffered WriteMode = iota // Default: kernel buffers writes
	WriteModeSynced                    // O_SYNC: writes block until hardware transmission
)

// Backend selects the driver used to talk to the port
type Backend int

const (
	BackendNative   Backend = iota // termios on Linux, go.bug.st/serial elsewhere
	BackendPortable                // go.bug.st/serial on every platform
)

func (b Backend) String() string {
	switch b {
	case BackendNative:
		return "native"
	case BackendPortable:
		return "portable"
	default:
		return "unknown"
	}
}

// Timeouts bounds every I/O call on the port. A write of n bytes may take at
// most WriteTotalConstant + n*WriteTotalMultiplier before it fails with
// ErrWriteTimeout.
type Timeouts struct {
	ReadInterval         time.Duration
	ReadTotalConstant    time.Duration
	ReadTotalMultiplier  time.Duration
	WriteTotalConstant   time.Duration
	WriteTotalMultiplier time.Duration
}

// DefaultTimeouts returns the timeouts the ECU bench has always used
func DefaultTimeouts() Timeouts {
	return Timeouts{
		ReadInterval:         50 * time.Millisecond,
		ReadTotalConstant:    10 * time.Millisecond,
		ReadTotalMultiplier:  10 * time.Millisecond,
		WriteTotalConstant:   50 * time.Millisecond,
		WriteTotalMultiplier: 10 * time.Millisecond,
	}
}

// WriteBudget returns how long a write of n bytes may block
func (t Timeouts) WriteBudget(n int) time.Duration {
	return t.WriteTotalConstant + time.Duration(n)*t.WriteTotalMultiplier
}

func (t Timeouts) validate() error {
	for _, d := range []time.Duration{
		t.ReadInterval, t.ReadTotalConstant, t.ReadTotalMultiplier,
		t.WriteTotalConstant, t.WriteTotalMultiplier,
	} {
		if d < 0 {
			return ErrInvalidConfig
		}
	}
	// A zero write budget would mean "block forever"
	if t.WriteTotalConstant == 0 && t.WriteTotalMultiplier == 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Config holds the configuration for a serial port
type Config struct {
	BaudRate  int
	DataBits  int
	StopBits  int
	Parity    Parity
	Timeouts  Timeouts
	WriteMode WriteMode
	Backend   Backend
}

// Option is a functional option for configuring a serial port
type Option func(*Config) error

// DefaultConfig returns 115200 8N1 with bounded timeouts
func DefaultConfig() Config {
	return Config{
		BaudRate:  115200,
		DataBits:  8,
		StopBits:  1,
		Parity:    ParityNone,
		Timeouts:  DefaultTimeouts(),
		WriteMode: WriteModeBuffered,
		Backend:   BackendNative,
	}
}

// WithBaudRate sets the baud rate
func WithBaudRate(rate int) Option {
	return func(c *Config) error {
		if err := checkBaudRate(rate); err != nil {
			return err
		}
		c.BaudRate = rate
		return nil
	}
}

// WithDataBits sets the number of data bits (5, 6, 7, or 8)
func WithDataBits(bits int) Option {
	return func(c *Config) error {
		if bits < 5 || bits > 8 {
			return ErrInvalidConfig
		}
		c.DataBits = bits
		return nil
	}
}

// WithStopBits sets the number of stop bits (1 or 2)
func WithStopBits(bits int) Option {
	return func(c *Config) error {
		if bits != 1 && bits != 2 {
			return ErrInvalidConfig
		}
		c.StopBits = bits
		return nil
	}
}

// WithParity sets the parity mode
func WithParity(parity Parity) Option {
	return func(c *Config) error {
		if parity < ParityNone || parity > ParitySpace {
			return ErrInvalidConfig
		}
		c.Parity = parity
		return nil
	}
}

// WithTimeouts replaces the I/O timeouts. The write budget must be nonzero.
func WithTimeouts(t Timeouts) Option {
	return func(c *Config) error {
		if err := t.validate(); err != nil {
			return err
		}
		c.Timeouts = t
		return nil
	}
}

// WithWriteMode sets the write synchronization mode
func WithWriteMode(mode WriteMode) Option {
	return func(c *Config) error {
		c.WriteMode = mode
		return nil
	}
}

// WithSyncWrite enables synchronous writes (O_SYNC) for guaranteed transmission
func WithSyncWrite() Option {
	return WithWriteMode(WriteModeSynced)
}

// WithBackend selects the port driver
func WithBackend(b Backend) Option {
	return func(c *Config) error {
		if b != BackendNative && b != BackendPortable {
			return ErrInvalidConfig
		}
		c.Backend = b
		return nil
	}
}
