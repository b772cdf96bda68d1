package excserial

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	bugst "go.bug.st/serial"
)

// stream is the part of go.bug.st/serial's Port the portable backend uses
type stream interface {
	Write(p []byte) (int, error)
	Close() error
	Drain() error
	ResetOutputBuffer() error
}

// portablePort wraps go.bug.st/serial, which has no write timeout of its
// own on every platform. Writes run on a helper goroutine and are abandoned
// when the budget runs out; the port is then marked stalled.
type portablePort struct {
	mu      sync.Mutex
	stream  stream
	name    string
	config  Config
	closed  bool
	stalled bool
}

var _ Port = (*portablePort)(nil)

func openPortable(device string, config Config) (Port, error) {
	mode := &bugst.Mode{
		BaudRate: config.BaudRate,
		DataBits: config.DataBits,
		Parity:   bugstParity(config.Parity),
		StopBits: bugstStopBits(config.StopBits),
	}

	sp, err := bugst.Open(device, mode)
	if err != nil {
		return nil, portableOpenError(device, err)
	}

	if err := sp.SetReadTimeout(config.Timeouts.ReadTotalConstant); err != nil {
		sp.Close()
		return nil, fmt.Errorf("could not set timeouts on %s: %w", device, err)
	}

	if err := sp.ResetOutputBuffer(); err != nil {
		sp.Close()
		return nil, fmt.Errorf("failed to flush %s: %w", device, err)
	}

	return newPortablePort(sp, device, config), nil
}

func newPortablePort(s stream, name string, config Config) *portablePort {
	return &portablePort{
		stream: s,
		name:   name,
		config: config,
	}
}

func bugstParity(p Parity) bugst.Parity {
	switch p {
	case ParityOdd:
		return bugst.OddParity
	case ParityEven:
		return bugst.EvenParity
	case ParityMark:
		return bugst.MarkParity
	case ParitySpace:
		return bugst.SpaceParity
	default:
		return bugst.NoParity
	}
}

func bugstStopBits(bits int) bugst.StopBits {
	if bits == 2 {
		return bugst.TwoStopBits
	}
	return bugst.OneStopBit
}

// portableOpenError maps go.bug.st/serial error codes onto the package sentinels
func portableOpenError(device string, err error) error {
	var portErr *bugst.PortError
	if !errors.As(err, &portErr) {
		// Missing devices come back as the raw OS error
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to open %s: %w (%w)", device, ErrDeviceNotFound, err)
		}
		return fmt.Errorf("failed to open %s: %w", device, err)
	}

	var sentinel error
	switch portErr.Code() {
	case bugst.PortNotFound:
		sentinel = ErrDeviceNotFound
	case bugst.PortBusy:
		sentinel = ErrDeviceInUse
	case bugst.PermissionDenied:
		sentinel = ErrPermissionDenied
	case bugst.InvalidSpeed:
		sentinel = ErrInvalidBaudRate
	case bugst.InvalidDataBits, bugst.InvalidParity, bugst.InvalidStopBits:
		sentinel = ErrInvalidConfig
	default:
		return fmt.Errorf("failed to open %s: %w", device, err)
	}
	return fmt.Errorf("failed to open %s: %w (%w)", device, sentinel, err)
}

func (p *portablePort) Name() string {
	return p.name
}

// Write writes data, giving up after the configured write budget
func (p *portablePort) Write(data []byte) (int, error) {
	p.mu.Lock()
	closed, stalled := p.closed, p.stalled
	p.mu.Unlock()

	if closed {
		return 0, ErrPortClosed
	}
	if stalled {
		return 0, ErrWriteTimeout
	}

	type writeResult struct {
		n   int
		err error
	}
	resultCh := make(chan writeResult, 1)

	// The write may outlive this call, and data belongs to the caller once we return
	buf := append([]byte(nil), data...)
	go func() {
		n, err := p.stream.Write(buf)
		resultCh <- writeResult{n: n, err: err}
	}()

	timer := time.NewTimer(p.config.Timeouts.WriteBudget(len(data)))
	defer timer.Stop()

	select {
	case result := <-resultCh:
		return result.n, result.err
	case <-timer.C:
		p.mu.Lock()
		p.stalled = true
		p.mu.Unlock()
		return 0, ErrWriteTimeout
	}
}

// Close closes the serial port, unblocking any abandoned write
func (p *portablePort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}
	p.closed = true
	return p.stream.Close()
}

// Drain waits until all output written to the port has been transmitted
func (p *portablePort) Drain() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}
	return p.stream.Drain()
}

// FlushOutput discards any unwritten output data
func (p *portablePort) FlushOutput() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}
	return p.stream.ResetOutputBuffer()
}
