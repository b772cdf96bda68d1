package excserial

import (
	"fmt"
	"io"
	"math"
	"time"
)

const (
	// MaxRate is the highest frequency whose period is still a whole millisecond
	MaxRate = 1000
	// DefaultStatusInterval is how often progress is reported
	DefaultStatusInterval = 2 * time.Second
)

// Progress is a snapshot of a running transmission
type Progress struct {
	Sent  uint64    // frames written successfully
	Value int       // value carried by the next frame
	At    time.Time // when the snapshot was taken
}

// Reporter receives periodic progress from a Transmitter. Report is called
// on the transmitting goroutine and must return quickly.
type Reporter interface {
	Report(p Progress)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(Progress)

func (f ReporterFunc) Report(p Progress) { f(p) }

// PeriodForRate converts a frequency in Hz to a whole-millisecond period.
// Periods below 1ms cannot be expressed, so rates are capped at MaxRate.
func PeriodForRate(rateHz int) (time.Duration, error) {
	if rateHz <= 0 || rateHz > MaxRate {
		return 0, ErrInvalidRate
	}
	return time.Duration(1000/rateHz) * time.Millisecond, nil
}

// ValidateValue reports whether v can be sent with its sign alternating.
// Both v and -v must fit in 32 bits, so math.MinInt32 is out.
func ValidateValue(v int) error {
	if v == 0 {
		return ErrZeroValue
	}
	if v < -math.MaxInt32 || v > math.MaxInt32 {
		return ErrValueRange
	}
	return nil
}

// Transmitter writes alternating-sign frames to a port at a fixed rate.
// It owns its session state and must be driven from a single goroutine.
type Transmitter struct {
	w              io.Writer
	value          int
	rate           int
	pacing         Pacing
	clock          Clock
	pacer          *Pacer
	reporter       Reporter
	statusInterval time.Duration
	sent           uint64
	buf            []byte
}

// TransmitterOption configures a Transmitter
type TransmitterOption func(*Transmitter)

// WithReporter sets where periodic progress goes
func WithReporter(r Reporter) TransmitterOption {
	return func(t *Transmitter) {
		t.reporter = r
	}
}

// WithStatusInterval sets the minimum time between progress reports
func WithStatusInterval(d time.Duration) TransmitterOption {
	return func(t *Transmitter) {
		if d > 0 {
			t.statusInterval = d
		}
	}
}

// WithPacing selects the wait policy
func WithPacing(p Pacing) TransmitterOption {
	return func(t *Transmitter) {
		t.pacing = p
	}
}

// WithClock replaces the time source
func WithClock(c Clock) TransmitterOption {
	return func(t *Transmitter) {
		if c != nil {
			t.clock = c
		}
	}
}

// NewTransmitter prepares a transmission of value (sign alternating) at
// rateHz frames per second on w.
func NewTransmitter(w io.Writer, value, rateHz int, opts ...TransmitterOption) (*Transmitter, error) {
	if err := ValidateValue(value); err != nil {
		return nil, err
	}
	period, err := PeriodForRate(rateHz)
	if err != nil {
		return nil, err
	}

	t := &Transmitter{
		w:              w,
		value:          value,
		rate:           rateHz,
		pacing:         PacingSpin,
		clock:          SystemClock,
		statusInterval: DefaultStatusInterval,
		buf:            make([]byte, 0, maxFrameLen),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.pacer = NewPacer(period, t.pacing, t.clock)

	return t, nil
}

// Sent returns the number of frames written successfully
func (t *Transmitter) Sent() uint64 {
	return t.sent
}

// Value returns the value the next frame will carry
func (t *Transmitter) Value() int {
	return t.value
}

// Rate returns the requested frequency in Hz
func (t *Transmitter) Rate() int {
	return t.rate
}

// Period returns the time between frames
func (t *Transmitter) Period() time.Duration {
	return t.pacer.Period()
}

// Run sends frames until stop reports true, returning nil, or until a write
// fails, returning that error. A failed write is never retried and does not
// count as sent. The first frame goes out one period after Run starts.
func (t *Transmitter) Run(stop StopSignal) error {
	start := t.clock.Now()
	lastSend, lastStatus := start, start

	for {
		if _, ok := t.pacer.Wait(lastSend, stop); !ok {
			return nil
		}

		t.buf = AppendFrame(t.buf[:0], t.value)
		n, err := t.w.Write(t.buf)
		if err == nil && n != len(t.buf) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", t.sent+1, err)
		}

		t.value = -t.value
		t.sent++
		now := t.clock.Now()
		lastSend = now

		if t.reporter != nil && now.Sub(lastStatus) >= t.statusInterval {
			t.reporter.Report(Progress{Sent: t.sent, Value: t.value, At: now})
			lastStatus = now
		}
	}
}
