package excserial

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Pacing selects how a Pacer waits out a period
type Pacing int

const (
	// PacingSpin polls the clock and yields the processor between checks.
	// Timers on some hosts tick at ~15ms, far coarser than a 1ms period.
	PacingSpin Pacing = iota
	// PacingHybrid sleeps in short chunks until the deadline is close, then spins
	PacingHybrid
)

const (
	// spinThreshold is how close to the deadline PacingHybrid switches to spinning
	spinThreshold = 2 * time.Millisecond
	// maxSleepChunk bounds each sleep so the stop signal is still polled often
	maxSleepChunk = 5 * time.Millisecond
)

func (p Pacing) String() string {
	switch p {
	case PacingSpin:
		return "spin"
	case PacingHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// ParsePacing parses "spin" or "hybrid"
func ParsePacing(s string) (Pacing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spin", "":
		return PacingSpin, nil
	case "hybrid":
		return PacingHybrid, nil
	default:
		return 0, fmt.Errorf("unknown pacing %q (valid: spin, hybrid)", s)
	}
}

// Clock is the time source and scheduler hooks used for pacing
type Clock interface {
	Now() time.Time
	Yield()
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Yield() { runtime.Gosched() }

func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock uses the monotonic wall clock and the Go scheduler
var SystemClock Clock = systemClock{}

// Pacer holds each send back until a full period has passed since the last one
type Pacer struct {
	period time.Duration
	policy Pacing
	clock  Clock
}

// NewPacer returns a Pacer for period. A nil clock means SystemClock.
func NewPacer(period time.Duration, policy Pacing, clock Clock) *Pacer {
	if clock == nil {
		clock = SystemClock
	}
	return &Pacer{period: period, policy: policy, clock: clock}
}

// Period returns the target time between sends
func (p *Pacer) Period() time.Duration {
	return p.period
}

// Wait blocks until at least one period has elapsed since last, or until
// stop reports true, whichever is seen first. It never returns early: ok is
// true only once the full period has passed, and now is the time it observed.
func (p *Pacer) Wait(last time.Time, stop StopSignal) (now time.Time, ok bool) {
	for {
		if stop.Stopped() {
			return time.Time{}, false
		}

		now = p.clock.Now()
		remaining := p.period - now.Sub(last)
		if remaining <= 0 {
			return now, true
		}

		if p.policy == PacingHybrid && remaining > spinThreshold {
			p.clock.Sleep(min(remaining-spinThreshold, maxSleepChunk))
			continue
		}
		p.clock.Yield()
	}
}
