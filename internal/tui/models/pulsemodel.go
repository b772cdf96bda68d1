package models

import (
	"sync"
	"time"

	"github.com/allbin/excserial"
)

// ProgressMsg carries a transmitter progress report into the TUI
type ProgressMsg excserial.Progress

// DoneMsg reports that the transmitter has returned
type DoneMsg struct {
	Err error
}

// PulseModel is the state behind the pulse dashboard
type PulseModel struct {
	portPath  string
	magnitude int
	rate      int
	period    time.Duration
	started   time.Time

	// Progress
	sent      uint64
	nextValue int
	updated   time.Time

	// State
	ready    bool
	stopping bool
	done     bool
	err      error

	stop     func()
	stopOnce sync.Once
}

// NewPulseModel returns dashboard state for a run of value at rate Hz.
// stop is called at most once, when the user asks to quit.
func NewPulseModel(portPath string, value, rate int, period time.Duration, started time.Time, stop func()) *PulseModel {
	return &PulseModel{
		portPath:  portPath,
		magnitude: abs(value),
		rate:      rate,
		period:    period,
		started:   started,
		nextValue: value,
		updated:   started,
		stop:      stop,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (m *PulseModel) GetPortPath() string {
	return m.portPath
}

func (m *PulseModel) Magnitude() int {
	return m.magnitude
}

func (m *PulseModel) Rate() int {
	return m.rate
}

func (m *PulseModel) Period() time.Duration {
	return m.period
}

func (m *PulseModel) Sent() uint64 {
	return m.sent
}

func (m *PulseModel) NextValue() int {
	return m.nextValue
}

// ApplyProgress records a progress report. Reports never move the count backwards.
func (m *PulseModel) ApplyProgress(p ProgressMsg) {
	if p.Sent < m.sent {
		return
	}
	m.sent = p.Sent
	m.nextValue = p.Value
	m.updated = p.At
}

// Elapsed returns the time between the start and the latest report
func (m *PulseModel) Elapsed() time.Duration {
	return m.updated.Sub(m.started)
}

// AchievedRate returns frames per second over the run so far
func (m *PulseModel) AchievedRate() float64 {
	elapsed := m.Elapsed()
	if elapsed <= 0 {
		return 0
	}
	return float64(m.sent) / elapsed.Seconds()
}

// RequestStop asks the transmitter to stop. Safe to call repeatedly.
func (m *PulseModel) RequestStop() {
	m.stopping = true
	m.stopOnce.Do(func() {
		if m.stop != nil {
			m.stop()
		}
	})
}

func (m *PulseModel) IsStopping() bool {
	return m.stopping
}

// Finish records the transmitter's result
func (m *PulseModel) Finish(err error) {
	m.done = true
	m.err = err
}

func (m *PulseModel) IsDone() bool {
	return m.done
}

func (m *PulseModel) GetError() error {
	return m.err
}

func (m *PulseModel) IsReady() bool {
	return m.ready
}

func (m *PulseModel) SetReady(ready bool) {
	m.ready = ready
}
