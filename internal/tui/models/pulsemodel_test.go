package models

import (
	"errors"
	"testing"
	"time"
)

func TestPulseModelProgress(t *testing.T) {
	start := time.Unix(1700000000, 0)
	m := NewPulseModel("COM7", -20, 500, 2*time.Millisecond, start, nil)

	if m.Magnitude() != 20 {
		t.Errorf("Magnitude() = %d, want 20", m.Magnitude())
	}
	if m.NextValue() != -20 {
		t.Errorf("NextValue() = %d, want -20", m.NextValue())
	}

	m.ApplyProgress(ProgressMsg{Sent: 1000, Value: -20, At: start.Add(2 * time.Second)})
	if m.Sent() != 1000 {
		t.Errorf("Sent() = %d, want 1000", m.Sent())
	}
	if got := m.AchievedRate(); got != 500 {
		t.Errorf("AchievedRate() = %v, want 500", got)
	}

	// A stale report is ignored
	m.ApplyProgress(ProgressMsg{Sent: 10, Value: 20, At: start.Add(time.Second)})
	if m.Sent() != 1000 || m.Elapsed() != 2*time.Second {
		t.Errorf("stale report applied: sent %d elapsed %v", m.Sent(), m.Elapsed())
	}
}

func TestPulseModelAchievedRateBeforeProgress(t *testing.T) {
	m := NewPulseModel("COM7", 1, 1, time.Second, time.Now(), nil)
	if got := m.AchievedRate(); got != 0 {
		t.Errorf("AchievedRate() = %v before any report", got)
	}
}

func TestPulseModelRequestStop(t *testing.T) {
	calls := 0
	m := NewPulseModel("COM7", 5, 10, 100*time.Millisecond, time.Now(), func() { calls++ })

	m.RequestStop()
	m.RequestStop()

	if calls != 1 {
		t.Errorf("stop called %d times, want 1", calls)
	}
	if !m.IsStopping() {
		t.Error("IsStopping() = false after RequestStop")
	}
}

func TestPulseModelFinish(t *testing.T) {
	m := NewPulseModel("COM7", 5, 10, 100*time.Millisecond, time.Now(), nil)
	errWrite := errors.New("write failed")

	m.Finish(errWrite)

	if !m.IsDone() {
		t.Error("IsDone() = false after Finish")
	}
	if !errors.Is(m.GetError(), errWrite) {
		t.Errorf("GetError() = %v, want %v", m.GetError(), errWrite)
	}
}
