package components

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/allbin/excserial"
	"github.com/allbin/excserial/internal/tui/styles"
)

func TestConnectionSummary(t *testing.T) {
	sb := NewStatusBar("COM7")
	if got := sb.ConnectionSummary(); got != "serial" {
		t.Errorf("summary without info = %q", got)
	}

	sb.SetConnectionInfo(&ConnectionInfo{
		BaudRate: 115200,
		DataBits: 8,
		StopBits: 1,
		Parity:   excserial.ParityNone,
		Backend:  excserial.BackendPortable,
		Pacing:   excserial.PacingHybrid,
	})
	if got, want := sb.ConnectionSummary(), "115200 baud 8N1 portable/hybrid"; got != want {
		t.Errorf("ConnectionSummary() = %q, want %q", got, want)
	}
}

func TestStatusBarStates(t *testing.T) {
	sb := NewStatusBar("/dev/ttyUSB0")
	if sb.Status() != styles.StatusRunning {
		t.Fatalf("initial status = %v", sb.Status())
	}

	sb.SetStopping()
	if sb.Status() != styles.StatusStopping {
		t.Errorf("after SetStopping status = %v", sb.Status())
	}

	sb.SetDone(nil)
	if sb.Status() != styles.StatusStopped {
		t.Errorf("after clean finish status = %v", sb.Status())
	}

	// A finished bar does not go back to stopping
	sb.SetStopping()
	if sb.Status() != styles.StatusStopped {
		t.Errorf("SetStopping changed a finished bar to %v", sb.Status())
	}

	sb.SetDone(errors.New("write timed out"))
	if sb.Status() != styles.StatusFailed {
		t.Errorf("after failure status = %v", sb.Status())
	}
}

func TestStatusBarRender(t *testing.T) {
	sb := NewStatusBar("/dev/ttyUSB0")
	sb.SetWidth(100)

	out := sb.Render(90 * time.Second)
	for _, want := range []string{"RUNNING", "/dev/ttyUSB0", "1m30s"} {
		if !strings.Contains(out, want) {
			t.Errorf("status bar %q does not contain %q", out, want)
		}
	}
}
