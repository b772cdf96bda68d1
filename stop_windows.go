//go:build windows

package excserial

import (
	"os"
	"syscall"
)

// The Go runtime delivers CTRL_C_EVENT and CTRL_BREAK_EVENT as os.Interrupt,
// and CTRL_CLOSE_EVENT, CTRL_LOGOFF_EVENT and CTRL_SHUTDOWN_EVENT as SIGTERM.
var stopSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
