//go:build !windows

package excserial

import (
	"os"
	"syscall"
)

// SIGHUP covers the controlling terminal going away
var stopSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}
