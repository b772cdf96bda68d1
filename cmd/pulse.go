/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/allbin/excserial"
	"github.com/allbin/excserial/internal/tui/components"
	"github.com/allbin/excserial/internal/tui/styles"
)

// openPort is replaced in tests
var openPort = excserial.Open

// runPulse opens the port, transmits until stop is raised or a write fails,
// and closes the port exactly once on every path after a successful open.
func runPulse(out io.Writer, pa pulseArgs, s settings, stop *excserial.StopFlag) (err error) {
	fmt.Fprintf(out, "%s Starting excserial on %s...\n", styles.InfoGlyphStyle.Render("⚡"), pa.Port)
	debugf("baud=%d backend=%s pacing=%s timeouts=%+v", s.BaudRate, s.Backend, s.Pacing, s.Timeouts)

	port, err := openPort(pa.Port, s.portOptions()...)
	if err != nil {
		return fmt.Errorf("%s %w", styles.ErrorGlyphStyle.Render("✗"), err)
	}
	defer func() {
		if cerr := port.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", pa.Port, cerr)
		}
	}()

	fmt.Fprintf(out, "%s Serial port successfully configured!\n", styles.SuccessGlyphStyle.Render("✓"))

	period, _ := excserial.PeriodForRate(pa.Rate)
	fmt.Fprintf(out, "Sending [+/-] %d to %s with %d Hz (%d ms)...\n",
		abs(pa.Value), pa.Port, pa.Rate, period.Milliseconds())

	opts := []excserial.TransmitterOption{
		excserial.WithPacing(s.Pacing),
		excserial.WithStatusInterval(s.StatusInterval),
	}

	var runErr error
	if s.TUI {
		runErr = runDashboard(port, pa, s, stop, opts)
	} else {
		runErr = runConsole(out, port, pa, stop, opts)
	}

	if errors.Is(runErr, errDashboard) {
		return fmt.Errorf("%s %w", styles.ErrorGlyphStyle.Render("✗"), runErr)
	}
	if runErr != nil {
		// Queued frames would otherwise hold up Close on a stalled device
		if ferr := port.FlushOutput(); ferr != nil {
			debugf("flush after failure: %v", ferr)
		}
		return fmt.Errorf("%s failed to write to %s: %w", styles.ErrorGlyphStyle.Render("✗"), pa.Port, runErr)
	}

	fmt.Fprintln(out, "Got interrupt, exiting...")
	if derr := port.Drain(); derr != nil {
		debugf("drain on shutdown: %v", derr)
	}
	return nil
}

// runConsole drives the transmitter with the in-place status line
func runConsole(out io.Writer, port excserial.Port, pa pulseArgs, stop excserial.StopSignal, opts []excserial.TransmitterOption) error {
	line := components.NewStatusLine(out)
	defer line.Finish()

	tx, err := excserial.NewTransmitter(port, pa.Value, pa.Rate, append(opts, excserial.WithReporter(line))...)
	if err != nil {
		return err
	}

	start := time.Now()
	err = tx.Run(stop)
	debugf("sent %d frames in %v", tx.Sent(), time.Since(start).Truncate(time.Millisecond))
	return err
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
