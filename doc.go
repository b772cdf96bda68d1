// Package excserial drives a motor-control ECU over a serial port with a
// periodic, alternating-sign test signal.
//
// A Transmitter writes frames of the form "#v,v,v,v;" at a fixed rate,
// flipping the sign of v after every successful write, until a stop signal is
// raised or a write fails.
//
// # Basic Usage
//
// Open a serial port with the default configuration (115200 8N1, bounded
// write timeouts) and transmit until Ctrl+C:
//
//	port, err := excserial.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	var stop excserial.StopFlag
//	release := excserial.NotifyStop(&stop)
//	defer release()
//
//	tx, err := excserial.NewTransmitter(port, 20, 10) // +/-20 at 10 Hz
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = tx.Run(&stop)
//
// # Configuration Options
//
// Use functional options for custom configuration:
//
//	port, err := excserial.Open("COM7",
//	    excserial.WithBaudRate(115200),
//	    excserial.WithBackend(excserial.BackendPortable),
//	    excserial.WithTimeouts(excserial.Timeouts{
//	        WriteTotalConstant:   50 * time.Millisecond,
//	        WriteTotalMultiplier: 10 * time.Millisecond,
//	    }),
//	)
//
// A write of n bytes fails with ErrWriteTimeout once
// WriteTotalConstant + n*WriteTotalMultiplier has passed.
//
// # Pacing
//
// Frames are never sent early. PacingSpin polls the clock and yields the
// processor between checks; PacingHybrid sleeps in short chunks until the
// deadline is near and then spins.
//
//	tx, err := excserial.NewTransmitter(port, 20, 1000,
//	    excserial.WithPacing(excserial.PacingHybrid),
//	    excserial.WithReporter(excserial.ReporterFunc(func(p excserial.Progress) {
//	        fmt.Printf("Messages sent: %d\n", p.Sent)
//	    })),
//	)
//
// # Port Discovery
//
// List available serial ports and get USB device metadata:
//
//	ports, err := excserial.ListPorts()
//	for _, portPath := range ports {
//	    info, _ := excserial.GetPortInfo(portPath)
//	    fmt.Printf("%s: %s (VID=%s PID=%s Serial=%s)\n",
//	        info.Path, info.Description, info.VendorID, info.ProductID, info.SerialNumber)
//	}
//
// # Error Handling
//
// Use errors.Is() for error type checking:
//
//	if errors.Is(err, excserial.ErrDeviceNotFound) {
//	    // Port name is wrong or the adapter is unplugged
//	}
//
// # Platform Support
//
// On Linux the native backend configures the tty with termios and bounds
// writes with poll(2). Elsewhere, and with BackendPortable, go.bug.st/serial
// is used. USB metadata comes from sysfs on Linux and from the OS port
// enumerator elsewhere.
package excserial
