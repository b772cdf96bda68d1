/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/allbin/excserial"
	"github.com/allbin/excserial/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send <port> <value>",
	Short: "Send a single frame to a serial port",
	Long: `Send a single "#v,v,v,v;" frame to a serial port and wait for it to
leave the UART.

Useful for checking wiring and that the ECU reacts before starting a
continuous run. Uses the same port settings as the main command.

Example usage:
  excserial send /dev/ttyUSB0 20
  excserial send COM7 -- -20`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseInt(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("can't convert value %q to a number", args[1])
		}

		s, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}

		return sendFrame(cmd.OutOrStdout(), args[0], int(value), s)
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}

func sendFrame(out io.Writer, portPath string, value int, s settings) (err error) {
	fmt.Fprintf(out, "%s Opening %s...\n", styles.InfoGlyphStyle.Render("⚡"), portPath)

	port, err := openPort(portPath, s.portOptions()...)
	if err != nil {
		return fmt.Errorf("%s %w", styles.ErrorGlyphStyle.Render("✗"), err)
	}
	defer func() {
		if cerr := port.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", portPath, cerr)
		}
	}()

	frame := excserial.Frame(value)
	n, err := port.Write(frame)
	if err != nil {
		if ferr := port.FlushOutput(); ferr != nil {
			debugf("flush after failure: %v", ferr)
		}
		return fmt.Errorf("%s failed to write to %s: %w", styles.ErrorGlyphStyle.Render("✗"), portPath, err)
	}
	if err := port.Drain(); err != nil {
		return fmt.Errorf("%s failed to drain %s: %w", styles.ErrorGlyphStyle.Render("✗"), portPath, err)
	}

	fmt.Fprintf(out, "%s Sent %d bytes: %s\n", styles.SuccessGlyphStyle.Render("✓"), n, frame)
	return nil
}
