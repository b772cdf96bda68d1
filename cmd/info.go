/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/allbin/excserial"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <port>",
	Short: "Display detailed information about a serial port",
	Long: `Display detailed information about a serial port including USB metadata.

Examples:
  excserial info /dev/ttyUSB0
  excserial info COM7

For USB devices, this displays vendor/product IDs, serial numbers, interface
numbers, and other USB-specific metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := excserial.GetPortInfo(args[0])
		if err != nil {
			return fmt.Errorf("error getting port info: %w", err)
		}

		printPortInfo(cmd.OutOrStdout(), info)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printPortInfo(out io.Writer, info *excserial.PortInfo) {
	fmt.Fprintf(out, "Port Information: %s\n\n", info.Path)
	fmt.Fprintf(out, "  Name:        %s\n", info.Name)
	fmt.Fprintf(out, "  Description: %s\n", info.Description)
	fmt.Fprintf(out, "  Type:        %s\n", info.Kind)

	// USB Device Information
	if info.VendorID == "" && info.ProductID == "" {
		return
	}

	fmt.Fprintln(out, "\nUSB Device Information:")
	fields := []struct {
		label string
		value string
	}{
		{"Vendor ID:   ", info.VendorID},
		{"Product ID:  ", info.ProductID},
		{"Serial:      ", info.SerialNumber},
		{"Interface:   ", info.InterfaceNumber},
		{"Bus:         ", info.BusNumber},
		{"Device:      ", info.DeviceNumber},
		{"Manufacturer:", info.Manufacturer},
		{"Product:     ", info.Product},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(out, "  %s %s\n", f.label, f.value)
		}
	}
}
