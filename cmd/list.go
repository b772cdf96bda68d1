/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/allbin/excserial"
	"github.com/allbin/excserial/internal/tui/styles"
	"github.com/evertras/bubble-table/table"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available serial ports",
	Long: `List all available serial ports on the system.

This command scans for communication-capable serial devices including:
- USB serial adapters (ttyUSB*, ttyACM*, COM ports behind USB)
- Standard serial ports (ttyS*, COM*)
- ARM/embedded board ports (ttyAMA*, ttymxc*, ttyO*, ttySAC*, ttyTHS*)

Virtual terminals and pseudo-terminals are excluded from the listing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filterType, _ := cmd.Flags().GetString("filter")
		tableFormat, _ := cmd.Flags().GetBool("table")

		keep, err := excserial.ParsePortFilter(filterType)
		if err != nil {
			return err
		}

		ports, err := excserial.ListPortDetails(keep)
		if err != nil {
			return fmt.Errorf("error listing ports: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(ports) == 0 {
			if filterType != "" && filterType != "all" {
				fmt.Fprintf(out, "No serial ports found matching filter: %s\n", filterType)
			} else {
				fmt.Fprintln(out, "No serial ports found")
			}
			return nil
		}

		if tableFormat {
			renderTable(out, ports)
		} else {
			renderSimple(out, ports)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("filter", "f", "", "Filter by port type: usb, standard, arm, all")
	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
}

const (
	columnKeyPort   = "port"
	columnKeyKind   = "kind"
	columnKeyDesc   = "desc"
	columnKeyVIDPID = "vidpid"
	columnKeySerial = "serial"
)

// portTable builds the static table shown by list --table
func portTable(ports []excserial.PortInfo) table.Model {
	columns := []table.Column{
		table.NewColumn(columnKeyPort, "Port", 16),
		table.NewColumn(columnKeyKind, "Type", 10),
		table.NewColumn(columnKeyDesc, "Description", 24),
		table.NewColumn(columnKeyVIDPID, "VID:PID", 11),
		table.NewColumn(columnKeySerial, "Serial", 16),
	}

	rows := make([]table.Row, 0, len(ports))
	for _, p := range ports {
		vidpid := ""
		if p.VendorID != "" || p.ProductID != "" {
			vidpid = p.VendorID + ":" + p.ProductID
		}
		rows = append(rows, table.NewRow(table.RowData{
			columnKeyPort:   p.Path,
			columnKeyKind:   string(p.Kind),
			columnKeyDesc:   p.Description,
			columnKeyVIDPID: vidpid,
			columnKeySerial: p.SerialNumber,
		}))
	}

	return table.New(columns).
		WithRows(rows).
		HeaderStyle(styles.TableHeaderStyle).
		WithBaseStyle(styles.TableBaseStyle).
		BorderRounded()
}

// renderTable renders the port list in a styled static table format
func renderTable(out io.Writer, ports []excserial.PortInfo) {
	fmt.Fprintf(out, "Found %d serial port(s):\n\n", len(ports))
	fmt.Fprintln(out, portTable(ports).View())
}

// renderSimple renders the port list in simple text format
func renderSimple(out io.Writer, ports []excserial.PortInfo) {
	for _, p := range ports {
		fmt.Fprintln(out, p.Path)
	}
}
