package excserial

import (
	"fmt"
	"strings"
)

// PortKind groups ports by the kind of hardware behind them
type PortKind string

const (
	PortKindUSB      PortKind = "usb"      // USB serial adapters and CDC/ACM devices
	PortKindStandard PortKind = "standard" // on-board UARTs (ttyS, COM)
	PortKindSoC      PortKind = "arm"      // SoC UARTs on embedded boards
	PortKindOther    PortKind = "other"
)

// PortInfo describes a serial port found on the system
type PortInfo struct {
	Name            string
	Path            string
	Description     string
	Kind            PortKind
	VendorID        string
	ProductID       string
	SerialNumber    string
	InterfaceNumber string
	BusNumber       string
	DeviceNumber    string
	Manufacturer    string
	Product         string
}

// IsUSB reports whether the port sits behind a USB device
func (p PortInfo) IsUSB() bool {
	return p.Kind == PortKindUSB
}

// ParsePortFilter parses a --filter value; "all" and "" accept every kind
func ParsePortFilter(s string) (func(PortInfo) bool, error) {
	switch kind := strings.ToLower(strings.TrimSpace(s)); kind {
	case "", "all":
		return func(PortInfo) bool { return true }, nil
	case string(PortKindUSB), string(PortKindStandard), string(PortKindSoC):
		return func(p PortInfo) bool { return string(p.Kind) == kind }, nil
	default:
		return nil, fmt.Errorf("unknown port filter %q (valid: usb, standard, arm, all)", s)
	}
}

// ListPortDetails returns PortInfo for every port ListPorts finds that
// passes keep. Ports that vanish between listing and inspection are skipped.
func ListPortDetails(keep func(PortInfo) bool) ([]PortInfo, error) {
	ports, err := ListPorts()
	if err != nil {
		return nil, err
	}

	infos := make([]PortInfo, 0, len(ports))
	for _, port := range ports {
		info, err := GetPortInfo(port)
		if err != nil {
			continue
		}
		if keep == nil || keep(*info) {
			infos = append(infos, *info)
		}
	}
	return infos, nil
}

// portKind classifies a port from its device name
func portKind(name string) PortKind {
	switch {
	case strings.HasPrefix(name, "ttyUSB"), strings.HasPrefix(name, "ttyACM"),
		strings.HasPrefix(name, "cu.usb"), strings.HasPrefix(name, "tty.usb"):
		return PortKindUSB
	case strings.HasPrefix(name, "ttyAMA"), strings.HasPrefix(name, "ttymxc"),
		strings.HasPrefix(name, "ttySAC"), strings.HasPrefix(name, "ttyTHS"),
		strings.HasPrefix(name, "ttyO"):
		return PortKindSoC
	case strings.HasPrefix(name, "ttyS"), strings.HasPrefix(name, "COM"):
		return PortKindStandard
	default:
		return PortKindOther
	}
}

// getPortDescription provides human-readable descriptions for different port types
func getPortDescription(name string) string {
	switch {
	case strings.HasPrefix(name, "ttyUSB"):
		return "USB Serial Port"
	case strings.HasPrefix(name, "ttyACM"):
		return "USB CDC/ACM Device"
	case strings.HasPrefix(name, "ttyAMA"):
		return "ARM Serial Port"
	case strings.HasPrefix(name, "ttymxc"):
		return "i.MX Serial Port"
	case strings.HasPrefix(name, "ttySAC"):
		return "Samsung Serial Port"
	case strings.HasPrefix(name, "ttyTHS"):
		return "Tegra Serial Port"
	case strings.HasPrefix(name, "ttyO"):
		return "OMAP Serial Port"
	case strings.HasPrefix(name, "ttyS"):
		return "Standard Serial Port"
	case strings.HasPrefix(name, "COM"):
		return "COM Port"
	default:
		return "Serial Port"
	}
}
