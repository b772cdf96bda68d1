//go:build !linux

package excserial

import (
	"sort"

	"go.bug.st/serial/enumerator"
)

// ListPorts returns the serial ports the OS reports, sorted by name
func ListPorts() ([]string, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	ports := make([]string, 0, len(details))
	for _, d := range details {
		ports = append(ports, d.Name)
	}
	sort.Strings(ports)
	return ports, nil
}

// GetPortInfo returns detailed information about a specific port
func GetPortInfo(portPath string) (*PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	for _, d := range details {
		if d.Name == portPath {
			return portInfoFromDetails(d), nil
		}
	}
	return nil, ErrDeviceNotFound
}

func portInfoFromDetails(d *enumerator.PortDetails) *PortInfo {
	info := &PortInfo{
		Name:        d.Name,
		Path:        d.Name,
		Description: getPortDescription(d.Name),
		Kind:        portKind(d.Name),
	}

	if d.IsUSB {
		info.Kind = PortKindUSB
		info.Description = "USB Serial Port"
		info.VendorID = d.VID
		info.ProductID = d.PID
		info.SerialNumber = d.SerialNumber
		info.Product = d.Product
	}
	return info
}
