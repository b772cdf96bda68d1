/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/allbin/excserial"
)

// pulseArgs are the validated positional arguments of the root command
type pulseArgs struct {
	Port  string
	Value int
	Rate  int
}

// parseArgs validates <port> <magnitude> <frequency_hz>. It never touches
// the port, so every argument error surfaces before anything is opened.
func parseArgs(args []string) (pulseArgs, error) {
	if len(args) != 3 {
		return pulseArgs{}, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}

	// The ECU reads frames as 32-bit integers
	value, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return pulseArgs{}, fmt.Errorf("can't convert magnitude %q to a number", args[1])
	}
	if err := excserial.ValidateValue(int(value)); err != nil {
		return pulseArgs{}, fmt.Errorf("invalid magnitude %q: %w", args[1], err)
	}

	rate, err := strconv.Atoi(args[2])
	if err != nil {
		return pulseArgs{}, fmt.Errorf("can't convert frequency %q to a number", args[2])
	}
	if _, err := excserial.PeriodForRate(rate); err != nil {
		return pulseArgs{}, fmt.Errorf("invalid frequency %q: %w", args[2], err)
	}

	return pulseArgs{
		Port:  args[0],
		Value: int(value),
		Rate:  rate,
	}, nil
}
