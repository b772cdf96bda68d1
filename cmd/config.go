/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/allbin/excserial"
	"github.com/spf13/viper"
)

// settings is everything the pulse run takes from flags, env and config file
type settings struct {
	BaudRate       int
	Backend        excserial.Backend
	Pacing         excserial.Pacing
	StatusInterval time.Duration
	Timeouts       excserial.Timeouts
	TUI            bool
}

// setDefaults registers the values used when neither flag, env nor config file set a key
func setDefaults(v *viper.Viper) {
	to := excserial.DefaultTimeouts()
	v.SetDefault("timeouts.read-interval", to.ReadInterval)
	v.SetDefault("timeouts.read-constant", to.ReadTotalConstant)
	v.SetDefault("timeouts.read-multiplier", to.ReadTotalMultiplier)
	v.SetDefault("timeouts.write-constant", to.WriteTotalConstant)
	v.SetDefault("timeouts.write-multiplier", to.WriteTotalMultiplier)

	v.SetDefault("baud", excserial.DefaultConfig().BaudRate)
	v.SetDefault("backend", "native")
	v.SetDefault("pacing", "spin")
	v.SetDefault("status-interval", excserial.DefaultStatusInterval)
}

func loadSettings(v *viper.Viper) (settings, error) {
	s := settings{
		BaudRate:       v.GetInt("baud"),
		StatusInterval: v.GetDuration("status-interval"),
		TUI:            v.GetBool("tui"),
		Timeouts: excserial.Timeouts{
			ReadInterval:         v.GetDuration("timeouts.read-interval"),
			ReadTotalConstant:    v.GetDuration("timeouts.read-constant"),
			ReadTotalMultiplier:  v.GetDuration("timeouts.read-multiplier"),
			WriteTotalConstant:   v.GetDuration("timeouts.write-constant"),
			WriteTotalMultiplier: v.GetDuration("timeouts.write-multiplier"),
		},
	}

	switch strings.ToLower(v.GetString("backend")) {
	case "native", "":
		s.Backend = excserial.BackendNative
	case "portable":
		s.Backend = excserial.BackendPortable
	default:
		return settings{}, fmt.Errorf("unknown backend %q (valid: native, portable)", v.GetString("backend"))
	}

	pacing, err := excserial.ParsePacing(v.GetString("pacing"))
	if err != nil {
		return settings{}, err
	}
	s.Pacing = pacing

	if s.StatusInterval <= 0 {
		return settings{}, fmt.Errorf("status interval must be positive, got %v", s.StatusInterval)
	}

	return s, nil
}

// portOptions turns the settings into excserial.Open options. Line settings
// stay at the 8N1 default.
func (s settings) portOptions() []excserial.Option {
	return []excserial.Option{
		excserial.WithBaudRate(s.BaudRate),
		excserial.WithBackend(s.Backend),
		excserial.WithTimeouts(s.Timeouts),
	}
}
