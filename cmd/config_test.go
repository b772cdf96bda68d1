package cmd

import (
	"testing"
	"time"

	"github.com/allbin/excserial"
	"github.com/spf13/viper"
)

func TestLoadSettingsDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	s, err := loadSettings(v)
	if err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}

	if s.BaudRate != 115200 {
		t.Errorf("BaudRate = %d, want 115200", s.BaudRate)
	}
	if s.Backend != excserial.BackendNative {
		t.Errorf("Backend = %v, want native", s.Backend)
	}
	if s.Pacing != excserial.PacingSpin {
		t.Errorf("Pacing = %v, want spin", s.Pacing)
	}
	if s.StatusInterval != 2*time.Second {
		t.Errorf("StatusInterval = %v, want 2s", s.StatusInterval)
	}
	if s.Timeouts != excserial.DefaultTimeouts() {
		t.Errorf("Timeouts = %+v, want %+v", s.Timeouts, excserial.DefaultTimeouts())
	}
	if s.TUI {
		t.Error("TUI enabled by default")
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("baud", 9600)
	v.Set("backend", "Portable")
	v.Set("pacing", "hybrid")
	v.Set("status-interval", "500ms")
	v.Set("timeouts.write-constant", "200ms")

	s, err := loadSettings(v)
	if err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}

	if s.BaudRate != 9600 {
		t.Errorf("BaudRate = %d, want 9600", s.BaudRate)
	}
	if s.Backend != excserial.BackendPortable {
		t.Errorf("Backend = %v, want portable", s.Backend)
	}
	if s.Pacing != excserial.PacingHybrid {
		t.Errorf("Pacing = %v, want hybrid", s.Pacing)
	}
	if s.StatusInterval != 500*time.Millisecond {
		t.Errorf("StatusInterval = %v, want 500ms", s.StatusInterval)
	}
	if s.Timeouts.WriteTotalConstant != 200*time.Millisecond {
		t.Errorf("WriteTotalConstant = %v, want 200ms", s.Timeouts.WriteTotalConstant)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{"backend", "serial-over-lan"},
		{"pacing", "sleep"},
		{"status-interval", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			v.Set(tt.key, tt.value)

			if _, err := loadSettings(v); err == nil {
				t.Errorf("loadSettings accepted %s=%v", tt.key, tt.value)
			}
		})
	}
}

func TestPortOptions(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("baud", 57600)
	v.Set("backend", "portable")

	s, err := loadSettings(v)
	if err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}

	config := excserial.DefaultConfig()
	for _, opt := range s.portOptions() {
		if err := opt(&config); err != nil {
			t.Fatalf("option rejected: %v", err)
		}
	}

	if config.BaudRate != 57600 || config.Backend != excserial.BackendPortable {
		t.Errorf("config = %+v", config)
	}
	if config.DataBits != 8 || config.StopBits != 1 || config.Parity != excserial.ParityNone {
		t.Errorf("line settings changed from 8N1: %+v", config)
	}
}
