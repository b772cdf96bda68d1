package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/allbin/excserial"
)

// executeRoot runs rootCmd with args and returns what it printed
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// cobra falls back to os.Args on a nil slice
	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootShowsHelpWithTooFewArgs(t *testing.T) {
	for _, args := range [][]string{nil, {"COM7"}, {"COM7", "20"}} {
		opened := withFakePort(t, &fakePort{}, nil)

		out, err := executeRoot(t, args...)
		if err != nil {
			t.Errorf("args %q: unexpected error %v", args, err)
		}
		if !strings.Contains(out, "Usage:") {
			t.Errorf("args %q: help not printed:\n%s", args, out)
		}
		if len(*opened) != 0 {
			t.Errorf("args %q: opened %v", args, *opened)
		}
	}
}

func TestRootHelpIgnoresBrokenConfig(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, ".excserial.yaml"), []byte("baud: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("HOME", home)
	t.Cleanup(func() { cfgFile = "" })

	tests := []struct {
		name string
		args []string
	}{
		{"malformed default config", []string{"COM7"}},
		{"missing --config file", []string{"--config", filepath.Join(home, "missing.yaml"), "COM7", "20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opened := withFakePort(t, &fakePort{}, nil)

			out, err := executeRoot(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if !strings.Contains(out, "Usage:") {
				t.Errorf("help not printed:\n%s", out)
			}
			if len(*opened) != 0 {
				t.Errorf("opened %v", *opened)
			}
		})
	}
}

func TestRootRejectsBeforeOpening(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"frequency above 1000", []string{"COM7", "20", "1001"}, excserial.ErrInvalidRate},
		{"zero magnitude", []string{"COM7", "0", "10"}, excserial.ErrZeroValue},
		{"bad magnitude", []string{"COM7", "twenty", "10"}, nil},
		{"too many args", []string{"COM7", "20", "10", "extra"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opened := withFakePort(t, &fakePort{}, nil)

			_, err := executeRoot(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if len(*opened) != 0 {
				t.Errorf("opened %v before validating", *opened)
			}
		})
	}
}

func TestRootNegativeMagnitudeIsPositional(t *testing.T) {
	// Fail the first write so the run ends without needing a signal
	port := &fakePort{failOn: 1, failErr: errors.New("unplugged")}
	opened := withFakePort(t, port, nil)

	_, err := executeRoot(t, "COM7", "-20", "1000")
	if err == nil || !strings.Contains(err.Error(), "unplugged") {
		t.Fatalf("error = %v, want the write failure", err)
	}
	if len(*opened) != 1 {
		t.Fatalf("opened %v, want COM7 once", *opened)
	}
	if port.closes != 1 {
		t.Errorf("port closed %d times, want 1", port.closes)
	}
}
