/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/allbin/excserial"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd sends the pulse train; list and info hang off it
var rootCmd = &cobra.Command{
	Use:   "excserial [flags] <port> <magnitude> <frequency_hz>",
	Short: "Send an alternating +/- test signal to an ECU over a serial port",
	Long: `Send an alternating +/- test signal to an ECU over a serial port.

Opens the port at 115200 8N1 and writes "#v,v,v,v;" every 1000/frequency ms,
flipping the sign of v after each frame, until Ctrl+C. A running count of
frames sent is printed every couple of seconds.

The frequency must be between 1 and 1000 Hz. Flags go before the port name
so that a negative magnitude is not read as a flag.

Example usage:
  excserial COM3 10 500
  excserial /dev/ttyUSB0 20 100
  excserial --pacing hybrid --tui /dev/ttyUSB0 -20 1000`,
	Args:          cobra.MaximumNArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Help never depends on a readable config
		if !cmd.HasParent() && len(args) < 3 {
			return nil
		}
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 3 {
			return cmd.Help()
		}

		pa, err := parseArgs(args)
		if err != nil {
			return err
		}

		s, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}

		var stop excserial.StopFlag
		release := excserial.NotifyStop(&stop)
		defer release()

		return runPulse(cmd.OutOrStdout(), pa, s, &stop)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.excserial.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug output to stderr")

	rootCmd.Flags().IntP("baud", "b", excserial.DefaultConfig().BaudRate, "Baud rate")
	rootCmd.Flags().String("backend", "native", "Port driver: native, portable")
	rootCmd.Flags().String("pacing", "spin", "Wait policy between frames: spin, hybrid")
	rootCmd.Flags().Duration("status-interval", excserial.DefaultStatusInterval, "Minimum time between status lines")
	rootCmd.Flags().Bool("tui", false, "Show a full-screen dashboard instead of the status line")

	// Everything after the port name is positional
	rootCmd.Flags().SetInterspersed(false)

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("baud", rootCmd.Flags().Lookup("baud"))
	viper.BindPFlag("backend", rootCmd.Flags().Lookup("backend"))
	viper.BindPFlag("pacing", rootCmd.Flags().Lookup("pacing"))
	viper.BindPFlag("status-interval", rootCmd.Flags().Lookup("status-interval"))
	viper.BindPFlag("tui", rootCmd.Flags().Lookup("tui"))

	setDefaults(viper.GetViper())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".excserial")
	}

	viper.SetEnvPrefix("EXCSERIAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("could not read config: %w", err)
		}
		return nil
	}
	debugf("Using config file: %s", viper.ConfigFileUsed())
	return nil
}

// debugf prints a [DEBUG] line to stderr when --verbose is set
func debugf(format string, args ...any) {
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}
