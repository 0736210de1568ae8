package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chip8sim",
	Short: "A CHIP-8 virtual machine",
	Long: `chip8sim interprets CHIP-8 bytecode programs: a 4KB virtual machine with
16 registers, a 64x32 monochrome display, two 60 Hz countdown timers and a
16-key keypad.

ROMs are raw byte blobs loaded at address 0x200. Run one in the terminal with
"chip8sim run", or inspect it with "chip8sim disasm".`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chip8sim.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "also write logs to this file (JSON)")

	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".chip8sim" (without extension).
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".chip8sim")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// logLevel parses the configured log level, defaulting to info.
func logLevel() slog.Level {
	switch strings.ToLower(viper.GetString("log-level")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger builds the CLI logger. Console output goes to consoleOut as text;
// when a log file is configured, records fan out to it as JSON as well.
// Commands that hand the terminal to the tcell screen pass io.Discard so log
// lines cannot corrupt the display.
func newLogger(consoleOut io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: logLevel()}
	handler := slog.Handler(slog.NewTextHandler(consoleOut, opts))

	if path := viper.GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		handler = slogmulti.Fanout(handler, slog.NewJSONHandler(f, opts))
	}

	return slog.New(handler), nil
}
