package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sarchlab/chip8sim/emu"
	"github.com/sarchlab/chip8sim/host"
	"github.com/sarchlab/chip8sim/loader"
)

var runCmd = &cobra.Command{
	Use:   "run <rom>",
	Short: "Run a CHIP-8 ROM in the terminal",
	Long: `Loads a ROM and runs it against the terminal at a fixed 60 Hz frame rate,
executing a configurable number of machine cycles per frame.

Keypad mapping (CHIP-8 key in parentheses):
  1(1) 2(2) 3(3) 4(C)
  q(4) w(5) e(6) r(D)
  a(7) s(8) d(9) f(E)
  z(A) x(0) c(B) v(F)

Press Esc or Ctrl-C to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("cycles-per-frame", "n", host.DefaultCyclesPerFrame,
		"machine cycles executed per 60 Hz frame")
	runCmd.Flags().Bool("legacy-timers", false,
		"decrement timers once per cycle instead of once per frame, like classic interpreters")

	_ = viper.BindPFlag("cycles-per-frame", runCmd.Flags().Lookup("cycles-per-frame"))
	_ = viper.BindPFlag("legacy-timers", runCmd.Flags().Lookup("legacy-timers"))
}

func runRun(cmd *cobra.Command, args []string) error {
	prog, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	// The tcell screen owns the terminal while the machine runs; console
	// logging is discarded and diagnostics go to the log file if one is set.
	logger, err := newLogger(io.Discard)
	if err != nil {
		return err
	}

	cycles := viper.GetInt("cycles-per-frame")
	divider := cycles
	if viper.GetBool("legacy-timers") {
		divider = 1
	}

	machine := emu.NewEmulator(
		emu.WithLogger(logger.With("component", "emu")),
		emu.WithTimerDivider(divider),
	)
	if err := machine.LoadROM(prog.Data); err != nil {
		return err
	}

	h, err := host.New(machine,
		host.WithLogger(logger.With("component", "host")),
		host.WithCyclesPerFrame(cycles),
	)
	if err != nil {
		return err
	}

	logger.Info("running rom", "path", prog.Path, "bytes", prog.Size())

	return h.Run()
}
