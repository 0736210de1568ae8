package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sarchlab/chip8sim/emu"
	"github.com/sarchlab/chip8sim/insts"
	"github.com/sarchlab/chip8sim/loader"
)

// Listing colors.
var (
	colorAddr  = color.New(color.FgCyan)
	colorWord  = color.New(color.FgMagenta)
	colorInstr = color.New(color.FgYellow)
	colorData  = color.New(color.FgHiBlack)
)

var disasmCmd = &cobra.Command{
	Use:   "disasm <rom>",
	Short: "Disassemble a CHIP-8 ROM",
	Long: `Prints a disassembly listing of a ROM: load address, raw instruction word
and mnemonic for each 2-byte pair, starting at 0x200.

Words that match no defined encoding are listed as raw data. CHIP-8 ROMs mix
code and sprite data freely, so data words are expected in most programs.`,
	Args: cobra.ExactArgs(1),
	RunE: runDisasm,
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}

func runDisasm(cmd *cobra.Command, args []string) error {
	prog, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	decoder := insts.NewDecoder()
	out := cmd.OutOrStdout()

	for i := 0; i+1 < len(prog.Data); i += 2 {
		word := uint16(prog.Data[i])<<8 | uint16(prog.Data[i+1])
		inst := decoder.Decode(word)

		text := colorInstr.Sprint(inst.String())
		if inst.Op == insts.OpUnknown {
			text = colorData.Sprint(inst.String())
		}

		fmt.Fprintf(out, "%s  %s  %s\n",
			colorAddr.Sprintf("0x%03X", emu.ProgramStart+i),
			colorWord.Sprintf("%04X", word),
			text)
	}

	// A trailing odd byte cannot be an instruction; list it as data.
	if len(prog.Data)%2 == 1 {
		last := len(prog.Data) - 1
		fmt.Fprintf(out, "%s  %s  %s\n",
			colorAddr.Sprintf("0x%03X", emu.ProgramStart+last),
			colorWord.Sprintf("%02X  ", prog.Data[last]),
			colorData.Sprintf(".byte 0x%02X", prog.Data[last]))
	}

	return nil
}
