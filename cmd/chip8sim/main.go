// Package main provides the entry point for chip8sim.
// chip8sim is a CHIP-8 virtual machine with a terminal front end.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
