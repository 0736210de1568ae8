package emu

import "errors"

var (
	// ErrROMTooLarge reports a ROM that does not fit between the program
	// start address and the end of memory.
	ErrROMTooLarge = errors.New("rom too large")

	// ErrROMEmpty reports an empty ROM image.
	ErrROMEmpty = errors.New("rom is empty")

	// ErrStackOverflow reports a subroutine call with the stack at capacity.
	ErrStackOverflow = errors.New("call stack overflow")

	// ErrStackUnderflow reports a return with an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")

	// ErrUnknownOpcode reports an unrecognized instruction encoding.
	// The fault is non-fatal: the PC has already advanced past the word.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrHalted reports a step attempt on a machine halted by a fatal fault.
	ErrHalted = errors.New("machine halted")

	// ErrKeyIndex reports a keypad index outside 0-15.
	ErrKeyIndex = errors.New("key index out of range")

	// ErrMaxCycles reports that the configured cycle limit was reached.
	ErrMaxCycles = errors.New("max cycles reached")
)
