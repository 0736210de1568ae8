package emu

// NumRegisters is the number of general-purpose V registers.
const NumRegisters = 16

// FlagRegister is the index of VF, the carry/borrow/collision flag register.
const FlagRegister = 0xF

// ProgramStart is the address where loaded programs begin executing.
const ProgramStart = 0x200

// RegFile represents the CHIP-8 register file.
// It contains 16 general-purpose 8-bit registers (V0-VF), the 16-bit index
// register (I), and the program counter (PC). VF doubles as the implicit
// carry/borrow/collision flag.
type RegFile struct {
	// V holds general-purpose registers V0-VF.
	V [NumRegisters]uint8

	// I is the index register, masked to 12 bits on arithmetic.
	I uint16

	// PC is the program counter.
	PC uint16
}

// Reset zeroes all registers and sets the PC to the program start address.
func (r *RegFile) Reset() {
	r.V = [NumRegisters]uint8{}
	r.I = 0
	r.PC = ProgramStart
}

// SetFlag writes the VF flag register.
func (r *RegFile) SetFlag(v uint8) {
	r.V[FlagRegister] = v
}
