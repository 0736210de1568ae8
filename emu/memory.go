package emu

import "fmt"

// MemorySize is the size of the CHIP-8 address space in bytes.
const MemorySize = 4096

// MaxROMSize is the largest ROM that fits between the program start address
// and the end of memory.
const MaxROMSize = MemorySize - ProgramStart

// GlyphSize is the size in bytes of one font glyph.
const GlyphSize = 5

// fontset holds the 16 built-in hexadecimal digit glyphs, 5 bytes each,
// stored at address 0x000.
var fontset = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory represents the 4096-byte CHIP-8 address space. Addresses
// 0x000-0x1FF hold the font table, 0x200 onward holds the loaded program.
// All accesses are masked to 12 bits, so reads and writes can never leave
// the 4096-byte region.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory creates a memory with the font table installed.
func NewMemory() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset clears all memory and rewrites the font table at address 0.
func (m *Memory) Reset() {
	m.data = [MemorySize]byte{}
	copy(m.data[:], fontset[:])
}

// Read8 reads the byte at addr. The address wraps to 12 bits.
func (m *Memory) Read8(addr uint16) byte {
	return m.data[addr&0xFFF]
}

// Write8 writes the byte at addr. The address wraps to 12 bits.
func (m *Memory) Write8(addr uint16, value byte) {
	m.data[addr&0xFFF] = value
}

// LoadROM copies a program image into memory at the program start address.
// Oversized images are rejected before any byte is copied, so a failed load
// leaves memory untouched.
func (m *Memory) LoadROM(data []byte) error {
	if len(data) == 0 {
		return ErrROMEmpty
	}
	if len(data) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrROMTooLarge, len(data), MaxROMSize)
	}

	copy(m.data[ProgramStart:], data)

	return nil
}

// GlyphAddr returns the address of the font glyph for the given digit value.
func GlyphAddr(digit uint8) uint16 {
	return uint16(digit) * GlyphSize
}
