// Package insts provides CHIP-8 instruction definitions and decoding.
//
// This package implements decoding of 16-bit CHIP-8 instruction words into
// structured instruction representations. The high nibble of the word selects
// an instruction family; for families 0x0, 0x8, 0xE and 0xF a secondary
// nibble or byte selects the exact operation.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x600A) // LD V0, 0x0A
//	fmt.Printf("Op: %v, X: %d, NN: 0x%02X\n", inst.Op, inst.X, inst.NN)
package insts

import "fmt"

// Op represents a CHIP-8 operation.
type Op uint8

// The 35 CHIP-8 operations.
const (
	OpUnknown Op = iota
	OpCLS        // 00E0: clear display
	OpRET        // 00EE: return from subroutine
	OpJP         // 1nnn: jump to nnn
	OpCALL       // 2nnn: call subroutine at nnn
	OpSEImm      // 3xnn: skip if Vx == nn
	OpSNEImm     // 4xnn: skip if Vx != nn
	OpSEReg      // 5xy0: skip if Vx == Vy
	OpLDImm      // 6xnn: Vx = nn
	OpADDImm     // 7xnn: Vx += nn
	OpLDReg      // 8xy0: Vx = Vy
	OpOR         // 8xy1: Vx |= Vy
	OpAND        // 8xy2: Vx &= Vy
	OpXOR        // 8xy3: Vx ^= Vy
	OpADDReg     // 8xy4: Vx += Vy, VF = carry
	OpSUB        // 8xy5: Vx -= Vy, VF = not borrow
	OpSHR        // 8xy6: Vx >>= 1, VF = shifted-out bit
	OpSUBN       // 8xy7: Vx = Vy - Vx, VF = not borrow
	OpSHL        // 8xyE: Vx <<= 1, VF = shifted-out bit
	OpSNEReg     // 9xy0: skip if Vx != Vy
	OpLDI        // Annn: I = nnn
	OpJPV0       // Bnnn: jump to nnn + V0
	OpRND        // Cxnn: Vx = random byte & nn
	OpDRW        // Dxyn: draw n-row sprite at (Vx, Vy), VF = collision
	OpSKP        // Ex9E: skip if key Vx pressed
	OpSKNP       // ExA1: skip if key Vx not pressed
	OpLDVxDT     // Fx07: Vx = delay timer
	OpLDVxK      // Fx0A: wait for key press, Vx = key
	OpLDDTVx     // Fx15: delay timer = Vx
	OpLDSTVx     // Fx18: sound timer = Vx
	OpADDI       // Fx1E: I += Vx
	OpLDF        // Fx29: I = font glyph address for digit Vx
	OpLDB        // Fx33: memory[I..I+2] = BCD of Vx
	OpLDIVx      // Fx55: memory[I..] = V0..Vx, I += x+1
	OpLDVxI      // Fx65: V0..Vx = memory[I..], I += x+1
)

// Instruction represents a decoded CHIP-8 instruction.
//
// The operand fields are extracted eagerly from the instruction word during
// decoding; which of them are meaningful depends on Op.
type Instruction struct {
	// Op is the decoded operation. OpUnknown marks an unrecognized encoding.
	Op Op

	// Word is the raw 16-bit instruction word.
	Word uint16

	// X is the first register operand (bits 8-11).
	X uint8

	// Y is the second register operand (bits 4-7).
	Y uint8

	// N is the low nibble (bits 0-3).
	N uint8

	// NN is the low byte (bits 0-7).
	NN uint8

	// NNN is the 12-bit address operand (bits 0-11).
	NNN uint16
}

// String returns the instruction in conventional CHIP-8 assembly syntax.
// Unrecognized encodings render as a raw data word.
func (i *Instruction) String() string {
	switch i.Op {
	case OpCLS:
		return "CLS"
	case OpRET:
		return "RET"
	case OpJP:
		return fmt.Sprintf("JP 0x%03X", i.NNN)
	case OpCALL:
		return fmt.Sprintf("CALL 0x%03X", i.NNN)
	case OpSEImm:
		return fmt.Sprintf("SE V%X, 0x%02X", i.X, i.NN)
	case OpSNEImm:
		return fmt.Sprintf("SNE V%X, 0x%02X", i.X, i.NN)
	case OpSEReg:
		return fmt.Sprintf("SE V%X, V%X", i.X, i.Y)
	case OpLDImm:
		return fmt.Sprintf("LD V%X, 0x%02X", i.X, i.NN)
	case OpADDImm:
		return fmt.Sprintf("ADD V%X, 0x%02X", i.X, i.NN)
	case OpLDReg:
		return fmt.Sprintf("LD V%X, V%X", i.X, i.Y)
	case OpOR:
		return fmt.Sprintf("OR V%X, V%X", i.X, i.Y)
	case OpAND:
		return fmt.Sprintf("AND V%X, V%X", i.X, i.Y)
	case OpXOR:
		return fmt.Sprintf("XOR V%X, V%X", i.X, i.Y)
	case OpADDReg:
		return fmt.Sprintf("ADD V%X, V%X", i.X, i.Y)
	case OpSUB:
		return fmt.Sprintf("SUB V%X, V%X", i.X, i.Y)
	case OpSHR:
		return fmt.Sprintf("SHR V%X", i.X)
	case OpSUBN:
		return fmt.Sprintf("SUBN V%X, V%X", i.X, i.Y)
	case OpSHL:
		return fmt.Sprintf("SHL V%X", i.X)
	case OpSNEReg:
		return fmt.Sprintf("SNE V%X, V%X", i.X, i.Y)
	case OpLDI:
		return fmt.Sprintf("LD I, 0x%03X", i.NNN)
	case OpJPV0:
		return fmt.Sprintf("JP V0, 0x%03X", i.NNN)
	case OpRND:
		return fmt.Sprintf("RND V%X, 0x%02X", i.X, i.NN)
	case OpDRW:
		return fmt.Sprintf("DRW V%X, V%X, %d", i.X, i.Y, i.N)
	case OpSKP:
		return fmt.Sprintf("SKP V%X", i.X)
	case OpSKNP:
		return fmt.Sprintf("SKNP V%X", i.X)
	case OpLDVxDT:
		return fmt.Sprintf("LD V%X, DT", i.X)
	case OpLDVxK:
		return fmt.Sprintf("LD V%X, K", i.X)
	case OpLDDTVx:
		return fmt.Sprintf("LD DT, V%X", i.X)
	case OpLDSTVx:
		return fmt.Sprintf("LD ST, V%X", i.X)
	case OpADDI:
		return fmt.Sprintf("ADD I, V%X", i.X)
	case OpLDF:
		return fmt.Sprintf("LD F, V%X", i.X)
	case OpLDB:
		return fmt.Sprintf("LD B, V%X", i.X)
	case OpLDIVx:
		return fmt.Sprintf("LD [I], V%X", i.X)
	case OpLDVxI:
		return fmt.Sprintf("LD V%X, [I]", i.X)
	default:
		return fmt.Sprintf(".word 0x%04X", i.Word)
	}
}
