package insts

// Decoder decodes CHIP-8 instruction words into instructions.
type Decoder struct{}

// NewDecoder creates a new CHIP-8 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 16-bit CHIP-8 instruction word.
//
// The returned instruction always carries the raw word and the extracted
// operand fields, even when the encoding is not recognized (Op == OpUnknown).
func (d *Decoder) Decode(word uint16) *Instruction {
	inst := &Instruction{
		Op:   OpUnknown,
		Word: word,
		X:    uint8((word >> 8) & 0xF),
		Y:    uint8((word >> 4) & 0xF),
		N:    uint8(word & 0xF),
		NN:   uint8(word & 0xFF),
		NNN:  word & 0xFFF,
	}

	switch word >> 12 {
	case 0x0:
		d.decodeSystem(word, inst)
	case 0x1:
		inst.Op = OpJP
	case 0x2:
		inst.Op = OpCALL
	case 0x3:
		inst.Op = OpSEImm
	case 0x4:
		inst.Op = OpSNEImm
	case 0x5:
		if inst.N == 0 {
			inst.Op = OpSEReg
		}
	case 0x6:
		inst.Op = OpLDImm
	case 0x7:
		inst.Op = OpADDImm
	case 0x8:
		d.decodeArithmetic(word, inst)
	case 0x9:
		if inst.N == 0 {
			inst.Op = OpSNEReg
		}
	case 0xA:
		inst.Op = OpLDI
	case 0xB:
		inst.Op = OpJPV0
	case 0xC:
		inst.Op = OpRND
	case 0xD:
		inst.Op = OpDRW
	case 0xE:
		d.decodeKeySkip(word, inst)
	case 0xF:
		d.decodeMisc(word, inst)
	}

	return inst
}

// decodeSystem decodes the 0x0 family. Only the display-clear and return
// encodings are defined; the historical 0nnn machine-code call is not
// supported and decodes as unknown.
func (d *Decoder) decodeSystem(word uint16, inst *Instruction) {
	switch word {
	case 0x00E0:
		inst.Op = OpCLS
	case 0x00EE:
		inst.Op = OpRET
	}
}

// decodeArithmetic decodes the 0x8 family, selected by the low nibble.
func (d *Decoder) decodeArithmetic(word uint16, inst *Instruction) {
	switch word & 0xF {
	case 0x0:
		inst.Op = OpLDReg
	case 0x1:
		inst.Op = OpOR
	case 0x2:
		inst.Op = OpAND
	case 0x3:
		inst.Op = OpXOR
	case 0x4:
		inst.Op = OpADDReg
	case 0x5:
		inst.Op = OpSUB
	case 0x6:
		inst.Op = OpSHR
	case 0x7:
		inst.Op = OpSUBN
	case 0xE:
		inst.Op = OpSHL
	}
}

// decodeKeySkip decodes the 0xE family, selected by the low byte.
func (d *Decoder) decodeKeySkip(word uint16, inst *Instruction) {
	switch word & 0xFF {
	case 0x9E:
		inst.Op = OpSKP
	case 0xA1:
		inst.Op = OpSKNP
	}
}

// decodeMisc decodes the 0xF family, selected by the low byte.
func (d *Decoder) decodeMisc(word uint16, inst *Instruction) {
	switch word & 0xFF {
	case 0x07:
		inst.Op = OpLDVxDT
	case 0x0A:
		inst.Op = OpLDVxK
	case 0x15:
		inst.Op = OpLDDTVx
	case 0x18:
		inst.Op = OpLDSTVx
	case 0x1E:
		inst.Op = OpADDI
	case 0x29:
		inst.Op = OpLDF
	case 0x33:
		inst.Op = OpLDB
	case 0x55:
		inst.Op = OpLDIVx
	case 0x65:
		inst.Op = OpLDVxI
	}
}
