// Package emu provides the CHIP-8 interpreter core.
package emu

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/sarchlab/chip8sim/insts"
)

// StepResult represents the result of executing a single machine cycle.
type StepResult struct {
	// Tone is true if the sound timer transitioned to zero this cycle,
	// requesting a one-shot tone from the host.
	Tone bool

	// Halted is true if this cycle hit a fatal fault (or the machine was
	// already halted). A halted machine refuses further steps until Reset.
	Halted bool

	// Err is set if a fault occurred during execution. Decode faults are
	// non-fatal (Halted stays false) and execution may continue.
	Err error
}

// Emulator executes CHIP-8 programs.
//
// The emulator is single-threaded and synchronous: Step runs one full
// fetch-decode-execute-timer cycle to completion. The host owns external
// timing and drives the machine through Step, SetKey, LoadROM, Reset and
// ConsumeFrame; no entry point may be called concurrently with another.
type Emulator struct {
	regFile *RegFile
	memory  *Memory
	stack   *Stack
	display *Display
	keypad  *Keypad
	timers  *Timers
	decoder *insts.Decoder

	rng    *rand.Rand
	logger *slog.Logger

	halted       bool
	timerDivider int
	cycleCount   uint64
	maxCycles    uint64 // 0 means no limit
}

// Option is a functional option for configuring the Emulator.
type Option func(*Emulator)

// WithLogger sets the logger used for fault and lifecycle diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Emulator) {
		e.logger = logger
	}
}

// WithRandSource sets the randomness source used by the RND opcode.
// Tests use a fixed seed for reproducible draws.
func WithRandSource(src rand.Source) Option {
	return func(e *Emulator) {
		e.rng = rand.New(src)
	}
}

// WithTimerDivider makes the timers decrement once every n cycles instead of
// every cycle. Hosts running n cycles per 60 Hz frame pass n here to get true
// 60 Hz timers.
func WithTimerDivider(n int) Option {
	return func(e *Emulator) {
		e.timerDivider = n
	}
}

// WithMaxCycles sets the maximum number of cycles to execute.
// A value of 0 means no limit.
func WithMaxCycles(max uint64) Option {
	return func(e *Emulator) {
		e.maxCycles = max
	}
}

// NewEmulator creates a new CHIP-8 emulator in its reset state: cleared
// memory with the font table installed, zeroed registers, timers and stack,
// and PC at the program start address.
func NewEmulator(opts ...Option) *Emulator {
	e := &Emulator{
		regFile:      &RegFile{},
		memory:       NewMemory(),
		stack:        &Stack{},
		display:      &Display{},
		keypad:       &Keypad{},
		decoder:      insts.NewDecoder(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:       slog.New(slog.DiscardHandler),
		timerDivider: 1,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.timers = NewTimers(e.timerDivider)
	e.regFile.PC = ProgramStart

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// Display returns the emulator's framebuffer.
func (e *Emulator) Display() *Display {
	return e.display
}

// Timers returns the emulator's delay and sound timers.
func (e *Emulator) Timers() *Timers {
	return e.timers
}

// CycleCount returns the number of cycles executed since the last reset.
func (e *Emulator) CycleCount() uint64 {
	return e.cycleCount
}

// Halted reports whether a fatal fault has halted the machine.
func (e *Emulator) Halted() bool {
	return e.halted
}

// Reset returns the machine to its initial state: cleared memory with the
// font table installed, zeroed registers, timers, keypad and stack, a blank
// framebuffer, and PC at the program start address.
func (e *Emulator) Reset() {
	e.memory.Reset()
	e.regFile.Reset()
	e.stack.Reset()
	e.display.Reset()
	e.keypad.Reset()
	e.timers.Reset()
	e.halted = false
	e.cycleCount = 0

	e.logger.Debug("machine reset")
}

// LoadROM copies a program image into memory at the program start address.
// Oversized or empty images are rejected and the machine stays in its
// pre-load state; a program is never partially loaded.
func (e *Emulator) LoadROM(data []byte) error {
	if err := e.memory.LoadROM(data); err != nil {
		return err
	}

	e.logger.Debug("rom loaded", "bytes", len(data))

	return nil
}

// SetKey records a key press or release. The index must be 0-15.
func (e *Emulator) SetKey(index uint8, pressed bool) error {
	return e.keypad.Set(index, pressed)
}

// KeyDown reports whether the key is currently pressed.
func (e *Emulator) KeyDown(index uint8) bool {
	return e.keypad.Down(index)
}

// ConsumeFrame returns the current framebuffer and clears the dirty flag.
func (e *Emulator) ConsumeFrame() Frame {
	return e.display.ConsumeFrame()
}

// Step executes exactly one fetch-decode-execute-timer cycle.
//
// Faults are classified by the error taxonomy: decode faults are reported in
// the result but leave the machine runnable (the PC has already advanced past
// the bad word); stack faults halt the machine, and every later Step returns
// ErrHalted until Reset.
func (e *Emulator) Step() StepResult {
	if e.halted {
		return StepResult{Halted: true, Err: ErrHalted}
	}

	if e.maxCycles > 0 && e.cycleCount >= e.maxCycles {
		return StepResult{Err: ErrMaxCycles}
	}

	// 1. Fetch: big-endian combine the two bytes at PC, advance PC first so
	// jump and call opcodes overwrite the already-advanced value.
	pc := e.regFile.PC
	word := uint16(e.memory.Read8(pc))<<8 | uint16(e.memory.Read8(pc+1))
	e.regFile.PC = pc + 2

	// 2. Decode.
	inst := e.decoder.Decode(word)

	// 3. Execute.
	err := e.execute(inst)
	e.cycleCount++

	if err != nil {
		if inst.Op == insts.OpUnknown {
			e.logger.Warn("decode fault",
				"word", fmt.Sprintf("0x%04X", word),
				"pc", fmt.Sprintf("0x%03X", pc))
		} else {
			e.halted = true
			e.logger.Error("fatal fault",
				"err", err,
				"inst", inst.String(),
				"pc", fmt.Sprintf("0x%03X", pc))
		}
	}

	// 4. Timer tick.
	tone := e.timers.Tick()

	return StepResult{Tone: tone, Halted: e.halted, Err: err}
}

// Run steps the machine until a fatal fault halts it or the configured cycle
// limit is reached. Decode faults are reported through the logger and skipped.
// Returns nil when the cycle limit stopped execution.
func (e *Emulator) Run() error {
	for {
		result := e.Step()
		if result.Err == nil {
			continue
		}
		if result.Halted {
			return result.Err
		}
		if errors.Is(result.Err, ErrMaxCycles) {
			return nil
		}
	}
}

// execute applies a decoded instruction to the machine state.
func (e *Emulator) execute(inst *insts.Instruction) error {
	v := &e.regFile.V

	switch inst.Op {
	case insts.OpCLS:
		e.display.Clear()

	case insts.OpRET:
		addr, err := e.stack.Pop()
		if err != nil {
			return err
		}
		e.regFile.PC = addr

	case insts.OpJP:
		e.regFile.PC = inst.NNN

	case insts.OpCALL:
		if err := e.stack.Push(e.regFile.PC); err != nil {
			return err
		}
		e.regFile.PC = inst.NNN

	case insts.OpSEImm:
		if v[inst.X] == inst.NN {
			e.skip()
		}

	case insts.OpSNEImm:
		if v[inst.X] != inst.NN {
			e.skip()
		}

	case insts.OpSEReg:
		if v[inst.X] == v[inst.Y] {
			e.skip()
		}

	case insts.OpLDImm:
		v[inst.X] = inst.NN

	case insts.OpADDImm:
		v[inst.X] += inst.NN

	case insts.OpLDReg:
		v[inst.X] = v[inst.Y]

	case insts.OpOR:
		v[inst.X] |= v[inst.Y]

	case insts.OpAND:
		v[inst.X] &= v[inst.Y]

	case insts.OpXOR:
		v[inst.X] ^= v[inst.Y]

	case insts.OpADDReg:
		sum := uint16(v[inst.X]) + uint16(v[inst.Y])
		v[inst.X] = uint8(sum)
		e.setFlag(sum > 0xFF)

	case insts.OpSUB:
		noBorrow := v[inst.X] >= v[inst.Y]
		v[inst.X] -= v[inst.Y]
		e.setFlag(noBorrow)

	case insts.OpSHR:
		bit := v[inst.X] & 1
		v[inst.X] >>= 1
		e.regFile.SetFlag(bit)

	case insts.OpSUBN:
		noBorrow := v[inst.Y] >= v[inst.X]
		v[inst.X] = v[inst.Y] - v[inst.X]
		e.setFlag(noBorrow)

	case insts.OpSHL:
		bit := v[inst.X] >> 7
		v[inst.X] <<= 1
		e.regFile.SetFlag(bit)

	case insts.OpSNEReg:
		if v[inst.X] != v[inst.Y] {
			e.skip()
		}

	case insts.OpLDI:
		e.regFile.I = inst.NNN

	case insts.OpJPV0:
		e.regFile.PC = (inst.NNN + uint16(v[0])) & 0xFFF

	case insts.OpRND:
		v[inst.X] = uint8(e.rng.Intn(256)) & inst.NN

	case insts.OpDRW:
		e.draw(inst)

	case insts.OpSKP:
		if e.keypad.Down(v[inst.X]) {
			e.skip()
		}

	case insts.OpSKNP:
		if !e.keypad.Down(v[inst.X]) {
			e.skip()
		}

	case insts.OpLDVxDT:
		v[inst.X] = e.timers.Delay

	case insts.OpLDVxK:
		// Blocking wait via PC regression: without a pressed key the PC
		// steps back onto this instruction, so control still returns to
		// the host every cycle and timers keep ticking.
		if key, ok := e.keypad.FirstDown(); ok {
			v[inst.X] = key
		} else {
			e.regFile.PC -= 2
		}

	case insts.OpLDDTVx:
		e.timers.Delay = v[inst.X]

	case insts.OpLDSTVx:
		e.timers.Sound = v[inst.X]

	case insts.OpADDI:
		e.regFile.I = (e.regFile.I + uint16(v[inst.X])) & 0xFFF

	case insts.OpLDF:
		e.regFile.I = GlyphAddr(v[inst.X])

	case insts.OpLDB:
		e.memory.Write8(e.regFile.I, v[inst.X]/100)
		e.memory.Write8(e.regFile.I+1, v[inst.X]%100/10)
		e.memory.Write8(e.regFile.I+2, v[inst.X]%10)

	case insts.OpLDIVx:
		for i := uint16(0); i <= uint16(inst.X); i++ {
			e.memory.Write8(e.regFile.I+i, v[i])
		}
		e.regFile.I = (e.regFile.I + uint16(inst.X) + 1) & 0xFFF

	case insts.OpLDVxI:
		for i := uint16(0); i <= uint16(inst.X); i++ {
			v[i] = e.memory.Read8(e.regFile.I + i)
		}
		e.regFile.I = (e.regFile.I + uint16(inst.X) + 1) & 0xFFF

	default:
		return fmt.Errorf("%w: 0x%04X", ErrUnknownOpcode, inst.Word)
	}

	return nil
}

// skip advances the PC past the next instruction.
func (e *Emulator) skip() {
	e.regFile.PC += 2
}

// setFlag writes VF as 1 or 0.
func (e *Emulator) setFlag(set bool) {
	if set {
		e.regFile.SetFlag(1)
	} else {
		e.regFile.SetFlag(0)
	}
}

// draw executes DRW: XOR-plot an n-row sprite from memory[I..I+n) at
// (Vx, Vy), setting VF to 1 on collision.
func (e *Emulator) draw(inst *insts.Instruction) {
	rows := make([]byte, inst.N)
	for i := range rows {
		rows[i] = e.memory.Read8(e.regFile.I + uint16(i))
	}

	collision := e.display.Sprite(e.regFile.V[inst.X], e.regFile.V[inst.Y], rows)
	e.setFlag(collision)
}
