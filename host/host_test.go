package host_test

import (
	"github.com/gdamore/tcell/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/chip8sim/emu"
	"github.com/sarchlab/chip8sim/host"
)

var _ = Describe("Host", func() {
	var (
		machine *emu.Emulator
		sim     tcell.SimulationScreen
	)

	BeforeEach(func() {
		machine = emu.NewEmulator()
		sim = tcell.NewSimulationScreen("")
		Expect(sim.Init()).To(Succeed())
		sim.SetSize(emu.DisplayWidth*2, emu.DisplayHeight)
	})

	// rom builds a program image from big-endian instruction words.
	rom := func(words ...uint16) []byte {
		bytes := make([]byte, 0, len(words)*2)
		for _, w := range words {
			bytes = append(bytes, byte(w>>8), byte(w))
		}
		return bytes
	}

	// cellBackground returns the background color of the simulation cell at
	// (x, y).
	cellBackground := func(x, y int) tcell.Color {
		cells, width, _ := sim.GetContents()
		_, bg, _ := cells[y*width+x].Style.Decompose()
		return bg
	}

	Describe("RunFrame", func() {
		It("should draw lit pixels as white cell pairs", func() {
			// Render the digit 0 glyph at the origin.
			Expect(machine.LoadROM(rom(0x6000, 0x6100, 0xF029, 0xD015))).To(Succeed())
			h, err := host.New(machine,
				host.WithScreen(sim),
				host.WithCyclesPerFrame(4))
			Expect(err).To(BeNil())

			Expect(h.RunFrame()).To(Succeed())

			// Pixel (0, 0) is lit: both terminal cells of the pair are white.
			Expect(cellBackground(0, 0)).To(Equal(tcell.ColorWhite))
			Expect(cellBackground(1, 0)).To(Equal(tcell.ColorWhite))
			// Pixel (4, 0) is unlit (glyph row 0 is 0xF0).
			Expect(cellBackground(8, 0)).To(Equal(tcell.ColorBlack))
			// The glyph hole at (1, 1) stays black (row 1 is 0x90).
			Expect(cellBackground(2, 1)).To(Equal(tcell.ColorBlack))
		})

		It("should surface a fatal machine fault", func() {
			Expect(machine.LoadROM(rom(0x00EE))).To(Succeed())
			h, err := host.New(machine,
				host.WithScreen(sim),
				host.WithCyclesPerFrame(1))
			Expect(err).To(BeNil())

			Expect(h.RunFrame()).To(MatchError(emu.ErrStackUnderflow))
		})

		It("should keep running across decode faults", func() {
			Expect(machine.LoadROM(rom(0xFFFF, 0x600A))).To(Succeed())
			h, err := host.New(machine,
				host.WithScreen(sim),
				host.WithCyclesPerFrame(2))
			Expect(err).To(BeNil())

			Expect(h.RunFrame()).To(Succeed())
			Expect(machine.RegFile().V[0]).To(Equal(uint8(0x0A)))
		})

		It("should consume the frame so a clean frame skips the redraw", func() {
			Expect(machine.LoadROM(rom(0x6000, 0x6100, 0xF029, 0xD015, 0x1208))).To(Succeed())
			h, err := host.New(machine,
				host.WithScreen(sim),
				host.WithCyclesPerFrame(5))
			Expect(err).To(BeNil())

			Expect(h.RunFrame()).To(Succeed())
			Expect(machine.Display().Dirty()).To(BeFalse())

			// The next frame only spins on the jump; nothing new to draw.
			Expect(h.RunFrame()).To(Succeed())
			Expect(machine.Display().Dirty()).To(BeFalse())
			Expect(cellBackground(0, 0)).To(Equal(tcell.ColorWhite))
		})
	})
})
