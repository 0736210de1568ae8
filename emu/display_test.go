package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/chip8sim/emu"
)

var _ = Describe("Display", func() {
	var e *emu.Emulator

	BeforeEach(func() {
		e = emu.NewEmulator()
	})

	// stepN runs n cycles, expecting each to succeed.
	stepN := func(n int) {
		for i := 0; i < n; i++ {
			result := e.Step()
			ExpectWithOffset(1, result.Err).To(BeNil())
		}
	}

	Describe("DRW", func() {
		It("should render the digit 0 glyph bit for bit", func() {
			// V0 = 0 (x), V1 = 0 (y); I = glyph 0; DRW V0, V1, 5.
			Expect(e.LoadROM(rom(0x6000, 0x6100, 0xF029, 0xD015))).To(Succeed())
			stepN(4)

			want := [5]byte{0xF0, 0x90, 0x90, 0x90, 0xF0}
			d := e.Display()
			for row, bits := range want {
				for col := 0; col < 8; col++ {
					lit := bits>>(7-col)&1 == 1
					Expect(d.Pixel(col, row)).To(Equal(lit),
						"pixel (%d, %d)", col, row)
				}
			}
			Expect(e.RegFile().V[0xF]).To(Equal(uint8(0)))
		})

		It("should report a collision and erase on redraw", func() {
			Expect(e.LoadROM(rom(0x6000, 0x6100, 0xF029, 0xD015, 0xD015))).To(Succeed())
			stepN(5)

			// XOR-plotting the same sprite twice cancels to a blank screen.
			Expect(e.RegFile().V[0xF]).To(Equal(uint8(1)))
			d := e.Display()
			for y := 0; y < emu.DisplayHeight; y++ {
				for x := 0; x < emu.DisplayWidth; x++ {
					Expect(d.Pixel(x, y)).To(BeFalse())
				}
			}
		})

		It("should wrap sprites across both edges", func() {
			// Draw at (62, 30): the glyph spills past the right and bottom
			// edges and reappears at the origin.
			Expect(e.LoadROM(rom(0x603E, 0x611E, 0xF029, 0xD015))).To(Succeed())
			stepN(4)

			d := e.Display()
			// Row 0 of the glyph (0xF0) lands at y=30: pixels 62, 63, 0, 1.
			Expect(d.Pixel(62, 30)).To(BeTrue())
			Expect(d.Pixel(63, 30)).To(BeTrue())
			Expect(d.Pixel(0, 30)).To(BeTrue())
			Expect(d.Pixel(1, 30)).To(BeTrue())
			// Row 3 of the glyph (0x90) wraps to y=1: pixels 62 and 1.
			Expect(d.Pixel(62, 1)).To(BeTrue())
			Expect(d.Pixel(63, 1)).To(BeFalse())
			Expect(d.Pixel(1, 1)).To(BeTrue())
		})

		It("should mark the display dirty", func() {
			Expect(e.LoadROM(rom(0x6000, 0x6100, 0xF029, 0xD015))).To(Succeed())

			stepN(3)
			Expect(e.Display().Dirty()).To(BeFalse())

			stepN(1)
			Expect(e.Display().Dirty()).To(BeTrue())
		})
	})

	Describe("CLS", func() {
		It("should blank the screen and mark it dirty", func() {
			Expect(e.LoadROM(rom(0x6000, 0x6100, 0xF029, 0xD015, 0x00E0))).To(Succeed())
			stepN(4)
			e.ConsumeFrame()
			Expect(e.Display().Dirty()).To(BeFalse())

			stepN(1)

			Expect(e.Display().Dirty()).To(BeTrue())
			Expect(e.Display().Pixel(0, 0)).To(BeFalse())
		})
	})

	Describe("ConsumeFrame", func() {
		It("should clear the dirty flag and snapshot the pixels", func() {
			Expect(e.LoadROM(rom(0x6000, 0x6100, 0xF029, 0xD015))).To(Succeed())
			stepN(4)

			frame := e.ConsumeFrame()
			Expect(frame[0][0]).To(BeTrue())
			Expect(e.Display().Dirty()).To(BeFalse())

			// A second consume without an intervening draw returns the same
			// pixels and leaves the flag clear.
			again := e.ConsumeFrame()
			Expect(again).To(Equal(frame))
			Expect(e.Display().Dirty()).To(BeFalse())
		})
	})
})
