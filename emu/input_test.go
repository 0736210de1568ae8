package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/chip8sim/emu"
)

var _ = Describe("Keypad input", func() {
	var e *emu.Emulator

	BeforeEach(func() {
		e = emu.NewEmulator()
	})

	Describe("SetKey", func() {
		It("should record presses and releases", func() {
			Expect(e.SetKey(0xA, true)).To(Succeed())
			Expect(e.KeyDown(0xA)).To(BeTrue())

			Expect(e.SetKey(0xA, false)).To(Succeed())
			Expect(e.KeyDown(0xA)).To(BeFalse())
		})

		It("should reject out-of-range indexes", func() {
			Expect(e.SetKey(16, true)).To(MatchError(emu.ErrKeyIndex))
		})
	})

	Describe("SKP and SKNP", func() {
		It("should skip on SKP only while the key is down", func() {
			Expect(e.LoadROM(rom(0x6005, 0xE09E))).To(Succeed())
			Expect(e.SetKey(5, true)).To(Succeed())

			e.Step()
			e.Step()

			Expect(e.RegFile().PC).To(Equal(uint16(0x206)))
		})

		It("should not skip on SKP while the key is up", func() {
			Expect(e.LoadROM(rom(0x6005, 0xE09E))).To(Succeed())

			e.Step()
			e.Step()

			Expect(e.RegFile().PC).To(Equal(uint16(0x204)))
		})

		It("should skip on SKNP while the key is up", func() {
			Expect(e.LoadROM(rom(0x6005, 0xE0A1))).To(Succeed())

			e.Step()
			e.Step()

			Expect(e.RegFile().PC).To(Equal(uint16(0x206)))
		})
	})

	Describe("blocking key wait (Fx0A)", func() {
		BeforeEach(func() {
			Expect(e.LoadROM(rom(0xF30A))).To(Succeed())
		})

		It("should hold the PC on the instruction until a key arrives", func() {
			for i := 0; i < 5; i++ {
				result := e.Step()
				Expect(result.Err).To(BeNil())
				Expect(e.RegFile().PC).To(Equal(uint16(0x200)))
			}
		})

		It("should keep the timers ticking while waiting", func() {
			e.Timers().Delay = 3

			e.Step()
			e.Step()

			Expect(e.Timers().Delay).To(Equal(uint8(1)))
		})

		It("should latch the lowest pressed key and move on", func() {
			e.Step()
			Expect(e.RegFile().PC).To(Equal(uint16(0x200)))

			Expect(e.SetKey(0xC, true)).To(Succeed())
			Expect(e.SetKey(0x7, true)).To(Succeed())
			e.Step()

			Expect(e.RegFile().V[3]).To(Equal(uint8(0x7)))
			Expect(e.RegFile().PC).To(Equal(uint16(0x202)))
		})
	})
})
