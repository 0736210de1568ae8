package loader_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/chip8sim/emu"
	"github.com/sarchlab/chip8sim/loader"
)

var _ = Describe("ROM loading", func() {
	writeROM := func(data []byte) string {
		path := filepath.Join(GinkgoT().TempDir(), "program.ch8")
		ExpectWithOffset(1, os.WriteFile(path, data, 0o644)).To(Succeed())
		return path
	}

	Describe("Load", func() {
		It("should read a file into a program", func() {
			path := writeROM([]byte{0x60, 0x0A, 0x70, 0x05})

			program, err := loader.Load(path)

			Expect(err).To(BeNil())
			Expect(program.Path).To(Equal(path))
			Expect(program.Size()).To(Equal(4))
			Expect(program.Data).To(Equal([]byte{0x60, 0x0A, 0x70, 0x05}))
		})

		It("should fail on a missing file", func() {
			_, err := loader.Load(filepath.Join(GinkgoT().TempDir(), "missing.ch8"))

			Expect(err).To(MatchError(os.ErrNotExist))
		})

		It("should reject an empty file", func() {
			_, err := loader.Load(writeROM(nil))

			Expect(err).To(MatchError(emu.ErrROMEmpty))
		})

		It("should reject an oversized file", func() {
			_, err := loader.Load(writeROM(make([]byte, emu.MaxROMSize+1)))

			Expect(err).To(MatchError(emu.ErrROMTooLarge))
		})

		It("should accept a file of exactly the maximum size", func() {
			program, err := loader.Load(writeROM(make([]byte, emu.MaxROMSize)))

			Expect(err).To(BeNil())
			Expect(program.Size()).To(Equal(emu.MaxROMSize))
		})
	})

	Describe("LoadFrom", func() {
		It("should read an image from a reader", func() {
			data, err := loader.LoadFrom(bytes.NewReader([]byte{0x00, 0xE0}))

			Expect(err).To(BeNil())
			Expect(data).To(Equal([]byte{0x00, 0xE0}))
		})

		It("should reject an empty reader", func() {
			_, err := loader.LoadFrom(bytes.NewReader(nil))

			Expect(err).To(MatchError(emu.ErrROMEmpty))
		})

		It("should reject an oversized stream", func() {
			_, err := loader.LoadFrom(bytes.NewReader(make([]byte, emu.MaxROMSize+100)))

			Expect(err).To(MatchError(emu.ErrROMTooLarge))
		})
	})
})
