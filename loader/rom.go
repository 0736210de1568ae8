// Package loader provides CHIP-8 ROM image loading.
//
// ROMs are headerless byte blobs executed verbatim from the program start
// address: no magic number, no checksum. The loader only validates size, so
// the machine is never handed an image it cannot hold.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/chip8sim/emu"
)

// Program represents a loaded ROM image ready for execution.
type Program struct {
	// Path is the file the image was read from, when known.
	Path string

	// Data is the raw program image, loaded at the program start address.
	Data []byte
}

// Size returns the image size in bytes.
func (p *Program) Size() int {
	return len(p.Data)
}

// Load reads and validates a ROM image from a file.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rom: %w", err)
	}
	defer f.Close()

	data, err := LoadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("load rom %s: %w", path, err)
	}

	return &Program{Path: path, Data: data}, nil
}

// LoadFrom reads and validates a ROM image from a reader.
//
// Images larger than the memory available past the program start address are
// rejected rather than truncated; a caller never ends up running half a ROM.
func LoadFrom(r io.Reader) ([]byte, error) {
	// Read one byte past the limit so oversize is detected without
	// slurping an arbitrarily large file.
	data, err := io.ReadAll(io.LimitReader(r, emu.MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("read rom: %w", err)
	}

	if len(data) == 0 {
		return nil, emu.ErrROMEmpty
	}
	if len(data) > emu.MaxROMSize {
		return nil, fmt.Errorf("%w: limit %d bytes", emu.ErrROMTooLarge, emu.MaxROMSize)
	}

	return data, nil
}
