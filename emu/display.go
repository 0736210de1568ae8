package emu

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Frame is a snapshot of the framebuffer, indexed [y][x]. True means lit.
type Frame [DisplayHeight][DisplayWidth]bool

// Display is the monochrome 64x32 XOR-plotted framebuffer. A dirty flag
// records whether a redraw is owed to the host since the last consumed frame.
type Display struct {
	pixels Frame
	dirty  bool
}

// Clear unlights every pixel and marks the display dirty.
func (d *Display) Clear() {
	d.pixels = Frame{}
	d.dirty = true
}

// Reset returns the display to its initial state: all pixels unlit, not dirty.
func (d *Display) Reset() {
	d.pixels = Frame{}
	d.dirty = false
}

// Sprite XOR-plots an 8-bit-wide sprite at (x, y), wrapping both axes.
// It returns true if any previously lit pixel was cleared (a collision) and
// marks the display dirty.
func (d *Display) Sprite(x, y uint8, rows []byte) bool {
	collision := false

	for row, bits := range rows {
		py := (int(y) + row) % DisplayHeight
		for col := 0; col < 8; col++ {
			if bits>>(7-col)&1 == 0 {
				continue
			}
			px := (int(x) + col) % DisplayWidth
			if d.pixels[py][px] {
				collision = true
			}
			d.pixels[py][px] = !d.pixels[py][px]
		}
	}

	d.dirty = true

	return collision
}

// Pixel reports whether the pixel at (x, y) is lit.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels[y][x]
}

// Dirty reports whether the framebuffer changed since the last consumed frame.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ConsumeFrame returns the current framebuffer and clears the dirty flag.
// The returned frame always reflects the latest state at call time, so
// consuming twice without an intervening draw yields identical frames.
func (d *Display) ConsumeFrame() Frame {
	d.dirty = false
	return d.pixels
}
