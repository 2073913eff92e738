// Package frontend presents the emulated display region on a host
// machine. Backends consume point-in-time frames captured from the
// console so they never observe a half-written message.
package frontend

import (
	"image/color"

	"vgatext/device/tty"
	"vgatext/device/video/console"
	"vgatext/kernel/hal"
)

// Cell pixel dimensions of the glyph face used by the graphical
// backends.
const (
	CellWidth  = 7
	CellHeight = 13
)

// Frame is a copy of the display region contents plus the palette needed
// to present it.
type Frame struct {
	Width   int
	Height  int
	Cells   []console.Cell
	Palette color.Palette
}

// Capture copies the display contents inside a single critical section.
// The returned frame is empty if no console has been initialized.
func Capture() Frame {
	var frame Frame

	hal.WithWriter(func(w *tty.LineWriter) {
		cons := w.Console()
		if cons == nil {
			return
		}

		width, height := cons.Dimensions()
		frame = Frame{
			Width:   int(width),
			Height:  int(height),
			Cells:   make([]console.Cell, int(width)*int(height)),
			Palette: cons.Palette(),
		}

		for y := uint16(0); y < height; y++ {
			for x := uint16(0); x < width; x++ {
				frame.Cells[int(y)*int(width)+int(x)] = cons.ReadAt(x, y)
			}
		}
	})

	return frame
}

// At returns the cell at the given 0-based coordinates.
func (f Frame) At(x, y int) console.Cell {
	return f.Cells[y*f.Width+x]
}

// RGBA resolves a hardware color through the frame palette.
func (f Frame) RGBA(c console.Color) color.RGBA {
	if int(c) < len(f.Palette) {
		if rgba, ok := f.Palette[c].(color.RGBA); ok {
			return rgba
		}
	}
	return color.RGBA{A: 255}
}

// Renderer is implemented by all display backends.
type Renderer interface {
	// Render presents one frame.
	Render(Frame) error

	// Close releases any host resources held by the backend.
	Close() error
}
