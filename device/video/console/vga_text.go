package console

import (
	"image/color"
	"io"

	"vgatext/kernel"
	"vgatext/kernel/kfmt"
)

// The dimensions of the text-mode framebuffer and the physical address it
// lives at. All three are fixed by the hardware.
const (
	TextWidth  = 80
	TextHeight = 25

	fbPhysAddr uintptr = 0xb8000
)

// VgaText implements an EGA-compatible 80x25 text-mode console. Each
// framebuffer cell occupies two bytes, a byte for the character ASCII
// code and a byte that encodes the foreground and background colors.
//
// The framebuffer is a singular physical resource that outlives the
// program; VgaText reinterprets it in place and never exposes its
// address. The default settings are light gray text (color 7) on a black
// background (color 0) with space as the clear character.
type VgaText struct {
	width  uint16
	height uint16

	fb []uint16

	palette   color.Palette
	defaultFg Color
	defaultBg Color
	clearChar byte
}

// NewVgaText creates a text console bound to the fixed framebuffer
// address. The framebuffer is not touched until DriverInit maps it.
func NewVgaText() *VgaText {
	return &VgaText{
		width:     TextWidth,
		height:    TextHeight,
		clearChar: ' ',
		palette: color.Palette{
			color.RGBA{A: 255},                         /* black */
			color.RGBA{B: 170, A: 255},                 /* blue */
			color.RGBA{G: 170, A: 255},                 /* green */
			color.RGBA{G: 170, B: 170, A: 255},         /* cyan */
			color.RGBA{R: 170, A: 255},                 /* red */
			color.RGBA{R: 170, B: 170, A: 255},         /* magenta */
			color.RGBA{R: 170, G: 85, A: 255},          /* brown */
			color.RGBA{R: 170, G: 170, B: 170, A: 255}, /* light gray */
			color.RGBA{R: 85, G: 85, B: 85, A: 255},    /* dark gray */
			color.RGBA{R: 85, G: 85, B: 255, A: 255},   /* light blue */
			color.RGBA{R: 85, G: 255, B: 85, A: 255},   /* light green */
			color.RGBA{R: 85, G: 255, B: 255, A: 255},  /* light cyan */
			color.RGBA{R: 255, G: 85, B: 85, A: 255},   /* light red */
			color.RGBA{R: 255, G: 85, B: 255, A: 255},  /* pink */
			color.RGBA{R: 255, G: 255, B: 85, A: 255},  /* yellow */
			color.RGBA{R: 255, G: 255, B: 255, A: 255}, /* white */
		},
		defaultFg: LightGray,
		defaultBg: Black,
	}
}

// Dimensions returns the console width and height in characters.
func (cons *VgaText) Dimensions() (uint16, uint16) {
	return cons.width, cons.height
}

// DefaultColors returns the default foreground and background colors
// used by this console.
func (cons *VgaText) DefaultColors() (fg, bg Color) {
	return cons.defaultFg, cons.defaultBg
}

// store writes a cell at the given framebuffer index. Every call performs
// a real memory transaction against the mapped region; the display
// hardware, not program logic, is the consumer of these writes so they
// must never be elided or reordered relative to each other.
func (cons *VgaText) store(index int, c Cell) {
	cons.fb[index] = uint16(c)
}

// load reads the cell at the given framebuffer index straight from the
// mapped region.
func (cons *VgaText) load(index int) Cell {
	return Cell(cons.fb[index])
}

// Fill sets the contents of the specified rectangular region to blank
// cells with the requested attribute. The region is clipped to the
// console dimensions.
func (cons *VgaText) Fill(x, y, width, height uint16, attr Attr) {
	if x >= cons.width {
		x = cons.width
	}
	if y >= cons.height {
		y = cons.height
	}
	if x+width > cons.width {
		width = cons.width - x
	}
	if y+height > cons.height {
		height = cons.height - y
	}

	blank := MakeCell(cons.clearChar, attr)
	rowOffset := int(y)*int(cons.width) + int(x)
	for ; height > 0; height, rowOffset = height-1, rowOffset+int(cons.width) {
		for colOffset := rowOffset; colOffset < rowOffset+int(width); colOffset++ {
			cons.store(colOffset, blank)
		}
	}
}

// Scroll the console contents a number of lines in the specified
// direction. The caller is responsible for filling the region that was
// scrolled.
func (cons *VgaText) Scroll(dir ScrollDir, lines uint16) {
	if lines == 0 || lines > cons.height {
		return
	}

	offset := int(lines) * int(cons.width)
	total := int(cons.width) * int(cons.height)

	switch dir {
	case ScrollDirUp:
		for i := 0; i < total-offset; i++ {
			cons.store(i, cons.load(i+offset))
		}
	case ScrollDirDown:
		for i := total - 1; i >= offset; i-- {
			cons.store(i, cons.load(i-offset))
		}
	}
}

// WriteAt writes a char with the supplied attribute to the specified
// location.
func (cons *VgaText) WriteAt(ch byte, attr Attr, x, y uint16) {
	cons.store(int(y)*int(cons.width)+int(x), MakeCell(ch, attr))
}

// ReadAt returns the cell contents at the specified location.
func (cons *VgaText) ReadAt(x, y uint16) Cell {
	return cons.load(int(y)*int(cons.width) + int(x))
}

// Palette returns the active color palette for this console.
func (cons *VgaText) Palette() color.Palette {
	return cons.palette
}

// DriverName returns the name of this driver.
func (cons *VgaText) DriverName() string {
	return "vga_text_console"
}

// DriverVersion returns the version of this driver.
func (cons *VgaText) DriverVersion() (uint16, uint16, uint16) {
	return 0, 1, 0
}

// DriverInit maps the framebuffer and clears it with the default
// attribute.
func (cons *VgaText) DriverInit(w io.Writer) *kernel.Error {
	fb, err := mapRegionFn(fbPhysAddr, int(cons.width)*int(cons.height))
	if err != nil {
		return err
	}

	cons.fb = fb
	cons.Fill(0, 0, cons.width, cons.height, MakeAttr(cons.defaultFg, cons.defaultBg))
	kfmt.Fprintf(w, "mapped %dx%d framebuffer\n", cons.width, cons.height)

	return nil
}
