package console

import "image/color"

// Color identifies one of the 16 colors supported by the text-mode
// hardware. The numeric values are fixed by the hardware palette.
type Color uint8

// The closed set of hardware colors.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// Attr packs a foreground and a background color into the single
// attribute byte consumed by the hardware: bits 0-3 hold the foreground
// color code and bits 4-7 the background color code.
type Attr uint8

// MakeAttr combines a foreground and a background color into an attribute
// byte. It is total over the 16x16 color combinations.
func MakeAttr(fg, bg Color) Attr {
	return Attr(bg)<<4 | Attr(fg)&0xf
}

// Foreground returns the foreground color encoded in the attribute.
func (a Attr) Foreground() Color {
	return Color(a & 0xf)
}

// Background returns the background color encoded in the attribute.
func (a Attr) Background() Color {
	return Color(a >> 4)
}

// Cell is the two-byte hardware representation of one displayed glyph.
// The low byte holds the ASCII code and the high byte the attribute,
// matching the little-endian in-memory layout of a framebuffer cell.
type Cell uint16

// MakeCell combines an ASCII code and an attribute into a cell value.
func MakeCell(ch byte, attr Attr) Cell {
	return Cell(attr)<<8 | Cell(ch)
}

// Char returns the ASCII code stored in the cell.
func (c Cell) Char() byte {
	return byte(c)
}

// Attr returns the attribute byte stored in the cell.
func (c Cell) Attr() Attr {
	return Attr(c >> 8)
}

// ScrollDir defines a scroll direction.
type ScrollDir uint8

// The supported list of scroll directions for the console Scroll() calls.
const (
	ScrollDirUp ScrollDir = iota
	ScrollDirDown
)

// The Device interface is implemented by objects that can function as
// system consoles. All x,y coordinates are 0-based with (0,0) at the
// top-left corner. Coordinates passed to WriteAt and ReadAt must be
// within the device dimensions; callers are expected to derive their
// iteration bounds from Dimensions rather than rely on per-call checks.
type Device interface {
	// Dimensions returns the console width and height in characters.
	Dimensions() (uint16, uint16)

	// DefaultColors returns the default foreground and background
	// colors used by this console.
	DefaultColors() (fg, bg Color)

	// Fill sets the contents of the specified rectangular region to
	// blank cells using the supplied attribute. The region is clipped
	// to the console dimensions.
	Fill(x, y, width, height uint16, attr Attr)

	// Scroll the console contents a number of lines in the specified
	// direction. The caller is responsible for filling the region that
	// was scrolled.
	Scroll(dir ScrollDir, lines uint16)

	// WriteAt writes a char with the supplied attribute to the
	// specified location.
	WriteAt(ch byte, attr Attr, x, y uint16)

	// ReadAt returns the cell contents at the specified location.
	ReadAt(x, y uint16) Cell

	// Palette returns the active color palette for this console.
	Palette() color.Palette
}
