package tty

import (
	"io"

	"vgatext/device"
	"vgatext/device/video/console"
	"vgatext/kernel"
)

// substituteChar is written in place of any byte outside the printable
// ASCII range so the console never has to display a code the hardware
// character set cannot represent. 0xfe renders as a filled box glyph.
const substituteChar byte = 0xfe

// LineWriter renders byte and string input on the bottom row of an
// attached console. It tracks a single cursor column and the current
// color attribute; a line feed, or running out of columns, scrolls the
// console contents up one line and resets the cursor to column zero.
//
// LineWriter methods never fail on malformed input: bytes that cannot be
// displayed are substituted, not rejected. The writer itself is not safe
// for concurrent use; exclusive access is the responsibility of the
// hal accessor that hands it out.
type LineWriter struct {
	cons console.Device

	width  uint16
	height uint16

	// column is the cursor position on the bottom row. It may reach
	// width after a full line; the wrap check on the next write brings
	// it back into range before any cell is touched.
	column uint16
	attr   console.Attr
}

// NewLineWriter creates a line writer. It renders nothing until it is
// attached to a console.
func NewLineWriter() *LineWriter {
	return &LineWriter{}
}

// AttachTo connects the writer to a console instance and adopts the
// console's default colors.
func (w *LineWriter) AttachTo(cons console.Device) {
	if cons == nil {
		return
	}

	w.cons = cons
	w.width, w.height = cons.Dimensions()
	w.attr = console.MakeAttr(cons.DefaultColors())
	w.column = 0
}

// Console returns the console this writer renders to, or nil if the
// writer is not attached yet.
func (w *LineWriter) Console() console.Device {
	return w.cons
}

// CursorPosition returns the current cursor column.
func (w *LineWriter) CursorPosition() uint16 {
	return w.column
}

// SetColors updates the attribute applied to subsequent writes.
func (w *LineWriter) SetColors(fg, bg console.Color) {
	w.attr = console.MakeAttr(fg, bg)
}

// WriteByte renders a single byte at the cursor position. A line feed
// triggers scroll-and-reset; any other byte lands in exactly one cell on
// the bottom row and advances the cursor by one.
func (w *LineWriter) WriteByte(b byte) error {
	if w.cons == nil {
		return io.ErrClosedPipe
	}

	if b == '\n' {
		w.scrollAndReset()
		return nil
	}

	if w.column >= w.width {
		w.scrollAndReset()
	}

	w.cons.WriteAt(b, w.attr, w.column, w.height-1)
	w.column++

	return nil
}

// Write implements io.Writer. Printable ASCII bytes (0x20-0x7e) and line
// feeds pass through unchanged; every other byte is replaced with the
// substitute glyph at the position it would have occupied. Write never
// returns a short count.
func (w *LineWriter) Write(p []byte) (int, error) {
	for count, b := range p {
		if err := w.writeChecked(b); err != nil {
			return count, err
		}
	}

	return len(p), nil
}

// WriteString renders a string using the same substitution rules as
// Write.
func (w *LineWriter) WriteString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := w.writeChecked(s[i]); err != nil {
			return err
		}
	}

	return nil
}

func (w *LineWriter) writeChecked(b byte) error {
	if (b < 0x20 || b > 0x7e) && b != '\n' {
		b = substituteChar
	}
	return w.WriteByte(b)
}

// scrollAndReset shifts the console contents up one line, discarding the
// topmost row, blanks the bottom row with the current attribute and
// resets the cursor to column zero.
func (w *LineWriter) scrollAndReset() {
	w.cons.Scroll(console.ScrollDirUp, 1)
	w.cons.Fill(0, w.height-1, w.width, 1, w.attr)
	w.column = 0
}

// DriverName returns the name of this driver.
func (w *LineWriter) DriverName() string {
	return "line_writer"
}

// DriverVersion returns the version of this driver.
func (w *LineWriter) DriverVersion() (uint16, uint16, uint16) {
	return 0, 1, 0
}

// DriverInit initializes this driver.
func (w *LineWriter) DriverInit(_ io.Writer) *kernel.Error {
	return nil
}

func probeForLineWriter() device.Driver {
	return NewLineWriter()
}

func init() {
	device.RegisterProbe(probeForLineWriter)
}
