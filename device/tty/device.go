// Package tty provides the stateful line writer that converts byte and
// string input into console cell writes.
package tty

import (
	"io"

	"vgatext/device/video/console"
)

// Device is implemented by objects that can be used as a terminal device.
type Device interface {
	io.Writer
	io.ByteWriter

	// AttachTo connects the terminal to a console instance.
	AttachTo(console.Device)

	// CursorPosition returns the current cursor column. Output always
	// lands on the bottom console row, so the column is the only
	// cursor coordinate.
	CursorPosition() uint16

	// SetColors updates the colors applied to subsequent writes.
	SetColors(fg, bg console.Color)
}
