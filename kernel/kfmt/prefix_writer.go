package kfmt

import "io"

// PrefixWriter is an io.Writer that inserts Prefix at the beginning of
// each line it writes to Sink. It is used by the hardware probe code so
// each driver's init output is tagged with the driver name.
type PrefixWriter struct {
	// Sink is where the prefixed output gets written.
	Sink io.Writer

	// Prefix gets written before the first byte of each line.
	Prefix []byte

	midLine bool
}

// Write implements io.Writer.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	if w.Sink == nil {
		return len(p), nil
	}

	var prefixByte [1]byte
	for i, b := range p {
		if !w.midLine {
			if _, err := w.Sink.Write(w.Prefix); err != nil {
				return i, err
			}
			w.midLine = true
		}

		prefixByte[0] = b
		if _, err := w.Sink.Write(prefixByte[:]); err != nil {
			return i, err
		}

		if b == '\n' {
			w.midLine = false
		}
	}

	return len(p), nil
}
