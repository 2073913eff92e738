package kfmt

import "io"

// ringBufferSize defines the capacity of the early output buffer. It is
// sized to hold a full 80x25 screen of text and must be a power of two.
const ringBufferSize = 2048

// ringBuffer buffers Printf output produced before an output sink has
// been registered. When the buffer fills up the oldest bytes are
// overwritten, keeping the most recent screenful of output.
type ringBuffer struct {
	buffer [ringBufferSize]byte
	rIndex int
	wIndex int
	used   int
}

// Write implements io.Writer; it never fails.
func (rb *ringBuffer) Write(p []byte) (int, error) {
	for _, b := range p {
		rb.buffer[rb.wIndex] = b
		rb.wIndex = (rb.wIndex + 1) & (ringBufferSize - 1)
		if rb.used < ringBufferSize {
			rb.used++
		} else {
			rb.rIndex = rb.wIndex
		}
	}

	return len(p), nil
}

// Read implements io.Reader, draining up to len(p) of the oldest buffered
// bytes into p.
func (rb *ringBuffer) Read(p []byte) (int, error) {
	if rb.used == 0 {
		return 0, io.EOF
	}

	var n int
	for n = 0; n < len(p) && rb.used > 0; n++ {
		p[n] = rb.buffer[rb.rIndex]
		rb.rIndex = (rb.rIndex + 1) & (ringBufferSize - 1)
		rb.used--
	}

	return n, nil
}
