// Package kfmt provides a minimal formatted-output facility that is safe
// to use before any other part of the system is initialized. Output
// produced before a sink is registered accumulates in a ring buffer and
// is replayed into the sink once one appears.
package kfmt

import "io"

// maxDigits is large enough for a 64-bit value in base 10 plus sign.
const maxDigits = 21

var (
	errNoVerb     = []byte("%!(NOVERB)")
	errMissingArg = []byte("%!(MISSING)")
	errBadArgType = []byte("%!(WRONGTYPE)")
	errExtraArg   = []byte("%!(EXTRA)")

	// singleByte is the shared one-byte buffer used to emit individual
	// characters without allocating.
	singleByte = []byte{0}

	// earlyBuffer captures Printf output emitted before SetOutputSink
	// is called.
	earlyBuffer ringBuffer

	// outputSink is where Printf sends its output; nil redirects to
	// earlyBuffer.
	outputSink io.Writer
)

// SetOutputSink registers w as the target for Printf output and drains
// any early buffered output into it.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil {
		io.Copy(w, &earlyBuffer)
	}
}

// GetOutputSink returns the currently registered output sink which may be
// nil if none has been set yet.
func GetOutputSink() io.Writer {
	return outputSink
}

// Output returns the registered output sink or, before one exists, the
// early ring buffer that SetOutputSink later drains. It never returns
// nil.
func Output() io.Writer {
	if outputSink != nil {
		return outputSink
	}
	return &earlyBuffer
}

// Printf formats its arguments and writes them to the registered output
// sink (or the early ring buffer if no sink exists yet).
//
// The supported verbs are a small subset of the fmt package:
//
//	%s  string or []byte
//	%c  a single byte character
//	%d  integers, base 10
//	%x  integers, base 16 with lower-case digits
//	%t  booleans
//
// An optional decimal width may precede the verb; %d pads with spaces and
// %x pads with zeroes. Unlike fmt, formatting never allocates: strings
// are emitted one byte at a time so they never escape to the heap.
func Printf(format string, args ...interface{}) {
	Fprintf(outputSink, format, args...)
}

// Fprintf behaves like Printf but writes the formatted output to w.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	var (
		argIndex int
		i        int
	)

	for i < len(format) {
		ch := format[i]
		if ch != '%' {
			emitByte(w, ch)
			i++
			continue
		}

		// Scan the optional width.
		i++
		width := 0
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			width = width*10 + int(format[i]-'0')
			i++
		}

		if i == len(format) {
			emit(w, errNoVerb)
			break
		}

		verb := format[i]
		i++

		if verb == '%' {
			emitByte(w, '%')
			continue
		}

		if argIndex >= len(args) {
			emit(w, errMissingArg)
			continue
		}
		arg := args[argIndex]
		argIndex++

		switch verb {
		case 's':
			fmtString(w, arg, width)
		case 'c':
			fmtChar(w, arg)
		case 'd':
			fmtInt(w, arg, 10, width)
		case 'x':
			fmtInt(w, arg, 16, width)
		case 't':
			fmtBool(w, arg)
		default:
			emit(w, errNoVerb)
		}
	}

	for ; argIndex < len(args); argIndex++ {
		emit(w, errExtraArg)
	}
}

// emit writes p to w, falling back to the early ring buffer when no sink
// is available. Composing output is not allowed to fail; a sink write
// error is unrecoverable and halts the machine.
func emit(w io.Writer, p []byte) {
	if w == nil {
		earlyBuffer.Write(p)
		return
	}

	if _, err := w.Write(p); err != nil {
		// Reroute further output to the early buffer so the panic
		// banner does not land on the writer that just failed.
		if outputSink == w {
			outputSink = nil
		}
		Panic(ErrWriteFailed)
	}
}

func emitByte(w io.Writer, b byte) {
	singleByte[0] = b
	emit(w, singleByte)
}

func fmtString(w io.Writer, v interface{}, width int) {
	switch val := v.(type) {
	case string:
		for i := len(val); i < width; i++ {
			emitByte(w, ' ')
		}
		// Emitted a byte at a time so the conversion to []byte that a
		// plain Write would need never allocates.
		for i := 0; i < len(val); i++ {
			emitByte(w, val[i])
		}
	case []byte:
		for i := len(val); i < width; i++ {
			emitByte(w, ' ')
		}
		emit(w, val)
	default:
		emit(w, errBadArgType)
	}
}

func fmtChar(w io.Writer, v interface{}) {
	switch val := v.(type) {
	case byte:
		emitByte(w, val)
	case rune:
		emitByte(w, byte(val))
	default:
		emit(w, errBadArgType)
	}
}

func fmtBool(w io.Writer, v interface{}) {
	val, ok := v.(bool)
	if !ok {
		emit(w, errBadArgType)
		return
	}
	if val {
		fmtString(w, "true", 0)
	} else {
		fmtString(w, "false", 0)
	}
}

// fmtInt formats any built-in integer type in the requested base applying
// left padding up to width: spaces for base 10, zeroes for base 16.
func fmtInt(w io.Writer, v interface{}, base, width int) {
	var (
		uval uint64
		neg  bool
	)

	switch val := v.(type) {
	case uint8:
		uval = uint64(val)
	case uint16:
		uval = uint64(val)
	case uint32:
		uval = uint64(val)
	case uint64:
		uval = val
	case uint:
		uval = uint64(val)
	case uintptr:
		uval = uint64(val)
	case int8:
		uval, neg = absInt(int64(val))
	case int16:
		uval, neg = absInt(int64(val))
	case int32:
		uval, neg = absInt(int64(val))
	case int64:
		uval, neg = absInt(val)
	case int:
		uval, neg = absInt(int64(val))
	default:
		emit(w, errBadArgType)
		return
	}

	var (
		digits [maxDigits]byte
		pos    = len(digits)
	)

	for {
		pos--
		rem := byte(uval % uint64(base))
		if rem < 10 {
			digits[pos] = rem + '0'
		} else {
			digits[pos] = rem - 10 + 'a'
		}
		uval /= uint64(base)
		if uval == 0 {
			break
		}
	}

	padCh := byte(' ')
	if base == 16 {
		padCh = '0'
	}

	count := len(digits) - pos
	if neg {
		count++
	}

	if padCh == '0' {
		// Zero padding goes between the sign and the digits.
		if neg {
			emitByte(w, '-')
		}
		for ; count < width; count++ {
			emitByte(w, padCh)
		}
	} else {
		for ; count < width; count++ {
			emitByte(w, padCh)
		}
		if neg {
			emitByte(w, '-')
		}
	}

	emit(w, digits[pos:])
}

func absInt(v int64) (uint64, bool) {
	if v < 0 {
		return uint64(-v), true
	}
	return uint64(v), false
}
