// Package hal owns the process-wide writer singleton and the critical
// section discipline for touching the shared display hardware. All cell
// output funnels through WithWriter; nothing else in the system accesses
// the console directly.
package hal

import (
	"bytes"

	"vgatext/device"
	"vgatext/device/tty"
	"vgatext/device/video/console"
	"vgatext/kernel/kfmt"
	"vgatext/kernel/sync"
)

// managedDevices contains the devices discovered by the HAL.
type managedDevices struct {
	activeConsole console.Device
	activeWriter  *tty.LineWriter
}

var (
	devices  managedDevices
	initOnce sync.Once
	strBuf   bytes.Buffer

	// detectHardwareFn is mocked by tests.
	detectHardwareFn = detectHardware
)

// WithWriter runs fn with exclusive access to the shared line writer.
//
// Interrupt delivery is suspended for the duration of fn and the previous
// interrupt state is restored on every exit path, so a sequence of cell
// writes performed inside one fn is never interleaved with writes
// triggered from interrupt context on the same core. The first call
// probes the hardware and initializes the writer; the initialization side
// effect is observed exactly once no matter how many call sites race to
// get in first.
//
// fn must not call WithWriter recursively; interrupt delivery is already
// suspended inside it.
func WithWriter(fn func(*tty.LineWriter)) {
	sync.WithoutInterrupts(func() {
		initOnce.Do(detectHardwareFn)
		fn(devices.activeWriter)
	})
}

// Printf formats its arguments with kfmt and renders them as one atomic
// message on the shared writer. Output composed outside a WithWriter
// action must go through Printf so it cannot interleave with other
// messages.
func Printf(format string, args ...interface{}) {
	WithWriter(func(w *tty.LineWriter) {
		kfmt.Fprintf(w, format, args...)
	})
}

// detectHardware walks the probe registry, initializes every discovered
// driver and links the writer to the first console found. It runs exactly
// once, inside the first WithWriter critical section.
func detectHardware() {
	for _, probeFn := range device.Probes() {
		drv := probeFn()
		if drv == nil {
			continue
		}

		var w = kfmt.PrefixWriter{Sink: kfmt.Output()}

		strBuf.Reset()
		major, minor, patch := drv.DriverVersion()
		kfmt.Fprintf(&strBuf, "[hal] %s(%d.%d.%d): ", drv.DriverName(), major, minor, patch)
		w.Prefix = strBuf.Bytes()

		if err := drv.DriverInit(&w); err != nil {
			kfmt.Fprintf(&w, "init failed: %s\n", err.Message)
			continue
		}

		onDriverInit(drv)
	}

	linkWriterToConsole()
}

// onDriverInit records the first console and the first writer that come
// out of the probe. Later duplicates are initialized but stay unused.
func onDriverInit(drv device.Driver) {
	switch drvImpl := drv.(type) {
	case console.Device:
		if devices.activeConsole == nil {
			devices.activeConsole = drvImpl
		}
	case *tty.LineWriter:
		if devices.activeWriter == nil {
			devices.activeWriter = drvImpl
		}
	}
}

// linkWriterToConsole attaches the active writer to the active console
// and registers it as the kfmt output sink, flushing any buffered early
// output onto the screen.
func linkWriterToConsole() {
	if devices.activeWriter == nil || devices.activeConsole == nil {
		return
	}

	devices.activeWriter.AttachTo(devices.activeConsole)
	kfmt.SetOutputSink(devices.activeWriter)
}
