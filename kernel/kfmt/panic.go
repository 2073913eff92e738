package kfmt

import (
	"vgatext/kernel"
	"vgatext/kernel/cpu"
)

var (
	// cpuHaltFn is mocked by tests and is automatically inlined by the
	// compiler.
	cpuHaltFn = cpu.Halt

	errRuntimePanic = &kernel.Error{Module: "rt", Message: "unknown cause"}

	// ErrWriteFailed signals that an output sink rejected a write while
	// output was being composed.
	ErrWriteFailed = &kernel.Error{Module: "kfmt", Message: "write to output sink failed"}
)

// Panic outputs the supplied error (if not nil) to the active output sink
// and halts the machine. Calls to Panic never return; the display
// contents are the only diagnostic that survives.
func Panic(e interface{}) {
	var err *kernel.Error

	switch t := e.(type) {
	case *kernel.Error:
		err = t
	case string:
		errRuntimePanic.Message = t
		err = errRuntimePanic
	case error:
		errRuntimePanic.Message = t.Error()
		err = errRuntimePanic
	}

	Printf("\n-----------------------------------\n")
	if err != nil {
		Printf("[%s] unrecoverable error: %s\n", err.Module, err.Message)
	}
	Printf("*** panic: system halted ***")
	Printf("\n-----------------------------------\n")

	cpuHaltFn()
}
