// Package cpu models the single execution core that the text driver runs
// on. The only pieces of core state the driver cares about are the
// interrupt-enable flag and the ability to halt; both are kept behind this
// package so that a bare metal port can swap in the real cli/sti/hlt
// sequences without touching any caller.
package cpu

import "sync/atomic"

const (
	flagIntEnabled uint32 = 1
	flagIntCleared uint32 = 0
)

// intFlag holds the interrupt-enable bit of the core flags register. The
// hosted stand-in keeps just that bit and starts with interrupts enabled,
// which is the state the boot stub hands over in.
var intFlag = flagIntEnabled

// InterruptsEnabled returns true if the core currently accepts interrupt
// delivery.
func InterruptsEnabled() bool {
	return atomic.LoadUint32(&intFlag) == flagIntEnabled
}

// DisableInterrupts stops interrupt delivery to the current core. Callers
// that need the previous flag state must capture it with
// InterruptsEnabled before calling.
func DisableInterrupts() {
	atomic.StoreUint32(&intFlag, flagIntCleared)
}

// EnableInterrupts resumes interrupt delivery to the current core.
func EnableInterrupts() {
	atomic.StoreUint32(&intFlag, flagIntEnabled)
}

// Halt stops instruction execution on the current core. Calls to Halt
// never return; it is the terminal state of the machine. The hosted
// implementation parks the calling goroutine forever instead of spinning.
func Halt() {
	select {}
}
