package sync

import "vgatext/kernel/cpu"

// irqLock serializes critical sections across all entry points. On a
// single physical core, suspending interrupt delivery is what makes a
// critical section exclusive; the hosted stand-in models the suspension
// with this process-wide spinlock so that a simulated interrupt source
// (another goroutine) observes the same exclusion guarantees.
var irqLock Spinlock

// WithoutInterrupts runs fn with interrupt delivery suspended on the
// current core. The previous interrupt-enable state is captured on entry
// and unconditionally restored on every exit path, including a panicking
// fn. Nesting WithoutInterrupts inside fn deadlocks, same as re-acquiring
// a held Spinlock.
func WithoutInterrupts(fn func()) {
	irqLock.Acquire()

	prev := cpu.InterruptsEnabled()
	cpu.DisableInterrupts()

	defer func() {
		if prev {
			cpu.EnableInterrupts()
		}
		irqLock.Release()
	}()

	fn()
}
