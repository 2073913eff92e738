// Package sync provides the synchronization primitives used by the text
// driver: a busy-wait spinlock, an exactly-once initializer and the
// interrupt-suspending critical section that guards the shared display.
package sync

import (
	"runtime"
	"sync/atomic"
)

// yieldFn is invoked between acquisition attempts while a lock is
// contended. The hosted implementation yields to the Go scheduler; a bare
// metal port replaces this with a pause instruction once context
// switching exists.
var yieldFn = runtime.Gosched

// Spinlock implements a lock where each task trying to acquire it
// busy-waits till the lock becomes available. Any attempt to re-acquire a
// lock already held by the current task will cause a deadlock.
type Spinlock struct {
	state uint32
}

// Acquire blocks until the lock can be acquired by the currently active
// task.
func (l *Spinlock) Acquire() {
	for !atomic.CompareAndSwapUint32(&l.state, 0, 1) {
		yieldFn()
	}
}

// TryToAcquire attempts to acquire the lock and returns true if the lock
// could be acquired or false otherwise.
func (l *Spinlock) TryToAcquire() bool {
	return atomic.SwapUint32(&l.state, 1) == 0
}

// Release relinquishes a held lock allowing other tasks to acquire it.
// Calling Release while the lock is free has no effect.
func (l *Spinlock) Release() {
	atomic.StoreUint32(&l.state, 0)
}
