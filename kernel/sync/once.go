package sync

import "sync/atomic"

// Once provides exactly-once execution of an initialization function. It
// serves the same purpose as the standard library's sync.Once but is
// built on the driver's own spinlock so it stays usable before the Go
// runtime facilities that the standard primitives lean on are available.
type Once struct {
	done uint32
	lock Spinlock
}

// Do invokes fn if and only if no previous Do call on this Once has
// invoked it. Concurrent callers block until the first invocation
// completes so they never observe partially initialized state.
func (o *Once) Do(fn func()) {
	if atomic.LoadUint32(&o.done) == 1 {
		return
	}

	o.lock.Acquire()
	defer o.lock.Release()

	if o.done == 0 {
		fn()
		atomic.StoreUint32(&o.done, 1)
	}
}
