package hal

import (
	gosync "sync"
	"sync/atomic"
	"testing"

	"vgatext/device/tty"
	"vgatext/device/video/console"
	"vgatext/kernel/kfmt"
	"vgatext/kernel/sync"
)

// resetHAL clears the singleton state so each test observes a fresh
// machine.
func resetHAL() {
	devices = managedDevices{}
	initOnce = sync.Once{}
	detectHardwareFn = detectHardware
	kfmt.SetOutputSink(nil)
}

// clearScreen scrolls every populated row (hardware probe output
// included) off the display.
func clearScreen() {
	WithWriter(func(w *tty.LineWriter) {
		for i := 0; i < console.TextHeight; i++ {
			w.WriteByte('\n')
		}
	})
}

func TestWithWriterInitializesExactlyOnce(t *testing.T) {
	defer resetHAL()
	resetHAL()

	var initCount uint32
	detectHardwareFn = func() {
		atomic.AddUint32(&initCount, 1)
		detectHardware()
	}

	var wg gosync.WaitGroup
	wg.Add(16)
	for i := 0; i < 16; i++ {
		go func() {
			for j := 0; j < 10; j++ {
				WithWriter(func(w *tty.LineWriter) {
					if w == nil {
						t.Error("expected callers to observe an initialized writer")
					}
				})
			}
			wg.Done()
		}()
	}
	wg.Wait()

	if initCount != 1 {
		t.Fatalf("expected hardware detection to run exactly once; ran %d times", initCount)
	}
}

func TestWithWriterLinksWriterToConsole(t *testing.T) {
	defer resetHAL()
	resetHAL()

	WithWriter(func(w *tty.LineWriter) {
		if w.Console() == nil {
			t.Fatal("expected the writer to be attached to the probed console")
		}
	})

	if kfmt.GetOutputSink() != devices.activeWriter {
		t.Fatal("expected the writer to be registered as the kfmt output sink")
	}
}

func TestWithWriterMutualExclusion(t *testing.T) {
	defer resetHAL()
	resetHAL()
	clearScreen()

	// A mainline path and a simulated interrupt source each emit full
	// lines of a single character. If the critical sections can
	// interleave, some row ends up with a mix of both characters.
	emitLine := func(ch byte) {
		WithWriter(func(w *tty.LineWriter) {
			for i := 0; i < console.TextWidth; i++ {
				w.WriteByte(ch)
			}
			w.WriteByte('\n')
		})
	}

	var wg gosync.WaitGroup
	wg.Add(2)
	go func() {
		for i := 0; i < 50; i++ {
			emitLine('a')
		}
		wg.Done()
	}()
	go func() {
		for i := 0; i < 50; i++ {
			emitLine('b')
		}
		wg.Done()
	}()
	wg.Wait()

	WithWriter(func(w *tty.LineWriter) {
		cons := w.Console()
		for y := uint16(0); y < console.TextHeight; y++ {
			first := cons.ReadAt(0, y).Char()
			for x := uint16(1); x < console.TextWidth; x++ {
				if got := cons.ReadAt(x, y).Char(); got != first {
					t.Fatalf("row %d contains interleaved output: %q then %q", y, first, got)
				}
			}
		}
	})
}

func TestPrintf(t *testing.T) {
	defer resetHAL()
	resetHAL()
	clearScreen()

	Printf("col %d of %d", 3, console.TextWidth)

	WithWriter(func(w *tty.LineWriter) {
		cons := w.Console()
		exp := "col 3 of 80"
		bottom := uint16(console.TextHeight - 1)
		for i := 0; i < len(exp); i++ {
			if got := cons.ReadAt(uint16(i), bottom).Char(); got != exp[i] {
				t.Fatalf("expected %q at column %d; got %q", exp[i], i, got)
			}
		}
		if got := w.CursorPosition(); got != uint16(len(exp)) {
			t.Fatalf("expected cursor at column %d; got %d", len(exp), got)
		}
	})
}
