package frontend

import (
	"image/color"
	"testing"

	"vgatext/device/video/console"
	"vgatext/kernel/hal"
)

func captureAfter(t *testing.T, text string) Frame {
	t.Helper()

	hal.Printf("%s", text)
	frame := Capture()
	if len(frame.Cells) == 0 {
		t.Fatal("expected a non-empty frame after writing to the display")
	}
	return frame
}

func TestCaptureReflectsDisplay(t *testing.T) {
	frame := captureAfter(t, "\nHi")

	if frame.Width != console.TextWidth || frame.Height != console.TextHeight {
		t.Fatalf("expected a %dx%d frame; got %dx%d",
			console.TextWidth, console.TextHeight, frame.Width, frame.Height)
	}

	bottom := frame.Height - 1
	if got := frame.At(0, bottom).Char(); got != 'H' {
		t.Errorf("expected 'H' at (24,0); got %q", got)
	}
	if got := frame.At(1, bottom).Char(); got != 'i' {
		t.Errorf("expected 'i' at (24,1); got %q", got)
	}
}

func TestFrameRGBA(t *testing.T) {
	frame := captureAfter(t, "")

	if got := frame.RGBA(console.White); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("expected white to resolve to #ffffff; got %v", got)
	}
	if got := frame.RGBA(console.Black); got != (color.RGBA{A: 255}) {
		t.Errorf("expected black to resolve to #000000; got %v", got)
	}
}

func TestHeadless(t *testing.T) {
	frame := captureAfter(t, "\nheadless")

	h := NewHeadless()
	if err := h.Render(frame); err != nil {
		t.Fatalf("expected headless render to succeed; got %v", err)
	}
	if err := h.Render(frame); err != nil {
		t.Fatalf("expected headless render to succeed; got %v", err)
	}

	if h.FrameCount() != 2 {
		t.Fatalf("expected 2 rendered frames; got %d", h.FrameCount())
	}
	if got := h.LastFrame().At(0, frame.Height-1).Char(); got != 'h' {
		t.Fatalf("expected the recorded frame to start with 'h'; got %q", got)
	}

	if err := h.Close(); err != nil {
		t.Fatalf("expected close to succeed; got %v", err)
	}
}

func TestRenderImage(t *testing.T) {
	frame := captureAfter(t, "\nX")

	img := RenderImage(frame)
	bounds := img.Bounds()
	if bounds.Dx() != frame.Width*CellWidth || bounds.Dy() != frame.Height*CellHeight {
		t.Fatalf("expected a %dx%d image; got %dx%d",
			frame.Width*CellWidth, frame.Height*CellHeight, bounds.Dx(), bounds.Dy())
	}

	// A blank cell rasterizes to its background color.
	bg := frame.RGBA(frame.At(10, 0).Attr().Background())
	r, g, b, _ := img.At(10*CellWidth+3, 3).RGBA()
	if byte(r>>8) != bg.R || byte(g>>8) != bg.G || byte(b>>8) != bg.B {
		t.Fatalf("expected blank cell pixels to match the background color %v", bg)
	}
}
