package frontend

import (
	"bytes"
	"strings"
	"testing"

	"vgatext/device/video/console"
	"vgatext/kernel/hal"
)

func TestTermRender(t *testing.T) {
	hal.Printf("\nterminal check")
	frame := Capture()

	var buf bytes.Buffer
	term := NewTerm(&buf)
	if err := term.Render(frame); err != nil {
		t.Fatalf("expected render to succeed; got %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, ansiHome) {
		t.Error("expected the frame to start with a cursor home sequence")
	}
	if !strings.Contains(out, "terminal check") {
		t.Error("expected the rendered frame to contain the display text")
	}
	if got := strings.Count(out, "\r\n"); got != console.TextHeight {
		t.Errorf("expected %d rendered rows; got %d", console.TextHeight, got)
	}

	if err := term.Close(); err != nil {
		t.Fatalf("expected close without raw mode to succeed; got %v", err)
	}
}

func TestTermRenderEmptyFrame(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf)

	if err := term.Render(Frame{}); err != nil {
		t.Fatalf("expected rendering an empty frame to be a no-op; got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("expected no output for an empty frame")
	}
}

func TestTermStartRejectsNonTerminal(t *testing.T) {
	term := NewTerm(&bytes.Buffer{})
	if err := term.Start(); err == nil {
		t.Fatal("expected Start to fail when output is not a terminal")
	}
}

func TestTermStyleCache(t *testing.T) {
	frame := Capture()
	term := NewTerm(&bytes.Buffer{})

	attr := console.MakeAttr(console.Yellow, console.Blue)
	first := term.styleFor(attr, frame)
	second := term.styleFor(attr, frame)

	if first.GetForeground() != second.GetForeground() {
		t.Fatal("expected cached style lookups to be stable")
	}
	if len(term.styles) != 1 {
		t.Fatalf("expected one cached style; got %d", len(term.styles))
	}
}

func TestTermRenderContainsSubstituteBlocks(t *testing.T) {
	hal.Printf("\n%c%c", byte(0x01), byte(0x02))
	frame := Capture()

	var buf bytes.Buffer
	term := NewTerm(&buf)
	if err := term.Render(frame); err != nil {
		t.Fatalf("expected render to succeed; got %v", err)
	}

	// Unprintable bytes were substituted on the display and map to '#'
	// on the host terminal.
	if !strings.Contains(buf.String(), "##") {
		t.Fatal("expected substituted cells to render as blocks")
	}
}
