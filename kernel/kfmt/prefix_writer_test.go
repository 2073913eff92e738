package kfmt

import (
	"bytes"
	"testing"
)

func TestPrefixWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &PrefixWriter{Sink: &buf, Prefix: []byte("[vga] ")}

	Fprintf(w, "init ")
	Fprintf(w, "ok\nmapped %x\n", uint32(0xb8000))

	exp := "[vga] init ok\n[vga] mapped b8000\n"
	if got := buf.String(); got != exp {
		t.Fatalf("expected %q; got %q", exp, got)
	}
}

func TestPrefixWriterNilSink(t *testing.T) {
	w := &PrefixWriter{Prefix: []byte("[x] ")}
	if n, err := w.Write([]byte("dropped")); n != 7 || err != nil {
		t.Fatalf("expected writes without a sink to be dropped; got n=%d err=%v", n, err)
	}
}
