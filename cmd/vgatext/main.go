// Command vgatext boots the text driver, writes a short message
// sequence and presents the emulated display through the selected
// frontend. The binary never exits on its own: once the demo output is
// on screen the machine halts, exactly like its bare metal counterpart.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"vgatext/device/tty"
	"vgatext/device/video/console"
	"vgatext/frontend"
	"vgatext/kernel/cpu"
	"vgatext/kernel/hal"
	"vgatext/kernel/kfmt"
)

var colorNames = map[string]console.Color{
	"black":      console.Black,
	"blue":       console.Blue,
	"green":      console.Green,
	"cyan":       console.Cyan,
	"red":        console.Red,
	"magenta":    console.Magenta,
	"brown":      console.Brown,
	"lightgray":  console.LightGray,
	"darkgray":   console.DarkGray,
	"lightblue":  console.LightBlue,
	"lightgreen": console.LightGreen,
	"lightcyan":  console.LightCyan,
	"lightred":   console.LightRed,
	"pink":       console.Pink,
	"yellow":     console.Yellow,
	"white":      console.White,
}

func main() {
	var (
		frontendName = flag.String("frontend", "term", "display frontend: window, term, png or none")
		fgName       = flag.String("fg", "lightgray", "text color")
		bgName       = flag.String("bg", "black", "background color")
		outPath      = flag.String("out", "vgatext.png", "output path for the png frontend")
		tick         = flag.Bool("tick", true, "write a periodic uptime line from a simulated timer interrupt")
	)
	flag.Parse()

	fg, ok := colorNames[*fgName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown color %q\n", *fgName)
		os.Exit(2)
	}
	bg, ok := colorNames[*bgName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown color %q\n", *bgName)
		os.Exit(2)
	}

	boot(fg, bg)

	switch *frontendName {
	case "window":
		if *tick {
			go timerInterrupt()
		}
		if err := frontend.NewWindow().Run(); err != nil {
			fmt.Fprintf(os.Stderr, "window frontend: %v\n", err)
			os.Exit(1)
		}
	case "term":
		if *tick {
			go timerInterrupt()
		}
		runTerm()
	case "png":
		snap := frontend.NewSnapshot(*outPath)
		if err := snap.Render(frontend.Capture()); err != nil {
			fmt.Fprintf(os.Stderr, "png frontend: %v\n", err)
			os.Exit(1)
		}
	case "none":
	default:
		fmt.Fprintf(os.Stderr, "unknown frontend %q\n", *frontendName)
		os.Exit(2)
	}

	// Terminal state of the machine: halted, forever.
	cpu.Halt()
}

// boot writes the demo message sequence as the bare metal entry stub
// would, everything through the shared writer.
func boot(fg, bg console.Color) {
	hal.WithWriter(func(w *tty.LineWriter) {
		w.SetColors(fg, bg)
		w.WriteString("Welcome to vgatext\n")
		kfmt.Fprintf(w, "%dx%d text display ready\n", console.TextWidth, console.TextHeight)
		kfmt.Fprintf(w, "the numbers are %d and %x\n", 54, uint32(0xb8000))
	})
}

// timerInterrupt stands in for a periodic interrupt handler: it writes
// to the display from outside the mainline path, relying on the writer
// accessor for exclusion.
func timerInterrupt() {
	start := time.Now()
	for range time.Tick(time.Second) {
		hal.Printf("uptime %4d s\n", int64(time.Since(start)/time.Second))
	}
}

// runTerm drives the terminal frontend. With an interactive terminal it
// refreshes in place; otherwise it emits a single frame.
func runTerm() {
	t := frontend.NewTerm(os.Stdout)
	if err := t.Start(); err != nil {
		if err := t.Render(frontend.Capture()); err != nil {
			fmt.Fprintf(os.Stderr, "term frontend: %v\n", err)
			os.Exit(1)
		}
		return
	}
	defer t.Close()

	for range time.Tick(100 * time.Millisecond) {
		if err := t.Render(frontend.Capture()); err != nil {
			t.Close()
			fmt.Fprintf(os.Stderr, "term frontend: %v\n", err)
			os.Exit(1)
		}
	}
}
