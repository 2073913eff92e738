package frontend

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"vgatext/device/video/console"
)

// ansiHome moves the host terminal cursor to the top-left corner so
// successive frames overwrite each other in place.
const ansiHome = "\x1b[H"

// Term renders frames as styled text on a host terminal. Each of the 256
// foreground/background attribute combinations maps to one lipgloss
// style resolved through the frame palette; styles are built lazily and
// cached for the lifetime of the backend.
type Term struct {
	out    io.Writer
	styles map[console.Attr]lipgloss.Style

	fd       int
	oldState *term.State
}

// NewTerm creates a terminal backend writing to out. Pass os.Stdout for
// interactive use.
func NewTerm(out io.Writer) *Term {
	return &Term{
		out:    out,
		styles: make(map[console.Attr]lipgloss.Style),
		fd:     -1,
	}
}

// Start switches the controlling terminal to raw mode so frames are not
// mangled by line discipline. It fails if the terminal is smaller than
// the display region. Start is optional; Render works on any writer.
func (t *Term) Start() error {
	f, ok := t.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("frontend: output is not a terminal")
	}

	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return fmt.Errorf("frontend: query terminal size: %w", err)
	}
	if cols < console.TextWidth || rows < console.TextHeight {
		return fmt.Errorf("frontend: terminal %dx%d is smaller than the %dx%d display",
			cols, rows, console.TextWidth, console.TextHeight)
	}

	oldState, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return fmt.Errorf("frontend: enter raw mode: %w", err)
	}

	t.fd = int(f.Fd())
	t.oldState = oldState
	return nil
}

// Render implements Renderer.
func (t *Term) Render(frame Frame) error {
	if len(frame.Cells) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(ansiHome)

	for y := 0; y < frame.Height; y++ {
		// Consecutive cells sharing an attribute render as one styled
		// run to keep the escape-code overhead down.
		runAttr := frame.At(0, y).Attr()
		var runText strings.Builder

		flush := func() {
			if runText.Len() > 0 {
				sb.WriteString(t.styleFor(runAttr, frame).Render(runText.String()))
				runText.Reset()
			}
		}

		for x := 0; x < frame.Width; x++ {
			cell := frame.At(x, y)
			if cell.Attr() != runAttr {
				flush()
				runAttr = cell.Attr()
			}
			runText.WriteByte(printableOrBlock(cell.Char()))
		}
		flush()
		sb.WriteString("\r\n")
	}

	_, err := io.WriteString(t.out, sb.String())
	return err
}

// Close restores the terminal state captured by Start.
func (t *Term) Close() error {
	if t.oldState == nil {
		return nil
	}

	err := term.Restore(t.fd, t.oldState)
	t.oldState = nil
	return err
}

// styleFor returns the cached lipgloss style for an attribute, building
// it from the frame palette on first use.
func (t *Term) styleFor(attr console.Attr, frame Frame) lipgloss.Style {
	if style, ok := t.styles[attr]; ok {
		return style
	}

	fg := frame.RGBA(attr.Foreground())
	bg := frame.RGBA(attr.Background())
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", fg.R, fg.G, fg.B))).
		Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bg.R, bg.G, bg.B)))

	t.styles[attr] = style
	return style
}

// printableOrBlock substitutes a host-displayable block for cell
// contents outside the printable ASCII range (the substitute glyph
// included; host terminals have no code page 437).
func printableOrBlock(ch byte) byte {
	if ch >= 0x20 && ch <= 0x7e {
		return ch
	}
	return '#'
}
