package frontend

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"vgatext/device/video/console"
)

// windowScale enlarges the tiny 7x13 glyph grid to a comfortable
// desktop window size.
const windowScale = 2

// Window presents the display region in a desktop window. It implements
// ebiten.Game; each tick captures a fresh frame from the console so the
// window tracks whatever the machine writes.
type Window struct {
	mu    sync.RWMutex
	frame Frame
}

// NewWindow creates a window backend. Run must be called from the main
// goroutine and blocks until the window is closed.
func NewWindow() *Window {
	return &Window{}
}

// Run opens the window and drives the render loop. It blocks until the
// window is closed by the user.
func (g *Window) Run() error {
	ebiten.SetWindowSize(console.TextWidth*CellWidth*windowScale, console.TextHeight*CellHeight*windowScale)
	ebiten.SetWindowTitle("vgatext")
	return ebiten.RunGame(g)
}

// Update implements ebiten.Game.
func (g *Window) Update() error {
	frame := Capture()

	g.mu.Lock()
	g.frame = frame
	g.mu.Unlock()
	return nil
}

// Draw implements ebiten.Game.
func (g *Window) Draw(screen *ebiten.Image) {
	g.mu.RLock()
	frame := g.frame
	g.mu.RUnlock()

	if len(frame.Cells) == 0 {
		return
	}

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			cell := frame.At(x, y)
			attr := cell.Attr()
			px := float64(x * CellWidth)
			py := float64(y * CellHeight)

			ebitenutil.DrawRect(screen, px, py, CellWidth, CellHeight, frame.RGBA(attr.Background()))

			ch := cell.Char()
			switch {
			case ch == ' ':
			case ch < 0x20 || ch > 0x7e:
				ebitenutil.DrawRect(screen, px+1, py+2, CellWidth-2, CellHeight-4, frame.RGBA(attr.Foreground()))
			default:
				text.Draw(screen, string(rune(ch)), basicfont.Face7x13, x*CellWidth, y*CellHeight+11, frame.RGBA(attr.Foreground()))
			}
		}
	}
}

// Layout implements ebiten.Game.
func (g *Window) Layout(_, _ int) (int, int) {
	return console.TextWidth * CellWidth, console.TextHeight * CellHeight
}
