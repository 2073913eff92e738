package frontend

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// RenderImage rasterizes a frame into an RGBA image, one CellWidth x
// CellHeight block per cell. Cells holding bytes outside the printable
// ASCII range are drawn as filled boxes in the foreground color, which
// is how the hardware renders the substitute glyph.
func RenderImage(frame Frame) image.Image {
	dc := gg.NewContext(frame.Width*CellWidth, frame.Height*CellHeight)
	dc.SetFontFace(basicfont.Face7x13)

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			cell := frame.At(x, y)
			attr := cell.Attr()
			px := float64(x * CellWidth)
			py := float64(y * CellHeight)

			dc.SetColor(frame.RGBA(attr.Background()))
			dc.DrawRectangle(px, py, CellWidth, CellHeight)
			dc.Fill()

			ch := cell.Char()
			if ch == ' ' {
				continue
			}

			dc.SetColor(frame.RGBA(attr.Foreground()))
			if ch < 0x20 || ch > 0x7e {
				dc.DrawRectangle(px+1, py+2, CellWidth-2, CellHeight-4)
				dc.Fill()
				continue
			}

			// Face7x13 has an 11 pixel ascent.
			dc.DrawString(string(rune(ch)), px, py+11)
		}
	}

	return dc.Image()
}

// Snapshot is a backend that writes each rendered frame to a PNG file,
// overwriting the previous one. It exists for debugging and for golden
// image comparisons.
type Snapshot struct {
	path string
}

// NewSnapshot creates a snapshot backend writing to path.
func NewSnapshot(path string) *Snapshot {
	return &Snapshot{path: path}
}

// Render implements Renderer.
func (s *Snapshot) Render(frame Frame) error {
	if len(frame.Cells) == 0 {
		return fmt.Errorf("frontend: nothing to snapshot, display not initialized")
	}

	return gg.SavePNG(s.path, RenderImage(frame))
}

// Close implements Renderer.
func (s *Snapshot) Close() error {
	return nil
}
