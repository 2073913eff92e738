package console

import "testing"

func TestMakeAttr(t *testing.T) {
	for bg := Color(0); bg < 16; bg++ {
		for fg := Color(0); fg < 16; fg++ {
			exp := Attr(bg)<<4 | Attr(fg)
			if got := MakeAttr(fg, bg); got != exp {
				t.Fatalf("expected MakeAttr(%d, %d) to be %02x; got %02x", fg, bg, exp, got)
			}
		}
	}
}

func TestAttrAccessors(t *testing.T) {
	for bg := Color(0); bg < 16; bg++ {
		for fg := Color(0); fg < 16; fg++ {
			attr := MakeAttr(fg, bg)
			if attr.Foreground() != fg || attr.Background() != bg {
				t.Fatalf("expected attr %02x to decode to fg:%d bg:%d; got fg:%d bg:%d",
					attr, fg, bg, attr.Foreground(), attr.Background())
			}
		}
	}
}

func TestCellEncoding(t *testing.T) {
	specs := []struct {
		ch   byte
		attr Attr
		exp  Cell
	}{
		{'H', MakeAttr(LightRed, Black), 0x0c48},
		{' ', MakeAttr(LightGray, Black), 0x0720},
		{0xfe, MakeAttr(Yellow, Blue), 0x1efe},
	}

	for specIndex, spec := range specs {
		cell := MakeCell(spec.ch, spec.attr)
		if cell != spec.exp {
			t.Errorf("[spec %d] expected cell value %04x; got %04x", specIndex, spec.exp, cell)
			continue
		}

		if cell.Char() != spec.ch || cell.Attr() != spec.attr {
			t.Errorf("[spec %d] expected cell to decode to ch:%q attr:%02x; got ch:%q attr:%02x",
				specIndex, spec.ch, spec.attr, cell.Char(), cell.Attr())
		}
	}
}
