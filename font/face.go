package font

import (
	"errors"
	"fmt"
	"image"

	"github.com/zachomedia/go-bdf"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/flavioheleno/ssd1306text/image1bit"
)

// FromFace rasterizes the printable ASCII glyphs of face into a table with
// width columns of height rows per glyph.
//
// The baseline is placed at the face ascent, so glyphs taller than height are
// cut at the bottom. Pixels are on when their coverage is at least half.
func FromFace[C Column](face xfont.Face, width, height int) (*Table[C], error) {
	if face == nil {
		return nil, errors.New("font: nil face")
	}
	if width <= 0 {
		return nil, fmt.Errorf("font: invalid glyph width %d", width)
	}
	if height <= 0 || height > Bits[C]() || height > image1bit.MaxHeight {
		return nil, fmt.Errorf("font: glyph height %d does not fit in %d-bit columns", height, Bits[C]())
	}

	t := NewTable[C](width, height)
	img := image1bit.NewVerticalColumns(image.Rect(0, 0, width, height))
	baseline := face.Metrics().Ascent.Ceil()
	if baseline > height {
		baseline = height
	}

	for ch := rune(First); ch <= Last; ch++ {
		img.Clear()
		d := xfont.Drawer{
			Dst:  img,
			Src:  image.NewUniform(image1bit.On),
			Face: face,
			Dot:  fixed.P(0, baseline),
		}
		d.DrawString(string(ch))

		g := t.Glyph(int(ch - First))
		for x := range g {
			g[x] = C(img.Column(x))
		}
	}
	return t, nil
}

// ParseBDF parses a BDF font and rasterizes it like FromFace.
func ParseBDF[C Column](data []byte, width, height int) (*Table[C], error) {
	f, err := bdf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: bdf: %w", err)
	}
	return FromFace[C](f.NewFace(), width, height)
}
