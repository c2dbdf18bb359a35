// Package font holds the read-only glyph tables rendered by the ssd1306text
// driver.
//
// A table maps the printable ASCII characters 0x20 to 0x7E to fixed-width
// bitmaps. Each bitmap is a run of columns; each column is an unsigned integer
// whose bit n is the pixel n rows below the top of the glyph. The integer
// type is chosen by the glyph height (uint8 for 8 pixels, uint16 for 16 and
// so on) and is a type parameter, so one table is selected per build.
package font

import (
	"errors"
	"fmt"
	"math/bits"
)

// First is the character stored at glyph index 0.
const First = 0x20

// Last is the last printable ASCII character.
const Last = 0x7E

// Count is the number of glyphs in a complete ASCII table.
const Count = Last - First + 1

// Column is the storage type of one glyph column.
type Column interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Reader reads glyph columns out of a font table.
//
// Implementations decide where the data lives: Table keeps it in ordinary
// memory, Packed reads it from a string constant, which TinyGo places in
// flash.
type Reader[C Column] interface {
	// GlyphWidth is the number of columns per glyph.
	GlyphWidth() int
	// GlyphHeight is the number of pixel rows per glyph.
	GlyphHeight() int
	// Len is the number of glyphs, starting at First.
	Len() int
	// Column returns column col of glyph number glyph.
	Column(glyph, col int) C
}

// Bits returns the width in bits of the column type C.
func Bits[C Column]() int {
	return bits.Len64(uint64(^C(0)))
}

// Index returns the glyph index of character ch in r, or false when r has no
// glyph for it.
func Index[C Column](r Reader[C], ch byte) (int, bool) {
	if ch < First {
		return 0, false
	}
	i := int(ch) - First
	if i >= r.Len() {
		return 0, false
	}
	return i, true
}

// Validate checks that the dimensions of r are usable with the column type.
func Validate[C Column](r Reader[C]) error {
	if r == nil {
		return errors.New("font: nil table")
	}
	if r.GlyphWidth() <= 0 {
		return fmt.Errorf("font: invalid glyph width %d", r.GlyphWidth())
	}
	if h := r.GlyphHeight(); h <= 0 || h > Bits[C]() {
		return fmt.Errorf("font: glyph height %d does not fit in %d-bit columns", h, Bits[C]())
	}
	return nil
}

// Table is a font table kept in ordinary memory.
type Table[C Column] struct {
	Width  int // Columns per glyph
	Height int // Pixel rows per glyph
	Data   []C // Len()*Width columns, glyph after glyph
}

// NewTable returns an empty table with room for every printable ASCII glyph.
func NewTable[C Column](width, height int) *Table[C] {
	return &Table[C]{
		Width:  width,
		Height: height,
		Data:   make([]C, Count*width),
	}
}

// GlyphWidth implements Reader.
func (t *Table[C]) GlyphWidth() int {
	return t.Width
}

// GlyphHeight implements Reader.
func (t *Table[C]) GlyphHeight() int {
	return t.Height
}

// Len implements Reader.
func (t *Table[C]) Len() int {
	if t.Width == 0 {
		return 0
	}
	return len(t.Data) / t.Width
}

// Column implements Reader.
func (t *Table[C]) Column(glyph, col int) C {
	return t.Data[glyph*t.Width+col]
}

// Glyph returns the columns of one glyph. The slice aliases the table.
func (t *Table[C]) Glyph(glyph int) []C {
	return t.Data[glyph*t.Width : (glyph+1)*t.Width]
}

// Packed is a font table stored as little-endian columns in a string.
//
// Each column takes Bits[C]()/8 bytes. Declaring the data as a string
// constant keeps it in read-only memory on targets that distinguish it.
type Packed[C Column] struct {
	Width  int
	Height int
	Data   string
}

// GlyphWidth implements Reader.
func (p *Packed[C]) GlyphWidth() int {
	return p.Width
}

// GlyphHeight implements Reader.
func (p *Packed[C]) GlyphHeight() int {
	return p.Height
}

// Len implements Reader.
func (p *Packed[C]) Len() int {
	n := p.Width * Bits[C]() / 8
	if n == 0 {
		return 0
	}
	return len(p.Data) / n
}

// Column implements Reader.
func (p *Packed[C]) Column(glyph, col int) C {
	size := Bits[C]() / 8
	off := (glyph*p.Width + col) * size
	var v uint64
	for i := size - 1; i >= 0; i-- {
		v = v<<8 | uint64(p.Data[off+i])
	}
	return C(v)
}

// Pack copies any table into a Packed table of the same column type.
func Pack[C Column](r Reader[C]) *Packed[C] {
	size := Bits[C]() / 8
	buf := make([]byte, 0, r.Len()*r.GlyphWidth()*size)
	for g := 0; g < r.Len(); g++ {
		for c := 0; c < r.GlyphWidth(); c++ {
			v := uint64(r.Column(g, c))
			for i := 0; i < size; i++ {
				buf = append(buf, byte(v>>(8*i)))
			}
		}
	}
	return &Packed[C]{Width: r.GlyphWidth(), Height: r.GlyphHeight(), Data: string(buf)}
}
