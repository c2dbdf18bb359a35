package image1bit

import (
	"image"
	"image/color"
)

// MaxHeight is the tallest column a VerticalColumns image can hold.
const MaxHeight = 64

// Bit represents an on/off pixel.
type Bit bool

const (
	// Off is a dark pixel.
	Off Bit = false
	// On is a lit pixel.
	On Bit = true
)

// RGBA converts the Bit to standard RGBA.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// String returns "On" or "Off".
func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Off
	}
	// Same luma weights as image/color.Gray, threshold at half intensity.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalColumns is a 1-bit image where each column is packed into a uint64.
// Bit n of Cols[x] is the pixel at row Rect.Min.Y+n.
type VerticalColumns struct {
	Cols []uint64        // One entry per column
	Rect image.Rectangle // Image bounds
}

// NewVerticalColumns creates a new VerticalColumns image with the specified
// bounds. The height must not exceed MaxHeight.
func NewVerticalColumns(r image.Rectangle) *VerticalColumns {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalColumns{Rect: r}
	}
	if h > MaxHeight {
		panic("image1bit: height must be at most 64")
	}
	return &VerticalColumns{
		Cols: make([]uint64, w),
		Rect: r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalColumns) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalColumns) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalColumns) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *VerticalColumns) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	i, mask := p.pixOffset(x, y)
	return p.Cols[i]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalColumns) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *VerticalColumns) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i, mask := p.pixOffset(x, y)
	if b {
		p.Cols[i] |= mask
	} else {
		p.Cols[i] &^= mask
	}
}

// Column returns the packed column at x, or 0 outside the bounds.
func (p *VerticalColumns) Column(x int) uint64 {
	if x < p.Rect.Min.X || x >= p.Rect.Max.X {
		return 0
	}
	return p.Cols[x-p.Rect.Min.X]
}

// Clear turns every pixel off.
func (p *VerticalColumns) Clear() {
	clear(p.Cols)
}

// pixOffset returns the column index and bit mask for the pixel at (x, y).
func (p *VerticalColumns) pixOffset(x, y int) (int, uint64) {
	return x - p.Rect.Min.X, 1 << uint(y-p.Rect.Min.Y)
}
