// Package image1bit provides a 1-bit image format packed in vertical columns.
//
// SSD1306-class controllers in vertical addressing mode consume pixel data one
// column at a time, 8 rows per byte, least significant bit at the top. This
// package stores a whole column in a single uint64 so that a glyph column can
// be read back as one integer and split into page bytes.
//
// Memory layout example for a 3-pixel high column:
//
//	Rows:   0 1 2
//	Values: 1 0 1
//	Column: 0b101 (bit y = row y)
//
// This package provides:
//
//   - Bit: A color type representing an on/off pixel
//   - BitModel: A color model converting standard Go colors to Bit
//   - VerticalColumns: A draw.Image implementation with column packing
//
// Example usage:
//
//	img := image1bit.NewVerticalColumns(image.Rect(0, 0, 6, 16))
//	img.SetBit(2, 3, image1bit.On)
//	col := img.Column(2) // 0b1000
//
// The image works with golang.org/x/image/font.Drawer, which is how font
// faces are rasterized into glyph tables.
package image1bit
