// Package ssd1306text prints text on a SSD1306 OLED display via I²C.
//
// The SSD1306 is a monochrome OLED controller driving up to 128×64 pixels,
// organized in pages of 8 pixel rows. This driver renders fixed-width bitmap
// fonts straight into the controller RAM, one character at a time, without
// keeping a frame buffer: the only working memory is a line buffer holding
// one glyph.
//
// # Display Characteristics
//
// - Monochrome, 128×32 or 128×64 pixels (any multiple of 8 rows up to 64)
// - Pages of 8 vertical pixels, one byte per column per page
// - Adjustable contrast (0-255)
// - Light-on-dark text through Dev.SetInvert
//
// # Hardware Connection
//
// Connect the SSD1306 display to your system via I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//
// The 7-bit address is 0x3C on most modules, 0x3D when the address jumper is
// closed.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/ssd1306text"
//		"github.com/flavioheleno/ssd1306text/font"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// Create device, this initializes and clears the display
//		dev, _ := ssd1306text.NewI2C(bus, font.Basic5x8, &ssd1306text.DefaultOpts)
//
//		dev.SetPos(1, 1)
//		dev.Println("hello ssd1306")
//	}
//
// # Fonts
//
// A font table is chosen once, when the device is created, and its column
// type is a type parameter of Dev: 8-pixel fonts use uint8 columns, 16-pixel
// fonts uint16 and so on up to 64 pixels. The glyph height must be a multiple
// of 8. The font package provides a built-in 5x8 table, rasterizes any
// golang.org/x/image/font.Face or BDF file, and cmd/fontgen turns those into
// Go source that keeps the table in read-only memory:
//
//	tbl, _ := font.FromFace[uint16](basicfont.Face7x13, 7, 16)
//	dev, _ := ssd1306text.NewI2C[uint16](bus, tbl, nil)
//
// # Cursor
//
// The cursor is expressed in character cells. Each character occupies the
// glyph width plus one blank column. SetPos clamps out of range cells to the
// last column and row.
//
// A newline, including the one written by Println, moves the cursor one row
// down and keeps its column. It does not return to the left margin:
//
//	dev.SetPos(3, 0)
//	dev.Println("ab") // cursor is now at (3, 1)
//
// Text longer than the rest of a row wraps into the next page, starting at
// the left edge of the display.
//
// # Error Handling
//
// Every operation returns an error, but the device degrades silently: the
// only failure is a bus write failing, after which the device is
// Disconnected and printing and clearing stop sending anything until a write
// succeeds again. SetPos and Init are still sent and reconnect the device.
// Callers that do not care can ignore the errors:
//
//	dev.Print("temp: 21C") // nothing happens if the display is unplugged
//	if !dev.Connected() {
//		// ...
//	}
//
// When Opts.Fallback is set, characters printed while disconnected are copied
// to it, for instance to a serial console.
//
// # Transports
//
// New accepts any periph.io conn.Conn. The transport package adapts the
// Linux i2c-dev driver from github.com/d2r2/go-i2c and the I2C interface of
// tinygo.org/x/drivers, so the same code runs on microcontrollers.
//
// # Datasheet
//
// For detailed command descriptions and timing information, see:
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306text
