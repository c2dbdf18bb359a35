// Package ssd1306text prints fixed-width bitmap text on a SSD1306 OLED
// display over I²C, without a frame buffer.
//
// See doc.go and the examples for how to use this package.
package ssd1306text

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/d2r2/go-logger"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"

	"github.com/flavioheleno/ssd1306text/font"
)

var lg = logger.NewPackageLogger("ssd1306text", logger.InfoLevel)

// Mode markers, the first byte of every transmission.
const (
	markerCommand = 0x00 // Co = 0, D/C = 0
	markerData    = 0x40 // Co = 0, D/C = 1
)

// pageHeight is the number of pixel rows addressed by one page.
const pageHeight = 8

// maxTx is the transaction size the command buffer is sized for, marker
// byte included. Longer payloads are not split.
const maxTx = 32

var (
	// ErrDisconnected is returned by drawing operations while the last bus
	// write failed. Nothing is transmitted.
	ErrDisconnected = errors.New("ssd1306text: display not connected")
	// ErrNoGlyph is returned for characters the font table does not hold.
	// Nothing is transmitted and the cursor does not move.
	ErrNoGlyph = errors.New("ssd1306text: no glyph for character")
)

// State is the connectivity of the display as seen by the last bus write.
type State int

const (
	// Uninitialized means nothing was sent yet.
	Uninitialized State = iota
	// Connected means the last write succeeded.
	Connected
	// Disconnected means the last write failed. Drawing is suspended until a
	// write succeeds again, which SetPos and Init may still attempt.
	Disconnected
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Connected:
		return "Connected"
	case Disconnected:
		return "Disconnected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be ≤128)
	H int // Height (default: 32, must be a multiple of 8 and ≤64)

	Addr     uint16 // I²C address, used by NewI2C (default: 0x3C)
	Contrast byte   // Contrast level 0-255, sent as is (DefaultOpts: 0x7D)
	ComPins  byte   // COM pins hardware configuration (default: 0x02, use 0x12 for most 128x64 panels)

	// Fallback receives the characters printed while the display is not
	// connected, typically a serial port. Optional.
	Fallback io.Writer
}

// DefaultOpts is a 128x32 panel at the usual address.
var DefaultOpts = Opts{
	W:        128,
	H:        32,
	Addr:     0x3C,
	Contrast: 0x7D,
	ComPins:  0x02,
}

// Dev is the device handle for the SSD1306 display.
//
// C is the column type of the font table, fixed for the lifetime of the
// device. Dev is not safe for concurrent use.
type Dev[C font.Column] struct {
	// Communication
	c        conn.Conn
	fallback io.Writer

	// Font
	font          font.Reader[C]
	pagesPerGlyph int

	// Display geometry
	rect       image.Rectangle
	cols, rows int // In character cells
	contrast   byte
	comPins    byte

	// Cursor in character cells
	col, row int

	// State
	invert bool
	state  State

	// Working buffers
	cmd [maxTx]byte
	buf []byte // Data marker, glyph columns and one spacer column
}

// NewI2C creates a new SSD1306 device connected via I²C at opts.Addr.
//
// See New for the behavior on bus errors.
func NewI2C[C font.Column](b i2c.Bus, f font.Reader[C], opts *Opts) (*Dev[C], error) {
	if b == nil {
		return nil, errors.New("ssd1306text: nil bus")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	return New(&i2c.Dev{Bus: b, Addr: addr}, f, opts)
}

// New creates a new SSD1306 device writing to c, sends the initialization
// sequence and clears the display.
//
// Only invalid options or font tables return an error. A display that does
// not answer still yields a device, in state Disconnected.
//
// opts can be nil to use DefaultOpts.
func New[C font.Column](c conn.Conn, f font.Reader[C], opts *Opts) (*Dev[C], error) {
	if c == nil {
		return nil, errors.New("ssd1306text: nil connection")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.W <= 0 || opts.W > 128 {
		return nil, errors.New("ssd1306text: width must be between 1 and 128")
	}
	if opts.H <= 0 || opts.H > 64 || opts.H%pageHeight != 0 {
		return nil, errors.New("ssd1306text: height must be a multiple of 8 between 8 and 64")
	}
	if err := font.Validate(f); err != nil {
		return nil, fmt.Errorf("ssd1306text: %w", err)
	}
	gw, gh := f.GlyphWidth(), f.GlyphHeight()
	if gh%pageHeight != 0 {
		return nil, fmt.Errorf("ssd1306text: glyph height %d is not a multiple of 8", gh)
	}
	if gh > opts.H {
		return nil, fmt.Errorf("ssd1306text: glyph height %d exceeds display height %d", gh, opts.H)
	}
	if gw+1 > opts.W {
		return nil, fmt.Errorf("ssd1306text: glyph width %d exceeds display width %d", gw, opts.W)
	}

	comPins := opts.ComPins
	if comPins == 0 {
		comPins = DefaultOpts.ComPins
	}
	pages := gh / pageHeight

	d := &Dev[C]{
		c:             c,
		fallback:      opts.Fallback,
		font:          f,
		pagesPerGlyph: pages,
		rect:          image.Rect(0, 0, opts.W, opts.H),
		cols:          opts.W / (gw + 1),
		rows:          opts.H / gh,
		contrast:      opts.Contrast,
		comPins:       comPins,
		buf:           make([]byte, 0, 1+(gw+1)*pages),
	}

	if err := d.Init(); err != nil {
		lg.Infof("%s: initialization failed: %v", d, err)
	}
	return d, nil
}

// Init sends the initialization sequence and clears the display.
//
// It is called by New and can be called again to recover a display that was
// power cycled.
func (d *Dev[C]) Init() error {
	err := d.command(
		0xAE,       // Display OFF
		0xD5, 0x80, // Clock divide ratio and oscillator frequency
		0xA8, byte(d.rect.Dy()-1), // Multiplex ratio
		0xD3, 0x00, // Display offset
		0x40,       // Start line 0
		0x8D, 0x14, // Charge pump enable
		0x20, 0x01, // Vertical addressing mode
		0xA1,            // Segment remap (column 127 mapped to SEG0)
		0xC8,            // COM output scan direction (COM[N-1] to COM0)
		0xDA, d.comPins, // COM pins hardware configuration
		0x81, d.contrast, // Contrast
		0xD9, 0xF1, // Pre-charge period
		0xDB, 0x20, // VCOMH deselect level (0.77*Vcc)
		0xA4, // Resume to RAM content display
		0xA6, // Normal display mode
		0x2E, // Deactivate scroll
		0xAF, // Display ON
	)
	if err != nil {
		return err
	}
	return d.Clear()
}

// Clear fills the display with spaces and leaves the cursor where it was.
//
// Each row is filled with one space more than fits, so the last one wraps
// into the next page and no column is left behind by the integer division
// of the width.
func (d *Dev[C]) Clear() error {
	if d.state != Connected {
		return ErrDisconnected
	}
	col, row := d.col, d.row

	var first error
	keep(&first, d.SetPos(0, 0))
	for r := 0; r < d.rows; r++ {
		keep(&first, d.SetPos(0, r))
		for i := 0; i <= d.cols; i++ {
			if d.state != Connected {
				keep(&first, ErrDisconnected)
				break
			}
			keep(&first, d.drawChar(' '))
		}
	}
	keep(&first, d.SetPos(col, row))
	return first
}

// SetPos moves the cursor to the character cell (col, row). Values out of
// range are clamped.
//
// The addressing window spans from the cell to the right edge of the
// display, so text longer than the row wraps into the next page.
//
// SetPos is sent even when the display is disconnected; a successful write
// reconnects it.
func (d *Dev[C]) SetPos(col, row int) error {
	d.col = min(max(col, 0), d.cols-1)
	d.row = min(max(row, 0), d.rows-1)
	return d.setCursor()
}

// Pos returns the cursor position in character cells.
func (d *Dev[C]) Pos() (col, row int) {
	return d.col, d.row
}

// WriteByte prints one character at the cursor.
//
// A null byte is ignored. A newline moves the cursor to the next row and
// keeps the column: it does not return to the left margin.
//
// While the display is not connected the character goes to Opts.Fallback
// and ErrDisconnected is returned.
func (d *Dev[C]) WriteByte(c byte) error {
	if c == 0 {
		return nil
	}
	if d.state != Connected {
		if d.fallback != nil {
			if _, err := d.fallback.Write([]byte{c}); err != nil {
				return err
			}
		}
		return ErrDisconnected
	}
	if c == '\n' {
		return d.SetPos(d.col, d.row+1)
	}
	return d.drawChar(c)
}

// Print prints s one character at a time. It keeps going after a failed
// character and returns the first error.
func (d *Dev[C]) Print(s string) error {
	var first error
	for i := 0; i < len(s); i++ {
		keep(&first, d.WriteByte(s[i]))
	}
	return first
}

// Println prints s followed by a newline. Like WriteByte('\n') it moves to
// the next row without resetting the column.
func (d *Dev[C]) Println(s string) error {
	first := d.Print(s)
	keep(&first, d.WriteByte('\n'))
	return first
}

// Write implements io.Writer. Every byte is attempted.
func (d *Dev[C]) Write(p []byte) (int, error) {
	var first error
	for _, c := range p {
		keep(&first, d.WriteByte(c))
	}
	return len(p), first
}

// SetInvert selects light-on-dark (true) or dark-on-light text for the
// characters printed from now on.
func (d *Dev[C]) SetInvert(invert bool) {
	d.invert = invert
}

// Inverted reports whether text is printed light-on-dark.
func (d *Dev[C]) Inverted() bool {
	return d.invert
}

// SetContrast sets the display contrast (0-255).
func (d *Dev[C]) SetContrast(level byte) error {
	if d.state != Connected {
		return ErrDisconnected
	}
	d.contrast = level
	return d.command(0x81, level)
}

// State returns the connectivity recorded by the last bus write.
func (d *Dev[C]) State() State {
	return d.state
}

// Connected reports whether the last bus write succeeded.
func (d *Dev[C]) Connected() bool {
	return d.state == Connected
}

// Conn returns the connection the device writes to.
func (d *Dev[C]) Conn() conn.Conn {
	return d.c
}

// Bounds returns the display bounds in pixels.
func (d *Dev[C]) Bounds() image.Rectangle {
	return d.rect
}

// Columns returns the number of characters per row.
func (d *Dev[C]) Columns() int {
	return d.cols
}

// Rows returns the number of character rows.
func (d *Dev[C]) Rows() int {
	return d.rows
}

// String returns a string representation of the device.
func (d *Dev[C]) String() string {
	return fmt.Sprintf("ssd1306text.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// setCursor restricts the addressing window to the cursor cell and the
// rest of the row.
func (d *Dev[C]) setCursor() error {
	w := d.font.GlyphWidth()
	p := d.pagesPerGlyph
	return d.command(
		0x21, byte(d.col*w), byte(d.rect.Dx()-1), // Column address range
		0x22, byte(d.row*p), byte((d.row+1)*p-1), // Page address range
	)
}

// drawChar sends the columns of one glyph followed by a blank column.
func (d *Dev[C]) drawChar(c byte) error {
	g, ok := font.Index(d.font, c)
	if !ok {
		return fmt.Errorf("%w: 0x%02X", ErrNoGlyph, c)
	}
	d.buf = append(d.buf[:0], markerData)
	for i := 0; i < d.font.GlyphWidth(); i++ {
		col := d.font.Column(g, i)
		if d.invert {
			col = ^col
		}
		d.writeCol(uint64(col))
	}
	d.writeCol(0) // Space between characters
	return d.tx(d.buf)
}

// writeCol appends one column to the line buffer, top page first.
func (d *Dev[C]) writeCol(col uint64) {
	for i := 0; i < d.pagesPerGlyph; i++ {
		d.buf = append(d.buf, byte(col>>(8*i)))
	}
}

// command sends a slice of command bytes.
func (d *Dev[C]) command(cmds ...byte) error {
	frame := append(d.cmd[:0], markerCommand)
	frame = append(frame, cmds...)
	return d.tx(frame)
}

// tx sends one frame and records the outcome as the device state.
func (d *Dev[C]) tx(frame []byte) error {
	lg.Debugf("%s: tx % X", d, frame)
	err := d.c.Tx(frame, nil)
	d.setState(err)
	if err != nil {
		return fmt.Errorf("ssd1306text: write failed: %w", err)
	}
	return nil
}

func (d *Dev[C]) setState(err error) {
	next := Connected
	if err != nil {
		next = Disconnected
	}
	if next == d.state {
		return
	}
	if err != nil {
		lg.Infof("%s: bus write failed, display disconnected: %v", d, err)
	} else {
		lg.Infof("%s: display connected", d)
	}
	d.state = next
}

// keep stores err in first unless an earlier error is already there.
func keep(first *error, err error) {
	if *first == nil {
		*first = err
	}
}
