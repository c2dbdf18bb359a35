// Package transport adapts I²C stacks other than periph.io to the conn.Conn
// interface consumed by the ssd1306text driver.
//
// The driver only ever writes: every transmission is a single Tx(w, nil)
// addressed to the display. Adapters reject reads.
package transport

import (
	"errors"
	"fmt"

	"github.com/d2r2/go-i2c"
	"periph.io/x/conn/v3"
	"tinygo.org/x/drivers"
)

// ErrRead is returned when a caller asks an adapter to read.
var ErrRead = errors.New("transport: read not supported")

// byteWriter is the part of *i2c.I2C used by D2R2.
type byteWriter interface {
	WriteBytes(buf []byte) (int, error)
	GetAddr() uint8
	GetBus() int
	Close() error
}

// D2R2 is a conn.Conn backed by github.com/d2r2/go-i2c (Linux i2c-dev).
type D2R2 struct {
	dev byteWriter
}

// OpenD2R2 opens /dev/i2c-<bus> and binds it to the device at addr.
func OpenD2R2(addr uint8, bus int) (*D2R2, error) {
	dev, err := i2c.NewI2C(addr, bus)
	if err != nil {
		return nil, fmt.Errorf("transport: open i2c-%d: %w", bus, err)
	}
	return &D2R2{dev: dev}, nil
}

// Tx implements conn.Conn.
func (d *D2R2) Tx(w, r []byte) error {
	if len(r) != 0 {
		return ErrRead
	}
	n, err := d.dev.WriteBytes(w)
	if err != nil {
		return err
	}
	if n != len(w) {
		return fmt.Errorf("transport: short write %d/%d", n, len(w))
	}
	return nil
}

// Duplex implements conn.Conn.
func (d *D2R2) Duplex() conn.Duplex {
	return conn.Half
}

// String implements conn.Conn.
func (d *D2R2) String() string {
	return fmt.Sprintf("i2c-%d@0x%02X", d.dev.GetBus(), d.dev.GetAddr())
}

// Close releases the i2c-dev file.
func (d *D2R2) Close() error {
	return d.dev.Close()
}

// TinyGo is a conn.Conn over a tinygo.org/x/drivers I2C bus at a fixed
// address. machine.I2C0 and friends satisfy drivers.I2C.
type TinyGo struct {
	Bus  drivers.I2C
	Addr uint16
}

// NewTinyGo binds bus to the device at addr.
func NewTinyGo(bus drivers.I2C, addr uint16) *TinyGo {
	return &TinyGo{Bus: bus, Addr: addr}
}

// Tx implements conn.Conn.
func (t *TinyGo) Tx(w, r []byte) error {
	if len(r) != 0 {
		return ErrRead
	}
	return t.Bus.Tx(t.Addr, w, nil)
}

// Duplex implements conn.Conn.
func (t *TinyGo) Duplex() conn.Duplex {
	return conn.Half
}

// String implements conn.Conn.
func (t *TinyGo) String() string {
	return fmt.Sprintf("tinygo-i2c@0x%02X", t.Addr)
}

var _ conn.Conn = (*D2R2)(nil)
var _ conn.Conn = (*TinyGo)(nil)
