//go:build tinygo

package hal

import (
	"errors"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

const (
	hd44780Columns = 16
	hd44780Rows    = 2
)

// hd44780Display drives a 1602 panel behind a PCF8574-style I2C backpack.
// The eight symbol glyphs live in CGRAM slots 0-7, uploaded once at init.
type hd44780Display struct {
	dev       hd44780i2c.Device
	backlight bool
}

func initHD44780(bus drivers.I2C) (*hd44780Display, error) {
	for _, addr := range []uint8{0x27, 0x3F} {
		// Probe first: the driver's Configure does not report absence.
		if err := bus.Tx(uint16(addr), []byte{0x00}, nil); err != nil {
			continue
		}

		dev := hd44780i2c.New(bus, addr)
		dev.Configure(hd44780i2c.Config{
			Width:  hd44780Columns,
			Height: hd44780Rows,
		})
		for slot := range SymbolBitmaps {
			dev.CreateCharacter(uint8(slot), SymbolBitmaps[slot][:])
		}
		dev.BacklightOn(true)
		dev.ClearDisplay()

		return &hd44780Display{dev: dev, backlight: true}, nil
	}
	return nil, errors.New("hd44780: not detected at 0x27/0x3F")
}

func (d *hd44780Display) Columns() int { return hd44780Columns }
func (d *hd44780Display) Rows() int    { return hd44780Rows }

func (d *hd44780Display) Clear() {
	d.dev.ClearDisplay()
}

func (d *hd44780Display) SetCursor(col, row int) {
	if col < 0 || col >= hd44780Columns || row < 0 || row >= hd44780Rows {
		return
	}
	d.dev.SetCursor(uint8(col), uint8(row))
}

func (d *hd44780Display) PrintChar(ch byte) {
	b, _ := TranslateSymbol(ch)
	d.dev.Print([]byte{b})
}

// SetContrast: the backpack has no analog control, only the backlight
// switch, so anything past the knee is "on".
func (d *hd44780Display) SetContrast(level uint8) {
	on := level >= 0x20
	if on == d.backlight {
		return
	}
	d.backlight = on
	d.dev.BacklightOn(on)
}
