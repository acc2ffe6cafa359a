//go:build tinygo

package hal

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	oledWidthPx  = 128
	oledHeightPx = 32
	oledAddress  = 0x3C

	oledCellWidth  = 8
	oledCellHeight = 16
	oledColumns    = oledWidthPx / oledCellWidth
	oledRows       = oledHeightPx / oledCellHeight
)

var (
	oledFont = &proggy.TinySZ8pt7b
	oledOn   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	oledOff  = color.RGBA{A: 0xFF}
)

// oledDisplay renders the character grid onto an SSD1306, one 8x16 pixel
// cell per character. Symbols reuse the shared 5x8 art, pixel-doubled.
type oledDisplay struct {
	dev ssd1306.Device
	col int
	row int
}

func initSSD1306(bus drivers.I2C) (*oledDisplay, error) {
	if err := bus.Tx(oledAddress, []byte{0x00}, nil); err != nil {
		return nil, errors.New("ssd1306: not detected at 0x3C")
	}

	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address: oledAddress,
		Width:   oledWidthPx,
		Height:  oledHeightPx,
	})
	dev.ClearDisplay()

	return &oledDisplay{dev: dev}, nil
}

func (d *oledDisplay) Columns() int { return oledColumns }
func (d *oledDisplay) Rows() int    { return oledRows }

func (d *oledDisplay) Clear() {
	d.dev.ClearDisplay()
}

func (d *oledDisplay) SetCursor(col, row int) {
	d.col = col
	d.row = row
}

func (d *oledDisplay) PrintChar(ch byte) {
	col, row := d.col, d.row
	d.col++
	if col < 0 || col >= oledColumns || row < 0 || row >= oledRows {
		return
	}

	x0 := int16(col * oledCellWidth)
	y0 := int16(row * oledCellHeight)
	for y := int16(0); y < oledCellHeight; y++ {
		for x := int16(0); x < oledCellWidth; x++ {
			d.dev.SetPixel(x0+x, y0+y, oledOff)
		}
	}

	if slot, ok := TranslateSymbol(ch); ok {
		bits := SymbolBitmaps[slot]
		for y := int16(0); y < 8; y++ {
			for x := int16(0); x < 5; x++ {
				if bits[y]&(1<<(4-x)) == 0 {
					continue
				}
				d.dev.SetPixel(x0+1+x, y0+y*2, oledOn)
				d.dev.SetPixel(x0+1+x, y0+y*2+1, oledOn)
			}
		}
	} else if ch != ' ' {
		tinyfont.DrawChar(&d.dev, oledFont, x0+1, y0+11, rune(ch), oledOn)
	}

	d.dev.Display()
}

// SetContrast: the driver exposes no contrast command, so brightness
// requests are silently ignored on this panel.
func (d *oledDisplay) SetContrast(level uint8) {}
