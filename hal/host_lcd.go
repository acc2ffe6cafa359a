//go:build !tinygo

package hal

import (
	"image/color"
	"sync"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// The simulated panel mimics a 1602-class character LCD: a cell grid
// rendered into an RGB565 framebuffer that the desktop window presents.
const (
	lcdSimColumns = 16
	lcdSimRows    = 2

	lcdCellWidth  = 8
	lcdCellHeight = 16
)

var lcdSimFont = &proggy.TinySZ8pt7b

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return uint8((rr * 255) / 31), uint8((gg * 255) / 63), uint8((bb * 255) / 31)
}

type lcdSim struct {
	mu       sync.Mutex
	cols     int
	rows     int
	cells    []byte
	col      int
	row      int
	contrast uint8

	stride int
	buf    []byte // RGB565, little endian
}

func newLCDSim() *lcdSim {
	d := &lcdSim{
		cols:     lcdSimColumns,
		rows:     lcdSimRows,
		cells:    make([]byte, lcdSimColumns*lcdSimRows),
		contrast: 0xFF,
		stride:   lcdSimColumns * lcdCellWidth * 2,
		buf:      make([]byte, lcdSimColumns*lcdCellWidth*lcdSimRows*lcdCellHeight*2),
	}
	for i := range d.cells {
		d.cells[i] = ' '
	}
	d.redraw()
	return d
}

func (d *lcdSim) Columns() int { return d.cols }
func (d *lcdSim) Rows() int    { return d.rows }

func (d *lcdSim) widthPx() int  { return d.cols * lcdCellWidth }
func (d *lcdSim) heightPx() int { return d.rows * lcdCellHeight }

func (d *lcdSim) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.cells {
		d.cells[i] = ' '
	}
	d.redraw()
}

func (d *lcdSim) SetCursor(col, row int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.col = col
	d.row = row
}

func (d *lcdSim) PrintChar(ch byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.row >= 0 && d.row < d.rows && d.col >= 0 && d.col < d.cols {
		d.cells[d.row*d.cols+d.col] = ch
		d.drawCell(d.col, d.row)
	}
	d.col++ // no auto-wrap, matching the hardware contract
}

func (d *lcdSim) SetContrast(level uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.contrast = level
	d.redraw()
}

func (d *lcdSim) snapshotRGB565(dst []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(dst, d.buf)
}

// colors derives the backlight/ink pair from the contrast level.
func (d *lcdSim) colors() (fg, bg color.RGBA) {
	level := uint16(d.contrast)
	if level < 0x20 {
		level = 0x20
	}
	bg = color.RGBA{
		R: uint8(0x10 * level / 255),
		G: uint8(0x38 * level / 255),
		B: uint8(0x68 * level / 255),
		A: 0xFF,
	}
	fg = color.RGBA{R: 0xE8, G: 0xF0, B: 0xFF, A: 0xFF}
	return fg, bg
}

func (d *lcdSim) redraw() {
	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			d.drawCell(col, row)
		}
	}
}

// drawCell paints one character cell. Callers hold d.mu.
func (d *lcdSim) drawCell(col, row int) {
	x0 := col * lcdCellWidth
	y0 := row * lcdCellHeight
	fg, bg := d.colors()

	for y := 0; y < lcdCellHeight; y++ {
		for x := 0; x < lcdCellWidth; x++ {
			d.setPixel(x0+x, y0+y, bg)
		}
	}

	ch := d.cells[row*d.cols+col]
	if ch == ' ' {
		return
	}

	if slot, ok := TranslateSymbol(ch); ok {
		// 5x8 symbol art, pixel-doubled vertically to fill the cell.
		bits := SymbolBitmaps[slot]
		for y := 0; y < 8; y++ {
			for x := 0; x < 5; x++ {
				if bits[y]&(1<<(4-x)) == 0 {
					continue
				}
				d.setPixel(x0+1+x, y0+y*2, fg)
				d.setPixel(x0+1+x, y0+y*2+1, fg)
			}
		}
		return
	}

	tinyfont.DrawChar(lcdCanvas{d}, lcdSimFont, int16(x0+1), int16(y0+11), rune(ch), fg)
}

func (d *lcdSim) setPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.widthPx() || y >= d.heightPx() {
		return
	}
	p := rgb565(c.R, c.G, c.B)
	i := y*d.stride + x*2
	d.buf[i] = byte(p)
	d.buf[i+1] = byte(p >> 8)
}

// lcdCanvas adapts the sim framebuffer to drivers.Displayer so tinyfont can
// draw onto it. Used only while d.mu is held.
type lcdCanvas struct {
	d *lcdSim
}

func (c lcdCanvas) Size() (int16, int16) {
	return int16(c.d.widthPx()), int16(c.d.heightPx())
}

func (c lcdCanvas) SetPixel(x, y int16, col color.RGBA) {
	c.d.setPixel(int(x), int(y), col)
}

func (c lcdCanvas) Display() error { return nil }
