//go:build !tinygo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"polaris/internal/buildinfo"
)

const lcdWindowScale = 4

// RunWindow starts a desktop window that shows the simulated panel and
// feeds keyboard input to the keypad backend. It blocks until the window
// closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	lcd := h.lcd.(*lcdSim)
	g := &hostGame{lcd: lcd, step: step}
	ebiten.SetWindowTitle("Polaris (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(lcd.widthPx()*lcdWindowScale, lcd.heightPx()*lcdWindowScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	lcd     *lcdSim
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	w, h := g.lcd.widthPx(), g.lcd.heightPx()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.scratch = make([]byte, len(g.lcd.buf))
		g.fbImg = ebiten.NewImage(w, h)
	}

	g.lcd.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.lcd.widthPx(), g.lcd.heightPx()
}
