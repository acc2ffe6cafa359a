//go:build !tinygo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostKeypad samples the desktop keyboard as if it were the analog shield:
// arrows plus Enter, and a synthetic ladder voltage as the raw reading so
// diagnostics look like the real thing. Later assignments win, keeping the
// joystick priority order (select overrides all).
type hostKeypad struct{}

func (hostKeypad) Sample() (Key, int16) {
	k := KeyNone
	raw := int16(1023)

	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		k, raw = KeyRight, 0
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		k, raw = KeyLeft, 505
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		k, raw = KeyUp, 145
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		k, raw = KeyDown, 330
	}
	if ebiten.IsKeyPressed(ebiten.KeyEnter) {
		k, raw = KeySelect, 740
	}
	return k, raw
}
