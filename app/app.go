// Package app wires the HAL capabilities to the core input and menu
// components and runs the single-threaded control loop.
package app

import (
	"fmt"
	"time"

	"polaris/hal"
	"polaris/keypad"
	"polaris/menu"
	"polaris/orient"
)

// Top-level menu item ids. Arbitrary, but stable: submenus are addressed
// by id, never by position.
const (
	itemRA byte = iota + 1
	itemDEC
	itemGO
	itemHA
	itemCTRL
	itemCAL
	itemINFO
)

const (
	maxMenuItems = 8

	// How often the status glyph and INFO readout refresh, in loop ticks.
	statusInterval = 120

	brightnessStep = 16
)

type App struct {
	log  hal.Logger
	pad  *keypad.Keypad
	menu *menu.Menu
	tilt *orient.Monitor
	cols int

	tracking bool
	tick     uint64
}

// New builds the UI over h and returns the per-tick step function
// (host runner entrypoint).
func New(h hal.HAL) func() error {
	a := newApp(h)
	return a.step
}

// Run drives the control loop forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		if err := step(); err != nil {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func newApp(h hal.HAL) *App {
	a := &App{
		log:  h.Logger(),
		pad:  keypad.New(h.Keypad()),
		menu: menu.New(h.Display(), h.Settings(), maxMenuItems),
		tilt: orient.New(h.Accelerometer(), false),
	}
	if d := h.Display(); d != nil {
		a.cols = d.Columns()
	}

	a.menu.Startup()
	a.logf("app: brightness %d", a.menu.BacklightBrightness())

	for _, it := range []menu.Item{
		{Label: "RA", ID: itemRA},
		{Label: "DEC", ID: itemDEC},
		{Label: "GO", ID: itemGO},
		{Label: "HA", ID: itemHA},
		{Label: "CTRL", ID: itemCTRL},
		{Label: "CAL", ID: itemCAL},
		{Label: "INFO", ID: itemINFO},
	} {
		if err := a.menu.AddItem(it.Label, it.ID); err != nil {
			a.logf("app: add %q: %v", it.Label, err)
		}
	}

	a.menu.Render()
	a.showSubmenu()
	a.drawTrackingGlyph()
	return a
}

func (a *App) step() error {
	var key hal.Key
	if a.pad.KeyChanged(&key) {
		a.handleKey(key)
	}

	a.tick++
	if a.tick%statusInterval == 0 {
		a.drawTrackingGlyph()
		if a.menu.ActiveID() == itemINFO {
			a.showSubmenu()
		}
	}
	return nil
}

func (a *App) handleKey(key hal.Key) {
	switch key {
	case hal.KeyRight:
		a.menu.Advance(+1)
		a.showSubmenu()

	case hal.KeyLeft:
		a.menu.Advance(-1)
		a.showSubmenu()

	case hal.KeyUp, hal.KeyDown:
		if a.menu.ActiveID() != itemCAL {
			return
		}
		level := int(a.menu.BacklightBrightness())
		if key == hal.KeyUp {
			level += brightnessStep
		} else {
			level -= brightnessStep
		}
		if level > 0xFF {
			level = 0xFF
		}
		if level < 0 {
			level = 0
		}
		a.menu.SetBacklightBrightness(uint8(level), false)
		a.showSubmenu()

	case hal.KeySelect:
		switch a.menu.ActiveID() {
		case itemRA:
			a.tracking = !a.tracking
			a.drawTrackingGlyph()
			a.logf("app: tracking %v", a.tracking)
		case itemCAL:
			a.menu.SetBacklightBrightness(a.menu.BacklightBrightness(), true)
			a.logf("app: brightness %d saved", a.menu.BacklightBrightness())
		case itemINFO:
			a.showSubmenu()
		}
	}
}

// showSubmenu draws the active item's second row. The @ and apostrophe
// characters come out as the degree and arcminute glyphs on the panel.
func (a *App) showSubmenu() {
	var line string
	switch a.menu.ActiveID() {
	case itemRA:
		line = "RA  02h 31' 49"
	case itemDEC:
		line = "DEC +89@ 15' 51"
	case itemGO:
		line = "^ Polaris"
	case itemHA:
		line = "HA  03h 12'"
	case itemCTRL:
		line = "Speed 1.0x"
	case itemCAL:
		line = fmt.Sprintf("Bright %3d", a.menu.BacklightBrightness())
	case itemINFO:
		if !a.tilt.Present() {
			line = "No tilt sensor"
			break
		}
		ang := a.tilt.Angles()
		line = fmt.Sprintf("P%+5.1f@ R%+5.1f@", ang.Pitch, ang.Roll)
	}

	a.menu.SetCursor(0, 1)
	a.menu.PrintLine(line)
}

// drawTrackingGlyph paints the tracking state into the reserved last
// column of row 0, outside the menu's diff cache.
func (a *App) drawTrackingGlyph() {
	if a.cols <= 0 {
		return
	}
	ch := byte('`')
	if a.tracking {
		ch = '&'
	}
	a.menu.PrintCharAt(a.cols-1, 0, ch)
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}
