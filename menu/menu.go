// Package menu owns the ordered item list and active selection of a
// single-line horizontal menu, and renders it onto a character display
// while writing as few bytes to the hardware as possible.
package menu

import (
	"errors"

	"polaris/hal"
)

// ErrFull is returned by AddItem once the fixed capacity is reached.
var ErrFull = errors.New("menu: item capacity exceeded")

// Item is one selectable entry. IDs are caller-assigned and need not be
// contiguous; uniqueness is the caller's problem.
type Item struct {
	Label string
	ID    byte
}

// Menu is the model plus renderer. It exclusively owns its items and the
// per-row render cache; the display is a long-lived dependency it drives
// but does not own. Single caller only, no internal locking.
type Menu struct {
	disp  hal.Display
	store hal.Settings

	columns int
	items   []Item
	active  int
	longest int

	cursorCol int
	cursorRow int
	last      []string

	brightness uint8
}

// New returns a menu over disp with room for at most maxItems entries.
// A nil display or settings store degrades to the null backends.
func New(disp hal.Display, store hal.Settings, maxItems int) *Menu {
	if disp == nil {
		disp = hal.NullDisplay{}
	}
	if store == nil {
		store = hal.NullSettings{}
	}
	if maxItems < 0 {
		maxItems = 0
	}
	return &Menu{
		disp:       disp,
		store:      store,
		columns:    disp.Columns(),
		items:      make([]Item, 0, maxItems),
		last:       make([]string, disp.Rows()),
		brightness: 0xFF,
	}
}

// Startup applies the persisted backlight level, if there is one.
func (m *Menu) Startup() {
	if level, ok := m.store.Brightness(); ok {
		m.brightness = level
	}
	m.SetBacklightBrightness(m.brightness, false)
}

// AddItem appends an entry; call order defines traversal order
// permanently.
func (m *Menu) AddItem(label string, id byte) error {
	if len(m.items) == cap(m.items) {
		return ErrFull
	}
	m.items = append(m.items, Item{Label: label, ID: id})
	if len(label) > m.longest {
		m.longest = len(label)
	}
	return nil
}

// FindByID returns the item with the given id. Absence is an expected,
// checked outcome, not an error.
func (m *Menu) FindByID(id byte) (Item, bool) {
	for _, it := range m.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ActiveID returns the id of the selected item, or 0 when the menu is
// empty.
func (m *Menu) ActiveID() byte {
	if len(m.items) == 0 {
		return 0
	}
	return m.items[m.active].ID
}

// SetActiveByID selects the item with the given id. An unknown id leaves
// the selection unchanged; that is deliberate, not a validation error.
func (m *Menu) SetActiveByID(id byte) {
	for i, it := range m.items {
		if it.ID == id {
			m.active = i
			break
		}
	}
}

// Advance moves the selection by delta, wrapping circularly, then redraws
// the selector line and proactively blanks the submenu row: the newly
// activated item may choose to print nothing there, and stale content from
// the previous item must not survive.
func (m *Menu) Advance(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	m.active = ((m.active+delta)%n + n) % n
	m.Render()

	if len(m.last) > 1 && m.columns > 0 {
		m.disp.SetCursor(0, 1)
		for i := 0; i < m.columns; i++ {
			m.disp.PrintChar(' ')
		}
		m.last[1] = blankLine(m.columns)
	}
	m.SetCursor(0, 1)
}

// Render lays the selector line out and writes it to row 0.
//
// Every item contributes its decorated label (selector arrows around the
// active one, blanks otherwise); the visible window into the concatenation
// is placed so the active item sits at the centering margin, front-padded
// when the window would start before the string. The last column is left
// for the status glyph drawn by the application.
func (m *Menu) Render() {
	if m.columns <= 0 {
		return
	}

	m.cursorCol, m.cursorRow = 0, 0
	if len(m.items) == 0 {
		m.PrintLine(blankLine(m.columns))
		return
	}

	full := make([]byte, 0, 32)
	offsetToActive := 0
	for i, it := range m.items {
		left, right := byte(' '), byte(' ')
		if i == m.active {
			left, right = '>', '<'
			offsetToActive = len(full)
		}
		full = append(full, left)
		full = append(full, it.Label...)
		full = append(full, right)
	}

	usable := m.columns - 1 // distance to the tracking indicator
	margin := (usable - m.longest) / 2
	start := offsetToActive - margin

	line := make([]byte, 0, m.columns)
	// Front-pad while the window under-shoots the string; happens for the
	// first item(s) and leaves them slightly off-center, which is accepted.
	for start < 0 && len(line) < m.columns {
		line = append(line, ' ')
		start++
	}
	for len(line) < usable && start < len(full) {
		line = append(line, full[start])
		start++
	}
	// Pad the tail so leftovers from longer lines are overwritten.
	for len(line) < m.columns {
		line = append(line, ' ')
	}

	m.PrintLine(string(line))
	m.SetCursor(0, 1)
}

// SetCursor records where the next PrintLine lands. Pass-through state
// only; the hardware cursor moves when something is written.
func (m *Menu) SetCursor(col, row int) {
	m.cursorCol = col
	m.cursorRow = row
}

// Clear erases the display and the render cache.
func (m *Menu) Clear() {
	m.disp.Clear()
	for i := range m.last {
		m.last[i] = ""
	}
}

// PrintLine writes line at the current cursor, padding with blanks to the
// full display width. The write is skipped entirely when the row already
// shows exactly this line and the cursor sits at column 0.
func (m *Menu) PrintLine(line string) {
	row := m.cursorRow
	if row < 0 || row >= len(m.last) {
		return
	}
	if m.last[row] == line && m.cursorCol == 0 {
		return
	}
	m.last[row] = line

	m.disp.SetCursor(m.cursorCol, row)
	for i := 0; i < len(line); i++ {
		m.disp.PrintChar(line[i])
	}
	for n := m.columns - len(line); n > 0; n-- {
		m.disp.PrintChar(' ')
	}
}

// PrintCharAt places one character directly, bypassing the render cache.
// Used for isolated status glyphs that must always be drawn.
func (m *Menu) PrintCharAt(col, row int, ch byte) {
	m.disp.SetCursor(col, row)
	m.disp.PrintChar(ch)
}

// SetBacklightBrightness forwards the level to the display (best effort)
// and, when persist is set, asks the settings store to remember it.
func (m *Menu) SetBacklightBrightness(level uint8, persist bool) {
	m.brightness = level
	m.disp.SetContrast(level)
	if persist {
		m.store.StoreBrightness(level)
	}
}

// BacklightBrightness returns the current backlight level.
func (m *Menu) BacklightBrightness() uint8 {
	return m.brightness
}

func blankLine(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
