package app

import (
	"strings"
	"testing"
	"time"

	"polaris/hal"
)

type fakeDisplay struct {
	cols, rows int
	grid       []byte
	col, row   int
}

func newFakeDisplay() *fakeDisplay {
	d := &fakeDisplay{cols: 16, rows: 2, grid: make([]byte, 32)}
	for i := range d.grid {
		d.grid[i] = ' '
	}
	return d
}

func (d *fakeDisplay) Columns() int { return d.cols }
func (d *fakeDisplay) Rows() int    { return d.rows }

func (d *fakeDisplay) Clear() {
	for i := range d.grid {
		d.grid[i] = ' '
	}
}

func (d *fakeDisplay) SetCursor(col, row int) { d.col, d.row = col, row }

func (d *fakeDisplay) PrintChar(ch byte) {
	if d.row >= 0 && d.row < d.rows && d.col >= 0 && d.col < d.cols {
		d.grid[d.row*d.cols+d.col] = ch
	}
	d.col++
}

func (d *fakeDisplay) SetContrast(uint8) {}

func (d *fakeDisplay) line(row int) string {
	return string(d.grid[row*d.cols : (row+1)*d.cols])
}

// fakeKeypad reports whatever key the test sets.
type fakeKeypad struct {
	key hal.Key
}

func (k *fakeKeypad) Sample() (hal.Key, int16) { return k.key, 0 }

type fakeHAL struct {
	disp *fakeDisplay
	keys *fakeKeypad
}

func (h *fakeHAL) Logger() hal.Logger { return nil }

func (h *fakeHAL) Display() hal.Display {
	if h.disp == nil {
		return hal.NullDisplay{}
	}
	return h.disp
}

func (h *fakeHAL) Keypad() hal.Keypad {
	if h.keys == nil {
		return hal.NullKeypad{}
	}
	return h.keys
}
func (h *fakeHAL) Accelerometer() hal.Accelerometer { return hal.NullAccelerometer{} }
func (h *fakeHAL) Settings() hal.Settings           { return hal.NullSettings{} }

// settle lets the 5ms debounce window pass and steps the loop.
func settle(t *testing.T, a *App) {
	t.Helper()
	if err := a.step(); err != nil {
		t.Fatal(err)
	}
	time.Sleep(8 * time.Millisecond)
	if err := a.step(); err != nil {
		t.Fatal(err)
	}
}

func TestNavigation(t *testing.T) {
	h := &fakeHAL{disp: newFakeDisplay(), keys: &fakeKeypad{}}
	a := newApp(h)

	if !strings.Contains(h.disp.line(0), ">RA<") {
		t.Fatalf("boot selector = %q", h.disp.line(0))
	}
	if h.disp.line(0)[15] != '`' {
		t.Fatal("boot must show the not-tracking glyph")
	}

	h.keys.key = hal.KeyRight
	settle(t, a)
	if !strings.Contains(h.disp.line(0), ">DEC<") {
		t.Fatalf("after right: %q", h.disp.line(0))
	}
	if !strings.Contains(h.disp.line(1), "DEC") {
		t.Fatalf("submenu row = %q", h.disp.line(1))
	}

	h.keys.key = hal.KeyNone
	settle(t, a)
	h.keys.key = hal.KeyLeft
	settle(t, a)
	if !strings.Contains(h.disp.line(0), ">RA<") {
		t.Fatalf("after left: %q", h.disp.line(0))
	}
}

func TestSelectTogglesTracking(t *testing.T) {
	h := &fakeHAL{disp: newFakeDisplay(), keys: &fakeKeypad{}}
	a := newApp(h)

	h.keys.key = hal.KeySelect
	settle(t, a)
	if h.disp.line(0)[15] != '&' {
		t.Fatalf("status cell = %q, want tracking glyph", h.disp.line(0)[15])
	}

	h.keys.key = hal.KeyNone
	settle(t, a)
	h.keys.key = hal.KeySelect
	settle(t, a)
	if h.disp.line(0)[15] != '`' {
		t.Fatal("second select must toggle tracking off")
	}
}

func TestHeadlessStep(t *testing.T) {
	a := newApp(&fakeHAL{disp: nil, keys: nil})
	for i := 0; i < 10; i++ {
		if err := a.step(); err != nil {
			t.Fatal(err)
		}
	}
}
