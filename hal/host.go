//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger   *hostLogger
	lcd      Display
	keys     Keypad
	accel    Accelerometer
	settings Settings
}

// New returns a host HAL with the LCD simulator and desktop keypad. Used by
// the window runner; headless runs use newHeadlessHAL.
func New() HAL {
	return &hostHAL{
		logger:   &hostLogger{w: os.Stdout},
		lcd:      newLCDSim(),
		keys:     hostKeypad{},
		accel:    NullAccelerometer{},
		settings: newHostSettings(),
	}
}

// newHeadlessHAL wires the null display and keypad: the control loop must
// keep running with no hardware at all.
func newHeadlessHAL() HAL {
	return &hostHAL{
		logger:   &hostLogger{w: os.Stdout},
		lcd:      NullDisplay{},
		keys:     NullKeypad{},
		accel:    NullAccelerometer{},
		settings: newHostSettings(),
	}
}

func (h *hostHAL) Logger() Logger               { return h.logger }
func (h *hostHAL) Display() Display             { return h.lcd }
func (h *hostHAL) Keypad() Keypad               { return h.keys }
func (h *hostHAL) Accelerometer() Accelerometer { return h.accel }
func (h *hostHAL) Settings() Settings           { return h.settings }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	io.WriteString(l.w, "\n")
}
