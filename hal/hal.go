package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotPresent = errors.New("not present")

// settingsRecordMagic marks a valid settings record, so an erased or
// never-written store reads as "nothing stored".
const settingsRecordMagic = 0xA5

// Key is a single logical input event. Exactly one key is reported at a
// time; how simultaneous physical presses collapse into one value is a
// per-backend policy.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySelect
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySelect:
		return "select"
	default:
		return "?"
	}
}

// Display is a fixed grid of character cells with a write cursor.
//
// PrintChar draws one character at the cursor and advances it one cell to
// the right; no auto-wrap is guaranteed. A fixed substitution table maps a
// few input characters to symbol glyphs:
//
//	@  degrees        '  arcminutes
//	<  left arrow     >  right arrow
//	^  up arrow       ~  down arrow
//	`  not tracking   &  tracking
//
// Any other character is drawn as its literal glyph.
type Display interface {
	Columns() int
	Rows() int
	Clear()
	SetCursor(col, row int)
	PrintChar(ch byte)

	// SetContrast adjusts brightness/contrast, 0 darkest to 255
	// brightest. Best effort: panels without software control ignore it.
	SetContrast(level uint8)
}

// Keypad samples the physical control once. The int16 is a raw
// analog/diagnostic reading; its meaning is backend-defined.
type Keypad interface {
	Sample() (Key, int16)
}

// Accelerometer reports acceleration in µg and die temperature in
// milli-degrees Celsius. Often externally mounted, so it can be absent or
// come unplugged; Connected reflects the last probe.
type Accelerometer interface {
	Connected() bool
	Acceleration() (x, y, z int32, err error)
	Temperature() (milliCelsius int32, err error)
}

// Settings is the tiny persisted store for values that survive restarts.
// Reads report ok=false when nothing has been stored yet.
type Settings interface {
	Brightness() (level uint8, ok bool)
	StoreBrightness(level uint8) error
}

// HAL provides the only contact point between the UI and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Keypad() Keypad
	Accelerometer() Accelerometer
	Settings() Settings
}
