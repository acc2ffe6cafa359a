package hal

// Null backends keep the system operable headless: every capability has an
// inert implementation that reports nothing and swallows writes.

type NullDisplay struct{}

func (NullDisplay) Columns() int            { return 0 }
func (NullDisplay) Rows() int               { return 0 }
func (NullDisplay) Clear()                  {}
func (NullDisplay) SetCursor(col, row int)  {}
func (NullDisplay) PrintChar(ch byte)       {}
func (NullDisplay) SetContrast(level uint8) {}

type NullKeypad struct{}

func (NullKeypad) Sample() (Key, int16) { return KeyNone, 0 }

type NullAccelerometer struct{}

func (NullAccelerometer) Connected() bool { return false }

func (NullAccelerometer) Acceleration() (x, y, z int32, err error) {
	return 0, 0, 0, ErrNotPresent
}

func (NullAccelerometer) Temperature() (int32, error) {
	return 0, ErrNotPresent
}

type NullSettings struct{}

func (NullSettings) Brightness() (uint8, bool)   { return 0, false }
func (NullSettings) StoreBrightness(uint8) error { return nil }
