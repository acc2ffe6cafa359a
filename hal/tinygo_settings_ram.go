//go:build tinygo && !rp2040 && !rp2350

package hal

// ramSettings is the fallback for boards without a supported flash layout:
// values survive only until power-off.
type ramSettings struct {
	level uint8
	ok    bool
}

func newDeviceSettings() Settings { return &ramSettings{} }

func (s *ramSettings) Brightness() (uint8, bool) { return s.level, s.ok }

func (s *ramSettings) StoreBrightness(level uint8) error {
	s.level = level
	s.ok = true
	return nil
}
