//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

const hostSettingsDefaultPath = "polaris.settings"

// hostSettings persists the settings record in a tiny file next to the
// binary (override with POLARIS_SETTINGS_PATH).
type hostSettings struct {
	mu   sync.Mutex
	path string
}

func newHostSettings() *hostSettings {
	path := os.Getenv("POLARIS_SETTINGS_PATH")
	if path == "" {
		path = hostSettingsDefaultPath
	}
	return newHostSettingsAt(path)
}

func newHostSettingsAt(path string) *hostSettings {
	return &hostSettings{path: path}
}

func (s *hostSettings) Brightness() (uint8, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil || len(b) < 2 || b[0] != settingsRecordMagic {
		return 0, false
	}
	return b[1], true
}

func (s *hostSettings) StoreBrightness(level uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, []byte{settingsRecordMagic, level}, 0o644); err != nil {
		return fmt.Errorf("settings write %s: %w", s.path, err)
	}
	return nil
}
