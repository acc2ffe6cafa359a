//go:build !tinygo

package hal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHostSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings")
	s := newHostSettingsAt(path)

	if _, ok := s.Brightness(); ok {
		t.Fatal("empty store must read as nothing stored")
	}

	if err := s.StoreBrightness(0x80); err != nil {
		t.Fatalf("StoreBrightness: %v", err)
	}
	level, ok := s.Brightness()
	if !ok || level != 0x80 {
		t.Fatalf("Brightness = %d, %v; want 0x80, true", level, ok)
	}

	// A second store overwrites in place.
	if err := s.StoreBrightness(0x20); err != nil {
		t.Fatalf("StoreBrightness: %v", err)
	}
	if level, _ := s.Brightness(); level != 0x20 {
		t.Fatalf("Brightness = %d, want 0x20", level)
	}
}

func TestHostSettingsRejectsCorruptRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings")
	if err := os.WriteFile(path, []byte{0x00, 0x42}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := newHostSettingsAt(path).Brightness(); ok {
		t.Fatal("record without magic must read as nothing stored")
	}
}
