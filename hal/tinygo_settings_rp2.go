//go:build tinygo && (rp2040 || rp2350)

package hal

import (
	"fmt"
	"machine"
)

// flashSettings keeps the settings record in the last erase block of the
// on-board flash, well clear of the program image.
type flashSettings struct{}

func newDeviceSettings() Settings { return flashSettings{} }

func settingsOffset() (off int64, ok bool) {
	size := machine.Flash.Size()
	block := machine.Flash.EraseBlockSize()
	if size <= 0 || block <= 0 || size < block {
		return 0, false
	}
	return size - block, true
}

func (flashSettings) Brightness() (uint8, bool) {
	off, ok := settingsOffset()
	if !ok {
		return 0, false
	}
	var buf [2]byte
	if _, err := machine.Flash.ReadAt(buf[:], off); err != nil {
		return 0, false
	}
	if buf[0] != settingsRecordMagic {
		return 0, false
	}
	return buf[1], true
}

func (flashSettings) StoreBrightness(level uint8) error {
	off, ok := settingsOffset()
	if !ok {
		return ErrNotPresent
	}
	block := machine.Flash.EraseBlockSize()
	if err := machine.Flash.EraseBlocks(off/block, 1); err != nil {
		return fmt.Errorf("settings erase: %w", err)
	}

	// Pad to the write granularity; unused bytes stay erased.
	page := make([]byte, machine.Flash.WriteBlockSize())
	for i := range page {
		page[i] = 0xFF
	}
	page[0] = settingsRecordMagic
	page[1] = level
	if _, err := machine.Flash.WriteAt(page, off); err != nil {
		return fmt.Errorf("settings write: %w", err)
	}
	return nil
}
