// Package keypad turns a chattering hardware key signal into a stable,
// debounced logical key with one-shot change notifications.
package keypad

import (
	"time"

	"polaris/hal"
)

// DebounceWindow is how long a raw reading must hold steady before it is
// trusted. Shorter than any human press, longer than contact bounce; a
// tuning constant, not a protocol guarantee.
const DebounceWindow = 5 * time.Millisecond

// Keypad wraps a hal.Keypad and applies the debounce state machine on every
// access. Single caller only; there is no internal locking.
type Keypad struct {
	dev hal.Keypad
	now func() time.Time

	rawSeen       bool
	lastRaw       hal.Key
	lastRawChange time.Time
	analog        int16

	stable       hal.Key
	lastReported hal.Key
}

// New returns a debounced keypad over dev. A nil dev degrades to an inert
// keypad that always reports KeyNone.
func New(dev hal.Keypad) *Keypad {
	return newWithClock(dev, time.Now)
}

func newWithClock(dev hal.Keypad, now func() time.Time) *Keypad {
	return &Keypad{dev: dev, now: now}
}

// poll samples the hardware and advances the debounce timer. A raw reading
// is promoted to the stable key only once it has held constant for longer
// than DebounceWindow.
func (k *Keypad) poll() {
	if k.dev == nil {
		return
	}

	raw, analog := k.dev.Sample()
	k.analog = analog

	if !k.rawSeen || raw != k.lastRaw {
		// Raw state changed: restart the settle timer, do not promote.
		k.rawSeen = true
		k.lastRaw = raw
		k.lastRawChange = k.now()
		return
	}
	if k.now().Sub(k.lastRawChange) > DebounceWindow {
		k.stable = raw
	}
}

// CurrentKey returns the debounced key. KeyNone when nothing is pressed or
// no hardware is wired.
func (k *Keypad) CurrentKey() hal.Key {
	k.poll()
	return k.stable
}

// CurrentState returns the instantaneous raw key and the backend's analog
// diagnostic reading, without debouncing.
func (k *Keypad) CurrentState() (hal.Key, int16) {
	k.poll()
	return k.lastRaw, k.analog
}

// KeyChanged reports a stable-key transition exactly once. When it returns
// true the new key has been written to *out; otherwise *out is untouched.
func (k *Keypad) KeyChanged(out *hal.Key) bool {
	k.poll()
	if k.stable != k.lastReported {
		*out = k.stable
		k.lastReported = k.stable
		return true
	}
	return false
}
