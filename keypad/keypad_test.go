package keypad

import (
	"testing"
	"time"

	"polaris/hal"
)

// scriptKeypad replays a fixed raw-sample sequence, holding the last value.
type scriptKeypad struct {
	samples []hal.Key
	i       int
}

func (s *scriptKeypad) Sample() (hal.Key, int16) {
	k := s.samples[s.i]
	if s.i < len(s.samples)-1 {
		s.i++
	}
	return k, 512
}

func TestPromotionWaitsForWindow(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	pad := newWithClock(&scriptKeypad{samples: []hal.Key{hal.KeyUp, hal.KeyUp, hal.KeyUp}}, clock)

	if got := pad.CurrentKey(); got != hal.KeyNone {
		t.Fatalf("expected none right after the raw change, got %v", got)
	}

	now = now.Add(2 * time.Millisecond)
	if got := pad.CurrentKey(); got != hal.KeyNone {
		t.Fatalf("expected none inside the debounce window, got %v", got)
	}

	now = now.Add(4 * time.Millisecond)
	if got := pad.CurrentKey(); got != hal.KeyUp {
		t.Fatalf("expected up after the window elapsed, got %v", got)
	}
}

func TestTransientNeverPromoted(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	script := &scriptKeypad{samples: []hal.Key{
		hal.KeyUp, hal.KeyUp, // settle on up
		hal.KeyDown,          // 2ms blip
		hal.KeyUp, hal.KeyUp, // back to up
	}}
	pad := newWithClock(script, clock)

	pad.CurrentKey()
	now = now.Add(6 * time.Millisecond)
	if got := pad.CurrentKey(); got != hal.KeyUp {
		t.Fatalf("setup: expected up, got %v", got)
	}

	now = now.Add(2 * time.Millisecond)
	if got := pad.CurrentKey(); got != hal.KeyUp {
		t.Fatalf("blip must not be promoted, got %v", got)
	}
	now = now.Add(2 * time.Millisecond)
	if got := pad.CurrentKey(); got != hal.KeyUp {
		t.Fatalf("timer restart must not promote, got %v", got)
	}
	now = now.Add(6 * time.Millisecond)
	if got := pad.CurrentKey(); got != hal.KeyUp {
		t.Fatalf("expected up after re-settle, got %v", got)
	}
}

func TestKeyChangedFiresOncePerTransition(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	script := &scriptKeypad{samples: []hal.Key{
		hal.KeyUp, hal.KeyUp, hal.KeyUp,
		hal.KeyDown, hal.KeyDown, hal.KeyDown,
	}}
	pad := newWithClock(script, clock)

	var ups, downs int
	key := hal.Key(0xEE)
	for i := 0; i < 6; i++ {
		if pad.KeyChanged(&key) {
			switch key {
			case hal.KeyUp:
				ups++
			case hal.KeyDown:
				downs++
			default:
				t.Fatalf("unexpected reported key %v", key)
			}
		}
		now = now.Add(6 * time.Millisecond)
	}

	if ups != 1 || downs != 1 {
		t.Fatalf("expected one notification per stable transition, got up=%d down=%d", ups, downs)
	}

	// No further transitions: out must stay untouched.
	key = hal.Key(0xEE)
	if pad.KeyChanged(&key) {
		t.Fatal("unexpected notification")
	}
	if key != hal.Key(0xEE) {
		t.Fatal("out modified on a false return")
	}
}

func TestCurrentKeyIdempotent(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	pad := newWithClock(&scriptKeypad{samples: []hal.Key{hal.KeySelect}}, clock)
	pad.CurrentKey()
	now = now.Add(6 * time.Millisecond)

	first := pad.CurrentKey()
	for i := 0; i < 5; i++ {
		if got := pad.CurrentKey(); got != first {
			t.Fatalf("call %d: got %v, want %v", i, got, first)
		}
	}
}

func TestHeadless(t *testing.T) {
	for _, pad := range []*Keypad{New(nil), New(hal.NullKeypad{})} {
		if got := pad.CurrentKey(); got != hal.KeyNone {
			t.Fatalf("expected none, got %v", got)
		}
		raw, analog := pad.CurrentState()
		if raw != hal.KeyNone || analog != 0 {
			t.Fatalf("expected inert raw state, got %v/%d", raw, analog)
		}
		var key hal.Key
		if pad.KeyChanged(&key) {
			t.Fatal("headless keypad reported a change")
		}
	}
}
