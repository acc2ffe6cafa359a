package hal

import "testing"

func TestTranslateSymbol(t *testing.T) {
	cases := []struct {
		ch   byte
		slot byte
	}{
		{'@', SymbolDegrees},
		{'\'', SymbolMinutes},
		{'<', SymbolLeftArrow},
		{'>', SymbolRightArrow},
		{'^', SymbolUpArrow},
		{'~', SymbolDownArrow},
		{'`', SymbolNoTracking},
		{'&', SymbolTracking},
	}
	for _, c := range cases {
		slot, ok := TranslateSymbol(c.ch)
		if !ok || slot != c.slot {
			t.Fatalf("TranslateSymbol(%q) = %d, %v; want %d", c.ch, slot, ok, c.slot)
		}
	}

	for _, ch := range []byte{'A', 'z', '0', ' ', '-'} {
		got, ok := TranslateSymbol(ch)
		if ok || got != ch {
			t.Fatalf("TranslateSymbol(%q) = %d, %v; want passthrough", ch, got, ok)
		}
	}
}

func TestSymbolBitmapsFitFiveColumns(t *testing.T) {
	for slot, art := range SymbolBitmaps {
		for row, bits := range art {
			if bits&^0x1F != 0 {
				t.Fatalf("symbol %d row %d uses more than 5 columns: %08b", slot, row, bits)
			}
		}
	}
}
