package hal

// CGRAM slots for the custom symbols on HD44780-class panels. The same
// order indexes SymbolBitmaps, so every backend shares one copy of the art.
const (
	SymbolDegrees = iota
	SymbolMinutes
	SymbolLeftArrow
	SymbolRightArrow
	SymbolUpArrow
	SymbolDownArrow
	SymbolNoTracking
	SymbolTracking
)

// SymbolBitmaps holds the 5x8 glyph art, one row per byte, bit 4 leftmost.
// Loaded once at startup; never mutated.
var SymbolBitmaps = [8][8]byte{
	SymbolDegrees: {
		0b01100,
		0b10010,
		0b10010,
		0b01100,
		0b00000,
		0b00000,
		0b00000,
		0b00000,
	},
	SymbolMinutes: {
		0b01000,
		0b01000,
		0b01000,
		0b00000,
		0b00000,
		0b00000,
		0b00000,
		0b00000,
	},
	SymbolLeftArrow: {
		0b00000,
		0b00010,
		0b00110,
		0b01110,
		0b00110,
		0b00010,
		0b00000,
		0b00000,
	},
	SymbolRightArrow: {
		0b00000,
		0b01000,
		0b01100,
		0b01110,
		0b01100,
		0b01000,
		0b00000,
		0b00000,
	},
	SymbolUpArrow: {
		0b00100,
		0b01110,
		0b11111,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
	},
	SymbolDownArrow: {
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b11111,
		0b01110,
		0b00100,
	},
	SymbolNoTracking: {
		0b10000,
		0b00000,
		0b10000,
		0b00010,
		0b10000,
		0b00000,
		0b10000,
		0b00000,
	},
	SymbolTracking: {
		0b10111,
		0b00010,
		0b10010,
		0b00010,
		0b10111,
		0b00101,
		0b10110,
		0b00101,
	},
}

// TranslateSymbol maps the substitution-table characters to their CGRAM
// slot. ok is false for characters that pass through literally.
func TranslateSymbol(ch byte) (slot byte, ok bool) {
	switch ch {
	case '@':
		return SymbolDegrees, true
	case '\'':
		return SymbolMinutes, true
	case '<':
		return SymbolLeftArrow, true
	case '>':
		return SymbolRightArrow, true
	case '^':
		return SymbolUpArrow, true
	case '~':
		return SymbolDownArrow, true
	case '`':
		return SymbolNoTracking, true
	case '&':
		return SymbolTracking, true
	}
	return ch, false
}
