// Command glyphs prints the custom symbol bitmaps as ASCII art, for
// eyeballing CGRAM edits without flashing a board.
package main

import (
	"fmt"

	"polaris/hal"
)

var names = [8]string{
	hal.SymbolDegrees:    "degrees",
	hal.SymbolMinutes:    "minutes",
	hal.SymbolLeftArrow:  "left arrow",
	hal.SymbolRightArrow: "right arrow",
	hal.SymbolUpArrow:    "up arrow",
	hal.SymbolDownArrow:  "down arrow",
	hal.SymbolNoTracking: "not tracking",
	hal.SymbolTracking:   "tracking",
}

func main() {
	for slot, art := range hal.SymbolBitmaps {
		fmt.Printf("%d: %s\n", slot, names[slot])
		for _, row := range art {
			for bit := 4; bit >= 0; bit-- {
				if row&(1<<bit) != 0 {
					fmt.Print("#")
				} else {
					fmt.Print(".")
				}
			}
			fmt.Println()
		}
		fmt.Println()
	}
}
