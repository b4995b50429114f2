// Package symbols assigns chart symbols to palette colors. Printed
// charts identify colors by glyph rather than fill, so every palette
// entry needs a symbol unique within the pattern.
package symbols

import "stitch-designer/internal/pattern"

// glyphs is the assignment sequence, ordered by legibility at small
// print sizes. High-contrast shapes first, then letters and digits.
var glyphs = []string{
	"■", "●", "▲", "◆", "★", "○", "□", "△", "◇", "☆",
	"✚", "✖", "▼", "◄", "►", "♥", "♦", "♣", "♠", "◐",
	"◑", "⬟", "⬢", "⊙", "⊕", "⊗", "⊞", "⊠", "Ʌ", "Ω",
	"A", "B", "C", "D", "E", "F", "G", "H", "J", "K",
	"L", "M", "N", "P", "Q", "R", "S", "T", "U", "V",
	"W", "X", "Y", "Z", "2", "3", "4", "5", "6", "7",
	"8", "9",
}

// Assign fills in a symbol for every palette color that lacks one,
// keeping symbols unique across the palette. Existing symbols are
// preserved. The walk is in palette order, so assignment is
// deterministic for a given palette. Returns the number of colors
// that received a symbol.
func Assign(palette []pattern.Color) int {
	taken := make(map[string]bool, len(palette))
	for _, c := range palette {
		if c.Symbol != "" {
			taken[c.Symbol] = true
		}
	}

	next := 0
	assigned := 0
	for i := range palette {
		if palette[i].Symbol != "" {
			continue
		}
		for next < len(glyphs) && taken[glyphs[next]] {
			next++
		}
		if next >= len(glyphs) {
			break
		}
		palette[i].Symbol = glyphs[next]
		taken[glyphs[next]] = true
		assigned++
	}
	return assigned
}
