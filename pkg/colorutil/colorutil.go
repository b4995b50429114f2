// Package colorutil provides shared color utilities for the stitch designer application.
package colorutil

import (
	"fmt"
	"image/color"
	"strings"
)

// Common UI colors used throughout the application.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grid  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// RGBToHex formats an RGB triple as "#rrggbb".
func RGBToHex(rgb [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// HexToRGB parses "#rrggbb" or "rrggbb" into an RGB triple.
func HexToRGB(s string) ([3]uint8, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return [3]uint8{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return [3]uint8{}, fmt.Errorf("invalid hex color %q: %v", s, err)
	}
	return [3]uint8{r, g, b}, nil
}

// ToRGBA converts an RGB triple to an opaque color.RGBA.
func ToRGBA(rgb [3]uint8) color.RGBA {
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

// Luminance returns the perceived brightness of an RGB triple in 0-255.
// Uses the ITU-R BT.601 weights.
func Luminance(rgb [3]uint8) float64 {
	return 0.299*float64(rgb[0]) + 0.587*float64(rgb[1]) + 0.114*float64(rgb[2])
}

// ContrastColor returns black or white, whichever reads better on the
// given background. Used for symbol overlays on stitch cells.
func ContrastColor(rgb [3]uint8) color.RGBA {
	if Luminance(rgb) > 140 {
		return Black
	}
	return White
}
