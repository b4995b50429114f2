// Package render flattens a pattern's layers into raster images for
// on-screen preview and PNG export.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"stitch-designer/internal/pattern"
	"stitch-designer/pkg/colorutil"
)

// Options controls flattening.
type Options struct {
	// CellSize is the square pixel size of one stitch cell. Minimum 1.
	CellSize int

	// Grid draws cell separator lines. Ignored below 4 px cells, where
	// lines would swallow the stitch color.
	Grid bool

	// ShadeCompleted dims stitches marked done, the progress-mode view.
	ShadeCompleted bool

	// Background fills empty cells. Nil leaves them transparent.
	Background color.Color
}

// Flatten renders visible layers bottom to top into an RGBA image.
// Within a cell the topmost visible layer's stitch wins.
func Flatten(p *pattern.Pattern, opts Options) *image.RGBA {
	cell := opts.CellSize
	if cell < 1 {
		cell = 1
	}
	w := p.Canvas.Width * cell
	h := p.Canvas.Height * cell
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	if opts.Background != nil {
		bg := color.RGBAModel.Convert(opts.Background).(color.RGBA)
		fillRect(img, 0, 0, w, h, bg)
	}

	palette := make(map[string]color.RGBA, len(p.Palette))
	for _, c := range p.Palette {
		palette[c.ID] = color.RGBA{R: c.RGB[0], G: c.RGB[1], B: c.RGB[2], A: 255}
	}

	for _, l := range p.Layers {
		if !l.Visible {
			continue
		}
		for _, s := range l.Stitches() {
			c, ok := palette[s.ColorID]
			if !ok {
				// Dangling palette reference renders as neutral gray.
				c = color.RGBA{R: 128, G: 128, B: 128, A: 255}
			}
			if opts.ShadeCompleted && s.Completed {
				c = shade(c)
			}
			fillRect(img, s.X*cell, s.Y*cell, cell, cell, c)
		}
	}

	if opts.Grid && cell >= 4 {
		drawGrid(img, p.Canvas.Width, p.Canvas.Height, cell)
	}
	return img
}

// ExportPNG flattens the pattern and writes it to path.
func ExportPNG(path string, p *pattern.Pattern, opts Options) error {
	img := Flatten(p, opts)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			img.SetRGBA(px, py, c)
		}
	}
}

// shade blends a completed stitch 70% toward mid-gray.
func shade(c color.RGBA) color.RGBA {
	blend := func(v uint8) uint8 {
		return uint8((int(v)*3 + 128*7) / 10)
	}
	return color.RGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: c.A}
}

func drawGrid(img *image.RGBA, cols, rows, cell int) {
	grid := colorutil.Grid
	w, h := cols*cell, rows*cell
	for x := 0; x <= cols; x++ {
		px := x * cell
		if px >= w {
			px = w - 1
		}
		for py := 0; py < h; py++ {
			img.SetRGBA(px, py, grid)
		}
	}
	for y := 0; y <= rows; y++ {
		py := y * cell
		if py >= h {
			py = h - 1
		}
		for px := 0; px < w; px++ {
			img.SetRGBA(px, py, grid)
		}
	}
}
