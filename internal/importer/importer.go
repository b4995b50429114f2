// Package importer turns raster images into stitch layers: resize to
// the target stitch grid, reduce the palette, optionally dither, and
// optionally snap colors to a physical thread library.
package importer

import (
	"fmt"
	"image"
	"log"

	"stitch-designer/internal/engine"
	"stitch-designer/internal/pattern"
	"stitch-designer/internal/threads"
)

// Options controls the conversion pipeline.
type Options struct {
	TargetWidth  int
	TargetHeight int
	MaxColors    int
	Dither       DitherMode

	RemoveBackground    bool
	BackgroundThreshold uint8

	// MatchThreads snaps the reduced palette to the nearest physical
	// thread colors, merging palette entries that land on the same thread.
	MatchThreads bool
	ThreadBrand  threads.Brand
	Algorithm    threads.Algorithm
}

// DefaultOptions are sensible settings for photo imports.
func DefaultOptions() Options {
	return Options{
		MaxColors:           16,
		Dither:              DitherFloydSteinberg,
		BackgroundThreshold: 30,
		ThreadBrand:         threads.BrandDMC,
		Algorithm:           threads.DefaultAlgorithm,
	}
}

// ImportFile runs the full pipeline on an image file and returns a
// payload ready for insertion as a pattern layer.
func ImportFile(path, name string, opts Options) (engine.ImportPayload, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return engine.ImportPayload{}, err
	}
	return Import(img, name, opts)
}

// Import converts a decoded image to stitches. Transparent and removed
// background cells produce no stitch.
func Import(src *image.RGBA, name string, opts Options) (engine.ImportPayload, error) {
	if opts.TargetWidth < 1 || opts.TargetHeight < 1 {
		return engine.ImportPayload{}, fmt.Errorf("invalid target size %dx%d", opts.TargetWidth, opts.TargetHeight)
	}
	if opts.MaxColors < 1 {
		opts.MaxColors = 1
	}

	resized, err := resizeExact(src, opts.TargetWidth, opts.TargetHeight)
	if err != nil {
		return engine.ImportPayload{}, fmt.Errorf("resizing: %w", err)
	}

	quantized, palette := quantize(resized, opts.MaxColors, opts.RemoveBackground, opts.BackgroundThreshold)
	if len(palette) == 0 {
		return engine.ImportPayload{}, fmt.Errorf("image has no opaque content")
	}
	dithered := dither(quantized, palette, opts.Dither)

	colors, idByRGB := buildPalette(palette, opts)

	var stitches []pattern.Stitch
	for y := 0; y < opts.TargetHeight; y++ {
		for x := 0; x < opts.TargetWidth; x++ {
			px := dithered.RGBAAt(x, y)
			if isTransparent(px.A) {
				continue
			}
			key := rgb{px.R, px.G, px.B}
			id, ok := idByRGB[key]
			if !ok {
				// Dithering only emits palette colors; anything else maps
				// to the nearest entry.
				id = idByRGB[palette[closestIndex(key, palette)]]
			}
			stitches = append(stitches, pattern.Stitch{X: x, Y: y, ColorID: id})
		}
	}

	log.Printf("importer: %q -> %dx%d, %d colors, %d stitches",
		name, opts.TargetWidth, opts.TargetHeight, len(colors), len(stitches))
	return engine.ImportPayload{
		Name:     name,
		Width:    opts.TargetWidth,
		Height:   opts.TargetHeight,
		Colors:   colors,
		Stitches: stitches,
	}, nil
}

// buildPalette converts quantized RGB entries to pattern colors. With
// thread matching enabled, entries snapping to the same thread collapse
// into one color carrying the thread's brand, code, and catalog RGB.
func buildPalette(palette []rgb, opts Options) ([]pattern.Color, map[rgb]string) {
	colors := make([]pattern.Color, 0, len(palette))
	idByRGB := make(map[rgb]string, len(palette))

	if !opts.MatchThreads {
		for i, c := range palette {
			id := fmt.Sprintf("color-%d", i+1)
			colors = append(colors, pattern.Color{
				ID:   id,
				Name: fmt.Sprintf("Color %d", i+1),
				RGB:  [3]uint8(c),
			})
			idByRGB[c] = id
		}
		return colors, idByRGB
	}

	card := threads.ByBrand(opts.ThreadBrand)
	seen := make(map[string]string, len(palette))
	for _, c := range palette {
		match, ok := threads.FindClosest([3]uint8(c), card, opts.Algorithm)
		if !ok {
			continue
		}
		t := match.Thread
		if id, dup := seen[t.Code]; dup {
			idByRGB[c] = id
			continue
		}
		id := fmt.Sprintf("%s-%s", t.Brand, t.Code)
		colors = append(colors, pattern.Color{
			ID:          id,
			Name:        t.Name,
			RGB:         t.RGB,
			ThreadBrand: string(t.Brand),
			ThreadCode:  t.Code,
		})
		seen[t.Code] = id
		idByRGB[c] = id
	}
	return colors, idByRGB
}
