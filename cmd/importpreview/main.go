// Command importpreview converts an image to a stitch pattern and
// writes a rendered PNG preview, for tuning import settings without the
// GUI.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"stitch-designer/internal/engine"
	"stitch-designer/internal/importer"
	"stitch-designer/internal/pattern"
	"stitch-designer/internal/render"
	"stitch-designer/internal/symbols"
	"stitch-designer/internal/threads"
)

func main() {
	imagePath := flag.String("image", "", "Path to source image")
	outPath := flag.String("out", "preview.png", "Output PNG path")
	width := flag.Int("width", 80, "Target width in stitches")
	height := flag.Int("height", 80, "Target height in stitches")
	maxColors := flag.Int("colors", 16, "Maximum palette size")
	ditherMode := flag.String("dither", "floyd-steinberg", "Dithering: none, floyd-steinberg, ordered, atkinson")
	removeBG := flag.Bool("remove-bg", false, "Remove near-white background")
	match := flag.Bool("match", true, "Match colors to thread library")
	brand := flag.String("brand", "DMC", "Thread brand: DMC, Anchor, Kreinik")
	cellSize := flag.Int("cell", 10, "Preview cell size in pixels")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: importpreview -image <path> [-out preview.png] [-width 80] [-height 80]")
		os.Exit(1)
	}

	opts := importer.DefaultOptions()
	opts.TargetWidth = *width
	opts.TargetHeight = *height
	opts.MaxColors = *maxColors
	opts.Dither = importer.DitherMode(*ditherMode)
	opts.RemoveBackground = *removeBG
	opts.MatchThreads = *match
	opts.ThreadBrand = threads.Brand(*brand)

	payload, err := importer.ImportFile(*imagePath, filepath.Base(*imagePath), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Converted %s: %dx%d stitches, %d colors, %d stitches placed\n",
		*imagePath, payload.Width, payload.Height, len(payload.Colors), len(payload.Stitches))

	eng := engine.New(nil)
	eng.NewPattern(payload.Name, payload.Width, payload.Height, 14)
	eng.ImportAsLayer(payload)

	p := eng.Pattern()
	symbols.Assign(p.Palette)
	printPalette(p)

	if err := render.ExportPNG(*outPath, p, render.Options{CellSize: *cellSize, Grid: true}); err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Preview written to %s\n", *outPath)
}

func printPalette(p *pattern.Pattern) {
	fmt.Println("\nPalette:")
	for _, c := range p.Palette {
		line := fmt.Sprintf("  %s  #%02x%02x%02x  %s", c.Symbol, c.RGB[0], c.RGB[1], c.RGB[2], c.Name)
		if c.ThreadCode != "" {
			line += fmt.Sprintf("  (%s %s)", c.ThreadBrand, c.ThreadCode)
		}
		fmt.Println(line)
	}
}
