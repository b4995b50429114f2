// Package textrender rasterizes text into stitch cells. Text layers keep
// their source parameters so they can be re-rendered at any cell height
// instead of being resampled like plain pixel content.
package textrender

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"stitch-designer/internal/pattern"
)

// supersample is the pixel resolution rendered per stitch cell. Coverage
// is averaged over the block, so higher values give smoother thresholds.
const supersample = 8

// Renderer converts text metadata into stitches. It satisfies the text
// regeneration hook used by the editing engine.
type Renderer struct{}

// New returns a text renderer.
func New() *Renderer { return &Renderer{} }

// Regenerate renders the text at the given cell height. The resulting
// stitches are anchored at origin (0, 0); callers position them.
func (r *Renderer) Regenerate(meta pattern.TextMetadata, targetHeight int) ([]pattern.Stitch, error) {
	if meta.Text == "" {
		return nil, nil
	}
	if targetHeight < 1 {
		targetHeight = 1
	}

	f, err := truetype.Parse(fontData(meta))
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	fontSize := float64(targetHeight * supersample)
	face := truetype.NewFace(f, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	// Measure at full resolution, then render with padding so hinting
	// overshoot is not clipped.
	mc := gg.NewContext(1, 1)
	mc.SetFontFace(face)
	w, h := mc.MeasureString(meta.Text)
	pad := supersample
	imgW := int(w) + 2*pad
	imgH := int(h*1.4) + 2*pad

	dc := gg.NewContext(imgW, imgH)
	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(face)
	dc.DrawStringAnchored(meta.Text, float64(imgW)/2, float64(imgH)/2, 0.5, 0.5)

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected render image type %T", dc.Image())
	}
	return coverageToStitches(img, meta), nil
}

// fontData picks the embedded Go font matching the requested family and
// style. Unknown families fall back to the proportional face.
func fontData(meta pattern.TextMetadata) []byte {
	if meta.FontFamily == "monospace" {
		return gomono.TTF
	}
	bold := meta.FontWeight >= 600
	switch {
	case bold && meta.Italic:
		return gobolditalic.TTF
	case bold:
		return gobold.TTF
	case meta.Italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

// coverageToStitches reduces the supersampled image to cells. A cell
// becomes a stitch when its mean ink coverage crosses the threshold;
// boldness lowers the threshold so strokes thicken.
func coverageToStitches(img *image.RGBA, meta pattern.TextMetadata) []pattern.Stitch {
	b := img.Bounds()
	cols := (b.Dx() + supersample - 1) / supersample
	rows := (b.Dy() + supersample - 1) / supersample

	threshold := 0.5 - 0.35*clamp01(meta.Boldness)

	var out []pattern.Stitch
	minX, minY := cols, rows
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			var ink, n int
			for py := 0; py < supersample; py++ {
				for px := 0; px < supersample; px++ {
					ix := b.Min.X + cx*supersample + px
					iy := b.Min.Y + cy*supersample + py
					if ix >= b.Max.X || iy >= b.Max.Y {
						continue
					}
					n++
					if img.RGBAAt(ix, iy).A > 127 {
						ink++
					}
				}
			}
			if n == 0 || float64(ink)/float64(n) < threshold {
				continue
			}
			out = append(out, pattern.Stitch{X: cx, Y: cy, ColorID: meta.ColorID})
			if cx < minX {
				minX = cx
			}
			if cy < minY {
				minY = cy
			}
		}
	}

	// Trim the centering margin so the result is origin-anchored.
	for i := range out {
		out[i].X -= minX
		out[i].Y -= minY
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
