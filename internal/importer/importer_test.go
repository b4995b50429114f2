package importer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitch-designer/internal/threads"
)

// halfToneImage is 8x8: left half red, right half blue.
func halfToneImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := color.RGBA{200, 20, 20, 255}
			if x >= 4 {
				c = color.RGBA{20, 20, 200, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestQuantizeTwoRegions(t *testing.T) {
	out, palette := quantize(halfToneImage(), 2, false, 0)
	assert.Len(t, palette, 2)

	// Every output pixel is one of the palette colors.
	allowed := map[rgb]bool{palette[0]: true, palette[1]: true}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			px := out.RGBAAt(x, y)
			assert.True(t, allowed[rgb{px.R, px.G, px.B}])
			assert.EqualValues(t, 255, px.A)
		}
	}
}

func TestQuantizeSingleColorImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	_, palette := quantize(img, 16, false, 0)
	assert.Len(t, palette, 1)
	assert.Equal(t, rgb{255, 255, 255}, palette[0])
}

func TestQuantizeSkipsTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{200, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 200, 0, 60}) // below the opacity cutoff

	out, palette := quantize(img, 4, false, 0)
	assert.Len(t, palette, 1)
	assert.EqualValues(t, 0, out.RGBAAt(1, 0).A)
}

func TestQuantizeRemovesBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{250, 250, 248, 255}) // near white
	img.SetRGBA(1, 0, color.RGBA{10, 10, 200, 255})

	out, palette := quantize(img, 4, true, 30)
	assert.Len(t, palette, 1)
	assert.Equal(t, rgb{10, 10, 200}, palette[0])
	assert.EqualValues(t, 0, out.RGBAAt(0, 0).A)
}

func TestQuantizeFullyTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	_, palette := quantize(img, 4, false, 0)
	assert.Empty(t, palette)
}

func TestMedianCutCapsPalette(t *testing.T) {
	var samples []rgb
	for i := 0; i < 64; i++ {
		samples = append(samples, rgb{uint8(i * 4), uint8(255 - i*4), uint8(i)})
	}
	palette := medianCut(samples, 8)
	assert.LessOrEqual(t, len(palette), 8)
	assert.Greater(t, len(palette), 1)
}

func TestClosestIndex(t *testing.T) {
	palette := []rgb{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}}
	assert.Equal(t, 0, closestIndex(rgb{250, 10, 10}, palette))
	assert.Equal(t, 1, closestIndex(rgb{10, 250, 10}, palette))
	assert.Equal(t, 2, closestIndex(rgb{0, 0, 200}, palette))
}

func TestBackgroundAndTransparencyCutoffs(t *testing.T) {
	assert.True(t, isTransparent(127))
	assert.False(t, isTransparent(128))

	assert.True(t, isBackground(250, 250, 250, 30))
	assert.False(t, isBackground(250, 250, 100, 30))
	assert.False(t, isBackground(220, 250, 250, 30))
}

func TestDitherNonePassthrough(t *testing.T) {
	img := halfToneImage()
	out := dither(img, []rgb{{200, 20, 20}}, DitherNone)
	assert.Equal(t, img, out)
}

func TestDiffusionDitherEmitsPaletteColorsOnly(t *testing.T) {
	// A mid-gray image dithered against black and white becomes a mix of
	// the two palette colors.
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{128, 128, 128, 255})
		}
	}
	palette := []rgb{{0, 0, 0}, {255, 255, 255}}

	for _, mode := range []DitherMode{DitherFloydSteinberg, DitherAtkinson, DitherOrdered} {
		out := dither(img, palette, mode)
		black, white := 0, 0
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				px := out.RGBAAt(x, y)
				switch (rgb{px.R, px.G, px.B}) {
				case palette[0]:
					black++
				case palette[1]:
					white++
				default:
					t.Fatalf("%s produced non-palette color %v", mode, px)
				}
			}
		}
		assert.Greater(t, black, 0, "mode %s", mode)
		assert.Greater(t, white, 0, "mode %s", mode)
	}
}

func TestDitherSkipsTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{128, 128, 128, 255})

	out := dither(img, []rgb{{0, 0, 0}, {255, 255, 255}}, DitherFloydSteinberg)
	assert.EqualValues(t, 0, out.RGBAAt(1, 0).A)
}

func TestBuildPaletteUnmatched(t *testing.T) {
	opts := DefaultOptions()
	opts.MatchThreads = false

	colors, idByRGB := buildPalette([]rgb{{200, 20, 20}, {20, 20, 200}}, opts)
	assert.Len(t, colors, 2)
	assert.Equal(t, "color-1", colors[0].ID)
	assert.Equal(t, [3]uint8{200, 20, 20}, colors[0].RGB)
	assert.Empty(t, colors[0].ThreadCode)
	assert.Equal(t, "color-2", idByRGB[rgb{20, 20, 200}])
}

func TestBuildPaletteMatchedDedupesByThread(t *testing.T) {
	opts := DefaultOptions()
	opts.MatchThreads = true
	opts.ThreadBrand = threads.BrandDMC

	// Two nearly identical blacks snap to the same thread and collapse.
	colors, idByRGB := buildPalette([]rgb{{0, 0, 0}, {2, 2, 2}}, opts)
	assert.Len(t, colors, 1)
	assert.NotEmpty(t, colors[0].ThreadCode)
	assert.Equal(t, string(threads.BrandDMC), colors[0].ThreadBrand)
	assert.Equal(t, idByRGB[rgb{0, 0, 0}], idByRGB[rgb{2, 2, 2}])
}

func TestImportSameSizePipeline(t *testing.T) {
	opts := DefaultOptions()
	opts.TargetWidth = 8
	opts.TargetHeight = 8
	opts.MaxColors = 2
	opts.Dither = DitherNone
	opts.MatchThreads = false

	payload, err := Import(halfToneImage(), "half", opts)
	require.NoError(t, err)
	assert.Equal(t, "half", payload.Name)
	assert.Equal(t, 8, payload.Width)
	assert.Len(t, payload.Colors, 2)
	assert.Len(t, payload.Stitches, 64)

	// Stitch color ids all reference the payload palette.
	known := map[string]bool{}
	for _, c := range payload.Colors {
		known[c.ID] = true
	}
	for _, s := range payload.Stitches {
		assert.True(t, known[s.ColorID])
	}
}

func TestImportTransparentCellsSkipped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(0, 0, color.RGBA{200, 0, 0, 255})
	img.SetRGBA(3, 3, color.RGBA{200, 0, 0, 255})

	opts := DefaultOptions()
	opts.TargetWidth = 4
	opts.TargetHeight = 4
	opts.MatchThreads = false

	payload, err := Import(img, "sparse", opts)
	require.NoError(t, err)
	assert.Len(t, payload.Stitches, 2)
}

func TestImportRejectsBadOptions(t *testing.T) {
	_, err := Import(halfToneImage(), "bad", Options{TargetWidth: 0, TargetHeight: 8})
	assert.Error(t, err)
}

func TestImportEmptyImageFails(t *testing.T) {
	opts := DefaultOptions()
	opts.TargetWidth = 4
	opts.TargetHeight = 4

	_, err := Import(image.NewRGBA(image.Rect(0, 0, 4, 4)), "empty", opts)
	assert.Error(t, err)
}
