package importer

import "image"

// DitherMode selects the error-diffusion kernel applied after
// quantization.
type DitherMode string

const (
	DitherNone           DitherMode = "none"
	DitherFloydSteinberg DitherMode = "floyd-steinberg"
	DitherOrdered        DitherMode = "ordered"
	DitherAtkinson       DitherMode = "atkinson"
)

// dither re-maps each pixel to the palette with the chosen kernel.
// Transparent pixels carry no stitch and are skipped entirely.
func dither(img *image.RGBA, palette []rgb, mode DitherMode) *image.RGBA {
	switch mode {
	case DitherFloydSteinberg:
		return diffusionDither(img, palette, fsKernel, 16)
	case DitherAtkinson:
		// Atkinson spreads only 6/8 of the error, lightening the result.
		return diffusionDither(img, palette, atkinsonKernel, 8)
	case DitherOrdered:
		return orderedDither(img, palette)
	default:
		return img
	}
}

type kernelTap struct {
	dx, dy int
	weight float64
}

var fsKernel = []kernelTap{
	{1, 0, 7}, {-1, 1, 3}, {0, 1, 5}, {1, 1, 1},
}

var atkinsonKernel = []kernelTap{
	{1, 0, 1}, {2, 0, 1}, {-1, 1, 1}, {0, 1, 1}, {1, 1, 1}, {0, 2, 1},
}

func diffusionDither(img *image.RGBA, palette []rgb, kernel []kernelTap, divisor float64) *image.RGBA {
	if len(palette) == 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := cloneRGBA(img)

	errR := make([]float64, w*h)
	errG := make([]float64, w*h)
	errB := make([]float64, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := out.RGBAAt(x, y)
			if isTransparent(px.A) {
				continue
			}
			i := y*w + x
			cr := clamp255(float64(px.R) + errR[i])
			cg := clamp255(float64(px.G) + errG[i])
			cb := clamp255(float64(px.B) + errB[i])

			c := palette[closestIndex(rgb{cr, cg, cb}, palette)]
			o := out.PixOffset(x, y)
			out.Pix[o+0] = c[0]
			out.Pix[o+1] = c[1]
			out.Pix[o+2] = c[2]

			qr := float64(cr) - float64(c[0])
			qg := float64(cg) - float64(c[1])
			qb := float64(cb) - float64(c[2])

			for _, tap := range kernel {
				nx, ny := x+tap.dx, y+tap.dy
				if nx < 0 || nx >= w || ny >= h {
					continue
				}
				j := ny*w + nx
				f := tap.weight / divisor
				errR[j] += qr * f
				errG[j] += qg * f
				errB[j] += qb * f
			}
		}
	}
	return out
}

// bayer4 is the 4x4 ordered dithering threshold matrix.
var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

func orderedDither(img *image.RGBA, palette []rgb) *image.RGBA {
	if len(palette) == 0 {
		return img
	}
	b := img.Bounds()
	out := cloneRGBA(img)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			px := out.RGBAAt(x, y)
			if isTransparent(px.A) {
				continue
			}
			threshold := (bayer4[y%4][x%4]/16.0 - 0.5) * 64.0
			c := palette[closestIndex(rgb{
				clamp255(float64(px.R) + threshold),
				clamp255(float64(px.G) + threshold),
				clamp255(float64(px.B) + threshold),
			}, palette)]
			o := out.PixOffset(x, y)
			out.Pix[o+0] = c[0]
			out.Pix[o+1] = c[1]
			out.Pix[o+2] = c[2]
		}
	}
	return out
}

func cloneRGBA(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
