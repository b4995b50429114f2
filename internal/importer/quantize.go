package importer

import (
	"image"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// rgb is an opaque color sample used during quantization.
type rgb [3]uint8

// quantize reduces the image to at most maxColors opaque colors using
// median cut, then maps every kept pixel to its nearest palette entry.
// Transparent and (optionally) near-white background pixels are cleared
// to fully transparent and excluded from the palette.
func quantize(img *image.RGBA, maxColors int, removeBG bool, bgThreshold uint8) (*image.RGBA, []rgb) {
	b := img.Bounds()

	var samples []rgb
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			if isTransparent(px.A) || (removeBG && isBackground(px.R, px.G, px.B, bgThreshold)) {
				continue
			}
			samples = append(samples, rgb{px.R, px.G, px.B})
		}
	}
	if len(samples) == 0 {
		return img, nil
	}

	palette := medianCut(samples, maxColors)

	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			ox, oy := x-b.Min.X, y-b.Min.Y
			if isTransparent(px.A) || (removeBG && isBackground(px.R, px.G, px.B, bgThreshold)) {
				continue
			}
			c := palette[closestIndex(rgb{px.R, px.G, px.B}, palette)]
			i := out.PixOffset(ox, oy)
			out.Pix[i+0] = c[0]
			out.Pix[i+1] = c[1]
			out.Pix[i+2] = c[2]
			out.Pix[i+3] = 255
		}
	}
	return out, palette
}

// medianCut repeatedly splits the bucket with the widest channel range
// at its median until maxColors buckets exist, then averages each bucket.
func medianCut(samples []rgb, maxColors int) []rgb {
	if len(samples) == 0 || maxColors == 0 {
		return nil
	}
	buckets := [][]rgb{samples}

	for len(buckets) < maxColors {
		maxRange := -1.0
		maxIdx, splitCh := 0, 0
		for i, bucket := range buckets {
			if len(bucket) <= 1 {
				continue
			}
			for ch := 0; ch < 3; ch++ {
				vals := channelValues(bucket, ch)
				r := floats.Max(vals) - floats.Min(vals)
				if r > maxRange {
					maxRange = r
					maxIdx = i
					splitCh = ch
				}
			}
		}
		if maxRange <= 0 {
			break
		}

		bucket := buckets[maxIdx]
		buckets = append(buckets[:maxIdx], buckets[maxIdx+1:]...)
		ch := splitCh
		sort.Slice(bucket, func(i, j int) bool { return bucket[i][ch] < bucket[j][ch] })
		mid := len(bucket) / 2
		buckets = append(buckets, bucket[:mid], bucket[mid:])
	}

	palette := make([]rgb, 0, len(buckets))
	for _, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		n := float64(len(bucket))
		palette = append(palette, rgb{
			uint8(floats.Sum(channelValues(bucket, 0)) / n),
			uint8(floats.Sum(channelValues(bucket, 1)) / n),
			uint8(floats.Sum(channelValues(bucket, 2)) / n),
		})
	}
	return palette
}

func channelValues(bucket []rgb, ch int) []float64 {
	vals := make([]float64, len(bucket))
	for i, s := range bucket {
		vals[i] = float64(s[ch])
	}
	return vals
}

// closestIndex returns the index of the palette color nearest to c in
// plain RGB distance. Quantized output only needs consistency, not
// perceptual accuracy; thread matching uses the perceptual formulas.
func closestIndex(c rgb, palette []rgb) int {
	best, bestDist := 0, 1<<62
	for i, p := range palette {
		dr := int(c[0]) - int(p[0])
		dg := int(c[1]) - int(p[1])
		db := int(c[2]) - int(p[2])
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func isTransparent(a uint8) bool { return a < 128 }

// isBackground treats near-white pixels as background.
func isBackground(r, g, b, threshold uint8) bool {
	lim := 255 - int(threshold)
	return int(r) > lim && int(g) > lim && int(b) > lim
}
