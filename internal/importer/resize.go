package importer

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// resizeExact scales an RGBA image to exactly w x h. Area interpolation
// averages source pixels, which keeps color statistics honest when
// shrinking photos down to stitch-count resolution.
func resizeExact(src *image.RGBA, w, h int) (*image.RGBA, error) {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src, nil
	}

	mat, err := gocv.NewMatFromBytes(b.Dy(), b.Dx(), gocv.MatTypeCV8UC4, src.Pix)
	if err != nil {
		return nil, fmt.Errorf("converting image to mat: %w", err)
	}
	defer mat.Close()

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(mat, &resized, image.Point{X: w, Y: h}, 0, 0, gocv.InterpolationArea)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(out.Pix, resized.ToBytes())
	return out, nil
}
