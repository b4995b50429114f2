package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"stitch-designer/internal/pattern"
	"stitch-designer/internal/raster"
	"stitch-designer/internal/render"
	"stitch-designer/internal/selection"
	"stitch-designer/pkg/colorutil"
	"stitch-designer/pkg/geometry"
)

var (
	selectionColor = color.RGBA{R: 30, G: 120, B: 255, A: 255}
	previewColor   = color.RGBA{R: 30, G: 120, B: 255, A: 120}
	handleFill     = colorutil.White
)

// draw renders the full canvas frame: flattened pattern, floating
// selection payload, shape preview, and selection chrome.
func (pc *PatternCanvas) draw(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	p := pc.eng.Pattern()
	if p == nil {
		return img
	}

	flat := render.Flatten(p, render.Options{
		CellSize:       pc.cellSize,
		Grid:           pc.showGrid,
		ShadeCompleted: pc.progressMode,
		Background:     colorutil.White,
	})
	draw.Draw(img, flat.Bounds(), flat, image.Point{}, draw.Src)

	pc.drawFloating(img, p)
	if pc.shaping {
		pc.drawShapePreview(img)
	}
	if sel := pc.eng.Selection(); sel != nil {
		pc.drawSelection(img, sel)
	}
	return img
}

// drawFloating paints a floating selection's stitches, which live in no
// layer and are invisible to the flattener.
func (pc *PatternCanvas) drawFloating(img *image.RGBA, p *pattern.Pattern) {
	sel := pc.eng.Selection()
	if sel == nil || !sel.IsFloating() {
		return
	}
	for _, s := range sel.Floating {
		c := color.RGBA{R: 128, G: 128, B: 128, A: 255}
		if pal := p.ColorByID(s.ColorID); pal != nil {
			c = colorutil.ToRGBA(pal.RGB)
		}
		pc.fillCell(img, s.X, s.Y, c)
	}
}

// drawShapePreview tints the cells the in-flight shape would cover.
func (pc *PatternCanvas) drawShapePreview(img *image.RGBA) {
	p := pc.eng.Pattern()
	s, e := pc.shapeStart, pc.shapeEnd

	var cells []geometry.PointInt
	switch pc.tool {
	case ToolLine:
		cells = raster.Line(s.X, s.Y, e.X, e.Y, p.Canvas)
	case ToolRect:
		cells = raster.Rectangle(s.X, s.Y, e.X, e.Y, pc.filledShapes, p.Canvas)
	case ToolEllipse:
		cells = raster.Ellipse(s.X, s.Y, e.X, e.Y, pc.filledShapes, p.Canvas)
	}
	for _, c := range cells {
		pc.blendCell(img, c.X, c.Y, previewColor)
	}
}

// drawSelection draws the bounds outline and, outside an active drag,
// the eight resize handles.
func (pc *PatternCanvas) drawSelection(img *image.RGBA, sel *selection.State) {
	b := sel.Bounds
	cell := pc.cellSize
	x0, y0 := b.X*cell, b.Y*cell
	x1, y1 := (b.MaxX()+1)*cell-1, (b.MaxY()+1)*cell-1

	drawRectOutline(img, x0, y0, x1, y1, selectionColor)

	if sel.Dragging() || sel.Resizing() {
		return
	}
	mx, my := (x0+x1)/2, (y0+y1)/2
	for _, p := range [][2]int{
		{x0, y0}, {mx, y0}, {x1, y0},
		{x0, my}, {x1, my},
		{x0, y1}, {mx, y1}, {x1, y1},
	} {
		drawHandle(img, p[0], p[1])
	}
}

func (pc *PatternCanvas) fillCell(img *image.RGBA, cx, cy int, c color.RGBA) {
	cell := pc.cellSize
	for y := cy * cell; y < (cy+1)*cell; y++ {
		for x := cx * cell; x < (cx+1)*cell; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func (pc *PatternCanvas) blendCell(img *image.RGBA, cx, cy int, c color.RGBA) {
	cell := pc.cellSize
	a := int(c.A)
	for y := cy * cell; y < (cy+1)*cell; y++ {
		for x := cx * cell; x < (cx+1)*cell; x++ {
			dst := img.RGBAAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((int(c.R)*a + int(dst.R)*(255-a)) / 255),
				G: uint8((int(c.G)*a + int(dst.G)*(255-a)) / 255),
				B: uint8((int(c.B)*a + int(dst.B)*(255-a)) / 255),
				A: 255,
			})
		}
	}
}

func drawRectOutline(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y0, c)
		img.SetRGBA(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x0, y, c)
		img.SetRGBA(x1, y, c)
	}
}

func drawHandle(img *image.RGBA, cx, cy int) {
	const r = 3
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if x == cx-r || x == cx+r || y == cy-r || y == cy+r {
				img.SetRGBA(x, y, selectionColor)
			} else {
				img.SetRGBA(x, y, handleFill)
			}
		}
	}
}
