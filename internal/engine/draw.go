package engine

import (
	"log"

	"stitch-designer/internal/pattern"
	"stitch-designer/internal/raster"
	"stitch-designer/pkg/geometry"
)

// SetStitch places a single stitch of the given color at (x, y) on the
// active layer. Out-of-canvas cells, locked layers, and unknown color
// ids are silent no-ops.
func (e *Engine) SetStitch(x, y int, colorID string) {
	l := e.editableLayer(e.activeL)
	if l == nil || !e.pat.Canvas.Contains(x, y) {
		return
	}
	if e.pat.ColorByID(colorID) == nil {
		log.Printf("engine: SetStitch with unknown color %q", colorID)
		return
	}
	if s, ok := l.StitchAt(x, y); ok && s.ColorID == colorID {
		return
	}
	e.pushHistory()
	l.Set(pattern.Stitch{X: x, Y: y, ColorID: colorID})
	e.markDirty()
	e.Emit(EventStitchesChanged, l.ID)
}

// RemoveStitch erases the stitch at (x, y) on the active layer. Empty
// cells are a no-op.
func (e *Engine) RemoveStitch(x, y int) {
	l := e.editableLayer(e.activeL)
	if l == nil {
		return
	}
	if _, ok := l.StitchAt(x, y); !ok {
		return
	}
	e.pushHistory()
	l.Remove(x, y)
	e.markDirty()
	e.Emit(EventStitchesChanged, l.ID)
}

// ToggleCompleted flips the progress flag of the stitch at (x, y)
// without disturbing its color.
func (e *Engine) ToggleCompleted(x, y int) {
	l := e.editableLayer(e.activeL)
	if l == nil {
		return
	}
	s, ok := l.StitchAt(x, y)
	if !ok {
		return
	}
	e.pushHistory()
	s.Completed = !s.Completed
	l.Set(s)
	e.markDirty()
	e.Emit(EventStitchesChanged, l.ID)
}

// FillArea flood-fills the 4-connected region around the seed cell with
// the given color. The region is determined solely by the active layer's
// pre-fill color at each cell; filling with the color already present is
// a no-op.
func (e *Engine) FillArea(x, y int, colorID string) {
	l := e.editableLayer(e.activeL)
	if l == nil || !e.pat.Canvas.Contains(x, y) {
		return
	}
	if e.pat.ColorByID(colorID) == nil {
		log.Printf("engine: FillArea with unknown color %q", colorID)
		return
	}
	if s, ok := l.StitchAt(x, y); ok && s.ColorID == colorID {
		return
	}
	region := raster.FloodFill(x, y, l, e.pat.Canvas)
	if len(region) == 0 {
		return
	}
	e.pushHistory()
	l.Merge(cellsToStitches(region, colorID))
	e.markDirty()
	e.Emit(EventStitchesChanged, l.ID)
}

// DrawLine rasterizes a line between two cells onto the active layer.
func (e *Engine) DrawLine(x1, y1, x2, y2 int, colorID string) {
	e.drawCells(raster.Line(x1, y1, x2, y2, e.canvas()), colorID)
}

// DrawRectangle rasterizes a filled or outline rectangle onto the active
// layer.
func (e *Engine) DrawRectangle(x1, y1, x2, y2 int, colorID string, filled bool) {
	e.drawCells(raster.Rectangle(x1, y1, x2, y2, filled, e.canvas()), colorID)
}

// DrawEllipse rasterizes a filled or outline ellipse inscribed in the
// box spanning the two corners onto the active layer.
func (e *Engine) DrawEllipse(x1, y1, x2, y2 int, colorID string, filled bool) {
	e.drawCells(raster.Ellipse(x1, y1, x2, y2, filled, e.canvas()), colorID)
}

func (e *Engine) canvas() pattern.CanvasConfig {
	if e.pat == nil {
		return pattern.CanvasConfig{}
	}
	return e.pat.Canvas
}

// drawCells merges rasterized cells into the active layer as stitches of
// one color. An empty cell list (fully off-canvas shape) is a no-op; the
// model never holds a half-drawn shape.
func (e *Engine) drawCells(cells []geometry.PointInt, colorID string) {
	l := e.editableLayer(e.activeL)
	if l == nil || len(cells) == 0 {
		return
	}
	if e.pat.ColorByID(colorID) == nil {
		log.Printf("engine: draw with unknown color %q", colorID)
		return
	}
	e.pushHistory()
	l.Merge(cellsToStitches(cells, colorID))
	e.markDirty()
	e.Emit(EventStitchesChanged, l.ID)
}

// cellsToStitches converts a cell list to stitches of one color. Later
// cells overwrite earlier ones at the same position when merged, which
// the layer's keyed merge already guarantees.
func cellsToStitches(cells []geometry.PointInt, colorID string) []pattern.Stitch {
	out := make([]pattern.Stitch, len(cells))
	for i, c := range cells {
		out[i] = pattern.Stitch{X: c.X, Y: c.Y, ColorID: colorID}
	}
	return out
}
