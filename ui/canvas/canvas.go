// Package canvas provides the interactive pattern grid with pan, zoom,
// and tool dispatch.
package canvas

import (
	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"stitch-designer/internal/engine"
	"stitch-designer/internal/selection"
	"stitch-designer/pkg/geometry"
)

const (
	minCellSize = 2
	maxCellSize = 48

	// handleHitCells is how close (in cells) a drag must start to a
	// selection edge to grab a resize handle instead of moving.
	handleHitCells = 1
)

// Tool represents the current interaction tool.
type Tool int

const (
	ToolPaint Tool = iota
	ToolErase
	ToolFill
	ToolLine
	ToolRect
	ToolEllipse
	ToolSelect
	ToolProgress
)

// PatternCanvas displays the stitch grid and routes pointer input to the
// editing engine.
type PatternCanvas struct {
	widget.BaseWidget

	eng *engine.Engine

	raster *fynecanvas.Raster

	cellSize int
	showGrid bool

	// progressMode shades completed stitches and switches the paint
	// tool to completion toggling.
	progressMode bool

	tool         Tool
	activeColor  string
	filledShapes bool
	freeResize   bool

	// Shape preview state (line/rect/ellipse drag in flight).
	shaping    bool
	shapeStart geometry.PointInt
	shapeEnd   geometry.PointInt

	// Selection interaction in flight.
	interacting bool
	resizing    bool

	// Continuous paint state.
	painting bool
	lastCell geometry.PointInt

	scroll  *zoomScroll
	content *draggableContent

	onCellHover func(x, y int)
}

// zoomScroll wraps a scroll container but intercepts wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *PatternCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *PatternCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

func (zs *zoomScroll) Offset() fyne.Position {
	return zs.scroll.Offset
}

// draggableContent wraps the raster to receive pointer events.
type draggableContent struct {
	widget.BaseWidget
	canvas *PatternCanvas
	raster *fynecanvas.Raster
}

func newDraggableContent(pc *PatternCanvas, raster *fynecanvas.Raster) *draggableContent {
	dc := &draggableContent{canvas: pc, raster: raster}
	dc.ExtendBaseWidget(dc)
	return dc
}

func (dc *draggableContent) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(dc.raster)
}

func (dc *draggableContent) MinSize() fyne.Size {
	return dc.raster.MinSize()
}

func (dc *draggableContent) Dragged(ev *fyne.DragEvent) {
	dc.canvas.pointerDragged(dc.canvas.cellAt(ev.Position))
}

func (dc *draggableContent) DragEnd() {
	dc.canvas.pointerUp()
}

func (dc *draggableContent) Tapped(ev *fyne.PointEvent) {
	dc.canvas.pointerTapped(dc.canvas.cellAt(ev.Position))
}

// TappedSecondary erases regardless of the active tool.
func (dc *draggableContent) TappedSecondary(ev *fyne.PointEvent) {
	c := dc.canvas.cellAt(ev.Position)
	dc.canvas.eng.RemoveStitch(c.X, c.Y)
}

func (dc *draggableContent) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		dc.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		dc.canvas.ZoomOut()
	}
}

// NewPatternCanvas creates the canvas bound to an engine.
func NewPatternCanvas(eng *engine.Engine) *PatternCanvas {
	pc := &PatternCanvas{
		eng:          eng,
		cellSize:     12,
		showGrid:     true,
		filledShapes: true,
	}

	pc.raster = fynecanvas.NewRaster(pc.draw)
	pc.raster.ScaleMode = fynecanvas.ImageScalePixels

	pc.content = newDraggableContent(pc, pc.raster)
	pc.scroll = newZoomScroll(pc.content, pc)

	eng.On(engine.EventPatternReplaced, func(interface{}) { pc.sync() })
	eng.On(engine.EventStitchesChanged, func(interface{}) { pc.Refresh() })
	eng.On(engine.EventLayersChanged, func(interface{}) { pc.Refresh() })
	eng.On(engine.EventPaletteChanged, func(interface{}) { pc.Refresh() })
	eng.On(engine.EventSelectionChanged, func(interface{}) { pc.Refresh() })

	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *PatternCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.scroll)
}

// Container returns the scrollable canvas for embedding in layouts.
func (pc *PatternCanvas) Container() fyne.CanvasObject {
	return pc.scroll
}

// SetTool switches the active tool, cancelling any interaction in
// flight so a mid-drag tool change never half-applies.
func (pc *PatternCanvas) SetTool(t Tool) {
	pc.eng.CancelInteraction()
	pc.tool = t
	pc.shaping = false
	pc.interacting = false
	pc.Refresh()
}

// Tool returns the active tool.
func (pc *PatternCanvas) Tool() Tool { return pc.tool }

// SetActiveColor sets the palette color new stitches use.
func (pc *PatternCanvas) SetActiveColor(id string) { pc.activeColor = id }

// ActiveColor returns the current drawing color id.
func (pc *PatternCanvas) ActiveColor() string { return pc.activeColor }

// SetFilledShapes toggles filled vs outline for rect and ellipse tools.
func (pc *PatternCanvas) SetFilledShapes(filled bool) { pc.filledShapes = filled }

// SetFreeResize disables the aspect-ratio lock for selection resizing.
func (pc *PatternCanvas) SetFreeResize(free bool) { pc.freeResize = free }

// SetShowGrid toggles grid lines.
func (pc *PatternCanvas) SetShowGrid(show bool) {
	pc.showGrid = show
	pc.Refresh()
}

// ShowGrid reports whether grid lines are drawn.
func (pc *PatternCanvas) ShowGrid() bool { return pc.showGrid }

// SetProgressMode toggles the progress view: completed stitches are
// shaded and the paint tool toggles completion.
func (pc *PatternCanvas) SetProgressMode(on bool) {
	pc.progressMode = on
	pc.Refresh()
}

// ProgressMode reports whether progress mode is active.
func (pc *PatternCanvas) ProgressMode() bool { return pc.progressMode }

// OnCellHover registers a callback fired as the pointer crosses cells.
func (pc *PatternCanvas) OnCellHover(fn func(x, y int)) { pc.onCellHover = fn }

// ZoomIn enlarges cells.
func (pc *PatternCanvas) ZoomIn() {
	pc.setCellSize(pc.cellSize + pc.cellSize/4 + 1)
}

// ZoomOut shrinks cells.
func (pc *PatternCanvas) ZoomOut() {
	pc.setCellSize(pc.cellSize - pc.cellSize/4 - 1)
}

// CellSize returns the current cell pixel size.
func (pc *PatternCanvas) CellSize() int { return pc.cellSize }

// SetCellSize sets the cell pixel size, clamped to the zoom range.
func (pc *PatternCanvas) SetCellSize(size int) { pc.setCellSize(size) }

func (pc *PatternCanvas) setCellSize(size int) {
	if size < minCellSize {
		size = minCellSize
	}
	if size > maxCellSize {
		size = maxCellSize
	}
	if size == pc.cellSize {
		return
	}
	pc.cellSize = size
	pc.sync()
}

// sync recomputes the raster's minimum size from the document.
func (pc *PatternCanvas) sync() {
	if p := pc.eng.Pattern(); p != nil {
		pc.raster.SetMinSize(fyne.NewSize(
			float32(p.Canvas.Width*pc.cellSize),
			float32(p.Canvas.Height*pc.cellSize),
		))
	}
	pc.Refresh()
}

// cellAt converts a pointer position (viewport-relative) to a grid cell.
func (pc *PatternCanvas) cellAt(pos fyne.Position) geometry.PointInt {
	off := pc.scroll.Offset()
	x := int(pos.X+off.X) / pc.cellSize
	y := int(pos.Y+off.Y) / pc.cellSize
	return geometry.PointInt{X: x, Y: y}
}

// pointerTapped applies single-click tools.
func (pc *PatternCanvas) pointerTapped(c geometry.PointInt) {
	if pc.eng.Pattern() == nil {
		return
	}
	if pc.progressMode {
		pc.eng.ToggleCompleted(c.X, c.Y)
		return
	}
	switch pc.tool {
	case ToolPaint:
		pc.eng.SetStitch(c.X, c.Y, pc.activeColor)
	case ToolErase:
		pc.eng.RemoveStitch(c.X, c.Y)
	case ToolFill:
		pc.eng.FillArea(c.X, c.Y, pc.activeColor)
	case ToolProgress:
		pc.eng.ToggleCompleted(c.X, c.Y)
	case ToolSelect:
		pc.selectTapped(c)
	}
}

// selectTapped selects the active layer's content when the tap lands
// inside it, otherwise clears (committing floating content).
func (pc *PatternCanvas) selectTapped(c geometry.PointInt) {
	sel := pc.eng.Selection()
	if sel != nil && sel.Bounds.Contains(c.X, c.Y) {
		return
	}
	p := pc.eng.Pattern()
	l := p.LayerByID(pc.eng.ActiveLayerID())
	if l != nil {
		if b, ok := l.Bounds(); ok && b.Contains(c.X, c.Y) {
			pc.eng.SelectLayerForTransform(l.ID)
			return
		}
	}
	pc.eng.ClearSelection()
}

// pointerDragged handles drag motion for all tools.
func (pc *PatternCanvas) pointerDragged(c geometry.PointInt) {
	if pc.eng.Pattern() == nil {
		return
	}
	if pc.onCellHover != nil {
		pc.onCellHover(c.X, c.Y)
	}

	switch pc.tool {
	case ToolPaint, ToolErase:
		if pc.progressMode {
			return
		}
		if pc.painting && c == pc.lastCell {
			return
		}
		pc.painting = true
		pc.lastCell = c
		if pc.tool == ToolPaint {
			pc.eng.SetStitch(c.X, c.Y, pc.activeColor)
		} else {
			pc.eng.RemoveStitch(c.X, c.Y)
		}

	case ToolLine, ToolRect, ToolEllipse:
		if !pc.shaping {
			pc.shaping = true
			pc.shapeStart = c
		}
		pc.shapeEnd = c
		pc.Refresh()

	case ToolSelect:
		pc.selectDragged(c)
	}
}

// selectDragged begins or continues a selection move or resize.
func (pc *PatternCanvas) selectDragged(c geometry.PointInt) {
	sel := pc.eng.Selection()
	if sel == nil {
		return
	}
	if !pc.interacting {
		pc.interacting = true
		if h, ok := handleAt(sel.Bounds, c); ok {
			pc.resizing = true
			pc.eng.StartResize(h, c.X, c.Y, pc.freeResize)
		} else {
			pc.resizing = false
			pc.eng.StartDrag(c.X, c.Y)
		}
		return
	}
	if pc.resizing {
		pc.eng.UpdateResize(c.X, c.Y)
	} else {
		pc.eng.UpdateDrag(c.X, c.Y)
	}
}

// pointerUp finalizes any drag in flight.
func (pc *PatternCanvas) pointerUp() {
	pc.painting = false

	if pc.shaping {
		pc.shaping = false
		s, e := pc.shapeStart, pc.shapeEnd
		switch pc.tool {
		case ToolLine:
			pc.eng.DrawLine(s.X, s.Y, e.X, e.Y, pc.activeColor)
		case ToolRect:
			pc.eng.DrawRectangle(s.X, s.Y, e.X, e.Y, pc.activeColor, pc.filledShapes)
		case ToolEllipse:
			pc.eng.DrawEllipse(s.X, s.Y, e.X, e.Y, pc.activeColor, pc.filledShapes)
		}
		pc.Refresh()
		return
	}

	if pc.interacting {
		pc.interacting = false
		if pc.resizing {
			pc.eng.EndResize()
		} else {
			pc.eng.EndDrag()
		}
		pc.resizing = false
	}
}

// handleAt maps a cell near the selection boundary to a resize handle.
func handleAt(b geometry.RectInt, c geometry.PointInt) (selection.Handle, bool) {
	near := func(v, edge int) bool {
		d := v - edge
		if d < 0 {
			d = -d
		}
		return d <= handleHitCells
	}
	onLeft := near(c.X, b.X)
	onRight := near(c.X, b.MaxX())
	onTop := near(c.Y, b.Y)
	onBottom := near(c.Y, b.MaxY())

	withinX := c.X >= b.X-handleHitCells && c.X <= b.MaxX()+handleHitCells
	withinY := c.Y >= b.Y-handleHitCells && c.Y <= b.MaxY()+handleHitCells
	if !withinX || !withinY {
		return "", false
	}

	switch {
	case onTop && onLeft:
		return selection.HandleNW, true
	case onTop && onRight:
		return selection.HandleNE, true
	case onBottom && onLeft:
		return selection.HandleSW, true
	case onBottom && onRight:
		return selection.HandleSE, true
	case onTop:
		return selection.HandleN, true
	case onBottom:
		return selection.HandleS, true
	case onLeft:
		return selection.HandleW, true
	case onRight:
		return selection.HandleE, true
	}
	return "", false
}
