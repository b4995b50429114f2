package engine

import (
	"log"

	"stitch-designer/internal/pattern"
	"stitch-designer/internal/selection"
)

// SelectLayerForTransform creates a selection whose bounds cover all of
// the layer's stitches. A layer with no stitches cannot be selected; the
// selection stays (or becomes) empty. Locked layers may be selected;
// they only reject the mutating end of drag/resize.
func (e *Engine) SelectLayerForTransform(layerID string) {
	if e.pat == nil {
		return
	}
	// Always finalize the previous interaction before starting over: an
	// in-flight drag is cancelled and floating content is committed.
	e.CancelInteraction()
	e.ClearSelection()

	l := e.pat.LayerByID(layerID)
	if l == nil {
		log.Printf("engine: SelectLayerForTransform unknown layer %q", layerID)
		e.clearSelectionLocked()
		return
	}
	sel := selection.FromStitches(layerID, l.Stitches())
	if sel == nil {
		e.clearSelectionLocked()
		return
	}
	e.sel = sel
	e.Emit(EventSelectionChanged, sel)
}

// ClearSelection drops the live selection. A floating selection is
// committed first: clicking away from floating content places it.
func (e *Engine) ClearSelection() {
	if e.sel == nil {
		return
	}
	if e.sel.IsFloating() {
		e.CommitFloatingSelection()
		return
	}
	e.clearSelectionLocked()
}

// StartDrag begins translating the selection from the given anchor cell.
func (e *Engine) StartDrag(x, y int) {
	sel := e.sel
	if sel == nil {
		return
	}
	sel.StartDrag(x, y, e.selectionStitches())
	e.Emit(EventSelectionChanged, sel)
}

// UpdateDrag moves the selection bounds. Stitch data is untouched until
// EndDrag, and no history entry is made per pointer move.
func (e *Engine) UpdateDrag(x, y int) {
	if e.sel == nil {
		return
	}
	e.sel.UpdateDrag(x, y)
	e.Emit(EventSelectionChanged, e.sel)
}

// EndDrag applies the accumulated translation: one history push per
// completed drag. For a floating selection only the floating payload
// moves; the pattern itself is not mutated.
func (e *Engine) EndDrag() {
	sel := e.sel
	if sel == nil || !sel.Dragging() {
		return
	}
	moved, changed := sel.EndDrag()
	if !changed {
		e.Emit(EventSelectionChanged, sel)
		return
	}
	if sel.IsFloating() {
		sel.Floating = moved
		e.Emit(EventSelectionChanged, sel)
		return
	}
	l := e.editableLayer(sel.LayerID)
	if l == nil {
		// Locked or vanished mid-drag: restore the original bounds.
		e.restoreSelectionBounds(sel)
		return
	}
	e.pushHistory()
	l.Replace(moved)
	e.markDirty()
	e.Emit(EventStitchesChanged, l.ID)
	e.Emit(EventSelectionChanged, sel)
}

// StartResize begins resizing the selection from one of the eight
// handles. free disables the aspect-ratio lock.
func (e *Engine) StartResize(h selection.Handle, x, y int, free bool) {
	sel := e.sel
	if sel == nil {
		return
	}
	sel.StartResize(h, x, y, free, e.selectionStitches())
	e.Emit(EventSelectionChanged, sel)
}

// UpdateResize recomputes the requested bounds from the pointer. No
// stitch mutation and no history entry per pointer move.
func (e *Engine) UpdateResize(x, y int) {
	if e.sel == nil {
		return
	}
	e.sel.UpdateResize(x, y)
	e.Emit(EventSelectionChanged, e.sel)
}

// EndResize finalizes the resize. Text layers whose height changed are
// regenerated from their text parameters at the new target height
// instead of resampled, because nearest-neighbor resampling destroys
// font legibility. Everything else gets reverse-mapped resampling.
func (e *Engine) EndResize() {
	sel := e.sel
	if sel == nil || !sel.Resizing() {
		return
	}
	requested := sel.Bounds
	resampled, from, ok := sel.EndResize()
	if !ok {
		return
	}
	if requested == from {
		// No net change: nothing to apply, nothing to record.
		e.Emit(EventSelectionChanged, sel)
		return
	}

	if sel.IsFloating() {
		sel.Floating = resampled
		e.Emit(EventSelectionChanged, sel)
		return
	}
	l := e.editableLayer(sel.LayerID)
	if l == nil {
		e.restoreSelectionBounds(sel)
		return
	}

	final := resampled
	if meta, isText := l.Metadata.(pattern.TextMetadata); isText &&
		requested.Height != from.Height && e.regen != nil {
		regenerated, err := e.regen.Regenerate(meta, requested.Height)
		if err != nil {
			log.Printf("engine: text regeneration failed: %v", err)
		} else if len(regenerated) > 0 {
			final = placeAt(regenerated, requested.X, requested.Y)
			sel.AcceptRegenerated(final)
		}
	}

	e.pushHistory()
	l.Replace(final)
	e.markDirty()
	e.Emit(EventStitchesChanged, l.ID)
	e.Emit(EventSelectionChanged, sel)
}

// CancelInteraction abandons an in-flight drag or resize, restoring the
// pre-interaction bounds. Used for Escape, mouse-leave, and tool
// switches mid-interaction. The document is untouched because nothing is
// applied before release.
func (e *Engine) CancelInteraction() {
	if e.sel == nil {
		return
	}
	if e.sel.Dragging() || e.sel.Resizing() {
		e.sel.Cancel()
		e.Emit(EventSelectionChanged, e.sel)
	}
}

// CreateFloatingSelection enters a floating selection holding stitches
// not yet owned by any layer, e.g. freshly placed text. Not a document
// mutation: no history entry until commit.
func (e *Engine) CreateFloatingSelection(stitches []pattern.Stitch) {
	if e.pat == nil {
		return
	}
	e.ClearSelection()
	sel := selection.NewFloating(stitches)
	if sel == nil {
		return
	}
	e.sel = sel
	e.Emit(EventSelectionChanged, sel)
}

// CommitFloatingSelection merges the floating payload into the active
// layer (floating stitches win at colliding cells) and clears the
// selection.
func (e *Engine) CommitFloatingSelection() {
	sel := e.sel
	if sel == nil || !sel.IsFloating() {
		return
	}
	l := e.editableLayer(e.activeL)
	if l == nil {
		return
	}
	e.pushHistory()
	l.Merge(sel.Floating)
	e.sel = nil
	e.markDirty()
	e.Emit(EventStitchesChanged, l.ID)
	e.Emit(EventSelectionChanged, nil)
}

// CancelFloatingSelection discards the floating payload without touching
// any layer.
func (e *Engine) CancelFloatingSelection() {
	if e.sel == nil || !e.sel.IsFloating() {
		return
	}
	e.sel = nil
	e.Emit(EventSelectionChanged, nil)
}

// restoreSelectionBounds resets a selection's bounds to the owning
// layer's actual stitch extent after an aborted interaction.
func (e *Engine) restoreSelectionBounds(sel *selection.State) {
	if l := e.pat.LayerByID(sel.LayerID); l != nil {
		if b, ok := l.Bounds(); ok {
			sel.Bounds = b
		}
	}
	e.Emit(EventSelectionChanged, sel)
}

// selectionStitches snapshots the stitch set the live selection covers.
func (e *Engine) selectionStitches() []pattern.Stitch {
	if e.sel == nil {
		return nil
	}
	if e.sel.IsFloating() {
		return e.sel.Floating
	}
	if l := e.pat.LayerByID(e.sel.LayerID); l != nil {
		return l.Stitches()
	}
	return nil
}

// placeAt translates stitches so their bounding box starts at (x, y).
func placeAt(stitches []pattern.Stitch, x, y int) []pattern.Stitch {
	if len(stitches) == 0 {
		return stitches
	}
	minX, minY := stitches[0].X, stitches[0].Y
	for _, s := range stitches[1:] {
		if s.X < minX {
			minX = s.X
		}
		if s.Y < minY {
			minY = s.Y
		}
	}
	out := make([]pattern.Stitch, len(stitches))
	for i, s := range stitches {
		s.X += x - minX
		s.Y += y - minY
		out[i] = s
	}
	return out
}
