package engine

import (
	"fmt"
	"log"

	"stitch-designer/internal/pattern"
)

// AddLayer creates an empty layer at the top of the stack and makes it
// active.
func (e *Engine) AddLayer() *pattern.Layer {
	if e.pat == nil {
		return nil
	}
	e.pushHistory()
	l := e.newLayer()
	e.pat.Layers = append(e.pat.Layers, l)
	e.activeL = l.ID
	e.markDirty()
	e.Emit(EventLayersChanged, nil)
	return l
}

// RemoveLayer deletes a layer. Removing the last remaining layer is
// rejected: at least one layer must always exist.
func (e *Engine) RemoveLayer(id string) {
	if e.pat == nil || len(e.pat.Layers) <= 1 {
		return
	}
	idx := e.pat.LayerIndex(id)
	if idx < 0 {
		log.Printf("engine: RemoveLayer unknown layer %q", id)
		return
	}
	e.pushHistory()
	e.pat.Layers = append(e.pat.Layers[:idx], e.pat.Layers[idx+1:]...)
	if e.activeL == id {
		if idx >= len(e.pat.Layers) {
			idx = len(e.pat.Layers) - 1
		}
		e.activeL = e.pat.Layers[idx].ID
	}
	if e.sel != nil && e.sel.LayerID == id {
		e.clearSelectionLocked()
	}
	e.markDirty()
	e.Emit(EventLayersChanged, nil)
}

// DuplicateLayer copies a layer, placing the copy immediately above its
// origin and making it active.
func (e *Engine) DuplicateLayer(id string) *pattern.Layer {
	if e.pat == nil {
		return nil
	}
	idx := e.pat.LayerIndex(id)
	if idx < 0 {
		log.Printf("engine: DuplicateLayer unknown layer %q", id)
		return nil
	}
	e.pushHistory()
	src := e.pat.Layers[idx]
	dup := src.Clone()
	dup.ID = e.pat.NextLayerID()
	dup.Name = src.Name + " copy"
	e.pat.Layers = append(e.pat.Layers, nil)
	copy(e.pat.Layers[idx+2:], e.pat.Layers[idx+1:])
	e.pat.Layers[idx+1] = dup
	e.activeL = dup.ID
	e.markDirty()
	e.Emit(EventLayersChanged, nil)
	return dup
}

// MergeLayers flattens source onto target, with source taking priority
// at colliding cells, and removes source from the stack. The merged
// layer loses any metadata: it can no longer be regenerated as text.
func (e *Engine) MergeLayers(sourceID, targetID string) {
	if e.pat == nil || sourceID == targetID {
		return
	}
	srcIdx := e.pat.LayerIndex(sourceID)
	target := e.pat.LayerByID(targetID)
	if srcIdx < 0 || target == nil {
		log.Printf("engine: MergeLayers with unknown layer (%q -> %q)", sourceID, targetID)
		return
	}
	if target.Locked {
		return
	}
	e.pushHistory()
	source := e.pat.Layers[srcIdx]
	target.Merge(source.Stitches())
	target.Metadata = nil
	e.pat.Layers = append(e.pat.Layers[:srcIdx], e.pat.Layers[srcIdx+1:]...)
	if e.activeL == sourceID {
		e.activeL = targetID
	}
	if e.sel != nil && (e.sel.LayerID == sourceID || e.sel.LayerID == targetID) {
		e.clearSelectionLocked()
	}
	e.markDirty()
	e.Emit(EventLayersChanged, nil)
	e.Emit(EventStitchesChanged, targetID)
}

// ReorderLayer swaps a layer with its neighbor. Direction +1 moves it
// one position up the stack (towards the top), -1 one position down.
// Arbitrary re-indexing is not supported.
func (e *Engine) ReorderLayer(id string, direction int) {
	if e.pat == nil || (direction != 1 && direction != -1) {
		return
	}
	idx := e.pat.LayerIndex(id)
	if idx < 0 {
		return
	}
	other := idx + direction
	if other < 0 || other >= len(e.pat.Layers) {
		return
	}
	e.pushHistory()
	e.pat.Layers[idx], e.pat.Layers[other] = e.pat.Layers[other], e.pat.Layers[idx]
	e.markDirty()
	e.Emit(EventLayersChanged, nil)
}

// RenameLayer changes a layer's display name.
func (e *Engine) RenameLayer(id, name string) {
	if e.pat == nil {
		return
	}
	l := e.pat.LayerByID(id)
	if l == nil || l.Name == name {
		return
	}
	e.pushHistory()
	l.Name = name
	e.markDirty()
	e.Emit(EventLayersChanged, nil)
}

// SetLayerVisible toggles a layer's visibility. Stitch data is never
// touched.
func (e *Engine) SetLayerVisible(id string, visible bool) {
	if e.pat == nil {
		return
	}
	l := e.pat.LayerByID(id)
	if l == nil || l.Visible == visible {
		return
	}
	e.pushHistory()
	l.Visible = visible
	e.markDirty()
	e.Emit(EventLayersChanged, nil)
}

// SetLayerLocked toggles a layer's lock. A locked layer rejects stitch
// mutation but still allows read and select.
func (e *Engine) SetLayerLocked(id string, locked bool) {
	if e.pat == nil {
		return
	}
	l := e.pat.LayerByID(id)
	if l == nil || l.Locked == locked {
		return
	}
	e.pushHistory()
	l.Locked = locked
	e.markDirty()
	e.Emit(EventLayersChanged, nil)
}

// SetActiveLayer changes which layer edits apply to. Not a document
// mutation: no history push.
func (e *Engine) SetActiveLayer(id string) {
	if e.pat == nil || e.pat.LayerByID(id) == nil || e.activeL == id {
		return
	}
	e.activeL = id
	e.Emit(EventLayersChanged, nil)
}

// AddColor appends a color to the palette, assigning a fresh id when the
// given one is empty or already taken.
func (e *Engine) AddColor(c pattern.Color) string {
	if e.pat == nil {
		return ""
	}
	if c.ID == "" || e.pat.ColorByID(c.ID) != nil {
		c.ID = e.pat.NextColorID()
	}
	e.pushHistory()
	e.pat.Palette = append(e.pat.Palette, c)
	e.markDirty()
	e.Emit(EventPaletteChanged, nil)
	return c.ID
}

// UpdateColor replaces the palette entry with the same id.
func (e *Engine) UpdateColor(c pattern.Color) {
	if e.pat == nil {
		return
	}
	existing := e.pat.ColorByID(c.ID)
	if existing == nil {
		log.Printf("engine: UpdateColor unknown color %q", c.ID)
		return
	}
	if *existing == c {
		return
	}
	e.pushHistory()
	*e.pat.ColorByID(c.ID) = c
	e.markDirty()
	e.Emit(EventPaletteChanged, nil)
}

// RemoveColor drops a palette entry. Stitches referencing it are left in
// place; a dangling color reference simply renders as nothing.
func (e *Engine) RemoveColor(id string) {
	if e.pat == nil {
		return
	}
	for i := range e.pat.Palette {
		if e.pat.Palette[i].ID == id {
			e.pushHistory()
			e.pat.Palette = append(e.pat.Palette[:i], e.pat.Palette[i+1:]...)
			e.markDirty()
			e.Emit(EventPaletteChanged, nil)
			return
		}
	}
}

// newLayer allocates a layer with a document-unique id.
func (e *Engine) newLayer() *pattern.Layer {
	id := e.pat.NextLayerID()
	return pattern.NewLayer(id, fmt.Sprintf("Layer %d", len(e.pat.Layers)+1))
}
