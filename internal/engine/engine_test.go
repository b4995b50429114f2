package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stitch-designer/internal/pattern"
	"stitch-designer/internal/selection"
	"stitch-designer/pkg/geometry"
)

// newTestEngine builds an engine with a 20x20 document and two palette
// colors, with history cleared of the setup mutations.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(nil)
	e.NewPattern("test", 20, 20, 14)
	e.Pattern().Palette = append(e.Pattern().Palette,
		pattern.Color{ID: "red", Name: "Red", RGB: [3]uint8{255, 0, 0}},
		pattern.Color{ID: "blue", Name: "Blue", RGB: [3]uint8{0, 0, 255}},
	)
	return e
}

func activeLayer(e *Engine) *pattern.Layer {
	return e.Pattern().LayerByID(e.ActiveLayerID())
}

func TestSetStitchPlacesAndRecords(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(3, 4, "red")

	s, ok := activeLayer(e).StitchAt(3, 4)
	assert.True(t, ok)
	assert.Equal(t, "red", s.ColorID)
	assert.True(t, e.CanUndo())
	assert.True(t, e.Dirty())
}

func TestSetStitchSameColorNoOp(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(3, 4, "red")
	e.Undo()
	e.Redo()

	// Re-placing the identical stitch must not create a history entry.
	e.SetStitch(3, 4, "red")
	e.Undo()
	assert.Equal(t, 0, activeLayer(e).Count())
	assert.False(t, e.CanUndo())
}

func TestSetStitchRejectsInvalid(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(-1, 0, "red")
	e.SetStitch(0, 20, "red")
	e.SetStitch(1, 1, "no-such-color")
	assert.Equal(t, 0, activeLayer(e).Count())
	assert.False(t, e.CanUndo())
}

func TestRemoveStitchEmptyCellNoOp(t *testing.T) {
	e := newTestEngine(t)
	e.RemoveStitch(5, 5)
	assert.False(t, e.CanUndo())

	e.SetStitch(5, 5, "red")
	e.RemoveStitch(5, 5)
	assert.Equal(t, 0, activeLayer(e).Count())
}

func TestToggleCompleted(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(2, 2, "red")

	e.ToggleCompleted(2, 2)
	s, _ := activeLayer(e).StitchAt(2, 2)
	assert.True(t, s.Completed)
	assert.Equal(t, "red", s.ColorID)

	e.ToggleCompleted(2, 2)
	s, _ = activeLayer(e).StitchAt(2, 2)
	assert.False(t, s.Completed)
}

func TestFillAreaIdempotent(t *testing.T) {
	e := newTestEngine(t)
	e.FillArea(0, 0, "red")
	assert.Equal(t, 400, activeLayer(e).Count())

	// Filling a region with its own color is a no-op: no history entry.
	e.FillArea(0, 0, "red")
	e.Undo()
	assert.Equal(t, 0, activeLayer(e).Count())
	assert.False(t, e.CanUndo())
}

func TestFillAreaBoundedByOtherColors(t *testing.T) {
	e := newTestEngine(t)
	e.DrawRectangle(2, 2, 7, 7, "red", false)
	e.FillArea(4, 4, "blue")

	l := activeLayer(e)
	s, _ := l.StitchAt(4, 4)
	assert.Equal(t, "blue", s.ColorID)
	s, _ = l.StitchAt(2, 2)
	assert.Equal(t, "red", s.ColorID)
	_, outside := l.StitchAt(0, 0)
	assert.False(t, outside)
}

func TestDrawShapesSingleHistoryEntry(t *testing.T) {
	e := newTestEngine(t)
	e.DrawLine(0, 0, 5, 5, "red")
	assert.Equal(t, 6, activeLayer(e).Count())

	e.Undo()
	assert.Equal(t, 0, activeLayer(e).Count())
	assert.False(t, e.CanUndo())
}

func TestDrawFullyOffCanvasNoOp(t *testing.T) {
	e := newTestEngine(t)
	e.DrawRectangle(30, 30, 40, 40, "red", true)
	assert.Equal(t, 0, activeLayer(e).Count())
	assert.False(t, e.CanUndo())
}

func TestLockedLayerRejectsEdits(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(1, 1, "red")
	e.SetLayerLocked(e.ActiveLayerID(), true)

	e.SetStitch(2, 2, "red")
	e.RemoveStitch(1, 1)
	e.FillArea(5, 5, "blue")
	assert.Equal(t, 1, activeLayer(e).Count())

	e.SetLayerLocked(e.ActiveLayerID(), false)
	e.SetStitch(2, 2, "red")
	assert.Equal(t, 2, activeLayer(e).Count())
}

func TestUndoRedoRestoresDocument(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(1, 1, "red")
	e.SetStitch(2, 2, "blue")

	e.Undo()
	assert.Equal(t, 1, activeLayer(e).Count())
	e.Undo()
	assert.Equal(t, 0, activeLayer(e).Count())
	e.Redo()
	e.Redo()
	assert.Equal(t, 2, activeLayer(e).Count())
	s, _ := activeLayer(e).StitchAt(2, 2)
	assert.Equal(t, "blue", s.ColorID)
}

func TestUndoClearsSelection(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(1, 1, "red")
	e.SelectLayerForTransform(e.ActiveLayerID())
	assert.NotNil(t, e.Selection())

	e.Undo()
	assert.Nil(t, e.Selection())
}

func TestAddRemoveLayer(t *testing.T) {
	e := newTestEngine(t)
	l := e.AddLayer()
	assert.NotNil(t, l)
	assert.Len(t, e.Pattern().Layers, 2)
	assert.Equal(t, l.ID, e.ActiveLayerID())

	e.RemoveLayer(l.ID)
	assert.Len(t, e.Pattern().Layers, 1)
	assert.Equal(t, e.Pattern().Layers[0].ID, e.ActiveLayerID())
}

func TestRemoveLastLayerRejected(t *testing.T) {
	e := newTestEngine(t)
	e.RemoveLayer(e.ActiveLayerID())
	assert.Len(t, e.Pattern().Layers, 1)
	assert.False(t, e.CanUndo())
}

func TestDuplicateLayerCopiesStitches(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(3, 3, "red")
	src := e.ActiveLayerID()

	dup := e.DuplicateLayer(src)
	assert.NotNil(t, dup)
	assert.NotEqual(t, src, dup.ID)
	assert.Equal(t, 1, dup.Count())
	assert.Equal(t, dup.ID, e.ActiveLayerID())
	// The copy sits immediately above its origin.
	assert.Equal(t, e.Pattern().LayerIndex(src)+1, e.Pattern().LayerIndex(dup.ID))

	// Editing the copy must not touch the original.
	e.SetStitch(4, 4, "blue")
	assert.Equal(t, 1, e.Pattern().LayerByID(src).Count())
}

func TestMergeLayersSourceWins(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(1, 1, "red")
	target := e.ActiveLayerID()

	top := e.AddLayer()
	e.SetStitch(1, 1, "blue")
	e.SetStitch(2, 2, "blue")

	e.MergeLayers(top.ID, target)
	assert.Len(t, e.Pattern().Layers, 1)
	l := e.Pattern().LayerByID(target)
	assert.Equal(t, 2, l.Count())
	s, _ := l.StitchAt(1, 1)
	assert.Equal(t, "blue", s.ColorID)
	assert.Equal(t, target, e.ActiveLayerID())
}

func TestMergeLayersDropsMetadata(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(1, 1, "red")
	target := e.ActiveLayerID()

	top := e.AddLayer()
	e.SetStitch(2, 2, "blue")
	top.Metadata = pattern.TextMetadata{Text: "hi", ColorID: "blue"}

	e.MergeLayers(top.ID, target)
	assert.Nil(t, e.Pattern().LayerByID(target).Metadata)
}

func TestReorderLayerAdjacentOnly(t *testing.T) {
	e := newTestEngine(t)
	bottom := e.Pattern().Layers[0].ID
	e.AddLayer()
	top := e.AddLayer()

	e.ReorderLayer(bottom, 1)
	assert.Equal(t, 1, e.Pattern().LayerIndex(bottom))

	// Top of stack cannot move further up; bad directions are rejected.
	e.ReorderLayer(top.ID, 1)
	assert.Equal(t, 2, e.Pattern().LayerIndex(top.ID))
	e.ReorderLayer(bottom, 2)
	assert.Equal(t, 1, e.Pattern().LayerIndex(bottom))
}

func TestPaletteOperations(t *testing.T) {
	e := newTestEngine(t)
	id := e.AddColor(pattern.Color{Name: "Green", RGB: [3]uint8{0, 255, 0}})
	assert.NotEmpty(t, id)
	assert.Equal(t, "Green", e.Pattern().ColorByID(id).Name)

	c := *e.Pattern().ColorByID(id)
	c.Name = "Forest"
	e.UpdateColor(c)
	assert.Equal(t, "Forest", e.Pattern().ColorByID(id).Name)

	e.RemoveColor(id)
	assert.Nil(t, e.Pattern().ColorByID(id))
}

func TestAddColorDuplicateIDReassigned(t *testing.T) {
	e := newTestEngine(t)
	id := e.AddColor(pattern.Color{ID: "red", Name: "Also Red"})
	assert.NotEqual(t, "red", id)
	assert.Equal(t, "Red", e.Pattern().ColorByID("red").Name)
}

func TestRemoveColorLeavesStitches(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(1, 1, "red")
	e.RemoveColor("red")

	s, ok := activeLayer(e).StitchAt(1, 1)
	assert.True(t, ok)
	assert.Equal(t, "red", s.ColorID)
}

func TestSelectEmptyLayerClearsSelection(t *testing.T) {
	e := newTestEngine(t)
	e.SelectLayerForTransform(e.ActiveLayerID())
	assert.Nil(t, e.Selection())
}

func TestDragAppliesOnceOnRelease(t *testing.T) {
	e := newTestEngine(t)
	e.DrawRectangle(2, 2, 4, 4, "red", true)
	e.SelectLayerForTransform(e.ActiveLayerID())

	e.StartDrag(3, 3)
	e.UpdateDrag(8, 3)
	e.EndDrag()

	l := activeLayer(e)
	_, was := l.StitchAt(2, 2)
	assert.False(t, was)
	s, ok := l.StitchAt(7, 2)
	assert.True(t, ok)
	assert.Equal(t, "red", s.ColorID)

	// One history entry for the whole drag.
	e.Undo()
	_, back := activeLayer(e).StitchAt(2, 2)
	assert.True(t, back)
}

func TestDragNoNetChangeSkipsHistory(t *testing.T) {
	e := newTestEngine(t)
	e.DrawRectangle(2, 2, 4, 4, "red", true)
	e.SelectLayerForTransform(e.ActiveLayerID())

	e.StartDrag(3, 3)
	e.UpdateDrag(9, 9)
	e.UpdateDrag(3, 3)
	e.EndDrag()

	e.Undo()
	assert.Equal(t, 0, activeLayer(e).Count())
	assert.False(t, e.CanUndo())
}

func TestCancelInteractionRestoresBounds(t *testing.T) {
	e := newTestEngine(t)
	e.DrawRectangle(2, 2, 4, 4, "red", true)
	e.SelectLayerForTransform(e.ActiveLayerID())

	e.StartDrag(3, 3)
	e.UpdateDrag(10, 10)
	e.CancelInteraction()

	sel := e.Selection()
	assert.NotNil(t, sel)
	assert.Equal(t, geometry.NewRectInt(2, 2, 3, 3), sel.Bounds)
	s, _ := activeLayer(e).StitchAt(2, 2)
	assert.Equal(t, "red", s.ColorID)
}

func TestResizeResamplesLayer(t *testing.T) {
	e := newTestEngine(t)
	e.DrawRectangle(2, 2, 3, 3, "red", true)
	e.SelectLayerForTransform(e.ActiveLayerID())

	e.StartResize(selection.HandleSE, 3, 3, true)
	e.StartResize(selection.HandleSE, 3, 3, true) // second start is ignored
	e.UpdateResize(5, 5)
	e.EndResize()

	assert.Equal(t, 16, activeLayer(e).Count())
	assert.Equal(t, geometry.NewRectInt(2, 2, 4, 4), e.Selection().Bounds)
}

func TestFloatingCommitMergesIntoActiveLayer(t *testing.T) {
	e := newTestEngine(t)
	e.CreateFloatingSelection([]pattern.Stitch{
		{X: 5, Y: 5, ColorID: "red"},
		{X: 6, Y: 5, ColorID: "red"},
	})
	sel := e.Selection()
	assert.NotNil(t, sel)
	assert.True(t, sel.IsFloating())
	assert.Equal(t, 0, activeLayer(e).Count())

	e.CommitFloatingSelection()
	assert.Nil(t, e.Selection())
	assert.Equal(t, 2, activeLayer(e).Count())

	e.Undo()
	assert.Equal(t, 0, activeLayer(e).Count())
}

func TestFloatingDragMovesPayloadOnly(t *testing.T) {
	e := newTestEngine(t)
	e.CreateFloatingSelection([]pattern.Stitch{{X: 5, Y: 5, ColorID: "red"}})

	e.StartDrag(5, 5)
	e.UpdateDrag(8, 9)
	e.EndDrag()
	assert.False(t, e.CanUndo())

	e.CommitFloatingSelection()
	s, ok := activeLayer(e).StitchAt(8, 9)
	assert.True(t, ok)
	assert.Equal(t, "red", s.ColorID)
}

func TestFloatingCancelDiscards(t *testing.T) {
	e := newTestEngine(t)
	e.CreateFloatingSelection([]pattern.Stitch{{X: 5, Y: 5, ColorID: "red"}})
	e.CancelFloatingSelection()

	assert.Nil(t, e.Selection())
	assert.Equal(t, 0, activeLayer(e).Count())
	assert.False(t, e.CanUndo())
}

func TestClearSelectionCommitsFloating(t *testing.T) {
	e := newTestEngine(t)
	e.CreateFloatingSelection([]pattern.Stitch{{X: 5, Y: 5, ColorID: "red"}})
	e.ClearSelection()

	assert.Nil(t, e.Selection())
	assert.Equal(t, 1, activeLayer(e).Count())
}

func TestImportAsLayerDedupesByThreadCode(t *testing.T) {
	e := newTestEngine(t)
	e.Pattern().Palette[0].ThreadBrand = "DMC"
	e.Pattern().Palette[0].ThreadCode = "321"

	l := e.ImportAsLayer(ImportPayload{
		Name: "photo",
		Colors: []pattern.Color{
			{ID: "in-1", Name: "DMC 321", ThreadBrand: "DMC", ThreadCode: "321"},
			{ID: "in-2", Name: "DMC 699", ThreadBrand: "DMC", ThreadCode: "699"},
		},
		Stitches: []pattern.Stitch{
			{X: 0, Y: 0, ColorID: "in-1"},
			{X: 1, Y: 0, ColorID: "in-2"},
			{X: 25, Y: 0, ColorID: "in-2"}, // off canvas, dropped
		},
	})
	assert.NotNil(t, l)
	assert.Equal(t, "photo", l.Name)
	assert.Equal(t, l.ID, e.ActiveLayerID())
	assert.Equal(t, 2, l.Count())

	// "321" reuses the existing entry; "699" is appended.
	assert.Len(t, e.Pattern().Palette, 3)
	s, _ := l.StitchAt(0, 0)
	assert.Equal(t, "red", s.ColorID)
	s, _ = l.StitchAt(1, 0)
	assert.Equal(t, e.Pattern().ColorByThreadCode("699").ID, s.ColorID)
}

func TestImportEmptyPayloadNoOp(t *testing.T) {
	e := newTestEngine(t)
	assert.Nil(t, e.ImportAsLayer(ImportPayload{Name: "empty"}))
	assert.Len(t, e.Pattern().Layers, 1)
	assert.False(t, e.CanUndo())
}

// fixedRegen returns a constant stitch block regardless of input.
type fixedRegen struct {
	stitches []pattern.Stitch
	calls    int
}

func (f *fixedRegen) Regenerate(meta pattern.TextMetadata, targetHeight int) ([]pattern.Stitch, error) {
	f.calls++
	return append([]pattern.Stitch(nil), f.stitches...), nil
}

func TestResizeTextLayerRegenerates(t *testing.T) {
	regen := &fixedRegen{stitches: []pattern.Stitch{
		{X: 0, Y: 0, ColorID: "red"},
		{X: 1, Y: 0, ColorID: "red"},
		{X: 0, Y: 1, ColorID: "red"},
	}}
	e := New(regen)
	e.NewPattern("test", 20, 20, 14)
	e.Pattern().Palette = append(e.Pattern().Palette,
		pattern.Color{ID: "red", Name: "Red", RGB: [3]uint8{255, 0, 0}})

	e.DrawRectangle(4, 4, 7, 5, "red", true)
	activeLayer(e).Metadata = pattern.TextMetadata{Text: "hi", ColorID: "red"}
	e.SelectLayerForTransform(e.ActiveLayerID())

	// Height changes, so the regenerator runs and its output is placed at
	// the requested origin.
	e.StartResize(selection.HandleS, 5, 5, true)
	e.UpdateResize(5, 9)
	e.EndResize()

	assert.Equal(t, 1, regen.calls)
	l := activeLayer(e)
	assert.Equal(t, 3, l.Count())
	_, ok := l.StitchAt(4, 4)
	assert.True(t, ok)
}

func TestResizeTextLayerWidthOnlySkipsRegen(t *testing.T) {
	regen := &fixedRegen{stitches: []pattern.Stitch{{X: 0, Y: 0, ColorID: "red"}}}
	e := New(regen)
	e.NewPattern("test", 20, 20, 14)
	e.Pattern().Palette = append(e.Pattern().Palette,
		pattern.Color{ID: "red", Name: "Red", RGB: [3]uint8{255, 0, 0}})

	e.DrawRectangle(4, 4, 7, 5, "red", true)
	activeLayer(e).Metadata = pattern.TextMetadata{Text: "hi", ColorID: "red"}
	e.SelectLayerForTransform(e.ActiveLayerID())

	e.StartResize(selection.HandleE, 7, 4, true)
	e.UpdateResize(11, 4)
	e.EndResize()

	assert.Equal(t, 0, regen.calls)
	assert.Equal(t, 8*2, activeLayer(e).Count())
}

func TestSetPatternResetsState(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(1, 1, "red")
	e.SelectLayerForTransform(e.ActiveLayerID())

	e.NewPattern("fresh", 10, 10, 14)
	assert.False(t, e.CanUndo())
	assert.Nil(t, e.Selection())
	assert.False(t, e.Dirty())
	assert.Equal(t, e.Pattern().Layers[0].ID, e.ActiveLayerID())
}

func TestMarkSavedClearsDirty(t *testing.T) {
	e := newTestEngine(t)
	e.SetStitch(1, 1, "red")
	assert.True(t, e.Dirty())
	e.MarkSaved()
	assert.False(t, e.Dirty())
}

func TestEventsEmitted(t *testing.T) {
	e := newTestEngine(t)
	var stitchEvents, layerEvents int
	e.On(EventStitchesChanged, func(interface{}) { stitchEvents++ })
	e.On(EventLayersChanged, func(interface{}) { layerEvents++ })

	e.SetStitch(1, 1, "red")
	e.AddLayer()
	assert.Equal(t, 1, stitchEvents)
	assert.Equal(t, 1, layerEvents)
}
