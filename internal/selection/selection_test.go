package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stitch-designer/internal/pattern"
	"stitch-designer/pkg/geometry"
)

// blockStitches fills the rect with stitches of a single color.
func blockStitches(r geometry.RectInt, colorID string) []pattern.Stitch {
	var out []pattern.Stitch
	for y := r.Y; y <= r.MaxY(); y++ {
		for x := r.X; x <= r.MaxX(); x++ {
			out = append(out, pattern.Stitch{X: x, Y: y, ColorID: colorID})
		}
	}
	return out
}

func stitchSet(stitches []pattern.Stitch) map[geometry.PointInt]string {
	set := make(map[geometry.PointInt]string, len(stitches))
	for _, st := range stitches {
		set[st.Point()] = st.ColorID
	}
	return set
}

func TestFromStitchesBounds(t *testing.T) {
	s := FromStitches("layer-1", []pattern.Stitch{
		{X: 3, Y: 4, ColorID: "a"},
		{X: 7, Y: 2, ColorID: "a"},
		{X: 5, Y: 9, ColorID: "b"},
	})
	assert.NotNil(t, s)
	assert.Equal(t, geometry.NewRectInt(3, 2, 5, 8), s.Bounds)
	assert.False(t, s.IsFloating())
	assert.Equal(t, PhaseSelected, s.Phase())
}

func TestFromStitchesEmptyNil(t *testing.T) {
	assert.Nil(t, FromStitches("layer-1", nil))
	assert.Nil(t, NewFloating(nil))
}

func TestDragTranslates(t *testing.T) {
	snap := blockStitches(geometry.NewRectInt(2, 2, 3, 3), "a")
	s := FromStitches("layer-1", snap)

	s.StartDrag(3, 3, snap)
	assert.True(t, s.Dragging())
	s.UpdateDrag(8, 5)
	assert.Equal(t, geometry.NewRectInt(7, 4, 3, 3), s.Bounds)

	out, moved := s.EndDrag()
	assert.True(t, moved)
	assert.Len(t, out, 9)
	set := stitchSet(out)
	assert.Equal(t, "a", set[geometry.PointInt{X: 7, Y: 4}])
	assert.Equal(t, "a", set[geometry.PointInt{X: 9, Y: 6}])
	assert.Equal(t, PhaseSelected, s.Phase())
}

func TestDragBackToAnchorNotMoved(t *testing.T) {
	snap := blockStitches(geometry.NewRectInt(2, 2, 3, 3), "a")
	s := FromStitches("layer-1", snap)

	s.StartDrag(3, 3, snap)
	s.UpdateDrag(6, 6)
	s.UpdateDrag(3, 3)
	_, moved := s.EndDrag()
	assert.False(t, moved)
	assert.Equal(t, geometry.NewRectInt(2, 2, 3, 3), s.Bounds)
}

func TestResizeEastAspectLocked(t *testing.T) {
	// 4x2 bounds at (10, 10). Dragging the east handle 4 cells out doubles
	// the width; the aspect lock doubles the height too and re-centers it
	// vertically, moving the top edge up one cell.
	snap := blockStitches(geometry.NewRectInt(10, 10, 4, 2), "a")
	s := FromStitches("layer-1", snap)

	s.StartResize(HandleE, 13, 11, false, snap)
	assert.True(t, s.Resizing())
	s.UpdateResize(17, 11)
	assert.Equal(t, geometry.NewRectInt(10, 9, 8, 4), s.Bounds)

	out, from, ok := s.EndResize()
	assert.True(t, ok)
	assert.Equal(t, geometry.NewRectInt(10, 10, 4, 2), from)
	assert.Len(t, out, 8*4)
}

func TestResizeEastFree(t *testing.T) {
	snap := blockStitches(geometry.NewRectInt(10, 10, 4, 2), "a")
	s := FromStitches("layer-1", snap)

	s.StartResize(HandleE, 13, 11, true, snap)
	s.UpdateResize(17, 11)
	// Free resize: only the dragged dimension changes.
	assert.Equal(t, geometry.NewRectInt(10, 10, 8, 2), s.Bounds)
}

func TestResizeWestAnchorsRightEdge(t *testing.T) {
	snap := blockStitches(geometry.NewRectInt(10, 10, 4, 4), "a")
	s := FromStitches("layer-1", snap)

	s.StartResize(HandleW, 10, 12, true, snap)
	s.UpdateResize(8, 12)
	// Right edge stays at x=13 while the box widens to 6.
	assert.Equal(t, geometry.NewRectInt(8, 10, 6, 4), s.Bounds)
	assert.Equal(t, 13, s.Bounds.MaxX())
}

func TestResizeCornerDominantAxis(t *testing.T) {
	snap := blockStitches(geometry.NewRectInt(0, 0, 4, 4), "a")
	s := FromStitches("layer-1", snap)

	// SE corner, dx=4 dy=1: the larger horizontal motion drives the
	// locked scale, so height follows width.
	s.StartResize(HandleSE, 3, 3, false, snap)
	s.UpdateResize(7, 4)
	assert.Equal(t, geometry.NewRectInt(0, 0, 8, 8), s.Bounds)
}

func TestResizeMinimumOneCell(t *testing.T) {
	snap := blockStitches(geometry.NewRectInt(10, 10, 4, 4), "a")
	s := FromStitches("layer-1", snap)

	s.StartResize(HandleE, 13, 12, true, snap)
	s.UpdateResize(-20, 12)
	assert.Equal(t, 1, s.Bounds.Width)
	assert.Equal(t, 4, s.Bounds.Height)
}

func TestCancelRestoresBounds(t *testing.T) {
	snap := blockStitches(geometry.NewRectInt(5, 5, 3, 3), "a")
	s := FromStitches("layer-1", snap)

	s.StartDrag(6, 6, snap)
	s.UpdateDrag(15, 15)
	s.Cancel()
	assert.Equal(t, PhaseSelected, s.Phase())
	assert.Equal(t, geometry.NewRectInt(5, 5, 3, 3), s.Bounds)

	s.StartResize(HandleSE, 7, 7, false, snap)
	s.UpdateResize(12, 12)
	s.Cancel()
	assert.Equal(t, geometry.NewRectInt(5, 5, 3, 3), s.Bounds)
}

func TestStartDragIgnoredWhileResizing(t *testing.T) {
	snap := blockStitches(geometry.NewRectInt(5, 5, 3, 3), "a")
	s := FromStitches("layer-1", snap)

	s.StartResize(HandleE, 7, 6, false, snap)
	s.StartDrag(6, 6, snap)
	assert.True(t, s.Resizing())
}

func TestResizeRoundTripRestoresStitches(t *testing.T) {
	// Doubling through a corner handle and shrinking back reproduces the
	// original stitch set exactly at integer scale factors.
	var orig []pattern.Stitch
	for y := 10; y < 12; y++ {
		for x := 10; x < 14; x++ {
			id := "a"
			if (x+y)%2 == 1 {
				id = "b"
			}
			orig = append(orig, pattern.Stitch{X: x, Y: y, ColorID: id})
		}
	}
	s := FromStitches("layer-1", orig)

	s.StartResize(HandleSE, 13, 11, false, orig)
	s.UpdateResize(17, 11)
	grown, _, ok := s.EndResize()
	assert.True(t, ok)
	assert.Equal(t, geometry.NewRectInt(10, 10, 8, 4), s.Bounds)
	assert.Len(t, grown, 32)

	s.StartResize(HandleSE, 17, 13, false, grown)
	s.UpdateResize(13, 13)
	back, _, ok := s.EndResize()
	assert.True(t, ok)
	assert.Equal(t, geometry.NewRectInt(10, 10, 4, 2), s.Bounds)
	assert.Len(t, back, len(orig))
	assert.Equal(t, stitchSet(orig), stitchSet(back))
}

func TestResampleDoubleUp(t *testing.T) {
	// Scaling an exact 2x leaves no gaps: every source cell becomes a
	// 2x2 block of the same color.
	src := []pattern.Stitch{
		{X: 0, Y: 0, ColorID: "a"},
		{X: 1, Y: 0, ColorID: "b"},
		{X: 0, Y: 1, ColorID: "c"},
		{X: 1, Y: 1, ColorID: "d"},
	}
	from := geometry.NewRectInt(0, 0, 2, 2)
	to := geometry.NewRectInt(0, 0, 4, 4)

	out := Resample(src, from, to)
	assert.Len(t, out, 16)
	set := stitchSet(out)
	assert.Equal(t, "a", set[geometry.PointInt{X: 0, Y: 0}])
	assert.Equal(t, "a", set[geometry.PointInt{X: 1, Y: 1}])
	assert.Equal(t, "b", set[geometry.PointInt{X: 2, Y: 0}])
	assert.Equal(t, "c", set[geometry.PointInt{X: 0, Y: 2}])
	assert.Equal(t, "d", set[geometry.PointInt{X: 3, Y: 3}])
}

func TestResampleHalfDown(t *testing.T) {
	src := blockStitches(geometry.NewRectInt(0, 0, 4, 4), "a")
	out := Resample(src, geometry.NewRectInt(0, 0, 4, 4), geometry.NewRectInt(10, 10, 2, 2))
	assert.Len(t, out, 4)
	for _, st := range out {
		assert.Equal(t, "a", st.ColorID)
		assert.True(t, st.X >= 10 && st.X <= 11)
		assert.True(t, st.Y >= 10 && st.Y <= 11)
	}
}

func TestResampleSkipsEmptySourceCells(t *testing.T) {
	src := []pattern.Stitch{{X: 0, Y: 0, ColorID: "a"}}
	from := geometry.NewRectInt(0, 0, 2, 2)
	to := geometry.NewRectInt(0, 0, 4, 4)

	// Only the top-left quadrant maps to the occupied source cell.
	out := Resample(src, from, to)
	assert.Len(t, out, 4)
	set := stitchSet(out)
	assert.Equal(t, "a", set[geometry.PointInt{X: 0, Y: 0}])
	assert.Equal(t, "a", set[geometry.PointInt{X: 1, Y: 1}])
}

func TestResamplePreservesCompleted(t *testing.T) {
	src := []pattern.Stitch{{X: 0, Y: 0, ColorID: "a", Completed: true}}
	out := Resample(src, geometry.NewRectInt(0, 0, 1, 1), geometry.NewRectInt(0, 0, 2, 2))
	assert.Len(t, out, 4)
	for _, st := range out {
		assert.True(t, st.Completed)
	}
}

func TestResampleEmptyRects(t *testing.T) {
	src := []pattern.Stitch{{X: 0, Y: 0, ColorID: "a"}}
	assert.Nil(t, Resample(src, geometry.RectInt{}, geometry.NewRectInt(0, 0, 2, 2)))
	assert.Nil(t, Resample(src, geometry.NewRectInt(0, 0, 1, 1), geometry.RectInt{}))
	assert.Nil(t, Resample(nil, geometry.NewRectInt(0, 0, 1, 1), geometry.NewRectInt(0, 0, 2, 2)))
}

func TestFloatingSelection(t *testing.T) {
	s := NewFloating([]pattern.Stitch{
		{X: 1, Y: 1, ColorID: "a"},
		{X: 2, Y: 2, ColorID: "a"},
	})
	assert.NotNil(t, s)
	assert.True(t, s.IsFloating())
	assert.Equal(t, geometry.NewRectInt(1, 1, 2, 2), s.Bounds)
	assert.Len(t, s.Floating, 2)
}
