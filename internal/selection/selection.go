// Package selection implements the bounding-box selection and transform
// state machine: drag and resize interactions over a snapshot of a
// layer's stitches, with aspect-ratio locking and reverse-mapped
// nearest-neighbor resampling. The machine is agnostic of layers; it
// works on stitch snapshots and hands the transformed set back to the
// engine on release.
package selection

import (
	"stitch-designer/internal/pattern"
	"stitch-designer/pkg/geometry"
)

// Handle identifies one of the eight resize handles.
type Handle string

const (
	HandleN  Handle = "n"
	HandleS  Handle = "s"
	HandleE  Handle = "e"
	HandleW  Handle = "w"
	HandleNE Handle = "ne"
	HandleNW Handle = "nw"
	HandleSE Handle = "se"
	HandleSW Handle = "sw"
)

// Phase is the interaction state of a live selection.
type Phase int

const (
	PhaseSelected Phase = iota
	PhaseDragging
	PhaseResizing
)

// State is a live selection. Exactly one of two modes holds: bound to a
// committed layer (LayerID set, Floating nil) or floating (LayerID empty,
// Floating carries the not-yet-committed payload).
type State struct {
	LayerID  string
	Bounds   geometry.RectInt
	Floating []pattern.Stitch

	phase  Phase
	handle Handle
	free   bool
	anchor geometry.PointInt

	// Pre-interaction snapshot for diffing and cancellation.
	origBounds   geometry.RectInt
	origStitches []pattern.Stitch
}

// FromStitches enters the Selected state for a layer-bound selection.
// Returns nil when the layer has no stitches: an empty layer cannot be
// selected.
func FromStitches(layerID string, stitches []pattern.Stitch) *State {
	if len(stitches) == 0 {
		return nil
	}
	return &State{
		LayerID: layerID,
		Bounds:  stitchBounds(stitches),
	}
}

// NewFloating enters the Selected state for content not yet owned by any
// layer. Returns nil for an empty payload.
func NewFloating(stitches []pattern.Stitch) *State {
	if len(stitches) == 0 {
		return nil
	}
	return &State{
		Bounds:   stitchBounds(stitches),
		Floating: append([]pattern.Stitch(nil), stitches...),
	}
}

// IsFloating reports whether the selection holds uncommitted content.
func (s *State) IsFloating() bool { return s.LayerID == "" }

// Phase returns the current interaction phase.
func (s *State) Phase() Phase { return s.phase }

// Dragging reports whether a drag is in flight.
func (s *State) Dragging() bool { return s.phase == PhaseDragging }

// Resizing reports whether a resize is in flight.
func (s *State) Resizing() bool { return s.phase == PhaseResizing }

// StartDrag captures the drag anchor and the pre-transform snapshot.
// No-op unless the selection is idle in Selected.
func (s *State) StartDrag(x, y int, snapshot []pattern.Stitch) {
	if s.phase != PhaseSelected {
		return
	}
	s.phase = PhaseDragging
	s.anchor = geometry.PointInt{X: x, Y: y}
	s.origBounds = s.Bounds
	s.origStitches = append([]pattern.Stitch(nil), snapshot...)
}

// UpdateDrag translates the bounds by the pointer delta. Stitches are not
// touched until release.
func (s *State) UpdateDrag(x, y int) {
	if s.phase != PhaseDragging {
		return
	}
	s.Bounds = s.origBounds.Translate(x-s.anchor.X, y-s.anchor.Y)
}

// EndDrag applies the accumulated translation to the snapshot and returns
// the final stitch set. moved is false when the pointer returned to its
// anchor and nothing changed.
func (s *State) EndDrag() (out []pattern.Stitch, moved bool) {
	if s.phase != PhaseDragging {
		return nil, false
	}
	s.phase = PhaseSelected
	dx := s.Bounds.X - s.origBounds.X
	dy := s.Bounds.Y - s.origBounds.Y
	out = make([]pattern.Stitch, len(s.origStitches))
	for i, st := range s.origStitches {
		st.X += dx
		st.Y += dy
		out[i] = st
	}
	s.origStitches = nil
	return out, dx != 0 || dy != 0
}

// StartResize captures the active handle, the pre-transform snapshot, and
// whether the free-resize modifier disables the aspect lock.
func (s *State) StartResize(h Handle, x, y int, free bool, snapshot []pattern.Stitch) {
	if s.phase != PhaseSelected {
		return
	}
	s.phase = PhaseResizing
	s.handle = h
	s.free = free
	s.anchor = geometry.PointInt{X: x, Y: y}
	s.origBounds = s.Bounds
	s.origStitches = append([]pattern.Stitch(nil), snapshot...)
}

// UpdateResize recomputes the requested bounds from the pointer delta,
// enforcing a 1-cell minimum per dimension and, unless free resize is
// active, locking the aspect ratio to the pre-resize ratio.
func (s *State) UpdateResize(x, y int) {
	if s.phase != PhaseResizing {
		return
	}
	dx := x - s.anchor.X
	dy := y - s.anchor.Y
	s.Bounds = resizeBounds(s.origBounds, s.handle, dx, dy, !s.free)
}

// EndResize resamples the snapshot into the requested bounds and returns
// the final stitch set together with the original bounds. Bounds are then
// recomputed from the actual stitch extent, which may differ from the
// requested box due to rounding. The engine substitutes text regeneration
// for resampling when the layer carries text metadata.
func (s *State) EndResize() (stitches []pattern.Stitch, from geometry.RectInt, ok bool) {
	if s.phase != PhaseResizing {
		return nil, geometry.RectInt{}, false
	}
	s.phase = PhaseSelected
	from = s.origBounds
	stitches = Resample(s.origStitches, s.origBounds, s.Bounds)
	if len(stitches) > 0 {
		s.Bounds = stitchBounds(stitches)
	}
	s.origStitches = nil
	return stitches, from, true
}

// AcceptRegenerated installs externally regenerated content (text layers)
// after a resize, recomputing bounds from the actual extent.
func (s *State) AcceptRegenerated(stitches []pattern.Stitch) {
	if len(stitches) > 0 {
		s.Bounds = stitchBounds(stitches)
	}
}

// Cancel abandons any in-flight interaction, restoring the
// pre-interaction bounds. The selection itself stays alive.
func (s *State) Cancel() {
	if s.phase == PhaseSelected {
		return
	}
	s.phase = PhaseSelected
	s.Bounds = s.origBounds
	s.origStitches = nil
}

// resizeBounds applies a handle drag to the original bounds.
func resizeBounds(orig geometry.RectInt, h Handle, dx, dy int, lockAspect bool) geometry.RectInt {
	width := orig.Width
	height := orig.Height

	switch h {
	case HandleE:
		width = orig.Width + dx
	case HandleW:
		width = orig.Width - dx
	case HandleS:
		height = orig.Height + dy
	case HandleN:
		height = orig.Height - dy
	case HandleSE:
		width = orig.Width + dx
		height = orig.Height + dy
	case HandleNE:
		width = orig.Width + dx
		height = orig.Height - dy
	case HandleSW:
		width = orig.Width - dx
		height = orig.Height + dy
	case HandleNW:
		width = orig.Width - dx
		height = orig.Height - dy
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	if lockAspect {
		switch h {
		case HandleE, HandleW:
			height = scaleDim(width, orig.Height, orig.Width)
		case HandleN, HandleS:
			width = scaleDim(height, orig.Width, orig.Height)
		default:
			// Corner: the axis the pointer moved further along drives
			// the scale. The flip as the dominant axis changes mid-drag
			// is the observed behavior and is kept as-is.
			if absInt(dx) > absInt(dy) {
				height = scaleDim(width, orig.Height, orig.Width)
			} else {
				width = scaleDim(height, orig.Width, orig.Height)
			}
		}
	}

	r := geometry.RectInt{Width: width, Height: height}
	switch h {
	case HandleE, HandleW:
		// Perpendicular dimension re-centers around the original
		// vertical midpoint.
		r.Y = orig.Y + (orig.Height-height)/2
		if h == HandleE {
			r.X = orig.X
		} else {
			r.X = orig.MaxX() - width + 1
		}
	case HandleN, HandleS:
		r.X = orig.X + (orig.Width-width)/2
		if h == HandleS {
			r.Y = orig.Y
		} else {
			r.Y = orig.MaxY() - height + 1
		}
	case HandleSE:
		r.X, r.Y = orig.X, orig.Y
	case HandleNE:
		r.X = orig.X
		r.Y = orig.MaxY() - height + 1
	case HandleSW:
		r.X = orig.MaxX() - width + 1
		r.Y = orig.Y
	case HandleNW:
		r.X = orig.MaxX() - width + 1
		r.Y = orig.MaxY() - height + 1
	}
	return r
}

// scaleDim scales a perpendicular dimension by the locked ratio
// (driven * origOther / origDriven), floored at 1 cell.
func scaleDim(driven, origOther, origDriven int) int {
	if origDriven == 0 {
		return 1
	}
	v := (driven*origOther + origDriven/2) / origDriven
	if v < 1 {
		v = 1
	}
	return v
}

// Resample maps every cell of the new bounds back to its source cell via
// floor(newRel * oldSize / newSize) and copies that stitch's color.
// Reverse mapping guarantees no gaps appear when scaling up.
func Resample(stitches []pattern.Stitch, from, to geometry.RectInt) []pattern.Stitch {
	if from.Empty() || to.Empty() || len(stitches) == 0 {
		return nil
	}
	src := make(map[pattern.CellKey]pattern.Stitch, len(stitches))
	for _, st := range stitches {
		src[pattern.Key(st.X, st.Y)] = st
	}

	var out []pattern.Stitch
	for y := 0; y < to.Height; y++ {
		srcY := from.Y + y*from.Height/to.Height
		for x := 0; x < to.Width; x++ {
			srcX := from.X + x*from.Width/to.Width
			st, ok := src[pattern.Key(srcX, srcY)]
			if !ok {
				continue
			}
			st.X = to.X + x
			st.Y = to.Y + y
			out = append(out, st)
		}
	}
	return out
}

func stitchBounds(stitches []pattern.Stitch) geometry.RectInt {
	points := make([]geometry.PointInt, len(stitches))
	for i, st := range stitches {
		points[i] = st.Point()
	}
	return geometry.BoundingBoxInt(points)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
