package pattern

import (
	"sort"

	"stitch-designer/pkg/geometry"
)

// CellKey is a packed cell coordinate used to index stitches. At most one
// stitch exists per key; inserting at an occupied key replaces.
type CellKey int64

// Key packs a cell coordinate into a CellKey.
func Key(x, y int) CellKey {
	return CellKey(int64(y)<<32 | int64(uint32(x)))
}

// Metadata is the closed set of special layer kinds. A nil Metadata means
// a plain stitch layer.
type Metadata interface {
	metadataKind() string
}

// TextMetadata captures the parameters needed to regenerate a text
// layer's stitches deterministically, e.g. when the layer is resized.
type TextMetadata struct {
	Text       string
	FontFamily string
	FontWeight int
	Italic     bool
	ColorID    string
	Boldness   float64
}

func (TextMetadata) metadataKind() string { return "text" }

// Layer is an ordered, independently visible and lockable set of stitches
// with at most one stitch per cell.
type Layer struct {
	ID      string
	Name    string
	Visible bool
	Locked  bool

	// Metadata is nil for plain layers. Merging discards it.
	Metadata Metadata

	stitches map[CellKey]Stitch
}

// NewLayer creates an empty, visible, unlocked layer.
func NewLayer(id, name string) *Layer {
	return &Layer{
		ID:       id,
		Name:     name,
		Visible:  true,
		stitches: make(map[CellKey]Stitch),
	}
}

// Count returns the number of stitches on the layer.
func (l *Layer) Count() int {
	return len(l.stitches)
}

// StitchAt returns the stitch at (x, y) if one exists.
func (l *Layer) StitchAt(x, y int) (Stitch, bool) {
	s, ok := l.stitches[Key(x, y)]
	return s, ok
}

// Set places a stitch at its cell, replacing any existing stitch there.
func (l *Layer) Set(s Stitch) {
	l.stitches[Key(s.X, s.Y)] = s
}

// Remove deletes the stitch at (x, y). Returns false if the cell was empty.
func (l *Layer) Remove(x, y int) bool {
	k := Key(x, y)
	if _, ok := l.stitches[k]; !ok {
		return false
	}
	delete(l.stitches, k)
	return true
}

// Merge overlays the given stitches onto the layer, last-write-wins with
// the incoming stitches taking priority at colliding cells.
func (l *Layer) Merge(stitches []Stitch) {
	for _, s := range stitches {
		l.stitches[Key(s.X, s.Y)] = s
	}
}

// Replace swaps the layer's entire stitch collection for the given set.
// Later entries win at colliding cells.
func (l *Layer) Replace(stitches []Stitch) {
	l.stitches = make(map[CellKey]Stitch, len(stitches))
	for _, s := range stitches {
		l.stitches[Key(s.X, s.Y)] = s
	}
}

// Stitches returns the layer's stitches sorted by row then column. The
// slice is a copy; mutating it does not affect the layer.
func (l *Layer) Stitches() []Stitch {
	out := make([]Stitch, 0, len(l.stitches))
	for _, s := range l.stitches {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Bounds returns the minimal rectangle covering all stitches. The second
// return value is false for an empty layer.
func (l *Layer) Bounds() (geometry.RectInt, bool) {
	if len(l.stitches) == 0 {
		return geometry.RectInt{}, false
	}
	first := true
	var minX, minY, maxX, maxY int
	for _, s := range l.stitches {
		if first {
			minX, maxX = s.X, s.X
			minY, maxY = s.Y, s.Y
			first = false
			continue
		}
		if s.X < minX {
			minX = s.X
		}
		if s.X > maxX {
			maxX = s.X
		}
		if s.Y < minY {
			minY = s.Y
		}
		if s.Y > maxY {
			maxY = s.Y
		}
	}
	return geometry.RectInt{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}, true
}

// Clone returns a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	c := &Layer{
		ID:       l.ID,
		Name:     l.Name,
		Visible:  l.Visible,
		Locked:   l.Locked,
		Metadata: l.Metadata,
		stitches: make(map[CellKey]Stitch, len(l.stitches)),
	}
	for k, s := range l.stitches {
		c.stitches[k] = s
	}
	return c
}

// Equal reports whether two layers hold identical state.
func (l *Layer) Equal(other *Layer) bool {
	if l.ID != other.ID || l.Name != other.Name ||
		l.Visible != other.Visible || l.Locked != other.Locked {
		return false
	}
	if l.Metadata != other.Metadata {
		return false
	}
	if len(l.stitches) != len(other.stitches) {
		return false
	}
	for k, s := range l.stitches {
		if o, ok := other.stitches[k]; !ok || o != s {
			return false
		}
	}
	return true
}
