// Package pattern defines the canonical in-memory model for a stitch
// pattern: the canvas configuration, the color palette, and the ordered
// layer stack. All mutation goes through the engine package; rendering
// and export consumers only read.
package pattern

import (
	"crypto/rand"
	"fmt"

	"stitch-designer/pkg/geometry"
)

// CanvasConfig describes the stitchable grid. MeshCount is the physical
// holes-per-inch of the canvas and is only used for unit conversion in
// the UI, never in editing logic.
type CanvasConfig struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MeshCount int `json:"mesh_count"`
}

// Contains returns true if the cell (x, y) lies on the canvas.
func (c CanvasConfig) Contains(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Color is one palette entry. ID is stable and unique within the palette.
// Symbol, when present, must be unique across the palette; uniqueness is
// maintained by the symbols package, not here.
type Color struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	RGB         [3]uint8 `json:"rgb"`
	ThreadBrand string   `json:"thread_brand,omitempty"`
	ThreadCode  string   `json:"thread_code,omitempty"`
	Symbol      string   `json:"symbol,omitempty"`
}

// Stitch is one colored unit at an integer grid cell. ColorID references
// the palette but is not validated here; a dangling reference simply
// renders as nothing. Completed is a progress-tracking flag orthogonal
// to editing.
type Stitch struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	ColorID   string `json:"color_id"`
	Completed bool   `json:"completed"`
}

// Point returns the stitch's cell position.
func (s Stitch) Point() geometry.PointInt {
	return geometry.PointInt{X: s.X, Y: s.Y}
}

// Pattern is the root aggregate: one document being edited.
type Pattern struct {
	// FileID is stable across renames and used for session tracking.
	FileID string `json:"file_id"`
	Name   string `json:"name"`

	Canvas  CanvasConfig `json:"canvas"`
	Palette []Color      `json:"color_palette"`

	// Layers are ordered bottom-to-top; later layers override earlier
	// ones at the same cell when flattened.
	Layers []*Layer `json:"layers"`

	nextLayerSeq int
}

// New creates a fresh pattern with a single empty layer.
func New(name string, width, height, meshCount int) *Pattern {
	p := &Pattern{
		FileID: NewFileID(),
		Name:   name,
		Canvas: CanvasConfig{Width: width, Height: height, MeshCount: meshCount},
	}
	p.Layers = []*Layer{NewLayer(p.NextLayerID(), "Layer 1")}
	return p
}

// NewFileID generates a random document identifier.
func NewFileID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand should not fail; fall back to a fixed marker
		// rather than aborting document creation.
		return "ndp-00000000"
	}
	return fmt.Sprintf("ndp-%x", b)
}

// NextLayerID returns a layer id unique for this document's lifetime.
func (p *Pattern) NextLayerID() string {
	// Seed the counter past any ids already present (loaded documents).
	for {
		p.nextLayerSeq++
		id := fmt.Sprintf("layer-%d", p.nextLayerSeq)
		if p.LayerByID(id) == nil {
			return id
		}
	}
}

// LayerByID returns the layer with the given id, or nil.
func (p *Pattern) LayerByID(id string) *Layer {
	for _, l := range p.Layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// LayerIndex returns the position of the layer in the stack, or -1.
func (p *Pattern) LayerIndex(id string) int {
	for i, l := range p.Layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// ColorByID returns the palette entry with the given id, or nil.
func (p *Pattern) ColorByID(id string) *Color {
	for i := range p.Palette {
		if p.Palette[i].ID == id {
			return &p.Palette[i]
		}
	}
	return nil
}

// ColorByThreadCode returns the palette entry with the given thread code,
// or nil. Entries without a thread code never match.
func (p *Pattern) ColorByThreadCode(code string) *Color {
	if code == "" {
		return nil
	}
	for i := range p.Palette {
		if p.Palette[i].ThreadCode == code {
			return &p.Palette[i]
		}
	}
	return nil
}

// NextColorID returns a palette color id not yet in use.
func (p *Pattern) NextColorID() string {
	for n := len(p.Palette) + 1; ; n++ {
		id := fmt.Sprintf("color-%d", n)
		if p.ColorByID(id) == nil {
			return id
		}
	}
}

// Clone returns a deep copy of the pattern. Used by the history manager
// for snapshots and by read-only consumers that need isolation.
func (p *Pattern) Clone() *Pattern {
	c := &Pattern{
		FileID:       p.FileID,
		Name:         p.Name,
		Canvas:       p.Canvas,
		Palette:      make([]Color, len(p.Palette)),
		Layers:       make([]*Layer, len(p.Layers)),
		nextLayerSeq: p.nextLayerSeq,
	}
	copy(c.Palette, p.Palette)
	for i, l := range p.Layers {
		c.Layers[i] = l.Clone()
	}
	return c
}

// Equal reports whether two patterns hold identical document state.
// Layer iteration order of the stitch maps does not affect the result.
func (p *Pattern) Equal(other *Pattern) bool {
	if p.FileID != other.FileID || p.Name != other.Name || p.Canvas != other.Canvas {
		return false
	}
	if len(p.Palette) != len(other.Palette) || len(p.Layers) != len(other.Layers) {
		return false
	}
	for i := range p.Palette {
		if p.Palette[i] != other.Palette[i] {
			return false
		}
	}
	for i := range p.Layers {
		if !p.Layers[i].Equal(other.Layers[i]) {
			return false
		}
	}
	return true
}
