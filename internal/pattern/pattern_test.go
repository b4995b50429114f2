package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stitch-designer/pkg/geometry"
)

func TestNewPatternDefaults(t *testing.T) {
	p := New("Sampler", 80, 60, 14)
	assert.NotEmpty(t, p.FileID)
	assert.Equal(t, "Sampler", p.Name)
	assert.Equal(t, CanvasConfig{Width: 80, Height: 60, MeshCount: 14}, p.Canvas)
	assert.Len(t, p.Layers, 1)
	assert.Equal(t, "Layer 1", p.Layers[0].Name)
	assert.True(t, p.Layers[0].Visible)
	assert.False(t, p.Layers[0].Locked)
}

func TestNewFileIDUnique(t *testing.T) {
	assert.NotEqual(t, NewFileID(), NewFileID())
}

func TestNextLayerIDSkipsExisting(t *testing.T) {
	p := New("p", 10, 10, 14)
	p.Layers = append(p.Layers, NewLayer("layer-2", "Taken"))

	id := p.NextLayerID()
	assert.Equal(t, "layer-3", id)
	assert.Nil(t, p.LayerByID(id))
}

func TestLayerSetReplaces(t *testing.T) {
	l := NewLayer("l1", "Layer 1")
	l.Set(Stitch{X: 3, Y: 4, ColorID: "a"})
	l.Set(Stitch{X: 3, Y: 4, ColorID: "b"})

	assert.Equal(t, 1, l.Count())
	s, ok := l.StitchAt(3, 4)
	assert.True(t, ok)
	assert.Equal(t, "b", s.ColorID)
}

func TestLayerRemove(t *testing.T) {
	l := NewLayer("l1", "Layer 1")
	l.Set(Stitch{X: 1, Y: 1, ColorID: "a"})

	assert.True(t, l.Remove(1, 1))
	assert.False(t, l.Remove(1, 1))
	assert.Equal(t, 0, l.Count())
}

func TestLayerMergeLastWriteWins(t *testing.T) {
	l := NewLayer("l1", "Layer 1")
	l.Set(Stitch{X: 0, Y: 0, ColorID: "old"})
	l.Merge([]Stitch{
		{X: 0, Y: 0, ColorID: "new"},
		{X: 1, Y: 0, ColorID: "other"},
	})

	assert.Equal(t, 2, l.Count())
	s, _ := l.StitchAt(0, 0)
	assert.Equal(t, "new", s.ColorID)
}

func TestLayerStitchesSorted(t *testing.T) {
	l := NewLayer("l1", "Layer 1")
	l.Set(Stitch{X: 5, Y: 1, ColorID: "a"})
	l.Set(Stitch{X: 0, Y: 2, ColorID: "a"})
	l.Set(Stitch{X: 2, Y: 1, ColorID: "a"})

	out := l.Stitches()
	assert.Equal(t, []geometry.PointInt{{X: 2, Y: 1}, {X: 5, Y: 1}, {X: 0, Y: 2}},
		[]geometry.PointInt{out[0].Point(), out[1].Point(), out[2].Point()})
}

func TestLayerBounds(t *testing.T) {
	l := NewLayer("l1", "Layer 1")
	_, ok := l.Bounds()
	assert.False(t, ok)

	l.Set(Stitch{X: 3, Y: 7, ColorID: "a"})
	l.Set(Stitch{X: 9, Y: 2, ColorID: "a"})
	b, ok := l.Bounds()
	assert.True(t, ok)
	assert.Equal(t, geometry.NewRectInt(3, 2, 7, 6), b)
}

func TestLayerCloneIndependent(t *testing.T) {
	l := NewLayer("l1", "Layer 1")
	l.Set(Stitch{X: 1, Y: 1, ColorID: "a"})
	c := l.Clone()

	l.Set(Stitch{X: 2, Y: 2, ColorID: "a"})
	l.Name = "renamed"

	assert.Equal(t, 1, c.Count())
	assert.Equal(t, "Layer 1", c.Name)
	assert.False(t, l.Equal(c))
}

func TestPatternCloneIndependent(t *testing.T) {
	p := New("p", 10, 10, 14)
	p.Palette = append(p.Palette, Color{ID: "c1", Name: "Red", RGB: [3]uint8{255, 0, 0}})
	p.Layers[0].Set(Stitch{X: 1, Y: 1, ColorID: "c1"})

	c := p.Clone()
	assert.True(t, p.Equal(c))

	p.Layers[0].Set(Stitch{X: 2, Y: 2, ColorID: "c1"})
	p.Palette[0].Name = "Crimson"
	assert.False(t, p.Equal(c))
	assert.Equal(t, "Red", c.Palette[0].Name)
	assert.Equal(t, 1, c.Layers[0].Count())
}

func TestColorLookups(t *testing.T) {
	p := New("p", 10, 10, 14)
	p.Palette = append(p.Palette,
		Color{ID: "c1", Name: "Red", ThreadBrand: "DMC", ThreadCode: "321"},
		Color{ID: "c2", Name: "Custom"},
	)

	assert.Equal(t, "Red", p.ColorByID("c1").Name)
	assert.Nil(t, p.ColorByID("missing"))
	assert.Equal(t, "c1", p.ColorByThreadCode("321").ID)
	assert.Nil(t, p.ColorByThreadCode(""))
	assert.Nil(t, p.ColorByThreadCode("999"))
}

func TestNextColorIDSkipsUsed(t *testing.T) {
	p := New("p", 10, 10, 14)
	p.Palette = append(p.Palette, Color{ID: "color-1"}, Color{ID: "color-3"})

	id := p.NextColorID()
	assert.Equal(t, "color-4", id)
}

func TestEqualDetectsMetadata(t *testing.T) {
	a := New("p", 10, 10, 14)
	a.FileID = "fixed"
	b := a.Clone()
	assert.True(t, a.Equal(b))

	b.Layers[0].Metadata = TextMetadata{Text: "hi", ColorID: "c1"}
	assert.False(t, a.Equal(b))
}
