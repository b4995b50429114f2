package textrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitch-designer/internal/pattern"
)

func sampleMeta() pattern.TextMetadata {
	return pattern.TextMetadata{
		Text:       "AB",
		FontFamily: "sans-serif",
		FontWeight: 400,
		ColorID:    "c1",
	}
}

func TestRegenerateAnchoredAtOrigin(t *testing.T) {
	stitches, err := New().Regenerate(sampleMeta(), 12)
	require.NoError(t, err)
	require.NotEmpty(t, stitches)

	minX, minY := stitches[0].X, stitches[0].Y
	for _, s := range stitches {
		assert.Equal(t, "c1", s.ColorID)
		if s.X < minX {
			minX = s.X
		}
		if s.Y < minY {
			minY = s.Y
		}
	}
	assert.Equal(t, 0, minX)
	assert.Equal(t, 0, minY)
}

func TestRegenerateDeterministic(t *testing.T) {
	r := New()
	a, err := r.Regenerate(sampleMeta(), 10)
	require.NoError(t, err)
	b, err := r.Regenerate(sampleMeta(), 10)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRegenerateEmptyText(t *testing.T) {
	stitches, err := New().Regenerate(pattern.TextMetadata{}, 10)
	assert.NoError(t, err)
	assert.Empty(t, stitches)
}

func TestRegenerateHeightScales(t *testing.T) {
	r := New()
	small, err := r.Regenerate(sampleMeta(), 6)
	require.NoError(t, err)
	large, err := r.Regenerate(sampleMeta(), 18)
	require.NoError(t, err)
	assert.Greater(t, len(large), len(small))
}

func TestRegenerateBoldnessThickens(t *testing.T) {
	r := New()
	thin := sampleMeta()
	thick := sampleMeta()
	thick.Boldness = 1.0

	a, err := r.Regenerate(thin, 12)
	require.NoError(t, err)
	b, err := r.Regenerate(thick, 12)
	require.NoError(t, err)
	// Lower coverage threshold admits more cells.
	assert.GreaterOrEqual(t, len(b), len(a))
}

func TestRegenerateFontVariants(t *testing.T) {
	r := New()
	for _, meta := range []pattern.TextMetadata{
		{Text: "X", FontFamily: "monospace", ColorID: "c1"},
		{Text: "X", FontWeight: 700, ColorID: "c1"},
		{Text: "X", Italic: true, ColorID: "c1"},
		{Text: "X", FontWeight: 700, Italic: true, ColorID: "c1"},
	} {
		stitches, err := r.Regenerate(meta, 10)
		assert.NoError(t, err)
		assert.NotEmpty(t, stitches)
	}
}
