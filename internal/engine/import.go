package engine

import (
	"log"

	"stitch-designer/internal/pattern"
)

// ImportPayload is the interchange shape produced by the image and text
// converters: a self-contained stitch set with its own palette.
type ImportPayload struct {
	Name      string
	Width     int
	Height    int
	MeshCount int
	Colors    []pattern.Color
	Stitches  []pattern.Stitch
}

// ImportAsLayer inserts imported content as a new top layer. Incoming
// colors are deduplicated against the existing palette by thread code,
// and incoming stitch color ids are remapped accordingly before
// insertion. Stitches falling outside the canvas are dropped.
func (e *Engine) ImportAsLayer(payload ImportPayload) *pattern.Layer {
	if e.pat == nil {
		log.Printf("engine: ImportAsLayer with no pattern loaded")
		return nil
	}
	if len(payload.Stitches) == 0 {
		return nil
	}
	e.pushHistory()

	// Map incoming color ids to palette ids, reusing palette entries
	// that carry the same thread code.
	idMap := make(map[string]string, len(payload.Colors))
	for _, c := range payload.Colors {
		if existing := e.pat.ColorByThreadCode(c.ThreadCode); existing != nil {
			idMap[c.ID] = existing.ID
			continue
		}
		incomingID := c.ID
		if c.ID == "" || e.pat.ColorByID(c.ID) != nil {
			c.ID = e.pat.NextColorID()
		}
		e.pat.Palette = append(e.pat.Palette, c)
		idMap[incomingID] = c.ID
	}

	name := payload.Name
	if name == "" {
		name = "Imported"
	}
	l := pattern.NewLayer(e.pat.NextLayerID(), name)
	for _, s := range payload.Stitches {
		if !e.pat.Canvas.Contains(s.X, s.Y) {
			continue
		}
		if mapped, ok := idMap[s.ColorID]; ok {
			s.ColorID = mapped
		}
		l.Set(s)
	}
	e.pat.Layers = append(e.pat.Layers, l)
	e.activeL = l.ID

	e.markDirty()
	e.Emit(EventPaletteChanged, nil)
	e.Emit(EventLayersChanged, nil)
	e.Emit(EventStitchesChanged, l.ID)
	return l
}
