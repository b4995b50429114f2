// Package project reads and writes .stitchalot pattern documents, a
// versioned JSON format. Loading is tolerant: files from older releases
// may lack ids or symbols, which are synthesized so the rest of the
// application never sees an incomplete document.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"stitch-designer/internal/pattern"
	"stitch-designer/internal/symbols"
)

const (
	// FormatVersion is written to every saved document.
	FormatVersion = "1.0"

	softwareName = "Stitch Designer v1.0"

	// Extension is the document file extension.
	Extension = ".stitchalot"
)

// File is the on-disk document shape.
type File struct {
	Version      string          `json:"version"`
	Metadata     Metadata        `json:"metadata"`
	Canvas       canvasJSON      `json:"canvas"`
	ColorPalette []pattern.Color `json:"color_palette"`
	Layers       []layerJSON     `json:"layers"`
}

// Metadata is the document identity block.
type Metadata struct {
	FileID     string `json:"file_id,omitempty"`
	Name       string `json:"name"`
	Author     string `json:"author,omitempty"`
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	Software   string `json:"software"`
}

type canvasJSON struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MeshCount int `json:"mesh_count"`
}

type layerJSON struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Visible  bool            `json:"visible"`
	Locked   bool            `json:"locked"`
	Stitches []stitchJSON    `json:"stitches"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

type stitchJSON struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	ColorID   string `json:"color_id"`
	Completed bool   `json:"completed"`
}

// textMetadataJSON is the tagged wire form of a text layer's parameters.
type textMetadataJSON struct {
	Type       string  `json:"type"`
	Text       string  `json:"text"`
	FontFamily string  `json:"fontFamily"`
	FontWeight int     `json:"fontWeight"`
	Italic     bool    `json:"italic"`
	ColorID    string  `json:"colorId"`
	Boldness   float64 `json:"boldness"`
}

// Save writes the pattern to path as pretty-printed JSON, stamping the
// modification time. created carries the original creation timestamp
// through resaves; empty means a new document.
func Save(path string, p *pattern.Pattern, created string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	if created == "" {
		created = now
	}
	f := File{
		Version: FormatVersion,
		Metadata: Metadata{
			FileID:     p.FileID,
			Name:       p.Name,
			CreatedAt:  created,
			ModifiedAt: now,
			Software:   softwareName,
		},
		Canvas: canvasJSON{
			Width:     p.Canvas.Width,
			Height:    p.Canvas.Height,
			MeshCount: p.Canvas.MeshCount,
		},
		ColorPalette: p.Palette,
	}
	for _, l := range p.Layers {
		f.Layers = append(f.Layers, encodeLayer(l))
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing project file: %w", err)
	}
	return nil
}

// Load reads a document from path. Missing file ids and palette symbols
// are synthesized; a document with no layers gets one empty layer.
// Stitches outside the canvas are dropped.
func Load(path string) (*pattern.Pattern, Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("reading project file: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, Metadata{}, fmt.Errorf("parsing project file: %w", err)
	}
	if f.Canvas.Width < 1 || f.Canvas.Height < 1 {
		return nil, Metadata{}, fmt.Errorf("invalid canvas size %dx%d", f.Canvas.Width, f.Canvas.Height)
	}

	p := &pattern.Pattern{
		FileID: f.Metadata.FileID,
		Name:   f.Metadata.Name,
		Canvas: pattern.CanvasConfig{
			Width:     f.Canvas.Width,
			Height:    f.Canvas.Height,
			MeshCount: f.Canvas.MeshCount,
		},
		Palette: f.ColorPalette,
	}
	if p.FileID == "" {
		p.FileID = pattern.NewFileID()
	}
	symbols.Assign(p.Palette)

	for _, lj := range f.Layers {
		l := pattern.NewLayer(lj.ID, lj.Name)
		l.Visible = lj.Visible
		l.Locked = lj.Locked
		if l.ID == "" {
			l.ID = p.NextLayerID()
		}
		if meta, ok := decodeMetadata(lj.Metadata); ok {
			l.Metadata = meta
		}
		for _, s := range lj.Stitches {
			if !p.Canvas.Contains(s.X, s.Y) {
				continue
			}
			l.Set(pattern.Stitch{X: s.X, Y: s.Y, ColorID: s.ColorID, Completed: s.Completed})
		}
		p.Layers = append(p.Layers, l)
	}
	if len(p.Layers) == 0 {
		p.Layers = append(p.Layers, pattern.NewLayer(p.NextLayerID(), "Layer 1"))
	}
	return p, f.Metadata, nil
}

func encodeLayer(l *pattern.Layer) layerJSON {
	lj := layerJSON{
		ID:       l.ID,
		Name:     l.Name,
		Visible:  l.Visible,
		Locked:   l.Locked,
		Stitches: make([]stitchJSON, 0, l.Count()),
	}
	for _, s := range l.Stitches() {
		lj.Stitches = append(lj.Stitches, stitchJSON{
			X: s.X, Y: s.Y, ColorID: s.ColorID, Completed: s.Completed,
		})
	}
	if meta, ok := l.Metadata.(pattern.TextMetadata); ok {
		raw, err := json.Marshal(textMetadataJSON{
			Type:       "text",
			Text:       meta.Text,
			FontFamily: meta.FontFamily,
			FontWeight: meta.FontWeight,
			Italic:     meta.Italic,
			ColorID:    meta.ColorID,
			Boldness:   meta.Boldness,
		})
		if err == nil {
			lj.Metadata = raw
		}
	}
	return lj
}

// decodeMetadata parses a layer metadata blob. Unknown metadata types
// degrade to a plain layer rather than failing the load.
func decodeMetadata(raw json.RawMessage) (pattern.Metadata, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var tm textMetadataJSON
	if err := json.Unmarshal(raw, &tm); err != nil || tm.Type != "text" {
		return nil, false
	}
	return pattern.TextMetadata{
		Text:       tm.Text,
		FontFamily: tm.FontFamily,
		FontWeight: tm.FontWeight,
		Italic:     tm.Italic,
		ColorID:    tm.ColorID,
		Boldness:   tm.Boldness,
	}, true
}
