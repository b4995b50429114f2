// Package panels provides the side panel sections of the main window.
package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"stitch-designer/internal/engine"
	"stitch-designer/ui/canvas"
)

// SidePanel groups the layer, palette, and import sections in tabs.
type SidePanel struct {
	eng       *engine.Engine
	container *container.AppTabs

	layersPanel  *LayersPanel
	palettePanel *PalettePanel
	importPanel  *ImportPanel
}

// NewSidePanel creates the side panel bound to the engine and canvas.
func NewSidePanel(eng *engine.Engine, cvs *canvas.PatternCanvas) *SidePanel {
	sp := &SidePanel{eng: eng}

	sp.layersPanel = NewLayersPanel(eng)
	sp.palettePanel = NewPalettePanel(eng, cvs)
	sp.importPanel = NewImportPanel(eng)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Layers", sp.layersPanel.Container()),
		container.NewTabItem("Palette", sp.palettePanel.Container()),
		container.NewTabItem("Import", sp.importPanel.Container()),
	)
	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// SetWindow sets the parent window for dialogs.
func (sp *SidePanel) SetWindow(w fyne.Window) {
	sp.layersPanel.SetWindow(w)
	sp.palettePanel.SetWindow(w)
	sp.importPanel.SetWindow(w)
}
