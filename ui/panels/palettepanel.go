package panels

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"stitch-designer/internal/engine"
	"stitch-designer/internal/pattern"
	"stitch-designer/internal/symbols"
	"stitch-designer/internal/threads"
	"stitch-designer/pkg/colorutil"
	"stitch-designer/ui/canvas"
)

// PalettePanel lists the pattern's colors and drives the active drawing
// color.
type PalettePanel struct {
	eng       *engine.Engine
	cvs       *canvas.PatternCanvas
	window    fyne.Window
	container fyne.CanvasObject

	list *widget.List
}

// NewPalettePanel creates the palette panel.
func NewPalettePanel(eng *engine.Engine, cvs *canvas.PatternCanvas) *PalettePanel {
	pp := &PalettePanel{eng: eng, cvs: cvs}

	pp.list = widget.NewList(
		func() int {
			if p := eng.Pattern(); p != nil {
				return len(p.Palette)
			}
			return 0
		},
		func() fyne.CanvasObject {
			swatch := fynecanvas.NewRectangle(color.Black)
			swatch.SetMinSize(fyne.NewSize(20, 20))
			return container.NewBorder(nil, nil, swatch, nil, widget.NewLabel("color"))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			c := pp.colorAt(id)
			if c == nil {
				return
			}
			row := obj.(*fyne.Container)
			swatch := row.Objects[1].(*fynecanvas.Rectangle)
			label := row.Objects[0].(*widget.Label)

			swatch.FillColor = colorutil.ToRGBA(c.RGB)
			swatch.Refresh()

			text := c.Name
			if c.Symbol != "" {
				text = c.Symbol + "  " + text
			}
			if c.ThreadCode != "" {
				text += fmt.Sprintf(" (%s %s)", c.ThreadBrand, c.ThreadCode)
			}
			label.SetText(text)
		},
	)
	pp.list.OnSelected = func(id widget.ListItemID) {
		if c := pp.colorAt(id); c != nil {
			cvs.SetActiveColor(c.ID)
		}
	}

	addBtn := widget.NewButton("Add Color", pp.onAddColor)
	matchBtn := widget.NewButton("Match Thread", pp.onMatchThread)
	removeBtn := widget.NewButton("Remove", pp.onRemove)

	buttons := container.NewVBox(
		addBtn,
		container.NewGridWithColumns(2, matchBtn, removeBtn),
	)
	pp.container = container.NewBorder(nil, buttons, nil, nil, pp.list)

	refresh := func(interface{}) { pp.list.Refresh() }
	eng.On(engine.EventPatternReplaced, refresh)
	eng.On(engine.EventPaletteChanged, refresh)
	return pp
}

// Container returns the panel container.
func (pp *PalettePanel) Container() fyne.CanvasObject {
	return pp.container
}

// SetWindow sets the parent window for dialogs.
func (pp *PalettePanel) SetWindow(w fyne.Window) {
	pp.window = w
}

func (pp *PalettePanel) colorAt(row int) *pattern.Color {
	p := pp.eng.Pattern()
	if p == nil || row < 0 || row >= len(p.Palette) {
		return nil
	}
	return &p.Palette[row]
}

// selectedColor returns the color backing the active drawing color.
func (pp *PalettePanel) selectedColor() *pattern.Color {
	p := pp.eng.Pattern()
	if p == nil {
		return nil
	}
	return p.ColorByID(pp.cvs.ActiveColor())
}

func (pp *PalettePanel) onAddColor() {
	picker := dialog.NewColorPicker("Add Color", "Pick a palette color",
		func(c color.Color) {
			rgba := color.RGBAModel.Convert(c).(color.RGBA)
			p := pp.eng.Pattern()
			if p == nil {
				return
			}
			col := pattern.Color{
				Name: fmt.Sprintf("Color %d", len(p.Palette)+1),
				RGB:  [3]uint8{rgba.R, rgba.G, rgba.B},
			}
			// Pick a symbol unique against the existing palette.
			scratch := append(append([]pattern.Color{}, p.Palette...), col)
			symbols.Assign(scratch)
			col.Symbol = scratch[len(scratch)-1].Symbol
			id := pp.eng.AddColor(col)
			pp.cvs.SetActiveColor(id)
		}, pp.window)
	picker.Advanced = true
	picker.Show()
}

// onMatchThread snaps the selected color to the nearest DMC thread.
func (pp *PalettePanel) onMatchThread() {
	c := pp.selectedColor()
	if c == nil {
		return
	}
	match, ok := threads.FindClosest(c.RGB, threads.ByBrand(threads.BrandDMC), threads.DefaultAlgorithm)
	if !ok {
		return
	}
	updated := *c
	updated.Name = match.Thread.Name
	updated.RGB = match.Thread.RGB
	updated.ThreadBrand = string(match.Thread.Brand)
	updated.ThreadCode = match.Thread.Code
	pp.eng.UpdateColor(updated)
}

func (pp *PalettePanel) onRemove() {
	if c := pp.selectedColor(); c != nil {
		pp.eng.RemoveColor(c.ID)
	}
}
