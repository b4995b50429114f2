package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"stitch-designer/internal/engine"
	"stitch-designer/internal/pattern"
)

// LayersPanel lists the pattern's layers top-first and exposes the layer
// operations. The selected row is the engine's active layer.
type LayersPanel struct {
	eng       *engine.Engine
	window    fyne.Window
	container fyne.CanvasObject

	list *widget.List
}

// NewLayersPanel creates the layers panel.
func NewLayersPanel(eng *engine.Engine) *LayersPanel {
	lp := &LayersPanel{eng: eng}

	lp.list = widget.NewList(
		func() int {
			if p := eng.Pattern(); p != nil {
				return len(p.Layers)
			}
			return 0
		},
		func() fyne.CanvasObject {
			visible := widget.NewCheck("", nil)
			locked := widget.NewCheck("", nil)
			name := widget.NewLabel("layer")
			return container.NewBorder(nil, nil,
				container.NewHBox(visible, locked), nil, name)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			l := lp.layerAt(id)
			if l == nil {
				return
			}
			row := obj.(*fyne.Container)
			checks := row.Objects[1].(*fyne.Container)
			visible := checks.Objects[0].(*widget.Check)
			locked := checks.Objects[1].(*widget.Check)
			name := row.Objects[0].(*widget.Label)

			visible.OnChanged = nil
			visible.SetChecked(l.Visible)
			visible.OnChanged = func(v bool) { eng.SetLayerVisible(l.ID, v) }

			locked.OnChanged = nil
			locked.SetChecked(l.Locked)
			locked.OnChanged = func(v bool) { eng.SetLayerLocked(l.ID, v) }

			label := l.Name
			if l.Metadata != nil {
				label += " [T]"
			}
			name.SetText(label)
		},
	)
	lp.list.OnSelected = func(id widget.ListItemID) {
		if l := lp.layerAt(id); l != nil {
			eng.SetActiveLayer(l.ID)
		}
	}

	addBtn := widget.NewButton("Add", func() { eng.AddLayer() })
	dupBtn := widget.NewButton("Duplicate", func() {
		eng.DuplicateLayer(eng.ActiveLayerID())
	})
	delBtn := widget.NewButton("Delete", func() {
		eng.RemoveLayer(eng.ActiveLayerID())
	})
	upBtn := widget.NewButton("Up", func() {
		eng.ReorderLayer(eng.ActiveLayerID(), +1)
	})
	downBtn := widget.NewButton("Down", func() {
		eng.ReorderLayer(eng.ActiveLayerID(), -1)
	})
	renameBtn := widget.NewButton("Rename", lp.onRename)
	mergeBtn := widget.NewButton("Merge Down", lp.onMergeDown)

	buttons := container.NewVBox(
		container.NewGridWithColumns(3, addBtn, dupBtn, delBtn),
		container.NewGridWithColumns(3, upBtn, downBtn, renameBtn),
		mergeBtn,
	)
	lp.container = container.NewBorder(nil, buttons, nil, nil, lp.list)

	refresh := func(interface{}) { lp.sync() }
	eng.On(engine.EventPatternReplaced, refresh)
	eng.On(engine.EventLayersChanged, refresh)
	return lp
}

// Container returns the panel container.
func (lp *LayersPanel) Container() fyne.CanvasObject {
	return lp.container
}

// SetWindow sets the parent window for dialogs.
func (lp *LayersPanel) SetWindow(w fyne.Window) {
	lp.window = w
}

// layerAt maps a list row to a layer. Row 0 is the topmost layer.
func (lp *LayersPanel) layerAt(row int) *pattern.Layer {
	p := lp.eng.Pattern()
	if p == nil {
		return nil
	}
	idx := len(p.Layers) - 1 - row
	if idx < 0 || idx >= len(p.Layers) {
		return nil
	}
	return p.Layers[idx]
}

// sync refreshes the list and re-selects the active layer's row.
func (lp *LayersPanel) sync() {
	lp.list.Refresh()
	p := lp.eng.Pattern()
	if p == nil {
		return
	}
	if idx := p.LayerIndex(lp.eng.ActiveLayerID()); idx >= 0 {
		lp.list.Select(len(p.Layers) - 1 - idx)
	}
}

func (lp *LayersPanel) onRename() {
	p := lp.eng.Pattern()
	if p == nil {
		return
	}
	l := p.LayerByID(lp.eng.ActiveLayerID())
	if l == nil {
		return
	}
	entry := widget.NewEntry()
	entry.SetText(l.Name)
	dialog.ShowForm("Rename Layer", "Rename", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", entry)},
		func(ok bool) {
			if ok && entry.Text != "" {
				lp.eng.RenameLayer(l.ID, entry.Text)
			}
		}, lp.window)
}

// onMergeDown merges the active layer into the layer beneath it.
func (lp *LayersPanel) onMergeDown() {
	p := lp.eng.Pattern()
	if p == nil {
		return
	}
	idx := p.LayerIndex(lp.eng.ActiveLayerID())
	if idx <= 0 {
		return
	}
	lp.eng.MergeLayers(p.Layers[idx].ID, p.Layers[idx-1].ID)
}
