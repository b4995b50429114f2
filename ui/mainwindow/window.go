// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"stitch-designer/internal/engine"
	"stitch-designer/internal/pattern"
	"stitch-designer/internal/project"
	"stitch-designer/internal/render"
	"stitch-designer/internal/textrender"
	"stitch-designer/internal/version"
	"stitch-designer/ui/canvas"
	"stitch-designer/ui/panels"
	"stitch-designer/ui/prefs"
)

const (
	appTitle = "Stitch Designer"

	prefKeyLastDir  = "lastDirectory"
	prefKeyCellSize = "cellSize"
	prefKeyShowGrid = "showGrid"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	eng   *engine.Engine
	prefs *prefs.Prefs

	canvas    *canvas.PatternCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	// Document file state
	docPath    string
	docCreated string

	// Menu items that need state tracking
	gridItem     *fyne.MenuItem
	progressItem *fyne.MenuItem
	filledItem   *fyne.MenuItem
}

// New creates the main window.
func New(fyneApp fyne.App, eng *engine.Engine, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		eng:    eng,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restorePrefs()

	win.SetCloseIntercept(func() {
		mw.persistPrefs()
		fyneApp.Quit()
	})

	win.Resize(fyne.NewSize(1200, 800))
	return mw
}

// restorePrefs applies persisted view settings.
func (mw *MainWindow) restorePrefs() {
	mw.canvas.SetCellSize(mw.prefs.Int(prefKeyCellSize, mw.canvas.CellSize()))
	show := mw.prefs.Bool(prefKeyShowGrid, true)
	mw.canvas.SetShowGrid(show)
	if show {
		mw.gridItem.Label = "✓ Grid"
	} else {
		mw.gridItem.Label = "  Grid"
	}
}

func (mw *MainWindow) persistPrefs() {
	mw.prefs.SetInt(prefKeyCellSize, mw.canvas.CellSize())
	mw.prefs.SetBool(prefKeyShowGrid, mw.canvas.ShowGrid())
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Could not save preferences: %v", err)
	}
}

// setupUI creates the main layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewPatternCanvas(mw.eng)
	mw.sidePanel = panels.NewSidePanel(mw.eng, mw.canvas)
	mw.sidePanel.SetWindow(mw.Window)

	mw.statusBar = widget.NewLabel("Ready")
	mw.canvas.OnCellHover(func(x, y int) {
		mw.updateStatus(fmt.Sprintf("Cell %d, %d", x, y))
	})

	toolbar := mw.createToolbar()

	canvasArea := container.NewBorder(toolbar, nil, nil, nil, mw.canvas.Container())

	split := container.NewHSplit(mw.sidePanel.Container(), canvasArea)
	split.SetOffset(0.25)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil, nil,
		split,
	)
	mw.SetContent(content)
}

// createToolbar creates the tool and zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	toolBtn := func(label string, t canvas.Tool) *widget.Button {
		return widget.NewButton(label, func() {
			mw.canvas.SetTool(t)
			mw.updateStatus("Tool: " + label)
		})
	}

	return container.NewHBox(
		toolBtn("Paint", canvas.ToolPaint),
		toolBtn("Erase", canvas.ToolErase),
		toolBtn("Fill", canvas.ToolFill),
		toolBtn("Line", canvas.ToolLine),
		toolBtn("Rect", canvas.ToolRect),
		toolBtn("Ellipse", canvas.ToolEllipse),
		toolBtn("Select", canvas.ToolSelect),
		widget.NewSeparator(),
		widget.NewButton("-", mw.canvas.ZoomOut),
		widget.NewButton("+", mw.canvas.ZoomIn),
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Pattern...", mw.onNewPattern),
		fyne.NewMenuItem("Open...", mw.onOpen),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save", mw.onSave),
		fyne.NewMenuItem("Save As...", mw.onSaveAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG...", mw.onExportPNG),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", mw.eng.Undo),
		fyne.NewMenuItem("Redo", mw.eng.Redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Add Text...", mw.onAddText),
	)

	mw.gridItem = fyne.NewMenuItem("✓ Grid", mw.onToggleGrid)
	mw.progressItem = fyne.NewMenuItem("  Progress Mode", mw.onToggleProgress)
	mw.filledItem = fyne.NewMenuItem("✓ Filled Shapes", mw.onToggleFilled)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.canvas.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.canvas.ZoomOut),
		fyne.NewMenuItemSeparator(),
		mw.gridItem,
		mw.progressItem,
		mw.filledItem,
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for engine events.
func (mw *MainWindow) setupEventHandlers() {
	mw.eng.On(engine.EventPatternReplaced, func(data interface{}) {
		if p, ok := data.(*pattern.Pattern); ok && p != nil {
			mw.refreshTitle()
		}
	})
	mw.eng.On(engine.EventModified, func(interface{}) {
		mw.refreshTitle()
	})
}

func (mw *MainWindow) refreshTitle() {
	title := appTitle
	if p := mw.eng.Pattern(); p != nil && p.Name != "" {
		title += " - " + p.Name
	}
	if mw.eng.Dirty() {
		title += " *"
	}
	mw.SetTitle(title)
}

func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefKeyLastDir, filepath.Dir(filePath))
	if err := mw.prefs.Save(); err != nil {
		mw.updateStatus("Could not save preferences: " + err.Error())
	}
}

// Menu action handlers

func (mw *MainWindow) onNewPattern() {
	nameEntry := widget.NewEntry()
	nameEntry.SetText("Untitled")
	widthEntry := widget.NewEntry()
	widthEntry.SetText("100")
	heightEntry := widget.NewEntry()
	heightEntry.SetText("100")
	meshEntry := widget.NewEntry()
	meshEntry.SetText("14")

	dialog.ShowForm("New Pattern", "Create", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width (stitches)", widthEntry),
			widget.NewFormItem("Height (stitches)", heightEntry),
			widget.NewFormItem("Mesh count", meshEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, err1 := strconv.Atoi(widthEntry.Text)
			h, err2 := strconv.Atoi(heightEntry.Text)
			mesh, err3 := strconv.Atoi(meshEntry.Text)
			if err1 != nil || err2 != nil || err3 != nil || w < 1 || h < 1 {
				dialog.ShowError(fmt.Errorf("invalid pattern dimensions"), mw.Window)
				return
			}
			mw.docPath = ""
			mw.docCreated = ""
			mw.eng.NewPattern(nameEntry.Text, w, h, mesh)
		}, mw.Window)
}

func (mw *MainWindow) onOpen() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)

		p, meta, err := project.Load(path)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.docPath = path
		mw.docCreated = meta.CreatedAt
		mw.eng.SetPattern(p)
		mw.updateStatus("Opened " + filepath.Base(path))
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{project.Extension}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSave() {
	if mw.docPath == "" {
		mw.onSaveAs()
		return
	}
	mw.saveTo(mw.docPath)
}

func (mw *MainWindow) onSaveAs() {
	if mw.eng.Pattern() == nil {
		return
	}
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != project.Extension {
			path += project.Extension
		}
		mw.saveLastDir(path)
		mw.saveTo(path)
	}, mw.Window)
	fd.SetFileName("pattern" + project.Extension)
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) saveTo(path string) {
	p := mw.eng.Pattern()
	if p == nil {
		return
	}
	if err := project.Save(path, p, mw.docCreated); err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.docPath = path
	mw.eng.MarkSaved()
	mw.updateStatus("Saved " + filepath.Base(path))
}

func (mw *MainWindow) onExportPNG() {
	p := mw.eng.Pattern()
	if p == nil {
		return
	}
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != ".png" {
			path += ".png"
		}
		opts := render.Options{
			CellSize: 10,
			Grid:     mw.canvas.ShowGrid(),
		}
		if err := render.ExportPNG(path, p, opts); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Exported " + filepath.Base(path))
	}, mw.Window)
	fd.SetFileName(p.Name + ".png")
	fd.Show()
}

// onAddText rasterizes text into a floating selection the user can
// position before committing.
func (mw *MainWindow) onAddText() {
	if mw.eng.Pattern() == nil {
		return
	}
	colorID := mw.canvas.ActiveColor()
	if colorID == "" {
		dialog.ShowError(fmt.Errorf("select a palette color first"), mw.Window)
		return
	}

	textEntry := widget.NewEntry()
	heightEntry := widget.NewEntry()
	heightEntry.SetText("10")
	boldCheck := widget.NewCheck("Bold", nil)
	italicCheck := widget.NewCheck("Italic", nil)

	dialog.ShowForm("Add Text", "Place", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Text", textEntry),
			widget.NewFormItem("Height (stitches)", heightEntry),
			widget.NewFormItem("", boldCheck),
			widget.NewFormItem("", italicCheck),
		},
		func(ok bool) {
			if !ok || textEntry.Text == "" {
				return
			}
			height, err := strconv.Atoi(heightEntry.Text)
			if err != nil || height < 1 {
				height = 10
			}
			weight := 400
			if boldCheck.Checked {
				weight = 700
			}
			meta := pattern.TextMetadata{
				Text:       textEntry.Text,
				FontFamily: "sans-serif",
				FontWeight: weight,
				Italic:     italicCheck.Checked,
				ColorID:    colorID,
			}
			stitches, err := textrender.New().Regenerate(meta, height)
			if err != nil {
				dialog.ShowError(err, mw.Window)
				return
			}
			mw.eng.CreateFloatingSelection(stitches)
			mw.canvas.SetTool(canvas.ToolSelect)
			mw.updateStatus("Drag the text into place, then click away to commit")
		}, mw.Window)
}

func (mw *MainWindow) onToggleGrid() {
	show := !mw.canvas.ShowGrid()
	mw.canvas.SetShowGrid(show)
	if show {
		mw.gridItem.Label = "✓ Grid"
	} else {
		mw.gridItem.Label = "  Grid"
	}
}

func (mw *MainWindow) onToggleProgress() {
	on := !mw.canvas.ProgressMode()
	mw.canvas.SetProgressMode(on)
	if on {
		mw.progressItem.Label = "✓ Progress Mode"
	} else {
		mw.progressItem.Label = "  Progress Mode"
	}
}

func (mw *MainWindow) onToggleFilled() {
	// Track state in the label since the canvas setting is write-only.
	filled := !strings.HasPrefix(mw.filledItem.Label, "✓")
	mw.canvas.SetFilledShapes(filled)
	if filled {
		mw.filledItem.Label = "✓ Filled Shapes"
	} else {
		mw.filledItem.Label = "  Filled Shapes"
	}
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Stitch Designer",
		fmt.Sprintf("Stitch Designer v%s\n\n"+
			"A needlepoint and cross-stitch pattern editor.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
