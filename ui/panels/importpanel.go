package panels

import (
	"path/filepath"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"stitch-designer/internal/engine"
	"stitch-designer/internal/importer"
	"stitch-designer/internal/threads"
)

// ImportPanel converts image files into stitch layers.
type ImportPanel struct {
	eng       *engine.Engine
	window    fyne.Window
	container fyne.CanvasObject

	widthEntry     *widget.Entry
	heightEntry    *widget.Entry
	maxColorsEntry *widget.Entry
	ditherSelect   *widget.Select
	removeBGCheck  *widget.Check
	matchCheck     *widget.Check
	brandSelect    *widget.Select
	algSelect      *widget.Select
	statusLabel    *widget.Label
}

// NewImportPanel creates the import panel.
func NewImportPanel(eng *engine.Engine) *ImportPanel {
	ip := &ImportPanel{eng: eng}

	ip.widthEntry = widget.NewEntry()
	ip.widthEntry.SetText("80")
	ip.heightEntry = widget.NewEntry()
	ip.heightEntry.SetText("80")
	ip.maxColorsEntry = widget.NewEntry()
	ip.maxColorsEntry.SetText("16")

	ip.ditherSelect = widget.NewSelect([]string{
		string(importer.DitherNone),
		string(importer.DitherFloydSteinberg),
		string(importer.DitherOrdered),
		string(importer.DitherAtkinson),
	}, nil)
	ip.ditherSelect.SetSelected(string(importer.DitherFloydSteinberg))

	ip.removeBGCheck = widget.NewCheck("Remove white background", nil)

	ip.matchCheck = widget.NewCheck("Match thread colors", nil)
	ip.matchCheck.SetChecked(true)

	ip.brandSelect = widget.NewSelect([]string{
		string(threads.BrandDMC),
		string(threads.BrandAnchor),
		string(threads.BrandKreinik),
	}, nil)
	ip.brandSelect.SetSelected(string(threads.BrandDMC))

	ip.algSelect = widget.NewSelect([]string{
		string(threads.AlgCIEDE2000),
		string(threads.AlgCIE94),
		string(threads.AlgCIE76),
		string(threads.AlgWeighted),
		string(threads.AlgEuclidean),
	}, nil)
	ip.algSelect.SetSelected(string(threads.AlgCIEDE2000))

	ip.statusLabel = widget.NewLabel("")
	ip.statusLabel.Wrapping = fyne.TextWrapWord

	importBtn := widget.NewButton("Import Image...", ip.onImport)

	form := widget.NewForm(
		widget.NewFormItem("Width (stitches)", ip.widthEntry),
		widget.NewFormItem("Height (stitches)", ip.heightEntry),
		widget.NewFormItem("Max colors", ip.maxColorsEntry),
		widget.NewFormItem("Dithering", ip.ditherSelect),
	)

	ip.container = container.NewVBox(
		form,
		ip.removeBGCheck,
		ip.matchCheck,
		widget.NewForm(
			widget.NewFormItem("Thread brand", ip.brandSelect),
			widget.NewFormItem("Matching", ip.algSelect),
		),
		importBtn,
		ip.statusLabel,
	)
	return ip
}

// Container returns the panel container.
func (ip *ImportPanel) Container() fyne.CanvasObject {
	return ip.container
}

// SetWindow sets the parent window for dialogs.
func (ip *ImportPanel) SetWindow(w fyne.Window) {
	ip.window = w
}

func (ip *ImportPanel) options() importer.Options {
	opts := importer.DefaultOptions()
	opts.TargetWidth = intOr(ip.widthEntry.Text, 80)
	opts.TargetHeight = intOr(ip.heightEntry.Text, 80)
	opts.MaxColors = intOr(ip.maxColorsEntry.Text, 16)
	opts.Dither = importer.DitherMode(ip.ditherSelect.Selected)
	opts.RemoveBackground = ip.removeBGCheck.Checked
	opts.MatchThreads = ip.matchCheck.Checked
	opts.ThreadBrand = threads.Brand(ip.brandSelect.Selected)
	opts.Algorithm = threads.Algorithm(ip.algSelect.Selected)
	return opts
}

func (ip *ImportPanel) onImport() {
	if ip.eng.Pattern() == nil {
		ip.statusLabel.SetText("Create or open a pattern first")
		return
	}
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()

		payload, err := importer.ImportFile(path, filepath.Base(path), ip.options())
		if err != nil {
			dialog.ShowError(err, ip.window)
			return
		}
		if l := ip.eng.ImportAsLayer(payload); l != nil {
			ip.statusLabel.SetText("Imported as layer: " + l.Name)
		}
	}, ip.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif", ".webp",
	}))
	fd.Show()
}

func intOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
