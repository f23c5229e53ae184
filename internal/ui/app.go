package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"BezierBoard/internal/export"
)

// Options configures the desktop window.
type Options struct {
	Title  string
	Width  float32
	Height float32
	Logger hclog.Logger
}

// RunApp shows board in a window and blocks until the window closes.
func RunApp(board *BoardWidget, opts Options) {
	myApp := app.New()
	myWindow := myApp.NewWindow(opts.Title)
	myWindow.Resize(fyne.NewSize(opts.Width, opts.Height))

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	toolbar := NewToolbar(board, func() {
		d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, myWindow)
				return
			}
			if w == nil {
				return
			}
			if err := ExportTo(w, board, opts.Width, opts.Height); err != nil {
				logger.Error("export failed", "uri", w.URI().String(), "error", err)
				dialog.ShowError(err, myWindow)
				return
			}
			logger.Info("exported board", "uri", w.URI().String())
			board.SetStatus("Exported " + w.URI().Name())
		}, myWindow)
		d.SetFileName("board.pdf")
		d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf", ".png", ".svg"}))
		d.Show()
	})

	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, board)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

// ExportTo writes the board to w in the format named by the URI extension
// and closes w.
func ExportTo(w fyne.URIWriteCloser, board *BoardWidget, width, height float32) (err error) {
	defer func() {
		if cerr := w.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "closing export")
		}
	}()
	f, err := export.FormatFromPath(w.URI().Name())
	if err != nil {
		return err
	}
	sc := board.Editor().Scene()
	return export.Export(w, f, sc, board.Style(), export.Page(sc, float64(width), float64(height)))
}
