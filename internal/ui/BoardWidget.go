package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"BezierBoard/internal/render"
	"BezierBoard/internal/state"
)

// BoardWidget is the desktop canvas. It forwards pointer input to its
// Editor and redraws whenever the editor reports a change. fyne delivers
// all events on one goroutine, which is what the Editor requires.
type BoardWidget struct {
	widget.BaseWidget

	editor    *state.Editor
	style     render.Style
	statusBar *widget.Label

	// OnModeChange is called after the drawing mode toggles.
	OnModeChange func(state.Mode)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)

func NewBoardWidget(editor *state.Editor, style render.Style) *BoardWidget {
	b := &BoardWidget{
		editor:    editor,
		style:     style,
		statusBar: widget.NewLabel(""),
	}
	editor.OnChange = b.changed
	b.ExtendBaseWidget(b)
	b.updateStatus()
	return b
}

func (b *BoardWidget) Editor() *state.Editor {
	return b.editor
}

func (b *BoardWidget) Style() render.Style {
	return b.style
}

// SetStyle swaps the look and redraws. Call it on the fyne goroutine.
func (b *BoardWidget) SetStyle(st render.Style) {
	b.style = st
	b.Refresh()
}

// StatusBar returns the label describing the board state.
func (b *BoardWidget) StatusBar() *widget.Label {
	return b.statusBar
}

// SetStatus replaces the status text. Safe from any goroutine.
func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

func (b *BoardWidget) changed() {
	b.updateStatus()
	b.Refresh()
}

func (b *BoardWidget) updateStatus() {
	r := b.editor.Registry()
	text := fmt.Sprintf("Mode: %s | Convolutions: %d", b.editor.Mode(), len(r.Paths()))
	if i := r.SelectedIndex(); i != state.NoSelection {
		p := r.Paths()[i]
		text += fmt.Sprintf(" | Selected: #%d (%d points, %d segments)", i+1, p.Len(), p.SegmentCount())
	}
	if n := r.Current().Len(); n > 0 {
		text += fmt.Sprintf(" | Drawing: %d points", n)
	}
	b.statusBar.SetText(text)
}

func (b *BoardWidget) ToggleDrawingMode() {
	b.editor.ToggleDrawingMode()
	if b.OnModeChange != nil {
		b.OnModeChange(b.editor.Mode())
	}
}

func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	b.editor.HandleClick(point(e.Position))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.editor.HandlePointerDown(point(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.editor.HandlePointerUp()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.editor.HandlePointerMove(point(e.Position))
}

func (b *BoardWidget) DragEnd() {
	b.editor.HandlePointerUp()
}

// Cursor shows a crosshair while drawing.
func (b *BoardWidget) Cursor() desktop.Cursor {
	if b.editor.Mode() == state.Drawing {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b, surface: newCanvasSurface()}
	r.draw()
	return r
}

type boardWidgetRenderer struct {
	board   *BoardWidget
	surface *canvasSurface
}

func (r *boardWidgetRenderer) draw() {
	r.board.editor.Render(r.surface, r.board.style)
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.surface.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.draw()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.surface.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
