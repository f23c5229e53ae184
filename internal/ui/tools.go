package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"BezierBoard/internal/state"
)

// curvePalette offers alternative curve colors next to the configured one.
var curvePalette = []color.NRGBA{
	{R: 0x20, G: 0x56, B: 0xe8, A: 0xff},
	{A: 0xff},
	{R: 0x1b, G: 0x9e, B: 0x4b, A: 0xff},
	{R: 0xe8, G: 0x8a, B: 0x20, A: 0xff},
}

type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the button row driving board. exportFn is called by the
// export button; a nil exportFn hides it.
func NewToolbar(board *BoardWidget, exportFn func()) fyne.CanvasObject {
	e := board.Editor()

	drawing := widget.NewButtonWithIcon("Drawing mode", theme.DocumentCreateIcon(), board.ToggleDrawingMode)
	board.OnModeChange = func(m state.Mode) {
		if m == state.Drawing {
			drawing.Importance = widget.HighImportance
		} else {
			drawing.Importance = widget.MediumImportance
		}
		drawing.Refresh()
	}

	actions := container.NewHBox(
		drawing,
		widget.NewButtonWithIcon("New convolution", theme.ContentAddIcon(), e.StartNewPath),
		widget.NewButtonWithIcon("Delete convolution", theme.DeleteIcon(), e.DeleteSelectedPath),
		widget.NewButton("Ensure continuity (C0)", e.EnforceC0OnSelected),
		widget.NewButton("Ensure smoothness (C1)", e.EnforceC1OnSelected),
		widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), e.ClearAll),
	)

	onColorTapped := func(c color.NRGBA) {
		st := board.Style()
		st.CurveColor = c
		board.SetStyle(st)
	}
	colorBox := container.NewHBox()
	for _, c := range curvePalette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}

	widthSlider := widget.NewSlider(1, 8)
	widthSlider.Step = 0.5
	widthSlider.SetValue(board.Style().CurveWidth)
	widthSlider.OnChanged = func(v float64) {
		st := board.Style()
		st.CurveWidth = v
		board.SetStyle(st)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), widthSlider)

	row := container.NewHBox(
		actions,
		widget.NewSeparator(),
		widget.NewLabel("Curve:"),
		colorBox,
		sliderContainer,
		layout.NewSpacer(),
	)
	if exportFn != nil {
		row.Add(widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), exportFn))
	}
	return row
}
