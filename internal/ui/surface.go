package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"BezierBoard/internal/geom"
	"BezierBoard/internal/render"
)

// canvasSurface turns drawing calls into fyne canvas objects. The object
// list is rebuilt on every Clear.
type canvasSurface struct {
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
	pen        render.Pen

	stroke color.Color
	width  float32
	fill   color.Color
}

var _ render.Surface = (*canvasSurface)(nil)

func newCanvasSurface() *canvasSurface {
	return &canvasSurface{
		background: canvas.NewRectangle(color.White),
		stroke:     color.Black,
		width:      1,
		fill:       color.Black,
	}
}

func pos(p geom.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func point(p fyne.Position) geom.Point {
	return geom.Pt(float64(p.X), float64(p.Y))
}

func (s *canvasSurface) Clear() {
	s.objects = append(s.objects[:0:0], s.background)
}

func (s *canvasSurface) SetStroke(c color.Color, width float64) {
	s.stroke = c
	s.width = float32(width)
}

func (s *canvasSurface) SetFill(c color.Color) {
	s.fill = c
}

func (s *canvasSurface) MoveTo(p geom.Point) {
	s.pen.MoveTo(p)
}

func (s *canvasSurface) LineTo(p geom.Point) {
	from, ok := s.pen.LineTo(p)
	if !ok {
		return
	}
	line := canvas.NewLine(s.stroke)
	line.StrokeWidth = s.width
	line.Position1 = pos(from)
	line.Position2 = pos(p)
	s.objects = append(s.objects, line)
}

func (s *canvasSurface) FillCircle(center geom.Point, radius float64) {
	c := canvas.NewCircle(s.fill)
	r := geom.Vec{X: radius, Y: radius}
	c.Position1 = pos(center.Add(geom.Vec{X: -r.X, Y: -r.Y}))
	c.Position2 = pos(center.Add(r))
	s.objects = append(s.objects, c)
}
