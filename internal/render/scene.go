package render

import (
	"image/color"

	"BezierBoard/internal/geom"
)

// Shape is one path ready for drawing: its complete segments and the
// control points left over after the last one.
type Shape struct {
	Segments []geom.Cubic
	Trailing []geom.Point
}

// Len returns the number of control points.
func (sh Shape) Len() int {
	return 4*len(sh.Segments) + len(sh.Trailing)
}

// Points returns the control points in storage order.
func (sh Shape) Points() []geom.Point {
	pts := make([]geom.Point, 0, sh.Len())
	for _, c := range sh.Segments {
		pts = append(pts, c.P0, c.P1, c.P2, c.P3)
	}
	return append(pts, sh.Trailing...)
}

// Scene is what gets drawn: the committed paths, the selected index (-1 for
// none) and the in-progress path.
type Scene struct {
	Paths    []Shape
	Selected int
	Current  Shape
}

// Draw clears s and renders the scene. Committed paths come first, the
// in-progress path last.
func Draw(s Surface, st Style, sc Scene) {
	s.Clear()
	for i, sh := range sc.Paths {
		c := st.CurveColor
		if i == sc.Selected {
			c = st.SelectedColor
		}
		drawShape(s, st, sh, c)
	}
	if sc.Current.Len() > 0 {
		drawShape(s, st, sc.Current, st.CurveColor)
	}
}

func drawShape(s Surface, st Style, sh Shape, curve color.NRGBA) {
	s.SetFill(st.MarkerColor)
	for _, p := range sh.Points() {
		s.FillCircle(p, st.MarkerRadius)
	}

	// control polygon, one stroke per segment
	if sh.Len() > 1 {
		s.SetStroke(st.PolygonColor, st.PolygonWidth)
		for _, c := range sh.Segments {
			s.MoveTo(c.P0)
			s.LineTo(c.P1)
			s.LineTo(c.P2)
			s.LineTo(c.P3)
		}
		if len(sh.Trailing) > 0 {
			s.MoveTo(sh.Trailing[0])
			for _, p := range sh.Trailing[1:] {
				s.LineTo(p)
			}
		}
	}

	// trailing points get markers and polygon only
	s.SetStroke(curve, st.CurveWidth)
	for _, c := range sh.Segments {
		s.MoveTo(c.P0)
		for pt := range c.Samples(st.SampleStep) {
			s.LineTo(pt)
		}
	}
}
