// Package render draws a board onto any 2D surface that can stroke straight
// lines and fill circles.
package render

import (
	"image/color"

	"BezierBoard/internal/geom"
)

// Surface is the drawing capability a frontend or exporter provides.
// LineTo draws from the current pen position with the current stroke and
// moves the pen.
type Surface interface {
	Clear()
	SetStroke(c color.Color, width float64)
	SetFill(c color.Color)
	MoveTo(p geom.Point)
	LineTo(p geom.Point)
	FillCircle(center geom.Point, radius float64)
}

// Pen tracks the current position for surfaces whose backend only draws
// whole line segments.
type Pen struct {
	pos   geom.Point
	valid bool
}

// MoveTo sets the pen position.
func (p *Pen) MoveTo(pt geom.Point) {
	p.pos = pt
	p.valid = true
}

// LineTo returns the segment from the pen position to pt and moves the pen.
// ok is false if the pen had no position yet.
func (p *Pen) LineTo(pt geom.Point) (from geom.Point, ok bool) {
	from, ok = p.pos, p.valid
	p.pos = pt
	p.valid = true
	return from, ok
}
