package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"BezierBoard/internal/geom"
	"BezierBoard/internal/render"
)

// svgScale subdivides a canvas unit; svgo only takes integer coordinates.
const svgScale = 10

type svgSurface struct {
	canvas *svg.SVG
	origin geom.Point
	pen    render.Pen
	stroke string
	fill   string
}

func newSVGSurface(w io.Writer, width, height float64, origin geom.Point) *svgSurface {
	s := &svgSurface{
		canvas: svg.New(w),
		origin: origin,
		stroke: "stroke:#000000;stroke-width:10",
		fill:   "fill:#000000",
	}
	wi, hi := int(math.Ceil(width)), int(math.Ceil(height))
	s.canvas.Startview(wi, hi, 0, 0, wi*svgScale, hi*svgScale)
	return s
}

func (s *svgSurface) at(p geom.Point) (int, int) {
	return scaled(p.X - s.origin.X), scaled(p.Y - s.origin.Y)
}

func scaled(v float64) int {
	return int(math.Round(v * svgScale))
}

func (s *svgSurface) Clear() {}

func (s *svgSurface) SetStroke(c color.Color, width float64) {
	s.stroke = fmt.Sprintf("stroke:%s;stroke-width:%g;stroke-linecap:round", render.Hex(c), width*svgScale)
}

func (s *svgSurface) SetFill(c color.Color) {
	s.fill = "fill:" + render.Hex(c)
}

func (s *svgSurface) MoveTo(p geom.Point) {
	s.pen.MoveTo(p)
}

func (s *svgSurface) LineTo(p geom.Point) {
	from, ok := s.pen.LineTo(p)
	if !ok {
		return
	}
	x1, y1 := s.at(from)
	x2, y2 := s.at(p)
	s.canvas.Line(x1, y1, x2, y2, s.stroke)
}

func (s *svgSurface) FillCircle(center geom.Point, radius float64) {
	x, y := s.at(center)
	s.canvas.Circle(x, y, scaled(radius), s.fill)
}

// end closes the document. svgo reports no write errors.
func (s *svgSurface) end() error {
	s.canvas.End()
	return nil
}
