package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/vector"

	"BezierBoard/internal/geom"
	"BezierBoard/internal/render"
)

// circleSides is the polygon resolution used for markers.
const circleSides = 24

// pngSurface rasterizes onto an RGBA image, one canvas unit per pixel.
// Lines are filled as thin quads since the rasterizer only fills.
type pngSurface struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	origin geom.Point
	pen    render.Pen

	stroke image.Image
	width  float64
	fill   image.Image
}

func newPNGSurface(width, height float64, origin geom.Point) *pngSurface {
	w, h := max(1, int(math.Ceil(width))), max(1, int(math.Ceil(height)))
	return &pngSurface{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		z:      vector.NewRasterizer(w, h),
		origin: origin,
		stroke: image.Black,
		width:  1,
		fill:   image.Black,
	}
}

func (s *pngSurface) at(p geom.Point) (float32, float32) {
	return float32(p.X - s.origin.X), float32(p.Y - s.origin.Y)
}

func (s *pngSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.White, image.Point{}, draw.Src)
}

func (s *pngSurface) SetStroke(c color.Color, width float64) {
	s.stroke = image.NewUniform(c)
	s.width = width
}

func (s *pngSurface) SetFill(c color.Color) {
	s.fill = image.NewUniform(c)
}

func (s *pngSurface) MoveTo(p geom.Point) {
	s.pen.MoveTo(p)
}

func (s *pngSurface) LineTo(p geom.Point) {
	from, ok := s.pen.LineTo(p)
	if !ok {
		return
	}
	d := p.Sub(from)
	l := d.Hypot()
	if l == 0 {
		return
	}
	half := max(s.width, 1) / 2
	n := geom.Vec{X: -d.Y / l * half, Y: d.X / l * half}
	neg := geom.Vec{X: -n.X, Y: -n.Y}

	s.begin()
	s.z.MoveTo(s.at(from.Add(n)))
	s.z.LineTo(s.at(p.Add(n)))
	s.z.LineTo(s.at(p.Add(neg)))
	s.z.LineTo(s.at(from.Add(neg)))
	s.z.ClosePath()
	s.z.Draw(s.img, s.img.Bounds(), s.stroke, image.Point{})
}

func (s *pngSurface) FillCircle(center geom.Point, radius float64) {
	s.begin()
	for i := range circleSides {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSides)
		x, y := s.at(center.Add(geom.Vec{X: cos * radius, Y: sin * radius}))
		if i == 0 {
			s.z.MoveTo(x, y)
		} else {
			s.z.LineTo(x, y)
		}
	}
	s.z.ClosePath()
	s.z.Draw(s.img, s.img.Bounds(), s.fill, image.Point{})
}

func (s *pngSurface) begin() {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
}

func (s *pngSurface) writeTo(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return errors.Wrap(err, "writing png")
	}
	return nil
}
