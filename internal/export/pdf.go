package export

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"BezierBoard/internal/geom"
	"BezierBoard/internal/render"
)

// pdfSurface draws onto a single PDF page measured in points, one canvas
// unit per point.
type pdfSurface struct {
	pdf    *gofpdf.Fpdf
	origin geom.Point
	pen    render.Pen
}

func newPDFSurface(width, height float64, origin geom.Point) *pdfSurface {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	return &pdfSurface{pdf: p, origin: origin}
}

func rgb(c color.Color) (int, int, int) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B)
}

func (s *pdfSurface) at(p geom.Point) (float64, float64) {
	return p.X - s.origin.X, p.Y - s.origin.Y
}

// Clear is a no-op: the page starts out blank.
func (s *pdfSurface) Clear() {}

func (s *pdfSurface) SetStroke(c color.Color, width float64) {
	s.pdf.SetDrawColor(rgb(c))
	s.pdf.SetLineWidth(width)
}

func (s *pdfSurface) SetFill(c color.Color) {
	s.pdf.SetFillColor(rgb(c))
}

func (s *pdfSurface) MoveTo(p geom.Point) {
	s.pen.MoveTo(p)
}

func (s *pdfSurface) LineTo(p geom.Point) {
	from, ok := s.pen.LineTo(p)
	if !ok {
		return
	}
	x1, y1 := s.at(from)
	x2, y2 := s.at(p)
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *pdfSurface) FillCircle(center geom.Point, radius float64) {
	x, y := s.at(center)
	s.pdf.Circle(x, y, radius, "F")
}

func (s *pdfSurface) writeTo(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return errors.Wrap(err, "writing pdf")
	}
	return nil
}
