package render

import (
	"image/color"

	"BezierBoard/internal/geom"
)

// Op kinds recorded by a Recorder.
const (
	OpClear  = "clear"
	OpStroke = "stroke"
	OpFill   = "fill"
	OpMove   = "move"
	OpLine   = "line"
	OpCircle = "circle"
)

// Op is one recorded drawing call. Unused fields are zero.
type Op struct {
	Op     string  `json:"op"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Radius float64 `json:"r,omitempty"`
	Color  string  `json:"color,omitempty"`
	Width  float64 `json:"width,omitempty"`
}

// Recorder is a Surface that stores the calls made on it.
type Recorder struct {
	Ops []Op
}

var _ Surface = (*Recorder)(nil)

// Clear drops everything recorded so far and records the clear itself.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Op: OpClear})
}

func (r *Recorder) SetStroke(c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Op: OpStroke, Color: Hex(c), Width: width})
}

func (r *Recorder) SetFill(c color.Color) {
	r.Ops = append(r.Ops, Op{Op: OpFill, Color: Hex(c)})
}

func (r *Recorder) MoveTo(p geom.Point) {
	r.Ops = append(r.Ops, Op{Op: OpMove, X: p.X, Y: p.Y})
}

func (r *Recorder) LineTo(p geom.Point) {
	r.Ops = append(r.Ops, Op{Op: OpLine, X: p.X, Y: p.Y})
}

func (r *Recorder) FillCircle(center geom.Point, radius float64) {
	r.Ops = append(r.Ops, Op{Op: OpCircle, X: center.X, Y: center.Y, Radius: radius})
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Op == kind {
			n++
		}
	}
	return n
}
