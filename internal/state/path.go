package state

import (
	"iter"

	"github.com/google/uuid"

	"BezierBoard/internal/geom"
)

// SegmentSize is the number of control points of one cubic segment.
const SegmentSize = 4

// Path is one convolution: consecutive cubic segments stored as a flat list
// of control points. Segment k occupies indices [4k, 4k+3]. The start of
// segment k and the end of segment k-1 are separate values; continuity is
// enforced by copying, never by sharing.
type Path struct {
	ID     string       `json:"id"`
	Points []geom.Point `json:"points"`
}

// NewPath returns an empty path with a fresh ID.
func NewPath() *Path {
	return &Path{ID: uuid.NewString()}
}

func (p *Path) Len() int {
	return len(p.Points)
}

// Append adds a control point at the end.
func (p *Path) Append(pt geom.Point) {
	p.Points = append(p.Points, pt)
}

// SegmentCount returns the number of complete segments.
func (p *Path) SegmentCount() int {
	return len(p.Points) / SegmentSize
}

func (p *Path) PointAt(i int) geom.Point {
	return p.Points[i]
}

// SetPoint moves the point at index i in place. Out-of-range indices are
// ignored.
func (p *Path) SetPoint(i int, pt geom.Point) bool {
	if i < 0 || i >= len(p.Points) {
		return false
	}
	p.Points[i] = pt
	return true
}

// Segment returns segment k. It panics if k >= SegmentCount().
func (p *Path) Segment(k int) geom.Cubic {
	s := p.Points[k*SegmentSize : k*SegmentSize+SegmentSize]
	return geom.Cubic{P0: s[0], P1: s[1], P2: s[2], P3: s[3]}
}

// Segments iterates over the complete segments.
func (p *Path) Segments() iter.Seq2[int, geom.Cubic] {
	return func(yield func(int, geom.Cubic) bool) {
		for k := range p.SegmentCount() {
			if !yield(k, p.Segment(k)) {
				return
			}
		}
	}
}

// Trailing returns the points after the last complete segment.
func (p *Path) Trailing() []geom.Point {
	return p.Points[p.SegmentCount()*SegmentSize:]
}

// Clone returns a deep copy that keeps the ID.
func (p *Path) Clone() *Path {
	return &Path{
		ID:     p.ID,
		Points: append([]geom.Point(nil), p.Points...),
	}
}
