// Package geom holds the 2D primitives used by the board: points, vectors,
// cubic Bézier evaluation and tessellation.
package geom

import (
	"fmt"
	"math"
)

// Point is a position in canvas space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec is the difference of two points.
type Vec struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Sub computes p-o.
func (p Point) Sub(o Point) Vec {
	return Vec{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add translates p by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Lerp linearly interpolates between p and o. The endpoints are returned
// exactly for t=0 and t=1.
func (p Point) Lerp(o Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*p.X + t*o.X,
		Y: mt*p.Y + t*o.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

func (v Vec) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Hypot returns the magnitude of the vector.
func (v Vec) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}
