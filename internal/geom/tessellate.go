package geom

import (
	"iter"
	"math"
)

// SampleStep is the default chord length, in canvas units, covered by one
// line segment of a tessellated curve.
const SampleStep = 10

// Accuracy returns the number of samples used for a segment from p0 to p3
// at the given step. It is never less than 1.
func Accuracy(step float64, p0, p3 Point) int {
	if step <= 0 {
		step = SampleStep
	}
	n := int(math.Ceil(p0.Distance(p3) / step))
	if n < 1 {
		return 1
	}
	return n
}

// Tessellate approximates the curve by a polyline with the default step.
// See [TessellateStep].
func Tessellate(p0, p1, p2, p3 Point) iter.Seq[Point] {
	return TessellateStep(SampleStep, p0, p1, p2, p3)
}

// TessellateStep yields the curve evaluated at i/n for i = 1..n, where n is
// [Accuracy]. The start point p0 is not yielded; callers move to it first.
// The sequence always ends at p3 and may be iterated more than once.
func TessellateStep(step float64, p0, p1, p2, p3 Point) iter.Seq[Point] {
	n := Accuracy(step, p0, p3)
	return func(yield func(Point) bool) {
		for i := 1; i <= n; i++ {
			t := float64(i) / float64(n)
			if !yield(Evaluate(t, p0, p1, p2, p3)) {
				return
			}
		}
	}
}

// Samples tessellates c with the given step.
func (c Cubic) Samples(step float64) iter.Seq[Point] {
	return TessellateStep(step, c.P0, c.P1, c.P2, c.P3)
}
