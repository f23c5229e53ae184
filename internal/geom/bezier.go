package geom

// Cubic is a single cubic Bézier segment.
type Cubic struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Evaluate returns the point at parameter t on the cubic Bézier defined by
// p0..p3, using De Casteljau's algorithm. t=0 yields p0 and t=1 yields p3.
func Evaluate(t float64, p0, p1, p2, p3 Point) Point {
	p01 := p0.Lerp(p1, t)
	p12 := p1.Lerp(p2, t)
	p23 := p2.Lerp(p3, t)

	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)

	return p012.Lerp(p123, t)
}

func (c Cubic) Eval(t float64) Point {
	return Evaluate(t, c.P0, c.P1, c.P2, c.P3)
}

