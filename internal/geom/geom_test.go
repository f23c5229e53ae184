package geom

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var cubics = []Cubic{
	{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)},
	{Pt(0.1, 0.7), Pt(-3.3, 12.9), Pt(99.1, -0.3), Pt(17.3, 42.1)},
	{Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5)},
	{Pt(-1e3, 1e-3), Pt(3e2, 7), Pt(0.3, 0.6), Pt(1.0/3.0, 2.0/3.0)},
}

func TestEvaluateEndpoints(t *testing.T) {
	for _, c := range cubics {
		if got := Evaluate(0, c.P0, c.P1, c.P2, c.P3); got != c.P0 {
			t.Errorf("Evaluate(0) = %v, want %v", got, c.P0)
		}
		if got := Evaluate(1, c.P0, c.P1, c.P2, c.P3); got != c.P3 {
			t.Errorf("Evaluate(1) = %v, want %v", got, c.P3)
		}
	}
}

func TestEvaluateMatchesBernstein(t *testing.T) {
	bernstein := func(c Cubic, t float64) Point {
		mt := 1 - t
		a, b, cc, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		return Pt(
			a*c.P0.X+b*c.P1.X+cc*c.P2.X+d*c.P3.X,
			a*c.P0.Y+b*c.P1.Y+cc*c.P2.Y+d*c.P3.Y,
		)
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, c := range cubics {
		for i := range 11 {
			ts := float64(i) / 10
			diff(t, bernstein(c, ts), c.Eval(ts), approx)
		}
	}
}

type affine struct {
	a, b, c, d, e, f float64
}

func (m affine) apply(p Point) Point {
	return Pt(m.a*p.X+m.c*p.Y+m.e, m.b*p.X+m.d*p.Y+m.f)
}

func TestEvaluateAffineInvariant(t *testing.T) {
	th := 0.7
	s, c := math.Sincos(th)
	transforms := []affine{
		{1, 0, 0, 1, 12, -7},
		{c, s, -s, c, 0, 0},
		{c * 2, s * 2, -s * 2, c * 2, -3.5, 100},
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, m := range transforms {
		for _, cb := range cubics {
			moved := Cubic{m.apply(cb.P0), m.apply(cb.P1), m.apply(cb.P2), m.apply(cb.P3)}
			for i := range 9 {
				ts := float64(i) / 8
				diff(t, m.apply(cb.Eval(ts)), moved.Eval(ts), approx)
			}
		}
	}
}

func TestTessellateNonEmpty(t *testing.T) {
	for _, c := range cubics {
		pts := slices.Collect(Tessellate(c.P0, c.P1, c.P2, c.P3))
		if len(pts) < 1 {
			t.Fatalf("Tessellate(%v) yielded no points", c)
		}
		if last := pts[len(pts)-1]; last != c.P3 {
			t.Errorf("last sample = %v, want %v", last, c.P3)
		}
	}
}

func TestTessellateCount(t *testing.T) {
	tests := []struct {
		p3   Point
		want int
	}{
		{Pt(0, 0), 1},
		{Pt(5, 0), 1},
		{Pt(10, 0), 1},
		{Pt(10.5, 0), 2},
		{Pt(30, 40), 5},
		{Pt(0, 101), 11},
	}
	for _, tt := range tests {
		n := 0
		for range Tessellate(Pt(0, 0), Pt(3, 9), Pt(-4, 2), tt.p3) {
			n++
		}
		if n != tt.want {
			t.Errorf("distance %g: got %d samples, want %d", tt.p3.Distance(Pt(0, 0)), n, tt.want)
		}
	}
}

func TestTessellateMonotonic(t *testing.T) {
	prev := 0
	for d := 0.0; d < 500; d += 3.7 {
		n := len(slices.Collect(Tessellate(Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(d, 0))))
		if n < prev {
			t.Fatalf("distance %g: %d samples, fewer than %d at a shorter distance", d, n, prev)
		}
		prev = n
	}
}

func TestTessellateRestartable(t *testing.T) {
	seq := Tessellate(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(40, 0))
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	diff(t, first, second)

	// stop early, then iterate fully again
	for range seq {
		break
	}
	diff(t, first, slices.Collect(seq))
}

func TestTessellateStepFallback(t *testing.T) {
	if got, want := Accuracy(0, Pt(0, 0), Pt(100, 0)), 10; got != want {
		t.Errorf("Accuracy with zero step = %d, want %d", got, want)
	}
	if got, want := Accuracy(25, Pt(0, 0), Pt(100, 0)), 4; got != want {
		t.Errorf("Accuracy(25) = %d, want %d", got, want)
	}
}

func TestPointDistance(t *testing.T) {
	if d := Pt(-11, 1).Distance(Pt(-7, -2)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	diff(t, Pt(3, 4), Pt(1, 1).Add(Pt(2, 3).Sub(Pt(0, 0))))
}
