package sketch

import (
	"math"
	"testing"

	"github.com/bendavis78/corne-case/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// stepped is a 20x10 rectangle with a 2 unit step in its top edge.
func stepped() Profile {
	return NewBuilder(r2.Vec{}).
		Line(r2.Vec{X: 20}).
		Line(r2.Vec{Y: 10}).
		Line(r2.Vec{X: -10}).
		Line(r2.Vec{Y: 2}).
		Line(r2.Vec{X: -10}).
		Close()
}

func TestCornersConvex(t *testing.T) {
	p := stepped()
	var convex, concave int
	for _, c := range p.Corners() {
		if c.Convex {
			convex++
		} else {
			concave++
		}
	}
	if convex != 5 || concave != 1 {
		t.Errorf("expected 5 convex and 1 concave corner, got %d and %d", convex, concave)
	}
	// Orientation must not change the result.
	if n := len(p.Reverse().Select(IsConvex)); n != 5 {
		t.Errorf("reversed profile: expected 5 convex corners, got %d", n)
	}
}

func TestRoundSelective(t *testing.T) {
	const radius = 3
	p := stepped()
	short := p.Select(Not(EdgesLongerThan(radius)))
	if len(short) != 2 {
		t.Fatalf("expected the 2 step corners to have a short edge, got %d", len(short))
	}
	got, n := p.Round(EdgesLongerThan(radius), radius, 6)
	if n != 4 {
		t.Fatalf("expected 4 rounded corners, got %d", n)
	}
	// Corners beside the short step edge are untouched.
	for _, c := range short {
		if len(got.Select(All(At(c.At), Not(IsRounded)))) != 1 {
			t.Errorf("corner %v adjoins a short edge but was rounded", c.At)
		}
	}
	// Every arc point keeps the radius from its center.
	corner := r2.Vec{X: 20}
	center := r2.Vec{X: 20 - radius, Y: radius}
	for _, c := range got.Select(IsRounded) {
		if !d2.EqualWithin(c.At, corner, 2*radius) || c.At.Y > 2*radius {
			continue
		}
		if d := r2.Norm(r2.Sub(c.At, center)); math.Abs(d-radius) > 1e-9 {
			t.Errorf("arc point %v is %g from the corner center", c.At, d)
		}
	}
	if err := got.Validate(); err != nil {
		t.Fatal(err)
	}
	if got.Area() >= p.Area() {
		t.Error("rounding convex corners must remove area")
	}
}

func TestRoundTrimsAtMostTangent(t *testing.T) {
	// For right angle corners the tangent point sits exactly radius away
	// from the corner, so no edge is shortened by more than radius at a
	// rounded end.
	const radius = 2.5
	p := square(10)
	got, n := p.Round(EdgesLongerThan(radius), radius, 4)
	if n != 4 {
		t.Fatalf("expected 4 rounded corners, got %d", n)
	}
	found := false
	for i := 0; i < got.Edges(); i++ {
		a, b := got.Edge(i)
		if math.Abs(a.Y) > 1e-9 || math.Abs(b.Y) > 1e-9 {
			continue
		}
		found = true
		if l := r2.Norm(r2.Sub(b, a)); math.Abs(l-(10-2*radius)) > 1e-9 {
			t.Errorf("bottom edge trimmed to %g, want %g", l, 10-2*radius)
		}
	}
	if !found {
		t.Error("bottom edge not found after rounding")
	}
}

func TestRoundRemainingConvex(t *testing.T) {
	p := stepped()
	first, _ := p.Round(EdgesLongerThan(3), 3, 6)
	outer := first.Select(All(IsConvex, Not(IsRounded)))
	if len(outer) != 1 {
		t.Fatalf("expected one sharp outer corner left, got %d", len(outer))
	}
	if want := (r2.Vec{X: 10, Y: 12}); !d2.EqualWithin(outer[0].At, want, 1e-12) {
		t.Errorf("expected outer corner at %v, got %v", want, outer[0].At)
	}
	second, n := first.Round(All(IsConvex, Not(IsRounded)), 1.5, 6)
	if n != 1 {
		t.Fatalf("expected the outer corner to be rounded, got %d", n)
	}
	if len(second.Select(All(IsConvex, Not(IsRounded)))) != 0 {
		t.Error("sharp outer corners remain")
	}
	if err := second.Validate(); err != nil {
		t.Fatal(err)
	}
}
