package d2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestRotate(t *testing.T) {
	got := Rotate(r2.Vec{X: 1}, math.Pi/2)
	if !EqualWithin(got, r2.Vec{Y: 1}, 1e-12) {
		t.Errorf("rotating +X by 90 degrees: got %v", got)
	}
	got = Rotate(r2.Vec{X: 2, Y: 1}, math.Pi)
	if !EqualWithin(got, r2.Vec{X: -2, Y: -1}, 1e-12) {
		t.Errorf("rotating by 180 degrees: got %v", got)
	}
}

func TestSetBounds(t *testing.T) {
	s := Set{{X: 1, Y: 5}, {X: -2, Y: 3}, {X: 4, Y: -1}}
	bb := s.Bounds()
	if bb.Min != (r2.Vec{X: -2, Y: -1}) || bb.Max != (r2.Vec{X: 4, Y: 5}) {
		t.Fatalf("unexpected bounds %+v", bb)
	}
	if !bb.Contains(r2.Vec{X: 4, Y: 5}) {
		t.Error("box bounds are inside the box")
	}
	if bb.Contains(r2.Vec{X: 4.1}) {
		t.Error("point beyond max reported inside")
	}
	if c := bb.Center(); c != (r2.Vec{X: 1, Y: 2}) {
		t.Errorf("center: got %v", c)
	}
}
