package d3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestTransformIdentity(t *testing.T) {
	var id Transform
	p := r3.Vec{X: 1, Y: -2, Z: 3}
	if got := id.Transform(p); got != p {
		t.Errorf("identity moved point: %v", got)
	}
	if !FromAxes(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1}, r3.Vec{Z: 1}).Equals(id, 0) {
		t.Error("unit axes should produce the identity")
	}
}

func TestTransformInverse(t *testing.T) {
	const tol = 1e-12
	cases := []Transform{
		Translation(r3.Vec{X: 3, Y: -1, Z: 0.5}),
		RotationZ(math.Pi / 6).Translate(r3.Vec{X: 10}),
		Scaling(r3.Vec{X: -1, Y: 1, Z: 1}).Translate(r3.Vec{Z: 6.45}),
		FromAxes(r3.Vec{X: -2.05, Y: 6.75}, r3.Vec{X: 1}, r3.Vec{Z: -1}, r3.Vec{Y: 1}),
	}
	p := r3.Vec{X: 1.5, Y: 2.5, Z: -3.5}
	for i, tf := range cases {
		inv, ok := tf.Inv()
		if !ok {
			t.Fatalf("case %d: unexpected singular transform", i)
		}
		if !inv.Mul(tf).Equals(Transform{}, tol) {
			t.Errorf("case %d: inverse composed with transform is not identity", i)
		}
		if got := inv.Transform(tf.Transform(p)); !EqualWithin(got, p, tol) {
			t.Errorf("case %d: round trip moved point to %v", i, got)
		}
	}
	if _, ok := Scaling(r3.Vec{X: 1, Y: 0, Z: 1}).Inv(); ok {
		t.Error("expected zero scaling to be singular")
	}
}

func TestTransformMulOrder(t *testing.T) {
	// Rotate first, then translate.
	tf := Translation(r3.Vec{X: 5}).Mul(RotationZ(math.Pi / 2))
	got := tf.Transform(r3.Vec{X: 1})
	if !EqualWithin(got, r3.Vec{X: 5, Y: 1}, 1e-12) {
		t.Errorf("got %v, want (5,1,0)", got)
	}
	if d := Scaling(r3.Vec{X: -1, Y: 1, Z: 1}).Det(); d != -1 {
		t.Errorf("mirror determinant: got %v", d)
	}
}
