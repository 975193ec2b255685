package solid

import (
	"math"

	"github.com/bendavis78/corne-case/internal/d3"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// placed is an SDF3 moved by a rigid transform, possibly mirrored.
type placed struct {
	s   sdf.SDF3
	inv d3.Transform
	bb  sdf.Box3
}

// Place returns s moved by t. t must preserve distances: a rotation,
// translation or mirror. The identity returns s unchanged.
func Place(s sdf.SDF3, t d3.Transform) sdf.SDF3 {
	if t == (d3.Transform{}) {
		return s
	}
	inv, ok := t.Inv()
	if !ok || math.Abs(math.Abs(t.Det())-1) > 1e-9 {
		panic("solid: placement must be rigid")
	}
	return &placed{
		s:   s,
		inv: inv,
		bb:  Bounds(s).Transform(t).Box3(),
	}
}

// Mirror returns s mirrored across the YZ plane.
func Mirror(s sdf.SDF3) sdf.SDF3 {
	return Place(s, d3.Scaling(r3.Vec{X: -1, Y: 1, Z: 1}))
}

// Evaluate returns the distance from p to the placed solid.
func (p *placed) Evaluate(v v3.Vec) float64 {
	return p.s.Evaluate(d3.ToV3(p.inv.Transform(d3.FromV3(v))))
}

// BoundingBox returns the box around the placed solid.
func (p *placed) BoundingBox() sdf.Box3 { return p.bb }
