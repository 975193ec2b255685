package sketch

import (
	"math"

	"github.com/bendavis78/corne-case/fault"
	"gonum.org/v1/gonum/spatial/r2"
)

// Offset returns the closed profile grown outward by d, or shrunk for
// negative d. Edges are moved along their normals and neighbouring edges
// are extended until they meet, so corners stay sharp (a miter join).
// Rounding tags are dropped.
func (p Profile) Offset(d float64) (Profile, error) {
	const op = "offset"
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	p = p.Simplify()
	n := p.Len()
	// outward normal sign: counter-clockwise profiles have their interior on the left.
	side := 1.0
	if p.Area() < 0 {
		side = -1
	}
	base := make([]r2.Vec, n)
	dir := make([]r2.Vec, n)
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		u := r2.Unit(r2.Sub(b, a))
		normal := r2.Scale(side, r2.Vec{X: u.Y, Y: -u.X})
		base[i] = r2.Add(a, r2.Scale(d, normal))
		dir[i] = u
	}
	var bld *Builder
	for i := 0; i < n; i++ {
		prev := (i + n - 1) % n
		v, ok := lineIntersection(base[prev], dir[prev], base[i], dir[i])
		if !ok {
			return Profile{}, fault.New(fault.DegenerateProfile, op, "edges %d and %d are parallel", prev, i)
		}
		if bld == nil {
			bld = NewBuilder(v)
		} else {
			bld.LineTo(v)
		}
	}
	q := bld.Close()
	if err := q.Validate(); err != nil {
		return Profile{}, fault.New(fault.DegenerateProfile, op, "offset by %g: %v", d, err)
	}
	if math.Signbit(q.Area()) != math.Signbit(p.Area()) {
		return Profile{}, fault.New(fault.DegenerateProfile, op, "offset by %g inverts the profile", d)
	}
	return q, nil
}

// lineIntersection intersects the lines a + t*u and b + s*w.
func lineIntersection(a, u, b, w r2.Vec) (r2.Vec, bool) {
	den := r2.Cross(u, w)
	if math.Abs(den) < Tolerance {
		return r2.Vec{}, false
	}
	t := r2.Cross(r2.Sub(b, a), w) / den
	return r2.Add(a, r2.Scale(t, u)), true
}
