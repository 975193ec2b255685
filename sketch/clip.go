package sketch

import (
	"github.com/bendavis78/corne-case/fault"
	"gonum.org/v1/gonum/spatial/r2"
)

// ClipAbove returns the part of the closed profile with Y <= y, cutting
// away everything above the horizontal line at y.
func (p Profile) ClipAbove(y float64) (Profile, error) {
	return p.clip(func(v r2.Vec) float64 { return y - v.Y })
}

// ClipBelow returns the part of the closed profile with Y >= y.
func (p Profile) ClipBelow(y float64) (Profile, error) {
	return p.clip(func(v r2.Vec) float64 { return v.Y - y })
}

// clip keeps the region where keep(v) >= 0. keep must be affine.
func (p Profile) clip(keep func(r2.Vec) float64) (Profile, error) {
	const op = "clip"
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	n := p.Len()
	var out []r2.Vec
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		ka, kb := keep(a), keep(b)
		if ka >= 0 {
			out = append(out, a)
		}
		if (ka >= 0) != (kb >= 0) {
			t := ka / (ka - kb)
			out = append(out, r2.Add(a, r2.Scale(t, r2.Sub(b, a))))
		}
	}
	if len(out) < 3 {
		return Profile{}, fault.New(fault.EmptyGeometrySelection, op, "nothing left of the profile")
	}
	q := FromPoints(out...).Simplify()
	if err := q.Validate(); err != nil {
		return Profile{}, err
	}
	return q, nil
}
