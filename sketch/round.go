package sketch

import (
	"math"

	"github.com/bendavis78/corne-case/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultFacets is the number of segments used to approximate a rounded corner.
const DefaultFacets = 12

// Corner describes a vertex of a closed profile and its two adjoining edges.
type Corner struct {
	Index   int
	At      r2.Vec
	Prev    r2.Vec // vertex before At
	Next    r2.Vec // vertex after At
	Convex  bool   // the profile turns towards its interior at At
	Rounded bool   // At was produced by rounding an earlier corner
}

// InLength is the length of the edge arriving at the corner.
func (c Corner) InLength() float64 { return r2.Norm(r2.Sub(c.At, c.Prev)) }

// OutLength is the length of the edge leaving the corner.
func (c Corner) OutLength() float64 { return r2.Norm(r2.Sub(c.Next, c.At)) }

// Predicate selects corners.
type Predicate func(Corner) bool

// EdgesLongerThan selects corners whose adjoining edges are both longer than min.
func EdgesLongerThan(min float64) Predicate {
	return func(c Corner) bool {
		return c.InLength() > min && c.OutLength() > min
	}
}

// IsConvex selects outer corners.
func IsConvex(c Corner) bool { return c.Convex }

// IsRounded selects points produced by corner rounding.
func IsRounded(c Corner) bool { return c.Rounded }

// At selects the corner coinciding with point v.
func At(v r2.Vec) Predicate {
	return func(c Corner) bool { return d2.EqualWithin(c.At, v, Tolerance) }
}

// OnBoundaryOf selects corners lying on the boundary of q.
func OnBoundaryOf(q Profile) Predicate {
	return func(c Corner) bool { return onBoundary(q, c.At) }
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(c Corner) bool { return !p(c) }
}

// All selects corners matching every predicate.
func All(ps ...Predicate) Predicate {
	return func(c Corner) bool {
		for _, p := range ps {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

// Any selects corners matching at least one predicate.
func Any(ps ...Predicate) Predicate {
	return func(c Corner) bool {
		for _, p := range ps {
			if p(c) {
				return true
			}
		}
		return false
	}
}

// Corners returns every corner of a closed profile in order.
func (p Profile) Corners() []Corner {
	n := p.Len()
	orientation := math.Copysign(1, p.Area())
	corners := make([]Corner, n)
	for i := range corners {
		prev, v, next := p.Vertex(i-1), p.Vertex(i), p.Vertex(i+1)
		turn := r2.Cross(r2.Sub(v, prev), r2.Sub(next, v))
		corners[i] = Corner{
			Index:   i,
			At:      v,
			Prev:    prev,
			Next:    next,
			Convex:  turn*orientation > Tolerance*Tolerance,
			Rounded: p.Rounded(i),
		}
	}
	return corners
}

// Select returns the corners matching pred.
func (p Profile) Select(pred Predicate) []Corner {
	var sel []Corner
	for _, c := range p.Corners() {
		if pred(c) {
			sel = append(sel, c)
		}
	}
	return sel
}

// Round replaces each corner selected by pred with a circular arc of the
// given radius. Selection is decided on the receiver before any corner
// is rounded. A selected corner is left sharp when the arc's tangent
// points would not fit on what remains of its adjoining edges. Round
// returns the new profile and the number of corners rounded.
func (p Profile) Round(pred Predicate, radius float64, facets int) (Profile, int) {
	p = p.Simplify()
	if radius <= 0 || facets <= 0 {
		return p, 0
	}
	corners := p.Corners()
	n := len(corners)
	pts := make([]r2.Vec, 0, n+facets*n)
	arc := make([]bool, 0, cap(pts))
	rounded := 0
	for i, c := range corners {
		if !pred(c) {
			pts, arc = append(pts, c.At), append(arc, c.Rounded)
			continue
		}
		// neighbours as they stand after earlier corners were rounded
		prev, next := c.Prev, c.Next
		if len(pts) > 0 {
			prev = pts[len(pts)-1]
		}
		if i == n-1 && len(pts) > 0 {
			next = pts[0]
		}
		fillet, ok := roundCorner(prev, c.At, next, radius, facets)
		if !ok {
			pts, arc = append(pts, c.At), append(arc, c.Rounded)
			continue
		}
		for _, f := range fillet {
			pts, arc = append(pts, f), append(arc, true)
		}
		rounded++
	}
	pts, arc = append(pts, pts[0]), append(arc, arc[0])
	return newProfile(pts, arc, true).Simplify(), rounded
}

// roundCorner returns the arc replacing vertex v between prev and next.
func roundCorner(prev, v, next r2.Vec, radius float64, facets int) ([]r2.Vec, bool) {
	// work out the angle
	v0 := r2.Unit(r2.Sub(prev, v))
	v1 := r2.Unit(r2.Sub(next, v))
	theta := math.Acos(math.Max(-1, math.Min(1, r2.Dot(v0, v1))))
	if theta < Tolerance || math.Pi-theta < Tolerance {
		return nil, false // spike or straight run
	}
	// distance from vertex to circle tangent
	d1 := radius / math.Tan(theta/2.0)
	if d1 > r2.Norm(r2.Sub(prev, v))+Tolerance || d1 > r2.Norm(r2.Sub(next, v))+Tolerance {
		// unable to smooth - radius is too large
		return nil, false
	}
	// tangent point
	p0 := r2.Add(v, r2.Scale(d1, v0))
	// distance from vertex to circle center
	dc := radius / math.Sin(theta/2.0)
	// center of circle
	c := r2.Add(v, r2.Scale(dc, r2.Unit(r2.Add(v0, v1))))
	// rotation angle per facet
	dtheta := math.Copysign(1, r2.Cross(v1, v0)) * (math.Pi - theta) / float64(facets)
	rv := r2.Sub(p0, c)
	points := make([]r2.Vec, facets+1)
	for j := range points {
		points[j] = r2.Add(c, rv)
		rv = d2.Rotate(rv, dtheta)
	}
	return points, true
}
