// Package sketch builds planar profiles from straight segments and converts
// closed profiles into kernel faces.
//
// Profiles are values: every operation returns a new Profile and leaves
// its receiver untouched.
package sketch

import (
	"math"

	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Tolerance is the distance under which two profile points coincide.
const Tolerance = 1e-6

// Profile is an ordered sequence of points joined by straight segments.
// A closed profile stores its start point again as its last point.
type Profile struct {
	pts    []r2.Vec
	arc    []bool // point was generated by rounding a corner
	closed bool
}

// FromPoints returns a closed profile through pts. The closing segment
// back to pts[0] is implied.
func FromPoints(pts ...r2.Vec) Profile {
	b := NewBuilder(pts[0])
	for _, p := range pts[1:] {
		b.LineTo(p)
	}
	return b.Close()
}

// Closed returns true if the profile ends where it started.
func (p Profile) Closed() bool { return p.closed }

// Len returns the number of distinct vertices.
func (p Profile) Len() int {
	if p.closed {
		return len(p.pts) - 1
	}
	return len(p.pts)
}

// Start returns the first point of the profile.
func (p Profile) Start() r2.Vec { return p.pts[0] }

// End returns the last computed point of the profile. For a closed
// profile this is the point the closing segment arrives at.
func (p Profile) End() r2.Vec { return p.pts[len(p.pts)-1] }

// Gap returns the distance between the end and start points.
func (p Profile) Gap() float64 { return r2.Norm(r2.Sub(p.End(), p.Start())) }

// Vertices returns a copy of the distinct vertices, without the repeated
// start point of a closed profile.
func (p Profile) Vertices() []r2.Vec {
	v := make([]r2.Vec, p.Len())
	copy(v, p.pts)
	return v
}

// Vertex returns vertex i modulo Len.
func (p Profile) Vertex(i int) r2.Vec {
	n := p.Len()
	return p.pts[((i%n)+n)%n]
}

// Rounded returns true if vertex i was produced by corner rounding.
func (p Profile) Rounded(i int) bool {
	n := p.Len()
	return p.arc[((i%n)+n)%n]
}

// Edge returns the segment starting at vertex i.
func (p Profile) Edge(i int) (a, b r2.Vec) {
	return p.Vertex(i), p.Vertex(i + 1)
}

// Edges returns the number of segments.
func (p Profile) Edges() int {
	if p.closed {
		return p.Len()
	}
	return p.Len() - 1
}

// Area returns the signed enclosed area, positive for counter-clockwise profiles.
func (p Profile) Area() float64 {
	var a float64
	n := p.Len()
	for i := 0; i < n; i++ {
		v0, v1 := p.Vertex(i), p.Vertex(i+1)
		a += r2.Cross(v0, v1)
	}
	return a / 2
}

// Bounds returns the bounding box of the vertices.
func (p Profile) Bounds() d2.Box {
	return d2.Set(p.Vertices()).Bounds()
}

// Translate returns the profile moved by v.
func (p Profile) Translate(v r2.Vec) Profile {
	q := p.clone()
	for i := range q.pts {
		q.pts[i] = r2.Add(q.pts[i], v)
	}
	return q
}

// Reverse returns the profile traversed in the opposite direction.
func (p Profile) Reverse() Profile {
	n := p.Len()
	pts := make([]r2.Vec, 0, len(p.pts))
	arc := make([]bool, 0, len(p.pts))
	for i := n - 1; i >= 0; i-- {
		pts = append(pts, p.pts[i])
		arc = append(arc, p.arc[i])
	}
	if p.closed {
		pts, arc = append(pts, pts[0]), append(arc, arc[0])
	}
	return newProfile(pts, arc, p.closed)
}

// Contains returns true if q lies strictly inside the closed profile.
func (p Profile) Contains(q r2.Vec) bool {
	wn := 0
	n := p.Len()
	for i := 0; i < n; i++ {
		a, b := p.Vertex(i), p.Vertex(i+1)
		side := r2.Cross(r2.Sub(b, a), r2.Sub(q, a))
		if a.Y <= q.Y {
			if b.Y > q.Y && side > 0 {
				wn++
			}
		} else if b.Y <= q.Y && side < 0 {
			wn--
		}
	}
	return wn != 0
}

// SelfIntersects returns true if any two non-adjacent segments touch.
func (p Profile) SelfIntersects() bool {
	ne := p.Edges()
	for i := 0; i < ne; i++ {
		a0, a1 := p.Edge(i)
		for j := i + 1; j < ne; j++ {
			if j == i+1 || (p.closed && i == 0 && j == ne-1) {
				continue // adjacent segments share a vertex
			}
			b0, b1 := p.Edge(j)
			if segmentsTouch(a0, a1, b0, b1) {
				return true
			}
		}
	}
	return false
}

// Simplify returns the profile without repeated points and without
// vertices that lie on a straight run between their neighbours.
func (p Profile) Simplify() Profile {
	n := p.Len()
	pts := make([]r2.Vec, 0, n+1)
	arc := make([]bool, 0, n+1)
	for i := 0; i < n; i++ {
		prev, v, next := p.Vertex(i-1), p.Vertex(i), p.Vertex(i+1)
		if !p.closed && (i == 0 || i == n-1) {
			pts, arc = append(pts, v), append(arc, p.arc[i])
			continue
		}
		if d2.EqualWithin(prev, v, Tolerance) {
			continue
		}
		u, w := r2.Sub(v, prev), r2.Sub(next, v)
		if math.Abs(r2.Cross(r2.Unit(u), r2.Unit(w))) < Tolerance && r2.Dot(u, w) > 0 {
			continue
		}
		pts, arc = append(pts, v), append(arc, p.arc[i])
	}
	if p.closed && len(pts) > 0 {
		pts, arc = append(pts, pts[0]), append(arc, arc[0])
	}
	return newProfile(pts, arc, p.closed)
}

// Validate checks that the profile can be converted to a face: closed to
// within Tolerance, at least three vertices, non-zero area and no self
// intersections.
func (p Profile) Validate() error {
	const op = "profile"
	if len(p.pts) == 0 {
		return fault.New(fault.DegenerateProfile, op, "no vertices")
	}
	if !p.closed {
		return fault.New(fault.DegenerateProfile, op, "profile is open")
	}
	if gap := p.Gap(); gap > Tolerance {
		return fault.New(fault.DegenerateProfile, op, "end point misses start by %g", gap)
	}
	if p.Len() < 3 {
		return fault.New(fault.DegenerateProfile, op, "%d vertices, need at least 3", p.Len())
	}
	if math.Abs(p.Area()) < Tolerance {
		return fault.New(fault.DegenerateProfile, op, "profile encloses no area")
	}
	if p.SelfIntersects() {
		return fault.New(fault.DegenerateProfile, op, "profile intersects itself")
	}
	return nil
}

func (p Profile) clone() Profile {
	return newProfile(append([]r2.Vec(nil), p.pts...), append([]bool(nil), p.arc...), p.closed)
}

func newProfile(pts []r2.Vec, arc []bool, closed bool) Profile {
	if len(arc) != len(pts) {
		panic("bug: arc tags do not match points")
	}
	return Profile{pts: pts, arc: arc, closed: closed}
}

// segmentsTouch reports whether segments ab and cd intersect or touch.
func segmentsTouch(a, b, c, d r2.Vec) bool {
	d1 := orient(c, d, a)
	d2 := orient(c, d, b)
	d3 := orient(a, b, c)
	d4 := orient(a, b, d)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(c, d, a)) ||
		(d2 == 0 && onSegment(c, d, b)) ||
		(d3 == 0 && onSegment(a, b, c)) ||
		(d4 == 0 && onSegment(a, b, d))
}

// orient returns the sign of the turn a->b->c, zero when within Tolerance.
func orient(a, b, c r2.Vec) int {
	v := r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
	switch {
	case v > Tolerance*Tolerance:
		return 1
	case v < -Tolerance*Tolerance:
		return -1
	}
	return 0
}

func onSegment(a, b, q r2.Vec) bool {
	return q.X >= math.Min(a.X, b.X)-Tolerance && q.X <= math.Max(a.X, b.X)+Tolerance &&
		q.Y >= math.Min(a.Y, b.Y)-Tolerance && q.Y <= math.Max(a.Y, b.Y)+Tolerance
}
