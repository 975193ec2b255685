package sketch

import (
	"math"
	"sort"

	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// piece is a directed boundary segment of a boolean result.
type piece struct{ from, to r2.Vec }

// Subtract returns the closed loops bounding the region of p outside q.
// Outer loops run counter-clockwise and holes clockwise. Edges that p and
// q share with their interiors on the same side are dropped.
func (p Profile) Subtract(q Profile) ([]Profile, error) {
	const op = "subtract"
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	a, b := counterClockwise(p.Simplify()), counterClockwise(q.Simplify())

	var pieces []piece
	for i := 0; i < a.Edges(); i++ {
		s, e := a.Edge(i)
		pts := splitEdge(s, e, b)
		for j := 1; j < len(pts); j++ {
			m := midpoint(pts[j-1], pts[j])
			if onBoundary(b, m) {
				u := r2.Unit(r2.Sub(pts[j], pts[j-1]))
				inward := r2.Vec{X: -u.Y, Y: u.X}
				if b.Contains(r2.Add(m, r2.Scale(100*Tolerance, inward))) {
					continue
				}
			} else if b.Contains(m) {
				continue
			}
			pieces = append(pieces, piece{pts[j-1], pts[j]})
		}
	}
	for i := 0; i < b.Edges(); i++ {
		s, e := b.Edge(i)
		pts := splitEdge(s, e, a)
		for j := 1; j < len(pts); j++ {
			m := midpoint(pts[j-1], pts[j])
			if onBoundary(a, m) || !a.Contains(m) {
				continue
			}
			pieces = append(pieces, piece{pts[j], pts[j-1]})
		}
	}
	if len(pieces) == 0 {
		return nil, fault.New(fault.EmptyGeometrySelection, op, "nothing is left outside the subtracted profile")
	}

	used := make([]bool, len(pieces))
	var loops []Profile
	for i := range pieces {
		if used[i] {
			continue
		}
		start := pieces[i].from
		pts := []r2.Vec{start}
		cur := i
		for {
			used[cur] = true
			end := pieces[cur].to
			if d2.EqualWithin(end, start, Tolerance) {
				break
			}
			next := -1
			for j := range pieces {
				if !used[j] && d2.EqualWithin(pieces[j].from, end, Tolerance) {
					next = j
					break
				}
			}
			if next < 0 {
				return nil, fault.New(fault.DegenerateProfile, op, "boundary does not close at %v", end)
			}
			pts = append(pts, end)
			cur = next
		}
		if len(pts) < 3 {
			continue // sliver between touching boundaries
		}
		loop := FromPoints(pts...).Simplify()
		if err := loop.Validate(); err != nil {
			return nil, err
		}
		loops = append(loops, loop)
	}
	if len(loops) == 0 {
		return nil, fault.New(fault.EmptyGeometrySelection, op, "nothing is left outside the subtracted profile")
	}
	return loops, nil
}

func counterClockwise(p Profile) Profile {
	if p.Area() < 0 {
		return p.Reverse()
	}
	return p
}

// splitEdge returns the points along segment s-e where it meets the
// boundary of other, including both ends, ordered from s to e.
func splitEdge(s, e r2.Vec, other Profile) []r2.Vec {
	se := r2.Sub(e, s)
	l2 := r2.Dot(se, se)
	ts := []float64{0, 1}
	for i := 0; i < other.Edges(); i++ {
		c, d := other.Edge(i)
		for _, v := range [2]r2.Vec{c, d} {
			if distToSegment(s, e, v) < Tolerance {
				ts = append(ts, r2.Dot(r2.Sub(v, s), se)/l2)
			}
		}
		cd := r2.Sub(d, c)
		den := r2.Cross(se, cd)
		if math.Abs(den) < Tolerance*Tolerance {
			continue // parallel, overlaps are split at the vertices above
		}
		t := r2.Cross(r2.Sub(c, s), cd) / den
		u := r2.Cross(r2.Sub(c, s), se) / den
		if t > 0 && t < 1 && u >= 0 && u <= 1 {
			ts = append(ts, t)
		}
	}
	sort.Float64s(ts)
	minStep := Tolerance / math.Sqrt(l2)
	pts := []r2.Vec{s}
	last := 0.0
	for _, t := range ts[1:] {
		if t-last < minStep || t > 1 {
			continue
		}
		pts = append(pts, r2.Add(s, r2.Scale(t, se)))
		last = t
	}
	if last < 1 {
		pts[len(pts)-1] = e
	}
	return pts
}

func onBoundary(p Profile, v r2.Vec) bool {
	for i := 0; i < p.Edges(); i++ {
		a, b := p.Edge(i)
		if distToSegment(a, b, v) < Tolerance {
			return true
		}
	}
	return false
}

func distToSegment(a, b, v r2.Vec) float64 {
	ab := r2.Sub(b, a)
	t := r2.Dot(r2.Sub(v, a), ab) / r2.Dot(ab, ab)
	t = math.Max(0, math.Min(1, t))
	return r2.Norm(r2.Sub(v, r2.Add(a, r2.Scale(t, ab))))
}

func midpoint(a, b r2.Vec) r2.Vec { return r2.Scale(0.5, r2.Add(a, b)) }
