package sketch

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// Segment is a straight profile edge from A to B.
type Segment struct{ A, B r2.Vec }

// Low returns the end point with the smaller Y.
func (s Segment) Low() r2.Vec {
	if s.B.Y < s.A.Y {
		return s.B
	}
	return s.A
}

// High returns the end point with the larger Y.
func (s Segment) High() r2.Vec {
	if s.B.Y < s.A.Y {
		return s.A
	}
	return s.B
}

// VerticalEdges returns the edges parallel to the Y axis ordered by X.
func (p Profile) VerticalEdges() []Segment {
	var edges []Segment
	for i := 0; i < p.Edges(); i++ {
		a, b := p.Edge(i)
		if math.Abs(a.X-b.X) < Tolerance && math.Abs(a.Y-b.Y) >= Tolerance {
			edges = append(edges, Segment{a, b})
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].A.X < edges[j].A.X })
	return edges
}

// Top returns the vertices with the largest Y, ordered by X.
func (p Profile) Top() []r2.Vec {
	vs := p.Vertices()
	top := vs[0].Y
	for _, v := range vs {
		top = math.Max(top, v.Y)
	}
	var sel []r2.Vec
	for _, v := range vs {
		if top-v.Y < Tolerance {
			sel = append(sel, v)
		}
	}
	sort.SliceStable(sel, func(i, j int) bool { return sel[i].X < sel[j].X })
	return sel
}

// Lowest returns the vertex with the smallest Y. Ties go to the smallest X.
func (p Profile) Lowest() r2.Vec {
	vs := p.Vertices()
	low := vs[0]
	for _, v := range vs[1:] {
		if v.Y < low.Y || (v.Y == low.Y && v.X < low.X) {
			low = v
		}
	}
	return low
}
