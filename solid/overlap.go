package solid

import (
	"math"

	"github.com/bendavis78/corne-case/internal/d3"
	"github.com/deadsy/sdfx/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// OverlapResolution is the smallest cube edge the overlap search subdivides to.
const OverlapResolution = 0.02

// octCube is a cube of the intersection octree.
type octCube struct {
	min  r3.Vec
	side float64
}

// Intersects returns true if a and b share interior volume.
func Intersects(a, b sdf.SDF3) bool { return Overlap(a, b, 0) }

// Overlap returns true if a and b share a region reaching deeper than
// depth into both. It walks an octree over the overlap of their bounding
// boxes and evaluates the intersection max(a, b) at cube centers. Cubes
// whose center distance exceeds their half diagonal less depth cannot
// hold such a region and are pruned. Cubes are not split below depth, so
// regions much thinner than depth may be missed.
func Overlap(a, b sdf.SDF3, depth float64) bool {
	bb := Bounds(a).Intersect(Bounds(b))
	if bb.Empty() {
		return false
	}
	size := bb.Size()
	side := math.Max(size.X, math.Max(size.Y, size.Z))
	leaf := math.Max(OverlapResolution, depth)
	todo := []octCube{{min: bb.Min, side: side}}
	for len(todo) > 0 {
		c := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		h := c.side / 2
		center := d3.ToV3(r3.Add(c.min, r3.Vec{X: h, Y: h, Z: h}))
		d := math.Max(a.Evaluate(center), b.Evaluate(center))
		if d < -depth {
			return true
		}
		if d >= h*math.Sqrt(3)-depth || c.side <= leaf {
			continue
		}
		for i := 0; i < 8; i++ {
			off := r3.Vec{X: float64(i & 1), Y: float64(i >> 1 & 1), Z: float64(i >> 2 & 1)}
			todo = append(todo, octCube{min: r3.Add(c.min, r3.Scale(h, off)), side: h})
		}
	}
	return false
}
