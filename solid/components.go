package solid

import (
	"math"

	"github.com/bendavis78/corne-case/internal/d3"
	"github.com/deadsy/sdfx/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Components returns the number of disjoint bodies in s. s is sampled on
// a voxel grid of the given cell size and face neighbouring voxels inside
// the solid are joined. Features thinner than a cell may be missed.
func Components(s sdf.SDF3, cell float64) int {
	bb := Bounds(s)
	size := bb.Size()
	nx := int(math.Ceil(size.X / cell))
	ny := int(math.Ceil(size.Y / cell))
	nz := int(math.Ceil(size.Z / cell))
	if nx == 0 || ny == 0 || nz == 0 {
		return 0
	}
	index := func(i, j, k int) int { return (k*ny+j)*nx + i }
	inside := make([]bool, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				p := r3.Add(bb.Min, r3.Vec{
					X: (float64(i) + 0.5) * cell,
					Y: (float64(j) + 0.5) * cell,
					Z: (float64(k) + 0.5) * cell,
				})
				inside[index(i, j, k)] = s.Evaluate(d3.ToV3(p)) < 0
			}
		}
	}

	type voxel struct{ i, j, k int }
	neighbours := [6]voxel{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	seen := make([]bool, len(inside))
	var queue []voxel
	count := 0
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				at := index(i, j, k)
				if !inside[at] || seen[at] {
					continue
				}
				count++
				seen[at] = true
				queue = append(queue[:0], voxel{i, j, k})
				for len(queue) > 0 {
					v := queue[len(queue)-1]
					queue = queue[:len(queue)-1]
					for _, d := range neighbours {
						n := voxel{v.i + d.i, v.j + d.j, v.k + d.k}
						if n.i < 0 || n.j < 0 || n.k < 0 || n.i >= nx || n.j >= ny || n.k >= nz {
							continue
						}
						if at := index(n.i, n.j, n.k); inside[at] && !seen[at] {
							seen[at] = true
							queue = append(queue, n)
						}
					}
				}
			}
		}
	}
	return count
}
