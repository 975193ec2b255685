// Package render turns kernel solids and sketches into files: STL and 3MF
// meshes, DXF and SVG drawings and shaded PNG previews.
package render

import (
	"io"

	"github.com/bendavis78/corne-case/internal/d3"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a mesh triangle. Its vertices run counter-clockwise seen
// from outside the solid.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle.
func (t Triangle3) Normal() r3.Vec {
	return r3.Unit(r3.Cross(r3.Sub(t.V[1], t.V[0]), r3.Sub(t.V[2], t.V[0])))
}

// Degenerate returns true if two vertices of the triangle coincide.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t.V[0], t.V[1], tol) ||
		d3.EqualWithin(t.V[1], t.V[2], tol) ||
		d3.EqualWithin(t.V[2], t.V[0], tol)
}

// Renderer streams the triangles of a mesh. ReadTriangles returns io.EOF
// once every triangle was read.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// MeshRenderer tessellates a solid with the kernel's octree marching
// cubes. The solid is meshed on the first read.
type MeshRenderer struct {
	s     sdf.SDF3
	cells int
	done  bool
	buf   triangle3Buffer
}

// NewMeshRenderer returns a renderer for s sampled with cells cubes along
// the longest side of its bounding box.
func NewMeshRenderer(s sdf.SDF3, cells int) *MeshRenderer {
	return &MeshRenderer{s: s, cells: cells}
}

// ReadTriangles implements Renderer.
func (m *MeshRenderer) ReadTriangles(t []Triangle3) (int, error) {
	if !m.done {
		m.done = true
		for _, tri := range render.ToTriangles(m.s, render.NewMarchingCubesOctree(m.cells)) {
			out := Triangle3{V: [3]r3.Vec{d3.FromV3(tri[0]), d3.FromV3(tri[1]), d3.FromV3(tri[2])}}
			if out.Degenerate(0) {
				continue
			}
			m.buf.Write([]Triangle3{out})
		}
	}
	if m.buf.Len() == 0 {
		return 0, io.EOF
	}
	return m.buf.Read(t), nil
}
