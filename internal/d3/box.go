package d3

import (
	"github.com/deadsy/sdfx/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Box is a 3d bounding box.
type Box r3.Box

// FromBox3 converts a kernel bounding box.
func FromBox3(b sdf.Box3) Box {
	return Box{Min: FromV3(b.Min), Max: FromV3(b.Max)}
}

// Box3 converts to a kernel bounding box.
func (a Box) Box3() sdf.Box3 {
	return sdf.Box3{Min: ToV3(a.Min), Max: ToV3(a.Max)}
}

// Include enlarges a 3d box to include a point.
func (a Box) Include(v r3.Vec) Box {
	return Box{Min: MinElem(a.Min, v), Max: MaxElem(a.Max, v)}
}

// Intersect returns the overlap of two boxes. The result is Empty when
// the boxes are disjoint.
func (a Box) Intersect(b Box) Box {
	return Box{Min: MaxElem(a.Min, b.Min), Max: MinElem(a.Max, b.Max)}
}

// Empty returns true if the box has no volume.
func (a Box) Empty() bool {
	return a.Max.X <= a.Min.X || a.Max.Y <= a.Min.Y || a.Max.Z <= a.Min.Z
}

// Size returns the size of a 3d box.
func (a Box) Size() r3.Vec {
	return r3.Sub(a.Max, a.Min)
}

// Center returns the center of a 3d box.
func (a Box) Center() r3.Vec {
	return r3.Add(a.Min, r3.Scale(0.5, a.Size()))
}

// Contains checks if the 3d box contains the given vector (considering bounds as inside).
func (a Box) Contains(v r3.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y && a.Min.Z <= v.Z &&
		v.X <= a.Max.X && v.Y <= a.Max.Y && v.Z <= a.Max.Z
}

// ContainsBox returns true if b lies within a, within tolerance tol.
func (a Box) ContainsBox(b Box, tol float64) bool {
	return b.Min.X >= a.Min.X-tol && b.Min.Y >= a.Min.Y-tol && b.Min.Z >= a.Min.Z-tol &&
		b.Max.X <= a.Max.X+tol && b.Max.Y <= a.Max.Y+tol && b.Max.Z <= a.Max.Z+tol
}

// Vertices returns a slice of 3d box corner vertices.
func (a Box) Vertices() Set {
	v := make([]r3.Vec, 8)
	v[0] = a.Min
	v[1] = r3.Vec{X: a.Min.X, Y: a.Min.Y, Z: a.Max.Z}
	v[2] = r3.Vec{X: a.Min.X, Y: a.Max.Y, Z: a.Min.Z}
	v[3] = r3.Vec{X: a.Min.X, Y: a.Max.Y, Z: a.Max.Z}
	v[4] = r3.Vec{X: a.Max.X, Y: a.Min.Y, Z: a.Min.Z}
	v[5] = r3.Vec{X: a.Max.X, Y: a.Min.Y, Z: a.Max.Z}
	v[6] = r3.Vec{X: a.Max.X, Y: a.Max.Y, Z: a.Min.Z}
	v[7] = a.Max
	return v
}

// Transform returns the box enclosing the transformed corners of a.
func (a Box) Transform(t Transform) Box {
	if t == (Transform{}) {
		return a
	}
	vs := a.Vertices()
	for i := range vs {
		vs[i] = t.Transform(vs[i])
	}
	return vs.Bounds()
}
