// Package solid builds and combines kernel solids. It wraps sdfx with the
// argument checks and overlap tests a construction pipeline needs.
package solid

import (
	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/internal/d3"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Slab extrudes face between heights z0 and z1.
func Slab(face sdf.SDF2, z0, z1 float64) (sdf.SDF3, error) {
	if z1 <= z0 {
		return nil, fault.New(fault.DegenerateProfile, "slab", "empty height range [%g, %g]", z0, z1)
	}
	s := sdf.Extrude3D(face, z1-z0)
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: (z0 + z1) / 2})), nil
}

// RoundedSlab extrudes face between z0 and z1 rounding the top and bottom
// edges by round. The outline of face is kept: the rounding is taken
// from its inside.
func RoundedSlab(face sdf.SDF2, z0, z1, round float64) (sdf.SDF3, error) {
	const op = "rounded slab"
	if z1-z0 < 2*round {
		return nil, fault.New(fault.DegenerateProfile, op, "height %g too small for rounding %g", z1-z0, round)
	}
	s, err := sdf.ExtrudeRounded3D(sdf.Offset2D(face, -round), z1-z0, round)
	if err != nil {
		return nil, fault.Wrap(fault.DegenerateProfile, op, err)
	}
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: (z0 + z1) / 2})), nil
}

// Block returns the axis aligned box spanning min to max.
func Block(min, max r3.Vec) (sdf.SDF3, error) {
	size := r3.Sub(max, min)
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fault.New(fault.DegenerateProfile, "block", "empty box from %v to %v", min, max)
	}
	s, err := sdf.Box3D(d3.ToV3(size), 0)
	if err != nil {
		return nil, fault.Wrap(fault.DegenerateProfile, "block", err)
	}
	return sdf.Transform3D(s, sdf.Translate3d(d3.ToV3(d3.Box{Min: min, Max: max}.Center()))), nil
}

// Post returns a vertical cylinder of radius r centered on c, between z0 and z1.
func Post(c r2.Vec, r, z0, z1 float64) (sdf.SDF3, error) {
	if z1 <= z0 {
		return nil, fault.New(fault.DegenerateProfile, "post", "empty height range [%g, %g]", z0, z1)
	}
	s, err := sdf.Cylinder3D(z1-z0, r, 0)
	if err != nil {
		return nil, fault.Wrap(fault.DegenerateProfile, "post", err)
	}
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{X: c.X, Y: c.Y, Z: (z0 + z1) / 2})), nil
}

// Union joins body and parts. Every part must overlap the body.
func Union(name string, body sdf.SDF3, parts ...sdf.SDF3) (sdf.SDF3, error) {
	for i, p := range parts {
		if !Intersects(body, p) {
			return nil, fault.New(fault.BooleanOperationFailed, name, "operand %d does not touch the body", i)
		}
	}
	return sdf.Union3D(append([]sdf.SDF3{body}, parts...)...), nil
}

// Cut removes tools from body. Every tool must remove material.
func Cut(name string, body sdf.SDF3, tools ...sdf.SDF3) (sdf.SDF3, error) {
	if len(tools) == 0 {
		return nil, fault.New(fault.EmptyGeometrySelection, name, "no cutting tools")
	}
	for i, t := range tools {
		if !Intersects(body, t) {
			return nil, fault.New(fault.BooleanOperationFailed, name, "tool %d removes no material", i)
		}
	}
	tool := tools[0]
	if len(tools) > 1 {
		tool = sdf.Union3D(tools...)
	}
	return sdf.Difference3D(body, tool), nil
}

// Bounds returns the bounding box of s.
func Bounds(s sdf.SDF3) d3.Box { return d3.FromBox3(s.BoundingBox()) }
