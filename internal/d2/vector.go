package d2

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

// EqualWithin returns true if the components of a and b differ by at most tol.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Rotate rotates v counter-clockwise by angle radians about the origin.
func Rotate(v r2.Vec, angle float64) r2.Vec {
	s, c := math.Sincos(angle)
	return r2.Vec{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y}
}

// Polar returns the cartesian point at distance r and angle theta (radians).
func Polar(r, theta float64) r2.Vec {
	s, c := math.Sincos(theta)
	return r2.Vec{X: r * c, Y: r * s}
}

// Perp returns v rotated 90 degrees clockwise.
func Perp(v r2.Vec) r2.Vec { return r2.Vec{X: v.Y, Y: -v.X} }

// ToV2 converts to the kernel vector type.
func ToV2(v r2.Vec) v2.Vec { return v2.Vec{X: v.X, Y: v.Y} }

// FromV2 converts from the kernel vector type.
func FromV2(v v2.Vec) r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }

// Set is an ordered set of points.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Bounds returns the smallest box containing the set.
func (a Set) Bounds() Box {
	return Box{Min: a.Min(), Max: a.Max()}
}

// V2 converts the set to kernel vectors.
func (a Set) V2() []v2.Vec {
	out := make([]v2.Vec, len(a))
	for i, v := range a {
		out[i] = ToV2(v)
	}
	return out
}
