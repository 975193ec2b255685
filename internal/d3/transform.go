package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is an affine 3D transformation: a 3x3 linear part followed by
// a translation. The zero value of Transform is the identity transform.
type Transform struct {
	// The identity is subtracted from the diagonal so that
	//  Transform{} == identity
	// and tests such as
	//  if T == (Transform{})
	// skip work for untransformed geometry.
	d00, x01, x02, x03 float64
	x10, d11, x12, x13 float64
	x20, x21, d22, x23 float64
}

// NewTransform returns a Transform populated with 12 values in row-major
// form: three rows of a 3x3 linear part each followed by a translation.
func NewTransform(a []float64) Transform {
	if len(a) != 12 {
		panic("Transform is initialized with 12 values")
	}
	return Transform{
		d00: a[0] - 1, x01: a[1], x02: a[2], x03: a[3],
		x10: a[4], d11: a[5] - 1, x12: a[6], x13: a[7],
		x20: a[8], x21: a[9], d22: a[10] - 1, x23: a[11],
	}
}

// FromAxes returns the Transform that maps the unit axes onto x, y and z
// and the origin onto origin.
func FromAxes(origin, x, y, z r3.Vec) Transform {
	return NewTransform([]float64{
		x.X, y.X, z.X, origin.X,
		x.Y, y.Y, z.Y, origin.Y,
		x.Z, y.Z, z.Z, origin.Z,
	})
}

// Translation returns a pure translation by v.
func Translation(v r3.Vec) Transform {
	return Transform{x03: v.X, x13: v.Y, x23: v.Z}
}

// Scaling returns a scaling about the origin. Negative factors mirror.
func Scaling(factor r3.Vec) Transform {
	return Transform{d00: factor.X - 1, d11: factor.Y - 1, d22: factor.Z - 1}
}

// RotationZ returns a counter-clockwise rotation about the Z axis by angle radians.
func RotationZ(angle float64) Transform {
	s, c := math.Sincos(angle)
	return Transform{d00: c - 1, x01: -s, x10: s, d11: c - 1}
}

// Transform applies the Transform to the argument point.
func (t Transform) Transform(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: (t.d00+1)*v.X + t.x01*v.Y + t.x02*v.Z + t.x03,
		Y: t.x10*v.X + (t.d11+1)*v.Y + t.x12*v.Z + t.x13,
		Z: t.x20*v.X + t.x21*v.Y + (t.d22+1)*v.Z + t.x23,
	}
}

// Rotate applies only the linear part of the Transform to a direction.
func (t Transform) Rotate(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: (t.d00+1)*v.X + t.x01*v.Y + t.x02*v.Z,
		Y: t.x10*v.X + (t.d11+1)*v.Y + t.x12*v.Z,
		Z: t.x20*v.X + t.x21*v.Y + (t.d22+1)*v.Z,
	}
}

// Origin returns the image of the origin.
func (t Transform) Origin() r3.Vec { return r3.Vec{X: t.x03, Y: t.x13, Z: t.x23} }

// Translate returns t followed by a translation by v.
func (t Transform) Translate(v r3.Vec) Transform {
	t.x03 += v.X
	t.x13 += v.Y
	t.x23 += v.Z
	return t
}

// Mul returns the composition t∘b: b is applied first, then t.
func (t Transform) Mul(b Transform) Transform {
	if t == (Transform{}) {
		return b
	}
	if b == (Transform{}) {
		return t
	}
	x00, x11, x22 := t.d00+1, t.d11+1, t.d22+1
	y00, y11, y22 := b.d00+1, b.d11+1, b.d22+1
	var m Transform
	m.d00 = x00*y00 + t.x01*b.x10 + t.x02*b.x20 - 1
	m.x01 = x00*b.x01 + t.x01*y11 + t.x02*b.x21
	m.x02 = x00*b.x02 + t.x01*b.x12 + t.x02*y22
	m.x03 = x00*b.x03 + t.x01*b.x13 + t.x02*b.x23 + t.x03

	m.x10 = t.x10*y00 + x11*b.x10 + t.x12*b.x20
	m.d11 = t.x10*b.x01 + x11*y11 + t.x12*b.x21 - 1
	m.x12 = t.x10*b.x02 + x11*b.x12 + t.x12*y22
	m.x13 = t.x10*b.x03 + x11*b.x13 + t.x12*b.x23 + t.x13

	m.x20 = t.x20*y00 + t.x21*b.x10 + x22*b.x20
	m.x21 = t.x20*b.x01 + t.x21*y11 + x22*b.x21
	m.d22 = t.x20*b.x02 + t.x21*b.x12 + x22*y22 - 1
	m.x23 = t.x20*b.x03 + t.x21*b.x13 + x22*b.x23 + t.x23
	return m
}

// Det returns the determinant of the linear part.
func (t Transform) Det() float64 {
	x00, x11, x22 := t.d00+1, t.d11+1, t.d22+1
	return x00*(x11*x22-t.x12*t.x21) -
		t.x01*(t.x10*x22-t.x12*t.x20) +
		t.x02*(t.x10*t.x21-x11*t.x20)
}

// Inv returns the inverse transform such that t.Inv().Mul(t) is the identity.
// The second return value is false for singular transforms.
func (t Transform) Inv() (Transform, bool) {
	if t == (Transform{}) {
		return t, true
	}
	det := t.Det()
	if math.Abs(det) < 1e-12 {
		return Transform{}, false
	}
	d := 1 / det
	x00, x11, x22 := t.d00+1, t.d11+1, t.d22+1
	// adjugate of the linear part
	a00 := (x11*x22 - t.x12*t.x21) * d
	a01 := (t.x02*t.x21 - t.x01*x22) * d
	a02 := (t.x01*t.x12 - t.x02*x11) * d
	a10 := (t.x12*t.x20 - t.x10*x22) * d
	a11 := (x00*x22 - t.x02*t.x20) * d
	a12 := (t.x02*t.x10 - x00*t.x12) * d
	a20 := (t.x10*t.x21 - x11*t.x20) * d
	a21 := (t.x01*t.x20 - x00*t.x21) * d
	a22 := (x00*x11 - t.x01*t.x10) * d
	return NewTransform([]float64{
		a00, a01, a02, -(a00*t.x03 + a01*t.x13 + a02*t.x23),
		a10, a11, a12, -(a10*t.x03 + a11*t.x13 + a12*t.x23),
		a20, a21, a22, -(a20*t.x03 + a21*t.x13 + a22*t.x23),
	}), true
}

// Equals tests the equality of the Transforms to within a tolerance.
func (t Transform) Equals(b Transform, tolerance float64) bool {
	ta, tb := t.SliceCopy(), b.SliceCopy()
	for i := range ta {
		if math.Abs(ta[i]-tb[i]) > tolerance {
			return false
		}
	}
	return true
}

// SliceCopy returns a copy of the Transform's data
// in row major storage format. It returns 12 elements.
func (t Transform) SliceCopy() []float64 {
	return []float64{
		t.d00 + 1, t.x01, t.x02, t.x03,
		t.x10, t.d11 + 1, t.x12, t.x13,
		t.x20, t.x21, t.d22 + 1, t.x23,
	}
}
