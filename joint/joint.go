// Package joint positions parts relative to each other through named
// coordinate frames.
package joint

import (
	"errors"
	"fmt"
	"math"

	"github.com/bendavis78/corne-case/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrIncompatibleJoints is returned when connecting joints of different
	// kinds or linear joints whose ranges do not overlap.
	ErrIncompatibleJoints = errors.New("incompatible joints")
	// ErrOutOfRange is returned for a slide position outside the travel
	// shared by both linear joints.
	ErrOutOfRange = errors.New("position out of range")
)

// Kind is the constraint a joint imposes.
type Kind int

const (
	// Rigid joints fix the full pose.
	Rigid Kind = iota
	// Linear joints leave one translation free along the frame Z axis.
	Linear
)

func (k Kind) String() string {
	switch k {
	case Rigid:
		return "rigid"
	case Linear:
		return "linear"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Frame is an origin with right handed orthonormal axes.
type Frame struct {
	Origin  r3.Vec
	X, Y, Z r3.Vec
}

// NewFrame returns the frame at origin with the given X and Z directions.
// X is made orthogonal to Z and Y completes the frame as Z×X.
func NewFrame(origin, x, z r3.Vec) Frame {
	z = r3.Unit(z)
	x = r3.Unit(r3.Sub(x, r3.Scale(r3.Dot(x, z), z)))
	return Frame{Origin: origin, X: x, Y: r3.Cross(z, x), Z: z}
}

// WorldFrame is the frame with the origin and axes of the part itself.
var WorldFrame = Frame{X: r3.Vec{X: 1}, Y: r3.Vec{Y: 1}, Z: r3.Vec{Z: 1}}

// Transform returns the transform from frame local coordinates to the
// coordinates the frame is expressed in.
func (f Frame) Transform() d3.Transform {
	return d3.FromAxes(f.Origin, f.X, f.Y, f.Z)
}

// Moved returns the frame with its placement preceded by t.
func (f Frame) Moved(t d3.Transform) Frame {
	return Frame{
		Origin: t.Transform(f.Origin),
		X:      t.Rotate(f.X),
		Y:      t.Rotate(f.Y),
		Z:      t.Rotate(f.Z),
	}
}

// Range is a closed travel interval.
type Range struct {
	Min, Max float64
}

// Contains returns true if v lies within the range.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Intersect returns the overlap of the ranges and false if there is none.
func (r Range) Intersect(b Range) (Range, bool) {
	c := Range{Min: math.Max(r.Min, b.Min), Max: math.Min(r.Max, b.Max)}
	return c, c.Min <= c.Max
}

// Mid returns the center of the range.
func (r Range) Mid() float64 { return (r.Min + r.Max) / 2 }

// Joint is a named attachment frame on a part.
type Joint struct {
	Name  string
	Kind  Kind
	Frame Frame
	// Range is the travel along Frame.Z of a linear joint.
	Range Range
}

// NewRigid returns a rigid joint.
func NewRigid(name string, f Frame) Joint {
	return Joint{Name: name, Kind: Rigid, Frame: f}
}

// NewLinear returns a linear joint sliding along f.Z over [min, max].
func NewLinear(name string, f Frame, min, max float64) Joint {
	return Joint{Name: name, Kind: Linear, Frame: f, Range: Range{Min: min, Max: max}}
}

// Connect returns the transform that places b's part so that b's frame
// coincides with a's frame. For linear joints a's frame is first slid by
// position along its Z axis; position is ignored for rigid joints.
func Connect(a, b Joint, position float64) (d3.Transform, error) {
	if a.Kind != b.Kind {
		return d3.Transform{}, fmt.Errorf("connect %s (%v) to %s (%v): %w", a.Name, a.Kind, b.Name, b.Kind, ErrIncompatibleJoints)
	}
	fa := a.Frame
	if a.Kind == Linear {
		travel, ok := a.Range.Intersect(b.Range)
		if !ok {
			return d3.Transform{}, fmt.Errorf("connect %s to %s: ranges %v and %v do not overlap: %w", a.Name, b.Name, a.Range, b.Range, ErrIncompatibleJoints)
		}
		if !travel.Contains(position) {
			return d3.Transform{}, fmt.Errorf("connect %s to %s: position %g outside %v: %w", a.Name, b.Name, position, travel, ErrOutOfRange)
		}
		fa.Origin = r3.Add(fa.Origin, r3.Scale(position, fa.Z))
	}
	inv, ok := b.Frame.Transform().Inv()
	if !ok {
		return d3.Transform{}, fmt.Errorf("connect %s to %s: singular frame: %w", a.Name, b.Name, ErrIncompatibleJoints)
	}
	return fa.Transform().Mul(inv), nil
}
