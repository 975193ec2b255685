// Package matter models how printed parts deviate from their design.
package matter

import "github.com/deadsy/sdfx/sdf"

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{Name: "PLA", shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
	// PETG shrinks slightly more than PLA and strings into holes.
	PETG = ViscousMaterial{Name: "PETG", shrink: 0.4e-2, pullShrink: .5}
)

// ViscousMaterial is a filament that shrinks as it cools and pulls
// inward around holes and pockets.
type ViscousMaterial struct {
	Name string
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// Lookup returns the material with the given name.
func Lookup(name string) (ViscousMaterial, bool) {
	for _, m := range []ViscousMaterial{PLA, PETG} {
		if m.Name == name {
			return m, true
		}
	}
	return ViscousMaterial{}, false
}

// Scale returns s enlarged so it cools down to its design size.
func (m ViscousMaterial) Scale(s sdf.SDF3) sdf.SDF3 {
	return sdf.ScaleUniform3D(s, m.ScaleFactor())
}

// ScaleFactor is the uniform enlargement applied by Scale.
func (m ViscousMaterial) ScaleFactor() float64 { return 1 / (1 - m.shrink) }

// InternalDimScale returns the design size of a hole or pocket edge that
// prints with size real.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}

// HoleRadius returns the design radius of a round hole that prints with radius r.
func (m ViscousMaterial) HoleRadius(r float64) float64 {
	return m.InternalDimScale(2*r) / 2
}
