package parts

import (
	"fmt"
	"math"

	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/joint"
	"github.com/bendavis78/corne-case/solid"
)

// FitDepth is how far two assembled parts may run into each other before
// CheckFit reports a collision. Parts that only touch stay below it.
const FitDepth = 0.05

// mate pairs a joint of the cover with the joint of the part it holds.
type mate struct {
	part  func(Set) Part
	cover string
}

var mates = []mate{
	{func(s Set) Part { return s.BottomPlate }, BottomJoint},
	{func(s Set) Part { return s.Button }, ButtonJoint},
	{func(s Set) Part { return s.Switch }, SwitchSlideJoint},
	{func(s Set) Part { return s.MCCover }, ""},
}

// Assemble returns the parts of s placed around the cover, the cover first.
// position is the travel of the power switch along its slot. The
// microcontroller cover is placed at the cover origin.
func Assemble(s Set, position float64) ([]Part, error) {
	out := []Part{s.Cover}
	origin := joint.NewRigid("origin", joint.WorldFrame)
	for _, m := range mates {
		p := m.part(s)
		a := origin
		if m.cover != "" {
			var err error
			if a, err = s.Cover.Joint(m.cover); err != nil {
				return nil, err
			}
		}
		b, err := p.Joint(PartJoint)
		if err != nil {
			return nil, err
		}
		t, err := joint.Connect(a, b, position)
		if err != nil {
			return nil, fmt.Errorf("assemble %s: %w", p.Name, err)
		}
		out = append(out, p.Moved(t))
	}
	return out, nil
}

// FitStep is the largest switch travel between two positions CheckFit
// tests.
const FitStep = 0.5

// TravelPositions returns positions from r.Min to r.Max, both included,
// no more than step apart.
func TravelPositions(r joint.Range, step float64) []float64 {
	n := int(math.Ceil((r.Max - r.Min) / step))
	if n < 1 {
		return []float64{r.Min}
	}
	pos := make([]float64, n+1)
	for i := range pos {
		pos[i] = r.Min + (r.Max-r.Min)*float64(i)/float64(n)
	}
	return pos
}

// CheckFit assembles s with the switch stepped along its travel and fails
// if any two parts run into each other. Only the switch moves, so after
// the first position just the pairs with the switch are tested again.
func CheckFit(s Set) error {
	const op = "fit"
	slide, err := s.Cover.Joint(SwitchSlideJoint)
	if err != nil {
		return err
	}
	for k, pos := range TravelPositions(slide.Range, FitStep) {
		placed, err := Assemble(s, pos)
		if err != nil {
			return err
		}
		for i := range placed {
			for j := i + 1; j < len(placed); j++ {
				if k > 0 && placed[i].Name != SwitchName && placed[j].Name != SwitchName {
					continue
				}
				if solid.Overlap(placed[i].Solid, placed[j].Solid, FitDepth) {
					return fault.New(fault.BooleanOperationFailed, op, "%s collides with %s with the switch at %g",
						placed[i].Name, placed[j].Name, pos)
				}
			}
		}
	}
	return nil
}
