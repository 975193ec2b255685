package parts

import (
	corne "github.com/bendavis78/corne-case"
	"github.com/bendavis78/corne-case/joint"
	"github.com/bendavis78/corne-case/sketch"
	"github.com/bendavis78/corne-case/solid"
	"github.com/deadsy/sdfx/sdf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

type switchState struct {
	profile sketch.Profile
	body    sdf.SDF3
}

var switchStages = []stage[switchState]{
	{"profile", switchProfile},
	{"plate", switchPlate},
	{"sleeve", switchSleeve},
}

// PowerSwitch returns the slider that rides in the switch slot. The plate
// lies in the XY plane on y<=0 with its grip tab pointing down -Y.
func (b *Builder) PowerSwitch() (Part, error) {
	s, err := runStages(b, SwitchName, switchState{}, switchStages)
	if err != nil {
		return Part{}, err
	}
	sw := b.cfg.Switch
	frame := joint.NewFrame(r3.Vec{Y: -sw.PlateThickness}, r3.Vec{Y: 1}, r3.Vec{X: -1})
	return Part{
		Name:    SwitchName,
		Solid:   s.body,
		Joints:  map[string]joint.Joint{PartJoint: joint.NewLinear(PartJoint, frame, -sw.SlideRange/2, sw.SlideRange/2)},
		Feature: thinnest(sw.Groove.Y, sw.SleeveFloor, sw.NubLength, (sw.SleeveWidth-sw.SleeveBore)/2),
	}, nil
}

// SwitchProfile returns the outline of the slider: the plate, the tab
// through the wall and the grip nub.
func SwitchProfile(cfg corne.Config) sketch.Profile {
	sw := cfg.Switch
	tab := -sw.PlateThickness - sw.TabLength
	nub := tab - sw.NubLength
	return sketch.Symmetric(
		r2.Vec{},
		r2.Vec{X: -sw.PlateWidth / 2},
		r2.Vec{X: -sw.PlateWidth / 2, Y: -sw.PlateThickness},
		r2.Vec{X: -sw.TabWidth / 2, Y: -sw.PlateThickness},
		r2.Vec{X: -sw.TabWidth / 2, Y: tab},
		r2.Vec{X: -sw.NubWidth / 2, Y: tab},
		r2.Vec{X: -sw.NubWidth / 2, Y: nub},
		r2.Vec{Y: nub},
	)
}

func switchProfile(cfg corne.Config, s switchState) (switchState, error) {
	s.profile = SwitchProfile(cfg)
	return s, s.profile.Validate()
}

func switchPlate(cfg corne.Config, s switchState) (switchState, error) {
	sw := cfg.Switch
	face, err := sketch.Face(s.profile)
	if err != nil {
		return s, err
	}
	groove, err := sketch.Face(sketch.NewBuilder(r2.Vec{X: -sw.Groove.X / 2, Y: -sw.PlateThickness - sw.Groove.Y}).
		Line(r2.Vec{X: sw.Groove.X}).
		Line(r2.Vec{Y: sw.Groove.Y}).
		Line(r2.Vec{X: -sw.Groove.X}).
		Close())
	if err != nil {
		return s, err
	}
	s.body, err = solid.Slab(sdf.Difference2D(face, groove), 0, sw.Height)
	return s, err
}

func switchSleeve(cfg corne.Config, s switchState) (switchState, error) {
	sw := cfg.Switch
	sleeve, err := solid.Block(
		r3.Vec{X: -sw.SleeveWidth / 2, Y: -sw.PlateThickness},
		r3.Vec{X: sw.SleeveWidth / 2, Z: sw.SleeveHeight},
	)
	if err != nil {
		return s, err
	}
	if s.body, err = solid.Union("sleeve", s.body, sleeve); err != nil {
		return s, err
	}
	bore, err := solid.Block(
		r3.Vec{X: -sw.SleeveBore / 2, Y: -sw.PlateThickness - eps, Z: sw.SleeveFloor},
		r3.Vec{X: sw.SleeveBore / 2, Y: eps, Z: sw.SleeveHeight + eps},
	)
	if err != nil {
		return s, err
	}
	s.body, err = solid.Cut("sleeve bore", s.body, bore)
	return s, err
}
