package parts

import (
	corne "github.com/bendavis78/corne-case"
	"github.com/bendavis78/corne-case/joint"
	"github.com/bendavis78/corne-case/sketch"
	"github.com/bendavis78/corne-case/solid"
	"github.com/deadsy/sdfx/sdf"
)

type mcCoverState struct {
	outline sketch.Profile
	body    sdf.SDF3
}

var mcCoverStages = []stage[mcCoverState]{
	{"outline", mcCoverOutline},
	{"plate", mcCoverPlate},
	{"screw holes", mcCoverScrews},
}

// MCCover returns the plate screwed over the display window. It is
// modelled in cover coordinates, lying on the key face.
func (b *Builder) MCCover() (Part, error) {
	s, err := runStages(b, MCCoverName, mcCoverState{}, mcCoverStages)
	if err != nil {
		return Part{}, err
	}
	return Part{
		Name:    MCCoverName,
		Solid:   s.body,
		Joints:  map[string]joint.Joint{PartJoint: joint.NewRigid(PartJoint, joint.WorldFrame)},
		Feature: b.cfg.MCCover.Thickness,
	}, nil
}

// MCCoverOutline returns the display hole grown by the hull thickness and
// rounded like the housing.
func MCCoverOutline(cfg corne.Config) (sketch.Profile, error) {
	hole, err := corne.DisplayHole(cfg)
	if err != nil {
		return sketch.Profile{}, err
	}
	grown, err := hole.Offset(cfg.Cover.Hull)
	if err != nil {
		return sketch.Profile{}, err
	}
	return roundLikeHousing(grown, cfg.Cover.Fillet, "mc cover outline")
}

func mcCoverOutline(cfg corne.Config, s mcCoverState) (mcCoverState, error) {
	var err error
	s.outline, err = MCCoverOutline(cfg)
	return s, err
}

func mcCoverPlate(cfg corne.Config, s mcCoverState) (mcCoverState, error) {
	face, err := sketch.Face(s.outline)
	if err != nil {
		return s, err
	}
	s.body, err = solid.Slab(face, -cfg.MCCover.Thickness, 0)
	return s, err
}

func mcCoverScrews(cfg corne.Config, s mcCoverState) (mcCoverState, error) {
	var tools []sdf.SDF3
	for _, sp := range corne.MCCoverScrewPlacements(cfg) {
		t, err := solid.Post(sp.Pos, cfg.MCCover.ScrewRadius, -cfg.MCCover.Thickness-eps, eps)
		if err != nil {
			return s, err
		}
		tools = append(tools, t)
	}
	var err error
	s.body, err = solid.Cut("mc cover screw holes", s.body, tools...)
	return s, err
}
