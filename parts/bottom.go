package parts

import (
	corne "github.com/bendavis78/corne-case"
	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/joint"
	"github.com/bendavis78/corne-case/sketch"
	"github.com/bendavis78/corne-case/solid"
	"github.com/deadsy/sdfx/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// PartJoint is the joint name every loose part connects with.
const PartJoint = "joint"

type plateState struct {
	outline sketch.Profile
	body    sdf.SDF3
}

var bottomStages = []stage[plateState]{
	{"plate", bottomPlate},
	{"inserts", addInserts},
	{"feet", cutFeet},
	{"mirror", mirrorPlate},
}

// BottomPlate returns the plate closing the board pocket. It is mirrored
// so that its outside face prints on the bed.
func (b *Builder) BottomPlate() (Part, error) {
	s, err := runStages(b, BottomPlateName, plateState{}, bottomStages)
	if err != nil {
		return Part{}, err
	}
	bt := b.cfg.Bottom
	return Part{
		Name:    BottomPlateName,
		Solid:   s.body,
		Joints:  map[string]joint.Joint{PartJoint: joint.NewRigid(PartJoint, joint.WorldFrame)},
		Feature: thinnest(bt.Thickness, bt.FootDepth, bt.BossHeight/2, bt.BossRadius-bt.BossBore),
	}, nil
}

func bottomPlate(cfg corne.Config, s plateState) (plateState, error) {
	outline, err := corne.BoardOutline(cfg)
	if err != nil {
		return s, err
	}
	face, err := sketch.Face(outline)
	if err != nil {
		return s, err
	}
	s.outline = outline
	s.body, err = solid.Slab(face, 0, cfg.Bottom.Thickness)
	return s, err
}

// addInserts adds a boss for a threaded insert over every screw, centered
// on the top face.
func addInserts(cfg corne.Config, s plateState) (plateState, error) {
	screws, err := corne.ScrewPlacements(cfg)
	if err != nil {
		return s, err
	}
	bt := cfg.Bottom
	z0, z1 := bt.Thickness-bt.BossHeight/2, bt.Thickness+bt.BossHeight/2
	var bosses, bores []sdf.SDF3
	for _, sp := range screws {
		boss, err := solid.Post(sp.Pos, bt.BossRadius, z0, z1)
		if err != nil {
			return s, err
		}
		bore, err := solid.Post(sp.Pos, bt.BossBore, z0, z1+eps)
		if err != nil {
			return s, err
		}
		bosses, bores = append(bosses, boss), append(bores, bore)
	}
	if s.body, err = solid.Union("insert bosses", s.body, bosses...); err != nil {
		return s, err
	}
	s.body, err = solid.Cut("insert bores", s.body, bores...)
	return s, err
}

// FootPositions returns the centers of the foot recesses: one inset from
// each end of the outermost left and right edges and one above the
// lowest vertex.
func FootPositions(cfg corne.Config, outline sketch.Profile) ([]r2.Vec, error) {
	edges := outline.VerticalEdges()
	if len(edges) < 2 {
		return nil, fault.New(fault.EmptyGeometrySelection, "feet", "outline has %d vertical edges, need 2", len(edges))
	}
	left, right := edges[0], edges[len(edges)-1]
	o := cfg.Bottom.FootInset
	return []r2.Vec{
		r2.Add(left.Low(), r2.Vec{X: o, Y: o}),
		r2.Add(left.High(), r2.Vec{X: o, Y: -o}),
		r2.Add(right.High(), r2.Vec{X: -o, Y: -o}),
		r2.Add(right.Low(), r2.Vec{X: -o, Y: o}),
		r2.Add(outline.Lowest(), cfg.Bottom.CenterFoot),
	}, nil
}

func cutFeet(cfg corne.Config, s plateState) (plateState, error) {
	feet, err := FootPositions(cfg, s.outline)
	if err != nil {
		return s, err
	}
	var tools []sdf.SDF3
	for _, f := range feet {
		t, err := solid.Post(f, cfg.Bottom.FootRadius, -eps, cfg.Bottom.FootDepth)
		if err != nil {
			return s, err
		}
		tools = append(tools, t)
	}
	s.body, err = solid.Cut("foot recesses", s.body, tools...)
	return s, err
}

func mirrorPlate(_ corne.Config, s plateState) (plateState, error) {
	s.body = solid.Mirror(s.body)
	return s, nil
}
