package parts

import (
	"math"

	corne "github.com/bendavis78/corne-case"
	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/internal/d3"
	"github.com/bendavis78/corne-case/joint"
	"github.com/bendavis78/corne-case/sketch"
	"github.com/bendavis78/corne-case/solid"
	"github.com/deadsy/sdfx/sdf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cover joint names.
const (
	SwitchSlideJoint = "switch_slide"
	ButtonJoint      = "button"
	BottomJoint      = "bottom"
)

// coverState is carried between cover stages. The cover is modelled with
// its key face on z=0 and the board pocket opening at z=thickness.
type coverState struct {
	outline sketch.Profile // board outline
	base    sketch.Profile // shell outline
	body    sdf.SDF3
	insetZ  float64 // floor of the board pocket
	hole    sketch.Profile
	slot    r3.Vec // mouth of the switch slot on the inner wall
	joints  map[string]joint.Joint
}

// withJoint returns s with j added, leaving the joints of s untouched.
func (s coverState) withJoint(j joint.Joint) coverState {
	joints := make(map[string]joint.Joint, len(s.joints)+1)
	for k, v := range s.joints {
		joints[k] = v
	}
	joints[j.Name] = j
	s.joints = joints
	return s
}

var coverStages = []stage[coverState]{
	{"base sketch", coverBaseSketch},
	{"body", coverBody},
	{"mc housing", addMCHousing},
	{"board inset", cutInset},
	{"key holes", cutKeyHoles},
	{"display hole", cutDisplayHole},
	{"screw holes", cutScrewHoles},
	{"switch slot", cutSwitchSlot},
	{"button slot", cutButtonSlot},
	{"bottom joint", addBottomJoint},
}

// Cover returns the top shell of the case.
func (b *Builder) Cover() (Part, error) {
	s, err := runStages(b, CoverName, coverState{}, coverStages)
	if err != nil {
		return Part{}, err
	}
	c := b.cfg.Cover
	feature := thinnest(c.KeyPocketDepth, c.CounterDepth, c.CounterBore-b.cfg.ScrewRadius,
		c.Hull, c.Thickness-c.InsetDepth)
	return Part{Name: CoverName, Solid: s.body, Joints: s.joints, Feature: feature}, nil
}

// OuterCorner selects convex corners that were not rounded yet.
var OuterCorner = sketch.All(sketch.IsConvex, sketch.Not(sketch.IsRounded))

// CoverOutline returns the shell outline: the board outline grown by the
// hull thickness, with long edged corners rounded by the fillet radius and
// the remaining outer corners by the outer fillet radius.
func CoverOutline(cfg corne.Config) (sketch.Profile, error) {
	outline, err := corne.BoardOutline(cfg)
	if err != nil {
		return sketch.Profile{}, err
	}
	return coverOutline(cfg, outline)
}

func coverOutline(cfg corne.Config, outline sketch.Profile) (sketch.Profile, error) {
	const op = "cover outline"
	c := cfg.Cover
	grown, err := outline.Offset(c.Hull)
	if err != nil {
		return sketch.Profile{}, err
	}
	rounded, n := grown.Round(sketch.EdgesLongerThan(c.Fillet), c.Fillet, sketch.DefaultFacets)
	if n == 0 {
		return sketch.Profile{}, fault.New(fault.EmptyGeometrySelection, op, "no corner with edges longer than %g", c.Fillet)
	}
	rounded, n = rounded.Round(OuterCorner, c.OuterFillet, sketch.DefaultFacets)
	if n == 0 {
		return sketch.Profile{}, fault.New(fault.EmptyGeometrySelection, op, "no outer corner left to round")
	}
	return rounded, nil
}

func coverBaseSketch(cfg corne.Config, s coverState) (coverState, error) {
	outline, err := corne.BoardOutline(cfg)
	if err != nil {
		return s, err
	}
	base, err := coverOutline(cfg, outline)
	if err != nil {
		return s, err
	}
	s.outline, s.base = outline, base
	return s, nil
}

func coverBody(cfg corne.Config, s coverState) (coverState, error) {
	face, err := sketch.Face(s.base)
	if err != nil {
		return s, err
	}
	s.body, err = solid.RoundedSlab(face, 0, cfg.Cover.Thickness, cfg.Cover.Fillet)
	return s, err
}

// MCHousing returns the raised housing outline with its top corners and
// its lowest corner rounded by the cover fillet radius.
func MCHousing(cfg corne.Config) (sketch.Profile, error) {
	return roundLikeHousing(corne.MCHousingOutline(cfg), cfg.Cover.Fillet, "mc housing")
}

// roundLikeHousing rounds the top corners and the lowest corner of p.
func roundLikeHousing(p sketch.Profile, radius float64, op string) (sketch.Profile, error) {
	var sel []sketch.Predicate
	for _, v := range p.Top() {
		sel = append(sel, sketch.At(v))
	}
	sel = append(sel, sketch.At(p.Lowest()))
	want := len(p.Select(sketch.Any(sel...)))
	rounded, n := p.Round(sketch.Any(sel...), radius, sketch.DefaultFacets)
	if n == 0 || n != want {
		return sketch.Profile{}, fault.New(fault.EmptyGeometrySelection, op, "rounded %d of %d selected corners", n, want)
	}
	return rounded, nil
}

func addMCHousing(cfg corne.Config, s coverState) (coverState, error) {
	housing, err := MCHousing(cfg)
	if err != nil {
		return s, err
	}
	face, err := sketch.Face(housing)
	if err != nil {
		return s, err
	}
	slab, err := solid.Slab(face, 0, cfg.Cover.Thickness/2)
	if err != nil {
		return s, err
	}
	s.body, err = solid.Union("mc housing", s.body, slab)
	return s, err
}

func cutInset(cfg corne.Config, s coverState) (coverState, error) {
	face, err := sketch.Face(s.outline)
	if err != nil {
		return s, err
	}
	s.insetZ = cfg.Cover.Thickness - cfg.Cover.InsetDepth
	inset, err := solid.Slab(face, s.insetZ, cfg.Cover.Thickness+eps)
	if err != nil {
		return s, err
	}
	s.body, err = solid.Cut("board inset", s.body, inset)
	return s, err
}

// keyTools returns a box of the given size under every key placement
// spanning z0 to z1.
func keyTools(keys []corne.Placement, size r2.Vec, z0, z1 float64) ([]sdf.SDF3, error) {
	box, err := solid.Block(r3.Vec{X: -size.X / 2, Y: -size.Y / 2, Z: z0}, r3.Vec{X: size.X / 2, Y: size.Y / 2, Z: z1})
	if err != nil {
		return nil, err
	}
	tools := make([]sdf.SDF3, len(keys))
	for i, k := range keys {
		tools[i] = solid.Place(box, placement(k))
	}
	return tools, nil
}

// placement converts a planar placement to a transform.
func placement(p corne.Placement) d3.Transform {
	return d3.RotationZ(p.Angle * math.Pi / 180).Translate(r3.Vec{X: p.Pos.X, Y: p.Pos.Y})
}

func cutKeyHoles(cfg corne.Config, s coverState) (coverState, error) {
	keys, err := corne.KeyPlacements(cfg)
	if err != nil {
		return s, err
	}
	c := cfg.Cover
	pockets, err := keyTools(keys, c.KeyPocket, s.insetZ-c.KeyPocketDepth, s.insetZ+eps)
	if err != nil {
		return s, err
	}
	if s.body, err = solid.Cut("key pockets", s.body, pockets...); err != nil {
		return s, err
	}
	holes, err := keyTools(keys, c.KeyHole, -eps, s.insetZ)
	if err != nil {
		return s, err
	}
	s.body, err = solid.Cut("key holes", s.body, holes...)
	return s, err
}

func cutDisplayHole(cfg corne.Config, s coverState) (coverState, error) {
	hole, err := corne.DisplayHole(cfg)
	if err != nil {
		return s, err
	}
	face, err := sketch.Face(hole)
	if err != nil {
		return s, err
	}
	tool, err := solid.Slab(face, -eps, cfg.Cover.Thickness+eps)
	if err != nil {
		return s, err
	}
	s.hole = hole
	s.body, err = solid.Cut("display hole", s.body, tool)
	return s, err
}

func cutScrewHoles(cfg corne.Config, s coverState) (coverState, error) {
	screws, err := corne.ScrewPlacements(cfg)
	if err != nil {
		return s, err
	}
	c := cfg.Cover
	var tools []sdf.SDF3
	for _, sp := range screws {
		hole, err := solid.Post(sp.Pos, cfg.ScrewRadius, s.insetZ-c.Thickness/2, s.insetZ+eps)
		if err != nil {
			return s, err
		}
		bore, err := solid.Post(sp.Pos, c.CounterBore, s.insetZ-c.CounterDepth, s.insetZ+eps)
		if err != nil {
			return s, err
		}
		tools = append(tools, hole, bore)
	}
	if s.body, err = solid.Cut("screw holes", s.body, tools...); err != nil {
		return s, err
	}
	tools = tools[:0]
	for _, sp := range corne.MCCoverScrewPlacements(cfg) {
		hole, err := solid.Post(sp.Pos, cfg.MCCover.ScrewRadius, -eps, c.Thickness+eps)
		if err != nil {
			return s, err
		}
		tools = append(tools, hole)
	}
	s.body, err = solid.Cut("mc cover screw holes", s.body, tools...)
	return s, err
}

// wallBox returns a box through the wall left of the slot mouth: depth
// deep along -X, centered on the mouth along Y and rising from the key face.
func wallBox(mouth r3.Vec, width, height, depth float64) (sdf.SDF3, error) {
	return solid.Block(
		r3.Vec{X: mouth.X - depth, Y: mouth.Y - width/2, Z: mouth.Z - eps},
		r3.Vec{X: mouth.X + eps, Y: mouth.Y + width/2, Z: mouth.Z + height},
	)
}

func cutSwitchSlot(cfg corne.Config, s coverState) (coverState, error) {
	const op = "switch slot"
	edges := s.hole.VerticalEdges()
	if len(edges) == 0 {
		return s, fault.New(fault.EmptyGeometrySelection, op, "display hole has no vertical edge")
	}
	anchor := edges[0].Low()
	sw := cfg.Switch
	pocket := sw.PocketWidth()
	s.slot = r3.Vec{X: anchor.X, Y: anchor.Y + sw.AnchorOffset + pocket/2}

	var tools []sdf.SDF3
	for _, box := range []struct{ width, height, depth float64 }{
		{sw.SlideRange * 2, sw.SlotHeight, cfg.Cover.Hull},   // through the wall
		{pocket, sw.SlotHeight, sw.SlotDepth},                // switch plate
		{sw.SlideRange * 2, sw.SlotHeight * 2, sw.SlotDepth}, // actuator sleeve
	} {
		t, err := wallBox(s.slot, box.width, box.height, box.depth)
		if err != nil {
			return s, err
		}
		tools = append(tools, t)
	}
	var err error
	if s.body, err = solid.Cut(op, s.body, tools...); err != nil {
		return s, err
	}
	origin := r3.Sub(s.slot, r3.Vec{X: sw.SlotDepth})
	frame := joint.NewFrame(origin, r3.Vec{X: 1}, r3.Vec{Y: 1})
	return s.withJoint(joint.NewLinear(SwitchSlideJoint, frame, -sw.SlideRange/2, sw.SlideRange/2)), nil
}

func cutButtonSlot(cfg corne.Config, s coverState) (coverState, error) {
	const op = "button slot"
	bt := cfg.Button
	mouth := r3.Add(s.slot, r3.Vec{Y: bt.Spacing})
	stem, err := wallBox(mouth, bt.Stem.X, bt.Stem.Y, cfg.Cover.Hull)
	if err != nil {
		return s, err
	}
	head, err := wallBox(mouth, bt.Head.X, bt.Head.Y, cfg.Switch.SlotDepth)
	if err != nil {
		return s, err
	}
	if s.body, err = solid.Cut(op, s.body, stem, head); err != nil {
		return s, err
	}
	origin := r3.Sub(mouth, r3.Vec{X: cfg.Switch.SlotDepth})
	frame := joint.NewFrame(origin, r3.Vec{Y: 1}, r3.Vec{X: 1})
	return s.withJoint(joint.NewRigid(ButtonJoint, frame)), nil
}

// addBottomJoint places the bottom plate flush with the pocket rim, its
// outside face looking out of the pocket.
func addBottomJoint(cfg corne.Config, s coverState) (coverState, error) {
	frame := joint.NewFrame(r3.Vec{Z: cfg.Cover.Thickness}, r3.Vec{X: -1}, r3.Vec{Z: -1})
	return s.withJoint(joint.NewRigid(BottomJoint, frame)), nil
}
