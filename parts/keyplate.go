package parts

import (
	"math"

	corne "github.com/bendavis78/corne-case"
	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/sketch"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// KeyPlateOutline returns the switch plate outline: the board outline with
// every corner rounded by the plate fillet and the microcontroller cutout
// removed. The corners left by the cutout are rounded too.
func KeyPlateOutline(cfg corne.Config) (sketch.Profile, error) {
	const op = "key plate"
	outline, err := corne.BoardOutline(cfg)
	if err != nil {
		return sketch.Profile{}, err
	}
	r := cfg.PlateFillet
	rounded, _ := outline.Round(sketch.Not(sketch.IsRounded), r, sketch.DefaultFacets)
	cut := corne.MCCutout(cfg)
	loops, err := rounded.Subtract(cut)
	if err != nil {
		return sketch.Profile{}, fault.Wrap(fault.BooleanOperationFailed, op, err)
	}
	if len(loops) != 1 {
		return sketch.Profile{}, fault.New(fault.BooleanOperationFailed, op, "cutout splits the plate into %d loops", len(loops))
	}
	plate, n := loops[0].Round(sketch.OnBoundaryOf(cut), r, sketch.DefaultFacets)
	if n == 0 {
		return sketch.Profile{}, fault.New(fault.EmptyGeometrySelection, op, "cutout left no corner to round")
	}
	return plate, nil
}

// KeyPlate returns the switch plate face with a square hole under every
// key and a hole at every screw.
func KeyPlate(cfg corne.Config) (sdf.SDF2, error) {
	outline, err := KeyPlateOutline(cfg)
	if err != nil {
		return nil, err
	}
	face, err := sketch.Face(outline)
	if err != nil {
		return nil, err
	}
	keys, err := corne.KeyPlacements(cfg)
	if err != nil {
		return nil, err
	}
	screws, err := corne.ScrewPlacements(cfg)
	if err != nil {
		return nil, err
	}
	square := sdf.Box2D(v2.Vec{X: cfg.PlateKeyHole, Y: cfg.PlateKeyHole}, 0)
	var holes []sdf.SDF2
	for _, k := range keys {
		m := sdf.Translate2d(v2.Vec{X: k.Pos.X, Y: k.Pos.Y}).Mul(sdf.Rotate2d(k.Angle * math.Pi / 180))
		holes = append(holes, sdf.Transform2D(square, m))
	}
	for _, sp := range screws {
		c, err := sdf.Circle2D(cfg.ScrewRadius)
		if err != nil {
			return nil, fault.Wrap(fault.DegenerateProfile, "key plate", err)
		}
		holes = append(holes, sdf.Transform2D(c, sdf.Translate2d(v2.Vec{X: sp.Pos.X, Y: sp.Pos.Y})))
	}
	return sdf.Difference2D(face, sdf.Union2D(holes...)), nil
}
