package parts

import (
	"github.com/bendavis78/corne-case/joint"
	"github.com/bendavis78/corne-case/solid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Button returns the reset button plunger: a stem pushed through the wall
// from a wider head that rests against the inside.
func (b *Builder) Button() (Part, error) {
	bt := b.cfg.Button
	// The stem starts inside the head so the two overlap.
	stem, err := solid.Block(
		r3.Vec{X: -bt.Stem.X / 2, Y: -bt.HeadDepth, Z: 0},
		r3.Vec{X: bt.Stem.X / 2, Y: bt.StemDepth, Z: bt.Stem.Y},
	)
	if err != nil {
		return Part{}, err
	}
	head, err := solid.Block(
		r3.Vec{X: -bt.Head.X / 2, Y: -bt.HeadDepth, Z: 0},
		r3.Vec{X: bt.Head.X / 2, Y: 0, Z: bt.Head.Y},
	)
	if err != nil {
		return Part{}, err
	}
	body, err := solid.Union(ButtonName, head, stem)
	if err != nil {
		return Part{}, err
	}
	b.log.Debug().Str("part", ButtonName).Msg("built")
	frame := joint.NewFrame(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: -1})
	return Part{
		Name:    ButtonName,
		Solid:   body,
		Joints:  map[string]joint.Joint{PartJoint: joint.NewRigid(PartJoint, frame)},
		Feature: thinnest(bt.Stem.X, bt.StemDepth, bt.HeadDepth, (bt.Head.X-bt.Stem.X)/2),
	}, nil
}
