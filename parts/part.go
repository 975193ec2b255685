// Package parts generates the printable parts of the case. Each part is
// built by a pipeline of stages over immutable geometry values.
package parts

import (
	"fmt"
	"math"
	"sort"
	"time"

	corne "github.com/bendavis78/corne-case"
	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/internal/d3"
	"github.com/bendavis78/corne-case/joint"
	"github.com/bendavis78/corne-case/solid"
	"github.com/deadsy/sdfx/sdf"
	"github.com/rs/zerolog"
)

// Part names.
const (
	CoverName       = "cover"
	BottomPlateName = "bottom_plate"
	MCCoverName     = "mc_cover"
	ButtonName      = "button"
	SwitchName      = "power_switch"
)

// eps extends cutting tools past the faces they open so that no cut ends
// flush with a surface.
const eps = 0.01

// Part is a named solid with its attachment joints.
type Part struct {
	Name   string
	Solid  sdf.SDF3
	Joints map[string]joint.Joint
	// Feature is the thinnest wall or recess of the part. A mesh must use
	// cells smaller than it to keep every wall and hole.
	Feature float64
}

// Joint returns the named joint.
func (p Part) Joint(name string) (joint.Joint, error) {
	j, ok := p.Joints[name]
	if !ok {
		return joint.Joint{}, fault.New(fault.EmptyGeometrySelection, p.Name, "no joint %q", name)
	}
	return j, nil
}

// JointNames returns the joint names in order.
func (p Part) JointNames() []string {
	names := make([]string, 0, len(p.Joints))
	for name := range p.Joints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Moved returns the part with its solid and joints moved by t.
func (p Part) Moved(t d3.Transform) Part {
	joints := make(map[string]joint.Joint, len(p.Joints))
	for name, j := range p.Joints {
		j.Frame = j.Frame.Moved(t)
		joints[name] = j
	}
	return Part{Name: p.Name, Solid: solid.Place(p.Solid, t), Joints: joints, Feature: p.Feature}
}

// Bounds returns the bounding box of the part.
func (p Part) Bounds() d3.Box { return solid.Bounds(p.Solid) }

// Set holds one of each part, each in its own coordinates.
type Set struct {
	Cover, BottomPlate, MCCover, Button, Switch Part
}

// All returns the parts in export order.
func (s Set) All() []Part {
	return []Part{s.Cover, s.BottomPlate, s.MCCover, s.Button, s.Switch}
}

// Builder generates parts for one configuration.
type Builder struct {
	cfg corne.Config
	log zerolog.Logger
}

// NewBuilder returns a Builder for cfg. Stage timings are logged to log at
// debug level.
func NewBuilder(cfg corne.Config, log zerolog.Logger) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg, log: log}, nil
}

// Config returns the configuration parts are built from.
func (b *Builder) Config() corne.Config { return b.cfg }

// Build generates every part.
func (b *Builder) Build() (Set, error) {
	var (
		s   Set
		err error
	)
	steps := []struct {
		dst *Part
		fn  func() (Part, error)
	}{
		{&s.Cover, b.Cover},
		{&s.BottomPlate, b.BottomPlate},
		{&s.MCCover, b.MCCover},
		{&s.Button, b.Button},
		{&s.Switch, b.PowerSwitch},
	}
	for _, step := range steps {
		if *step.dst, err = step.fn(); err != nil {
			return Set{}, err
		}
	}
	return s, nil
}

// thinnest returns the smallest of vs.
func thinnest(vs ...float64) float64 {
	m := math.Inf(1)
	for _, v := range vs {
		m = math.Min(m, v)
	}
	return m
}

// stage is one step of a part pipeline. It receives the state of the
// previous stage and returns a new one.
type stage[S any] struct {
	name string
	run  func(corne.Config, S) (S, error)
}

// runStages threads s through stages in order, stopping at the first error.
func runStages[S any](b *Builder, part string, s S, stages []stage[S]) (S, error) {
	for _, st := range stages {
		start := time.Now()
		next, err := st.run(b.cfg, s)
		if err != nil {
			return s, fmt.Errorf("%s: %s: %w", part, st.name, err)
		}
		b.log.Debug().Str("part", part).Str("stage", st.name).Dur("took", time.Since(start)).Msg("stage done")
		s = next
	}
	return s, nil
}
