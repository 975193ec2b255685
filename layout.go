package corne

import (
	"math"

	"github.com/bendavis78/corne-case/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Rows is the number of key rows in the main grid.
const Rows = 3

// Placement is a planar position with a rotation about Z in degrees.
type Placement struct {
	Pos   r2.Vec
	Angle float64
}

// Apply returns the local point v rotated and moved into the placement.
func (p Placement) Apply(v r2.Vec) r2.Vec {
	return r2.Add(p.Pos, d2.Rotate(v, p.Angle*math.Pi/180))
}

// KeyPlacements returns the thumb keys followed by the key grid in row
// major order.
func KeyPlacements(cfg Config) ([]Placement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pitch := cfg.Pitch()
	keys := make([]Placement, 0, len(cfg.Thumbs)+Rows*cfg.Cols)
	keys = append(keys, cfg.Thumbs[:]...)
	for r := 0; r < Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			keys = append(keys, Placement{Pos: r2.Vec{
				X: cfg.GridStartX + pitch.X*float64(c),
				Y: cfg.KeyMargin.Y + cfg.KeySize/2 + pitch.Y*float64(r) + cfg.Stagger[c],
			}})
		}
	}
	return keys, nil
}

// ScrewPlacements returns the mounting screw positions. The screws under
// the outer columns move in by one column for 5 column boards.
func ScrewPlacements(cfg Config) ([]Placement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	screws := make([]Placement, len(cfg.Screws))
	for i, s := range cfg.Screws {
		if cfg.Cols == 5 && (i == 2 || i == 3) {
			s.X -= cfg.Pitch().X
		}
		screws[i] = Placement{Pos: s}
	}
	return screws, nil
}

// MCCoverScrewPlacements returns the screws holding the microcontroller
// cover, in cover coordinates.
func MCCoverScrewPlacements(cfg Config) []Placement {
	screws := make([]Placement, len(cfg.MC.Screws))
	for i, s := range cfg.MC.Screws {
		screws[i] = Placement{Pos: s}
	}
	return screws
}
