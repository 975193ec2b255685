// Package corne holds the layout of a split Corne keyboard half: key and
// screw placements and the outlines every case part is built from.
//
// All dimensions are millimetres. Angles are degrees.
package corne

import (
	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/helpers/matter"
	"gonum.org/v1/gonum/spatial/r2"
)

// MaxCols is the largest supported column count.
const MaxCols = 6

// Config is the immutable set of dimensions shared by all part generators.
// It is passed by value; the zero value is not usable, start from
// DefaultConfig.
type Config struct {
	Cols      int
	KeySize   float64
	KeyMargin r2.Vec
	// Stagger is the per column Y offset of the key grid.
	Stagger [MaxCols]float64
	// GridStartX is the X position of the first grid column.
	GridStartX float64
	Thumbs     [3]Placement
	// Screws are the mounting screw positions for the 6 column layout.
	Screws      [5]r2.Vec
	ScrewRadius float64
	// PlateKeyHole is the square switch hole of the laser cut key plate.
	PlateKeyHole float64
	PlateFillet  float64
	// OutlineOrigin is where the board outline walk starts.
	OutlineOrigin r2.Vec

	MC      MCCutoutDims
	Cover   CoverDims
	Bottom  BottomDims
	Switch  SwitchDims
	Button  ButtonDims
	MCCover MCCoverDims
}

// MCCutoutDims describes the microcontroller and display cutout on the
// left side of the board.
type MCCutoutDims struct {
	// TopLeft is the start of the cutout walk.
	TopLeft r2.Vec
	Width   float64
	// Depth is the length of the cutout's right edge.
	Depth float64
	// Notch is the step from the right edge to the start of the slant.
	Notch float64
	// Slant is the angle of the bottom edge.
	Slant float64
	// DisplayOffset is the height of the display hole cut through the cover.
	DisplayOffset float64
	Screws        [2]r2.Vec
}

// CoverDims are the cover shell dimensions.
type CoverDims struct {
	Thickness float64
	// Hull is the wall thickness around the board.
	Hull float64
	// Fillet rounds the shell corners and top and bottom edges.
	Fillet float64
	// OuterFillet rounds the outer corners left sharp by Fillet.
	OuterFillet float64
	InsetDepth  float64
	// KeyPocket is the switch clip relief around each key hole.
	KeyPocket      r2.Vec
	KeyPocketDepth float64
	KeyHole        r2.Vec
	CounterBore    float64
	CounterDepth   float64
}

// BottomDims are the bottom plate dimensions.
type BottomDims struct {
	Thickness  float64
	BossRadius float64
	BossBore   float64
	BossHeight float64
	FootRadius float64
	FootDepth  float64
	FootInset  float64
	CenterFoot r2.Vec // offset of the fifth foot from the lowest outline vertex
}

// SwitchDims describe the sliding power switch and the slot carved for it.
type SwitchDims struct {
	PlateWidth     float64
	PlateThickness float64
	Height         float64
	TabWidth       float64
	TabLength      float64
	NubWidth       float64
	NubLength      float64
	Groove         r2.Vec
	SleeveWidth    float64
	SleeveHeight   float64
	SleeveBore     float64
	SleeveFloor    float64
	// SlideRange is the full travel of the switch.
	SlideRange float64
	// SlotHeight and SlotDepth size the pocket carved in the cover wall.
	SlotHeight float64
	SlotDepth  float64
	// AnchorOffset is the gap from the display hole corner to the pocket.
	AnchorOffset float64
}

// PocketWidth is the pocket length along the slide axis: the plate plus its travel.
func (s SwitchDims) PocketWidth() float64 { return s.PlateWidth + s.SlideRange }

// ButtonDims describe the reset button and its slot.
type ButtonDims struct {
	Stem      r2.Vec // width and height of the part through the wall
	StemDepth float64
	Head      r2.Vec // width and height of the inner plate
	HeadDepth float64
	// Spacing is the distance from the switch slot center along Y.
	Spacing float64
}

// MCCoverDims describe the plate that closes the display window.
type MCCoverDims struct {
	Thickness   float64
	ScrewRadius float64
}

// Pitch returns the center to center key spacing.
func (c Config) Pitch() r2.Vec {
	return r2.Vec{X: c.KeySize + 2*c.KeyMargin.X, Y: c.KeySize + 2*c.KeyMargin.Y}
}

// DefaultConfig returns the stock layout for cols columns.
func DefaultConfig(cols int) Config {
	return Config{
		Cols:       cols,
		KeySize:    14,
		KeyMargin:  r2.Vec{X: 2, Y: 1.5},
		Stagger:    [MaxCols]float64{2, 4.45, 6.8, 4.45, -0.2, -0.2},
		GridStartX: 27.5,
		Thumbs: [3]Placement{
			{Pos: r2.Vec{X: 14.8, Y: -10.8}, Angle: 30},
			{Pos: r2.Vec{X: 35, Y: -7.2}, Angle: 15},
			{Pos: r2.Vec{X: 54.8, Y: -4.5}, Angle: 0},
		},
		Screws: [5]r2.Vec{
			{X: 23.05, Y: -4.55},
			{X: 67.6, Y: 2.1},
			{X: 108.5, Y: 16.8},
			{X: 108.5, Y: 33.75},
			{X: 36.5, Y: 37.2},
		},
		ScrewRadius:   1.2,
		PlateKeyHole:  13.8,
		PlateFillet:   1,
		OutlineOrigin: r2.Vec{X: -0.8, Y: -1},
		MC: MCCutoutDims{
			TopLeft:       r2.Vec{X: -0.85, Y: 53},
			Width:         19.3,
			Depth:         48.31,
			Notch:         3.25,
			Slant:         30,
			DisplayOffset: 53,
			Screws:        [2]r2.Vec{{X: 1.8, Y: 0.4}, {X: 15.5, Y: 7.6}},
		},
		Cover: CoverDims{
			Thickness:      6.45,
			Hull:           2,
			Fillet:         3,
			OuterFillet:    2.3,
			InsetDepth:     4.5,
			KeyPocket:      r2.Vec{X: 15.5, Y: 15.5},
			KeyPocketDepth: 0.8,
			KeyHole:        r2.Vec{X: 13.5, Y: 13.7},
			CounterBore:    2.15,
			CounterDepth:   0.8,
		},
		Bottom: BottomDims{
			Thickness:  1.3,
			BossRadius: 3,
			BossBore:   2,
			BossHeight: 1.5,
			FootRadius: 4.5,
			FootDepth:  0.5,
			FootInset:  7.5,
			CenterFoot: r2.Vec{X: 2, Y: 9.5},
		},
		Switch: SwitchDims{
			PlateWidth:     8,
			PlateThickness: 1.5,
			Height:         2.6,
			TabWidth:       2.5,
			TabLength:      0.9,
			NubWidth:       0.8,
			NubLength:      0.5,
			Groove:         r2.Vec{X: 1.5, Y: 0.3},
			SleeveWidth:    2.5,
			SleeveHeight:   4.1,
			SleeveBore:     1.5,
			SleeveFloor:    0.2,
			SlideRange:     2.5,
			SlotHeight:     2.7,
			SlotDepth:      1.2,
			AnchorOffset:   1.65,
		},
		Button: ButtonDims{
			Stem:      r2.Vec{X: 2.7, Y: 2.7},
			StemDepth: 0.9,
			Head:      r2.Vec{X: 4.7, Y: 5.4},
			HeadDepth: 1.2,
			Spacing:   8,
		},
		MCCover: MCCoverDims{
			Thickness:   1.5,
			ScrewRadius: 1.2,
		},
	}
}

// Validate checks the column count and the dimensions parts depend on.
func (c Config) Validate() error {
	if c.Cols != 5 && c.Cols != 6 {
		return fault.New(fault.InvalidColumnCount, "config", "got %d columns, want 5 or 6", c.Cols)
	}
	positive := []struct {
		name string
		v    float64
	}{
		{"key size", c.KeySize},
		{"screw radius", c.ScrewRadius},
		{"cover thickness", c.Cover.Thickness},
		{"cover hull", c.Cover.Hull},
		{"cover inset depth", c.Cover.InsetDepth},
		{"bottom thickness", c.Bottom.Thickness},
		{"switch slide range", c.Switch.SlideRange},
		{"mc cover thickness", c.MCCover.Thickness},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fault.New(fault.DegenerateProfile, "config", "%s must be positive, got %g", p.name, p.v)
		}
	}
	if 2*c.Cover.Fillet > c.Cover.Thickness {
		return fault.New(fault.DegenerateProfile, "config", "cover fillet %g too large for thickness %g", c.Cover.Fillet, c.Cover.Thickness)
	}
	if c.Cover.InsetDepth >= c.Cover.Thickness {
		return fault.New(fault.DegenerateProfile, "config", "inset depth %g cuts through cover thickness %g", c.Cover.InsetDepth, c.Cover.Thickness)
	}
	return nil
}

// Compensated returns the configuration with every hole, pocket and slot
// enlarged so that it prints true in material m.
func (c Config) Compensated(m matter.ViscousMaterial) Config {
	grow := func(v r2.Vec) r2.Vec {
		return r2.Vec{X: m.InternalDimScale(v.X), Y: m.InternalDimScale(v.Y)}
	}
	c.ScrewRadius = m.HoleRadius(c.ScrewRadius)
	c.PlateKeyHole = m.InternalDimScale(c.PlateKeyHole)
	c.Cover.KeyPocket = grow(c.Cover.KeyPocket)
	c.Cover.KeyHole = grow(c.Cover.KeyHole)
	c.Cover.CounterBore = m.HoleRadius(c.Cover.CounterBore)
	c.Bottom.BossBore = m.HoleRadius(c.Bottom.BossBore)
	c.MCCover.ScrewRadius = m.HoleRadius(c.MCCover.ScrewRadius)
	c.Switch.SlotHeight = m.InternalDimScale(c.Switch.SlotHeight)
	return c
}
