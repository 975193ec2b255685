package corne

import (
	"math"

	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/sketch"
	"gonum.org/v1/gonum/spatial/r2"
)

// BoardOutline returns the closed outline of the keyboard PCB half.
func BoardOutline(cfg Config) (sketch.Profile, error) {
	const op = "board outline"
	if err := cfg.Validate(); err != nil {
		return sketch.Profile{}, err
	}
	pitch := cfg.Pitch()
	st := cfg.Stagger
	b := sketch.NewBuilder(cfg.OutlineOrigin).
		VerticalTo(Rows*pitch.Y + st[0]).
		Line(r2.Vec{X: 18.5})
	for c := 1; c < cfg.Cols; c++ {
		w := pitch.X
		switch c {
		case 1:
			w++
		case 3:
			w--
		}
		b.Line(r2.Vec{X: w})
		if dy := st[c] - st[c-1]; dy != 0 {
			b.Line(r2.Vec{Y: dy})
		}
	}
	b.Line(r2.Vec{X: pitch.X + 1.8}).
		VerticalTo(-0.5).
		Line(r2.Vec{X: -(pitch.X*float64(cfg.Cols-3) + 1.5)}).
		Line(r2.Vec{X: -9, Y: -12.2}).
		Line(r2.Vec{X: -33.1, Y: -4.55}).
		Line(r2.Vec{X: -16.35, Y: -9.12})
	outline := b.Close()
	if err := outline.Validate(); err != nil {
		return sketch.Profile{}, fault.Wrap(fault.DegenerateProfile, op, err)
	}
	return outline, nil
}

// MCCutout returns the outline of the microcontroller and display area cut
// out of the key plate.
func MCCutout(cfg Config) sketch.Profile {
	m := cfg.MC
	run := m.Width - m.Notch
	return sketch.NewBuilder(m.TopLeft).
		Line(r2.Vec{X: m.Width}).
		Line(r2.Vec{Y: -m.Depth}).
		Line(r2.Vec{X: -m.Notch}).
		Line(r2.Vec{X: -run, Y: -run * math.Tan(m.Slant*math.Pi/180)}).
		Close()
}

// MCHousingOutline returns the raised housing around the microcontroller:
// the cutout grown by the cover hull along its top and left sides. The
// bottom edge keeps following the cutout's slant.
func MCHousingOutline(cfg Config) sketch.Profile {
	m := cfg.MC
	h := cfg.Cover.Hull
	left := m.TopLeft.X - h
	right := m.TopLeft.X + m.Width
	tan := math.Tan(m.Slant * math.Pi / 180)
	b := sketch.NewBuilder(r2.Vec{X: right, Y: m.TopLeft.Y - m.Depth}).
		Line(r2.Vec{X: -m.Notch})
	notch := b.At()
	return b.LineTo(r2.Vec{X: left, Y: notch.Y - (notch.X-left)*tan}).
		VerticalTo(m.TopLeft.Y + h).
		HorizontalTo(right).
		Close()
}

// DisplayHole returns the lower DisplayOffset of the cutout, shifted up by
// the height that was clipped away.
func DisplayHole(cfg Config) (sketch.Profile, error) {
	cut := MCCutout(cfg)
	bb := cut.Bounds()
	removed := bb.Size().Y - cfg.MC.DisplayOffset
	if removed < 0 {
		return sketch.Profile{}, fault.New(fault.EmptyGeometrySelection, "display hole",
			"display offset %g exceeds cutout height %g", cfg.MC.DisplayOffset, bb.Size().Y)
	}
	hole, err := cut.ClipAbove(bb.Max.Y - removed)
	if err != nil {
		return sketch.Profile{}, err
	}
	return hole.Translate(r2.Vec{Y: removed}), nil
}
