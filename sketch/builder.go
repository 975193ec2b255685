package sketch

import (
	"github.com/bendavis78/corne-case/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Builder walks a profile one straight segment at a time.
type Builder struct {
	pts []r2.Vec
}

// NewBuilder returns a Builder positioned at start.
func NewBuilder(start r2.Vec) *Builder {
	return &Builder{pts: []r2.Vec{start}}
}

// At returns the current end point of the walk.
func (b *Builder) At() r2.Vec { return b.pts[len(b.pts)-1] }

// Line adds a segment relative to the current point.
func (b *Builder) Line(d r2.Vec) *Builder {
	return b.LineTo(r2.Add(b.At(), d))
}

// LineTo adds a segment ending at the absolute point p.
func (b *Builder) LineTo(p r2.Vec) *Builder {
	b.pts = append(b.pts, p)
	return b
}

// HorizontalTo adds a horizontal segment ending at x.
func (b *Builder) HorizontalTo(x float64) *Builder {
	return b.LineTo(r2.Vec{X: x, Y: b.At().Y})
}

// VerticalTo adds a vertical segment ending at y.
func (b *Builder) VerticalTo(y float64) *Builder {
	return b.LineTo(r2.Vec{X: b.At().X, Y: y})
}

// Close adds the segment back to the start point and returns the closed
// profile. If the walk already ended on the start point the end is
// snapped onto it instead of adding a zero length segment.
func (b *Builder) Close() Profile {
	pts := append([]r2.Vec(nil), b.pts...)
	if len(pts) > 1 && d2.EqualWithin(pts[len(pts)-1], pts[0], Tolerance) {
		pts[len(pts)-1] = pts[0]
	} else {
		pts = append(pts, pts[0])
	}
	return newProfile(pts, make([]bool, len(pts)), true)
}

// Open returns the walk as an open profile.
func (b *Builder) Open() Profile {
	pts := append([]r2.Vec(nil), b.pts...)
	return newProfile(pts, make([]bool, len(pts)), false)
}

// Symmetric returns the closed profile made of half and its mirror image
// across the Y axis. half runs on the negative X side from a point on
// the Y axis to another point on the Y axis.
func Symmetric(half ...r2.Vec) Profile {
	b := NewBuilder(half[0])
	for _, p := range half[1:] {
		b.LineTo(p)
	}
	for i := len(half) - 1; i >= 0; i-- {
		p := half[i]
		if p.X == 0 {
			continue // on the mirror axis
		}
		b.LineTo(r2.Vec{X: -p.X, Y: p.Y})
	}
	return b.Close().Simplify()
}
