package parts

import (
	"testing"

	corne "github.com/bendavis78/corne-case"
	"github.com/bendavis78/corne-case/internal/d3"
	"github.com/bendavis78/corne-case/joint"
	"github.com/bendavis78/corne-case/sketch"
	"github.com/bendavis78/corne-case/solid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func builder(t *testing.T, cols int) *Builder {
	t.Helper()
	b, err := NewBuilder(corne.DefaultConfig(cols), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func buildSet(t *testing.T, cols int) Set {
	t.Helper()
	s, err := builder(t, cols).Build()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewBuilderValidates(t *testing.T) {
	if _, err := NewBuilder(corne.DefaultConfig(4), zerolog.Nop()); err == nil {
		t.Fatal("4 columns accepted")
	}
}

func TestCoverJoints(t *testing.T) {
	for _, cols := range []int{5, 6} {
		cover, err := builder(t, cols).Cover()
		if err != nil {
			t.Fatalf("cols=%d: %v", cols, err)
		}
		want := map[string]joint.Kind{
			SwitchSlideJoint: joint.Linear,
			ButtonJoint:      joint.Rigid,
			BottomJoint:      joint.Rigid,
		}
		if len(cover.Joints) != len(want) {
			t.Errorf("cols=%d: joints %v", cols, cover.JointNames())
		}
		for name, kind := range want {
			j, err := cover.Joint(name)
			if err != nil {
				t.Errorf("cols=%d: %v", cols, err)
				continue
			}
			if j.Kind != kind {
				t.Errorf("cols=%d: %s is %v, want %v", cols, name, j.Kind, kind)
			}
		}
	}
}

func TestCoverIsOneBody(t *testing.T) {
	if testing.Short() {
		t.Skip("voxelizes the whole cover")
	}
	cover, err := builder(t, 6).Cover()
	if err != nil {
		t.Fatal(err)
	}
	if n := solid.Components(cover.Solid, 0.5); n != 1 {
		t.Errorf("cover has %d bodies, want 1", n)
	}
}

func TestCoverOpenings(t *testing.T) {
	cfg := corne.DefaultConfig(6)
	b, err := NewBuilder(cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	cover, err := b.Cover()
	if err != nil {
		t.Fatal(err)
	}
	keys, err := corne.KeyPlacements(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i, k := range keys {
		p := r3.Vec{X: k.Pos.X, Y: k.Pos.Y, Z: 0.5}
		if d := cover.Solid.Evaluate(d3.ToV3(p)); d <= 0 {
			t.Errorf("key %d at %v is not open", i, k.Pos)
		}
	}
	// Between the first two grid rows the key face is solid.
	a, c := keys[3].Pos, keys[3+cfg.Cols].Pos
	web := r3.Vec{X: (a.X + c.X) / 2, Y: (a.Y + c.Y) / 2, Z: 0.5}
	if d := cover.Solid.Evaluate(d3.ToV3(web)); d >= 0 {
		t.Errorf("web at %v is open, distance %g", web, d)
	}
	// The board pocket is open above the key face.
	if d := cover.Solid.Evaluate(d3.ToV3(r3.Vec{X: web.X, Y: web.Y, Z: cfg.Cover.Thickness - 1})); d <= 0 {
		t.Errorf("board pocket is filled, distance %g", d)
	}
}

func TestCoverOutlineRounding(t *testing.T) {
	cfg := corne.DefaultConfig(6)
	outline, err := corne.BoardOutline(cfg)
	if err != nil {
		t.Fatal(err)
	}
	grown, err := outline.Offset(cfg.Cover.Hull)
	if err != nil {
		t.Fatal(err)
	}
	r := cfg.Cover.Fillet
	rounded, n := grown.Round(sketch.EdgesLongerThan(r), r, sketch.DefaultFacets)
	if n == 0 {
		t.Fatal("nothing rounded")
	}
	for _, c := range grown.Corners() {
		if c.InLength() > r && c.OutLength() > r {
			continue
		}
		if len(rounded.Select(sketch.At(c.At))) != 1 {
			t.Errorf("corner %v with a short edge was rounded", c.At)
		}
	}

	shell, err := CoverOutline(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := shell.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(shell.Select(OuterCorner)) != 0 {
		t.Errorf("sharp outer corners left: %d", len(shell.Select(OuterCorner)))
	}
	for _, v := range outline.Vertices() {
		if !shell.Contains(v) {
			t.Errorf("board vertex %v outside the shell", v)
		}
	}
}

func TestMCHousing(t *testing.T) {
	cfg := corne.DefaultConfig(6)
	housing, err := MCHousing(cfg)
	if err != nil {
		t.Fatal(err)
	}
	hole, err := corne.DisplayHole(cfg)
	if err != nil {
		t.Fatal(err)
	}
	center := hole.Bounds().Center()
	for _, v := range hole.Vertices() {
		if v.X > center.X {
			continue // framed by the shell
		}
		// Some vertices lie on the housing edge; sample just inside them.
		p := r2.Add(v, r2.Scale(0.01, r2.Unit(r2.Sub(center, v))))
		if !housing.Contains(p) {
			t.Errorf("display hole vertex %v outside the housing", v)
		}
	}
}
