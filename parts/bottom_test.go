package parts

import (
	"errors"
	"testing"

	corne "github.com/bendavis78/corne-case"
	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/internal/d3"
	"github.com/bendavis78/corne-case/joint"
	"github.com/bendavis78/corne-case/sketch"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestFootPositions(t *testing.T) {
	for _, cols := range []int{5, 6} {
		cfg := corne.DefaultConfig(cols)
		outline, err := corne.BoardOutline(cfg)
		if err != nil {
			t.Fatal(err)
		}
		feet, err := FootPositions(cfg, outline)
		if err != nil {
			t.Fatal(err)
		}
		if len(feet) != 5 {
			t.Fatalf("cols=%d: got %d feet", cols, len(feet))
		}
		for _, f := range feet {
			if !outline.Contains(f) {
				t.Errorf("cols=%d: foot %v outside the outline", cols, f)
			}
		}
		left := outline.Bounds().Min.X + cfg.Bottom.FootInset
		if feet[0].X != left || feet[1].X != left {
			t.Errorf("cols=%d: left feet at %v %v, want x=%g", cols, feet[0], feet[1], left)
		}
	}
	triangle := sketch.NewBuilder(r2.Vec{}).Line(r2.Vec{X: 4}).Line(r2.Vec{X: -2, Y: 3}).Close()
	if _, err := FootPositions(corne.DefaultConfig(6), triangle); !errors.Is(err, fault.EmptyGeometrySelection) {
		t.Errorf("outline without vertical edges: got %v", err)
	}
}

func TestBottomPlate(t *testing.T) {
	cfg := corne.DefaultConfig(6)
	plate, err := builder(t, 6).BottomPlate()
	if err != nil {
		t.Fatal(err)
	}
	j, err := plate.Joint(PartJoint)
	if err != nil {
		t.Fatal(err)
	}
	if j.Kind != joint.Rigid {
		t.Errorf("joint kind %v", j.Kind)
	}
	screws, err := corne.ScrewPlacements(cfg)
	if err != nil {
		t.Fatal(err)
	}
	// The plate is mirrored: screws sit at -x.
	for _, sp := range screws {
		bore := r3.Vec{X: -sp.Pos.X, Y: sp.Pos.Y, Z: cfg.Bottom.Thickness + 0.5}
		if d := plate.Solid.Evaluate(d3.ToV3(bore)); d <= 0 {
			t.Errorf("insert bore at %v is filled", bore)
		}
		boss := r3.Add(bore, r3.Vec{X: cfg.Bottom.BossRadius - 0.3})
		if d := plate.Solid.Evaluate(d3.ToV3(boss)); d >= 0 {
			t.Errorf("boss wall at %v is empty", boss)
		}
	}
}

func TestMCCover(t *testing.T) {
	cfg := corne.DefaultConfig(6)
	outline, err := MCCoverOutline(cfg)
	if err != nil {
		t.Fatal(err)
	}
	hole, err := corne.DisplayHole(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range hole.Vertices() {
		if !outline.Contains(v) {
			t.Errorf("display hole vertex %v not covered", v)
		}
	}
	mc, err := builder(t, 6).MCCover()
	if err != nil {
		t.Fatal(err)
	}
	bb := mc.Bounds()
	if bb.Max.Z > 1e-9 || bb.Min.Z < -cfg.MCCover.Thickness-1e-9 {
		t.Errorf("plate spans z %g..%g", bb.Min.Z, bb.Max.Z)
	}
	for _, sp := range corne.MCCoverScrewPlacements(cfg) {
		p := r3.Vec{X: sp.Pos.X, Y: sp.Pos.Y, Z: -cfg.MCCover.Thickness / 2}
		if d := mc.Solid.Evaluate(d3.ToV3(p)); d <= 0 {
			t.Errorf("screw hole at %v is filled", sp.Pos)
		}
	}
}

func TestSwitchProfile(t *testing.T) {
	cfg := corne.DefaultConfig(6)
	p := SwitchProfile(cfg)
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	sw := cfg.Switch
	bb := p.Bounds()
	wantMin := r2.Vec{X: -sw.PlateWidth / 2, Y: -sw.PlateThickness - sw.TabLength - sw.NubLength}
	wantMax := r2.Vec{X: sw.PlateWidth / 2}
	if r2.Norm(r2.Sub(bb.Min, wantMin)) > 1e-9 || r2.Norm(r2.Sub(bb.Max, wantMax)) > 1e-9 {
		t.Errorf("bounds %v, want %v %v", bb, wantMin, wantMax)
	}
	// The points on the mirror axis fall on straight runs.
	if got := p.Len(); got != 12 {
		t.Errorf("got %d vertices, want 12", got)
	}
}

func TestPowerSwitch(t *testing.T) {
	cfg := corne.DefaultConfig(6)
	sw, err := builder(t, 6).PowerSwitch()
	if err != nil {
		t.Fatal(err)
	}
	j, err := sw.Joint(PartJoint)
	if err != nil {
		t.Fatal(err)
	}
	if j.Kind != joint.Linear || j.Range.Max-j.Range.Min != cfg.Switch.SlideRange {
		t.Errorf("joint %v range %v", j.Kind, j.Range)
	}
	d := cfg.Switch
	bore := r3.Vec{Y: -d.PlateThickness / 2, Z: d.SleeveHeight - 0.5}
	if v := sw.Solid.Evaluate(d3.ToV3(bore)); v <= 0 {
		t.Errorf("sleeve bore at %v is filled", bore)
	}
	wall := r3.Vec{X: (d.SleeveWidth + d.SleeveBore) / 4, Y: -d.PlateThickness / 2, Z: d.SleeveHeight - 0.5}
	if v := sw.Solid.Evaluate(d3.ToV3(wall)); v >= 0 {
		t.Errorf("sleeve wall at %v is empty", wall)
	}
}

func TestButton(t *testing.T) {
	cfg := corne.DefaultConfig(6)
	bt, err := builder(t, 6).Button()
	if err != nil {
		t.Fatal(err)
	}
	bb := bt.Bounds()
	want := d3.Box{
		Min: r3.Vec{X: -cfg.Button.Head.X / 2, Y: -cfg.Button.HeadDepth},
		Max: r3.Vec{X: cfg.Button.Head.X / 2, Y: cfg.Button.StemDepth, Z: cfg.Button.Head.Y},
	}
	if !d3.EqualWithin(bb.Min, want.Min, 1e-9) || !d3.EqualWithin(bb.Max, want.Max, 1e-9) {
		t.Errorf("bounds %v, want %v", bb, want)
	}
}
