package parts

import (
	"errors"
	"math"
	"testing"

	"github.com/bendavis78/corne-case/internal/d3"
	"github.com/bendavis78/corne-case/joint"
	"github.com/bendavis78/corne-case/solid"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestAssemble(t *testing.T) {
	s := buildSet(t, 6)
	placed, err := Assemble(s, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{CoverName, BottomPlateName, ButtonName, SwitchName, MCCoverName}
	if len(placed) != len(want) {
		t.Fatalf("got %d parts, want %d", len(placed), len(want))
	}
	for i, p := range placed {
		if p.Name != want[i] {
			t.Errorf("part %d is %s, want %s", i, p.Name, want[i])
		}
	}
	// The bottom plate closes the pocket flush with the rim.
	bb := placed[1].Bounds()
	if got := bb.Max.Z; got < s.Cover.Bounds().Max.Z-1e-6 || got > s.Cover.Bounds().Max.Z+1e-6 {
		t.Errorf("bottom plate top at z=%g, want %g", got, s.Cover.Bounds().Max.Z)
	}
	// The switch joint lands on the slide joint.
	slide, _ := s.Cover.Joint(SwitchSlideJoint)
	sw, _ := placed[3].Joint(PartJoint)
	if !d3.EqualWithin(sw.Frame.Origin, slide.Frame.Origin, 1e-9) {
		t.Errorf("switch joint at %v, want %v", sw.Frame.Origin, slide.Frame.Origin)
	}
}

func TestAssembleErrors(t *testing.T) {
	s := buildSet(t, 6)
	if _, err := Assemble(s, 5); !errors.Is(err, joint.ErrOutOfRange) {
		t.Errorf("switch past its travel: got %v", err)
	}
	button, _ := s.Cover.Joint(ButtonJoint)
	sw, _ := s.Switch.Joint(PartJoint)
	if _, err := joint.Connect(button, sw, 0); !errors.Is(err, joint.ErrIncompatibleJoints) {
		t.Errorf("switch on the button joint: got %v", err)
	}
	delete(s.Cover.Joints, BottomJoint)
	if _, err := Assemble(s, 0); err == nil {
		t.Error("assembled without a bottom joint")
	}
}

// The switch stays clear of the cover walls over its whole travel.
func TestSwitchTravel(t *testing.T) {
	s := buildSet(t, 6)
	slide, err := s.Cover.Joint(SwitchSlideJoint)
	if err != nil {
		t.Fatal(err)
	}
	sj, err := s.Switch.Joint(PartJoint)
	if err != nil {
		t.Fatal(err)
	}
	var inside []r3.Vec
	bb := s.Switch.Bounds()
	const step = 0.2
	for x := bb.Min.X; x <= bb.Max.X; x += step {
		for y := bb.Min.Y; y <= bb.Max.Y; y += step {
			for z := bb.Min.Z; z <= bb.Max.Z; z += step {
				p := r3.Vec{X: x, Y: y, Z: z}
				if s.Switch.Solid.Evaluate(d3.ToV3(p)) < -0.02 {
					inside = append(inside, p)
				}
			}
		}
	}
	if len(inside) == 0 {
		t.Fatal("no switch interior sampled")
	}
	for _, pos := range []float64{slide.Range.Min, -0.5, 0, 0.5, slide.Range.Max} {
		m, err := joint.Connect(slide, sj, pos)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range inside {
			w := m.Transform(p)
			if d := s.Cover.Solid.Evaluate(d3.ToV3(w)); d < -1e-3 {
				t.Fatalf("switch at %g: point %v is %g inside the cover", pos, w, -d)
			}
		}
	}
}

func TestButtonPlacement(t *testing.T) {
	s := buildSet(t, 6)
	placed, err := Assemble(s, 0)
	if err != nil {
		t.Fatal(err)
	}
	button := placed[2]
	// The stem pokes out of the wall.
	if got, cover := button.Bounds().Min.X, s.Cover.Bounds().Min.X; got >= cover {
		t.Errorf("button stem ends at x=%g inside the wall at %g", got, cover)
	}
	if solid.Overlap(button.Solid, s.Cover.Solid, FitDepth) {
		t.Error("button runs into the cover")
	}
}

func TestTravelPositions(t *testing.T) {
	for _, test := range []struct {
		r    joint.Range
		step float64
		want []float64
	}{
		{joint.Range{Min: -1.25, Max: 1.25}, 0.5, []float64{-1.25, -0.75, -0.25, 0.25, 0.75, 1.25}},
		{joint.Range{Min: 0, Max: 1}, 0.4, []float64{0, 1.0 / 3, 2.0 / 3, 1}},
		{joint.Range{Min: 2, Max: 2}, 0.5, []float64{2}},
	} {
		got := TravelPositions(test.r, test.step)
		if len(got) != len(test.want) {
			t.Errorf("%+v step %g: got %v, want %v", test.r, test.step, got, test.want)
			continue
		}
		for i := range got {
			if math.Abs(got[i]-test.want[i]) > 1e-12 {
				t.Errorf("%+v step %g: got %v, want %v", test.r, test.step, got, test.want)
				break
			}
		}
	}
}

func TestCheckFit(t *testing.T) {
	if testing.Short() {
		t.Skip("checks every pair of parts")
	}
	if err := CheckFit(buildSet(t, 6)); err != nil {
		t.Fatal(err)
	}
}
