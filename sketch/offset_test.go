package sketch

import (
	"errors"
	"math"
	"testing"

	"github.com/bendavis78/corne-case/fault"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestOffsetMiter(t *testing.T) {
	for _, p := range []Profile{stepped(), stepped().Reverse()} {
		got, err := p.Offset(2)
		if err != nil {
			t.Fatal(err)
		}
		if got.Len() != p.Len() {
			t.Fatalf("miter offset must keep vertex count: %d != %d", got.Len(), p.Len())
		}
		bb := got.Bounds()
		if bb.Min != (r2.Vec{X: -2, Y: -2}) || bb.Max != (r2.Vec{X: 22, Y: 14}) {
			t.Errorf("unexpected bounds %+v", bb)
		}
		// Every edge moved by exactly 2 along its normal.
		for i := 0; i < p.Edges(); i++ {
			a, b := p.Edge(i)
			c, _ := got.Edge(i + 1)
			u := r2.Unit(r2.Sub(b, a))
			dist := math.Abs(r2.Cross(u, r2.Sub(c, a)))
			if math.Abs(dist-2) > 1e-9 {
				t.Errorf("edge %d moved by %g", i, dist)
			}
		}
		// The step keeps its length.
		if !got.Contains(r2.Vec{X: 5, Y: 13}) || got.Contains(r2.Vec{X: 15, Y: 13}) {
			t.Error("step was not preserved by the offset")
		}
	}
}

func TestOffsetInward(t *testing.T) {
	got, err := square(10).Offset(-1)
	if err != nil {
		t.Fatal(err)
	}
	if a := got.Area(); math.Abs(a-64) > 1e-9 {
		t.Errorf("expected area 64, got %g", a)
	}
	if _, err := square(4).Offset(-3); !errors.Is(err, fault.DegenerateProfile) {
		t.Errorf("collapsing offset: expected DegenerateProfile, got %v", err)
	}
}
