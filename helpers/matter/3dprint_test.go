package matter

import (
	"math"
	"testing"
)

func TestInternalDimScale(t *testing.T) {
	got := PLA.InternalDimScale(10)
	if want := 10*1.002 + .45; math.Abs(got-want) > 1e-12 {
		t.Errorf("got %g, want %g", got, want)
	}
	if r, want := PLA.HoleRadius(1.2), (2.4*1.002+.45)/2; math.Abs(r-want) > 1e-12 {
		t.Errorf("hole radius %g", r)
	}
	if PLA.ScaleFactor() <= 1 {
		t.Errorf("scale factor %g should enlarge", PLA.ScaleFactor())
	}
}

func TestLookup(t *testing.T) {
	if m, ok := Lookup("PETG"); !ok || m != PETG {
		t.Errorf("got %v %v", m, ok)
	}
	if _, ok := Lookup("ABS"); ok {
		t.Error("unexpected material ABS")
	}
}
