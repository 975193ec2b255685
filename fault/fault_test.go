package fault

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKind(t *testing.T) {
	err := New(DegenerateProfile, "outline", "gap of %.3g", 0.25)
	if !errors.Is(err, DegenerateProfile) {
		t.Fatal("expected DegenerateProfile kind")
	}
	if errors.Is(err, BooleanOperationFailed) {
		t.Error("unexpected BooleanOperationFailed kind")
	}
	wrapped := fmt.Errorf("cover: %w", err)
	if !errors.Is(wrapped, DegenerateProfile) {
		t.Error("kind lost after wrapping")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "outline: degenerate profile: gap of 0.25") {
		t.Errorf("unexpected message %q", msg)
	}
	var fe *Error
	if !errors.As(err, &fe) || !strings.Contains(fe.Site(), "TestErrorKind") {
		t.Errorf("expected call site to name the test, got %q", fe.Site())
	}
}

func TestWrap(t *testing.T) {
	if Wrap(BooleanOperationFailed, "op", nil) != nil {
		t.Fatal("wrapping nil must return nil")
	}
	kernel := errors.New("radius <= 0")
	err := Wrap(BooleanOperationFailed, "screw hole", kernel)
	if !errors.Is(err, BooleanOperationFailed) {
		t.Fatal("expected BooleanOperationFailed")
	}
	if !strings.Contains(err.Error(), "radius <= 0") {
		t.Errorf("kernel detail missing from %q", err)
	}
	// Wrapping a fault keeps the original kind.
	inner := New(EmptyGeometrySelection, "anchor", "no vertices")
	if got := Wrap(BooleanOperationFailed, "outer", inner); got != inner {
		t.Errorf("expected fault to pass through unchanged, got %v", got)
	}
}
