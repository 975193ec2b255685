package render_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bendavis78/corne-case/internal/d3"
	"github.com/bendavis78/corne-case/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

const quality = 20

func box(t testing.TB) sdf.SDF3 {
	t.Helper()
	s, err := sdf.Box3D(v3.Vec{X: 3, Y: 2, Z: 1}, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSTLCreateWriteRead(t *testing.T) {
	model, err := render.RenderAll(render.NewMeshRenderer(box(t), quality))
	if err != nil {
		t.Fatal(err)
	}
	if len(model) == 0 {
		t.Fatal("no triangles")
	}
	path := filepath.Join(t.TempDir(), "box.stl")
	n, err := render.CreateSTL(path, render.Triangles(model))
	if err != nil {
		t.Fatal(err)
	}
	if n != len(model) {
		t.Errorf("CreateSTL wrote %d triangles, want %d", n, len(model))
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := render.WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

func TestSTLWriteReadback(t *testing.T) {
	const tol = 1e-5
	input, err := render.RenderAll(render.NewMeshRenderer(box(t), quality))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := render.WriteSTL(&b, input); err != nil {
		t.Fatal(err)
	}
	output, err := render.ReadSTL(&b)
	if err != nil && !errors.Is(err, render.ErrNormalMismatch) {
		t.Fatal(err)
	}
	if len(output) != len(input) {
		t.Fatalf("read %d triangles, wrote %d", len(output), len(input))
	}
	mismatches := 0
	for iface, expect := range input {
		got := output[iface]
		for i := range expect.V {
			if !d3.EqualWithin(got.V[i], expect.V[i], tol) {
				mismatches++
				t.Errorf("%dth triangle out of tolerance. got vertex %0.5g, want %0.5g", iface, got.V[i], expect.V[i])
			}
		}
		if mismatches > 10 {
			t.Fatal("too many mismatches")
		}
	}
}

func TestSTLEmpty(t *testing.T) {
	if err := render.WriteSTL(new(bytes.Buffer), nil); err == nil {
		t.Error("empty model written")
	}
	path := filepath.Join(t.TempDir(), "empty.stl")
	if _, err := render.CreateSTL(path, render.Triangles(nil)); err == nil {
		t.Error("empty model created")
	}
	if _, err := render.ReadSTL(bytes.NewReader(make([]byte, 84))); err == nil {
		t.Error("read a model with no triangles")
	}
}
