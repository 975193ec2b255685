package render_test

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bendavis78/corne-case/render"
	"github.com/hpinc/go3mf"
)

func Test3MF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.3mf")
	n, err := render.Create3MF(path, render.NewMeshRenderer(box(t), 10))
	if err != nil {
		t.Fatal(err)
	}
	if n == 0 {
		t.Error("no triangles written")
	}
	r, err := go3mf.OpenReader(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	var m go3mf.Model
	if err := r.Decode(&m); err != nil {
		t.Fatal(err)
	}
	if len(m.Resources.Objects) != 1 {
		t.Fatalf("got %d objects", len(m.Resources.Objects))
	}
	if got := len(m.Resources.Objects[0].Mesh.Triangles.Triangle); got != n {
		t.Errorf("decoded %d triangles, wrote %d", got, n)
	}
}

func Test3MFReproducible(t *testing.T) {
	model, err := render.RenderAll(render.NewMeshRenderer(box(t), 10))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	var pkgs [2][]byte
	for i := range pkgs {
		path := filepath.Join(dir, "box.3mf")
		if _, err := render.Create3MF(path, render.Triangles(model)); err != nil {
			t.Fatal(err)
		}
		if pkgs[i], err = os.ReadFile(path); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(pkgs[0], pkgs[1]) {
		t.Errorf("same triangles, different packages (%d and %d bytes)", len(pkgs[0]), len(pkgs[1]))
	}
	// entry times must not come from the clock
	zr, err := zip.NewReader(bytes.NewReader(pkgs[0]), int64(len(pkgs[0])))
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range zr.File {
		if f.Modified.Year() != 2000 || time.Since(f.Modified) < time.Hour {
			t.Errorf("%s modified at %v", f.Name, f.Modified)
		}
	}
}
