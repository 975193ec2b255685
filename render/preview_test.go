package render_test

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/bendavis78/corne-case/render"
	"gonum.org/v1/plot/cmpimg"
)

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	stl := filepath.Join(dir, "box.stl")
	if _, err := render.CreateSTL(stl, render.NewMeshRenderer(box(t), quality)); err != nil {
		t.Fatal(err)
	}
	view := render.DefaultView
	view.Width, view.Height = 160, 90
	encode := func() []byte {
		img, err := render.Preview(stl, view)
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != view.Width || b.Dy() != view.Height {
			t.Fatalf("preview is %v", b)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}
	equal, err := cmpimg.EqualApprox("png", encode(), encode(), 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("previews of the same mesh differ")
	}
	if err := render.CreatePreview(stl, filepath.Join(dir, "box.png"), view); err != nil {
		t.Fatal(err)
	}
}
