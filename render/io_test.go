package render

import (
	"errors"
	"io"
	"testing"
)

// failAfter hands out its triangles and then fails with err.
type failAfter struct {
	triangle3Buffer
	err error
}

func (f *failAfter) ReadTriangles(t []Triangle3) (int, error) {
	if f.Len() == 0 {
		return 0, f.err
	}
	return f.Read(t), nil
}

func TestRenderAll(t *testing.T) {
	model := make([]Triangle3, 3*readChunk+7)
	for i := range model {
		model[i].V[0].X = float64(i)
	}
	got, err := RenderAll(Triangles(model))
	if err != nil {
		t.Fatalf("end of mesh must not be an error: %v", err)
	}
	if len(got) != len(model) {
		t.Fatalf("got %d triangles, want %d", len(got), len(model))
	}
	for i := range got {
		if got[i] != model[i] {
			t.Fatalf("triangle %d out of order", i)
		}
	}

	wrapped := &failAfter{err: errors.Join(io.EOF)}
	if _, err := RenderAll(wrapped); err != nil {
		t.Errorf("wrapped EOF must end the mesh, got %v", err)
	}

	boom := errors.New("boom")
	r := &failAfter{triangle3Buffer: triangle3Buffer{buf: model[:5]}, err: boom}
	got, err = RenderAll(r)
	if !errors.Is(err, boom) {
		t.Fatalf("want read error, got %v", err)
	}
	if len(got) != 5 {
		t.Errorf("triangles read before the error must be kept, got %d", len(got))
	}
}
