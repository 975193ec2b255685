package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hpinc/go3mf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Create3MF streams the triangles of r into a 3MF package at path. Shared
// vertices are stored once and the package bytes depend only on the
// triangles. It returns the number of triangles written.
func Create3MF(path string, r Renderer) (int, error) {
	model, err := RenderAll(r)
	if err != nil {
		return 0, err
	}
	if len(model) == 0 {
		return 0, fmt.Errorf("3mf: %s: solid produced no triangles", path)
	}
	mesh := new(go3mf.Mesh)
	index := make(map[[3]float32]uint32)
	vertex := func(v r3.Vec) uint32 {
		key := to3F32(v)
		if i, ok := index[key]; ok {
			return i
		}
		i := uint32(len(mesh.Vertices.Vertex))
		mesh.Vertices.Vertex = append(mesh.Vertices.Vertex, go3mf.Point3D(key))
		index[key] = i
		return i
	}
	for _, t := range model {
		mesh.Triangles.Triangle = append(mesh.Triangles.Triangle, go3mf.Triangle{
			V1: vertex(t.V[0]),
			V2: vertex(t.V[1]),
			V3: vertex(t.V[2]),
		})
	}
	var m go3mf.Model
	m.Units = go3mf.UnitMillimeter
	m.Resources.Objects = append(m.Resources.Objects, &go3mf.Object{ID: 1, Mesh: mesh})
	m.Build.Items = append(m.Build.Items, &go3mf.Item{ObjectID: 1})

	var pkg bytes.Buffer
	if err := go3mf.NewEncoder(&pkg).Encode(&m); err != nil {
		return 0, fmt.Errorf("3mf: %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	if err := pinTimestamps(f, pkg.Bytes()); err != nil {
		f.Close()
		return 0, fmt.Errorf("3mf: %s: %w", path, err)
	}
	return len(model), f.Close()
}

// packageTime is the modification time stored for every 3MF package entry.
var packageTime = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// pinTimestamps copies the zip archive pkg to w with every entry's
// modification time set to packageTime. Entry data is copied compressed.
func pinTimestamps(w io.Writer, pkg []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		return err
	}
	zw := zip.NewWriter(w)
	for _, f := range zr.File {
		fh := f.FileHeader
		fh.Modified = packageTime
		fh.Extra = nil
		dst, err := zw.CreateRaw(&fh)
		if err != nil {
			return err
		}
		src, err := f.OpenRaw()
		if err != nil {
			return err
		}
		if _, err := io.Copy(dst, src); err != nil {
			return err
		}
	}
	return zw.Close()
}
