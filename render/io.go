package render

import (
	"errors"
	"io"
)

// readChunk is the number of triangles requested per ReadTriangles call.
const readChunk = 1024

// RenderAll drains r into one mesh. A Renderer that ends with io.EOF
// yields a nil error; any other error is returned with the triangles read
// before it.
func RenderAll(r Renderer) ([]Triangle3, error) {
	mesh := make([]Triangle3, 0, 4*readChunk)
	chunk := make([]Triangle3, readChunk)
	for {
		n, err := r.ReadTriangles(chunk)
		mesh = append(mesh, chunk[:n]...)
		if errors.Is(err, io.EOF) {
			return mesh, nil
		}
		if err != nil {
			return mesh, err
		}
	}
}

// Triangles returns a Renderer reading back model.
func Triangles(model []Triangle3) Renderer {
	return &triangle3Buffer{buf: model}
}

// triangle3Buffer is a FIFO of triangles consumed front first.
type triangle3Buffer struct {
	buf []Triangle3
}

// ReadTriangles implements Renderer.
func (b *triangle3Buffer) ReadTriangles(t []Triangle3) (int, error) {
	if len(b.buf) == 0 {
		return 0, io.EOF
	}
	return b.Read(t), nil
}

// Read moves up to len(t) triangles out of the buffer.
func (b *triangle3Buffer) Read(t []Triangle3) int {
	n := copy(t, b.buf)
	b.buf = b.buf[n:]
	return n
}

// Write queues t behind the triangles not yet read.
func (b *triangle3Buffer) Write(t []Triangle3) int {
	b.buf = append(b.buf, t...)
	return len(t)
}

// Len reports the triangles left to read.
func (b *triangle3Buffer) Len() int { return len(b.buf) }
