package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"github.com/yofu/dxf"
)

// sketchLayer is the DXF layer traced sketch lines are drawn on.
const sketchLayer = "outline"

const svgLineStyle = "fill:none;stroke:black;stroke-width:0.1"

// SketchLines traces the boundary of s with the kernel's quadtree marching
// squares, cells on the longest side of its bounding box.
func SketchLines(s sdf.SDF2, cells int) ([]*sdf.Line2, error) {
	if cells < 1 {
		return nil, fmt.Errorf("render: sketch needs at least one cell, got %d", cells)
	}
	ch := make(chan []*sdf.Line2)
	done := make(chan []*sdf.Line2)
	go func() {
		var lines []*sdf.Line2
		for batch := range ch {
			lines = append(lines, batch...)
		}
		done <- lines
	}()
	render.NewMarchingSquaresQuadtree(cells).Render(s, sdf.NewLine2Buffer(ch))
	close(ch)
	lines := <-done
	if len(lines) == 0 {
		return nil, errors.New("render: sketch traced no lines")
	}
	return lines, nil
}

// CreateDXF writes lines to a DXF file at path. It returns the file size.
func CreateDXF(path string, lines []*sdf.Line2) (int64, error) {
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(sketchLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return 0, fmt.Errorf("dxf: %w", err)
	}
	for _, l := range lines {
		if _, err := d.Line(l[0].X, l[0].Y, 0, l[1].X, l[1].Y, 0); err != nil {
			return 0, fmt.Errorf("dxf: %w", err)
		}
	}
	if err := d.SaveAs(path); err != nil {
		return 0, fmt.Errorf("dxf: %w", err)
	}
	return written(path)
}

// CreateSVG writes lines to an SVG file at path. It returns the file size.
func CreateSVG(path string, lines []*sdf.Line2) (int64, error) {
	if err := render.SaveSVG(path, svgLineStyle, lines); err != nil {
		return 0, fmt.Errorf("svg: %w", err)
	}
	return written(path)
}

func written(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("render: %s was not written: %w", path, err)
	}
	if fi.Size() == 0 {
		return 0, fmt.Errorf("render: %s is empty", path)
	}
	return fi.Size(), nil
}
