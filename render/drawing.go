package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/yofu/dxf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Circle is a drawn circle.
type Circle struct {
	Center r2.Vec
	Radius float64
}

// Layer is a named group of exact drawing entities. Polylines are closed.
type Layer struct {
	Name      string
	Polylines [][]r2.Vec
	Circles   []Circle
	Color     color.Color // plot color, black if nil
}

// circleSegments is the number of segments approximating a plotted circle.
const circleSegments = 32

// CreateLayoutDXF writes layers to a DXF file at path, one DXF layer each.
func CreateLayoutDXF(path string, layers []Layer) error {
	d := dxf.NewDrawing()
	for _, l := range layers {
		if _, err := d.AddLayer(l.Name, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("dxf: layer %s: %w", l.Name, err)
		}
		for _, pl := range l.Polylines {
			for i := range pl {
				a, b := pl[i], pl[(i+1)%len(pl)]
				if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
					return err
				}
			}
		}
		for _, c := range l.Circles {
			if _, err := d.Circle(c.Center.X, c.Center.Y, 0, c.Radius); err != nil {
				return err
			}
		}
	}
	return d.SaveAs(path)
}

// PlotLayout draws layers to an equal-aspect plot.
func PlotLayout(title string, layers []Layer) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"
	p.Add(plotter.NewGrid())
	for _, l := range layers {
		c := l.Color
		if c == nil {
			c = color.Black
		}
		lines := l.Polylines
		for _, circ := range l.Circles {
			lines = append(lines, circlePolyline(circ))
		}
		for i, pl := range lines {
			xys := make(plotter.XYs, 0, len(pl)+1)
			for _, v := range pl {
				xys = append(xys, plotter.XY{X: v.X, Y: v.Y})
			}
			xys = append(xys, xys[0])
			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, fmt.Errorf("plot: layer %s: %w", l.Name, err)
			}
			line.Color = c
			p.Add(line)
			if i == 0 {
				p.Legend.Add(l.Name, line)
			}
		}
	}
	// equal aspect: widen the shorter axis to the span of the longer one
	dx, dy := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min
	if dx > dy {
		mid := (p.Y.Max + p.Y.Min) / 2
		p.Y.Min, p.Y.Max = mid-dx/2, mid+dx/2
	} else {
		mid := (p.X.Max + p.X.Min) / 2
		p.X.Min, p.X.Max = mid-dy/2, mid+dy/2
	}
	return p, nil
}

// SaveLayoutPNG plots layers and saves the plot as a size×size PNG.
func SaveLayoutPNG(path, title string, layers []Layer, size vg.Length) error {
	p, err := PlotLayout(title, layers)
	if err != nil {
		return err
	}
	return p.Save(size, size, path)
}

func circlePolyline(c Circle) []r2.Vec {
	pts := make([]r2.Vec, circleSegments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		pts[i] = r2.Add(c.Center, r2.Vec{X: c.Radius * cos, Y: c.Radius * sin})
	}
	return pts
}
