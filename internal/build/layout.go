package build

import (
	"fmt"
	"image/color"
	"io"
	"text/tabwriter"

	corne "github.com/bendavis78/corne-case"
	"github.com/bendavis78/corne-case/render"
	"gonum.org/v1/gonum/spatial/r2"
)

// Layer names of the layout drawing.
const (
	OutlineLayer = "outline"
	KeysLayer    = "keys"
	ScrewsLayer  = "screws"
	MCLayer      = "mc_cutout"
)

// Layers returns the exact layout drawing of cfg: the board outline, the
// key plate switch squares, the screw holes and the microcontroller cutout.
func Layers(cfg corne.Config) ([]render.Layer, error) {
	outline, err := corne.BoardOutline(cfg)
	if err != nil {
		return nil, err
	}
	keys, err := corne.KeyPlacements(cfg)
	if err != nil {
		return nil, err
	}
	screws, err := corne.ScrewPlacements(cfg)
	if err != nil {
		return nil, err
	}
	h := cfg.PlateKeyHole / 2
	square := []r2.Vec{{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h}}
	keyLayer := render.Layer{Name: KeysLayer, Color: color.RGBA{R: 0x46, G: 0x89, B: 0x66, A: 0xff}}
	for _, k := range keys {
		pl := make([]r2.Vec, len(square))
		for i, v := range square {
			pl[i] = k.Apply(v)
		}
		keyLayer.Polylines = append(keyLayer.Polylines, pl)
	}
	screwLayer := render.Layer{Name: ScrewsLayer, Color: color.RGBA{R: 0xb6, G: 0x40, B: 0x26, A: 0xff}}
	for _, s := range screws {
		screwLayer.Circles = append(screwLayer.Circles, render.Circle{Center: s.Pos, Radius: cfg.ScrewRadius})
	}
	return []render.Layer{
		{Name: OutlineLayer, Polylines: [][]r2.Vec{outline.Vertices()}},
		keyLayer,
		screwLayer,
		{
			Name:      MCLayer,
			Polylines: [][]r2.Vec{corne.MCCutout(cfg).Vertices()},
			Color:     color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		},
	}, nil
}

// WritePlacements prints the key and screw placements of cfg as a table.
func WritePlacements(w io.Writer, cfg corne.Config) error {
	keys, err := corne.KeyPlacements(cfg)
	if err != nil {
		return err
	}
	screws, err := corne.ScrewPlacements(cfg)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "kind\tindex\tx\ty\tangle\t")
	for i, k := range keys {
		kind := "key"
		if i < len(cfg.Thumbs) {
			kind = "thumb"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.1f\t\n", kind, i, k.Pos.X, k.Pos.Y, k.Angle)
	}
	for i, s := range screws {
		fmt.Fprintf(tw, "screw\t%d\t%.2f\t%.2f\t%.1f\t\n", i, s.Pos.X, s.Pos.Y, s.Angle)
	}
	return tw.Flush()
}
