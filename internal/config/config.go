// Package config reads the optional layout override file. Every attribute
// is optional; attributes the file does not name keep their default.
package config

import (
	"fmt"
	"os"

	corne "github.com/bendavis78/corne-case"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gonum.org/v1/gonum/spatial/r2"
)

// File is the schema of an override file:
//
//	cols     = 5
//	key_size = 14
//	stagger  = [2, 4.45, 6.8, 4.45, -0.2, -0.2]
//
//	cover {
//	  thickness = 6.45
//	}
type File struct {
	Cols         *int      `hcl:"cols,optional"`
	KeySize      *float64  `hcl:"key_size,optional"`
	KeyMargin    []float64 `hcl:"key_margin,optional"`
	Stagger      []float64 `hcl:"stagger,optional"`
	GridStartX   *float64  `hcl:"grid_start_x,optional"`
	ScrewRadius  *float64  `hcl:"screw_radius,optional"`
	PlateKeyHole *float64  `hcl:"plate_key_hole,optional"`
	PlateFillet  *float64  `hcl:"plate_fillet,optional"`

	Cover  *Cover  `hcl:"cover,block"`
	Bottom *Bottom `hcl:"bottom,block"`
}

// Cover overrides the cover shell dimensions.
type Cover struct {
	Thickness   *float64 `hcl:"thickness,optional"`
	Hull        *float64 `hcl:"hull,optional"`
	Fillet      *float64 `hcl:"fillet,optional"`
	OuterFillet *float64 `hcl:"outer_fillet,optional"`
	InsetDepth  *float64 `hcl:"inset_depth,optional"`
}

// Bottom overrides the bottom plate dimensions.
type Bottom struct {
	Thickness  *float64 `hcl:"thickness,optional"`
	FootRadius *float64 `hcl:"foot_radius,optional"`
	FootDepth  *float64 `hcl:"foot_depth,optional"`
	FootInset  *float64 `hcl:"foot_inset,optional"`
}

// Load parses and decodes the override file at path.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(src, path)
}

// Parse decodes override file contents. filename is used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}
	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", filename, diags.Error())
	}
	if n := len(f.KeyMargin); n != 0 && n != 2 {
		return nil, fmt.Errorf("%s: key_margin has %d values, want 2", filename, n)
	}
	if n := len(f.Stagger); n > corne.MaxCols {
		return nil, fmt.Errorf("%s: stagger has %d values, want at most %d", filename, n, corne.MaxCols)
	}
	return &f, nil
}

// ColsOr returns the column count set by the file, or def.
func (f *File) ColsOr(def int) int {
	if f == nil || f.Cols == nil {
		return def
	}
	return *f.Cols
}

// Apply returns cfg with the values set in f. The column count is not
// touched; build the base configuration with ColsOr instead.
func (f *File) Apply(cfg corne.Config) corne.Config {
	if f == nil {
		return cfg
	}
	set(&cfg.KeySize, f.KeySize)
	if len(f.KeyMargin) == 2 {
		cfg.KeyMargin = r2.Vec{X: f.KeyMargin[0], Y: f.KeyMargin[1]}
	}
	copy(cfg.Stagger[:], f.Stagger)
	set(&cfg.GridStartX, f.GridStartX)
	set(&cfg.ScrewRadius, f.ScrewRadius)
	set(&cfg.PlateKeyHole, f.PlateKeyHole)
	set(&cfg.PlateFillet, f.PlateFillet)
	if c := f.Cover; c != nil {
		set(&cfg.Cover.Thickness, c.Thickness)
		set(&cfg.Cover.Hull, c.Hull)
		set(&cfg.Cover.Fillet, c.Fillet)
		set(&cfg.Cover.OuterFillet, c.OuterFillet)
		set(&cfg.Cover.InsetDepth, c.InsetDepth)
	}
	if b := f.Bottom; b != nil {
		set(&cfg.Bottom.Thickness, b.Thickness)
		set(&cfg.Bottom.FootRadius, b.FootRadius)
		set(&cfg.Bottom.FootDepth, b.FootDepth)
		set(&cfg.Bottom.FootInset, b.FootInset)
	}
	return cfg
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
