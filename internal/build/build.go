// Package build runs a whole generation: it builds and checks every part,
// then exports meshes, sketches and previews into an output directory.
//
// Nothing is written to the output directory unless every step succeeds.
// Files are rendered into a staging directory next to it first.
package build

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	corne "github.com/bendavis78/corne-case"
	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/helpers/matter"
	"github.com/bendavis78/corne-case/internal/manifest"
	"github.com/bendavis78/corne-case/parts"
	"github.com/bendavis78/corne-case/render"
	"github.com/deadsy/sdfx/sdf"
	"github.com/rs/zerolog"
	"gonum.org/v1/plot/vg"
)

// DefaultCells is the marching cubes resolution along the longest side of
// a part.
const DefaultCells = 300

// layoutSize is the side of the square layout diagram.
const layoutSize = 8 * vg.Inch

// Options control an export.
type Options struct {
	// Out is the output root. It is created if absent.
	Out string
	// Cells is the mesher resolution. Zero means DefaultCells.
	Cells int
	// Preview enables PNG previews.
	Preview bool
	// Material, if not nil, enlarges holes and scales parts to print true
	// in that material.
	Material *matter.ViscousMaterial
	Log      zerolog.Logger
}

func (o Options) cells() int {
	if o.Cells <= 0 {
		return DefaultCells
	}
	return o.Cells
}

// Result is what a generation produced.
type Result struct {
	Parts    parts.Set
	Manifest *manifest.Manifest
}

// Validate builds every part of cfg and checks the assembly fit without
// writing any file.
func Validate(cfg corne.Config, log zerolog.Logger) (parts.Set, error) {
	set, _, err := validate(cfg, log, 0)
	return set, err
}

// validate builds and checks the parts. A positive cells also checks that
// meshing at that resolution keeps every feature.
func validate(cfg corne.Config, log zerolog.Logger, cells int) (parts.Set, sdf.SDF2, error) {
	b, err := parts.NewBuilder(cfg, log)
	if err != nil {
		return parts.Set{}, nil, err
	}
	start := time.Now()
	set, err := b.Build()
	if err != nil {
		return parts.Set{}, nil, err
	}
	log.Debug().Dur("took", time.Since(start)).Msg("parts built")
	if cells > 0 {
		if err := CheckCells(set.All(), cells); err != nil {
			return parts.Set{}, nil, err
		}
	}
	start = time.Now()
	if err := parts.CheckFit(set); err != nil {
		return parts.Set{}, nil, err
	}
	log.Debug().Dur("took", time.Since(start)).Msg("fit checked")
	plate, err := parts.KeyPlate(cfg)
	if err != nil {
		return parts.Set{}, nil, err
	}
	if cells > 0 {
		if err := checkCell("keyplate", plate.BoundingBox().Size().MaxComponent(),
			math.Min(cfg.ScrewRadius, cfg.PlateFillet), cells); err != nil {
			return parts.Set{}, nil, err
		}
	}
	return set, plate, nil
}

// CheckCells fails if meshing any of ps with cells on its longest side
// would use cells as large as the part's thinnest feature.
func CheckCells(ps []parts.Part, cells int) error {
	for _, p := range ps {
		size := p.Bounds().Size()
		longest := math.Max(size.X, math.Max(size.Y, size.Z))
		if err := checkCell(p.Name, longest, p.Feature, cells); err != nil {
			return err
		}
	}
	return nil
}

func checkCell(name string, longest, feature float64, cells int) error {
	if cell := longest / float64(cells); cell >= feature {
		need := int(math.Floor(longest/feature)) + 1
		return fault.New(fault.CoarseMesh, name,
			"cell %.3g mm is not finer than its %.3g mm feature, use at least %d cells", cell, feature, need)
	}
	return nil
}

// Generate builds, checks and exports every part of cfg into opts.Out.
func Generate(cfg corne.Config, opts Options) (*Result, error) {
	if opts.Material != nil {
		cfg = cfg.Compensated(*opts.Material)
		opts.Log.Info().Str("material", opts.Material.Name).Msg("compensating shrinkage")
	}
	set, plate, err := validate(cfg, opts.Log, opts.cells())
	if err != nil {
		return nil, err
	}
	layers, err := Layers(cfg)
	if err != nil {
		return nil, err
	}
	var m *manifest.Manifest
	err = commit(opts.Out, func(dir string) error {
		e := exporter{dir: dir, opts: opts}
		for _, p := range set.All() {
			if err := e.part(p); err != nil {
				return err
			}
		}
		if err := e.sketch(plate); err != nil {
			return err
		}
		if err := e.layout(cfg, layers); err != nil {
			return err
		}
		if m, err = manifest.Scan(dir, cfg.Cols); err != nil {
			return err
		}
		return m.WriteFile(dir)
	})
	if err != nil {
		return nil, err
	}
	opts.Log.Info().Str("out", opts.Out).Int("files", len(m.Files)).Msg("generation done")
	return &Result{Parts: set, Manifest: m}, nil
}

// Layout writes the layout drawing of cfg into opts.Out without building
// the parts.
func Layout(cfg corne.Config, opts Options) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	layers, err := Layers(cfg)
	if err != nil {
		return err
	}
	return commit(opts.Out, func(dir string) error {
		return exporter{dir: dir, opts: opts}.layout(cfg, layers)
	})
}

type exporter struct {
	dir  string
	opts Options
}

func (e exporter) path(sub, name string) (string, error) {
	d := filepath.Join(e.dir, sub)
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(d, name), nil
}

func (e exporter) logFile(path string, start time.Time) {
	ev := e.opts.Log.Info()
	rel, err := filepath.Rel(e.dir, path)
	if err != nil {
		rel = path
	}
	if fi, err := os.Stat(path); err == nil {
		ev = ev.Int64("size", fi.Size())
	}
	ev.Str("path", filepath.ToSlash(rel)).Dur("took", time.Since(start)).Msg("wrote")
}

// part meshes p once and writes the mesh as STL and 3MF, then previews it.
func (e exporter) part(p parts.Part) error {
	s := p.Solid
	if m := e.opts.Material; m != nil {
		s = m.Scale(s)
	}
	start := time.Now()
	model, err := render.RenderAll(render.NewMeshRenderer(s, e.opts.cells()))
	if err != nil {
		return fmt.Errorf("%s: mesh: %w", p.Name, err)
	}
	e.opts.Log.Debug().Str("part", p.Name).Int("triangles", len(model)).Dur("took", time.Since(start)).Msg("meshed")

	stl, err := e.path("stl", p.Name+".stl")
	if err != nil {
		return err
	}
	start = time.Now()
	if _, err := render.CreateSTL(stl, render.Triangles(model)); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	e.logFile(stl, start)

	mf, err := e.path("3mf", p.Name+".3mf")
	if err != nil {
		return err
	}
	start = time.Now()
	if _, err := render.Create3MF(mf, render.Triangles(model)); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	e.logFile(mf, start)

	if !e.opts.Preview {
		return nil
	}
	png, err := e.path("preview", p.Name+".png")
	if err != nil {
		return err
	}
	start = time.Now()
	if err := render.CreatePreview(stl, png, render.DefaultView); err != nil {
		return fmt.Errorf("%s: preview: %w", p.Name, err)
	}
	e.logFile(png, start)
	return nil
}

// sketch traces the laser cut key plate once and writes it as DXF and SVG.
func (e exporter) sketch(plate sdf.SDF2) error {
	const name = "keyplate"
	start := time.Now()
	lines, err := render.SketchLines(plate, e.opts.cells())
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	e.opts.Log.Debug().Str("part", name).Int("lines", len(lines)).Dur("took", time.Since(start)).Msg("traced")
	dxf, err := e.path("dxf", name+".dxf")
	if err != nil {
		return err
	}
	start = time.Now()
	if _, err := render.CreateDXF(dxf, lines); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	e.logFile(dxf, start)
	svg, err := e.path("svg", name+".svg")
	if err != nil {
		return err
	}
	start = time.Now()
	if _, err := render.CreateSVG(svg, lines); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	e.logFile(svg, start)
	return nil
}

func (e exporter) layout(cfg corne.Config, layers []render.Layer) error {
	dxf, err := e.path("dxf", "layout.dxf")
	if err != nil {
		return err
	}
	start := time.Now()
	if err := render.CreateLayoutDXF(dxf, layers); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	e.logFile(dxf, start)
	if !e.opts.Preview {
		return nil
	}
	png, err := e.path("preview", "layout.png")
	if err != nil {
		return err
	}
	start = time.Now()
	title := fmt.Sprintf("corne %d column layout", cfg.Cols)
	if err := render.SaveLayoutPNG(png, title, layers, layoutSize); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	e.logFile(png, start)
	return nil
}

// commit runs write against a fresh staging directory next to out and
// moves the staged files into out only if write succeeds. The staging
// directory is always removed.
func commit(out string, write func(dir string) error) error {
	if out == "" {
		return fmt.Errorf("build: empty output directory")
	}
	out = filepath.Clean(out)
	parent := filepath.Dir(out)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return err
	}
	staging, err := os.MkdirTemp(parent, "."+filepath.Base(out)+"-staging-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(staging)
	if err := write(staging); err != nil {
		return err
	}
	return filepath.WalkDir(staging, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(staging, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(out, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		return os.Rename(path, dst)
	})
}
