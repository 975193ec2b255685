package render

import (
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// View places the camera of a preview. The mesh is fitted in a bi-unit
// cube centered at the origin before it is drawn.
type View struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eye       r3.Vec
	Near, Far float64
	// Width and Height of the output in pixels.
	Width, Height int
	// Supersample renders at a multiple of the output size and scales down.
	Supersample int
}

// DefaultView is an isometric view from above the key face.
var DefaultView = View{
	Up:          r3.Vec{Z: 1},
	Eye:         r3.Vec{X: 2.4, Y: -2.4, Z: 2.4},
	Near:        1,
	Far:         10,
	Width:       960,
	Height:      540,
	Supersample: 2,
}

// Preview renders the STL file at stlPath with phong shading.
func Preview(stlPath string, view View) (image.Image, error) {
	mesh, err := fauxgl.LoadSTL(stlPath)
	if err != nil {
		return nil, err
	}
	const fovy = 30 // vertical field of view in degrees
	scale := view.Supersample
	if scale < 1 {
		scale = 1
	}
	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)
	mesh.BiUnitCube()
	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	return resize.Resize(uint(view.Width), uint(view.Height), context.Image(), resize.Bilinear), nil
}

// CreatePreview renders the STL file at stlPath to a PNG file at pngPath.
func CreatePreview(stlPath, pngPath string, view View) error {
	img, err := Preview(stlPath, view)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(pngPath, img)
}
