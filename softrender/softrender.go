// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package softrender renders the scene on the CPU with fauxgl,
// for snapshots and for running without a GPU or a window.
package softrender

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/math32"
	"cogentcore.org/learnxyz/scene"
	"cogentcore.org/learnxyz/stats"
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// axisWidth is the thickness of the lines of the axes helper.
const axisWidth = 0.1

// Renderer is a software rendering backend for a scene.
// Shadows are not rendered; see DESIGN.md.
type Renderer struct {

	// Scene is the scene to render.
	Scene *scene.Scene

	// Supersample is the factor by which frames are rendered
	// larger and then scaled down, for antialiasing.
	Supersample int `default:"2" min:"1"`

	// Stats, if set, is drawn in the top-left corner of every frame.
	Stats *stats.Stats

	// meshes are the meshes of the nodes, fit in a bi-unit cube.
	meshes map[string]*fauxgl.Mesh

	state scene.State
	image *image.RGBA
}

// New returns a new [Renderer] for the given scene.
func New(sc *scene.Scene) *Renderer {
	r := &Renderer{Scene: sc, Supersample: 2, state: sc.NewState()}
	r.meshes = make(map[string]*fauxgl.Mesh, len(sc.Nodes))
	for _, nd := range sc.Nodes {
		if ms := unitMesh(nd); ms != nil {
			r.meshes[nd.Name] = ms
		}
	}
	return r
}

// unitMesh returns the mesh for the given node, centered at the
// origin and spanning -1 to 1, or nil for kinds without a mesh.
func unitMesh(nd *scene.Node) *fauxgl.Mesh {
	var ms *fauxgl.Mesh
	switch nd.Kind {
	case scene.Axes, scene.Box:
		ms = fauxgl.NewCube()
	case scene.Plane:
		ms = fauxgl.NewPlane()
	case scene.Sphere:
		ms = fauxgl.NewSphere(sphereDetail(nd.Segments))
	default:
		return nil
	}
	ms.BiUnitCube()
	return ms
}

// maxSphereDetail is the largest subdivision level of a sphere mesh.
const maxSphereDetail = 5

// sphereDetail returns the subdivision level of the icosphere that
// has at least as many triangles as a sphere with the given number of
// width and height segments (2 * segments * segments). An icosphere of
// level d has 20 * 4^d triangles.
func sphereDetail(segments int) int {
	want := 2 * segments * segments
	d := 1
	for tris := 80; tris < want && d < maxSphereDetail; tris *= 4 {
		d++
	}
	return d
}

// Sync records the animated state to use for the next render.
func (r *Renderer) Sync(st *scene.State) {
	r.state = *st
}

// Resize resizes the scene and the rendered output.
func (r *Renderer) Resize(width, height int) {
	r.Scene.Resize(width, height)
}

// Image returns the last rendered image, or nil before the first render.
func (r *Renderer) Image() *image.RGBA {
	return r.image
}

// Save saves the last rendered image to the given file,
// in the format given by its extension.
func (r *Renderer) Save(filename string) error {
	if r.image == nil {
		if err := r.Render(); err != nil {
			return err
		}
	}
	return imagex.Save(r.image, filename)
}

// Render renders the scene with the current state.
func (r *Renderer) Render() error {
	sc := r.Scene
	ss := max(r.Supersample, 1)
	width, height := sc.Size.X, sc.Size.Y

	ctx := fauxgl.NewContext(width*ss, height*ss)
	ctx.ClearColorBufferWith(fauxColor(sc.Background))
	ctx.Cull = fauxgl.CullNone

	cm := &sc.Camera
	eye := fauxVec(cm.Pos)
	matrix := fauxgl.LookAt(eye, fauxVec(cm.Target), fauxVec(cm.Up)).
		Perspective(float64(cm.FOV), float64(cm.Aspect), float64(cm.Near), float64(cm.Far))

	light := fauxgl.V(0, 1, 0)
	if lt := sc.Node(scene.LightName); lt != nil {
		light = fauxVec(lt.Pos).Normalize()
	}

	for _, nd := range sc.Nodes {
		switch nd.Kind {
		case scene.SpotLight:
			continue
		case scene.Axes:
			r.drawAxes(ctx, matrix, nd)
		default:
			shader := fauxgl.NewPhongShader(matrix, light, eye)
			shader.ObjectColor = fauxColor(nd.Color)
			shader.SpecularColor = fauxgl.Black // lambert
			ctx.Shader = shader
			ctx.DrawMesh(r.nodeMesh(nd))
		}
	}

	var img image.Image = ctx.Image()
	if ss > 1 {
		img = resize.Resize(uint(width), uint(height), img, resize.Bilinear)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	if r.Stats != nil {
		drawOverlay(rgba, r.Stats.Text())
	}
	r.image = rgba
	return nil
}

// nodeMesh returns the mesh of the given node transformed to its
// size, rotation and position, with the animated state applied.
func (r *Renderer) nodeMesh(nd *scene.Node) *fauxgl.Mesh {
	pos := nd.Pos
	rot := nd.Rot
	half := nd.Size.MulScalar(0.5)
	switch nd.Kind {
	case scene.Box:
		if nd.Name == scene.CubeName {
			rot.Z = r.state.CubeRotation
		}
	case scene.Sphere:
		half = math32.Vec3(nd.Size.X, nd.Size.X, nd.Size.X)
		if nd.Name == scene.SphereName {
			pos = r.state.SpherePos
		}
	case scene.Plane:
		half.Z = 1
	}
	m := fauxgl.Identity().
		Scale(fauxVec(half)).
		Rotate(fauxgl.V(0, 0, 1), float64(rot.Z)).
		Rotate(fauxgl.V(0, 1, 0), float64(rot.Y)).
		Rotate(fauxgl.V(1, 0, 0), float64(rot.X)).
		Translate(fauxVec(pos))
	ms := r.meshes[nd.Name].Copy()
	ms.Transform(m)
	return ms
}

// drawAxes draws the axes helper as three thin boxes from the origin,
// colored red, green and blue for X, Y and Z.
func (r *Renderer) drawAxes(ctx *fauxgl.Context, matrix fauxgl.Matrix, nd *scene.Node) {
	hl := float64(nd.Size.X) / 2
	hw := axisWidth / 2
	axes := []struct {
		half, center fauxgl.Vector
		color        fauxgl.Color
	}{
		{fauxgl.V(hl, hw, hw), fauxgl.V(hl, 0, 0), fauxgl.Color{R: 1, A: 1}},
		{fauxgl.V(hw, hl, hw), fauxgl.V(0, hl, 0), fauxgl.Color{G: 1, A: 1}},
		{fauxgl.V(hw, hw, hl), fauxgl.V(0, 0, hl), fauxgl.Color{B: 1, A: 1}},
	}
	for _, ax := range axes {
		ms := r.meshes[nd.Name].Copy()
		ms.Transform(fauxgl.Identity().Scale(ax.half).Translate(ax.center))
		ctx.Shader = fauxgl.NewSolidColorShader(matrix, ax.color)
		ctx.DrawMesh(ms)
	}
}

// drawOverlay draws the given text in the top-left corner of the image.
func drawOverlay(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{0, 255, 255, 255}),
		Face: face,
	}
	w := d.MeasureString(text).Ceil() + 8
	h := face.Metrics().Height.Ceil() + 6
	draw.Draw(img, image.Rect(0, 0, w, h), image.NewUniform(color.RGBA{0, 0, 34, 230}), image.Point{}, draw.Over)
	d.Dot = fixed.P(4, 3+face.Metrics().Ascent.Ceil())
	d.DrawString(text)
}

func fauxVec(v math32.Vector3) fauxgl.Vector {
	return fauxgl.V(float64(v.X), float64(v.Y), float64(v.Z))
}

func fauxColor(c color.RGBA) fauxgl.Color {
	return fauxgl.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
