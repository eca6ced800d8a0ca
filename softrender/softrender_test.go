// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softrender

import (
	"image"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/learnxyz/anim"
	"cogentcore.org/learnxyz/controls"
	"cogentcore.org/learnxyz/scene"
	"cogentcore.org/learnxyz/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, width, height int) *Renderer {
	sc, err := scene.New(width, height)
	require.NoError(t, err)
	r := New(sc)
	r.Supersample = 1
	return r
}

// countPixels returns the number of pixels for which fun returns true.
func countPixels(img *image.RGBA, fun func(r, g, b uint8) bool) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if fun(c.R, c.G, c.B) {
				n++
			}
		}
	}
	return n
}

func TestRender(t *testing.T) {
	r := newTestRenderer(t, 320, 240)
	assert.Nil(t, r.Image())
	require.NoError(t, r.Render())
	img := r.Image()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 320, 240), img.Bounds())

	red := countPixels(img, isRed)
	green := countPixels(img, isGreen)
	gray := countPixels(img, func(r, g, b uint8) bool { return r > 60 && r == g && g == b })
	assert.Positive(t, red, "cube")
	assert.Positive(t, green, "sphere")
	assert.Positive(t, gray, "plane")

	// the camera looks at the origin from (-30, 40, 30), so its right
	// direction is (1, 0, 1): the cube (x+z = -4) is left of the center
	// and the sphere (x+z = 22) is right of it
	cube := centroid(img, isRed)
	sphere := centroid(img, isGreen)
	assert.Less(t, cube.X, 160)
	assert.Greater(t, sphere.X, 160)
	assert.Less(t, cube.X, sphere.X)

	// rendering is deterministic
	first := image.NewRGBA(img.Bounds())
	copy(first.Pix, img.Pix)
	require.NoError(t, r.Render())
	assert.Equal(t, first.Pix, r.Image().Pix)
}

func isRed(r, g, b uint8) bool   { return r > 120 && g < 60 && b < 60 }
func isGreen(r, g, b uint8) bool { return g > 120 && r < 60 && b < 60 }

// centroid returns the mean position of the pixels for which fun returns true.
func centroid(img *image.RGBA, fun func(r, g, b uint8) bool) image.Point {
	sum, n := image.Point{}, 0
	bd := img.Bounds()
	for y := bd.Min.Y; y < bd.Max.Y; y++ {
		for x := bd.Min.X; x < bd.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if fun(c.R, c.G, c.B) {
				sum = sum.Add(image.Pt(x, y))
				n++
			}
		}
	}
	if n == 0 {
		return image.Point{}
	}
	return sum.Div(n)
}

func TestRenderAnimated(t *testing.T) {
	r := newTestRenderer(t, 160, 120)
	r.Stats = stats.New(stats.FPS)
	l := anim.New(r.Scene, controls.NewHandle(controls.Controls{RotationSpeed: 0.1, BouncingSpeed: 0.1}), r.Stats, r)
	require.NoError(t, r.Render())
	first := image.NewRGBA(r.Image().Bounds())
	copy(first.Pix, r.Image().Pix)

	assert.Equal(t, 10, l.RunFrames(10))
	assert.Equal(t, l.State, r.state)
	assert.NotEqual(t, first.Pix, r.Image().Pix)
}

func TestResize(t *testing.T) {
	r := newTestRenderer(t, 160, 120)
	r.Resize(100, 50)
	require.NoError(t, r.Render())
	assert.Equal(t, image.Rect(0, 0, 100, 50), r.Image().Bounds())
	assert.Equal(t, float32(0.5), r.Scene.Camera.Aspect)
}

func TestSphereDetail(t *testing.T) {
	assert.Equal(t, 1, sphereDetail(0))
	assert.Equal(t, 1, sphereDetail(4))
	assert.Equal(t, 2, sphereDetail(8))
	assert.Equal(t, 3, sphereDetail(20))
	assert.Equal(t, 4, sphereDetail(32))
	assert.Equal(t, maxSphereDetail, sphereDetail(1000))

	sc, err := scene.New(320, 240)
	require.NoError(t, err)
	nd := *sc.Node(scene.SphereName)
	assert.Len(t, unitMesh(&nd).Triangles, 20*64)
	nd.Segments = 4
	assert.Len(t, unitMesh(&nd).Triangles, 20*4)
}

func TestSupersampleSave(t *testing.T) {
	r := newTestRenderer(t, 80, 60)
	r.Supersample = 3
	fn := filepath.Join(t.TempDir(), "snap.png")
	require.NoError(t, r.Save(fn))
	img, _, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 80, 60), img.Bounds())
}
