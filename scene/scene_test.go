// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/learnxyz/controls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScene(t *testing.T) *Scene {
	sc, err := New(1920, 1080)
	require.NoError(t, err)
	return sc
}

func TestNew(t *testing.T) {
	sc := newScene(t)
	assert.Equal(t, image.Pt(1920, 1080), sc.Size)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, sc.Background)
	assert.True(t, sc.Shadows)

	cm := sc.Camera
	assert.Equal(t, float32(45), cm.FOV)
	assert.InDelta(t, 1920.0/1080.0, cm.Aspect, 1e-6)
	assert.Equal(t, float32(0.1), cm.Near)
	assert.Equal(t, float32(1000), cm.Far)
	assert.Equal(t, math32.Vec3(-30, 40, 30), cm.Pos)
	assert.Equal(t, math32.Vector3{}, cm.Target)

	names := []string{}
	kinds := []string{}
	for _, nd := range sc.Nodes {
		names = append(names, nd.Name)
		kinds = append(kinds, nd.Kind.String())
	}
	assert.Equal(t, []string{AxesName, LightName, PlaneName, CubeName, SphereName}, names)
	assert.Equal(t, []string{"Axes", "SpotLight", "Plane", "Box", "Sphere"}, kinds)
	assert.Len(t, Axes.Values(), int(KindsN))
	assert.Equal(t, 5, sc.NumChildren())

	assert.Equal(t, float32(20), sc.Node(AxesName).Size.X)

	lt := sc.Node(LightName)
	assert.Equal(t, SpotLight, lt.Kind)
	assert.Equal(t, math32.Vec3(-40, 40, 15), lt.Pos)
	assert.True(t, lt.CastShadow)
	assert.Equal(t, image.Pt(1024, 1024), lt.ShadowMapSize)

	pl := sc.Node(PlaneName)
	assert.Equal(t, Plane, pl.Kind)
	assert.Equal(t, float32(60), pl.Size.X)
	assert.Equal(t, float32(20), pl.Size.Y)
	assert.Equal(t, math32.Vec3(15, 0, 0), pl.Pos)
	assert.InDelta(t, -math32.Pi/2, pl.Rot.X, 1e-6)
	assert.True(t, pl.ReceiveShadow)
	assert.False(t, pl.CastShadow)

	cb := sc.Node(CubeName)
	assert.Equal(t, Box, cb.Kind)
	assert.Equal(t, math32.Vec3(4, 4, 4), cb.Size)
	assert.Equal(t, math32.Vec3(-4, 3, 0), cb.Pos)
	assert.True(t, cb.CastShadow)

	sp := sc.Node(SphereName)
	assert.Equal(t, Sphere, sp.Kind)
	assert.Equal(t, float32(4), sp.Size.X)
	assert.Equal(t, math32.Vec3(20, 4, 2), sp.Pos)
	assert.True(t, sp.CastShadow)

	assert.Nil(t, sc.Node("missing"))
}

func TestNewInvalid(t *testing.T) {
	_, err := New(0, 600)
	assert.Error(t, err)
	_, err = New(800, -1)
	assert.Error(t, err)
}

func TestResize(t *testing.T) {
	sc := newScene(t)
	assert.InDelta(t, 1.7778, sc.Camera.Aspect, 1e-4)

	sc.Resize(800, 600)
	assert.Equal(t, float32(0.75), sc.Camera.Aspect)
	assert.Equal(t, image.Pt(800, 600), sc.Size)
	m := sc.Camera.Projection
	assert.InDelta(t, 0.75, m[5]/m[0], 1e-5)

	// ignored
	sc.Resize(0, 0)
	assert.Equal(t, image.Pt(800, 600), sc.Size)
	assert.Equal(t, 5, sc.NumChildren())
}

func TestSpherePositionRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := range 10000 {
		step := float32(i) * 0.01
		if i%2 == 1 {
			step = rnd.Float32() * 1000
		}
		x, y := SpherePosition(step)
		assert.GreaterOrEqual(t, y, float32(2), "step %v", step)
		assert.LessOrEqual(t, y, float32(12), "step %v", step)
		assert.GreaterOrEqual(t, x, float32(10), "step %v", step)
		assert.LessOrEqual(t, x, float32(30), "step %v", step)
	}
}

func TestAdvance(t *testing.T) {
	sc := newScene(t)
	st := sc.NewState()
	assert.Equal(t, math32.Vec3(20, 4, 2), st.SpherePos)

	c := controls.Controls{RotationSpeed: 0.02, BouncingSpeed: 0.03}
	prevRot := st.CubeRotation
	n := 500
	for range n {
		st.Advance(c)
		assert.InDelta(t, 0.02, st.CubeRotation-prevRot, 1e-5)
		prevRot = st.CubeRotation
		x, y := SpherePosition(st.Step)
		assert.Equal(t, x, st.SpherePos.X)
		assert.Equal(t, y, st.SpherePos.Y)
		assert.Equal(t, float32(2), st.SpherePos.Z)
	}
	assert.InDelta(t, float64(n)*0.03, st.Step, 1e-3)
	assert.InDelta(t, float64(n)*0.02, st.CubeRotation, 1e-3)
}

func TestAdvanceZeroSpeeds(t *testing.T) {
	sc := newScene(t)
	st := sc.NewState()
	c := controls.Controls{}
	st.Advance(c)
	first := st
	assert.Equal(t, float32(30), st.SpherePos.X)
	assert.Equal(t, float32(2), st.SpherePos.Y)
	for range 100 {
		st.Advance(c)
		assert.Equal(t, first, st)
	}
}
