// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/learnxyz/controls"
)

// State is the animated state of the scene.
type State struct {

	// Step is the bounce progress of the sphere,
	// advanced by the bouncing speed every frame.
	Step float32

	// CubeRotation is the rotation of the cube about its
	// Z axis, in radians.
	CubeRotation float32

	// SpherePos is the position of the sphere.
	SpherePos math32.Vector3
}

// NewState returns the state of the scene before the first frame.
func (sc *Scene) NewState() State {
	st := State{}
	if cube := sc.Node(CubeName); cube != nil {
		st.CubeRotation = cube.Rot.Z
	}
	if sph := sc.Node(SphereName); sph != nil {
		st.SpherePos = sph.Pos
	}
	return st
}

// Advance advances the state by one frame with the given speeds:
// the step advances by the bouncing speed, the cube rotates by the
// rotation speed, and the sphere moves to [SpherePosition] of the
// new step.
func (st *State) Advance(c controls.Controls) {
	st.Step += c.BouncingSpeed
	st.CubeRotation += c.RotationSpeed
	st.SpherePos.X, st.SpherePos.Y = SpherePosition(st.Step)
}

// SpherePosition returns the X and Y position of the sphere for the
// given step: a horizontal swing around X = 20 combined with a bounce
// that never goes below Y = 2.
func SpherePosition(step float32) (x, y float32) {
	x = 20 + 10*math32.Cos(step)
	y = 2 + 10*math32.Abs(math32.Sin(step))
	return
}
