// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

// Camera is a perspective camera looking at Target from Pos.
type Camera struct {

	// FOV is the vertical field of view, in degrees.
	FOV float32

	// Aspect is the aspect ratio of the projection.
	Aspect float32

	// Near is the distance of the near clipping plane.
	Near float32

	// Far is the distance of the far clipping plane.
	Far float32

	// Pos is the position of the camera.
	Pos math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the up direction of the camera.
	Up math32.Vector3

	// Projection is the projection matrix computed from
	// FOV, Aspect, Near and Far by [Camera.UpdateProjectionMatrix].
	Projection math32.Matrix4
}

// UpdateProjectionMatrix recomputes the projection matrix,
// which must be called after changing FOV, Aspect, Near or Far.
func (cm *Camera) UpdateProjectionMatrix() {
	cm.Projection.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
}
