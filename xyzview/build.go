// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzview shows the scene in a Cogent Core window using the
// xyz 3D framework, with a frame counter and a parameter panel.
package xyzview

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/learnxyz/scene"
)

// axisWidth is the width of the lines of the axes helper.
const axisWidth = 0.1

// Objects are the xyz objects built for a scene.
// It implements [anim.Renderer] for the xyz backend.
type Objects struct {

	// XYZ is the xyz scene that the objects are in.
	XYZ *xyz.Scene

	// Cube is the rotating cube.
	Cube *xyz.Solid

	// Sphere is the bouncing sphere.
	Sphere *xyz.Solid

	// Light is the spot light.
	Light *xyz.Spot

	// Axes is the group holding the axes helper lines.
	Axes *xyz.Group

	// OnRender, if set, is called by [Objects.Render] after
	// the xyz scene has been marked for update.
	OnRender func()
}

// Build builds the given scene description into the given xyz scene.
// xyz does not render shadows, so the shadow settings of the
// description have no effect here.
func Build(sc *xyz.Scene, desc *scene.Scene) *Objects {
	obj := &Objects{XYZ: sc}
	sc.Background = colors.Uniform(desc.Background)

	for _, nd := range desc.Nodes {
		switch nd.Kind {
		case scene.Axes:
			obj.Axes = buildAxes(sc, nd)
		case scene.SpotLight:
			obj.Light = xyz.NewSpot(sc, nd.Name, 1, xyz.DirectSun)
			obj.Light.Color = nd.Color
			obj.Light.Pose.Pos = nd.Pos
			obj.Light.LookAtOrigin()
		case scene.Plane:
			ms := xyz.NewPlane(sc, nd.Name, nd.Size.X, nd.Size.Y)
			rot := nd.Rot
			// xyz planes are already horizontal, facing +Y
			rot.X += math32.Pi / 2
			newSolid(sc, nd, ms, rot)
		case scene.Box:
			ms := xyz.NewBox(sc, nd.Name, nd.Size.X, nd.Size.Y, nd.Size.Z)
			sld := newSolid(sc, nd, ms, nd.Rot)
			if nd.Name == scene.CubeName {
				obj.Cube = sld
			}
		case scene.Sphere:
			ms := xyz.NewSphere(sc, nd.Name, nd.Size.X, nd.Segments)
			sld := newSolid(sc, nd, ms, nd.Rot)
			if nd.Name == scene.SphereName {
				obj.Sphere = sld
			}
		}
	}

	cm := &desc.Camera
	sc.Camera.FOV = cm.FOV
	sc.Camera.Near = cm.Near
	sc.Camera.Far = cm.Far
	sc.Camera.Pose.Pos = cm.Pos
	sc.Camera.LookAt(cm.Target, cm.Up)
	sc.SaveCamera("default")
	return obj
}

// newSolid adds a solid for the given node with the given mesh and rotation.
func newSolid(sc *xyz.Scene, nd *scene.Node, ms xyz.Mesh, rot math32.Vector3) *xyz.Solid {
	sld := xyz.NewSolid(sc).SetMesh(ms).SetColor(nd.Color)
	sld.SetName(nd.Name)
	sld.Pose.Pos = nd.Pos
	setRotation(sld, rot)
	return sld
}

// setRotation sets the rotation of the solid from Euler angles in radians.
func setRotation(sld *xyz.Solid, rot math32.Vector3) {
	sld.Pose.SetEulerRotation(math32.RadToDeg(rot.X), math32.RadToDeg(rot.Y), math32.RadToDeg(rot.Z))
}

// buildAxes adds the axes helper: red X, green Y and blue Z lines
// from the origin, in a group named after the node.
func buildAxes(sc *xyz.Scene, nd *scene.Node) *xyz.Group {
	gp := xyz.NewGroup(sc)
	gp.SetName(nd.Name)
	ln := nd.Size.X
	axes := []struct {
		name  string
		end   math32.Vector3
		color color.RGBA
	}{
		{"x", math32.Vec3(ln, 0, 0), colors.Red},
		{"y", math32.Vec3(0, ln, 0), colors.Green},
		{"z", math32.Vec3(0, 0, ln), colors.Blue},
	}
	for _, ax := range axes {
		nm := nd.Name + "-" + ax.name
		lm := xyz.NewLines(sc, nm, []math32.Vector3{{}, ax.end}, math32.Vec2(axisWidth, axisWidth), xyz.OpenLines)
		sld := xyz.NewSolid(gp).SetMesh(lm).SetColor(ax.color)
		sld.SetName(nm)
	}
	return gp
}

// Sync updates the poses of the cube and the sphere from the state.
func (obj *Objects) Sync(st *scene.State) {
	if obj.Cube != nil {
		obj.Cube.Pose.SetEulerRotation(0, 0, math32.RadToDeg(st.CubeRotation))
	}
	if obj.Sphere != nil {
		obj.Sphere.Pose.Pos = st.SpherePos
	}
}

// Render marks the xyz scene as needing an update, which the scene
// widget renders on its next paint.
func (obj *Objects) Render() error {
	obj.XYZ.SetNeedsUpdate()
	if obj.OnRender != nil {
		obj.OnRender()
	}
	return nil
}
