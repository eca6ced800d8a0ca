// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene describes the fixed demo scene: a ground plane,
// a cube, a sphere, an axes helper and one spot light, viewed by a
// perspective camera, together with the rules that animate the cube
// and the sphere every frame. The description is plain data that a
// rendering backend turns into its own objects.
package scene

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

//go:generate core generate

// Kinds are the kinds of [Node] in the scene.
type Kinds int32 //enums:enum

const (
	// Axes is an axes helper: X, Y and Z lines from the origin
	// of length Size.X, colored red, green and blue.
	Axes Kinds = iota

	// SpotLight is a light with a position, aimed at the origin.
	SpotLight

	// Plane is a flat rectangle of Size.X by Size.Y,
	// authored in the XY plane.
	Plane

	// Box is a box of Size.X by Size.Y by Size.Z.
	Box

	// Sphere is a sphere of radius Size.X.
	Sphere
)

// Names of the nodes in the scene.
const (
	AxesName   = "axes"
	LightName  = "spot-light"
	PlaneName  = "plane"
	CubeName   = "cube"
	SphereName = "sphere"
)

// Node is one object of the scene.
type Node struct {
	Name string
	Kind Kinds

	// Size is the size of the node; see [Kinds] for its meaning.
	Size math32.Vector3

	// Segments is the number of width and height segments of a sphere.
	Segments int

	// Pos is the position of the node.
	Pos math32.Vector3

	// Rot is the rotation of the node as Euler angles in radians,
	// applied in X, Y, Z order.
	Rot math32.Vector3

	// Color is the material color, or the light color.
	Color color.RGBA

	// CastShadow is whether the node casts shadows.
	CastShadow bool

	// ReceiveShadow is whether shadows are drawn on the node.
	ReceiveShadow bool

	// ShadowMapSize is the size of the shadow map of a light.
	ShadowMapSize image.Point
}

// Scene is the description of the whole scene.
type Scene struct {

	// Size is the size of the rendered output, in pixels.
	Size image.Point

	// Background is the color behind all objects.
	Background color.RGBA

	// Shadows is whether shadow rendering is enabled.
	Shadows bool

	// Camera is the camera that the scene is viewed through.
	Camera Camera

	// Nodes are the children of the scene, in the order added.
	Nodes []*Node
}

// New returns the demo scene for a viewport of the given size in pixels.
func New(width, height int) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scene.New: viewport size must be positive, not %dx%d", width, height)
	}
	sc := &Scene{
		Size:       image.Pt(width, height),
		Background: colors.Black,
		Shadows:    true,
	}
	sc.Camera = Camera{
		FOV:    45,
		Aspect: float32(width) / float32(height),
		Near:   0.1,
		Far:    1000,
		Pos:    math32.Vec3(-30, 40, 30),
		Up:     math32.Vec3(0, 1, 0),
	}
	sc.Camera.UpdateProjectionMatrix()

	sc.Nodes = []*Node{
		{
			Name:  AxesName,
			Kind:  Axes,
			Size:  math32.Vec3(20, 20, 20),
			Color: colors.White,
		},
		{
			Name:          LightName,
			Kind:          SpotLight,
			Pos:           math32.Vec3(-40, 40, 15),
			Color:         colors.White,
			CastShadow:    true,
			ShadowMapSize: image.Pt(1024, 1024),
		},
		{
			Name:          PlaneName,
			Kind:          Plane,
			Size:          math32.Vec3(60, 20, 0),
			Pos:           math32.Vec3(15, 0, 0),
			Rot:           math32.Vec3(-0.5*math32.Pi, 0, 0),
			Color:         color.RGBA{0xAA, 0xAA, 0xAA, 0xFF},
			ReceiveShadow: true,
		},
		{
			Name:       CubeName,
			Kind:       Box,
			Size:       math32.Vec3(4, 4, 4),
			Pos:        math32.Vec3(-4, 3, 0),
			Color:      color.RGBA{0xFF, 0x00, 0x00, 0xFF},
			CastShadow: true,
		},
		{
			Name:       SphereName,
			Kind:       Sphere,
			Size:       math32.Vec3(4, 4, 4),
			Segments:   20,
			Pos:        math32.Vec3(20, 4, 2),
			Color:      color.RGBA{0x00, 0xFF, 0x00, 0xFF},
			CastShadow: true,
		},
	}
	return sc, nil
}

// NumChildren returns the number of nodes in the scene.
func (sc *Scene) NumChildren() int {
	return len(sc.Nodes)
}

// Node returns the node with the given name, or nil if there is none.
func (sc *Scene) Node(name string) *Node {
	for _, nd := range sc.Nodes {
		if nd.Name == name {
			return nd
		}
	}
	return nil
}

// Resize handles a change of the viewport to the given size:
// it sets the camera aspect ratio, recomputes the projection matrix,
// and resizes the rendered output.
//
// The aspect ratio is set to height / width, the inverse of the
// width / height ratio used by [New]. This matches the observed
// behavior of the demo and is kept as is; see DESIGN.md.
func (sc *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	sc.Camera.Aspect = float32(height) / float32(width)
	sc.Camera.UpdateProjectionMatrix()
	sc.Size = image.Pt(width, height)
}
