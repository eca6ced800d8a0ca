// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package controls provides the two animation speeds that can be
// tweaked live while the scene is animating, and the [Handle] that
// owns them.
package controls

import (
	"sync"

	"cogentcore.org/core/math32"
)

const (
	// Min is the minimum value of each speed.
	Min float32 = 0

	// Max is the maximum value of each speed.
	Max float32 = 0.5

	// Step is the slider step for each speed.
	Step float32 = 0.01
)

// Controls are the animation speeds read by every frame.
type Controls struct {

	// RotationSpeed is the amount (in radians) that the cube
	// rotates about its Z axis each frame.
	RotationSpeed float32 `default:"0.01" min:"0" max:"0.5" step:"0.01" toml:"rotationSpeed" yaml:"rotationSpeed"`

	// BouncingSpeed is the amount that the bounce step of the
	// sphere advances each frame.
	BouncingSpeed float32 `default:"0.01" min:"0" max:"0.5" step:"0.01" toml:"bouncingSpeed" yaml:"bouncingSpeed"`
}

// Defaults sets the default speeds.
func (c *Controls) Defaults() {
	c.RotationSpeed = 0.01
	c.BouncingSpeed = 0.01
}

// Clamp returns the controls with each speed clamped to [Min, Max].
func (c Controls) Clamp() Controls {
	c.RotationSpeed = math32.Clamp(c.RotationSpeed, Min, Max)
	c.BouncingSpeed = math32.Clamp(c.BouncingSpeed, Min, Max)
	return c
}

// Handle is the single owner of a [Controls] value. Writers (the
// parameter panel, the file watcher, the command line) go through
// [Handle.Set], and the frame loop takes a copy with [Handle.Get] once
// per frame, so a change is visible on the next frame.
//
// Every write is clamped to [Min, Max], not only those from the
// sliders, so a controls file or flag cannot set a speed that the
// sliders are unable to show.
type Handle struct {
	mu       sync.RWMutex
	controls Controls
	onChange []func(c Controls)
}

// NewHandle returns a new [Handle] holding the given controls, clamped.
func NewHandle(c Controls) *Handle {
	return &Handle{controls: c.Clamp()}
}

// Get returns a copy of the current controls.
func (h *Handle) Get() Controls {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.controls
}

// Set sets the controls, clamping each speed to [Min, Max], and calls
// any [Handle.OnChange] functions with the stored value, which is returned.
func (h *Handle) Set(c Controls) Controls {
	return h.update(func(cur *Controls) { *cur = c })
}

// SetRotationSpeed sets only the rotation speed.
func (h *Handle) SetRotationSpeed(v float32) {
	h.update(func(cur *Controls) { cur.RotationSpeed = v })
}

// SetBouncingSpeed sets only the bouncing speed.
func (h *Handle) SetBouncingSpeed(v float32) {
	h.update(func(cur *Controls) { cur.BouncingSpeed = v })
}

// update applies fun to the stored controls under the lock,
// then notifies the change functions outside of it.
func (h *Handle) update(fun func(cur *Controls)) Controls {
	h.mu.Lock()
	prev := h.controls
	fun(&h.controls)
	h.controls = h.controls.Clamp()
	c := h.controls
	fns := h.onChange
	h.mu.Unlock()
	if c != prev {
		for _, f := range fns {
			f(c)
		}
	}
	return c
}

// OnChange adds a function that is called after every [Handle.Set]
// that changes the controls. It is called on the goroutine of the setter.
func (h *Handle) OnChange(fun func(c Controls)) {
	h.mu.Lock()
	h.onChange = append(h.onChange, fun)
	h.mu.Unlock()
}
