// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzview

import (
	"sync"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/learnxyz/controls"
)

// ControlsPanel is the parameter panel: one slider per speed,
// writing to a [controls.Handle].
type ControlsPanel struct {

	// Frame holds the widgets of the panel.
	Frame *core.Frame

	// Rotation is the slider for [controls.Controls.RotationSpeed].
	Rotation *core.Slider

	// Bouncing is the slider for [controls.Controls.BouncingSpeed].
	Bouncing *core.Slider

	handle *controls.Handle

	// locker guards the sliders while they are synced from the handle.
	locker sync.Locker

	// changed has a pending value when the sliders need a sync.
	changed chan struct{}

	// done is closed by [ControlsPanel.Close].
	done      chan struct{}
	closeOnce sync.Once

	// mu guards own.
	mu sync.Mutex

	// own is the last value that the sliders set on the handle.
	own controls.Controls
}

// frameLocker locks the render context of a widget.
type frameLocker struct {
	wb *core.WidgetBase
}

func (fl frameLocker) Lock()   { fl.wb.AsyncLock() }
func (fl frameLocker) Unlock() { fl.wb.AsyncUnlock() }

// NewControlsPanel adds a new [ControlsPanel] for the given handle
// to the given parent. Changes made to the handle from other goroutines,
// such as by a file watcher, are shown on the sliders until
// [ControlsPanel.Close] is called.
func NewControlsPanel(parent tree.Node, h *controls.Handle) *ControlsPanel {
	fr := core.NewFrame(parent)
	return newControlsPanel(fr, h, frameLocker{fr.AsWidget()})
}

// newControlsPanel builds the panel in the given frame, syncing the
// sliders from the handle with the given locker held.
func newControlsPanel(fr *core.Frame, h *controls.Handle, locker sync.Locker) *ControlsPanel {
	cp := &ControlsPanel{
		Frame:   fr,
		handle:  h,
		locker:  locker,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
		own:     h.Get(),
	}
	fr.SetName("controls")
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Min.X.Em(16)
	})
	core.NewText(fr).SetType(core.TextTitleSmall).SetText("Controls")

	c := h.Get()
	cp.Rotation = cp.newSlider("rotationSpeed", c.RotationSpeed,
		func(c *controls.Controls) *float32 { return &c.RotationSpeed }, h.SetRotationSpeed)
	cp.Bouncing = cp.newSlider("bouncingSpeed", c.BouncingSpeed,
		func(c *controls.Controls) *float32 { return &c.BouncingSpeed }, h.SetBouncingSpeed)

	h.OnChange(cp.handleChanged)
	go cp.syncLoop()
	return cp
}

// newSlider adds a labeled slider over [controls.Min, controls.Max]
// for the given field, which calls set with its value while it is
// being dragged.
func (cp *ControlsPanel) newSlider(label string, value float32, field func(c *controls.Controls) *float32, set func(v float32)) *core.Slider {
	core.NewText(cp.Frame).SetText(label)
	sl := core.NewSlider(cp.Frame).SetMin(controls.Min).SetMax(controls.Max).SetStep(controls.Step).SetValue(value)
	sl.SetName(label)
	sl.SetTooltip(label)
	apply := func(e events.Event) {
		cp.setFromSlider(field, sl.Value, set)
	}
	sl.OnInput(apply)
	sl.OnChange(apply)
	return sl
}

// setFromSlider sets a field of the handle to the value of a slider,
// first recording the resulting controls as the panel's own, so that
// the change notification does not sync the sliders back.
func (cp *ControlsPanel) setFromSlider(field func(c *controls.Controls) *float32, v float32, set func(v float32)) {
	c := cp.handle.Get()
	*field(&c) = v
	cp.mu.Lock()
	cp.own = c.Clamp()
	cp.mu.Unlock()
	set(v)
}

// handleChanged is the change function of the handle. It schedules
// a sync unless the change came from the sliders. Pending syncs are
// coalesced, since every sync reads the latest value of the handle.
func (cp *ControlsPanel) handleChanged(c controls.Controls) {
	cp.mu.Lock()
	own := c == cp.own
	cp.mu.Unlock()
	if own {
		return
	}
	select {
	case cp.changed <- struct{}{}:
	default:
	}
}

// syncLoop syncs the sliders with the handle whenever it changes,
// until the panel is closed.
func (cp *ControlsPanel) syncLoop() {
	for {
		select {
		case <-cp.done:
			return
		case <-cp.changed:
		}
		select {
		case <-cp.done:
			return
		default:
		}
		cp.locker.Lock()
		cp.Sync(cp.handle.Get())
		cp.locker.Unlock()
	}
}

// Close stops syncing the sliders with the handle.
// It is safe to call more than once.
func (cp *ControlsPanel) Close() {
	cp.closeOnce.Do(func() {
		close(cp.done)
	})
}

// Sync shows the given controls on the sliders.
// It must be called with the render lock held, or before
// the panel is shown.
func (cp *ControlsPanel) Sync(c controls.Controls) {
	if cp.Rotation.Value != c.RotationSpeed {
		cp.Rotation.SetValue(c.RotationSpeed).NeedsRender()
	}
	if cp.Bouncing.Value != c.BouncingSpeed {
		cp.Bouncing.SetValue(c.BouncingSpeed).NeedsRender()
	}
}
