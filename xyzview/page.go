// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzview

import (
	"image"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/learnxyz/anim"
	"cogentcore.org/learnxyz/controls"
	"cogentcore.org/learnxyz/scene"
	"cogentcore.org/learnxyz/stats"
)

// Page is the animated scene page: the frame counter,
// the 3D view and the [ControlsPanel].
type Page struct {

	// Scene is the scene shown on the page.
	Scene *scene.Scene

	// Controls holds the speeds, shared with the panel.
	Controls *controls.Handle

	// Stats is the frame counter shown above the view.
	Stats *stats.Stats

	// Loop is the animation loop, driven by the paint ticks of the view.
	Loop *anim.Loop

	// Objects are the xyz objects of the scene.
	Objects *Objects

	// SceneEditor is the 3D view.
	SceneEditor *xyzcore.SceneEditor

	// StatsText shows [Page.Stats]. Clicking it cycles the panels.
	StatsText *core.Text

	// Panel is the parameter panel.
	Panel *ControlsPanel

	// size is the last observed size of the view. The first observed
	// size is the initial layout of the view, not a resize.
	size image.Point
}

// NewPage adds a new [Page] showing the given scene to the given parent.
// The page does not animate until [Page.Start] is called.
func NewPage(parent tree.Node, sc *scene.Scene, ctl *controls.Handle) *Page {
	pg := &Page{Scene: sc, Controls: ctl, Stats: stats.New(stats.FPS)}

	fr := core.NewFrame(parent)
	fr.SetName("page")
	fr.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 1)
	})

	view := core.NewFrame(fr)
	view.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
	})
	pg.StatsText = core.NewText(view).SetText(pg.Stats.Text())
	pg.StatsText.SetName("stats")
	pg.StatsText.SetTooltip("Click to switch between FPS, MS and MB")
	pg.StatsText.Styler(func(s *styles.Style) {
		s.Min.X.Em(10)
	})
	pg.StatsText.OnClick(func(e events.Event) {
		pg.Stats.Panel = stats.PanelFromInt(int(pg.Stats.Panel) + 1)
		pg.updateStatsText()
	})

	pg.SceneEditor = xyzcore.NewSceneEditor(view)
	minw, minh := float32(sc.Size.X), float32(sc.Size.Y)
	pg.SceneEditor.Styler(func(s *styles.Style) {
		s.Min.Set(units.Dp(minw), units.Dp(minh))
	})
	pg.SceneEditor.UpdateWidget()
	pg.Objects = Build(pg.SceneEditor.SceneXYZ(), sc)
	pg.Objects.OnRender = func() {
		pg.SceneEditor.SceneWidget().NeedsRender()
		pg.updateStatsText()
	}

	pg.Panel = NewControlsPanel(fr, ctl)
	pg.Loop = anim.New(sc, ctl, pg.Stats, pg.Objects)
	return pg
}

// Start starts the animation loop, running one frame per paint tick
// of the view until [Page.Stop] is called or the view is destroyed.
func (pg *Page) Start() error {
	if err := pg.Loop.Start(); err != nil {
		return err
	}
	sw := pg.SceneEditor.SceneWidget()
	sw.Animate(func(a *core.Animation) {
		pg.resize(sw.Geom.Size.Actual.Content.ToPointFloor())
		if !pg.Loop.Frame() {
			a.Done = true
		}
	})
	return nil
}

// Stop stops the animation loop and the syncing of the panel.
// It is safe to call more than once.
func (pg *Page) Stop() {
	pg.Loop.Stop()
	pg.Panel.Close()
}

// resize resizes the scene when the size of the view changes from
// the size it was first laid out at, and reports whether it did.
func (pg *Page) resize(sz image.Point) bool {
	if sz.X <= 0 || sz.Y <= 0 || sz == pg.size {
		return false
	}
	first := pg.size == image.Point{}
	pg.size = sz
	if first {
		return false
	}
	pg.Scene.Resize(sz.X, sz.Y)
	return true
}

// updateStatsText shows the current stats text if it has changed.
func (pg *Page) updateStatsText() {
	txt := pg.Stats.Text()
	if txt == pg.StatsText.Text {
		return
	}
	pg.StatsText.SetText(txt).UpdateRender()
}
