// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/tree"
	"cogentcore.org/learnxyz/controls"
	"cogentcore.org/learnxyz/softrender"
	"cogentcore.org/learnxyz/xyzview"
)

// ScreenSize returns the size of the first screen, or the given
// fallback if there is no screen.
func ScreenSize(fallback image.Point) image.Point {
	scr := core.TheApp.Screen(0)
	if scr == nil {
		return fallback
	}
	sz := scr.Geometry.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return fallback
	}
	return sz
}

// Mount adds the page of the route to the given body and starts it.
// Snapshots taken from the toolbar are saved to the given file.
// The page is stopped when the app quits.
func (a *App) Mount(b *core.Body, snapshot string) (*xyzview.Page, error) {
	sc, err := a.Scene()
	if err != nil {
		return nil, err
	}
	b.SetTitle(a.Route.Title)
	pg := xyzview.NewPage(b, sc, a.Controls)
	pg.Stats.Panel = a.StatsPanel

	b.AddTopBar(func(bar *core.Frame) {
		core.NewToolbar(bar).Maker(func(p *tree.Plan) {
			tree.Add(p, func(w *core.Button) {
				w.SetText("Reset").SetIcon(icons.Update).
					SetTooltip("Reset the speeds to their defaults")
				w.OnClick(func(e events.Event) {
					c := controls.Controls{}
					c.Defaults()
					pg.Controls.Set(c)
				})
			})
			tree.Add(p, func(w *core.Button) {
				w.SetText("Snapshot").SetIcon(icons.Image).
					SetTooltip("Save a software rendering of the current frame to " + snapshot)
				w.OnClick(func(e events.Event) {
					errors.Log(a.snapshot(pg, snapshot))
				})
			})
		})
	})

	if err := pg.Start(); err != nil {
		return nil, err
	}
	core.TheApp.AddQuitCleanFunc(pg.Stop)
	return pg, nil
}

// snapshot renders the current frame of the page with the software
// renderer at the current size of the scene and saves it.
func (a *App) snapshot(pg *xyzview.Page, filename string) error {
	r := softrender.New(pg.Scene)
	r.Stats = pg.Stats
	r.Sync(&pg.Loop.State)
	if err := r.Render(); err != nil {
		return err
	}
	return r.Save(filename)
}
