// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app is the root component: it maps route paths to pages,
// holds the viewport size read once at startup, and mounts the page
// of a route in a window or runs it headless.
package app

import (
	"fmt"
	"image"
	"strings"

	"cogentcore.org/core/base/keylist"
	"cogentcore.org/learnxyz/anim"
	"cogentcore.org/learnxyz/controls"
	"cogentcore.org/learnxyz/scene"
	"cogentcore.org/learnxyz/softrender"
	"cogentcore.org/learnxyz/stats"
)

// DefaultRoute is the path of the route shown when none is given.
const DefaultRoute = "learn1"

// Route is a page of the app.
type Route struct {

	// Path is the path of the route, such as "learn1".
	Path string

	// Title is the window title of the page.
	Title string

	// Scene returns the scene of the page for the given viewport size.
	Scene func(width, height int) (*scene.Scene, error)
}

// Routes are all of the routes of the app, in the order they were added.
var Routes = keylist.New[string, *Route]()

func init() {
	AddRoute(&Route{Path: DefaultRoute, Title: "learn1", Scene: scene.New})
}

// AddRoute adds the given route, replacing any route with the same path.
func AddRoute(rt *Route) {
	Routes.Set(rt.Path, rt)
}

// RouteFor returns the route with the given path, or the default route
// for an empty path. An unknown path is an error naming the known routes.
func RouteFor(path string) (*Route, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		path = DefaultRoute
	}
	rt, ok := Routes.AtTry(path)
	if !ok {
		return nil, fmt.Errorf("app: unknown route %q (known routes: %s)", path, strings.Join(Routes.Keys, ", "))
	}
	return rt, nil
}

// App is the root component of a run of the app.
type App struct {

	// Route is the route being shown.
	Route *Route

	// Viewport is the size of the viewport, read once at startup.
	Viewport image.Point

	// Controls holds the speeds shared by the page and any watcher.
	Controls *controls.Handle

	// StatsPanel is the panel shown by the frame counter.
	StatsPanel stats.Panels
}

// New returns a new [App] showing the route with the given path in a
// viewport of the given size, with the given controls.
func New(path string, viewport image.Point, ctl *controls.Handle) (*App, error) {
	rt, err := RouteFor(path)
	if err != nil {
		return nil, err
	}
	if viewport.X <= 0 || viewport.Y <= 0 {
		return nil, fmt.Errorf("app: invalid viewport size %v", viewport)
	}
	if ctl == nil {
		c := controls.Controls{}
		c.Defaults()
		ctl = controls.NewHandle(c)
	}
	return &App{Route: rt, Viewport: viewport, Controls: ctl}, nil
}

// Scene returns a new scene for the route at the viewport size.
func (a *App) Scene() (*scene.Scene, error) {
	return a.Route.Scene(a.Viewport.X, a.Viewport.Y)
}

// Headless returns a software renderer for a new scene of the route,
// and an idle loop driving it with the shared controls.
func (a *App) Headless(supersample int) (*softrender.Renderer, *anim.Loop, error) {
	sc, err := a.Scene()
	if err != nil {
		return nil, nil, err
	}
	r := softrender.New(sc)
	r.Supersample = max(supersample, 1)
	r.Stats = stats.New(a.StatsPanel)
	return r, anim.New(sc, a.Controls, r.Stats, r), nil
}
