// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command learnxyz shows an animated 3D scene with a frame counter
// and a parameter panel, or renders it without a window.
package main

import (
	"context"
	"image"
	"io/fs"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"cogentcore.org/learnxyz/app"
	"cogentcore.org/learnxyz/controls"
	"cogentcore.org/learnxyz/softrender"
	"cogentcore.org/learnxyz/stats"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/sync/errgroup"
)

// Config is the configuration information for the learnxyz cli.
type Config struct {

	// Route is the path of the page to show.
	Route string `default:"learn1" posarg:"0" required:"-"`

	// Width is the width of the viewport. If it or Height is 0,
	// the window uses two thirds of the screen and headless
	// commands use 800x600.
	Width int

	// Height is the height of the viewport.
	Height int

	// Controls is an optional TOML or YAML file with the speeds. It is created
	// with the default speeds if it does not exist, and changes to it
	// are applied while running.
	Controls string `flag:"c,controls"`

	// Stats is the panel of the frame counter: 0 for FPS,
	// 1 for MS and 2 for MB.
	Stats int

	// RotationSpeed is the initial rotation speed of the cube,
	// used when there is no Controls file.
	RotationSpeed float32 `default:"0.01" min:"0" max:"0.5"`

	// BouncingSpeed is the initial bouncing speed of the sphere,
	// used when there is no Controls file.
	BouncingSpeed float32 `default:"0.01" min:"0" max:"0.5"`

	// Output is the file that snapshots are saved to.
	Output string `default:"learn1.png" flag:"o,output"`

	// Frames is the number of frames to advance before
	// taking a snapshot with the render command.
	Frames int `cmd:"render" default:"60"`

	// Supersample is the factor by which headless frames are
	// rendered larger and scaled down, for antialiasing.
	Supersample int `default:"2" min:"1"`

	// Duration is the number of seconds that the bench command runs for.
	Duration int `cmd:"bench" default:"5"`

	// FPS is the number of frames per second of the bench command.
	FPS int `cmd:"bench" default:"60"`
}

func main() {
	opts := cli.DefaultOptions("learnxyz", "An animated 3D scene with a frame counter and a parameter panel.")
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Run, Name: "run", Doc: "Run shows the scene in a window.", Root: true},
		&cli.Cmd[*Config]{Func: Render, Name: "render", Doc: "Render saves a snapshot of the scene to Output without a window."},
		&cli.Cmd[*Config]{Func: Bench, Name: "bench", Doc: "Bench runs the scene without a window, logging the frame counter every second."},
	)
}

// Run shows the scene in a window.
func Run(c *Config) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	vp := image.Pt(c.Width, c.Height)
	if vp.X <= 0 || vp.Y <= 0 {
		vp = app.ScreenSize(image.Pt(1200, 900)).Mul(2).Div(3)
	}
	a, err := app.New(c.Route, vp, h)
	if err != nil {
		return err
	}
	a.StatsPanel = stats.PanelFromInt(c.Stats)

	b := core.NewBody("learnxyz")
	if _, err := a.Mount(b, c.Output); err != nil {
		return err
	}
	if c.Controls != "" {
		ctx, cancel := context.WithCancel(context.Background())
		core.TheApp.AddQuitCleanFunc(cancel)
		go func() {
			errors.Log(controls.Watch(ctx, c.Controls, h))
		}()
	}
	b.RunMainWindow()
	return nil
}

// Render saves a snapshot of the scene to Output without a window,
// after advancing it by Frames frames.
func Render(c *Config) error {
	a, err := c.headless()
	if err != nil {
		return err
	}
	r, l, err := a.Headless(c.Supersample)
	if err != nil {
		return err
	}
	n := l.RunFrames(c.Frames)
	l.Stop()
	if err := r.Save(c.Output); err != nil {
		return err
	}
	slog.Info("saved snapshot", "file", c.Output, "frames", n, "size", a.Viewport)
	return nil
}

// Bench runs the scene without a window for Duration seconds
// at FPS frames per second, logging the frame counter every second.
func Bench(c *Config) error {
	a, err := c.headless()
	if err != nil {
		return err
	}
	r, l, err := a.Headless(c.Supersample)
	if err != nil {
		return err
	}
	l.Renderer = &logRenderer{Renderer: r, interval: time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.Duration)*time.Second)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.Run(ctx, time.Second/time.Duration(max(c.FPS, 1)))
	})
	if c.Controls != "" {
		g.Go(func() error {
			return controls.Watch(ctx, c.Controls, a.Controls)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("bench done", "frames", l.Frames, "stats", r.Stats.Text())
	return nil
}

// handle returns the controls handle for the config, loading the
// Controls file if there is one and creating it if it does not exist.
func (c *Config) handle() (*controls.Handle, error) {
	if err := c.expandPaths(); err != nil {
		return nil, err
	}
	if c.Controls == "" {
		return controls.NewHandle(controls.Controls{RotationSpeed: c.RotationSpeed, BouncingSpeed: c.BouncingSpeed}), nil
	}
	ct, err := controls.Open(c.Controls)
	if errors.Is(err, fs.ErrNotExist) {
		ct.Defaults()
		err = controls.Save(ct, c.Controls)
	}
	if err != nil {
		return nil, err
	}
	return controls.NewHandle(ct), nil
}

// expandPaths expands a leading ~ in the file paths of the config.
func (c *Config) expandPaths() error {
	var err error
	if c.Controls, err = homedir.Expand(c.Controls); err != nil {
		return err
	}
	c.Output, err = homedir.Expand(c.Output)
	return err
}

// headless returns the app for a headless command.
func (c *Config) headless() (*app.App, error) {
	h, err := c.handle()
	if err != nil {
		return nil, err
	}
	vp := image.Pt(c.Width, c.Height)
	if vp.X <= 0 || vp.Y <= 0 {
		vp = image.Pt(800, 600)
	}
	a, err := app.New(c.Route, vp, h)
	if err != nil {
		return nil, err
	}
	a.StatsPanel = stats.PanelFromInt(c.Stats)
	return a, nil
}

// logRenderer is a software renderer that logs the frame counter
// at most once per interval.
type logRenderer struct {
	*softrender.Renderer
	interval time.Duration
	last     time.Time
}

func (lr *logRenderer) Render() error {
	if err := lr.Renderer.Render(); err != nil {
		return err
	}
	if now := time.Now(); now.Sub(lr.last) >= lr.interval {
		lr.last = now
		slog.Info("frame", "stats", lr.Stats.Text())
	}
	return nil
}
