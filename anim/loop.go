// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides the per-frame animation loop of the scene,
// which can be driven by a GUI animation tick or by a ticker.
package anim

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/learnxyz/controls"
	"cogentcore.org/learnxyz/scene"
	"cogentcore.org/learnxyz/stats"
)

//go:generate core generate

// States are the states of a [Loop].
type States int32 //enums:enum

const (
	// Idle is the state of a loop that has not been started.
	Idle States = iota

	// Running is the state of a started loop, which runs a frame
	// for every call to [Loop.Frame].
	Running

	// Stopped is the final state of a loop after [Loop.Stop].
	Stopped
)

// Renderer is a rendering backend driven by a [Loop].
type Renderer interface {

	// Sync updates the rendered objects from the given state.
	Sync(st *scene.State)

	// Render renders the scene.
	Render() error
}

// Loop is the animation loop of a scene. Each call to [Loop.Frame]
// runs one frame while the loop is [Running].
type Loop struct {

	// Scene is the scene being animated.
	Scene *scene.Scene

	// State is the animated state, advanced every frame.
	State scene.State

	// Controls holds the speeds, read once per frame.
	Controls *controls.Handle

	// Stats is updated once per frame, if non-nil.
	Stats *stats.Stats

	// Renderer renders every frame, if non-nil.
	Renderer Renderer

	// Frames is the number of frames that have been run.
	Frames int

	status   atomic.Int32
	done     chan struct{}
	stopOnce sync.Once
}

// New returns a new idle [Loop] for the given scene.
func New(sc *scene.Scene, ctl *controls.Handle, st *stats.Stats, r Renderer) *Loop {
	return &Loop{
		Scene:    sc,
		State:    sc.NewState(),
		Controls: ctl,
		Stats:    st,
		Renderer: r,
		done:     make(chan struct{}),
	}
}

// Status returns the current state of the loop.
func (l *Loop) Status() States {
	return States(l.status.Load())
}

// Start moves an idle loop to [Running]. Starting a running loop
// does nothing, and starting a stopped loop is an error.
func (l *Loop) Start() error {
	if l.status.CompareAndSwap(int32(Idle), int32(Running)) {
		return nil
	}
	if l.Status() == Stopped {
		return fmt.Errorf("anim.Loop.Start: loop is stopped")
	}
	return nil
}

// Stop stops the loop permanently and closes [Loop.Done].
// It is safe to call more than once and from any goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.status.Store(int32(Stopped))
		close(l.done)
	})
}

// Done returns a channel that is closed when the loop is stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Frame runs one frame and returns whether another frame should be
// scheduled. A loop that is not [Running] does nothing and returns
// false. The frame updates the stats, advances the state with the
// current controls, and renders.
func (l *Loop) Frame() bool {
	if l.Status() != Running {
		return false
	}
	if l.Stats != nil {
		l.Stats.Update()
	}
	l.State.Advance(l.Controls.Get())
	l.Frames++
	if l.Renderer != nil {
		l.Renderer.Sync(&l.State)
		errors.Log(l.Renderer.Render())
	}
	return true
}

// RunFrames starts the loop if needed and runs n frames back to back,
// stopping early if the loop is stopped. It returns the number of
// frames run.
func (l *Loop) RunFrames(n int) int {
	if err := l.Start(); err != nil {
		return 0
	}
	run := 0
	for range n {
		if !l.Frame() {
			break
		}
		run++
	}
	return run
}

// Run starts the loop and runs a frame at every tick of the given
// interval until the context is done or the loop is stopped.
// The loop is stopped when Run returns.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if err := l.Start(); err != nil {
		return err
	}
	defer l.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.done:
			return nil
		case <-ticker.C:
			if !l.Frame() {
				return nil
			}
		}
	}
}
