// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"context"
	"errors"
	"testing"
	"time"

	"cogentcore.org/learnxyz/controls"
	"cogentcore.org/learnxyz/scene"
	"cogentcore.org/learnxyz/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a [Renderer] that records what it is given.
type recorder struct {
	synced   []scene.State
	rendered int
	err      error
}

func (r *recorder) Sync(st *scene.State) { r.synced = append(r.synced, *st) }

func (r *recorder) Render() error {
	r.rendered++
	return r.err
}

func newTestLoop(t *testing.T, c controls.Controls) (*Loop, *recorder) {
	sc, err := scene.New(800, 600)
	require.NoError(t, err)
	r := &recorder{}
	return New(sc, controls.NewHandle(c), stats.New(stats.FPS), r), r
}

func TestStates(t *testing.T) {
	l, r := newTestLoop(t, controls.Controls{RotationSpeed: 0.1, BouncingSpeed: 0.1})
	assert.Equal(t, Idle, l.Status())
	assert.Equal(t, "Idle", l.Status().String())
	assert.False(t, l.Frame())
	assert.Zero(t, r.rendered)

	require.NoError(t, l.Start())
	assert.Equal(t, Running, l.Status())
	require.NoError(t, l.Start())
	assert.True(t, l.Frame())
	assert.Equal(t, 1, r.rendered)

	l.Stop()
	l.Stop()
	assert.Equal(t, Stopped, l.Status())
	assert.False(t, l.Frame())
	assert.Equal(t, 1, r.rendered)
	assert.Error(t, l.Start())
	select {
	case <-l.Done():
	default:
		t.Fatal("Done not closed after Stop")
	}
}

func TestFrames(t *testing.T) {
	l, r := newTestLoop(t, controls.Controls{RotationSpeed: 0.05, BouncingSpeed: 0.02})
	n := l.RunFrames(100)
	assert.Equal(t, 100, n)
	assert.Equal(t, 100, l.Frames)
	assert.Equal(t, 100, r.rendered)
	require.Len(t, r.synced, 100)
	assert.Equal(t, l.State, r.synced[99])
	assert.InDelta(t, 2.0, l.State.Step, 1e-4)
	assert.InDelta(t, 5.0, l.State.CubeRotation, 1e-4)
	for i := 1; i < len(r.synced); i++ {
		assert.Greater(t, r.synced[i].CubeRotation, r.synced[i-1].CubeRotation)
	}
}

func TestControlsChange(t *testing.T) {
	l, _ := newTestLoop(t, controls.Controls{RotationSpeed: 0.1, BouncingSpeed: 0.1})
	l.RunFrames(1)
	l.Controls.Set(controls.Controls{RotationSpeed: 0.3, BouncingSpeed: 0})
	step := l.State.Step
	rot := l.State.CubeRotation
	l.RunFrames(1)
	assert.Equal(t, step, l.State.Step)
	assert.InDelta(t, rot+0.3, l.State.CubeRotation, 1e-6)
}

func TestRenderErrorKeepsRunning(t *testing.T) {
	l, r := newTestLoop(t, controls.Controls{RotationSpeed: 0.1, BouncingSpeed: 0.1})
	r.err = errors.New("render failed")
	assert.Equal(t, 3, l.RunFrames(3))
	assert.Equal(t, Running, l.Status())
}

func TestRunCancel(t *testing.T) {
	l, r := newTestLoop(t, controls.Controls{RotationSpeed: 0.1, BouncingSpeed: 0.1})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- l.Run(ctx, time.Millisecond)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, Stopped, l.Status())
	assert.Positive(t, r.rendered)
}

func TestRunStop(t *testing.T) {
	l, _ := newTestLoop(t, controls.Controls{})
	done := make(chan error)
	go func() {
		done <- l.Run(context.Background(), time.Millisecond)
	}()
	l.Stop()
	select {
	case err := <-done:
		// Run may observe the stop before it starts
		if err != nil {
			assert.Equal(t, Stopped, l.Status())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
