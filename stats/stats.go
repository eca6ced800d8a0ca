// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides a frame counter for a debug overlay,
// which shows frames per second, milliseconds per frame,
// or megabytes of heap in use.
package stats

import (
	"fmt"
	"math"
	"runtime"
	"time"
)

//go:generate core generate

// Panels are the values that a [Stats] overlay can show.
type Panels int32 //enums:enum

const (
	// FPS shows the number of frames rendered per second.
	FPS Panels = iota

	// MS shows the number of milliseconds taken by the last frame.
	MS

	// MB shows the megabytes of heap memory in use.
	MB
)

// PanelFromInt returns the panel for the given integer selector.
// Values that do not name a panel, including the negative values
// used for "not specified", select [FPS].
func PanelFromInt(v int) Panels {
	if v < 0 || v >= int(PanelsN) {
		return FPS
	}
	return Panels(v)
}

// Value is a single measured value with the range seen so far.
type Value struct {
	Current float64
	Min     float64
	Max     float64

	// Valid is whether any value has been recorded.
	Valid bool
}

func (v *Value) record(x float64) {
	v.Current = x
	if !v.Valid {
		v.Min, v.Max, v.Valid = x, x, true
		return
	}
	v.Min = math.Min(v.Min, x)
	v.Max = math.Max(v.Max, x)
}

// Stats counts frames and measures frame times. Call [Stats.Update]
// once per rendered frame, or [Stats.Begin] and [Stats.End] around
// the work of a frame.
type Stats struct {

	// Panel is the panel shown by [Stats.Text].
	Panel Panels

	// FPS is frames per second, measured over at least one second.
	FPS Value

	// MS is the duration of the last frame, in milliseconds.
	MS Value

	// MB is the heap memory in use, in megabytes, sampled with FPS.
	MB Value

	// Now returns the current time; it defaults to [time.Now]
	// and can be replaced for testing.
	Now func() time.Time

	frames    int
	beginTime time.Time
	prevTime  time.Time
}

// New returns a new [Stats] showing the given panel.
func New(panel Panels) *Stats {
	st := &Stats{Panel: panel, Now: time.Now}
	st.Reset()
	return st
}

// Reset restarts all measurements from the current time.
func (st *Stats) Reset() {
	if st.Now == nil {
		st.Now = time.Now
	}
	now := st.Now()
	st.beginTime = now
	st.prevTime = now
	st.frames = 0
	st.FPS = Value{}
	st.MS = Value{}
	st.MB = Value{}
}

// Begin marks the start of the work of a frame.
func (st *Stats) Begin() {
	st.beginTime = st.Now()
}

// End marks the end of a frame, records its duration, and once
// at least a second has passed since the last sample, records
// the frame rate and heap use. It returns the end time.
func (st *Stats) End() time.Time {
	st.frames++
	now := st.Now()
	st.MS.record(float64(now.Sub(st.beginTime)) / float64(time.Millisecond))
	if el := now.Sub(st.prevTime); el >= time.Second {
		st.FPS.record(math.Round(float64(st.frames) / el.Seconds()))
		st.prevTime = now
		st.frames = 0
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		st.MB.record(math.Round(float64(ms.HeapAlloc) / (1 << 20)))
	}
	return now
}

// Update ends the current frame and begins the next one,
// for calling once per frame.
func (st *Stats) Update() {
	st.beginTime = st.End()
}

// Current returns the value of the current panel.
func (st *Stats) Current() *Value {
	switch st.Panel {
	case MS:
		return &st.MS
	case MB:
		return &st.MB
	}
	return &st.FPS
}

// Text returns the overlay text for the current panel,
// for example "60 FPS (58-61)".
func (st *Stats) Text() string {
	v := st.Current()
	unit := PanelFromInt(int(st.Panel)).String()
	if !v.Valid {
		return "-- " + unit
	}
	return fmt.Sprintf("%.0f %s (%.0f-%.0f)", v.Current, unit, v.Min, v.Max)
}
