// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a controls file into a [Handle] every time
// the file is written, which allows the speeds to be tweaked
// from a text editor when there is no parameter panel.
type Watcher struct {

	// Filename is the absolute path of the watched file.
	Filename string

	handle  *Handle
	watcher *fsnotify.Watcher
}

// NewWatcher returns a new [Watcher] for the given file and handle.
// The watch is active when NewWatcher returns; events are applied
// once [Watcher.Run] is called. The directory of the file is watched
// so that editors that replace the file on save are handled.
func NewWatcher(filename string, h *Handle) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{Filename: abs, handle: h, watcher: fw}, nil
}

// Run applies file changes to the handle until the context is done
// or the watcher fails, and then closes the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("controls file watcher error: " + err.Error())
		}
	}
}

// reload reads the file and sets the handle. An empty file is skipped,
// since it is usually a truncate that is followed by the actual write.
func (w *Watcher) reload() {
	b, err := os.ReadFile(w.Filename)
	if err != nil {
		slog.Error("error reading controls file: " + err.Error())
		return
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return
	}
	c, err := decode(b, w.Filename)
	if err != nil {
		slog.Error("error parsing controls file", "file", w.Filename, "err", err)
		return
	}
	w.handle.Set(c)
	slog.Info("reloaded controls", "file", w.Filename, "rotationSpeed", c.RotationSpeed, "bouncingSpeed", c.BouncingSpeed)
}

// Watch watches the given file and applies its contents to the
// handle until the context is done. See [NewWatcher].
func Watch(ctx context.Context, filename string, h *Handle) error {
	w, err := NewWatcher(filename, h)
	if err != nil {
		return err
	}
	w.Run(ctx)
	return nil
}
