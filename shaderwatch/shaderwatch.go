// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaderwatch signals when a shader file changes on disk,
// so that it can be reloaded between frames.
package shaderwatch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"cogentcore.org/glquad/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches one file. The directory is watched rather than the
// file itself, so that editors that replace the file by renaming are
// also seen.
type Watcher struct {
	file    string
	watcher *fsnotify.Watcher
	changed chan struct{}
	done    chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// New starts watching the given file.
func New(file string) (*Watcher, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("shaderwatch: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shaderwatch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("shaderwatch: watching %q: %w", file, err)
	}
	sw := &Watcher{
		file:    abs,
		watcher: fw,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go sw.watch()
	return sw, nil
}

// Changed receives a value after the file has been written, created,
// or renamed into place. Changes made before the value is received are
// coalesced into one.
func (sw *Watcher) Changed() <-chan struct{} {
	return sw.changed
}

func (sw *Watcher) watch() {
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != sw.file {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			sw.signal()
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("shaderwatch", "file", sw.file, "err", err)
			// events may have been dropped
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				sw.signal()
			}
		}
	}
}

func (sw *Watcher) signal() {
	select {
	case sw.changed <- struct{}{}:
	default:
	}
}

// Close stops watching. Calls after the first return the same error.
func (sw *Watcher) Close() error {
	sw.closeOnce.Do(func() {
		close(sw.done)
		sw.closeErr = sw.watcher.Close()
	})
	return sw.closeErr
}
