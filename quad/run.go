// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"context"
	"log/slog"

	"cogentcore.org/glquad/glgpu"
)

// Surface is the window that the scene is drawn to.
type Surface interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

// RunOptions configure [Run].
type RunOptions struct {

	// Frames is the number of frames to draw; 0 is unlimited.
	Frames int

	// Reload signals that the shader should be reloaded from Source
	// before the next frame. It may be nil.
	Reload <-chan struct{}

	// Source returns the shader to reload.
	Source func() (glgpu.ShaderSource, error)
}

// Run draws frames of the scene until the surface should close, the
// context is done, or the frame limit is reached, and returns the
// number of frames drawn. Each frame draws the scene with the current
// animator value, advances the animator, swaps buffers, and polls events.
// It must be called on the thread that owns the GL context.
func Run(ctx context.Context, surf Surface, sc *Scene, an *Animator, opts RunOptions) int {
	n := 0
	for !surf.ShouldClose() {
		if ctx.Err() != nil || (opts.Frames > 0 && n >= opts.Frames) {
			break
		}
		select {
		case <-opts.Reload:
			reload(sc, opts.Source)
		default:
		}
		sc.Draw(an.Value)
		an.Next()
		surf.SwapBuffers()
		surf.PollEvents()
		n++
	}
	return n
}

func reload(sc *Scene, source func() (glgpu.ShaderSource, error)) {
	if source == nil {
		return
	}
	src, err := source()
	if err != nil {
		slog.Error("quad: could not reload shader", "err", err)
		return
	}
	sc.Reload(src)
}
