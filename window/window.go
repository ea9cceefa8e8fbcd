// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window opens a window with an OpenGL core profile context
// using glfw. All functions must be called on the main thread, which
// must be locked to its OS thread (see [runtime.LockOSThread]).
package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Options are the window and context settings.
type Options struct {
	Width, Height int
	Title         string

	// GLMajor and GLMinor are the requested OpenGL context version.
	GLMajor, GLMinor int

	// SwapInterval is the number of screen updates to wait for
	// before swapping buffers: 1 is vsync, 0 is unthrottled.
	SwapInterval int
}

// Window is a glfw window whose GL context is current.
type Window struct {
	glw *glfw.Window
}

// Open initializes glfw, opens a window with the given options,
// makes its GL context current, and sets the swap interval.
// Pressing Escape requests the window to close.
func Open(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: failed to initialize glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: failed to create GLFW window: %w", err)
	}
	glw.MakeContextCurrent()
	glfw.SwapInterval(opts.SwapInterval)
	glw.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	return &Window{glw: glw}, nil
}

// ShouldClose returns whether the window has been asked to close.
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// SwapBuffers swaps the front and back buffers.
func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// FramebufferSize returns the size of the framebuffer in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.glw.GetFramebufferSize()
}

// Close destroys the window and terminates glfw.
// GL resources must be deleted before calling it.
func (w *Window) Close() {
	w.glw.Destroy()
	glfw.Terminate()
}
