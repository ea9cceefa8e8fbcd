// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glquad/base/errors"
)

// LinkError is returned when a program fails to link.
type LinkError struct {
	Handle uint32

	// Log is the program info log.
	Log string
}

func (le *LinkError) Error() string {
	return fmt.Sprintf("glgpu: failed to link program %d:\n%s", le.Handle, le.Log)
}

// Program is a linked vertex + fragment shader program.
type Program struct {
	driver Driver
	init   bool
	handle uint32
}

// NewProgram compiles the vertex and fragment stages of src, links them
// into a new program, and deletes the stages. The program is always
// returned, so that callers can carry on with it: any compile and link
// errors are joined in the returned error and logged, in which case
// the program will not render.
func NewProgram(d Driver, src ShaderSource) (*Program, error) {
	vs, verr := CompileShader(d, VertexShader, src.Vertex)
	fs, ferr := CompileShader(d, FragmentShader, src.Fragment)

	pr := &Program{driver: d}
	Call(d, "CreateProgram()", func() { pr.handle = d.CreateProgram() })
	pr.init = true
	Call(d, "AttachShader(program, vertex)", func() { d.AttachShader(pr.handle, vs) })
	Call(d, "AttachShader(program, fragment)", func() { d.AttachShader(pr.handle, fs) })
	Call(d, "LinkProgram(program)", func() { d.LinkProgram(pr.handle) })

	Call(d, "DeleteShader(vertex)", func() { d.DeleteShader(vs) })
	Call(d, "DeleteShader(fragment)", func() { d.DeleteShader(fs) })

	return pr, errors.Join(verr, ferr, pr.linkStatus())
}

// linkStatus returns a [*LinkError] if the program did not link.
func (pr *Program) linkStatus() error {
	d := pr.driver
	var status int32
	Call(d, "GetProgramiv(program, LINK_STATUS)", func() { status = d.GetProgramiv(pr.handle, LinkStatus) })
	if status != False {
		return nil
	}
	var logLength int32
	Call(d, "GetProgramiv(program, INFO_LOG_LENGTH)", func() { logLength = d.GetProgramiv(pr.handle, InfoLogLength) })
	var msg string
	Call(d, "GetProgramInfoLog(program, length)", func() { msg = d.GetProgramInfoLog(pr.handle, logLength) })
	slog.Error("glgpu Program: failed to link", "handle", pr.handle, "log", msg)
	return &LinkError{Handle: pr.handle, Log: msg}
}

// Handle returns the handle for the program, or 0 after Delete.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Activate makes this the current program.
func (pr *Program) Activate() {
	if !pr.init {
		return
	}
	Call(pr.driver, "UseProgram(program)", func() { pr.driver.UseProgram(pr.handle) })
}

// Deactivate clears the current program.
func (pr *Program) Deactivate() {
	Call(pr.driver, "UseProgram(0)", func() { pr.driver.UseProgram(0) })
}

// UniformLocation returns the location of the named uniform,
// or -1 (which is logged) if the program has no such active uniform.
func (pr *Program) UniformLocation(name string) int32 {
	loc := int32(-1)
	if !pr.init {
		return loc
	}
	Call(pr.driver, "GetUniformLocation(program, name)", func() { loc = pr.driver.GetUniformLocation(pr.handle, name) })
	if loc < 0 {
		slog.Error("glgpu Program UniformLocation: uniform not found", "name", name, "program", pr.handle)
	}
	return loc
}

// SetUniform4f sets the vec4 uniform at loc on the current program.
func (pr *Program) SetUniform4f(loc int32, v0, v1, v2, v3 float32) {
	Call(pr.driver, "Uniform4f(location, v0, v1, v2, v3)", func() { pr.driver.Uniform4f(loc, v0, v1, v2, v3) })
}

// Delete deletes the GPU program. Only the first call has any effect.
func (pr *Program) Delete() {
	if !pr.init {
		return
	}
	Call(pr.driver, "DeleteProgram(program)", func() { pr.driver.DeleteProgram(pr.handle) })
	pr.handle = 0
	pr.init = false
}
