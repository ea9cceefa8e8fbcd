// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gldriver implements [glgpu.Driver] with the OpenGL 3.3
// core profile bindings from github.com/go-gl/gl.
package gldriver

import (
	"fmt"
	"strings"
	"unsafe"

	"cogentcore.org/glquad/glgpu"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init loads the OpenGL function pointers. It must be called once,
// after a GL context has been made current and before any GL call.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gldriver: could not initialize OpenGL: %w", err)
	}
	return nil
}

// Driver is the OpenGL driver. It has no state: all state lives in
// the current GL context.
type Driver struct{}

var _ glgpu.Driver = Driver{}

// New returns the OpenGL driver; [Init] must have been called.
func New() Driver {
	return Driver{}
}

// cString returns s with a terminating NUL, as needed by gl.Str and gl.Strs.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// infoLog allocates length bytes and fills them with get.
func infoLog(length int32, get func(buf *uint8)) string {
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	get(&buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (Driver) GetError() uint32 { return gl.GetError() }

func (Driver) GenBuffer() uint32 {
	var h uint32
	gl.GenBuffers(1, &h)
	return h
}

func (Driver) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (Driver) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (Driver) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (Driver) GenVertexArray() uint32 {
	var h uint32
	gl.GenVertexArrays(1, &h)
	return h
}

func (Driver) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (Driver) DeleteVertexArray(array uint32) { gl.DeleteVertexArrays(1, &array) }

func (Driver) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, typ, normalized, stride, gl.PtrOffset(int(offset)))
}

func (Driver) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Driver) CreateShader(typ uint32) uint32 { return gl.CreateShader(typ) }

func (Driver) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Driver) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (Driver) GetShaderInfoLog(shader uint32, length int32) string {
	return infoLog(length, func(buf *uint8) { gl.GetShaderInfoLog(shader, length, nil, buf) })
}

func (Driver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Driver) CreateProgram() uint32 { return gl.CreateProgram() }

func (Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (Driver) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Driver) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (Driver) GetProgramInfoLog(program uint32, length int32) string {
	return infoLog(length, func(buf *uint8) { gl.GetProgramInfoLog(program, length, nil, buf) })
}

func (Driver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Driver) UseProgram(program uint32) { gl.UseProgram(program) }

func (Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cString(name)))
}

func (Driver) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (Driver) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (Driver) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (Driver) Clear(mask uint32) { gl.Clear(mask) }

func (Driver) DrawElements(mode uint32, count int32, typ uint32, offset uintptr) {
	gl.DrawElements(mode, count, typ, gl.PtrOffset(int(offset)))
}

func (Driver) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
