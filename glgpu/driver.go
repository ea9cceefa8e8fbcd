// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu wraps the OpenGL objects used for simple indexed
// rendering: vertex and index buffers, vertex arrays, shader stages
// and linked programs. All GL access goes through a [Driver], so the
// package can be driven by the real bindings in glgpu/gldriver or by
// the fake in glgpu/gltest.
//
// Every call must be made on the thread that owns the GL context.
package glgpu

import "unsafe"

// Driver is the subset of the OpenGL API used by this package.
// Enum arguments take the numeric GL values defined below.
type Driver interface {
	// GetError pops the oldest error code from the sticky error queue,
	// returning [NoError] once it is empty.
	GetError() uint32

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	CreateShader(typ uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	// GetShaderInfoLog returns up to length bytes of the shader info log.
	GetShaderInfoLog(shader uint32, length int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32, length int32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	Uniform4f(location int32, v0, v1, v2, v3 float32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawElements(mode uint32, count int32, typ uint32, offset uintptr)

	// Version returns the GL_VERSION string.
	Version() string
}

// OpenGL enum values used with [Driver].
const (
	NoError                     uint32 = 0
	InvalidEnum                 uint32 = 0x0500
	InvalidValue                uint32 = 0x0501
	InvalidOperation            uint32 = 0x0502
	StackOverflow               uint32 = 0x0503
	StackUnderflow              uint32 = 0x0504
	OutOfMemory                 uint32 = 0x0505
	InvalidFramebufferOperation uint32 = 0x0506

	ArrayBuffer        uint32 = 0x8892
	ElementArrayBuffer uint32 = 0x8893
	StaticDraw         uint32 = 0x88E4

	CompileStatus uint32 = 0x8B81
	LinkStatus    uint32 = 0x8B82
	InfoLogLength uint32 = 0x8B84

	False int32 = 0
	True  int32 = 1

	Float       uint32 = 0x1406
	UnsignedInt uint32 = 0x1405
	Triangles   uint32 = 0x0004

	ColorBufferBit uint32 = 0x00004000
)
