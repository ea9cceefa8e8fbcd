// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "unsafe"

// VertexBuffer owns one GL_ARRAY_BUFFER holding vertex data that is
// uploaded once at construction, as a static draw store.
// The data cannot be changed afterward.
type VertexBuffer struct {
	driver Driver
	init   bool
	handle uint32
	size   int
}

// NewVertexBuffer makes a new vertex buffer, binds it, and uploads
// size bytes starting at data. Upload errors are only reported
// through [Call].
func NewVertexBuffer(d Driver, data unsafe.Pointer, size int) *VertexBuffer {
	vb := &VertexBuffer{driver: d, size: size}
	Call(d, "GenBuffer()", func() { vb.handle = d.GenBuffer() })
	vb.init = true
	vb.Bind()
	Call(d, "BufferData(ARRAY_BUFFER, size, data, STATIC_DRAW)", func() {
		d.BufferData(ArrayBuffer, size, data, StaticDraw)
	})
	return vb
}

// NewVertexBufferFrom makes a new vertex buffer holding the given slice.
func NewVertexBufferFrom[T any](d Driver, data []T) *VertexBuffer {
	var zero T
	size := len(data) * int(unsafe.Sizeof(zero))
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	return NewVertexBuffer(d, ptr, size)
}

// Handle returns the GL handle for this buffer, or 0 after Delete.
func (vb *VertexBuffer) Handle() uint32 {
	return vb.handle
}

// Size returns the number of bytes uploaded.
func (vb *VertexBuffer) Size() int {
	return vb.size
}

// Bind makes this buffer the current GL_ARRAY_BUFFER.
func (vb *VertexBuffer) Bind() {
	if !vb.init {
		return
	}
	Call(vb.driver, "BindBuffer(ARRAY_BUFFER, handle)", func() { vb.driver.BindBuffer(ArrayBuffer, vb.handle) })
}

// Unbind clears the current GL_ARRAY_BUFFER.
func (vb *VertexBuffer) Unbind() {
	Call(vb.driver, "BindBuffer(ARRAY_BUFFER, 0)", func() { vb.driver.BindBuffer(ArrayBuffer, 0) })
}

// Delete deletes the GPU buffer. Only the first call has any effect.
func (vb *VertexBuffer) Delete() {
	if !vb.init {
		return
	}
	Call(vb.driver, "DeleteBuffer(handle)", func() { vb.driver.DeleteBuffer(vb.handle) })
	vb.handle = 0
	vb.init = false
}
