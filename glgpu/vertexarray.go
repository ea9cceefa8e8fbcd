// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

// VertexArray owns one vertex array object, which records the vertex
// attribute layout and the bound index buffer.
type VertexArray struct {
	driver Driver
	init   bool
	handle uint32
}

// NewVertexArray makes a new vertex array object. It is not bound.
func NewVertexArray(d Driver) *VertexArray {
	va := &VertexArray{driver: d}
	Call(d, "GenVertexArray()", func() { va.handle = d.GenVertexArray() })
	va.init = true
	return va
}

// Handle returns the GL handle, or 0 after Delete.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Bind makes this the current vertex array.
func (va *VertexArray) Bind() {
	if !va.init {
		return
	}
	Call(va.driver, "BindVertexArray(handle)", func() { va.driver.BindVertexArray(va.handle) })
}

// Unbind clears the current vertex array.
func (va *VertexArray) Unbind() {
	Call(va.driver, "BindVertexArray(0)", func() { va.driver.BindVertexArray(0) })
}

// SetAttrib describes float attribute index of size components, read
// from the current GL_ARRAY_BUFFER with the given byte stride and
// offset, and enables it. The vertex array must be bound.
func (va *VertexArray) SetAttrib(index uint32, size, stride int32, offset uintptr) {
	d := va.driver
	Call(d, "VertexAttribPointer(index, size, FLOAT, false, stride, offset)", func() {
		d.VertexAttribPointer(index, size, Float, false, stride, offset)
	})
	Call(d, "EnableVertexAttribArray(index)", func() { d.EnableVertexAttribArray(index) })
}

// Delete deletes the vertex array. Only the first call has any effect.
func (va *VertexArray) Delete() {
	if !va.init {
		return
	}
	Call(va.driver, "DeleteVertexArray(handle)", func() { va.driver.DeleteVertexArray(va.handle) })
	va.handle = 0
	va.init = false
}
