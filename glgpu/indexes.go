// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "unsafe"

// IndexBuffer owns one GL_ELEMENT_ARRAY_BUFFER of uint32 indexes for
// index-based rendering (glDrawElements), uploaded once at construction.
type IndexBuffer struct {
	driver Driver
	init   bool
	handle uint32
	count  int
}

// NewIndexBuffer makes a new index buffer, binds it, and uploads
// the given indexes.
func NewIndexBuffer(d Driver, idxs []uint32) *IndexBuffer {
	ib := &IndexBuffer{driver: d, count: len(idxs)}
	Call(d, "GenBuffer()", func() { ib.handle = d.GenBuffer() })
	ib.init = true
	ib.Bind()
	var ptr unsafe.Pointer
	if len(idxs) > 0 {
		ptr = unsafe.Pointer(&idxs[0])
	}
	Call(d, "BufferData(ELEMENT_ARRAY_BUFFER, count*4, idxs, STATIC_DRAW)", func() {
		d.BufferData(ElementArrayBuffer, ib.count*4, ptr, StaticDraw)
	})
	return ib
}

// Count returns the number of indexes in the buffer.
func (ib *IndexBuffer) Count() int {
	return ib.count
}

// Handle returns the GL handle for this buffer, or 0 after Delete.
func (ib *IndexBuffer) Handle() uint32 {
	return ib.handle
}

// Bind makes this buffer the current GL_ELEMENT_ARRAY_BUFFER.
func (ib *IndexBuffer) Bind() {
	if !ib.init {
		return
	}
	Call(ib.driver, "BindBuffer(ELEMENT_ARRAY_BUFFER, handle)", func() { ib.driver.BindBuffer(ElementArrayBuffer, ib.handle) })
}

// Unbind clears the current GL_ELEMENT_ARRAY_BUFFER.
func (ib *IndexBuffer) Unbind() {
	Call(ib.driver, "BindBuffer(ELEMENT_ARRAY_BUFFER, 0)", func() { ib.driver.BindBuffer(ElementArrayBuffer, 0) })
}

// Delete deletes the GPU resources associated with this buffer.
// Only the first call has any effect.
func (ib *IndexBuffer) Delete() {
	if !ib.init {
		return
	}
	Call(ib.driver, "DeleteBuffer(handle)", func() { ib.driver.DeleteBuffer(ib.handle) })
	ib.handle = 0
	ib.init = false
}
