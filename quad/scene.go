// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"log/slog"

	"cogentcore.org/glquad/glgpu"
)

// Scene holds the GPU resources for the quad.
type Scene struct {
	driver glgpu.Driver

	Program     *glgpu.Program
	VertexArray *glgpu.VertexArray
	Vertices    *glgpu.VertexBuffer
	Indexes     *glgpu.IndexBuffer

	// colorLoc is the location of ColorUniform in Program.
	colorLoc int32
}

// NewScene builds the program from src, uploads the quad and sets the
// initial color. A scene is returned even if the program did not
// build, along with the error, which has already been logged.
func NewScene(d glgpu.Driver, src glgpu.ShaderSource) (*Scene, error) {
	sc := &Scene{driver: d}
	err := sc.setProgram(src)

	sc.VertexArray = glgpu.NewVertexArray(d)
	sc.VertexArray.Bind()
	sc.Vertices = glgpu.NewVertexBufferFrom(d, Vertices)
	sc.VertexArray.SetAttrib(0, 3, 3*4, 0)
	sc.Indexes = glgpu.NewIndexBuffer(d, Indexes)
	// the element array binding stays recorded in the vertex array
	sc.Vertices.Unbind()

	sc.Program.SetUniform4f(sc.colorLoc, 0.8, 0.3, 0.8, 1)
	return sc, err
}

// setProgram builds and activates a new program from src,
// replacing any current one.
func (sc *Scene) setProgram(src glgpu.ShaderSource) error {
	pr, err := glgpu.NewProgram(sc.driver, src)
	if sc.Program != nil {
		sc.Program.Delete()
	}
	sc.Program = pr
	pr.Activate()
	sc.colorLoc = pr.UniformLocation(ColorUniform)
	return err
}

// Reload replaces the program with one built from src. The new program
// is used even if it did not build, in which case the error is returned.
func (sc *Scene) Reload(src glgpu.ShaderSource) error {
	slog.Info("quad: reloading shader")
	return sc.setProgram(src)
}

// Draw clears the frame and draws the quad with the given red value.
func (sc *Scene) Draw(red float32) {
	d := sc.driver
	glgpu.Call(d, "ClearColor(0, 0, 0, 1)", func() { d.ClearColor(0, 0, 0, 1) })
	glgpu.Call(d, "Clear(COLOR_BUFFER_BIT)", func() { d.Clear(glgpu.ColorBufferBit) })
	sc.Program.SetUniform4f(sc.colorLoc, red, 0.3, 0.8, 1)
	n := int32(sc.Indexes.Count())
	glgpu.Call(d, "DrawElements(TRIANGLES, count, UNSIGNED_INT, 0)", func() {
		d.DrawElements(glgpu.Triangles, n, glgpu.UnsignedInt, 0)
	})
}

// Delete deletes all of the GPU resources. Only the first call has any effect.
func (sc *Scene) Delete() {
	sc.VertexArray.Delete()
	sc.Vertices.Delete()
	sc.Indexes.Delete()
	sc.Program.Delete()
}
