// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"context"
	"errors"
	"testing"

	"cogentcore.org/glquad/glgpu"
	"cogentcore.org/glquad/glgpu/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultShader(t *testing.T) {
	src, err := DefaultShader()
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "gl_Position = position;")
	assert.Contains(t, src.Fragment, "uniform vec4 u_Color;")
	assert.NotContains(t, src.Vertex, "#shader")
}

func TestGeometry(t *testing.T) {
	assert.Len(t, Vertices, 4*3)
	require.Len(t, Indexes, 6)
	a, b := Indexes[:3], Indexes[3:]
	shared := 0
	for _, i := range a {
		assert.Less(t, i, uint32(4))
		for _, j := range b {
			if i == j {
				shared++
			}
		}
	}
	assert.Equal(t, 2, shared)
}

func TestAnimator(t *testing.T) {
	an := &Animator{Step: 0.25}
	want := []float32{0.25, 0.5, 0.75, 1, 1.25, 1, 0.75, 0.5, 0.25, 0, -0.25, 0, 0.25}
	got := make([]float32, len(want))
	for i := range want {
		got[i] = an.Next()
	}
	assert.Equal(t, want, got)
}

func TestAnimatorBounds(t *testing.T) {
	an := &Animator{Step: 0.005}
	for range 2000 {
		v := an.Next()
		assert.GreaterOrEqual(t, v, float32(-0.01))
		assert.LessOrEqual(t, v, float32(1.01))
	}
}

func newScene(t *testing.T) (*gltest.Driver, *Scene) {
	d := gltest.New()
	src, err := DefaultShader()
	require.NoError(t, err)
	sc, err := NewScene(d, src)
	require.NoError(t, err)
	return d, sc
}

func TestNewScene(t *testing.T) {
	d, sc := newScene(t)
	assert.Equal(t, sc.Program.Handle(), d.Current)
	assert.Equal(t, sc.VertexArray.Handle(), d.VertexArray)
	assert.Zero(t, d.Bound[glgpu.ArrayBuffer])
	assert.Equal(t, sc.Indexes.Handle(), d.Bound[glgpu.ElementArrayBuffer])
	assert.Equal(t, 6, sc.Indexes.Count())
	assert.Equal(t, 48, sc.Vertices.Size())

	at := d.VertexArrays[sc.VertexArray.Handle()][0]
	require.NotNil(t, at)
	assert.Equal(t, gltest.Attrib{Size: 3, Type: glgpu.Float, Stride: 12, Enabled: true}, *at)
	assert.Equal(t, [4]float32{0.8, 0.3, 0.8, 1}, d.UniformValues[sc.colorLoc])
	assert.Empty(t, d.Errors)
}

func TestSceneDraw(t *testing.T) {
	d, sc := newScene(t)
	d.Calls = nil
	sc.Draw(0.5)
	assert.Equal(t, []string{"ClearColor", "Clear", "Uniform4f", "DrawElements"}, d.Calls)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, d.ClearColorValue)
	assert.Equal(t, [4]float32{0.5, 0.3, 0.8, 1}, d.UniformValues[sc.colorLoc])
	require.Len(t, d.Draws, 1)
	assert.Equal(t, gltest.Draw{Mode: glgpu.Triangles, Count: 6, Type: glgpu.UnsignedInt, Program: sc.Program.Handle()}, d.Draws[0])
	assert.Empty(t, d.Errors)
}

func TestSceneDelete(t *testing.T) {
	d, sc := newScene(t)
	handles := []uint32{sc.Program.Handle(), sc.VertexArray.Handle(), sc.Vertices.Handle(), sc.Indexes.Handle()}
	sc.Delete()
	sc.Delete()
	for _, h := range handles {
		assert.Equal(t, 1, d.Deleted[h])
	}
}

func TestSceneBrokenShader(t *testing.T) {
	d := gltest.New()
	src, err := DefaultShader()
	require.NoError(t, err)
	src.Fragment = "void main() {"
	sc, err := NewScene(d, src)
	require.NotNil(t, sc)
	var ce *glgpu.CompileError
	assert.True(t, errors.As(err, &ce))
	assert.NotZero(t, sc.Program.Handle())
	assert.NotPanics(t, func() { sc.Draw(0.1) })
}

func TestSceneReload(t *testing.T) {
	d, sc := newScene(t)
	old := sc.Program.Handle()
	src, err := DefaultShader()
	require.NoError(t, err)
	require.NoError(t, sc.Reload(src))
	assert.NotEqual(t, old, sc.Program.Handle())
	assert.Equal(t, 1, d.Deleted[old])
	assert.Equal(t, sc.Program.Handle(), d.Current)
	assert.Empty(t, d.Errors)
}

type surface struct {
	closeAt int
	swaps   int
	polls   int
}

func (s *surface) ShouldClose() bool { return s.closeAt > 0 && s.swaps >= s.closeAt }
func (s *surface) SwapBuffers()      { s.swaps++ }
func (s *surface) PollEvents()       { s.polls++ }

func TestRunUntilClose(t *testing.T) {
	d, sc := newScene(t)
	surf := &surface{closeAt: 3}
	an := &Animator{Step: 0.25}
	n := Run(context.Background(), surf, sc, an, RunOptions{})
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, surf.swaps)
	assert.Equal(t, 3, surf.polls)
	assert.Len(t, d.Draws, 3)
	assert.Equal(t, [4]float32{0.5, 0.3, 0.8, 1}, d.UniformValues[sc.colorLoc])
	assert.Equal(t, float32(0.75), an.Value)
}

func TestRunFrames(t *testing.T) {
	d, sc := newScene(t)
	n := Run(context.Background(), &surface{}, sc, &Animator{Step: 0.005}, RunOptions{Frames: 5})
	assert.Equal(t, 5, n)
	assert.Len(t, d.Draws, 5)
}

func TestRunCanceled(t *testing.T) {
	d, sc := newScene(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := Run(ctx, &surface{}, sc, &Animator{}, RunOptions{})
	assert.Zero(t, n)
	assert.Empty(t, d.Draws)
}

func TestRunReload(t *testing.T) {
	d, sc := newScene(t)
	old := sc.Program.Handle()
	reload := make(chan struct{}, 1)
	reload <- struct{}{}
	calls := 0
	opts := RunOptions{
		Frames: 2,
		Reload: reload,
		Source: func() (glgpu.ShaderSource, error) {
			calls++
			return DefaultShader()
		},
	}
	Run(context.Background(), &surface{}, sc, &Animator{}, opts)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, d.Deleted[old])
	require.Len(t, d.Draws, 2)
	assert.Equal(t, sc.Program.Handle(), d.Draws[0].Program)

	reload <- struct{}{}
	cur := sc.Program.Handle()
	opts.Source = func() (glgpu.ShaderSource, error) { return glgpu.ShaderSource{}, errors.New("gone") }
	Run(context.Background(), &surface{}, sc, &Animator{}, opts)
	assert.Equal(t, cur, sc.Program.Handle())
}
