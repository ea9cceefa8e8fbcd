// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quad draws a single quad made of two indexed triangles,
// with a fragment color whose red channel animates every frame.
package quad

import (
	"embed"

	"cogentcore.org/glquad/glgpu"
	"github.com/chewxy/math32"
)

//go:embed shaders/*.shader
var shaders embed.FS

// DefaultShader returns the built-in shader, which colors the quad
// with the vec4 uniform [ColorUniform].
func DefaultShader() (glgpu.ShaderSource, error) {
	return glgpu.OpenShader(shaders, "shaders/basic.shader")
}

// ColorUniform is the name of the animated color uniform.
const ColorUniform = "u_Color"

// Vertices are the xyz positions of the quad corners.
var Vertices = []float32{
	-0.5, -0.5, 0.0, // lower left 0
	0.5, -0.5, 0.0,  // lower right 1
	-0.5, 0.5, 0.0,  // upper left 2
	0.5, 0.5, 0.0,   // upper right 3
}

// Indexes are the two triangles of the quad, which share the 1-2 edge.
var Indexes = []uint32{
	0, 1, 2,
	2, 3, 1,
}

// Animator moves a value back and forth between 0 and 1 by Step each frame.
type Animator struct {
	Value float32
	Step  float32
}

// Next advances the value by one frame and returns it. The step is
// turned toward the range once the value has gone past either end.
func (an *Animator) Next() float32 {
	switch {
	case an.Value > 1:
		an.Step = -math32.Abs(an.Step)
	case an.Value < 0:
		an.Step = math32.Abs(an.Step)
	}
	an.Value += an.Step
	return an.Value
}
