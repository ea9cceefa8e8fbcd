// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"testing/iotest"

	"cogentcore.org/glquad/glgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShader(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want glgpu.ShaderSource
	}{
		{"basic", "#shader vertex\nA\n#shader fragment\nB\n", glgpu.ShaderSource{Vertex: "A\n", Fragment: "B\n"}},
		{"reversed", "#shader fragment\nB\n#shader vertex\nA\n", glgpu.ShaderSource{Vertex: "A\n", Fragment: "B\n"}},
		{"multiline", "#shader vertex\nA\nA2\n\n#shader fragment\nB\nB2", glgpu.ShaderSource{Vertex: "A\nA2\n\n", Fragment: "B\nB2\n"}},
		{"leading", "// header\n#shader vertex\nA\n", glgpu.ShaderSource{Vertex: "A\n"}},
		{"unknown tag", "#shader vertex\nA\n#shader geometry\nB\n#shader fragment\nC\n", glgpu.ShaderSource{Vertex: "A\nB\n", Fragment: "C\n"}},
		{"repeated", "#shader vertex\nA\n#shader fragment\nB\n#shader vertex\nA2\n", glgpu.ShaderSource{Vertex: "A\nA2\n", Fragment: "B\n"}},
		{"crlf", "#shader vertex\r\nA\r\n#shader fragment\r\nB\r\n", glgpu.ShaderSource{Vertex: "A\n", Fragment: "B\n"}},
		{"empty", "", glgpu.ShaderSource{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, glgpu.ParseShaderString(tt.in))
		})
	}
}

func TestParseShaderLongLine(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	src, err := glgpu.ParseShader(strings.NewReader("#shader vertex\nA\n" + long + "\n#shader fragment\nB\n"))
	require.NoError(t, err)
	assert.Equal(t, "A\n"+long+"\n", src.Vertex)
	assert.Equal(t, "B\n", src.Fragment)
}

func TestParseShaderReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("#shader vertex\nA\n"), iotest.ErrReader(boom))
	src, err := glgpu.ParseShader(r)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "A\n", src.Vertex)
}

const basicShader = `#shader vertex
#version 330 core
layout(location = 0) in vec4 position;
void main()
{
	gl_Position = position;
}

#shader fragment
#version 330 core
layout(location = 0) out vec4 color;
uniform vec4 u_Color;
void main()
{
	color = u_Color;
}
`

func TestOpenShader(t *testing.T) {
	fsys := fstest.MapFS{"shaders/basic.shader": {Data: []byte(basicShader)}}
	src, err := glgpu.OpenShader(fsys, "shaders/basic.shader")
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "gl_Position = position;")
	assert.NotContains(t, src.Vertex, "u_Color")
	assert.Contains(t, src.Fragment, "uniform vec4 u_Color;")
	assert.NotContains(t, src.Fragment, "#shader")

	_, err = glgpu.OpenShader(fsys, "missing.shader")
	assert.Error(t, err)
}

func TestOpenShaderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Basic.shader")
	require.NoError(t, os.WriteFile(path, []byte(basicShader), 0666))
	src, err := glgpu.OpenShaderFile(path)
	require.NoError(t, err)
	assert.Equal(t, glgpu.ParseShaderString(basicShader), src)

	_, err = glgpu.OpenShaderFile(filepath.Join(t.TempDir(), "none.shader"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
