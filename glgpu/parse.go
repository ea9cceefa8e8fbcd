// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"cogentcore.org/glquad/base/errors"
)

// ShaderTag marks a line that selects the section that the
// following lines belong to, as in:
//
//	#shader vertex
//	...
//	#shader fragment
//	...
const ShaderTag = "#shader"

// ShaderSource is the pair of stage sources held in one shader file.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// ParseShader splits the given shader file into its vertex and fragment
// sections. A tag line containing "vertex" starts the vertex section,
// and otherwise one containing "fragment" starts the fragment section;
// other tag lines are ignored. Every other line is appended, with a
// trailing newline, to the current section. Lines before the first
// section are discarded.
func ParseShader(r io.Reader) (ShaderSource, error) {
	var vert, frag strings.Builder
	var cur *strings.Builder
	br := bufio.NewReader(r)
	for {
		ln, err := br.ReadString('\n')
		if ln != "" {
			ln = strings.TrimSuffix(strings.TrimSuffix(ln, "\n"), "\r")
			switch {
			case strings.Contains(ln, ShaderTag):
				switch {
				case strings.Contains(ln, "vertex"):
					cur = &vert
				case strings.Contains(ln, "fragment"):
					cur = &frag
				}
			case cur != nil:
				cur.WriteString(ln)
				cur.WriteByte('\n')
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			src := ShaderSource{Vertex: vert.String(), Fragment: frag.String()}
			return src, fmt.Errorf("glgpu ParseShader: %w", err)
		}
	}
	return ShaderSource{Vertex: vert.String(), Fragment: frag.String()}, nil
}

// ParseShaderString is [ParseShader] on a string.
func ParseShaderString(s string) ShaderSource {
	return errors.Log1(ParseShader(strings.NewReader(s)))
}

// OpenShader parses the named shader file in the given file system.
func OpenShader(fsys fs.FS, name string) (ShaderSource, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("glgpu OpenShader %q: %w", name, err)
	}
	defer f.Close()
	return ParseShader(f)
}

// OpenShaderFile parses the shader file at the given path.
func OpenShaderFile(path string) (ShaderSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("glgpu OpenShaderFile: %w", err)
	}
	defer f.Close()
	return ParseShader(f)
}
