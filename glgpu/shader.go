// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
)

// ShaderTypes are the kinds of shader stage, with GL enum values.
type ShaderTypes uint32

const (
	FragmentShader ShaderTypes = 0x8B30
	VertexShader   ShaderTypes = 0x8B31
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("ShaderTypes(0x%04X)", uint32(st))
}

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Type ShaderTypes

	// Log is the shader info log.
	Log string
}

func (ce *CompileError) Error() string {
	return fmt.Sprintf("glgpu: failed to compile %s shader:\n%s", ce.Type, ce.Log)
}

// CompileShader creates a shader stage of the given type from src and
// compiles it. The stage handle is returned even when compilation
// fails, in which case the error is a [*CompileError] holding the
// info log, which is also logged. The caller owns the handle.
func CompileShader(d Driver, typ ShaderTypes, src string) (uint32, error) {
	var handle uint32
	Call(d, "CreateShader(type)", func() { handle = d.CreateShader(uint32(typ)) })
	Call(d, "ShaderSource(handle, src)", func() { d.ShaderSource(handle, src) })
	Call(d, "CompileShader(handle)", func() { d.CompileShader(handle) })

	var status int32
	Call(d, "GetShaderiv(handle, COMPILE_STATUS)", func() { status = d.GetShaderiv(handle, CompileStatus) })
	if status != False {
		return handle, nil
	}
	var logLength int32
	Call(d, "GetShaderiv(handle, INFO_LOG_LENGTH)", func() { logLength = d.GetShaderiv(handle, InfoLogLength) })
	var msg string
	Call(d, "GetShaderInfoLog(handle, length)", func() { msg = d.GetShaderInfoLog(handle, logLength) })

	err := &CompileError{Type: typ, Log: msg}
	slog.Error("glgpu CompileShader: failed to compile", "type", typ, "handle", handle, "log", msg)
	return handle, err
}
