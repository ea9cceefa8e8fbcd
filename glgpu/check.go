// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// Checks is whether [Call] checks the GL error queue around each call.
// It is on in builds with the debug tag and off otherwise, where
// [Call] just runs the call.
var Checks = debugBuild

// Diagnostic records one GL error code raised by a traced call.
type Diagnostic struct {

	// Call is the source text of the traced call.
	Call string

	// File and Line locate the traced call.
	File string
	Line int

	// Code is the GL error code.
	Code uint32
}

func (dg Diagnostic) String() string {
	return fmt.Sprintf("[OpenGL Error] (%s 0x%04X): %s %s:%d", ErrorName(dg.Code), dg.Code, dg.Call, dg.File, dg.Line)
}

// CallError is returned by [Call] when the traced call raised
// one or more GL errors.
type CallError struct {
	Diagnostics []Diagnostic
}

func (ce *CallError) Error() string {
	if len(ce.Diagnostics) == 1 {
		return "glgpu: " + ce.Diagnostics[0].String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "glgpu: %d OpenGL errors:", len(ce.Diagnostics))
	for _, dg := range ce.Diagnostics {
		b.WriteString("\n\t")
		b.WriteString(dg.String())
	}
	return b.String()
}

// ClearErrors discards all pending errors in the GL error queue,
// so that errors read afterwards can only come from later calls.
func ClearErrors(d Driver) {
	for d.GetError() != NoError {
	}
}

// LogCall reads every pending error in the GL error queue, logging
// each one along with the given call text and location, and returns
// the resulting diagnostics. The call succeeded iff none are returned.
func LogCall(d Driver, call, file string, line int) []Diagnostic {
	var diags []Diagnostic
	for {
		code := d.GetError()
		if code == NoError {
			break
		}
		dg := Diagnostic{Call: call, File: file, Line: line, Code: code}
		slog.Error("OpenGL error", "code", code, "name", ErrorName(code), "call", call, "file", file, "line", line)
		diags = append(diags, dg)
	}
	return diags
}

// Call runs fn, which should make the GL call described by call.
// When [Checks] is on, it clears the error queue first and returns
// a [*CallError] with all errors raised after fn, located at the
// caller of Call. Otherwise it just runs fn and returns nil.
func Call(d Driver, call string, fn func()) error {
	if !Checks {
		fn()
		return nil
	}
	_, file, line, _ := runtime.Caller(1)
	ClearErrors(d)
	fn()
	if diags := LogCall(d, call, file, line); len(diags) > 0 {
		return &CallError{Diagnostics: diags}
	}
	return nil
}

// ErrorName returns the GL name of the given error code.
func ErrorName(code uint32) string {
	switch code {
	case NoError:
		return "NO_ERROR"
	case InvalidEnum:
		return "INVALID_ENUM"
	case InvalidValue:
		return "INVALID_VALUE"
	case InvalidOperation:
		return "INVALID_OPERATION"
	case StackOverflow:
		return "STACK_OVERFLOW"
	case StackUnderflow:
		return "STACK_UNDERFLOW"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return "UNKNOWN_ERROR"
}
