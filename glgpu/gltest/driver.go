// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides an in-memory [glgpu.Driver] for tests that
// cannot create a GL context. Misuse that a real driver would reject
// raises the matching GL error on its sticky error queue.
package gltest

import (
	"regexp"
	"strings"
	"unsafe"

	"cogentcore.org/glquad/glgpu"
)

// Buffer is the state of a buffer object.
type Buffer struct {
	Data  []byte
	Usage uint32
}

// Shader is the state of a shader object.
type Shader struct {
	Type     glgpu.ShaderTypes
	Source   string
	Compiled bool
	Log      string
}

// Program is the state of a program object.
type Program struct {
	Shaders  []uint32
	Linked   bool
	Log      string
	Uniforms map[string]int32
}

// Attrib is a vertex attribute recorded in a vertex array.
type Attrib struct {
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Enabled    bool
}

// Draw is a recorded DrawElements call.
type Draw struct {
	Mode    uint32
	Count   int32
	Type    uint32
	Offset  uintptr
	Program uint32
}

// Driver is a fake [glgpu.Driver]. Its fields may be inspected and
// changed directly by tests.
type Driver struct {

	// Errors is the pending error queue, oldest first.
	Errors []uint32

	// Calls has the name of every driver method called, in order,
	// except GetError.
	Calls []string

	Buffers      map[uint32]*Buffer
	VertexArrays map[uint32]map[uint32]*Attrib
	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program

	// Bound is the buffer bound to each target.
	Bound map[uint32]uint32

	// VertexArray is the bound vertex array.
	VertexArray uint32

	// Current is the program in use.
	Current uint32

	// Deleted counts the delete calls made for each handle.
	Deleted map[uint32]int

	// UniformValues has the last value set at each uniform location.
	UniformValues map[int32][4]float32

	Draws []Draw

	// ViewportRect is the last viewport set.
	ViewportRect [4]int32

	// ClearColorValue is the last clear color set.
	ClearColorValue [4]float32

	// CompileFunc returns the info log for a failed compile,
	// or "" on success. It defaults to [Compile].
	CompileFunc func(typ glgpu.ShaderTypes, src string) string

	// LinkFunc returns the info log for a failed link,
	// or "" on success. It defaults to [Driver.Link].
	LinkFunc func(pr *Program) string

	next uint32
}

var _ glgpu.Driver = (*Driver)(nil)

// New returns a new fake driver with no objects and no errors.
func New() *Driver {
	d := &Driver{
		Buffers:       map[uint32]*Buffer{},
		VertexArrays:  map[uint32]map[uint32]*Attrib{},
		Shaders:       map[uint32]*Shader{},
		Programs:      map[uint32]*Program{},
		Bound:         map[uint32]uint32{},
		Deleted:       map[uint32]int{},
		UniformValues: map[int32][4]float32{},
	}
	d.CompileFunc = Compile
	d.LinkFunc = d.Link
	return d
}

// PushError adds the given codes to the error queue, as if raised
// by a previous call.
func (d *Driver) PushError(codes ...uint32) {
	d.Errors = append(d.Errors, codes...)
}

// CallCount returns the number of calls to the named method.
func (d *Driver) CallCount(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (d *Driver) call(name string) {
	d.Calls = append(d.Calls, name)
}

func (d *Driver) gen() uint32 {
	d.next++
	return d.next
}

func (d *Driver) GetError() uint32 {
	if len(d.Errors) == 0 {
		return glgpu.NoError
	}
	code := d.Errors[0]
	d.Errors = d.Errors[1:]
	return code
}

func (d *Driver) GenBuffer() uint32 {
	d.call("GenBuffer")
	h := d.gen()
	d.Buffers[h] = &Buffer{}
	return h
}

func validTarget(target uint32) bool {
	return target == glgpu.ArrayBuffer || target == glgpu.ElementArrayBuffer
}

func (d *Driver) BindBuffer(target, buffer uint32) {
	d.call("BindBuffer")
	if !validTarget(target) {
		d.PushError(glgpu.InvalidEnum)
		return
	}
	if _, ok := d.Buffers[buffer]; buffer != 0 && !ok {
		d.PushError(glgpu.InvalidOperation)
		return
	}
	d.Bound[target] = buffer
}

func (d *Driver) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	d.call("BufferData")
	if !validTarget(target) {
		d.PushError(glgpu.InvalidEnum)
		return
	}
	if size < 0 {
		d.PushError(glgpu.InvalidValue)
		return
	}
	b, ok := d.Buffers[d.Bound[target]]
	if !ok {
		d.PushError(glgpu.InvalidOperation)
		return
	}
	b.Usage = usage
	b.Data = make([]byte, size)
	if data != nil && size > 0 {
		copy(b.Data, unsafe.Slice((*byte)(data), size))
	}
}

func (d *Driver) DeleteBuffer(buffer uint32) {
	d.call("DeleteBuffer")
	d.Deleted[buffer]++
	delete(d.Buffers, buffer)
	for t, b := range d.Bound {
		if b == buffer {
			d.Bound[t] = 0
		}
	}
}

func (d *Driver) GenVertexArray() uint32 {
	d.call("GenVertexArray")
	h := d.gen()
	d.VertexArrays[h] = map[uint32]*Attrib{}
	return h
}

func (d *Driver) BindVertexArray(array uint32) {
	d.call("BindVertexArray")
	if _, ok := d.VertexArrays[array]; array != 0 && !ok {
		d.PushError(glgpu.InvalidOperation)
		return
	}
	d.VertexArray = array
}

func (d *Driver) DeleteVertexArray(array uint32) {
	d.call("DeleteVertexArray")
	d.Deleted[array]++
	delete(d.VertexArrays, array)
	if d.VertexArray == array {
		d.VertexArray = 0
	}
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr) {
	d.call("VertexAttribPointer")
	va, ok := d.VertexArrays[d.VertexArray]
	if !ok || d.Bound[glgpu.ArrayBuffer] == 0 {
		d.PushError(glgpu.InvalidOperation)
		return
	}
	if size < 1 || size > 4 || stride < 0 {
		d.PushError(glgpu.InvalidValue)
		return
	}
	at := va[index]
	if at == nil {
		at = &Attrib{}
		va[index] = at
	}
	at.Size, at.Type, at.Normalized, at.Stride, at.Offset = size, typ, normalized, stride, offset
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.call("EnableVertexAttribArray")
	va, ok := d.VertexArrays[d.VertexArray]
	if !ok {
		d.PushError(glgpu.InvalidOperation)
		return
	}
	at := va[index]
	if at == nil {
		at = &Attrib{}
		va[index] = at
	}
	at.Enabled = true
}

func (d *Driver) CreateShader(typ uint32) uint32 {
	d.call("CreateShader")
	st := glgpu.ShaderTypes(typ)
	if st != glgpu.VertexShader && st != glgpu.FragmentShader {
		d.PushError(glgpu.InvalidEnum)
		return 0
	}
	h := d.gen()
	d.Shaders[h] = &Shader{Type: st}
	return h
}

func (d *Driver) shader(h uint32) *Shader {
	sh, ok := d.Shaders[h]
	if !ok {
		d.PushError(glgpu.InvalidValue)
	}
	return sh
}

func (d *Driver) ShaderSource(shader uint32, src string) {
	d.call("ShaderSource")
	if sh := d.shader(shader); sh != nil {
		sh.Source = src
	}
}

func (d *Driver) CompileShader(shader uint32) {
	d.call("CompileShader")
	sh := d.shader(shader)
	if sh == nil {
		return
	}
	sh.Log = d.CompileFunc(sh.Type, sh.Source)
	sh.Compiled = sh.Log == ""
}

// infoLogLength returns the GL info log length of log,
// which includes a terminating NUL.
func infoLogLength(log string) int32 {
	if log == "" {
		return 0
	}
	return int32(len(log) + 1)
}

func truncLog(log string, length int32) string {
	if length <= 1 {
		return ""
	}
	if int(length-1) < len(log) {
		return log[:length-1]
	}
	return log
}

func (d *Driver) GetShaderiv(shader, pname uint32) int32 {
	d.call("GetShaderiv")
	sh := d.shader(shader)
	if sh == nil {
		return 0
	}
	switch pname {
	case glgpu.CompileStatus:
		if sh.Compiled {
			return glgpu.True
		}
		return glgpu.False
	case glgpu.InfoLogLength:
		return infoLogLength(sh.Log)
	}
	d.PushError(glgpu.InvalidEnum)
	return 0
}

func (d *Driver) GetShaderInfoLog(shader uint32, length int32) string {
	d.call("GetShaderInfoLog")
	sh := d.shader(shader)
	if sh == nil {
		return ""
	}
	return truncLog(sh.Log, length)
}

func (d *Driver) DeleteShader(shader uint32) {
	d.call("DeleteShader")
	d.Deleted[shader]++
	delete(d.Shaders, shader)
}

func (d *Driver) CreateProgram() uint32 {
	d.call("CreateProgram")
	h := d.gen()
	d.Programs[h] = &Program{}
	return h
}

func (d *Driver) program(h uint32) *Program {
	pr, ok := d.Programs[h]
	if !ok {
		d.PushError(glgpu.InvalidValue)
	}
	return pr
}

func (d *Driver) AttachShader(program, shader uint32) {
	d.call("AttachShader")
	pr := d.program(program)
	if pr == nil || d.shader(shader) == nil {
		return
	}
	pr.Shaders = append(pr.Shaders, shader)
}

func (d *Driver) LinkProgram(program uint32) {
	d.call("LinkProgram")
	pr := d.program(program)
	if pr == nil {
		return
	}
	pr.Log = d.LinkFunc(pr)
	pr.Linked = pr.Log == ""
	pr.Uniforms = nil
	if pr.Linked {
		pr.Uniforms = d.uniforms(pr)
	}
}

var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)

// uniforms assigns locations to the uniforms declared by
// the program's shaders, in declaration order.
func (d *Driver) uniforms(pr *Program) map[string]int32 {
	us := map[string]int32{}
	for _, h := range pr.Shaders {
		sh := d.Shaders[h]
		if sh == nil {
			continue
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(sh.Source, -1) {
			if _, has := us[m[1]]; !has {
				us[m[1]] = int32(len(us))
			}
		}
	}
	return us
}

// Link is the default [Driver.LinkFunc]: linking fails unless exactly
// one compiled vertex and one compiled fragment shader are attached.
func (d *Driver) Link(pr *Program) string {
	var nv, nf int
	for _, h := range pr.Shaders {
		sh := d.Shaders[h]
		if sh == nil {
			return "error: attached shader was deleted"
		}
		if !sh.Compiled {
			return "error: linking with uncompiled shader"
		}
		switch sh.Type {
		case glgpu.VertexShader:
			nv++
		case glgpu.FragmentShader:
			nf++
		}
	}
	if nv != 1 || nf != 1 {
		return "error: program needs one vertex and one fragment shader"
	}
	return ""
}

func (d *Driver) GetProgramiv(program, pname uint32) int32 {
	d.call("GetProgramiv")
	pr := d.program(program)
	if pr == nil {
		return 0
	}
	switch pname {
	case glgpu.LinkStatus:
		if pr.Linked {
			return glgpu.True
		}
		return glgpu.False
	case glgpu.InfoLogLength:
		return infoLogLength(pr.Log)
	}
	d.PushError(glgpu.InvalidEnum)
	return 0
}

func (d *Driver) GetProgramInfoLog(program uint32, length int32) string {
	d.call("GetProgramInfoLog")
	pr := d.program(program)
	if pr == nil {
		return ""
	}
	return truncLog(pr.Log, length)
}

func (d *Driver) DeleteProgram(program uint32) {
	d.call("DeleteProgram")
	d.Deleted[program]++
	delete(d.Programs, program)
	if d.Current == program {
		d.Current = 0
	}
}

func (d *Driver) UseProgram(program uint32) {
	d.call("UseProgram")
	if program != 0 {
		pr := d.program(program)
		if pr == nil {
			return
		}
		if !pr.Linked {
			d.PushError(glgpu.InvalidOperation)
			return
		}
	}
	d.Current = program
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	d.call("GetUniformLocation")
	pr := d.program(program)
	if pr == nil {
		return -1
	}
	if !pr.Linked {
		d.PushError(glgpu.InvalidOperation)
		return -1
	}
	loc, ok := pr.Uniforms[name]
	if !ok {
		return -1
	}
	return loc
}

func (d *Driver) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	d.call("Uniform4f")
	if d.Current == 0 {
		d.PushError(glgpu.InvalidOperation)
		return
	}
	if location < 0 {
		return
	}
	d.UniformValues[location] = [4]float32{v0, v1, v2, v3}
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.call("Viewport")
	if width < 0 || height < 0 {
		d.PushError(glgpu.InvalidValue)
		return
	}
	d.ViewportRect = [4]int32{x, y, width, height}
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.call("ClearColor")
	d.ClearColorValue = [4]float32{r, g, b, a}
}

const (
	depthBufferBit   uint32 = 0x00000100
	stencilBufferBit uint32 = 0x00000400
)

func (d *Driver) Clear(mask uint32) {
	d.call("Clear")
	if mask&^(glgpu.ColorBufferBit|depthBufferBit|stencilBufferBit) != 0 {
		d.PushError(glgpu.InvalidValue)
	}
}

func (d *Driver) DrawElements(mode uint32, count int32, typ uint32, offset uintptr) {
	d.call("DrawElements")
	if count < 0 {
		d.PushError(glgpu.InvalidValue)
		return
	}
	if d.VertexArray == 0 || d.Current == 0 {
		d.PushError(glgpu.InvalidOperation)
		return
	}
	d.Draws = append(d.Draws, Draw{Mode: mode, Count: count, Type: typ, Offset: offset, Program: d.Current})
}

func (d *Driver) Version() string {
	return "3.3 gltest"
}

// Compile is the default [Driver.CompileFunc]. It rejects sources
// without a main function or with unbalanced braces.
func Compile(typ glgpu.ShaderTypes, src string) string {
	if !strings.Contains(src, "void main") {
		return "0:1(1): error: " + typ.String() + " shader lacks `main'"
	}
	if strings.Count(src, "{") != strings.Count(src, "}") {
		return "0:1(1): error: syntax error, unexpected end of file"
	}
	return ""
}
