// Package graphicstest provides a graphics.Device that records calls instead
// of talking to a GPU.
package graphicstest

import (
	"fmt"

	"github.com/richinsley/glcircle/graphics"
)

// Call is one recorded device call.
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// Recorder records every call made through it. Object names start at 1.
// CompileErrors and LinkError make the matching step fail with that log text.
type Recorder struct {
	CompileErrors map[graphics.ShaderStage]string
	LinkError     string

	calls     []Call
	nextName  uint32
	stages    map[uint32]graphics.ShaderStage
	sources   map[uint32]string
	compiled  map[uint32]bool
	linked    map[uint32]bool
	locations map[string]int32
	buffers   map[uint32][]float32
	deleted   map[uint32]bool
}

var _ graphics.Device = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{
		CompileErrors: make(map[graphics.ShaderStage]string),
		stages:        make(map[uint32]graphics.ShaderStage),
		sources:       make(map[uint32]string),
		compiled:      make(map[uint32]bool),
		linked:        make(map[uint32]bool),
		locations:     make(map[string]int32),
		buffers:       make(map[uint32][]float32),
		deleted:       make(map[uint32]bool),
	}
}

func (r *Recorder) record(op string, args ...any) {
	r.calls = append(r.calls, Call{Op: op, Args: args})
}

func (r *Recorder) name() uint32 {
	r.nextName++
	return r.nextName
}

// Calls returns a copy of everything recorded since the last Reset.
func (r *Recorder) Calls() []Call {
	return append([]Call(nil), r.calls...)
}

// Ops returns just the operation names of Calls.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.calls))
	for i, c := range r.calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset forgets recorded calls but keeps created objects.
func (r *Recorder) Reset() {
	r.calls = nil
}

// Uniforms returns every value passed to Uniform4fv, in order.
func (r *Recorder) Uniforms() [][4]float32 {
	var out [][4]float32
	for _, c := range r.calls {
		if c.Op == "Uniform4fv" {
			out = append(out, c.Args[1].([4]float32))
		}
	}
	return out
}

// Buffer returns the data uploaded for a vertex buffer.
func (r *Recorder) Buffer(name uint32) []float32 {
	return r.buffers[name]
}

// Deleted reports whether DeleteShader, DeleteProgram or DeleteBuffer was
// called for name.
func (r *Recorder) Deleted(name uint32) bool {
	return r.deleted[name]
}

func (r *Recorder) ClearColor(red, g, b, a float32) {
	r.record("ClearColor", red, g, b, a)
}

func (r *Recorder) Clear() {
	r.record("Clear")
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) CreateShader(stage graphics.ShaderStage) uint32 {
	n := r.name()
	r.stages[n] = stage
	r.record("CreateShader", stage)
	return n
}

func (r *Recorder) ShaderSource(shader uint32, source string) {
	r.sources[shader] = source
	r.record("ShaderSource", shader, source)
}

func (r *Recorder) CompileShader(shader uint32) {
	_, fail := r.CompileErrors[r.stages[shader]]
	r.compiled[shader] = !fail
	r.record("CompileShader", shader)
}

func (r *Recorder) ShaderCompiled(shader uint32) bool {
	return r.compiled[shader]
}

func (r *Recorder) ShaderInfoLog(shader uint32) string {
	return r.CompileErrors[r.stages[shader]]
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.deleted[shader] = true
	r.record("DeleteShader", shader)
}

func (r *Recorder) CreateProgram() uint32 {
	n := r.name()
	r.record("CreateProgram")
	return n
}

func (r *Recorder) AttachShader(program, shader uint32) {
	r.record("AttachShader", program, shader)
}

func (r *Recorder) LinkProgram(program uint32) {
	r.linked[program] = r.LinkError == ""
	r.record("LinkProgram", program)
}

func (r *Recorder) ProgramLinked(program uint32) bool {
	return r.linked[program]
}

func (r *Recorder) ProgramInfoLog(program uint32) string {
	return r.LinkError
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram", program)
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.deleted[program] = true
	r.record("DeleteProgram", program)
}

// Locations are handed out per name in order of first lookup, starting at 0.
func (r *Recorder) location(name string) int32 {
	if loc, ok := r.locations[name]; ok {
		return loc
	}
	loc := int32(len(r.locations))
	r.locations[name] = loc
	return loc
}

func (r *Recorder) GetAttribLocation(program uint32, name string) int32 {
	loc := r.location(name)
	r.record("GetAttribLocation", program, name)
	return loc
}

func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	loc := r.location(name)
	r.record("GetUniformLocation", program, name)
	return loc
}

// Location returns the location previously handed out for name, or -1.
func (r *Recorder) Location(name string) int32 {
	if loc, ok := r.locations[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) Uniform4fv(location int32, value [4]float32) {
	r.record("Uniform4fv", location, value)
}

func (r *Recorder) NewVertexBuffer(data []float32) uint32 {
	n := r.name()
	r.buffers[n] = append([]float32(nil), data...)
	r.record("NewVertexBuffer", len(data))
	return n
}

func (r *Recorder) BindVertexBuffer(buffer uint32) {
	r.record("BindVertexBuffer", buffer)
}

func (r *Recorder) VertexAttrib2f(location int32) {
	r.record("VertexAttrib2f", location)
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	r.deleted[buffer] = true
	r.record("DeleteBuffer", buffer)
}

func (r *Recorder) DrawArrays(mode graphics.Primitive, first, count int32) {
	r.record("DrawArrays", mode, first, count)
}
