// Package gldevice implements graphics.Device on desktop OpenGL 4.1 core.
// All methods must be called on the thread that owns the current context.
package gldevice

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/glcircle/graphics"
)

var glInitOnce sync.Once

// Device issues GL calls against whichever context is current.
type Device struct {
	// core profile keeps attribute state in a vertex array object, one per buffer
	vaos map[uint32]uint32
}

var _ graphics.Device = (*Device)(nil)

// New loads the GL function pointers for the current context.
func New() (*Device, error) {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	return &Device{vaos: make(map[uint32]uint32)}, nil
}

// Version reports the driver's GL_VERSION string.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Device) CreateShader(stage graphics.ShaderStage) uint32 {
	switch stage {
	case graphics.VertexStage:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case graphics.FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return 0
}

func (d *Device) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (d *Device) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform4fv(location int32, value [4]float32) {
	gl.Uniform4fv(location, 1, &value[0])
}

func (d *Device) NewVertexBuffer(data []float32) uint32 {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	d.vaos[vbo] = vao
	return vbo
}

func (d *Device) BindVertexBuffer(buffer uint32) {
	gl.BindVertexArray(d.vaos[buffer])
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

func (d *Device) VertexAttrib2f(location int32) {
	if location < 0 {
		return
	}
	gl.VertexAttribPointer(uint32(location), 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(uint32(location))
}

func (d *Device) DeleteBuffer(buffer uint32) {
	if vao, ok := d.vaos[buffer]; ok {
		gl.DeleteVertexArrays(1, &vao)
		delete(d.vaos, buffer)
	}
	gl.DeleteBuffers(1, &buffer)
}

func (d *Device) DrawArrays(mode graphics.Primitive, first, count int32) {
	switch mode {
	case graphics.TriangleFan:
		gl.DrawArrays(gl.TRIANGLE_FAN, first, count)
	}
}
