// Package renderer owns the GPU resources for the circle and draws it.
package renderer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/richinsley/glcircle/graphics"
	"github.com/richinsley/glcircle/logging"
	"github.com/richinsley/glcircle/shader"
)

// ErrInvalidProgram is returned when a scene is built from a program that
// failed to compile or link.
var ErrInvalidProgram = errors.New("invalid shader program")

// Renderer draws the circle described by its State.
type Renderer struct {
	dev      graphics.Device
	state    *State
	viewport [4]int32
	logger   *slog.Logger
}

// NewScene uploads vertices once and resolves the program's attribute and
// uniform locations. The state starts with the default fill color.
func NewScene(dev graphics.Device, program shader.Program, vertices []float32, clear graphics.Color) (*Renderer, error) {
	if !program.Valid() {
		return nil, ErrInvalidProgram
	}
	if len(vertices) < 6 || len(vertices)%2 != 0 {
		return nil, fmt.Errorf("need at least 3 vec2 vertices, got %d floats", len(vertices))
	}
	logger := logging.WithComponent("renderer")

	s := NewState()
	s.Program = program
	s.VertexCount = int32(len(vertices) / 2)

	s.PositionLoc = dev.GetAttribLocation(program.Handle, program.Name(shader.PositionAttrib))
	if s.PositionLoc < 0 {
		logger.Warn("position attribute not reported, using declared slot", "name", program.Name(shader.PositionAttrib), "slot", shader.PositionLocation)
		s.PositionLoc = shader.PositionLocation
	}
	s.ColorLoc = dev.GetUniformLocation(program.Handle, program.Name(shader.ColorUniform))
	if s.ColorLoc < 0 {
		logger.Warn("color uniform not found", "name", program.Name(shader.ColorUniform))
	}

	s.Buffer = dev.NewVertexBuffer(vertices)
	dev.VertexAttrib2f(s.PositionLoc)

	dev.ClearColor(clear.R, clear.G, clear.B, clear.A)

	logger.Debug("scene ready", "vertices", s.VertexCount, "position", s.PositionLoc, "color", s.ColorLoc)
	return &Renderer{dev: dev, state: s, logger: logger}, nil
}

// State returns the state the renderer reads on every Render.
func (r *Renderer) State() *State { return r.state }

// SetViewport restricts drawing to a region of the framebuffer. A zero
// width leaves the viewport alone.
func (r *Renderer) SetViewport(x, y, width, height int32) {
	r.viewport = [4]int32{x, y, width, height}
}

// Render clears the color buffer and draws the fan with the current fill
// color. It keeps nothing between calls.
func (r *Renderer) Render() {
	s := r.state
	r.dev.Clear()
	if r.viewport[2] > 0 {
		r.dev.Viewport(r.viewport[0], r.viewport[1], r.viewport[2], r.viewport[3])
	}
	r.dev.UseProgram(s.Program.Handle)
	r.dev.BindVertexBuffer(s.Buffer)
	r.dev.Uniform4fv(s.ColorLoc, s.color.Vec4())
	r.dev.DrawArrays(graphics.TriangleFan, 0, s.VertexCount)
}

// Shutdown releases the buffer and program.
func (r *Renderer) Shutdown() {
	r.dev.DeleteBuffer(r.state.Buffer)
	r.dev.DeleteProgram(r.state.Program.Handle)
}
