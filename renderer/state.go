package renderer

import (
	"github.com/richinsley/glcircle/graphics"
	"github.com/richinsley/glcircle/shader"
)

// State is everything a draw needs. Handles and locations are fixed once the
// scene is built; only the fill color changes afterwards.
type State struct {
	Program     shader.Program
	Buffer      uint32
	PositionLoc int32
	ColorLoc    int32
	VertexCount int32

	color graphics.Color
}

// NewState returns a state whose fill color is opaque red.
func NewState() *State {
	return &State{PositionLoc: -1, ColorLoc: -1, color: graphics.Red}
}

// SetFillColor replaces the current fill color. Out-of-range channels are
// passed through.
func (s *State) SetFillColor(c graphics.Color) { s.color = c }

func (s *State) FillColor() graphics.Color { return s.color }
