package renderer

import (
	"github.com/richinsley/glcircle/controls"
	"github.com/richinsley/glcircle/geometry"
	"github.com/richinsley/glcircle/graphics"
)

// ButtonBar paints the button strip below the canvas, one flat rectangle per
// swatch, with the circle's program.
type ButtonBar struct {
	dev      graphics.Device
	state    *State
	buffer   uint32
	swatches []graphics.Color
	viewport [4]int32
}

// NewButtonBar uploads one rectangle per swatch, laid out as in layout.
func NewButtonBar(dev graphics.Device, state *State, layout controls.Layout, swatches []graphics.Color) *ButtonBar {
	bar := layout.Bar()
	vertices := make([]float32, 0, 8*len(swatches))
	for i := range swatches {
		x0, y0, x1, y1 := controls.ToNDC(layout.Button(i, len(swatches)), bar)
		vertices = append(vertices, geometry.Rect(x0, y0, x1, y1)...)
	}

	b := &ButtonBar{dev: dev, state: state, swatches: swatches}
	b.buffer = dev.NewVertexBuffer(vertices)
	dev.VertexAttrib2f(state.PositionLoc)
	return b
}

func (b *ButtonBar) SetViewport(x, y, width, height int32) {
	b.viewport = [4]int32{x, y, width, height}
}

// Draw paints every button. It does not clear.
func (b *ButtonBar) Draw() {
	if b.viewport[2] > 0 {
		b.dev.Viewport(b.viewport[0], b.viewport[1], b.viewport[2], b.viewport[3])
	}
	b.dev.UseProgram(b.state.Program.Handle)
	b.dev.BindVertexBuffer(b.buffer)
	for i, c := range b.swatches {
		b.dev.Uniform4fv(b.state.ColorLoc, c.Vec4())
		b.dev.DrawArrays(graphics.TriangleFan, int32(4*i), 4)
	}
}

func (b *ButtonBar) Shutdown() {
	b.dev.DeleteBuffer(b.buffer)
}
