package graphics

// Color is a straight-alpha RGBA color with float channels. Values are passed
// to the backend untouched; nothing here clamps them to [0,1].
type Color struct {
	R, G, B, A float32
}

// Vec4 returns the channels in uniform upload order.
func (c Color) Vec4() [4]float32 { return [4]float32{c.R, c.G, c.B, c.A} }

var (
	Black = Color{0, 0, 0, 1}
	Red   = Color{1, 0, 0, 1}
)
