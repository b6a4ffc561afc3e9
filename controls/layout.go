package controls

// Rect is a region in window coordinates: origin top-left, y down.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// belong to the neighbour.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Layout splits the window into the canvas on top and a strip of equally
// wide buttons below it.
type Layout struct {
	Width        int
	CanvasHeight int
	BarHeight    int
	// Margin is the gap in window units around each button.
	Margin int
}

// WindowHeight is the total window height.
func (l Layout) WindowHeight() int { return l.CanvasHeight + l.BarHeight }

func (l Layout) Canvas() Rect {
	return Rect{0, 0, float64(l.Width), float64(l.CanvasHeight)}
}

func (l Layout) Bar() Rect {
	return Rect{0, float64(l.CanvasHeight), float64(l.Width), float64(l.WindowHeight())}
}

// Button is the clickable area of button i of n.
func (l Layout) Button(i, n int) Rect {
	bar := l.Bar()
	w := bar.Width() / float64(n)
	m := float64(l.Margin)
	return Rect{
		X0: bar.X0 + float64(i)*w + m,
		Y0: bar.Y0 + m,
		X1: bar.X0 + float64(i+1)*w - m,
		Y1: bar.Y1 - m,
	}
}

// HitTest returns the index of the button under (x, y), if any.
func (l Layout) HitTest(x, y float64, n int) (int, bool) {
	for i := 0; i < n; i++ {
		if l.Button(i, n).Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// ToNDC maps r into normalized device coordinates of the viewport covering
// within.
func ToNDC(r, within Rect) (x0, y0, x1, y1 float32) {
	nx := func(x float64) float32 { return float32(2*(x-within.X0)/within.Width() - 1) }
	ny := func(y float64) float32 { return float32(1 - 2*(y-within.Y0)/within.Height()) }
	return nx(r.X0), ny(r.Y1), nx(r.X1), ny(r.Y0)
}

// Viewport converts r to a GL viewport on a framebuffer that is scale times
// the window size. GL puts the origin bottom-left.
func (l Layout) Viewport(r Rect, scale float64) (x, y, width, height int32) {
	fbHeight := float64(l.WindowHeight()) * scale
	return int32(r.X0 * scale), int32(fbHeight - r.Y1*scale), int32(r.Width() * scale), int32(r.Height() * scale)
}
