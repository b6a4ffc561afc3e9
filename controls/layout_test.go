package controls

import "testing"

func TestLayoutHitTest(t *testing.T) {
	l := Layout{Width: 400, CanvasHeight: 300, BarHeight: 40, Margin: 4}
	tests := []struct {
		name string
		x, y float64
		want int
		ok   bool
	}{
		{"canvas", 200, 150, -1, false},
		{"first", 50, 320, 0, true},
		{"second", 150, 320, 1, true},
		{"last", 390, 320, 3, true},
		{"gap between buttons", 100, 320, -1, false},
		{"bar margin", 50, 302, -1, false},
		{"outside window", 50, 400, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.HitTest(tt.x, tt.y, 4)
			if got != tt.want || ok != tt.ok {
				t.Errorf("HitTest(%v, %v) = %d, %v; want %d, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestToNDC(t *testing.T) {
	within := Rect{0, 300, 400, 340}
	x0, y0, x1, y1 := ToNDC(within, within)
	if x0 != -1 || y0 != -1 || x1 != 1 || y1 != 1 {
		t.Fatalf("full rect = (%v %v %v %v), want (-1 -1 1 1)", x0, y0, x1, y1)
	}
	x0, y0, x1, y1 = ToNDC(Rect{0, 300, 200, 320}, within)
	if x0 != -1 || x1 != 0 || y0 != 0 || y1 != 1 {
		t.Fatalf("top-left quarter = (%v %v %v %v)", x0, y0, x1, y1)
	}
}

func TestViewport(t *testing.T) {
	l := Layout{Width: 640, CanvasHeight: 480, BarHeight: 48}
	x, y, w, h := l.Viewport(l.Canvas(), 1)
	if x != 0 || y != 48 || w != 640 || h != 480 {
		t.Errorf("canvas viewport = %d %d %d %d", x, y, w, h)
	}
	x, y, w, h = l.Viewport(l.Bar(), 2)
	if x != 0 || y != 0 || w != 1280 || h != 96 {
		t.Errorf("bar viewport at 2x = %d %d %d %d", x, y, w, h)
	}
}
