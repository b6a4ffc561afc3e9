// Package geometry builds the vertex data uploaded to the GPU. Coordinates are
// flat x,y pairs in normalized device coordinates.
package geometry

import "math"

// FanVertexCount is the number of points CircleFan emits for segments.
func FanVertexCount(segments int) int {
	return segments + 2
}

// CircleFan approximates a circle as a triangle fan: the center, then
// segments+1 points on the perimeter so the last triangle closes the loop.
// segments must be at least 3.
func CircleFan(cx, cy, radius float32, segments int) []float32 {
	vertices := make([]float32, 0, 2*FanVertexCount(segments))
	vertices = append(vertices, cx, cy)

	step := 2 * math.Pi / float64(segments)
	for i := 0; i <= segments; i++ {
		angle := float64(i) * step
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		vertices = append(vertices, x, y)
	}
	return vertices
}

// Rect returns the four corners of an axis-aligned rectangle in fan order.
func Rect(x0, y0, x1, y1 float32) []float32 {
	return []float32{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y1,
	}
}
