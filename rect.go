package textmesh

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Left, Top     float32
	Width, Height float32
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Top + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(p Point) bool {
	minX, maxX := minmax(r.Left, r.Right())
	minY, maxY := minmax(r.Top, r.Bottom())
	return p.X >= minX && p.X < maxX && p.Y >= minY && p.Y < maxY
}

// Inflate returns r grown by d on all four sides.
func (r Rect) Inflate(d float32) Rect {
	return Rect{Left: r.Left - d, Top: r.Top - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

func minmax(a, b float32) (float32, float32) {
	if a < b {
		return a, b
	}
	return b, a
}
