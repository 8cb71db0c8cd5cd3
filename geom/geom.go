// Package geom provides the integer 2D primitives shared by the game:
// points for positions and velocities, and axis-aligned rectangles for
// collision detection.
package geom

// Point is an integer 2D coordinate, used for both positions and velocities.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned rectangle with integer origin and extents.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int {
	return r.X
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int {
	return r.Y
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Intersects reports whether r and other overlap. The comparison is strict:
// rectangles that merely touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}
