package common

import "fmt"

// Cell addresses one unit of the movement grid.
type Cell struct {
	X int
	Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add offsets a cell by dx, dy.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the four-connected distance between two cells.
func (c Cell) Manhattan(o Cell) int {
	return Abs(c.X-o.X) + Abs(c.Y-o.Y)
}

// Rect is an integer axis-aligned box in screen space.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Intersects reports strict overlap; touching edges do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.OverlapsX(other) && r.OverlapsY(other)
}

func (r Rect) OverlapsX(other Rect) bool {
	return r.X < other.X+other.Width && r.X+r.Width > other.X
}

func (r Rect) OverlapsY(other Rect) bool {
	return r.Y < other.Y+other.Height && r.Y+r.Height > other.Y
}

// Moved returns the rect translated to x, y keeping its size.
func (r Rect) Moved(x, y int) Rect {
	r.X = x
	r.Y = y
	return r
}
