package core

// Size describes the dimensions of a level grid.
type Size struct {
	W int
	H int
}

// Point is an integer grid coordinate.
type Point struct {
	X int
	Y int
}

// Orthogonal lists the 4-connected neighbor offsets in a fixed order so
// walks that draw from them stay reproducible.
var Orthogonal = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// ManhattanDist returns the L1 distance between two points.
func ManhattanDist(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
