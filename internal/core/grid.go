package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Carving and painting passes work on these before the final tile
// conversion; cell values are stage-defined states, not tile IDs.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Dimensions are
// validated by the caller before any grid is built.
func NewByteGrid(w, h int) *ByteGrid {
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell value at (x, y). Out-of-range coordinates are the
// caller's bug; bounds are not rechecked here.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set writes the cell value at (x, y).
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// Clone returns an independent copy, used to snapshot a grid before a
// pass so every cell updates from the previous generation.
func (g *ByteGrid) Clone() *ByteGrid {
	c := &ByteGrid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
