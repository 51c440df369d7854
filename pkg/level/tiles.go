package level

import "fmt"

// Tile IDs shared with the level exporter. These are a fixed external
// contract and must never be renumbered.
const (
	TileGround       = 1
	TileLava         = 6
	TileWater        = 11
	TileDirt         = 26
	TileLooseRock    = 30
	TileHardRock     = 34
	TileSolidRock    = 38
	TileCrystalSeam  = 42
	TileOreSeam      = 46
	TileRechargeSeam = 50
)

// IsRock reports whether a tile belongs to the drillable rock family that
// can host a resource seam.
func IsRock(id int) bool {
	return id == TileLooseRock || id == TileHardRock || id == TileSolidRock
}

// IsWalkable reports whether units can stand on the tile.
func IsWalkable(id int) bool {
	return id == TileGround
}

// TileGrid is the finished terrain: row-major tile IDs.
type TileGrid struct {
	Width  int
	Height int
	Cells  []int
}

// NewTileGrid allocates a grid of the given dimensions filled with ground.
func NewTileGrid(w, h int) *TileGrid {
	g := &TileGrid{Width: w, Height: h, Cells: make([]int, w*h)}
	for i := range g.Cells {
		g.Cells[i] = TileGround
	}
	return g
}

// At returns the tile ID at (x, y).
func (g *TileGrid) At(x, y int) int { return g.Cells[y*g.Width+x] }

// Set writes the tile ID at (x, y).
func (g *TileGrid) Set(x, y, id int) { g.Cells[y*g.Width+x] = id }

// InBounds reports whether (x, y) lies inside the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *TileGrid) check() error {
	if g == nil {
		return fmt.Errorf("%w: nil tile grid", ErrInvalidOptions)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: grid dimensions %dx%d must be positive", ErrInvalidOptions, g.Width, g.Height)
	}
	if len(g.Cells) != g.Width*g.Height {
		return fmt.Errorf("%w: grid has %d cells, want %d", ErrInvalidOptions, len(g.Cells), g.Width*g.Height)
	}
	return nil
}

// HeightField is the per-tile elevation layer, same dimensions and cell
// order as the tile grid it was generated with.
type HeightField struct {
	Width  int
	Height int
	Cells  []int
}

// NewHeightField allocates a zeroed field of the given dimensions.
func NewHeightField(w, h int) *HeightField {
	return &HeightField{Width: w, Height: h, Cells: make([]int, w*h)}
}

// At returns the elevation at (x, y).
func (f *HeightField) At(x, y int) int { return f.Cells[y*f.Width+x] }

// Set writes the elevation at (x, y).
func (f *HeightField) Set(x, y, v int) { f.Cells[y*f.Width+x] = v }
