package level

import (
	"github.com/aquilax/go-perlin"

	"cavegen/internal/core"
	"cavegen/pkg/rng"
)

const (
	noiseAlpha = 2
	noiseBeta  = 2
	noiseDepth = 3
	noiseScale = 10.0
)

// carveCaves produces the binary occupancy grid: open floor cut out of
// solid rock, smoothed into cavern shapes, with a sealed border.
func carveCaves(o Options, src *rng.Source) *core.ByteGrid {
	g := core.NewByteGrid(o.Width, o.Height)
	switch o.Layout {
	case LayoutNoise:
		fillNoise(g, o)
	default:
		fillRandom(g, o.FillProbability, src)
	}
	for i := 0; i < o.SmoothingIterations; i++ {
		smoothPass(g, o.BirthLimit, o.DeathLimit)
	}
	sealBorder(g, o.EdgePadding)
	return g
}

// fillRandom seeds each cell solid with the given probability, row-major
// so the draw order is fixed.
func fillRandom(g *core.ByteGrid, fill float64, src *rng.Source) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if src.Chance(fill) {
				g.Set(x, y, stateSolid)
			}
		}
	}
}

// fillNoise seeds the grid from fractal noise instead of independent
// trials, which yields blobbier starting shapes. The noise field depends
// only on the seed, so runs stay reproducible.
func fillNoise(g *core.ByteGrid, o Options) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseDepth, o.Seed)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			n := (p.Noise2D(float64(x)/noiseScale, float64(y)/noiseScale) + 1) / 2
			if n < o.FillProbability {
				g.Set(x, y, stateSolid)
			}
		}
	}
}

// smoothPass applies one birth/death rule generation. Every cell updates
// from a snapshot of the previous grid, never from partially updated
// cells. A solid cell survives with at least deathLimit solid neighbors;
// an open cell fills in with more than birthLimit.
func smoothPass(g *core.ByteGrid, birthLimit, deathLimit int) {
	snap := g.Clone()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			n := solidNeighbors(snap, x, y)
			if snap.At(x, y) == stateSolid {
				if n >= deathLimit {
					g.Set(x, y, stateSolid)
				} else {
					g.Set(x, y, stateOpen)
				}
			} else {
				if n > birthLimit {
					g.Set(x, y, stateSolid)
				} else {
					g.Set(x, y, stateOpen)
				}
			}
		}
	}
}

// solidNeighbors counts solid cells among the 8 neighbors. Cells outside
// the grid count as solid, which biases edges toward rock.
func solidNeighbors(g *core.ByteGrid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) || g.At(nx, ny) != stateOpen {
				count++
			}
		}
	}
	return count
}

// sealBorder forces a solid frame of pad cells on all four sides.
func sealBorder(g *core.ByteGrid, pad int) {
	if pad <= 0 {
		return
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if x < pad || y < pad || x >= g.W-pad || y >= g.H-pad {
				g.Set(x, y, stateSolid)
			}
		}
	}
}
