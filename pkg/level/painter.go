package level

import (
	"math"

	"cavegen/internal/core"
	"cavegen/pkg/rng"
)

// Feature counts indexed by Complexity.
var (
	crackCounts   = [3]int{2, 4, 6}
	iceFlowCounts = [3]int{2, 3, 5}
	chamberCounts = [3]int{0, 1, 2}
	erosionCounts = [3]int{0, 2, 3}
)

// rect is an inclusive cell range. Painting is confined to the interior
// rect inside the edge padding so the sealed border survives every
// feature pass.
type rect struct {
	x0, y0, x1, y1 int
}

func interiorRect(w, h, pad int) rect {
	return rect{x0: pad, y0: pad, x1: w - 1 - pad, y1: h - 1 - pad}
}

func (r rect) empty() bool { return r.x0 > r.x1 || r.y0 > r.y1 }

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x <= r.x1 && y >= r.y0 && y <= r.y1
}

func (r rect) clampX(x int) int {
	if x < r.x0 {
		return r.x0
	}
	if x > r.x1 {
		return r.x1
	}
	return x
}

func (r rect) clampY(y int) int {
	if y < r.y0 {
		return r.y0
	}
	if y > r.y1 {
		return r.y1
	}
	return y
}

func randPoint(in rect, src *rng.Source) core.Point {
	return core.Point{X: src.Range(in.x0, in.x1), Y: src.Range(in.y0, in.y1)}
}

// paintFeatures layers the biome structures onto the carved occupancy
// grid, then rolls the biome-tuned tunnel and chamber extras. The call
// order is fixed; reordering changes every seeded level.
func paintFeatures(g *core.ByteGrid, o Options, src *rng.Source) {
	in := interiorRect(g.W, g.H, o.EdgePadding)
	if in.empty() {
		return
	}

	switch o.Biome {
	case BiomeIce:
		paintIce(g, in, o.Complexity, src)
	case BiomeLava:
		paintLava(g, in, o.Complexity, src)
	default:
		paintRock(g, in, o.Complexity, src)
	}

	p := biomeProfiles[o.Biome]
	attempts := int(o.Complexity) + 1
	for i := 0; i < attempts; i++ {
		if src.Chance(p.tunnelChance) {
			carveTunnel(g, in, src)
		}
	}
	for i := 0; i < attempts; i++ {
		if src.Chance(p.chamberChance) {
			carveChamber(g, in, src)
		}
	}
}

func paintRock(g *core.ByteGrid, in rect, c Complexity, src *rng.Source) {
	for i := 0; i < crackCounts[c]; i++ {
		carveCrack(g, in, src)
	}
	if c == ComplexityComplex {
		blobs := src.Range(2, 4)
		for i := 0; i < blobs; i++ {
			center := randPoint(in, src)
			r := src.Range(2, 6)
			stampCircle(g, in, center, r, stateRubble, false)
		}
	}
}

// carveCrack digs a hairline passage: a drifting walk that opens cells
// for 10-30 steps, occasionally widening sideways.
func carveCrack(g *core.ByteGrid, in rect, src *rng.Source) {
	start := randPoint(in, src)
	steps := src.Range(10, 30)
	dir := src.Next() * 2 * math.Pi
	x, y := float64(start.X), float64(start.Y)
	for s := 0; s < steps; s++ {
		cx := in.clampX(int(math.Round(x)))
		cy := in.clampY(int(math.Round(y)))
		g.Set(cx, cy, stateOpen)
		if src.Chance(0.3) {
			wx := in.clampX(int(math.Round(x - math.Sin(dir))))
			wy := in.clampY(int(math.Round(y + math.Cos(dir))))
			g.Set(wx, wy, stateOpen)
		}
		dir += (src.Next() - 0.5) * 0.9
		x += math.Cos(dir)
		y += math.Sin(dir)
	}
}

func paintIce(g *core.ByteGrid, in rect, c Complexity, src *rng.Source) {
	for i := 0; i < iceFlowCounts[c]; i++ {
		carveIceFlow(g, in, src)
	}
	if c == ComplexityComplex {
		n := src.Range(1, 2)
		for i := 0; i < n; i++ {
			carveFrozenCavern(g, in, src)
		}
	}
}

// carveIceFlow lays an axis-aligned channel of ice, continuing cell by
// cell with 70% probability.
func carveIceFlow(g *core.ByteGrid, in rect, src *rng.Source) {
	pos := randPoint(in, src)
	horizontal := src.Chance(0.5)
	step := 1
	if src.Chance(0.5) {
		step = -1
	}
	x, y := pos.X, pos.Y
	for {
		g.Set(x, y, stateWater)
		if !src.Chance(0.7) {
			return
		}
		if horizontal {
			x += step
		} else {
			y += step
		}
		if !in.contains(x, y) {
			return
		}
	}
}

// carveFrozenCavern stamps an iced core with radiating arms.
func carveFrozenCavern(g *core.ByteGrid, in rect, src *rng.Source) {
	center := randPoint(in, src)
	r := src.Range(2, 4)
	stampCircle(g, in, center, r, stateWater, false)
	arms := src.Range(5, 8)
	for a := 0; a < arms; a++ {
		ang := float64(a)/float64(arms)*2*math.Pi + (src.Next()-0.5)*0.5
		length := src.Range(3, 7)
		x, y := float64(center.X), float64(center.Y)
		for s := 0; s < length; s++ {
			x += math.Cos(ang)
			y += math.Sin(ang)
			px, py := int(math.Round(x)), int(math.Round(y))
			if !in.contains(px, py) {
				break
			}
			g.Set(px, py, stateWater)
		}
	}
}

func paintLava(g *core.ByteGrid, in rect, c Complexity, src *rng.Source) {
	flows := src.Range(2, 5)
	for i := 0; i < flows; i++ {
		carveLavaFlow(g, in, src)
	}
	for i := 0; i < chamberCounts[c]; i++ {
		carveVolcanicChamber(g, in, src)
	}
	for i := 0; i < erosionCounts[c]; i++ {
		center := randPoint(in, src)
		r := src.Range(2, 4)
		stampCircle(g, in, center, r, stateRubble, true)
	}
}

// carveLavaFlow runs a molten column downward with sideways jitter and
// occasional widening.
func carveLavaFlow(g *core.ByteGrid, in rect, src *rng.Source) {
	x := src.Range(in.x0, in.x1)
	for y := in.y0; y <= in.y1; y++ {
		g.Set(x, y, stateLava)
		if src.Chance(0.3) {
			wx := x + 1
			if wx > in.x1 {
				wx = x - 1
			}
			if in.contains(wx, y) {
				g.Set(wx, y, stateLava)
			}
		}
		x = in.clampX(x + src.Range(-1, 1))
	}
}

// carveVolcanicChamber opens a circular cavity with a molten core at
// half its radius.
func carveVolcanicChamber(g *core.ByteGrid, in rect, src *rng.Source) {
	center := randPoint(in, src)
	r := src.Range(4, 7)
	stampCircle(g, in, center, r, stateOpen, false)
	stampCircle(g, in, center, r/2, stateLava, false)
}

// carveTunnel opens a path between two random points, stepping toward
// the target with 70% probability and wandering otherwise.
func carveTunnel(g *core.ByteGrid, in rect, src *rng.Source) {
	a := randPoint(in, src)
	b := randPoint(in, src)
	x, y := a.X, a.Y
	maxSteps := (g.W + g.H) * 2
	for s := 0; s < maxSteps; s++ {
		g.Set(x, y, stateOpen)
		if x == b.X && y == b.Y {
			return
		}
		if src.Chance(0.7) {
			dx, dy := b.X-x, b.Y-y
			if absInt(dx) >= absInt(dy) {
				x += signInt(dx)
			} else {
				y += signInt(dy)
			}
		} else {
			d := core.Orthogonal[src.IntN(4)]
			x = in.clampX(x + d.X)
			y = in.clampY(y + d.Y)
		}
	}
}

func carveChamber(g *core.ByteGrid, in rect, src *rng.Source) {
	center := randPoint(in, src)
	r := src.Range(3, 8)
	stampCircle(g, in, center, r, stateOpen, false)
}

// stampCircle writes state into every interior cell within radius r of
// center. With solidOnly set, only solid cells convert.
func stampCircle(g *core.ByteGrid, in rect, center core.Point, r int, state uint8, solidOnly bool) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := center.X+dx, center.Y+dy
			if !in.contains(x, y) {
				continue
			}
			if solidOnly && g.At(x, y) != stateSolid {
				continue
			}
			g.Set(x, y, state)
		}
	}
}

// convertToTiles maps painter states through the biome table into the
// exporter tile contract.
func convertToTiles(g *core.ByteGrid, biome Biome) *TileGrid {
	table := biomeProfiles[biome].tiles
	t := &TileGrid{Width: g.W, Height: g.H, Cells: make([]int, g.W*g.H)}
	for i, s := range g.Cells() {
		t.Cells[i] = table[s]
	}
	return t
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
