package level

import (
	"math"

	"cavegen/internal/core"
	"cavegen/pkg/rng"
)

// PlaceResources computes density targets for the supplied tile grid and
// places crystal, ore, and recharge seams with the configured strategy,
// then applies spacing enforcement and optional quadrant balancing. The
// grid may come from Generate or from the caller. Exhausting the
// candidate pool is not an error; the stats report what was placed.
func PlaceResources(tiles *TileGrid, o Options) (*ResourceMap, error) {
	if err := tiles.check(); err != nil {
		return nil, err
	}
	if err := o.validatePlacement(); err != nil {
		return nil, err
	}

	src := rng.New(o.Seed)
	cands := candidateLocations(tiles, o.WallAdjacencyRequired)
	targets := targetCounts(tiles.Width*tiles.Height, o)

	var placed []Resource
	switch o.Distribution {
	case DistClustered:
		placed = placeClustered(cands, targets, src)
	case DistVeins:
		placed = placeVeins(tiles, cands, targets, src)
	case DistStrategic:
		placed = placeStrategic(tiles, cands, targets, src)
	default:
		placed = placeRandom(cands, targets, src)
	}

	if o.MinDistanceBetween > 0 {
		placed = enforceMinDistance(placed, o.MinDistanceBetween)
	}
	if o.BalanceQuadrants {
		placed = balanceQuadrants(placed, tiles.Width, tiles.Height, src)
	}

	return buildResourceMap(placed, tiles.Width, tiles.Height), nil
}

type placementTargets struct {
	crystal  int
	ore      int
	recharge int
}

func (t placementTargets) of(k Kind) int {
	switch k {
	case KindOre:
		return t.ore
	case KindRecharge:
		return t.recharge
	default:
		return t.crystal
	}
}

// targetCounts floors totalTiles times density per hundred, per kind.
func targetCounts(totalTiles int, o Options) placementTargets {
	return placementTargets{
		crystal:  int(float64(totalTiles) * o.CrystalDensity / 100),
		ore:      int(float64(totalTiles) * o.OreDensity / 100),
		recharge: int(float64(totalTiles) * o.RechargeDensity / 100),
	}
}

// candidateLocations scans row-major for rock tiles, optionally only
// those with at least one walkable neighbor.
func candidateLocations(tiles *TileGrid, wallAdjacency bool) []core.Point {
	var cands []core.Point
	for y := 0; y < tiles.Height; y++ {
		for x := 0; x < tiles.Width; x++ {
			if !IsRock(tiles.At(x, y)) {
				continue
			}
			if wallAdjacency && !touchesFloor(tiles, x, y) {
				continue
			}
			cands = append(cands, core.Point{X: x, Y: y})
		}
	}
	return cands
}

func touchesFloor(tiles *TileGrid, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if tiles.InBounds(nx, ny) && IsWalkable(tiles.At(nx, ny)) {
				return true
			}
		}
	}
	return false
}

// enforceMinDistance keeps resources in placement order, dropping any
// that land closer than min to an already kept one. Dropped resources
// are not retried elsewhere.
func enforceMinDistance(placed []Resource, min float64) []Resource {
	kept := make([]Resource, 0, len(placed))
	for _, r := range placed {
		ok := true
		for _, k := range kept {
			if resourceDist(r, k) < min {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, r)
		}
	}
	return kept
}

func resourceDist(a, b Resource) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func pointDist(a, b core.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// quadrantIndex buckets a coordinate NW=0 NE=1 SW=2 SE=3; the midlines
// belong to the east and south sides.
func quadrantIndex(x, y, w, h int) int {
	q := 0
	if x >= w/2 {
		q |= 1
	}
	if y >= h/2 {
		q |= 2
	}
	return q
}

// balanceQuadrants trims quadrants sitting strictly above the mean count
// down to the floored mean, shuffling first so discards are unbiased.
// The trim runs on the combined pool of all kinds; per-kind ratios
// inside a quadrant may shift, which matches the established behavior
// shipped levels depend on.
func balanceQuadrants(placed []Resource, w, h int, src *rng.Source) []Resource {
	if len(placed) == 0 {
		return placed
	}
	var buckets [4][]Resource
	for _, r := range placed {
		q := quadrantIndex(r.X, r.Y, w, h)
		buckets[q] = append(buckets[q], r)
	}
	mean := float64(len(placed)) / 4
	keep := int(mean)
	out := make([]Resource, 0, len(placed))
	for q := range buckets {
		b := buckets[q]
		if float64(len(b)) > mean {
			rng.Shuffle(src, b)
			b = b[:keep]
		}
		out = append(out, b...)
	}
	return out
}

// buildResourceMap splits the kept pool back into per-kind lists and
// fills in the aggregate statistics.
func buildResourceMap(placed []Resource, w, h int) *ResourceMap {
	m := &ResourceMap{
		Crystals: []Resource{},
		Ore:      []Resource{},
		Recharge: []Resource{},
	}
	for _, r := range placed {
		switch r.Kind {
		case KindOre:
			m.Ore = append(m.Ore, r)
		case KindRecharge:
			m.Recharge = append(m.Recharge, r)
		default:
			m.Crystals = append(m.Crystals, r)
		}
		m.Stats.Quadrants[quadrantIndex(r.X, r.Y, w, h)]++
	}
	m.Stats.CrystalCount = len(m.Crystals)
	m.Stats.OreCount = len(m.Ore)
	m.Stats.RechargeCount = len(m.Recharge)
	m.Stats.AverageSpacing = averageSpacing(placed)
	return m
}

// averageSpacing is the mean pairwise distance over the whole kept pool,
// zero below two resources. Quadratic, fine at level-sized counts.
func averageSpacing(placed []Resource) float64 {
	if len(placed) < 2 {
		return 0
	}
	sum := 0.0
	pairs := 0
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			sum += resourceDist(placed[i], placed[j])
			pairs++
		}
	}
	return sum / float64(pairs)
}
