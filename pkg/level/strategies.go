package level

import (
	"cavegen/internal/core"
	"cavegen/pkg/rng"
)

// kindOrder fixes the sequence every strategy assigns kinds in. Changing
// it changes the draw sequence and therefore every seeded placement.
var kindOrder = [3]Kind{KindCrystal, KindOre, KindRecharge}

// emit appends a resource at p, rolling the ore amount at placement time
// so the draw sequence stays identical across runs.
func emit(out []Resource, p core.Point, k Kind, src *rng.Source) []Resource {
	r := Resource{X: p.X, Y: p.Y, Kind: k}
	if k == KindOre {
		r.Amount = src.Range(1, 3)
	}
	return append(out, r)
}

// placeRandom shuffles the candidate pool once and deals it out in kind
// order: crystals first, then ore, then recharge.
func placeRandom(cands []core.Point, t placementTargets, src *rng.Source) []Resource {
	pool := append([]core.Point(nil), cands...)
	rng.Shuffle(src, pool)

	var out []Resource
	idx := 0
	for _, k := range kindOrder {
		want := t.of(k)
		for n := 0; n < want && idx < len(pool); n++ {
			out = emit(out, pool[idx], k, src)
			idx++
		}
	}
	return out
}

const clusterReach = 3

// clusterSize rolls how many seams one cluster holds.
func clusterSize(k Kind, src *rng.Source) int {
	switch k {
	case KindOre:
		return src.Range(2, 3)
	case KindRecharge:
		return 1
	default:
		return src.Range(3, 5)
	}
}

// placeClustered repeatedly picks a random unused candidate as a cluster
// center and pulls in unused candidates within Manhattan reach until the
// kind's target is met or the pool runs dry.
func placeClustered(cands []core.Point, t placementTargets, src *rng.Source) []Resource {
	free := append([]core.Point(nil), cands...)

	var out []Resource
	for _, k := range kindOrder {
		want := t.of(k)
		placed := 0
		for placed < want && len(free) > 0 {
			ci := src.IntN(len(free))
			center := free[ci]
			free[ci] = free[len(free)-1]
			free = free[:len(free)-1]

			size := clusterSize(k, src)
			if size > want-placed {
				size = want - placed
			}
			members := []core.Point{center}
			for i := 0; i < len(free) && len(members) < size; {
				if core.ManhattanDist(free[i], center) <= clusterReach {
					members = append(members, free[i])
					free[i] = free[len(free)-1]
					free = free[:len(free)-1]
					continue
				}
				i++
			}

			for _, p := range members {
				out = emit(out, p, k, src)
			}
			placed += len(members)
		}
	}
	return out
}

// veinNominal is the nominal run length per kind, indexed by Kind. The
// vein count for a target is the ceiling of target over nominal.
var veinNominal = [3]int{5, 4, 2}

// placeVeins grows orthogonally connected runs of seams through the
// rock, one kind at a time.
func placeVeins(tiles *TileGrid, cands []core.Point, t placementTargets, src *rng.Source) []Resource {
	free := append([]core.Point(nil), cands...)
	used := make(map[core.Point]bool, len(cands))

	var out []Resource
	for _, k := range kindOrder {
		want := t.of(k)
		if want == 0 {
			continue
		}
		nominal := veinNominal[k]
		veins := (want + nominal - 1) / nominal
		placed := 0
		for v := 0; v < veins && placed < want; v++ {
			start, ok := takeUnused(&free, used, src)
			if !ok {
				break
			}
			length := src.Range(nominal-1, nominal+1)
			if length > want-placed {
				length = want - placed
			}
			vein := growVein(tiles, start, length, used, src)
			for _, p := range vein {
				out = emit(out, p, k, src)
			}
			placed += len(vein)
		}
	}
	return out
}

// takeUnused pops random pool entries until one is not already covered.
// Veins grow onto tiles that are still sitting in the pool, so every pop
// has to recheck.
func takeUnused(free *[]core.Point, used map[core.Point]bool, src *rng.Source) (core.Point, bool) {
	f := *free
	for len(f) > 0 {
		i := src.IntN(len(f))
		p := f[i]
		f[i] = f[len(f)-1]
		f = f[:len(f)-1]
		if !used[p] {
			*free = f
			return p, true
		}
	}
	*free = f
	return core.Point{}, false
}

// growVein extends from the tip through adjacent unused rock until the
// rolled length or a dead end. Every member after the head touches the
// previous one orthogonally, which keeps veins contiguous.
func growVein(tiles *TileGrid, start core.Point, length int, used map[core.Point]bool, src *rng.Source) []core.Point {
	vein := []core.Point{start}
	used[start] = true
	cur := start
	for len(vein) < length {
		var next []core.Point
		for _, d := range core.Orthogonal {
			n := core.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !tiles.InBounds(n.X, n.Y) || used[n] || !IsRock(tiles.At(n.X, n.Y)) {
				continue
			}
			next = append(next, n)
		}
		if len(next) == 0 {
			break
		}
		cur = next[src.IntN(len(next))]
		used[cur] = true
		vein = append(vein, cur)
	}
	return vein
}

// placeStrategic weights resources toward named gameplay regions:
// crystals around the start area, the center, and the far corners; ore
// split across the quadrant centers; recharge at the midpoints between
// them.
func placeStrategic(tiles *TileGrid, cands []core.Point, t placementTargets, src *rng.Source) []Resource {
	w, h := tiles.Width, tiles.Height
	used := make(map[core.Point]bool)

	var out []Resource
	near := func(anchor core.Point, radius float64, count int, k Kind) {
		if count <= 0 {
			return
		}
		var match []core.Point
		for _, c := range cands {
			if used[c] {
				continue
			}
			if pointDist(c, anchor) <= radius {
				match = append(match, c)
			}
		}
		rng.Shuffle(src, match)
		if count > len(match) {
			count = len(match)
		}
		for _, p := range match[:count] {
			used[p] = true
			out = emit(out, p, k, src)
		}
	}

	ct := t.crystal
	startN := ct * 20 / 100
	centerN := ct * 40 / 100
	near(core.Point{X: w * 20 / 100, Y: h * 20 / 100}, 10, startN, KindCrystal)
	near(core.Point{X: w / 2, Y: h / 2}, 15, centerN, KindCrystal)
	rest := ct - startN - centerN
	corners := [3]core.Point{
		{X: w * 80 / 100, Y: h * 20 / 100},
		{X: w * 20 / 100, Y: h * 80 / 100},
		{X: w * 80 / 100, Y: h * 80 / 100},
	}
	for i, c := range corners {
		n := rest / 3
		if i < rest%3 {
			n++
		}
		near(c, 10, n, KindCrystal)
	}

	qcenters := [4]core.Point{
		{X: w / 4, Y: h / 4},
		{X: w * 3 / 4, Y: h / 4},
		{X: w / 4, Y: h * 3 / 4},
		{X: w * 3 / 4, Y: h * 3 / 4},
	}
	ot := t.ore
	for i, q := range qcenters {
		n := ot / 4
		if i < ot%4 {
			n++
		}
		near(q, 12, n, KindOre)
	}

	mids := [4]core.Point{
		{X: w / 2, Y: h / 4},
		{X: w / 4, Y: h / 2},
		{X: w * 3 / 4, Y: h / 2},
		{X: w / 2, Y: h * 3 / 4},
	}
	rt := t.recharge
	if rt > len(mids) {
		rt = len(mids)
	}
	for i := 0; i < rt; i++ {
		near(mids[i], 8, 1, KindRecharge)
	}

	return out
}
