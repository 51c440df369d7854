package level

import (
	"errors"
	"testing"
)

func generatedGrid(t *testing.T, seed int64) *TileGrid {
	t.Helper()
	o := DefaultOptions()
	o.Width, o.Height = 48, 48
	o.Seed = seed
	res, err := Generate(o)
	if err != nil {
		t.Fatal(err)
	}
	return res.Tiles
}

func allResources(m *ResourceMap) []Resource {
	var all []Resource
	all = append(all, m.Crystals...)
	all = append(all, m.Ore...)
	all = append(all, m.Recharge...)
	return all
}

func TestPlaceResourcesZeroDensities(t *testing.T) {
	tiles := generatedGrid(t, 3)
	o := DefaultOptions()
	o.Width, o.Height = tiles.Width, tiles.Height
	o.CrystalDensity, o.OreDensity, o.RechargeDensity = 0, 0, 0

	m, err := PlaceResources(tiles, o)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Crystals) != 0 || len(m.Ore) != 0 || len(m.Recharge) != 0 {
		t.Fatalf("placed %d/%d/%d resources at zero density",
			len(m.Crystals), len(m.Ore), len(m.Recharge))
	}
	if m.Stats.AverageSpacing != 0 {
		t.Fatalf("spacing = %v, want 0", m.Stats.AverageSpacing)
	}
}

func TestPlaceResourcesDeterministic(t *testing.T) {
	tiles := generatedGrid(t, 8)
	for _, dist := range []Distribution{DistRandom, DistClustered, DistVeins, DistStrategic} {
		o := DefaultOptions()
		o.Width, o.Height = tiles.Width, tiles.Height
		o.Distribution = dist
		o.Seed = 55

		a, err := PlaceResources(tiles, o)
		if err != nil {
			t.Fatalf("%v: %v", dist, err)
		}
		b, err := PlaceResources(tiles, o)
		if err != nil {
			t.Fatalf("%v: %v", dist, err)
		}

		ra, rb := allResources(a), allResources(b)
		if len(ra) != len(rb) {
			t.Fatalf("%v: %d vs %d resources across identical runs", dist, len(ra), len(rb))
		}
		for i := range ra {
			if ra[i] != rb[i] {
				t.Fatalf("%v: resource %d differs: %+v vs %+v", dist, i, ra[i], rb[i])
			}
		}
	}
}

func TestPlaceResourcesDensityBound(t *testing.T) {
	tiles := generatedGrid(t, 12)
	total := tiles.Width * tiles.Height

	for _, dist := range []Distribution{DistRandom, DistClustered, DistVeins, DistStrategic} {
		o := DefaultOptions()
		o.Width, o.Height = tiles.Width, tiles.Height
		o.Distribution = dist
		o.CrystalDensity = 3
		o.OreDensity = 2
		o.RechargeDensity = 1

		m, err := PlaceResources(tiles, o)
		if err != nil {
			t.Fatalf("%v: %v", dist, err)
		}
		if max := int(float64(total) * o.CrystalDensity / 100); len(m.Crystals) > max {
			t.Fatalf("%v: %d crystals exceeds target %d", dist, len(m.Crystals), max)
		}
		if max := int(float64(total) * o.OreDensity / 100); len(m.Ore) > max {
			t.Fatalf("%v: %d ore exceeds target %d", dist, len(m.Ore), max)
		}
		if max := int(float64(total) * o.RechargeDensity / 100); len(m.Recharge) > max {
			t.Fatalf("%v: %d recharge exceeds target %d", dist, len(m.Recharge), max)
		}
	}
}

func TestPlaceResourcesOnRockOnly(t *testing.T) {
	tiles := generatedGrid(t, 21)
	o := DefaultOptions()
	o.Width, o.Height = tiles.Width, tiles.Height
	o.Distribution = DistClustered

	m, err := PlaceResources(tiles, o)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range allResources(m) {
		if !IsRock(tiles.At(r.X, r.Y)) {
			t.Fatalf("resource at (%d,%d) sits on tile %d, not rock", r.X, r.Y, tiles.At(r.X, r.Y))
		}
	}
}

func TestWallAdjacencyRestrictsCandidates(t *testing.T) {
	tiles := generatedGrid(t, 30)
	o := DefaultOptions()
	o.Width, o.Height = tiles.Width, tiles.Height
	o.WallAdjacencyRequired = true

	m, err := PlaceResources(tiles, o)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range allResources(m) {
		if !touchesFloor(tiles, r.X, r.Y) {
			t.Fatalf("resource at (%d,%d) has no walkable neighbor", r.X, r.Y)
		}
	}
}

func TestMinDistanceInvariant(t *testing.T) {
	tiles := generatedGrid(t, 4)
	o := DefaultOptions()
	o.Width, o.Height = tiles.Width, tiles.Height
	o.CrystalDensity = 4
	o.MinDistanceBetween = 3

	m, err := PlaceResources(tiles, o)
	if err != nil {
		t.Fatal(err)
	}
	all := allResources(m)
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if d := resourceDist(all[i], all[j]); d < o.MinDistanceBetween {
				t.Fatalf("resources %d and %d are %.2f apart, want >= %v", i, j, d, o.MinDistanceBetween)
			}
		}
	}
}

// Balancing runs after placement with no RNG draws in between, so the
// unbalanced run of the same options shows the pre-trim pool.
func TestQuadrantBalanceInvariant(t *testing.T) {
	tiles := generatedGrid(t, 9)
	o := DefaultOptions()
	o.Width, o.Height = tiles.Width, tiles.Height
	o.CrystalDensity = 4
	o.Distribution = DistStrategic

	before, err := PlaceResources(tiles, o)
	if err != nil {
		t.Fatal(err)
	}
	o.BalanceQuadrants = true
	after, err := PlaceResources(tiles, o)
	if err != nil {
		t.Fatal(err)
	}

	total := len(allResources(before))
	limit := (total+3)/4 + 1
	for q, n := range after.Stats.Quadrants {
		if n > limit {
			t.Fatalf("quadrant %d holds %d resources, limit %d (total %d)", q, n, limit, total)
		}
	}
	if len(allResources(after)) > total {
		t.Fatalf("balancing added resources: %d > %d", len(allResources(after)), total)
	}
}

func TestOreAmountsInRange(t *testing.T) {
	tiles := generatedGrid(t, 2)
	for _, dist := range []Distribution{DistRandom, DistClustered, DistVeins, DistStrategic} {
		o := DefaultOptions()
		o.Width, o.Height = tiles.Width, tiles.Height
		o.Distribution = dist
		o.OreDensity = 3

		m, err := PlaceResources(tiles, o)
		if err != nil {
			t.Fatalf("%v: %v", dist, err)
		}
		for _, r := range m.Ore {
			if r.Amount < 1 || r.Amount > 3 {
				t.Fatalf("%v: ore amount %d outside [1,3]", dist, r.Amount)
			}
		}
		for _, r := range m.Crystals {
			if r.Amount != 0 {
				t.Fatalf("%v: crystal carries amount %d", dist, r.Amount)
			}
		}
		for _, r := range m.Recharge {
			if r.Amount != 0 {
				t.Fatalf("%v: recharge carries amount %d", dist, r.Amount)
			}
		}
	}
}

func TestPlaceResourcesRejectsBadGrid(t *testing.T) {
	o := DefaultOptions()
	if _, err := PlaceResources(nil, o); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("nil grid: err = %v", err)
	}
	g := &TileGrid{Width: 4, Height: 4, Cells: make([]int, 3)}
	if _, err := PlaceResources(g, o); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("short grid: err = %v", err)
	}
}

func TestAverageSpacingPairs(t *testing.T) {
	placed := []Resource{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 0, Y: 0}}
	// Pairs: 5, 0, 5 -> mean 10/3.
	got := averageSpacing(placed)
	want := 10.0 / 3
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("spacing = %v, want %v", got, want)
	}
	if averageSpacing(placed[:1]) != 0 {
		t.Fatal("single resource should report zero spacing")
	}
}
