package level

import (
	"errors"
	"slices"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	for _, biome := range []Biome{BiomeRock, BiomeIce, BiomeLava} {
		o := DefaultOptions()
		o.Width, o.Height = 48, 40
		o.Biome = biome
		o.Seed = 424242

		a, err := Generate(o)
		if err != nil {
			t.Fatalf("%v: %v", biome, err)
		}
		b, err := Generate(o)
		if err != nil {
			t.Fatalf("%v: %v", biome, err)
		}

		if !slices.Equal(a.Tiles.Cells, b.Tiles.Cells) {
			t.Fatalf("%v: tile grids diverge for identical options", biome)
		}
		if !slices.Equal(a.Height.Cells, b.Height.Cells) {
			t.Fatalf("%v: height fields diverge for identical options", biome)
		}
		if a.Stats != b.Stats {
			t.Fatalf("%v: stats diverge: %+v vs %+v", biome, a.Stats, b.Stats)
		}
	}
}

func TestGenerateDimensions(t *testing.T) {
	o := DefaultOptions()
	o.Width, o.Height = 37, 23

	res, err := Generate(o)
	if err != nil {
		t.Fatal(err)
	}
	if res.Tiles.Width != 37 || res.Tiles.Height != 23 || len(res.Tiles.Cells) != 37*23 {
		t.Fatalf("tile grid %dx%d with %d cells", res.Tiles.Width, res.Tiles.Height, len(res.Tiles.Cells))
	}
	if res.Height.Width != 37 || res.Height.Height != 23 || len(res.Height.Cells) != 37*23 {
		t.Fatalf("height field %dx%d with %d cells", res.Height.Width, res.Height.Height, len(res.Height.Cells))
	}
}

// With zero fill probability and zero smoothing the carver leaves the
// interior open, the painter only digs already open cells, and the run
// must come out as a ground interior inside a one-cell rock ring.
func TestGenerateZeroFillScenario(t *testing.T) {
	o := DefaultOptions()
	o.Width, o.Height = 10, 10
	o.FillProbability = 0
	o.SmoothingIterations = 0
	o.EdgePadding = 1
	o.Seed = 1

	res, err := Generate(o)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			border := x == 0 || y == 0 || x == 9 || y == 9
			got := res.Tiles.At(x, y)
			if border && got != TileSolidRock {
				t.Fatalf("border (%d,%d) = %d, want solid rock", x, y, got)
			}
			if !border && got != TileGround {
				t.Fatalf("interior (%d,%d) = %d, want ground", x, y, got)
			}
		}
	}
}

func TestGenerateRejectsInvalidOptions(t *testing.T) {
	o := DefaultOptions()
	o.Width = 0
	if _, err := Generate(o); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}

	o = DefaultOptions()
	o.FillProbability = 2
	if _, err := Generate(o); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}
}

func TestHeightFieldStaysInBand(t *testing.T) {
	for _, biome := range []Biome{BiomeRock, BiomeIce, BiomeLava} {
		o := DefaultOptions()
		o.Width, o.Height = 32, 32
		o.Biome = biome
		o.Seed = 7

		res, err := Generate(o)
		if err != nil {
			t.Fatal(err)
		}
		// Raw draws sit in [0, 2*jitter]; the box blur averages, so the
		// bound survives smoothing.
		max := 2 * biomeProfiles[biome].heightJitter
		for i, v := range res.Height.Cells {
			if v < 0 || v > max {
				t.Fatalf("%v: height[%d] = %d outside [0,%d]", biome, i, v, max)
			}
		}
	}
}
