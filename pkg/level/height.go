package level

import "cavegen/pkg/rng"

// synthesizeHeight draws a per-tile elevation and smooths it once with a
// 3x3 edge-clamped box blur. Walls sit in a higher band than floor so
// caverns read as depressions. Called exactly once per generation run.
func synthesizeHeight(tiles *TileGrid, biome Biome, src *rng.Source) *HeightField {
	jitter := biomeProfiles[biome].heightJitter
	w, h := tiles.Width, tiles.Height

	raw := make([]int, w*h)
	for i, id := range tiles.Cells {
		if isWallTile(id) {
			raw[i] = jitter + src.IntN(jitter+1)
		} else {
			raw[i] = src.IntN(jitter + 1)
		}
	}

	out := NewHeightField(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sx := clampInt(x+dx, 0, w-1)
					sy := clampInt(y+dy, 0, h-1)
					sum += raw[sy*w+sx]
				}
			}
			out.Cells[y*w+x] = sum / 9
		}
	}
	return out
}

// isWallTile reports whether the tile blocks movement: the rock family,
// dirt, and any embedded seam.
func isWallTile(id int) bool {
	switch id {
	case TileDirt, TileLooseRock, TileHardRock, TileSolidRock,
		TileCrystalSeam, TileOreSeam, TileRechargeSeam:
		return true
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
