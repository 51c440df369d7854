package level

// caveSizes partitions the non-wall tiles into 4-connected components and
// returns their sizes. The fill uses an explicit stack so grid size never
// threatens the call stack. Visit order affects only the order sizes are
// reported in, not the sizes themselves.
func caveSizes(tiles *TileGrid) []int {
	w, h := tiles.Width, tiles.Height
	visited := make([]bool, w*h)
	var sizes []int
	stack := make([]int, 0, 64)

	for i, id := range tiles.Cells {
		if visited[i] || isWallTile(id) {
			continue
		}
		size := 0
		visited[i] = true
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++

			x, y := cur%w, cur/w
			for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				n := ny*w + nx
				if visited[n] || isWallTile(tiles.Cells[n]) {
					continue
				}
				visited[n] = true
				stack = append(stack, n)
			}
		}
		sizes = append(sizes, size)
	}
	return sizes
}

// terrainStats summarizes the finished grid for the generation result.
func terrainStats(tiles *TileGrid) TerrainStats {
	total := tiles.Width * tiles.Height
	solid := 0
	for _, id := range tiles.Cells {
		if isWallTile(id) {
			solid++
		}
	}

	sizes := caveSizes(tiles)
	largest := 0
	for _, s := range sizes {
		if s > largest {
			largest = s
		}
	}

	return TerrainStats{
		SolidPercent: float64(solid) / float64(total) * 100,
		OpenTiles:    total - solid,
		CaveCount:    len(sizes),
		LargestCave:  largest,
	}
}
