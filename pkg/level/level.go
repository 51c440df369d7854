// Package level generates mine-cavern levels: a carved tile grid, an
// aligned height field, and a placement of resource seams, all as a pure
// deterministic function of the options and seed. Repeating a call with
// equal options yields byte-identical output, and independent calls
// share no state, so callers may run many generations concurrently.
package level

import "cavegen/pkg/rng"

// Generate carves the cavern, paints the biome features, converts to
// tile IDs, and synthesizes the height field. Resource placement is a
// separate step; see PlaceResources.
func Generate(o Options) (*GenerationResult, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	src := rng.New(o.Seed)
	occ := carveCaves(o, src)
	paintFeatures(occ, o, src)
	tiles := convertToTiles(occ, o.Biome)
	height := synthesizeHeight(tiles, o.Biome, src)

	return &GenerationResult{
		Tiles:  tiles,
		Height: height,
		Stats:  terrainStats(tiles),
	}, nil
}
