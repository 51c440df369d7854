package level

// Extended cell states used between carving and tile conversion. Values 0
// and 1 match the carver's open/solid encoding so the painter can extend
// the occupancy grid in place.
const (
	stateOpen uint8 = iota
	stateSolid
	stateRubble
	stateLava
	stateWater
)

// biomeProfile bundles the per-biome constants: the state-to-tile
// conversion table, the elevation jitter band, and the odds that extra
// tunnels and chambers are cut after the biome features.
type biomeProfile struct {
	tiles [5]int

	heightJitter int

	tunnelChance  float64
	chamberChance float64
}

// biomeProfiles is indexed by Biome. The conversion tables are fixed;
// changing them changes the meaning of every level already shipped.
var biomeProfiles = [...]biomeProfile{
	BiomeRock: {
		tiles:         [5]int{TileGround, TileSolidRock, TileLooseRock, TileLava, TileWater},
		heightJitter:  5,
		tunnelChance:  0.5,
		chamberChance: 0.4,
	},
	BiomeIce: {
		tiles:         [5]int{TileGround, TileHardRock, TileLooseRock, TileLava, TileWater},
		heightJitter:  8,
		tunnelChance:  0.4,
		chamberChance: 0.5,
	},
	BiomeLava: {
		tiles:         [5]int{TileGround, TileHardRock, TileDirt, TileLava, TileWater},
		heightJitter:  3,
		tunnelChance:  0.6,
		chamberChance: 0.3,
	},
}
