package level

import "fmt"

// Kind identifies a resource type.
type Kind uint8

const (
	KindCrystal Kind = iota
	KindOre
	KindRecharge
)

var kindNames = [...]string{"crystal", "ore", "recharge"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Resource is one placed seam. Amount is the ore unit count in [1,3] and
// stays zero for crystal and recharge seams. Resources are never mutated
// after placement; rejects are dropped, not edited.
type Resource struct {
	X      int
	Y      int
	Kind   Kind
	Amount int
}

// ResourceStats summarizes a placement run.
type ResourceStats struct {
	CrystalCount  int
	OreCount      int
	RechargeCount int

	// AverageSpacing is the mean pairwise Euclidean distance over every
	// kept resource, 0 when fewer than two were placed.
	AverageSpacing float64

	// Quadrants counts kept resources per map quadrant, indexed
	// NW, NE, SW, SE.
	Quadrants [4]int
}

// ResourceMap is the final placement output: one list per kind, in
// placement order, plus aggregate statistics.
type ResourceMap struct {
	Crystals []Resource
	Ore      []Resource
	Recharge []Resource
	Stats    ResourceStats
}

// TerrainStats summarizes the carved terrain.
type TerrainStats struct {
	SolidPercent float64
	OpenTiles    int
	CaveCount    int
	LargestCave  int
}

// GenerationResult owns the finished tile grid, its height field, and the
// terrain statistics. Nothing in it is shared with the generator after
// Generate returns.
type GenerationResult struct {
	Tiles  *TileGrid
	Height *HeightField
	Stats  TerrainStats
}
