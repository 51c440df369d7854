package level

// PlacementReport captures one generation-plus-placement run for the
// sweep and tuning tools.
type PlacementReport struct {
	// Options is the exact configuration the run used.
	Options Options

	// Terrain describes the carved grid.
	Terrain TerrainStats

	// Resources describes the kept placement.
	Resources ResourceStats

	// Candidates is the number of rock tiles eligible to host a seam
	// under the run's adjacency setting.
	Candidates int

	// CrystalTarget, OreTarget, and RechargeTarget are the density
	// derived goals for the run.
	CrystalTarget  int
	OreTarget      int
	RechargeTarget int

	// CrystalFill, OreFill, and RechargeFill are placed counts over
	// their targets, reported as 1 when the target was zero.
	CrystalFill  float64
	OreFill      float64
	RechargeFill float64
}

// RunPlacement generates a level and places resources with the same
// options, returning combined telemetry. Same options, same report.
func RunPlacement(o Options) (*PlacementReport, error) {
	res, err := Generate(o)
	if err != nil {
		return nil, err
	}
	rm, err := PlaceResources(res.Tiles, o)
	if err != nil {
		return nil, err
	}

	targets := targetCounts(o.Width*o.Height, o)
	rep := &PlacementReport{
		Options:        o,
		Terrain:        res.Stats,
		Resources:      rm.Stats,
		Candidates:     len(candidateLocations(res.Tiles, o.WallAdjacencyRequired)),
		CrystalTarget:  targets.crystal,
		OreTarget:      targets.ore,
		RechargeTarget: targets.recharge,
	}
	rep.CrystalFill = fillRate(rm.Stats.CrystalCount, targets.crystal)
	rep.OreFill = fillRate(rm.Stats.OreCount, targets.ore)
	rep.RechargeFill = fillRate(rm.Stats.RechargeCount, targets.recharge)
	return rep, nil
}

func fillRate(placed, target int) float64 {
	if target <= 0 {
		return 1
	}
	return float64(placed) / float64(target)
}
