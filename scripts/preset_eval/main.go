// Evaluates a fixed shortlist of candidate configurations side by side.
// Used when retuning the shipped presets: adjust the candidates, run,
// compare, promote the winner into a preset file.
package main

import (
	"fmt"
	"log"

	"cavegen/pkg/level"
)

type candidate struct {
	name   string
	mutate func(*level.Options)
}

func main() {
	candidates := []candidate{
		{
			name: "baseline rock",
			mutate: func(o *level.Options) {
			},
		},
		{
			name: "open rock, strategic seams",
			mutate: func(o *level.Options) {
				o.FillProbability = 0.40
				o.Distribution = level.DistStrategic
				o.CrystalDensity = 3
			},
		},
		{
			name: "dense ice veins",
			mutate: func(o *level.Options) {
				o.Biome = level.BiomeIce
				o.Complexity = level.ComplexityComplex
				o.FillProbability = 0.50
				o.Distribution = level.DistVeins
				o.OreDensity = 2.5
			},
		},
		{
			name: "lava clusters, balanced",
			mutate: func(o *level.Options) {
				o.Biome = level.BiomeLava
				o.Distribution = level.DistClustered
				o.BalanceQuadrants = true
				o.MinDistanceBetween = 2
			},
		},
		{
			name: "noise layout, wall-adjacent",
			mutate: func(o *level.Options) {
				o.Layout = level.LayoutNoise
				o.WallAdjacencyRequired = true
				o.Distribution = level.DistClustered
			},
		},
	}

	fmt.Printf("evaluating %d candidate configurations\n\n", len(candidates))
	for _, c := range candidates {
		o := level.DefaultOptions()
		o.Width, o.Height = 80, 80
		o.Seed = 1337
		c.mutate(&o)

		rep, err := level.RunPlacement(o)
		if err != nil {
			log.Fatalf("%s: %v", c.name, err)
		}
		fmt.Printf("%-28s solid=%5.1f%% caves=%3d largest=%5d seams=%3d/%3d/%3d fill=%3.0f%%/%3.0f%%/%3.0f%% spacing=%.2f\n",
			c.name, rep.Terrain.SolidPercent, rep.Terrain.CaveCount, rep.Terrain.LargestCave,
			rep.Resources.CrystalCount, rep.Resources.OreCount, rep.Resources.RechargeCount,
			rep.CrystalFill*100, rep.OreFill*100, rep.RechargeFill*100,
			rep.Resources.AverageSpacing)
	}
}
