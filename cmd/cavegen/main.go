// Command cavegen generates one mine-cavern level and reports its
// statistics. A YAML preset can supply the base configuration, with
// flags layered on top; the finished level can optionally be written to
// a compressed archive for other tools.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cavegen/internal/archive"
	"cavegen/internal/preset"
	"cavegen/pkg/level"
)

func main() {
	presetPath := flag.String("preset", "", "YAML preset file to start from")
	out := flag.String("o", "", "write the generated level to this archive file")
	verbose := flag.Bool("v", false, "enable debug logging")

	o := level.DefaultOptions()
	flag.IntVar(&o.Width, "width", o.Width, "grid width in tiles")
	flag.IntVar(&o.Height, "height", o.Height, "grid height in tiles")
	flag.Int64Var(&o.Seed, "seed", o.Seed, "generation seed")
	layout := flag.String("layout", "", "base layout: automata or noise")
	flag.Float64Var(&o.FillProbability, "fill", o.FillProbability, "initial solid probability")
	flag.IntVar(&o.SmoothingIterations, "smoothing", o.SmoothingIterations, "cellular automata passes")
	flag.IntVar(&o.EdgePadding, "edge-padding", o.EdgePadding, "sealed border width")
	biome := flag.String("biome", "", "biome: rock, ice, or lava")
	complexity := flag.String("complexity", "", "feature complexity: simple, medium, or complex")
	flag.Float64Var(&o.CrystalDensity, "crystals", o.CrystalDensity, "crystal seams per 100 tiles")
	flag.Float64Var(&o.OreDensity, "ore", o.OreDensity, "ore seams per 100 tiles")
	flag.Float64Var(&o.RechargeDensity, "recharge", o.RechargeDensity, "recharge seams per 100 tiles")
	distribution := flag.String("distribution", "", "placement: random, clustered, veins, or strategic")
	flag.Float64Var(&o.MinDistanceBetween, "min-distance", o.MinDistanceBetween, "minimum spacing between seams")
	flag.BoolVar(&o.WallAdjacencyRequired, "wall-adjacent", o.WallAdjacencyRequired, "place seams only on reachable walls")
	flag.BoolVar(&o.BalanceQuadrants, "balance", o.BalanceQuadrants, "trim overloaded quadrants")
	flag.Parse()

	lvl := slog.LevelInfo
	if *verbose {
		lvl = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	if *presetPath != "" {
		// Capture explicit flags before the preset overwrites the bound
		// fields; flags win over preset values, preset values win over
		// defaults.
		explicit := explicitFlags()
		p, err := preset.Load(*presetPath)
		if err != nil {
			log.Error("load preset", "path", *presetPath, "error", err)
			os.Exit(1)
		}
		base, err := p.Options()
		if err != nil {
			log.Error("apply preset", "preset", p.Name, "error", err)
			os.Exit(1)
		}
		log.Debug("preset loaded", "preset", p.Name, "settings", len(p.Settings))
		o = base
		if err := o.ApplyOverrides(explicit); err != nil {
			log.Error("apply flags", "error", err)
			os.Exit(1)
		}
	}

	var err error
	if *layout != "" {
		if o.Layout, err = level.ParseLayout(*layout); err != nil {
			log.Error("bad layout", "error", err)
			os.Exit(1)
		}
	}
	if *biome != "" {
		if o.Biome, err = level.ParseBiome(*biome); err != nil {
			log.Error("bad biome", "error", err)
			os.Exit(1)
		}
	}
	if *complexity != "" {
		if o.Complexity, err = level.ParseComplexity(*complexity); err != nil {
			log.Error("bad complexity", "error", err)
			os.Exit(1)
		}
	}
	if *distribution != "" {
		if o.Distribution, err = level.ParseDistribution(*distribution); err != nil {
			log.Error("bad distribution", "error", err)
			os.Exit(1)
		}
	}

	res, err := level.Generate(o)
	if err != nil {
		log.Error("generate", "error", err)
		os.Exit(1)
	}
	rm, err := level.PlaceResources(res.Tiles, o)
	if err != nil {
		log.Error("place resources", "error", err)
		os.Exit(1)
	}
	log.Debug("generation complete",
		"seed", o.Seed, "biome", o.Biome.String(), "distribution", o.Distribution.String())

	printSummary(o, res, rm)

	if *out != "" {
		if err := archive.Write(*out, archive.Build(o, res, rm)); err != nil {
			log.Error("write archive", "path", *out, "error", err)
			os.Exit(1)
		}
		log.Info("level archived", "path", *out)
	}
}

// explicitFlags collects the option flags the user actually passed,
// keyed by their override names.
func explicitFlags() map[string]string {
	out := map[string]string{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width", "height", "seed", "fill", "smoothing", "edge-padding",
			"crystals", "ore", "recharge", "min-distance", "wall-adjacent", "balance":
			out[flagToKey(f.Name)] = f.Value.String()
		}
	})
	return out
}

func flagToKey(name string) string {
	switch name {
	case "edge-padding":
		return "edge_padding"
	case "crystals":
		return "crystal_density"
	case "ore":
		return "ore_density"
	case "recharge":
		return "recharge_density"
	case "min-distance":
		return "min_distance"
	case "wall-adjacent":
		return "wall_adjacent"
	case "balance":
		return "balance_quadrants"
	}
	return name
}

func printSummary(o level.Options, res *level.GenerationResult, rm *level.ResourceMap) {
	fmt.Printf("level %dx%d seed=%d biome=%s complexity=%s\n",
		o.Width, o.Height, o.Seed, o.Biome, o.Complexity)
	fmt.Printf("terrain: %.1f%% solid, %d open tiles, %d caves (largest %d)\n",
		res.Stats.SolidPercent, res.Stats.OpenTiles, res.Stats.CaveCount, res.Stats.LargestCave)
	fmt.Printf("resources (%s): %d crystal, %d ore, %d recharge, avg spacing %.2f\n",
		o.Distribution, rm.Stats.CrystalCount, rm.Stats.OreCount, rm.Stats.RechargeCount,
		rm.Stats.AverageSpacing)
	fmt.Printf("quadrants NW/NE/SW/SE: %d/%d/%d/%d\n",
		rm.Stats.Quadrants[0], rm.Stats.Quadrants[1], rm.Stats.Quadrants[2], rm.Stats.Quadrants[3])
}
