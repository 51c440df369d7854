// Command seam_tuner evaluates one placement scenario with ad hoc
// option overrides and prints the full telemetry, so density and
// spacing settings can be dialed in without editing presets.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"cavegen/pkg/level"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

func main() {
	list := flag.Bool("list", false, "print the overridable parameters and exit")
	seeds := flag.Int("seeds", 1, "evaluate this many consecutive seeds")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	if *list {
		printParameters()
		return
	}

	kv := make(map[string]string, len(overrides))
	for _, pair := range overrides {
		parts := strings.SplitN(pair, "=", 2)
		kv[parts[0]] = parts[1]
	}

	o, err := level.FromMap(kv)
	if err != nil {
		log.Fatalf("overrides: %v", err)
	}
	if err := o.Validate(); err != nil {
		log.Fatalf("overrides: %v", err)
	}

	for s := 0; s < *seeds; s++ {
		run := o
		run.Seed = o.Seed + int64(s)
		rep, err := level.RunPlacement(run)
		if err != nil {
			log.Fatalf("seed %d: %v", run.Seed, err)
		}
		printReport(rep)
		if s < *seeds-1 {
			fmt.Println()
		}
	}
}

func printParameters() {
	for _, group := range level.Parameters() {
		fmt.Printf("%s (%s):\n", group.Name, group.Summary)
		for _, p := range group.Params {
			line := fmt.Sprintf("  %-18s %-6s default=%s", p.Key, p.Type, p.Default)
			if len(p.Values) > 0 {
				line += " values=" + strings.Join(p.Values, "|")
			}
			if p.HasMin && p.HasMax {
				line += fmt.Sprintf(" range=[%g,%g]", p.Min, p.Max)
			} else if p.HasMin {
				line += fmt.Sprintf(" min=%g", p.Min)
			}
			fmt.Println(line)
		}
	}
}

func printReport(rep *level.PlacementReport) {
	o := rep.Options
	fmt.Printf("Scenario: %dx%d seed=%d biome=%s complexity=%s dist=%s\n",
		o.Width, o.Height, o.Seed, o.Biome, o.Complexity, o.Distribution)
	fmt.Printf("Terrain: solid=%.1f%% open=%d caves=%d largest=%d\n",
		rep.Terrain.SolidPercent, rep.Terrain.OpenTiles,
		rep.Terrain.CaveCount, rep.Terrain.LargestCave)
	fmt.Printf("Candidates: %d eligible rock tiles\n", rep.Candidates)
	fmt.Printf("Crystal:  %3d / %3d target (%.0f%%)\n",
		rep.Resources.CrystalCount, rep.CrystalTarget, rep.CrystalFill*100)
	fmt.Printf("Ore:      %3d / %3d target (%.0f%%)\n",
		rep.Resources.OreCount, rep.OreTarget, rep.OreFill*100)
	fmt.Printf("Recharge: %3d / %3d target (%.0f%%)\n",
		rep.Resources.RechargeCount, rep.RechargeTarget, rep.RechargeFill*100)
	fmt.Printf("Spacing: avg=%.2f quadrants NW/NE/SW/SE=%d/%d/%d/%d\n",
		rep.Resources.AverageSpacing,
		rep.Resources.Quadrants[0], rep.Resources.Quadrants[1],
		rep.Resources.Quadrants[2], rep.Resources.Quadrants[3])
}
