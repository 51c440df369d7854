// Command cavern-sweep evaluates many generation configurations in
// parallel and ranks them by cavern quality. Each worker runs generation
// plus placement for one seed/biome/distribution combination; results
// can optionally be recorded in a SQLite index for later queries.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"cavegen/internal/sweepdb"
	"cavegen/pkg/level"
)

type job struct {
	seed         int64
	biome        level.Biome
	distribution level.Distribution
}

type result struct {
	job    job
	score  float64
	report *level.PlacementReport
}

func main() {
	seeds := flag.Int("seeds", 32, "seeds to evaluate per combination")
	firstSeed := flag.Int64("first-seed", 1, "lowest seed in the sweep")
	width := flag.Int("width", 64, "grid width")
	height := flag.Int("height", 64, "grid height")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	topN := flag.Int("top", 10, "results to print")
	indexPath := flag.String("index", "", "record results in this SQLite file")
	flag.Parse()

	biomes := []level.Biome{level.BiomeRock, level.BiomeIce, level.BiomeLava}
	dists := []level.Distribution{
		level.DistRandom, level.DistClustered, level.DistVeins, level.DistStrategic,
	}

	var jobs []job
	for s := 0; s < *seeds; s++ {
		for _, b := range biomes {
			for _, d := range dists {
				jobs = append(jobs, job{seed: *firstSeed + int64(s), biome: b, distribution: d})
			}
		}
	}

	fmt.Printf("Sweeping %d combinations (%d workers, %dx%d grid)\n",
		len(jobs), *workers, *width, *height)

	jobCh := make(chan job)
	resCh := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				rep, err := runJob(j, *width, *height)
				if err != nil {
					log.Printf("seed %d %s/%s: %v", j.seed, j.biome, j.distribution, err)
					continue
				}
				resCh <- result{job: j, score: score(rep), report: rep}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resCh)
	}()

	go func() {
		for _, j := range jobs {
			jobCh <- j
		}
		close(jobCh)
	}()

	var index *sweepdb.Index
	if *indexPath != "" {
		var err error
		index, err = sweepdb.Open(*indexPath)
		if err != nil {
			log.Fatalf("open index: %v", err)
		}
		defer index.Close()
	}

	start := time.Now()
	var all []result
	for res := range resCh {
		all = append(all, res)
		if index != nil {
			if err := index.Insert(sweepdb.FromReport(res.report, res.score)); err != nil {
				log.Printf("index insert: %v", err)
			}
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].score > all[j].score })
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *topN, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *topN; i++ {
		r := all[i]
		rep := r.report
		fmt.Printf("%2d) score=%.3f seed=%d biome=%s dist=%s solid=%.1f%% caves=%d largest=%d seams=%d/%d/%d spacing=%.2f\n",
			i+1, r.score, r.job.seed, r.job.biome, r.job.distribution,
			rep.Terrain.SolidPercent, rep.Terrain.CaveCount, rep.Terrain.LargestCave,
			rep.Resources.CrystalCount, rep.Resources.OreCount, rep.Resources.RechargeCount,
			rep.Resources.AverageSpacing)
	}

	if index != nil {
		n, err := index.Count()
		if err == nil {
			fmt.Printf("\nIndexed %d runs in %s\n", n, *indexPath)
		}
	}
}

func runJob(j job, w, h int) (*level.PlacementReport, error) {
	o := level.DefaultOptions()
	o.Width = w
	o.Height = h
	o.Seed = j.seed
	o.Biome = j.biome
	o.Distribution = j.distribution
	return level.RunPlacement(o)
}

// score rates a run: a healthy level has one dominant cave holding most
// of the open space, a solid share near 50%, and placement that met its
// density targets.
func score(rep *level.PlacementReport) float64 {
	openTiles := rep.Terrain.OpenTiles
	if openTiles == 0 {
		return 0
	}
	dominance := float64(rep.Terrain.LargestCave) / float64(openTiles)
	balance := 1 - math.Abs(rep.Terrain.SolidPercent-50)/50
	fill := (rep.CrystalFill + rep.OreFill + rep.RechargeFill) / 3
	return dominance*0.5 + balance*0.25 + fill*0.25
}
