// Package sweepdb indexes parameter-sweep results in a SQLite file so
// sweeps can be compared and queried after the run without re-parsing
// console output.
package sweepdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"cavegen/pkg/level"
)

// Run is one recorded sweep evaluation.
type Run struct {
	Seed         int64
	Biome        string
	Distribution string
	Width        int
	Height       int

	Score        float64
	SolidPercent float64
	CaveCount    int
	LargestCave  int
	Crystals     int
	Ore          int
	Recharge     int
	Spacing      float64
}

// Index is a single-connection SQLite store of sweep runs.
type Index struct {
	db *sql.DB
}

// Open creates or opens the index file and prepares its schema.
func Open(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Index{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	// WAL suits the append-only write pattern of a sweep.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at TEXT NOT NULL,
			seed INTEGER NOT NULL,
			biome TEXT NOT NULL,
			distribution TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			score REAL NOT NULL,
			solid_percent REAL NOT NULL,
			cave_count INTEGER NOT NULL,
			largest_cave INTEGER NOT NULL,
			crystals INTEGER NOT NULL,
			ore INTEGER NOT NULL,
			recharge INTEGER NOT NULL,
			spacing REAL NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed, biome, distribution);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Insert records one run.
func (x *Index) Insert(r Run) error {
	_, err := x.db.Exec(
		`INSERT INTO runs (recorded_at, seed, biome, distribution, width, height,
			score, solid_percent, cave_count, largest_cave, crystals, ore, recharge, spacing)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		r.Seed, r.Biome, r.Distribution, r.Width, r.Height,
		r.Score, r.SolidPercent, r.CaveCount, r.LargestCave,
		r.Crystals, r.Ore, r.Recharge, r.Spacing,
	)
	return err
}

// FromReport converts placement telemetry into an index row.
func FromReport(rep *level.PlacementReport, score float64) Run {
	return Run{
		Seed:         rep.Options.Seed,
		Biome:        rep.Options.Biome.String(),
		Distribution: rep.Options.Distribution.String(),
		Width:        rep.Options.Width,
		Height:       rep.Options.Height,
		Score:        score,
		SolidPercent: rep.Terrain.SolidPercent,
		CaveCount:    rep.Terrain.CaveCount,
		LargestCave:  rep.Terrain.LargestCave,
		Crystals:     rep.Resources.CrystalCount,
		Ore:          rep.Resources.OreCount,
		Recharge:     rep.Resources.RechargeCount,
		Spacing:      rep.Resources.AverageSpacing,
	}
}

// Top returns the highest-scoring runs, best first.
func (x *Index) Top(n int) ([]Run, error) {
	rows, err := x.db.Query(
		`SELECT seed, biome, distribution, width, height,
			score, solid_percent, cave_count, largest_cave, crystals, ore, recharge, spacing
		 FROM runs ORDER BY score DESC, id ASC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.Seed, &r.Biome, &r.Distribution, &r.Width, &r.Height,
			&r.Score, &r.SolidPercent, &r.CaveCount, &r.LargestCave,
			&r.Crystals, &r.Ore, &r.Recharge, &r.Spacing); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count reports how many runs the index holds.
func (x *Index) Count() (int, error) {
	var n int
	err := x.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n)
	return n, err
}

// Close releases the database handle.
func (x *Index) Close() error {
	return x.db.Close()
}
