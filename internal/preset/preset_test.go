package preset

import (
	"os"
	"path/filepath"
	"testing"

	"cavegen/pkg/level"
)

const iceCaves = `
name: deep-ice
description: wide frozen caverns with clustered seams
settings:
  width: 96
  height: 72
  biome: ice
  complexity: complex
  crystal_density: 3.5
  distribution: clustered
  balance_quadrants: true
`

func TestParseAppliesSettings(t *testing.T) {
	p, err := Parse([]byte(iceCaves))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Name != "deep-ice" {
		t.Fatalf("name = %q", p.Name)
	}

	o, err := p.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if o.Width != 96 || o.Height != 72 {
		t.Fatalf("dimensions = %dx%d", o.Width, o.Height)
	}
	if o.Biome != level.BiomeIce || o.Complexity != level.ComplexityComplex {
		t.Fatalf("biome/complexity = %v/%v", o.Biome, o.Complexity)
	}
	if o.CrystalDensity != 3.5 {
		t.Fatalf("crystal density = %v", o.CrystalDensity)
	}
	if o.Distribution != level.DistClustered || !o.BalanceQuadrants {
		t.Fatalf("distribution = %v, balance = %v", o.Distribution, o.BalanceQuadrants)
	}
	// Untouched fields keep their defaults.
	if o.SmoothingIterations != 5 || o.EdgePadding != 1 {
		t.Fatalf("defaults disturbed: smoothing=%d padding=%d", o.SmoothingIterations, o.EdgePadding)
	}
}

func TestParseRejectsUnknownKey(t *testing.T) {
	_, err := Parse([]byte("name: bad\nsettings:\n  cristal_density: 2\n"))
	if err == nil {
		t.Fatal("unknown settings key validated")
	}
}

func TestParseRejectsWrongType(t *testing.T) {
	_, err := Parse([]byte("name: bad\nsettings:\n  width: wide\n"))
	if err == nil {
		t.Fatal("string width validated")
	}
}

func TestParseRejectsMissingName(t *testing.T) {
	_, err := Parse([]byte("settings:\n  biome: lava\n"))
	if err == nil {
		t.Fatal("preset without a name validated")
	}
}

func TestParseRejectsEnumValue(t *testing.T) {
	_, err := Parse([]byte("name: bad\nsettings:\n  biome: swamp\n"))
	if err == nil {
		t.Fatal("unknown biome validated")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ice.yaml")
	if err := os.WriteFile(path, []byte(iceCaves), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Settings["biome"] != "ice" {
		t.Fatalf("settings = %v", p.Settings)
	}
}
