package level

import (
	"errors"
	"fmt"
	"strconv"

	"cavegen/internal/core"
)

// ErrInvalidOptions wraps every option validation failure so callers can
// branch on the class without matching message text.
var ErrInvalidOptions = errors.New("invalid options")

// Biome selects the terrain feature set and tile conversion table.
type Biome uint8

const (
	BiomeRock Biome = iota
	BiomeIce
	BiomeLava
)

var biomeNames = [...]string{"rock", "ice", "lava"}

func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return fmt.Sprintf("biome(%d)", uint8(b))
}

// ParseBiome maps a spelling to its Biome value.
func ParseBiome(s string) (Biome, error) {
	for i, name := range biomeNames {
		if s == name {
			return Biome(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown biome %q", ErrInvalidOptions, s)
}

// Complexity scales how many structural features each biome paints.
type Complexity uint8

const (
	ComplexitySimple Complexity = iota
	ComplexityMedium
	ComplexityComplex
)

var complexityNames = [...]string{"simple", "medium", "complex"}

func (c Complexity) String() string {
	if int(c) < len(complexityNames) {
		return complexityNames[c]
	}
	return fmt.Sprintf("complexity(%d)", uint8(c))
}

// ParseComplexity maps a spelling to its Complexity value.
func ParseComplexity(s string) (Complexity, error) {
	for i, name := range complexityNames {
		if s == name {
			return Complexity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown complexity %q", ErrInvalidOptions, s)
}

// Distribution selects the resource placement strategy.
type Distribution uint8

const (
	DistRandom Distribution = iota
	DistClustered
	DistVeins
	DistStrategic
)

var distributionNames = [...]string{"random", "clustered", "veins", "strategic"}

func (d Distribution) String() string {
	if int(d) < len(distributionNames) {
		return distributionNames[d]
	}
	return fmt.Sprintf("distribution(%d)", uint8(d))
}

// ParseDistribution maps a spelling to its Distribution value.
func ParseDistribution(s string) (Distribution, error) {
	for i, name := range distributionNames {
		if s == name {
			return Distribution(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown distribution %q", ErrInvalidOptions, s)
}

// Layout selects how the base occupancy grid is seeded before smoothing.
type Layout uint8

const (
	LayoutAutomata Layout = iota
	LayoutNoise
)

var layoutNames = [...]string{"automata", "noise"}

func (l Layout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("layout(%d)", uint8(l))
}

// ParseLayout maps a spelling to its Layout value.
func ParseLayout(s string) (Layout, error) {
	for i, name := range layoutNames {
		if s == name {
			return Layout(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown layout %q", ErrInvalidOptions, s)
}

// Options is the full configuration record for one generation run. It is
// treated as immutable once handed to Generate or PlaceResources.
type Options struct {
	Width  int
	Height int

	Seed int64

	// Carving.
	Layout              Layout
	FillProbability     float64
	SmoothingIterations int
	BirthLimit          int
	DeathLimit          int
	EdgePadding         int

	// Painting.
	Biome      Biome
	Complexity Complexity

	// Resource placement. Densities are resources per 100 tiles.
	CrystalDensity        float64
	OreDensity            float64
	RechargeDensity       float64
	Distribution          Distribution
	MinDistanceBetween    float64
	WallAdjacencyRequired bool
	BalanceQuadrants      bool
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		Width:               64,
		Height:              64,
		Seed:                1337,
		Layout:              LayoutAutomata,
		FillProbability:     0.45,
		SmoothingIterations: 5,
		BirthLimit:          4,
		DeathLimit:          3,
		EdgePadding:         1,
		Biome:               BiomeRock,
		Complexity:          ComplexityMedium,
		CrystalDensity:      2.0,
		OreDensity:          1.5,
		RechargeDensity:     0.5,
		Distribution:        DistRandom,
	}
}

// Validate checks every field before any grid is allocated. Out-of-range
// values are reported, never clamped.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.FillProbability < 0 || o.FillProbability > 1 {
		return fmt.Errorf("%w: fillProbability %v outside [0,1]", ErrInvalidOptions, o.FillProbability)
	}
	if o.SmoothingIterations < 0 {
		return fmt.Errorf("%w: smoothingIterations %d is negative", ErrInvalidOptions, o.SmoothingIterations)
	}
	if o.BirthLimit < 0 {
		return fmt.Errorf("%w: birthLimit %d is negative", ErrInvalidOptions, o.BirthLimit)
	}
	if o.DeathLimit < 0 {
		return fmt.Errorf("%w: deathLimit %d is negative", ErrInvalidOptions, o.DeathLimit)
	}
	if o.EdgePadding < 0 {
		return fmt.Errorf("%w: edgePadding %d is negative", ErrInvalidOptions, o.EdgePadding)
	}
	if int(o.Layout) >= len(layoutNames) {
		return fmt.Errorf("%w: layout value %d", ErrInvalidOptions, o.Layout)
	}
	if int(o.Biome) >= len(biomeNames) {
		return fmt.Errorf("%w: biome value %d", ErrInvalidOptions, o.Biome)
	}
	if int(o.Complexity) >= len(complexityNames) {
		return fmt.Errorf("%w: complexity value %d", ErrInvalidOptions, o.Complexity)
	}
	return o.validatePlacement()
}

// validatePlacement covers the subset PlaceResources depends on, so an
// externally supplied grid can be populated without carving options.
func (o Options) validatePlacement() error {
	if o.CrystalDensity < 0 {
		return fmt.Errorf("%w: crystalDensity %v is negative", ErrInvalidOptions, o.CrystalDensity)
	}
	if o.OreDensity < 0 {
		return fmt.Errorf("%w: oreDensity %v is negative", ErrInvalidOptions, o.OreDensity)
	}
	if o.RechargeDensity < 0 {
		return fmt.Errorf("%w: rechargeDensity %v is negative", ErrInvalidOptions, o.RechargeDensity)
	}
	if o.MinDistanceBetween < 0 {
		return fmt.Errorf("%w: minDistanceBetween %v is negative", ErrInvalidOptions, o.MinDistanceBetween)
	}
	if int(o.Distribution) >= len(distributionNames) {
		return fmt.Errorf("%w: distribution value %d", ErrInvalidOptions, o.Distribution)
	}
	return nil
}

// FromMap applies flag-style key/value overrides on top of the defaults.
// Unknown keys and unparseable values are errors; range checks stay in
// Validate so tools report both kinds of problem distinctly.
func FromMap(overrides map[string]string) (Options, error) {
	o := DefaultOptions()
	if err := o.ApplyOverrides(overrides); err != nil {
		return o, err
	}
	return o, nil
}

// ApplyOverrides overlays key/value settings onto the receiver. Presets
// and CLI tools share this path so every source of configuration parses
// the same way.
func (o *Options) ApplyOverrides(overrides map[string]string) error {
	for k, v := range overrides {
		if err := o.apply(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (o *Options) apply(key, val string) error {
	switch key {
	case "w", "width":
		return o.applyInt(&o.Width, key, val)
	case "h", "height":
		return o.applyInt(&o.Height, key, val)
	case "seed":
		parsed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidOptions, key, val)
		}
		o.Seed = parsed
	case "layout":
		parsed, err := ParseLayout(val)
		if err != nil {
			return err
		}
		o.Layout = parsed
	case "fill":
		return o.applyFloat(&o.FillProbability, key, val)
	case "smoothing":
		return o.applyInt(&o.SmoothingIterations, key, val)
	case "birth_limit":
		return o.applyInt(&o.BirthLimit, key, val)
	case "death_limit":
		return o.applyInt(&o.DeathLimit, key, val)
	case "edge_padding":
		return o.applyInt(&o.EdgePadding, key, val)
	case "biome":
		parsed, err := ParseBiome(val)
		if err != nil {
			return err
		}
		o.Biome = parsed
	case "complexity":
		parsed, err := ParseComplexity(val)
		if err != nil {
			return err
		}
		o.Complexity = parsed
	case "crystal_density":
		return o.applyFloat(&o.CrystalDensity, key, val)
	case "ore_density":
		return o.applyFloat(&o.OreDensity, key, val)
	case "recharge_density":
		return o.applyFloat(&o.RechargeDensity, key, val)
	case "distribution":
		parsed, err := ParseDistribution(val)
		if err != nil {
			return err
		}
		o.Distribution = parsed
	case "min_distance":
		return o.applyFloat(&o.MinDistanceBetween, key, val)
	case "wall_adjacent":
		return o.applyBool(&o.WallAdjacencyRequired, key, val)
	case "balance_quadrants":
		return o.applyBool(&o.BalanceQuadrants, key, val)
	default:
		return fmt.Errorf("%w: unknown option %q", ErrInvalidOptions, key)
	}
	return nil
}

func (o *Options) applyInt(dst *int, key, val string) error {
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidOptions, key, val)
	}
	*dst = parsed
	return nil
}

func (o *Options) applyFloat(dst *float64, key, val string) error {
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidOptions, key, val)
	}
	*dst = parsed
	return nil
}

func (o *Options) applyBool(dst *bool, key, val string) error {
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidOptions, key, val)
	}
	*dst = parsed
	return nil
}

// Parameters describes every override key for tools that list or validate
// tunables.
func Parameters() []core.ParameterGroup {
	return []core.ParameterGroup{
		{
			Name:    "grid",
			Summary: "dimensions and seeding",
			Params: []core.Parameter{
				{Key: "width", Label: "Width", Type: core.ParamTypeInt, Default: "64", Min: 1, HasMin: true},
				{Key: "height", Label: "Height", Type: core.ParamTypeInt, Default: "64", Min: 1, HasMin: true},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Default: "1337"},
			},
		},
		{
			Name:    "carving",
			Summary: "base cavern shape",
			Params: []core.Parameter{
				{Key: "layout", Label: "Layout", Type: core.ParamTypeEnum, Default: "automata", Values: layoutNames[:]},
				{Key: "fill", Label: "Fill probability", Type: core.ParamTypeFloat, Default: "0.45", Min: 0, Max: 1, HasMin: true, HasMax: true},
				{Key: "smoothing", Label: "Smoothing iterations", Type: core.ParamTypeInt, Default: "5", Min: 0, HasMin: true},
				{Key: "birth_limit", Label: "Birth limit", Type: core.ParamTypeInt, Default: "4", Min: 0, HasMin: true},
				{Key: "death_limit", Label: "Death limit", Type: core.ParamTypeInt, Default: "3", Min: 0, HasMin: true},
				{Key: "edge_padding", Label: "Edge padding", Type: core.ParamTypeInt, Default: "1", Min: 0, HasMin: true},
			},
		},
		{
			Name:    "painting",
			Summary: "biome features",
			Params: []core.Parameter{
				{Key: "biome", Label: "Biome", Type: core.ParamTypeEnum, Default: "rock", Values: biomeNames[:]},
				{Key: "complexity", Label: "Complexity", Type: core.ParamTypeEnum, Default: "medium", Values: complexityNames[:]},
			},
		},
		{
			Name:    "resources",
			Summary: "seam placement",
			Params: []core.Parameter{
				{Key: "crystal_density", Label: "Crystals per 100 tiles", Type: core.ParamTypeFloat, Default: "2", Min: 0, HasMin: true},
				{Key: "ore_density", Label: "Ore per 100 tiles", Type: core.ParamTypeFloat, Default: "1.5", Min: 0, HasMin: true},
				{Key: "recharge_density", Label: "Recharge per 100 tiles", Type: core.ParamTypeFloat, Default: "0.5", Min: 0, HasMin: true},
				{Key: "distribution", Label: "Distribution", Type: core.ParamTypeEnum, Default: "random", Values: distributionNames[:]},
				{Key: "min_distance", Label: "Minimum spacing", Type: core.ParamTypeFloat, Default: "0", Min: 0, HasMin: true},
				{Key: "wall_adjacent", Label: "Walls only", Type: core.ParamTypeBool, Default: "false"},
				{Key: "balance_quadrants", Label: "Balance quadrants", Type: core.ParamTypeBool, Default: "false"},
			},
		},
	}
}
