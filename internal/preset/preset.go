// Package preset loads named generation configurations from YAML files.
// Files are validated against a schema before any value reaches the
// option parser, so a typoed key or a string where a number belongs is
// reported with a path into the document instead of surfacing later as
// a half-applied configuration.
package preset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"cavegen/pkg/level"
)

// schema mirrors the override keys Options.ApplyOverrides accepts.
// additionalProperties stays false so unknown keys fail validation
// rather than being ignored.
const schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "settings"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "settings": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "width": {"type": "integer", "minimum": 1},
        "height": {"type": "integer", "minimum": 1},
        "seed": {"type": "integer"},
        "layout": {"enum": ["automata", "noise"]},
        "fill": {"type": "number", "minimum": 0, "maximum": 1},
        "smoothing": {"type": "integer", "minimum": 0},
        "birth_limit": {"type": "integer", "minimum": 0},
        "death_limit": {"type": "integer", "minimum": 0},
        "edge_padding": {"type": "integer", "minimum": 0},
        "biome": {"enum": ["rock", "ice", "lava"]},
        "complexity": {"enum": ["simple", "medium", "complex"]},
        "crystal_density": {"type": "number", "minimum": 0},
        "ore_density": {"type": "number", "minimum": 0},
        "recharge_density": {"type": "number", "minimum": 0},
        "distribution": {"enum": ["random", "clustered", "veins", "strategic"]},
        "min_distance": {"type": "number", "minimum": 0},
        "wall_adjacent": {"type": "boolean"},
        "balance_quadrants": {"type": "boolean"}
      }
    }
  }
}`

var compiled = jsonschema.MustCompileString("preset.schema.json", schema)

// Preset is one validated configuration file.
type Preset struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Settings    map[string]string `yaml:"-"`
}

type rawPreset struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Settings    map[string]any `yaml:"settings"`
}

// Load reads, validates, and parses a preset file.
func Load(path string) (Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}
	return Parse(raw)
}

// Parse validates and decodes preset YAML.
func Parse(raw []byte) (Preset, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Preset{}, fmt.Errorf("preset: %w", err)
	}
	if err := compiled.Validate(jsonValue(doc)); err != nil {
		return Preset{}, fmt.Errorf("preset: %w", err)
	}

	var rp rawPreset
	if err := yaml.Unmarshal(raw, &rp); err != nil {
		return Preset{}, fmt.Errorf("preset: %w", err)
	}
	p := Preset{
		Name:        rp.Name,
		Description: rp.Description,
		Settings:    make(map[string]string, len(rp.Settings)),
	}
	for k, v := range rp.Settings {
		p.Settings[k] = fmt.Sprint(v)
	}
	return p, nil
}

// Options overlays the preset's settings onto the defaults and
// validates the result.
func (p Preset) Options() (level.Options, error) {
	o := level.DefaultOptions()
	if err := o.ApplyOverrides(p.Settings); err != nil {
		return o, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if err := o.Validate(); err != nil {
		return o, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return o, nil
}

// jsonValue reshapes a yaml-decoded document into the types the schema
// validator expects (the ones encoding/json produces).
func jsonValue(doc any) any {
	b, err := json.Marshal(doc)
	if err != nil {
		return doc
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return doc
	}
	return out
}
