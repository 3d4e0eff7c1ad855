package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bws82/biasclear/internal/model"
)

// overrideFile is the on-disk shape of a profiles file. Profiles merge over
// the built-ins; the optional scoring section retunes tier floors.
type overrideFile struct {
	Profiles map[model.Domain]Multipliers `yaml:"profiles"`
	Scoring  struct {
		Floors map[model.Tier]float64 `yaml:"floors"`
	} `yaml:"scoring"`
}

// LoadFile merges a YAML override file over the built-in profiles and
// returns the merged table plus any tier-floor overrides for the scorer.
func LoadFile(path string) (*Profiles, map[model.Tier]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse profiles file %s: %w", path, err)
	}

	for tier := range file.Scoring.Floors {
		if !model.ValidTier(tier) {
			return nil, nil, fmt.Errorf("profiles file %s: unknown tier %q in scoring floors", path, tier)
		}
	}

	ps := Defaults()
	for tag, mult := range file.Profiles {
		existing, ok := ps.byDomain[tag]
		if !ok {
			ps.byDomain[tag] = &Profile{domain: tag, multipliers: mult}
			continue
		}
		ps.byDomain[tag] = &Profile{domain: tag, multipliers: merge(existing.multipliers, mult)}
	}

	return ps, file.Scoring.Floors, nil
}

// merge overlays the override table onto the base, entry by entry.
func merge(base, over Multipliers) Multipliers {
	out := Multipliers{
		Tiers:    make(map[model.Tier]float64, len(base.Tiers)+len(over.Tiers)),
		Patterns: make(map[string]float64, len(base.Patterns)+len(over.Patterns)),
	}
	for k, v := range base.Tiers {
		out.Tiers[k] = v
	}
	for k, v := range over.Tiers {
		out.Tiers[k] = v
	}
	for k, v := range base.Patterns {
		out.Patterns[k] = v
	}
	for k, v := range over.Patterns {
		out.Patterns[k] = v
	}
	return out
}
