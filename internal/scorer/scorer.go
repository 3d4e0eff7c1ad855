// Package scorer reduces weighted matches to a 0-100 truth-alignment score.
package scorer

import (
	"fmt"

	"github.com/bws82/biasclear/internal/model"
)

// Config holds the calibration parameters of the scoring function. Floors
// are per-tier minimum contributions: a tier's total deduction is capped at
// (100 - floor), so no single tier can drive the score below its floor on
// its own. Compounding across tiers still can.
type Config struct {
	Floors map[model.Tier]float64
}

// DefaultConfig returns the default tier floors. The institutional tier has
// the lowest floor, i.e. the largest possible penalty: documents that avoid
// institutional patterns entirely are rewarded the most.
func DefaultConfig() Config {
	return Config{
		Floors: map[model.Tier]float64{
			model.TierIdeological:   40,
			model.TierPsychological: 35,
			model.TierInstitutional: 20,
		},
	}
}

// WeightedMatch pairs a match with its domain-profile multiplier.
type WeightedMatch struct {
	Match  model.Match
	Weight float64
}

// Result is a scored document: the composite score plus the per-tier
// subscores (100 minus that tier's capped deduction).
type Result struct {
	TierScores map[model.Tier]float64
	Score      float64
}

// Scorer applies the decay function. Safe for concurrent use; it holds only
// the immutable config.
type Scorer struct {
	config Config
}

// New creates a scorer, validating that every tier has a floor in [0,100].
func New(config Config) (*Scorer, error) {
	if config.Floors == nil {
		config = DefaultConfig()
	}
	for _, tier := range model.Tiers() {
		floor, ok := config.Floors[tier]
		if !ok {
			return nil, fmt.Errorf("scorer config missing floor for tier %s", tier)
		}
		if floor < 0 || floor > 100 {
			return nil, fmt.Errorf("scorer floor for tier %s out of range: %v", tier, floor)
		}
	}
	return &Scorer{config: config}, nil
}

// Score starts at 100 and subtracts severity x weight x confidence per
// match, capping each tier's total deduction at (100 - floor), then clamps
// the sum across tiers to [0,100].
func (s *Scorer) Score(matches []WeightedMatch) Result {
	deductions := make(map[model.Tier]float64, len(s.config.Floors))
	for _, wm := range matches {
		d := wm.Match.Severity * wm.Weight * wm.Match.Confidence
		if d < 0 {
			d = 0
		}
		deductions[wm.Match.Tier] += d
	}

	result := Result{
		TierScores: make(map[model.Tier]float64, len(s.config.Floors)),
		Score:      100,
	}

	for _, tier := range model.Tiers() {
		limit := 100 - s.config.Floors[tier]
		d := deductions[tier]
		if d > limit {
			d = limit
		}
		result.TierScores[tier] = 100 - d
		result.Score -= d
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}

	return result
}
