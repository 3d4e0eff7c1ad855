package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bws82/biasclear/internal/model"
)

func weighted(tier model.Tier, severity, weight, confidence float64) WeightedMatch {
	return WeightedMatch{
		Match: model.Match{
			PatternID:  "test",
			Tier:       tier,
			Severity:   severity,
			Confidence: confidence,
		},
		Weight: weight,
	}
}

func TestNewValidatesFloors(t *testing.T) {
	tests := []struct {
		config  Config
		name    string
		wantErr bool
	}{
		{name: "defaults", config: DefaultConfig(), wantErr: false},
		{name: "nil floors fall back to defaults", config: Config{}, wantErr: false},
		{
			name: "missing tier",
			config: Config{Floors: map[model.Tier]float64{
				model.TierIdeological: 40,
			}},
			wantErr: true,
		},
		{
			name: "floor above 100",
			config: Config{Floors: map[model.Tier]float64{
				model.TierIdeological:   140,
				model.TierPsychological: 35,
				model.TierInstitutional: 20,
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestScore(t *testing.T) {
	s, err := New(DefaultConfig())
	require.NoError(t, err)

	t.Run("no matches scores 100", func(t *testing.T) {
		result := s.Score(nil)
		assert.InDelta(t, 100.0, result.Score, 1e-9)
		for _, tier := range model.Tiers() {
			assert.InDelta(t, 100.0, result.TierScores[tier], 1e-9)
		}
	})

	t.Run("single match subtracts severity x weight x confidence", func(t *testing.T) {
		result := s.Score([]WeightedMatch{
			weighted(model.TierIdeological, 6.0, 1.0, 0.9),
		})
		assert.InDelta(t, 100-5.4, result.Score, 1e-9)
		assert.InDelta(t, 100-5.4, result.TierScores[model.TierIdeological], 1e-9)
		assert.InDelta(t, 100.0, result.TierScores[model.TierInstitutional], 1e-9)
	})

	t.Run("tier floor caps the deduction", func(t *testing.T) {
		// 20 heavy ideological matches would deduct 180 uncapped.
		matches := make([]WeightedMatch, 20)
		for i := range matches {
			matches[i] = weighted(model.TierIdeological, 9.0, 1.0, 1.0)
		}

		result := s.Score(matches)
		assert.InDelta(t, 40.0, result.Score, 1e-9,
			"ideological matches alone cannot push below the tier floor")
		assert.InDelta(t, 40.0, result.TierScores[model.TierIdeological], 1e-9)
	})

	t.Run("compounding across tiers clamps at zero", func(t *testing.T) {
		var matches []WeightedMatch
		for _, tier := range model.Tiers() {
			for i := 0; i < 20; i++ {
				matches = append(matches, weighted(tier, 9.0, 2.0, 1.0))
			}
		}

		result := s.Score(matches)
		assert.InDelta(t, 0.0, result.Score, 1e-9)
		assert.GreaterOrEqual(t, result.Score, 0.0)
	})

	t.Run("monotonicity: one more match never raises the score", func(t *testing.T) {
		base := []WeightedMatch{
			weighted(model.TierIdeological, 5.0, 1.0, 0.8),
			weighted(model.TierInstitutional, 7.0, 1.5, 0.9),
		}
		before := s.Score(base).Score

		extra := append(append([]WeightedMatch{}, base...),
			weighted(model.TierPsychological, 3.0, 1.0, 0.6))
		after := s.Score(extra).Score

		assert.LessOrEqual(t, after, before)
	})

	t.Run("zero weight contributes nothing", func(t *testing.T) {
		result := s.Score([]WeightedMatch{
			weighted(model.TierInstitutional, 9.0, 0.0, 1.0),
		})
		assert.InDelta(t, 100.0, result.Score, 1e-9)
	})

	t.Run("score stays within range", func(t *testing.T) {
		for _, matches := range [][]WeightedMatch{
			nil,
			{weighted(model.TierIdeological, 100, 10, 1)},
			{weighted(model.TierInstitutional, 0.1, 0.1, 0.1)},
		} {
			got := s.Score(matches).Score
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		}
	})
}

func TestScoreCustomFloors(t *testing.T) {
	s, err := New(Config{Floors: map[model.Tier]float64{
		model.TierIdeological:   60,
		model.TierPsychological: 35,
		model.TierInstitutional: 20,
	}})
	require.NoError(t, err)

	matches := make([]WeightedMatch, 30)
	for i := range matches {
		matches[i] = weighted(model.TierIdeological, 9.0, 1.0, 1.0)
	}
	assert.InDelta(t, 60.0, s.Score(matches).Score, 1e-9)
}
