package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bws82/biasclear/internal/catalog"
	"github.com/bws82/biasclear/internal/model"
)

func TestNewTierMatcherRejectsForeignTier(t *testing.T) {
	patterns := []model.Pattern{{
		ID:         "wrong-tier",
		Tier:       model.TierPsychological,
		Kind:       model.KindRegexp,
		Regex:      `x`,
		Severity:   1,
		Confidence: 0.5,
	}}

	_, err := NewTierMatcher(model.TierIdeological, patterns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "belongs to tier")
}

func TestTierMatcherScan(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	m, err := NewTierMatcher(model.TierIdeological, c.Tier(model.TierIdeological))
	require.NoError(t, err)

	t.Run("empty text yields no matches", func(t *testing.T) {
		assert.Empty(t, m.Scan(""))
	})

	t.Run("consensus claim detected", func(t *testing.T) {
		matches := m.Scan("Everyone agrees that the sky is green.")
		require.NotEmpty(t, matches)
		assert.Equal(t, "false-consensus", matches[0].PatternID)
		assert.Equal(t, model.TierIdeological, matches[0].Tier)
		assert.InDelta(t, 0.90, matches[0].Confidence, 1e-9)
	})

	t.Run("matches ordered by offset", func(t *testing.T) {
		text := "Everyone agrees here. Later on, studies show something else."
		matches := m.Scan(text)
		require.GreaterOrEqual(t, len(matches), 2)
		for i := 1; i < len(matches); i++ {
			assert.LessOrEqual(t, matches[i-1].Span.Start, matches[i].Span.Start)
		}
	})

	t.Run("repeat occurrences raise confidence", func(t *testing.T) {
		text := "Everyone agrees. Everyone agrees. Everyone agrees."
		matches := m.Scan(text)
		require.Len(t, matches, 3)
		assert.InDelta(t, 0.90, matches[0].Confidence, 1e-9)
		assert.InDelta(t, 0.95, matches[1].Confidence, 1e-9)
		assert.InDelta(t, 1.00, matches[2].Confidence, 1e-9)
	})
}

func TestTierMatchersOrderIndependent(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	matchers, err := NewTierMatchers(c.Tier)
	require.NoError(t, err)
	require.Len(t, matchers, 3)

	text := "Everyone agrees this is a shocking bombshell. Sources say the agency declined to comment. Act now before it's too late."

	// Scan in forward and reverse tier order; per-tier results must agree.
	forward := make(map[model.Tier][]model.Match)
	for _, m := range matchers {
		forward[m.Tier()] = m.Scan(text)
	}
	for i := len(matchers) - 1; i >= 0; i-- {
		m := matchers[i]
		assert.Equal(t, forward[m.Tier()], m.Scan(text), "tier %s", m.Tier())
	}
}

func TestTierMatcherScanDeterministic(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	m, err := NewTierMatcher(model.TierInstitutional, c.Tier(model.TierInstitutional))
	require.NoError(t, err)

	text := "Sources say a recent study shows that scientifically proven methods work."
	assert.Equal(t, m.Scan(text), m.Scan(text))
}
