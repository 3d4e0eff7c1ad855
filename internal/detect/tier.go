package detect

import (
	"fmt"
	"sort"

	"github.com/bws82/biasclear/internal/model"
)

// confidenceStep is added per repeat occurrence of the same pattern; a
// pattern that keeps recurring is a stronger structural signal.
const confidenceStep = 0.05

// TierMatcher scans documents for the patterns of a single tier. Matchers
// hold only immutable state after construction and are safe for concurrent
// use; tiers are independent, so running them in any order yields the same
// match sets.
type TierMatcher struct {
	tier      model.Tier
	detectors []patternDetector
}

type patternDetector struct {
	detector Detector
	pattern  model.Pattern
}

// NewTierMatcher builds a matcher for the given tier from the catalog
// patterns belonging to it. Patterns from other tiers are rejected.
func NewTierMatcher(tier model.Tier, patterns []model.Pattern) (*TierMatcher, error) {
	m := &TierMatcher{tier: tier, detectors: make([]patternDetector, 0, len(patterns))}

	for _, p := range patterns {
		if p.Tier != tier {
			return nil, fmt.Errorf("pattern %s belongs to tier %s, not %s", p.ID, p.Tier, tier)
		}
		det, err := NewDetector(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", p.ID, err)
		}
		m.detectors = append(m.detectors, patternDetector{pattern: p, detector: det})
	}

	return m, nil
}

// Tier returns the tier this matcher scans for.
func (m *TierMatcher) Tier() model.Tier {
	return m.tier
}

// Scan runs every pattern detector over the text and returns the matches
// ordered by (offset, pattern id). Confidence is deterministic: the pattern
// base, raised by a small step for each repeat occurrence, capped at 1.0.
func (m *TierMatcher) Scan(text string) []model.Match {
	var matches []model.Match

	for _, pd := range m.detectors {
		spans := pd.detector.Detect(text)
		for i, span := range spans {
			confidence := pd.pattern.Confidence + confidenceStep*float64(i)
			if confidence > 1.0 {
				confidence = 1.0
			}

			matches = append(matches, model.Match{
				PatternID:   pd.pattern.ID,
				PatternName: pd.pattern.Name,
				Tier:        m.tier,
				Severity:    pd.pattern.Severity,
				Span:        span,
				Confidence:  confidence,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Span.Start != matches[j].Span.Start {
			return matches[i].Span.Start < matches[j].Span.Start
		}
		return matches[i].PatternID < matches[j].PatternID
	})

	return matches
}

// NewTierMatchers builds one matcher per tier from a full catalog pattern
// listing keyed by tier.
func NewTierMatchers(byTier func(model.Tier) []model.Pattern) ([]*TierMatcher, error) {
	matchers := make([]*TierMatcher, 0, len(model.Tiers()))
	for _, tier := range model.Tiers() {
		m, err := NewTierMatcher(tier, byTier(tier))
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}
