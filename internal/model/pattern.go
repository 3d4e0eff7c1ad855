// Package model defines the shared vocabulary of the analysis pipeline:
// pattern definitions, match evidence, and report shapes.
package model

// Tier classifies a pattern by the kind of structural bias it signals.
type Tier string

const (
	TierIdeological   Tier = "ideological"
	TierPsychological Tier = "psychological"
	TierInstitutional Tier = "institutional"
)

// Tiers returns every tier in scan order.
func Tiers() []Tier {
	return []Tier{TierIdeological, TierPsychological, TierInstitutional}
}

// ValidTier reports whether t names a known tier.
func ValidTier(t Tier) bool {
	switch t {
	case TierIdeological, TierPsychological, TierInstitutional:
		return true
	default:
		return false
	}
}

// Domain selects a weighting profile for a scan.
type Domain string

const (
	DomainGeneral   Domain = "general"
	DomainLegal     Domain = "legal"
	DomainMedia     Domain = "media"
	DomainFinancial Domain = "financial"
)

// MatcherKind names the detection strategy a pattern uses.
type MatcherKind string

const (
	KindRegexp    MatcherKind = "regexp"
	KindProximity MatcherKind = "proximity"
	KindDensity   MatcherKind = "density"
)

// ProximityRule matches when an anchor term occurs within Window words of a
// companion term.
type ProximityRule struct {
	Anchors    []string `yaml:"anchors"`
	Companions []string `yaml:"companions"`
	Window     int      `yaml:"window"`
}

// DensityRule matches when its terms occur at or above PerThousand
// occurrences per thousand words of the document.
type DensityRule struct {
	Terms       []string `yaml:"terms"`
	PerThousand float64  `yaml:"per_thousand"`
}

// Pattern is one structural bias signature. Exactly one of Regex, Proximity,
// or Density is populated, selected by Kind. An empty Domains list means the
// pattern applies in every domain.
type Pattern struct {
	Proximity  *ProximityRule `yaml:"proximity,omitempty"`
	Density    *DensityRule   `yaml:"density,omitempty"`
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Regex      string         `yaml:"regex,omitempty"`
	Tier       Tier           `yaml:"tier"`
	Kind       MatcherKind    `yaml:"kind"`
	Domains    []Domain       `yaml:"domains,omitempty"`
	Severity   float64        `yaml:"severity"`
	Confidence float64        `yaml:"confidence"`
}

// AppliesTo reports whether the pattern is in scope for the given domain.
func (p Pattern) AppliesTo(d Domain) bool {
	if len(p.Domains) == 0 {
		return true
	}
	for _, scoped := range p.Domains {
		if scoped == d {
			return true
		}
	}
	return false
}
