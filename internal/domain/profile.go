// Package domain implements the per-domain weighting profiles. Weighting is
// data, not code: a profile is a multiplier table keyed by tier and
// optionally by pattern id, and new domains are new table entries.
package domain

import (
	"github.com/bws82/biasclear/internal/model"
)

// Multipliers is one domain's weighting table.
type Multipliers struct {
	Tiers    map[model.Tier]float64 `yaml:"tiers,omitempty"`
	Patterns map[string]float64     `yaml:"patterns,omitempty"`
}

// Profile resolves severity multipliers for one domain.
type Profile struct {
	multipliers Multipliers
	domain      model.Domain
}

// Domain returns the tag this profile belongs to.
func (p *Profile) Domain() model.Domain {
	return p.domain
}

// Weight returns the multiplier for a match: the pattern-specific entry if
// present, else the tier entry, else 1.0. Never negative.
func (p *Profile) Weight(m model.Match) float64 {
	if w, ok := p.multipliers.Patterns[m.PatternID]; ok {
		return clampWeight(w)
	}
	if w, ok := p.multipliers.Tiers[m.Tier]; ok {
		return clampWeight(w)
	}
	return 1.0
}

func clampWeight(w float64) float64 {
	if w < 0 {
		return 0
	}
	return w
}

// Profiles is the full domain → profile table.
type Profiles struct {
	byDomain map[model.Domain]*Profile
}

// For returns the profile for the given tag. An unknown tag falls back to
// the general profile; the second return reports whether the tag was known,
// so callers can record the applied domain in report metadata.
func (ps *Profiles) For(tag model.Domain) (*Profile, bool) {
	if p, ok := ps.byDomain[tag]; ok {
		return p, true
	}
	return ps.byDomain[model.DomainGeneral], false
}

// Domains lists the known domain tags.
func (ps *Profiles) Domains() []model.Domain {
	out := make([]model.Domain, 0, len(ps.byDomain))
	for _, d := range []model.Domain{model.DomainGeneral, model.DomainLegal, model.DomainMedia, model.DomainFinancial} {
		if _, ok := ps.byDomain[d]; ok {
			out = append(out, d)
		}
	}
	// Any extra domains loaded from an override file.
	for d := range ps.byDomain {
		if d != model.DomainGeneral && d != model.DomainLegal && d != model.DomainMedia && d != model.DomainFinancial {
			out = append(out, d)
		}
	}
	return out
}

// Table exposes a domain's raw multiplier table for display.
func (ps *Profiles) Table(tag model.Domain) (Multipliers, bool) {
	p, ok := ps.byDomain[tag]
	if !ok {
		return Multipliers{}, false
	}
	return p.multipliers, true
}

// Defaults returns the built-in weighting profiles. General is all-ones;
// legal and financial lean on the institutional tier, media on the
// psychological tier.
func Defaults() *Profiles {
	ps := &Profiles{byDomain: make(map[model.Domain]*Profile, 4)}

	ps.byDomain[model.DomainGeneral] = &Profile{domain: model.DomainGeneral}

	ps.byDomain[model.DomainLegal] = &Profile{
		domain: model.DomainLegal,
		multipliers: Multipliers{
			Tiers: map[model.Tier]float64{
				model.TierInstitutional: 2.0,
				model.TierIdeological:   0.8,
			},
		},
	}

	ps.byDomain[model.DomainMedia] = &Profile{
		domain: model.DomainMedia,
		multipliers: Multipliers{
			Tiers: map[model.Tier]float64{
				model.TierPsychological: 1.5,
				model.TierIdeological:   1.25,
			},
		},
	}

	ps.byDomain[model.DomainFinancial] = &Profile{
		domain: model.DomainFinancial,
		multipliers: Multipliers{
			Tiers: map[model.Tier]float64{
				model.TierInstitutional: 1.75,
			},
			Patterns: map[string]float64{
				"loaded-intensifiers": 1.25,
				"legalese-fog":        1.25,
			},
		},
	}

	return ps
}
