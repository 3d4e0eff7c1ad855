// Package catalog holds the static registry of structural bias patterns.
package catalog

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/bws82/biasclear/internal/common"
	"github.com/bws82/biasclear/internal/model"
)

// Catalog is the validated, immutable pattern registry. It is built once at
// startup and shared by all concurrent scans without locking.
type Catalog struct {
	byID     map[string]model.Pattern
	byTier   map[model.Tier][]model.Pattern
	patterns []model.Pattern
}

// Load builds the catalog from the built-in pattern set.
func Load() (*Catalog, error) {
	return New(DefaultPatterns())
}

// LoadFile builds the catalog from a YAML pattern file, replacing the
// built-in set. The file is a list of pattern definitions.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}

	var patterns []model.Pattern
	if err := yaml.Unmarshal(data, &patterns); err != nil {
		return nil, common.NewCatalogError("", "failed to parse pattern file %s: %v", path, err)
	}

	return New(patterns)
}

// New validates the given patterns and builds a catalog from them.
func New(patterns []model.Pattern) (*Catalog, error) {
	c := &Catalog{
		byID:     make(map[string]model.Pattern, len(patterns)),
		byTier:   make(map[model.Tier][]model.Pattern, 3),
		patterns: make([]model.Pattern, 0, len(patterns)),
	}

	for _, p := range patterns {
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, common.NewCatalogError(p.ID, "duplicate pattern identifier")
		}

		c.byID[p.ID] = p
		c.byTier[p.Tier] = append(c.byTier[p.Tier], p)
		c.patterns = append(c.patterns, p)
	}

	return c, nil
}

func validate(p model.Pattern) error {
	if p.ID == "" {
		return common.NewCatalogError("", "pattern with empty identifier")
	}
	if !model.ValidTier(p.Tier) {
		return common.NewCatalogError(p.ID, "unknown tier %q", p.Tier)
	}
	if p.Severity <= 0 {
		return common.NewCatalogError(p.ID, "severity must be positive, got %v", p.Severity)
	}
	if p.Confidence <= 0 || p.Confidence > 1 {
		return common.NewCatalogError(p.ID, "base confidence must be in (0,1], got %v", p.Confidence)
	}

	switch p.Kind {
	case model.KindRegexp:
		if p.Regex == "" {
			return common.NewCatalogError(p.ID, "regexp pattern without a regex")
		}
		// Matchers compile with a forced (?i); validate the same expression.
		if _, err := regexp.Compile("(?i)" + p.Regex); err != nil {
			return common.NewCatalogError(p.ID, "invalid regex: %v", err)
		}
	case model.KindProximity:
		if p.Proximity == nil || len(p.Proximity.Anchors) == 0 || len(p.Proximity.Companions) == 0 {
			return common.NewCatalogError(p.ID, "proximity pattern without anchor/companion terms")
		}
		if p.Proximity.Window <= 0 {
			return common.NewCatalogError(p.ID, "proximity window must be positive")
		}
	case model.KindDensity:
		if p.Density == nil || len(p.Density.Terms) == 0 {
			return common.NewCatalogError(p.ID, "density pattern without terms")
		}
		if p.Density.PerThousand <= 0 {
			return common.NewCatalogError(p.ID, "density rate must be positive")
		}
	default:
		return common.NewCatalogError(p.ID, "unknown matcher kind %q", p.Kind)
	}

	return nil
}

// Patterns returns every pattern in catalog order.
func (c *Catalog) Patterns() []model.Pattern {
	return c.patterns
}

// Tier returns the patterns belonging to the given tier.
func (c *Catalog) Tier(t model.Tier) []model.Pattern {
	return c.byTier[t]
}

// Get looks up a pattern by identifier.
func (c *Catalog) Get(id string) (model.Pattern, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of registered patterns.
func (c *Catalog) Len() int {
	return len(c.patterns)
}
