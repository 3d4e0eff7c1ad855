package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bws82/biasclear/internal/common"
	"github.com/bws82/biasclear/internal/model"
)

func validPattern(id string) model.Pattern {
	return model.Pattern{
		ID:         id,
		Name:       "Test Pattern",
		Tier:       model.TierIdeological,
		Kind:       model.KindRegexp,
		Regex:      `\btest\b`,
		Severity:   5.0,
		Confidence: 0.8,
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		errMsg   string
		patterns []model.Pattern
		wantErr  bool
	}{
		{
			name:     "valid patterns",
			patterns: []model.Pattern{validPattern("a"), validPattern("b")},
			wantErr:  false,
		},
		{
			name:     "duplicate identifier",
			patterns: []model.Pattern{validPattern("a"), validPattern("a")},
			wantErr:  true,
			errMsg:   "duplicate pattern identifier",
		},
		{
			name: "unknown tier",
			patterns: []model.Pattern{func() model.Pattern {
				p := validPattern("a")
				p.Tier = "cosmic"
				return p
			}()},
			wantErr: true,
			errMsg:  "unknown tier",
		},
		{
			name: "invalid regex",
			patterns: []model.Pattern{func() model.Pattern {
				p := validPattern("a")
				p.Regex = `[unclosed`
				return p
			}()},
			wantErr: true,
			errMsg:  "invalid regex",
		},
		{
			name: "zero severity",
			patterns: []model.Pattern{func() model.Pattern {
				p := validPattern("a")
				p.Severity = 0
				return p
			}()},
			wantErr: true,
			errMsg:  "severity must be positive",
		},
		{
			name: "confidence out of range",
			patterns: []model.Pattern{func() model.Pattern {
				p := validPattern("a")
				p.Confidence = 1.5
				return p
			}()},
			wantErr: true,
			errMsg:  "base confidence",
		},
		{
			name: "proximity without companions",
			patterns: []model.Pattern{{
				ID:         "prox",
				Tier:       model.TierInstitutional,
				Kind:       model.KindProximity,
				Proximity:  &model.ProximityRule{Anchors: []string{"dr."}, Window: 5},
				Severity:   5.0,
				Confidence: 0.8,
			}},
			wantErr: true,
			errMsg:  "anchor/companion",
		},
		{
			name: "unknown kind",
			patterns: []model.Pattern{func() model.Pattern {
				p := validPattern("a")
				p.Kind = "semantic"
				return p
			}()},
			wantErr: true,
			errMsg:  "unknown matcher kind",
		},
		{
			name:     "empty catalog is valid",
			patterns: nil,
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.patterns)

			if tt.wantErr {
				require.Error(t, err)
				var catErr *common.CatalogError
				require.ErrorAs(t, err, &catErr)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, len(tt.patterns), c.Len())
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, c.Len(), 34, "catalog should carry at least 34 patterns")

	for _, tier := range model.Tiers() {
		assert.NotEmpty(t, c.Tier(tier), "tier %s should have patterns", tier)
	}

	// Every pattern must be retrievable by id.
	for _, p := range c.Patterns() {
		got, ok := c.Get(p.ID)
		require.True(t, ok)
		assert.Equal(t, p.ID, got.ID)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file replaces builtins", func(t *testing.T) {
		path := filepath.Join(dir, "patterns.yaml")
		content := `
- id: custom-consensus
  name: Custom Consensus
  tier: ideological
  kind: regexp
  regex: '\beveryone agrees\b'
  severity: 5
  confidence: 0.9
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		c, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())

		p, ok := c.Get("custom-consensus")
		require.True(t, ok)
		assert.Equal(t, model.TierIdeological, p.Tier)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

		_, err := LoadFile(path)
		var catErr *common.CatalogError
		require.ErrorAs(t, err, &catErr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
	})
}

func TestPatternAppliesTo(t *testing.T) {
	p := validPattern("a")
	assert.True(t, p.AppliesTo(model.DomainGeneral), "empty domain set applies everywhere")
	assert.True(t, p.AppliesTo(model.DomainLegal))

	p.Domains = []model.Domain{model.DomainLegal}
	assert.True(t, p.AppliesTo(model.DomainLegal))
	assert.False(t, p.AppliesTo(model.DomainGeneral))
}
