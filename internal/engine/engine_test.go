package engine

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/bws82/biasclear/internal/common"
	"github.com/bws82/biasclear/internal/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := Default()
	require.NoError(t, err)
	return e
}

func TestAnalyzeText(t *testing.T) {
	e := newTestEngine(t)

	t.Run("empty text scores 100", func(t *testing.T) {
		result := e.AnalyzeText("empty.md", "", model.DomainGeneral, 70)
		assert.InDelta(t, 100.0, result.Score, 1e-9)
		assert.False(t, result.BiasDetected)
		assert.Zero(t, result.FlagCount)
		assert.Empty(t, result.Matches)
	})

	t.Run("neutral prose scores 100", func(t *testing.T) {
		text := "The committee reviewed the proposal on Tuesday and published its findings alongside the full meeting minutes."
		result := e.AnalyzeText("neutral.md", text, model.DomainGeneral, 70)
		assert.InDelta(t, 100.0, result.Score, 1e-9)
		assert.False(t, result.BiasDetected)
	})

	t.Run("single consensus claim lands between floor and 100", func(t *testing.T) {
		text := "Everyone agrees that the new policy is working."
		result := e.AnalyzeText("doc.md", text, model.DomainGeneral, 70)

		require.Equal(t, 1, result.FlagCount)
		assert.Equal(t, "false-consensus", result.Matches[0].PatternID)
		assert.Greater(t, result.Score, 40.0, "above the ideological tier floor")
		assert.Less(t, result.Score, 100.0)
		assert.Equal(t, result.Score < 70, result.BiasDetected)
	})

	t.Run("tier floor holds for ideological-only documents", func(t *testing.T) {
		text := `Everyone agrees. We all know this. Nobody disputes it. Studies show it.
Experts agree. The debate is over. It is beyond dispute. Most people agree.
The vast majority understand. You're either with us or against us.
Common sense tells us so. It goes without saying. Case closed. End of story.
History will judge them. They only want power. Their real agenda is hidden.
All reasonable people see it. No true skeptic would object.`
		result := e.AnalyzeText("ideology.md", text, model.DomainGeneral, 70)

		require.NotEmpty(t, result.Matches)
		for _, m := range result.Matches {
			require.Equal(t, model.TierIdeological, m.Tier)
		}
		assert.GreaterOrEqual(t, result.Score, 40.0)
	})

	t.Run("determinism", func(t *testing.T) {
		text := "Everyone agrees this shocking bombshell is stunning. Sources say so."
		first := e.AnalyzeText("doc.md", text, model.DomainMedia, 70)
		second := e.AnalyzeText("doc.md", text, model.DomainMedia, 70)
		assert.Equal(t, first, second)
	})

	t.Run("matches ordered by document position", func(t *testing.T) {
		text := "Act now! Everyone agrees, and sources say the end is near."
		result := e.AnalyzeText("doc.md", text, model.DomainGeneral, 70)
		for i := 1; i < len(result.Matches); i++ {
			assert.LessOrEqual(t, result.Matches[i-1].Span.Start, result.Matches[i].Span.Start)
		}
	})

	t.Run("legal weighting punishes institutional matches harder", func(t *testing.T) {
		text := "Sources say the filing is sound, and officials familiar with the matter concur."
		general := e.AnalyzeText("doc.md", text, model.DomainGeneral, 70)
		legal := e.AnalyzeText("doc.md", text, model.DomainLegal, 70)

		require.NotEmpty(t, general.Matches)
		assert.LessOrEqual(t, legal.Score, general.Score)
	})

	t.Run("domain weighting is a no-op without institutional matches", func(t *testing.T) {
		text := "A perfectly calm and cited description of events."
		general := e.AnalyzeText("doc.md", text, model.DomainGeneral, 70)
		legal := e.AnalyzeText("doc.md", text, model.DomainLegal, 70)
		assert.InDelta(t, general.Score, legal.Score, 1e-9)
	})

	t.Run("domain-scoped patterns are inert elsewhere", func(t *testing.T) {
		// legalese-fog only applies in legal and financial domains.
		text := "Pursuant to the rules, notwithstanding the aforementioned clause, heretofore agreed."
		general := e.AnalyzeText("doc.md", text, model.DomainGeneral, 70)
		for _, m := range general.Matches {
			assert.NotEqual(t, "legalese-fog", m.PatternID)
		}

		legal := e.AnalyzeText("doc.md", text, model.DomainLegal, 70)
		ids := make([]string, 0, len(legal.Matches))
		for _, m := range legal.Matches {
			ids = append(ids, m.PatternID)
		}
		assert.Contains(t, ids, "legalese-fog")
	})
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	e := newTestEngine(t)
	ctx := context.Background()

	t.Run("empty input set is fatal", func(t *testing.T) {
		_, err := e.Run(ctx, nil, Options{Domain: model.DomainGeneral, Threshold: 70})
		require.ErrorIs(t, err, common.ErrNoScannableInput)
	})

	t.Run("mixed batch with one undecodable file", func(t *testing.T) {
		inputs := []Input{
			{Path: "a.md", Text: "Calm, referenced prose with nothing to flag."},
			{Path: "b.md", Text: "Everyone agrees. Sources say. Act now before it's too late. You won't believe this shocking, explosive bombshell. Scientifically proven!"},
			{Path: "c.md", Text: "\xff\xfe not text"},
		}

		report, err := e.Run(ctx, inputs, Options{Domain: model.DomainGeneral, Threshold: 70, Workers: 2})
		require.NoError(t, err)

		assert.Equal(t, 3, report.TotalFiles)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, "c.md", report.Errors[0].File)
		require.Len(t, report.Results, 2)

		// Stats are computed over scored files only.
		wantAvg := (report.Results[0].Score + report.Results[1].Score) / 2
		assert.InDelta(t, wantAvg, report.AvgScore, 0.01)

		flagged := 0
		for _, r := range report.Results {
			if r.BiasDetected {
				flagged++
			}
		}
		assert.Equal(t, flagged, report.FlaggedFiles)
		assert.Equal(t, flagged > 0, report.AnyBelowThreshold)
	})

	t.Run("results keep input order under concurrency", func(t *testing.T) {
		inputs := make([]Input, 50)
		for i := range inputs {
			inputs[i] = Input{Path: filepath.Join("docs", string(rune('a'+i%26))+".md"), Text: "Neutral text."}
			inputs[i].Path = inputs[i].Path + "-" + string(rune('0'+i%10))
		}

		report, err := e.Run(ctx, inputs, Options{Domain: model.DomainGeneral, Threshold: 70, Workers: 8})
		require.NoError(t, err)
		require.Len(t, report.Results, len(inputs))
		for i, r := range report.Results {
			assert.Equal(t, inputs[i].Path, r.File)
		}
	})

	t.Run("every file failing is fatal", func(t *testing.T) {
		inputs := []Input{
			{Path: "x.md", Err: os.ErrNotExist},
			{Path: "y.md", Text: "\xff"},
		}
		_, err := e.Run(ctx, inputs, Options{Domain: model.DomainGeneral, Threshold: 70})
		require.ErrorIs(t, err, common.ErrNoScannableInput)
	})

	t.Run("unknown domain falls back to general and records both", func(t *testing.T) {
		inputs := []Input{{Path: "a.md", Text: "Fine text."}}
		report, err := e.Run(ctx, inputs, Options{Domain: "astrology", Threshold: 70})
		require.NoError(t, err)
		assert.Equal(t, model.DomainGeneral, report.Domain)
		assert.Equal(t, model.Domain("astrology"), report.RequestedDomain)
	})

	t.Run("canceled context yields a partial report", func(t *testing.T) {
		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		inputs := []Input{
			{Path: "a.md", Text: "Text one."},
			{Path: "b.md", Text: "Text two."},
		}
		report, err := e.Run(canceled, inputs, Options{Domain: model.DomainGeneral, Threshold: 70})
		require.NoError(t, err)
		assert.True(t, report.Partial)
		assert.Equal(t, 2, report.TotalFiles)
		assert.Empty(t, report.Results, "nothing dispatched after cancellation")
	})

	t.Run("progress callback fires once per file", func(t *testing.T) {
		var done atomic.Int64
		inputs := []Input{
			{Path: "a.md", Text: "One."},
			{Path: "b.md", Text: "Two."},
			{Path: "c.md", Err: os.ErrPermission},
		}
		_, err := e.Run(ctx, inputs, Options{
			Domain:     model.DomainGeneral,
			Threshold:  70,
			OnFileDone: func(string) { done.Add(1) },
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), done.Load())
	})
}

func TestRunFiles(t *testing.T) {
	e := newTestEngine(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.md")
	require.NoError(t, os.WriteFile(good, []byte("Perfectly neutral prose."), 0o600))
	biased := filepath.Join(dir, "biased.md")
	require.NoError(t, os.WriteFile(biased, []byte("Everyone agrees, and sources say it is scientifically proven."), 0o600))
	missing := filepath.Join(dir, "missing.md")

	report, err := e.RunFiles(context.Background(), []string{good, biased, missing},
		Options{Domain: model.DomainGeneral, Threshold: 70})
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalFiles)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, missing, report.Errors[0].File)
	require.Len(t, report.Results, 2)
	assert.InDelta(t, 100.0, report.Results[0].Score, 1e-9)
	assert.Less(t, report.Results[1].Score, 100.0)
}
