package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bws82/biasclear/internal/model"
)

// greenCutoff is the score at or above which a file renders green even
// though anything at or above the threshold already passes.
const greenCutoff = 90

// WriteText renders the human-readable scan summary: one status line per
// file, error entries kept separate from results, and an aggregate footer.
func WriteText(w io.Writer, r *model.BatchReport) error {
	for _, result := range r.Results {
		var line string
		switch {
		case result.BiasDetected:
			line = ErrorStyle.Render(fmt.Sprintf("🔴 %s: score %.2f, %d flag(s)",
				result.File, result.Score, result.FlagCount))
		case result.Score < greenCutoff:
			line = WarningStyle.Render(fmt.Sprintf("🟡 %s: score %.2f, %d flag(s)",
				result.File, result.Score, result.FlagCount))
		default:
			line = SuccessStyle.Render(fmt.Sprintf("🟢 %s: score %.2f, %d flag(s)",
				result.File, result.Score, result.FlagCount))
		}
		if _, err := fmt.Fprintln(w, "  "+line); err != nil {
			return fmt.Errorf("failed to write result line: %w", err)
		}

		for _, m := range topMatches(result.Matches, 3) {
			detail := SubtleStyle.Render(fmt.Sprintf("· %s (%s, confidence %.2f)",
				m.PatternName, m.Tier, m.Confidence))
			if _, err := fmt.Fprintln(w, "      "+detail); err != nil {
				return fmt.Errorf("failed to write match line: %w", err)
			}
		}
	}

	for _, e := range r.Errors {
		line := ErrorStyle.Render(fmt.Sprintf("⚠ %s: %s", e.File, e.Error))
		if _, err := fmt.Fprintln(w, "  "+line); err != nil {
			return fmt.Errorf("failed to write error line: %w", err)
		}
	}

	divider := SubtleStyle.Render(strings.Repeat("─", 60))
	footer := fmt.Sprintf("%d scanned, %d flagged, avg score %.2f (domain %s, threshold %d)",
		r.ScoredFiles(), r.FlaggedFiles, r.AvgScore, r.Domain, r.Threshold)
	if r.Partial {
		footer += " [partial]"
	}
	if r.RequestedDomain != "" && r.RequestedDomain != r.Domain {
		footer += fmt.Sprintf(" (requested domain %q not recognized)", r.RequestedDomain)
	}

	if _, err := fmt.Fprintf(w, "%s\n  %s\n", divider, BoldStyle.Render(footer)); err != nil {
		return fmt.Errorf("failed to write footer: %w", err)
	}
	return nil
}

func topMatches(matches []model.Match, n int) []model.Match {
	if len(matches) <= n {
		return matches
	}
	return matches[:n]
}
