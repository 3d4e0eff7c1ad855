package report

import (
	"fmt"
	"strings"

	"github.com/bws82/biasclear/internal/model"
)

// Markdown builds a job summary suitable for appending to a CI step
// summary file: a metric table plus a table of flagged files.
func Markdown(r *model.BatchReport) string {
	var b strings.Builder

	b.WriteString("## 🔍 BiasClear Scan Results\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Files scanned | %d |\n", r.ScoredFiles())
	fmt.Fprintf(&b, "| Files flagged | %d |\n", r.FlaggedFiles)
	fmt.Fprintf(&b, "| Average truth score | %.2f/100 |\n", r.AvgScore)
	fmt.Fprintf(&b, "| Threshold | %d |\n", r.Threshold)
	fmt.Fprintf(&b, "| Domain | %s |\n", r.Domain)
	if len(r.Errors) > 0 {
		fmt.Fprintf(&b, "| Unreadable files | %d |\n", len(r.Errors))
	}
	b.WriteString("\n")

	flagged := make([]model.DocumentResult, 0, r.FlaggedFiles)
	for _, result := range r.Results {
		if result.BiasDetected {
			flagged = append(flagged, result)
		}
	}

	if len(flagged) > 0 {
		b.WriteString("### ⚠️ Flagged Files\n\n")
		b.WriteString("| File | Score | Flags |\n")
		b.WriteString("|------|-------|-------|\n")
		for _, f := range flagged {
			names := make([]string, 0, 3)
			for _, m := range topMatches(f.Matches, 3) {
				names = append(names, m.PatternName)
			}
			fmt.Fprintf(&b, "| `%s` | %.2f | %s |\n", f.File, f.Score, strings.Join(names, ", "))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("### ✅ All files passed\n\n")
	}

	return b.String()
}
