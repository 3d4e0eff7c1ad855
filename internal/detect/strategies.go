package detect

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/bws82/biasclear/internal/model"
)

// regexpDetector matches a compiled regular expression, case-insensitive by
// default as the pattern set expects prose in arbitrary casing.
type regexpDetector struct {
	re *regexp.Regexp
}

func newRegexpDetector(expr string) (*regexpDetector, error) {
	if !strings.HasPrefix(expr, "(?i)") {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern regex: %w", err)
	}
	return &regexpDetector{re: re}, nil
}

func (d *regexpDetector) Detect(text string) []model.Span {
	idx := d.re.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}

	spans := make([]model.Span, 0, len(idx))
	for _, loc := range idx {
		spans = append(spans, model.Span{Start: loc[0], End: loc[1]})
	}
	return spans
}

// proximityDetector matches when an anchor term occurs within a word window
// of a companion term. One span is emitted per anchor occurrence that has at
// least one companion in range, covering both terms.
type proximityDetector struct {
	rule model.ProximityRule
}

func newProximityDetector(rule model.ProximityRule) *proximityDetector {
	return &proximityDetector{rule: rule}
}

func (d *proximityDetector) Detect(text string) []model.Span {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	var anchors, companions []termOccurrence
	for _, term := range d.rule.Anchors {
		anchors = append(anchors, findTerm(text, tokens, term)...)
	}
	for _, term := range d.rule.Companions {
		companions = append(companions, findTerm(text, tokens, term)...)
	}
	if len(anchors) == 0 || len(companions) == 0 {
		return nil
	}

	sort.Slice(anchors, func(i, j int) bool { return anchors[i].start < anchors[j].start })

	var spans []model.Span
	for _, a := range anchors {
		best := -1
		for i, c := range companions {
			dist := a.wordIndex - c.wordIndex
			if dist < 0 {
				dist = -dist
			}
			if dist <= d.rule.Window {
				if best < 0 || companions[i].start < companions[best].start {
					best = i
				}
			}
		}
		if best < 0 {
			continue
		}

		c := companions[best]
		span := model.Span{Start: a.start, End: a.end}
		if c.start < span.Start {
			span.Start = c.start
		}
		if c.end > span.End {
			span.End = c.end
		}
		spans = append(spans, span)
	}

	return dedupeSpans(spans)
}

// densityDetector fires once per document when its term set occurs more
// often than the configured rate per 1000 words. The span points at the
// first occurrence for attribution.
type densityDetector struct {
	rule model.DensityRule
}

func newDensityDetector(rule model.DensityRule) *densityDetector {
	return &densityDetector{rule: rule}
}

func (d *densityDetector) Detect(text string) []model.Span {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	var occs []termOccurrence
	for _, term := range d.rule.Terms {
		occs = append(occs, findTerm(text, tokens, term)...)
	}
	if len(occs) == 0 {
		return nil
	}

	rate := float64(len(occs)) / float64(len(tokens)) * 1000.0
	if rate < d.rule.PerThousand {
		return nil
	}

	sort.Slice(occs, func(i, j int) bool { return occs[i].start < occs[j].start })
	first := occs[0]
	return []model.Span{{Start: first.start, End: first.end}}
}

// dedupeSpans removes exact duplicates while keeping span order.
func dedupeSpans(spans []model.Span) []model.Span {
	if len(spans) < 2 {
		return spans
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})

	out := spans[:1]
	for _, s := range spans[1:] {
		last := out[len(out)-1]
		if s.Start == last.Start && s.End == last.End {
			continue
		}
		out = append(out, s)
	}
	return out
}
