// Package engine orchestrates the analysis pipeline: tier matchers, domain
// weighting, scoring, and batch aggregation over a file set.
package engine

import (
	"context"
	"log/slog"
	"math"
	"os"
	"runtime"
	"sort"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/bws82/biasclear/internal/catalog"
	"github.com/bws82/biasclear/internal/common"
	"github.com/bws82/biasclear/internal/detect"
	"github.com/bws82/biasclear/internal/domain"
	"github.com/bws82/biasclear/internal/model"
	"github.com/bws82/biasclear/internal/scorer"
)

// Engine runs the analysis pipeline. All state is immutable after New, so
// one engine serves any number of concurrent scans.
type Engine struct {
	catalog  *catalog.Catalog
	profiles *domain.Profiles
	scorer   *scorer.Scorer
	matchers []*detect.TierMatcher
}

// Input is one document to analyze. Err carries a read failure from the
// caller; such inputs become error entries rather than results.
type Input struct {
	Err  error
	Path string
	Text string
}

// Options configures one batch run.
type Options struct {
	// OnFileDone, if set, is called after each file completes (from worker
	// goroutines; must be safe for concurrent use).
	OnFileDone func(path string)
	Domain     model.Domain
	Threshold  int
	Workers    int
}

// Default assembles an engine from the built-in catalog, profiles, and
// scorer calibration.
func Default() (*Engine, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	return New(cat, domain.Defaults(), scorer.DefaultConfig())
}

// New assembles an engine from a validated catalog, weighting profiles, and
// scorer configuration.
func New(cat *catalog.Catalog, profiles *domain.Profiles, scoringCfg scorer.Config) (*Engine, error) {
	matchers, err := detect.NewTierMatchers(cat.Tier)
	if err != nil {
		return nil, err
	}

	sc, err := scorer.New(scoringCfg)
	if err != nil {
		return nil, err
	}

	return &Engine{
		catalog:  cat,
		profiles: profiles,
		scorer:   sc,
		matchers: matchers,
	}, nil
}

// AnalyzeText runs the full per-document pipeline and returns an immutable
// result. The threshold decides the flagged verdict.
func (e *Engine) AnalyzeText(path, text string, domainTag model.Domain, threshold int) model.DocumentResult {
	profile, _ := e.profiles.For(domainTag)
	applied := profile.Domain()

	var matches []model.Match
	for _, m := range e.matchers {
		matches = append(matches, m.Scan(text)...)
	}

	// Patterns scoped to other domains carry no weight here.
	weighted := make([]scorer.WeightedMatch, 0, len(matches))
	kept := make([]model.Match, 0, len(matches))
	for _, match := range matches {
		p, ok := e.catalog.Get(match.PatternID)
		if !ok || !p.AppliesTo(applied) {
			continue
		}
		kept = append(kept, match)
		weighted = append(weighted, scorer.WeightedMatch{Match: match, Weight: profile.Weight(match)})
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Span.Start != kept[j].Span.Start {
			return kept[i].Span.Start < kept[j].Span.Start
		}
		return kept[i].PatternID < kept[j].PatternID
	})

	scored := e.scorer.Score(weighted)
	score := round2(scored.Score)

	tierScores := make(map[model.Tier]float64, len(scored.TierScores))
	for tier, sub := range scored.TierScores {
		tierScores[tier] = round2(sub)
	}

	return model.DocumentResult{
		File:         path,
		Score:        score,
		BiasDetected: score < float64(threshold),
		FlagCount:    len(kept),
		TierScores:   tierScores,
		Matches:      kept,
	}
}

// Run analyzes every input independently across a worker pool and joins the
// results into a batch report. A single undecodable input becomes an error
// entry; the batch is fatal only when nothing at all could be scanned. On
// context cancellation dispatching stops, in-flight work completes, and the
// partial report is returned with Partial set.
func (e *Engine) Run(ctx context.Context, inputs []Input, opts Options) (*model.BatchReport, error) {
	if len(inputs) == 0 {
		return nil, common.ErrNoScannableInput
	}

	profile, known := e.profiles.For(opts.Domain)
	if !known {
		slog.Warn("Unknown domain tag, falling back to general profile",
			"requested", opts.Domain)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*model.DocumentResult, len(inputs))
	fileErrs := make([]*model.FileError, len(inputs))

	g := new(errgroup.Group)
	g.SetLimit(workers)

	partial := false
dispatch:
	for i, input := range inputs {
		select {
		case <-ctx.Done():
			partial = true
			slog.Info("Batch canceled, finishing in-flight files",
				"dispatched", i, "total", len(inputs))
			break dispatch
		default:
		}

		i, input := i, input
		g.Go(func() error {
			defer func() {
				if opts.OnFileDone != nil {
					opts.OnFileDone(input.Path)
				}
			}()

			if input.Err != nil {
				decErr := &common.DecodeError{File: input.Path, Err: input.Err}
				fileErrs[i] = &model.FileError{File: input.Path, Error: decErr.Error()}
				return nil
			}
			if !utf8.ValidString(input.Text) {
				decErr := &common.DecodeError{File: input.Path}
				fileErrs[i] = &model.FileError{File: input.Path, Error: decErr.Error()}
				return nil
			}

			result := e.AnalyzeText(input.Path, input.Text, opts.Domain, opts.Threshold)
			results[i] = &result
			return nil
		})
	}

	// Join barrier: the report is assembled only after every worker is done.
	_ = g.Wait()

	report := &model.BatchReport{
		TotalFiles:      len(inputs),
		Domain:          profile.Domain(),
		RequestedDomain: opts.Domain,
		Threshold:       opts.Threshold,
		Partial:         partial,
		Results:         make([]model.DocumentResult, 0, len(inputs)),
		Errors:          make([]model.FileError, 0),
	}

	var sum float64
	for i := range inputs {
		if fileErrs[i] != nil {
			report.Errors = append(report.Errors, *fileErrs[i])
			continue
		}
		if results[i] == nil {
			continue // never dispatched (canceled)
		}
		r := *results[i]
		report.Results = append(report.Results, r)
		sum += r.Score
		if r.BiasDetected {
			report.FlaggedFiles++
			report.AnyBelowThreshold = true
		}
	}

	if len(report.Results) == 0 && !partial {
		return nil, common.ErrNoScannableInput
	}

	if n := len(report.Results); n > 0 {
		report.AvgScore = round2(sum / float64(n))
	}

	return report, nil
}

// RunFiles reads the given paths from disk and runs the batch over them.
// Unreadable files flow through as error inputs so the report records them.
func (e *Engine) RunFiles(ctx context.Context, paths []string, opts Options) (*model.BatchReport, error) {
	inputs := make([]Input, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			inputs = append(inputs, Input{Path: path, Err: err})
			continue
		}
		inputs = append(inputs, Input{Path: path, Text: string(data)})
	}
	return e.Run(ctx, inputs, opts)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
