package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bws82/biasclear/internal/common"
	"github.com/bws82/biasclear/internal/engine"
	"github.com/bws82/biasclear/internal/model"
	"github.com/bws82/biasclear/internal/report"
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [glob...]",
		Short: "Scan files for structural bias",
		Long: `Scan the files matched by the given glob patterns (default: **/*.md),
score each one for truth alignment, and report files below the threshold.

The scan itself never terminates the process early; with --fail-on-bias the
command exits non-zero when any file scores below the threshold, which is
what CI workflows hook into.`,
		RunE: runScan,
	}

	cmd.Flags().String("domain", "general", "weighting domain (general, legal, media, financial)")
	cmd.Flags().Int("threshold", 70, "truth score below which a file is flagged (0-100)")
	cmd.Flags().Bool("fail-on-bias", false, "exit non-zero when any file is flagged")
	cmd.Flags().String("format", "pretty", "output format (pretty, json)")
	cmd.Flags().Int("workers", 0, "concurrent workers (default: number of CPUs)")
	cmd.Flags().String("summary-file", "", "append a markdown job summary to this file")
	cmd.Flags().Bool("no-save", false, "do not record this run in scan history")
	cmd.Flags().String("patterns-file", "", "YAML pattern file replacing the built-in catalog")
	cmd.Flags().String("profiles-file", "", "YAML weighting profiles merged over the built-ins")

	_ = viper.BindPFlag("scan.domain", cmd.Flags().Lookup("domain"))
	_ = viper.BindPFlag("scan.threshold", cmd.Flags().Lookup("threshold"))
	_ = viper.BindPFlag("scan.fail_on_bias", cmd.Flags().Lookup("fail-on-bias"))
	_ = viper.BindPFlag("scan.workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("scan.patterns_file", cmd.Flags().Lookup("patterns-file"))
	_ = viper.BindPFlag("scan.profiles_file", cmd.Flags().Lookup("profiles-file"))

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	started := time.Now()

	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"**/*.md"}
	}

	files, err := resolveGlobs(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("No files matched pattern(s) %v\n", patterns) //nolint:forbidigo // User-facing output
		return nil
	}

	threshold := viper.GetInt("scan.threshold")
	if threshold < 0 || threshold > 100 {
		return common.NewUserError(fmt.Sprintf("threshold must be between 0 and 100, got %d", threshold), common.ErrInvalidConfig)
	}
	domainTag := domainFlag(viper.GetString("scan.domain"))

	eng, err := buildEngine()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")

	var bar *progressbar.ProgressBar
	if format == "pretty" {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Scanning files..."),
			progressbar.OptionClearOnFinish(),
		)
	}

	opts := engine.Options{
		Domain:    domainTag,
		Threshold: threshold,
		Workers:   viper.GetInt("scan.workers"),
	}
	if bar != nil {
		opts.OnFileDone = func(string) { _ = bar.Add(1) }
	}

	slog.Info("Starting scan",
		"files", len(files),
		"domain", domainTag,
		"threshold", threshold)

	batch, err := eng.RunFiles(ctx, files, opts)
	if err != nil {
		if errors.Is(err, common.ErrNoScannableInput) {
			return common.NewUserError("none of the matched files could be read as text", err)
		}
		return err
	}

	if err := writeOutput(cmd, format, batch); err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("summary-file"); path != "" {
		if err := appendSummary(path, batch); err != nil {
			return err
		}
	}

	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		saveHistory(ctx, started, batch)
	}

	if viper.GetBool("scan.fail_on_bias") && batch.AnyBelowThreshold {
		return common.NewUserError(
			fmt.Sprintf("%d file(s) scored below threshold (%d)", batch.FlaggedFiles, threshold), nil)
	}
	return nil
}

func buildEngine() (*engine.Engine, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	profiles, scoringCfg, err := loadProfiles()
	if err != nil {
		return nil, err
	}
	return engine.New(cat, profiles, scoringCfg)
}

func writeOutput(cmd *cobra.Command, format string, batch *model.BatchReport) error {
	switch format {
	case "json":
		return report.WriteJSON(cmd.OutOrStdout(), batch)
	case "pretty":
		return report.WriteText(cmd.OutOrStdout(), batch)
	default:
		return common.NewUserError(fmt.Sprintf("unknown output format %q (want pretty or json)", format), common.ErrInvalidConfig)
	}
}

func appendSummary(path string, batch *model.BatchReport) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open summary file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("failed to close summary file", "error", closeErr)
		}
	}()

	if _, err := f.WriteString(report.Markdown(batch) + "\n"); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// saveHistory records the run in the local database. History is best
// effort: failures are logged, never fatal to the scan.
func saveHistory(ctx context.Context, started time.Time, batch *model.BatchReport) {
	store, err := initStorage()
	if err != nil {
		slog.Warn("Skipping scan history", "error", err)
		return
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	if err := store.Migrate(ctx); err != nil {
		slog.Warn("Skipping scan history", "error", err)
		return
	}

	if _, err := store.SaveReport(ctx, started, batch); err != nil {
		slog.Warn("Failed to record scan history", "error", err)
	}
}
