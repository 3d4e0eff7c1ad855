package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bws82/biasclear/internal/report"
	"github.com/bws82/biasclear/internal/tui"
)

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <report.json>",
		Short: "Browse a saved JSON report interactively",
		Long: `Open an interactive browser over a report produced with
'biasclear scan --format json', with a per-file drill-down into the
flagged patterns.`,
		Args: cobra.ExactArgs(1),
		RunE: runReview,
	}
}

func runReview(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open report: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("failed to close report file", "error", closeErr)
		}
	}()

	batch, err := report.ReadJSON(f)
	if err != nil {
		return err
	}

	return tui.Run(batch)
}
