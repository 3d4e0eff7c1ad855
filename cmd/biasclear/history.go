package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bws82/biasclear/internal/report"
	"github.com/bws82/biasclear/internal/storage"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past scan runs",
		RunE:  runHistoryList,
	}
	cmd.Flags().Int("limit", 20, "maximum runs to show")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the per-file results of one run",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	})

	return cmd
}

func openHistory() (*storage.SQLiteStorage, func(), error) {
	store, err := initStorage()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open scan history: %w", err)
	}
	closeFn := func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}
	return store, closeFn, nil
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, closeFn, err := openHistory()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println(report.SubtleStyle.Render("No scan history yet. Run 'biasclear scan' first.")) //nolint:forbidigo // User-facing output
		return nil
	}

	fmt.Println(report.TitleStyle.Render("🔍 Scan History")) //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			slog.Error("failed to flush table writer", "error", flushErr)
		}
	}()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("ID"),
		headerStyle.Render("Started"),
		headerStyle.Render("Domain"),
		headerStyle.Render("Files"),
		headerStyle.Render("Flagged"),
		headerStyle.Render("Avg Score")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, run := range runs {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%.2f\n",
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			run.Domain,
			run.TotalFiles,
			run.FlaggedFiles,
			run.AvgScore); err != nil {
			return fmt.Errorf("failed to write run row: %w", err)
		}
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	runID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", args[0], err)
	}

	store, closeFn, err := openHistory()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	results, err := store.GetRunResults(ctx, runID)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Printf("No results recorded for run %d\n", runID) //nolint:forbidigo // User-facing output
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			slog.Error("failed to flush table writer", "error", flushErr)
		}
	}()

	for _, r := range results {
		verdict := report.SuccessStyle.Render("pass")
		if r.Flagged {
			verdict = report.ErrorStyle.Render("FLAGGED")
		}
		if _, err := fmt.Fprintf(w, "%s\t%.2f\t%d flag(s)\t%s\n",
			r.File, r.Score, r.MatchCount, verdict); err != nil {
			return fmt.Errorf("failed to write result row: %w", err)
		}
	}

	return nil
}
