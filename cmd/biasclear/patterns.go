package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bws82/biasclear/internal/catalog"
	"github.com/bws82/biasclear/internal/model"
	"github.com/bws82/biasclear/internal/report"
)

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the bias pattern catalog",
		Long: `Display every registered bias pattern with its tier, detection kind,
severity, and domain scope.`,
		RunE: runPatterns,
	}

	cmd.Flags().String("tier", "", "only show one tier (ideological, psychological, institutional)")
	cmd.Flags().String("patterns-file", "", "YAML pattern file replacing the built-in catalog")

	return cmd
}

func runPatterns(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if path, _ := cmd.Flags().GetString("patterns-file"); path != "" {
		cat, err = catalog.LoadFile(path)
	}
	if err != nil {
		return err
	}

	tierFilter, _ := cmd.Flags().GetString("tier")
	if tierFilter != "" && !model.ValidTier(model.Tier(tierFilter)) {
		return fmt.Errorf("unknown tier %q", tierFilter)
	}

	fmt.Println(report.TitleStyle.Render("🔍 Bias Pattern Catalog")) //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			slog.Error("failed to flush table writer", "error", flushErr)
		}
	}()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("ID"),
		headerStyle.Render("Name"),
		headerStyle.Render("Tier"),
		headerStyle.Render("Kind"),
		headerStyle.Render("Severity"),
		headerStyle.Render("Domains")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	count := 0
	for _, p := range cat.Patterns() {
		if tierFilter != "" && string(p.Tier) != tierFilter {
			continue
		}
		count++

		domains := "all"
		if len(p.Domains) > 0 {
			parts := make([]string, len(p.Domains))
			for i, d := range p.Domains {
				parts[i] = string(d)
			}
			domains = strings.Join(parts, ",")
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f\t%s\n",
			p.ID, p.Name, p.Tier, p.Kind, p.Severity, domains); err != nil {
			return fmt.Errorf("failed to write pattern row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "\n%d pattern(s)\n", count); err != nil {
		return fmt.Errorf("failed to write footer: %w", err)
	}
	return nil
}
