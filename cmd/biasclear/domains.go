package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bws82/biasclear/internal/model"
	"github.com/bws82/biasclear/internal/report"
)

func domainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "Show domain weighting profiles",
		Long: `Display the multiplier table of every weighting domain. Multipliers
scale pattern severity; entries absent from a table default to 1.0.`,
		RunE: runDomains,
	}
}

func runDomains(_ *cobra.Command, _ []string) error {
	profiles, _, err := loadProfiles()
	if err != nil {
		return err
	}

	fmt.Println(report.TitleStyle.Render("🔍 Domain Weighting Profiles")) //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			slog.Error("failed to flush table writer", "error", flushErr)
		}
	}()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("Domain"),
		headerStyle.Render("Scope"),
		headerStyle.Render("Target"),
		headerStyle.Render("Multiplier")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, tag := range profiles.Domains() {
		table, ok := profiles.Table(tag)
		if !ok {
			continue
		}

		if len(table.Tiers) == 0 && len(table.Patterns) == 0 {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", tag, "-", "-", "1.0 (neutral)"); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
			continue
		}

		for _, tier := range model.Tiers() {
			if mult, exists := table.Tiers[tier]; exists {
				if _, err := fmt.Fprintf(w, "%s\ttier\t%s\t%.2f\n", tag, tier, mult); err != nil {
					return fmt.Errorf("failed to write row: %w", err)
				}
			}
		}
		for id, mult := range table.Patterns {
			if _, err := fmt.Fprintf(w, "%s\tpattern\t%s\t%.2f\n", tag, id, mult); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	return nil
}
