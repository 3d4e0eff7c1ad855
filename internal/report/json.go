// Package report renders batch reports: machine-readable JSON for the
// calling workflow, styled terminal output for humans, and a markdown job
// summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bws82/biasclear/internal/model"
)

// WriteJSON serializes the report to w. Field names match the outputs the
// calling workflow consumes (total_files, flagged_files, avg_score, report).
func WriteJSON(w io.Writer, r *model.BatchReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// ReadJSON parses a report previously written with WriteJSON.
func ReadJSON(r io.Reader) (*model.BatchReport, error) {
	var report model.BatchReport
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &report, nil
}
