package model

// DocumentResult is the outcome of analyzing one document. Results are
// immutable once produced.
type DocumentResult struct {
	TierScores   map[Tier]float64 `json:"tier_scores"`
	File         string           `json:"file"`
	Matches      []Match          `json:"flags"`
	Score        float64          `json:"truth_score"`
	FlagCount    int              `json:"flag_count"`
	BiasDetected bool             `json:"bias_detected"`
}

// FileError records a file that could not be read or decoded as text.
type FileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// BatchReport aggregates one scan run. Results keep input order; files that
// failed to decode appear in Errors instead.
type BatchReport struct {
	Domain            Domain           `json:"domain"`
	RequestedDomain   Domain           `json:"requested_domain"`
	Results           []DocumentResult `json:"report"`
	Errors            []FileError      `json:"errors"`
	AvgScore          float64          `json:"avg_score"`
	TotalFiles        int              `json:"total_files"`
	FlaggedFiles      int              `json:"flagged_files"`
	Threshold         int              `json:"threshold"`
	AnyBelowThreshold bool             `json:"any_below_threshold"`
	Partial           bool             `json:"partial,omitempty"`
}

// ScoredFiles returns the number of files that produced a result.
func (r *BatchReport) ScoredFiles() int {
	return len(r.Results)
}
