package model

// Span is a half-open byte range [Start, End) into the scanned document.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Match is one piece of evidence: a pattern occurrence at a location, with
// the deterministic confidence assigned by the tier matcher.
type Match struct {
	PatternID   string  `json:"pattern"`
	PatternName string  `json:"name"`
	Tier        Tier    `json:"tier"`
	Severity    float64 `json:"severity"`
	Span        Span    `json:"location"`
	Confidence  float64 `json:"confidence"`
}
