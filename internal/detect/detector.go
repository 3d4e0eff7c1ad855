// Package detect implements the tier matchers and the detection strategies
// behind each pattern kind. Detectors are pure functions of the document
// text: no I/O, no randomness, identical input yields identical spans.
package detect

import (
	"fmt"

	"github.com/bws82/biasclear/internal/model"
)

// Detector is the shared capability all pattern kinds implement. New
// strategies plug in here without touching the tier driver.
type Detector interface {
	// Detect returns every span of text the pattern matches, ordered by
	// start offset.
	Detect(text string) []model.Span
}

// NewDetector builds the detector for a pattern according to its kind.
// The catalog validates rule shape beforehand, so a failure here indicates
// a kind added to the model without a strategy.
func NewDetector(p model.Pattern) (Detector, error) {
	switch p.Kind {
	case model.KindRegexp:
		return newRegexpDetector(p.Regex)
	case model.KindProximity:
		return newProximityDetector(*p.Proximity), nil
	case model.KindDensity:
		return newDensityDetector(*p.Density), nil
	default:
		return nil, fmt.Errorf("no detector for matcher kind %q", p.Kind)
	}
}
