package classifier

import (
	"fmt"
	"math"
)

// Severity is a confidence-derived display label, not a model output.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Result holds the outcome of one classification.
type Result struct {
	ClassIndex int
	Confidence float64 // percentage in [0, 100], rounded to 2 decimals
	Severity   Severity
}

// Top selects the highest-probability class and derives confidence and
// severity from it.
func Top(probs []float32) (Result, error) {
	if len(probs) == 0 {
		return Result{}, fmt.Errorf("empty probability vector")
	}

	maxIdx := 0
	maxVal := probs[0]
	for i, v := range probs {
		if v > maxVal {
			maxVal = v
			maxIdx = i
		}
	}

	confidence := math.Round(float64(maxVal)*100*100) / 100
	return Result{
		ClassIndex: maxIdx,
		Confidence: confidence,
		Severity:   SeverityFor(confidence),
	}, nil
}

// SeverityFor maps a confidence percentage to a severity band. Lower bounds
// are inclusive: >= 80 High, >= 50 Medium, otherwise Low.
func SeverityFor(confidence float64) Severity {
	switch {
	case confidence >= 80:
		return SeverityHigh
	case confidence >= 50:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
