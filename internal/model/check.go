package model

import "strings"

// Conclusion is the final state attached to a check run.
type Conclusion string

const (
	// ConclusionSuccess means every test passed.
	ConclusionSuccess Conclusion = "success"
	// ConclusionFailure means at least one test failed.
	ConclusionFailure Conclusion = "failure"
	// ConclusionNeutral is used when the outcome is not derived from results.
	ConclusionNeutral Conclusion = "neutral"
)

// ConclusionFor derives the check conclusion from aggregate counts.
func ConclusionFor(counts AggregateCounts) Conclusion {
	if counts.Failed == 0 {
		return ConclusionSuccess
	}

	return ConclusionFailure
}

// ParseConclusion maps a string to a Conclusion, falling back to neutral.
func ParseConclusion(value string) Conclusion {
	conclusion := Conclusion(strings.ToLower(strings.TrimSpace(value)))

	switch conclusion {
	case ConclusionSuccess, ConclusionFailure, ConclusionNeutral:
		return conclusion
	}

	return ConclusionNeutral
}
