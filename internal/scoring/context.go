package scoring

import (
	"aware/internal/catalog"
	"aware/internal/document"
	"aware/internal/metrics"
)

// ContextualResult lists the de-biasing deltas applied on top of the
// base-adjusted score.
type ContextualResult struct {
	Adjustments []ContextAdjustment `json:"adjustments"`
	Adjusted    float64             `json:"adjusted_score"`
}

// ContextAdjustment is one named correction with its effect on the score.
type ContextAdjustment struct {
	Reason string  `json:"reason"`
	Factor float64 `json:"factor,omitempty"` // multiplicative, 0 when unused
	Delta  float64 `json:"delta,omitempty"`  // additive
}

// ContextualAdjust corrects for conditions that inflate marker counts in
// honest writing: short documents, academic register with clean citations,
// and genuinely difficult prose. Multiplicative factors apply before
// additive deltas.
func ContextualAdjust(base float64, doc *document.Document, results []catalog.Result, m metrics.Metrics) ContextualResult {
	out := ContextualResult{Adjusted: base}
	apply := func(adj ContextAdjustment) {
		if adj.Factor > 0 {
			out.Adjusted *= adj.Factor
		}
		out.Adjusted += adj.Delta
		out.Adjustments = append(out.Adjustments, adj)
	}

	switch {
	case doc.WordCount < 500:
		apply(ContextAdjustment{Reason: "short document", Factor: 0.7, Delta: -10})
	case doc.WordCount < 1000:
		apply(ContextAdjustment{Reason: "medium-length document", Factor: 0.85})
	}

	if doc.Type == document.TypeAcademic {
		apply(ContextAdjustment{Reason: "academic register", Delta: -5})
		if citationsWellFormed(results) {
			apply(ContextAdjustment{Reason: "well-formed citations", Delta: -3})
		}
	}

	if m.Readability.GunningFog > 15 {
		apply(ContextAdjustment{Reason: "technically dense prose", Delta: -8})
	}
	// Flesch goes negative on very dense prose; that is still difficult
	// reading, not a degenerate input, so no lower bound here.
	if m.Readability.FleschReadingEase < 30 {
		apply(ContextAdjustment{Reason: "difficult reading level", Delta: -5})
	}

	out.Adjusted = clampScore(out.Adjusted)
	return out
}

// citationsWellFormed holds when the citation-anomaly marker found at most
// one suspicious cluster.
func citationsWellFormed(results []catalog.Result) bool {
	for _, r := range results {
		if r.ID == "I1" {
			return r.Count <= 1
		}
	}
	return true
}
