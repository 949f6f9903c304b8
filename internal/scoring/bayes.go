package scoring

import (
	"aware/internal/document"
)

// BayesianResult carries the posterior computation alongside the adjusted
// score so callers can surface the intermediate probabilities.
type BayesianResult struct {
	Prior      float64 `json:"prior_probability"`
	Posterior  float64 `json:"posterior_probability"`
	Likelihood float64 `json:"likelihood_ratio"`
	Adjusted   float64 `json:"adjusted_score"`
}

// likelihoodRatio maps a high-confidence marker count onto
// P(evidence|AI) / P(evidence|human). Zero markers is treated as
// uninformative rather than exculpatory: ratio 1, posterior equals prior.
func likelihoodRatio(highConfidence int) float64 {
	switch {
	case highConfidence >= 5:
		return 95.0 / 5.0
	case highConfidence >= 3:
		return 80.0 / 15.0
	case highConfidence >= 1:
		return 60.0 / 35.0
	default:
		return 1.0
	}
}

// BayesianAdjust reweights the base-adjusted score by how much the
// high-confidence evidence moved the document-type prior. The mapping is
// multiplicative (posterior/prior), monotone in the marker count, and
// clamped to the score range.
func BayesianAdjust(base float64, docType document.Type, highConfidence int, cal Calibration) BayesianResult {
	prior, ok := cal.Priors[docType]
	if !ok {
		prior = cal.DefaultPrior
	}
	p := prior / 100

	ratio := likelihoodRatio(highConfidence)
	// Odds-form Bayes: posterior odds = likelihood ratio x prior odds.
	odds := ratio * p / (1 - p)
	posterior := odds / (1 + odds)

	adjusted := base
	if p > 0 {
		adjusted = clampScore(base * posterior / p)
	}
	return BayesianResult{
		Prior:      prior,
		Posterior:  posterior * 100,
		Likelihood: ratio,
		Adjusted:   adjusted,
	}
}
