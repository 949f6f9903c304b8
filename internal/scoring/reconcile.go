package scoring

import (
	"math"
)

// Classification is the five-tier verdict derived from the final score.
type Classification string

const (
	ClassMinimal  Classification = "MINIMAL"
	ClassLow      Classification = "LOW"
	ClassModerate Classification = "MODERATE"
	ClassHigh     Classification = "HIGH"
	ClassCritical Classification = "CRITICAL"
)

var classRanks = map[Classification]int{
	ClassMinimal:  0,
	ClassLow:      1,
	ClassModerate: 2,
	ClassHigh:     3,
	ClassCritical: 4,
}

func rankOf(c Classification) int {
	return classRanks[c]
}

// Classify maps a 0-100 score onto the tier boundaries.
func Classify(score float64) Classification {
	switch {
	case score <= 15:
		return ClassMinimal
	case score <= 35:
		return ClassLow
	case score <= 55:
		return ClassModerate
	case score <= 75:
		return ClassHigh
	default:
		return ClassCritical
	}
}

// ConfidenceLabel buckets the blended confidence value.
type ConfidenceLabel string

const (
	ConfidenceHigh   ConfidenceLabel = "HIGH"
	ConfidenceMedium ConfidenceLabel = "MEDIUM"
	ConfidenceLow    ConfidenceLabel = "LOW"
)

// Verdict is the reconciled output of the three scoring paths.
type Verdict struct {
	FinalScore      float64         `json:"final_score"`
	Classification  Classification  `json:"classification"`
	Confidence      float64         `json:"confidence"`
	ConfidenceLabel ConfidenceLabel `json:"confidence_label"`
	Recommendation  string          `json:"recommendation"`
}

// AdjustedBase folds pattern bonuses and human-indicator reductions into the
// base score. A thin evidence base at a high score gets damped: fewer than
// three markers should not push a document past the midpoint on their own.
func AdjustedBase(base float64, report PatternReport, markersFound int) float64 {
	s := base + report.CompositeBonus + report.CorrelationBonus - report.HumanReduction
	if markersFound < 3 && s > 50 {
		s *= 0.8
	}
	return clampScore(s)
}

// Reconcile takes the conservative minimum of the three scoring paths and
// derives classification, floors, and confidence.
//
// Floors only ever raise the tier: three or more high-confidence punctuation
// markers floor at MODERATE, five or more at HIGH, and a triggered composite
// can floor higher still.
func Reconcile(baseAdj, bayesAdj, contextAdj float64, report PatternReport,
	wordCount, markersFound, highConfidence int) Verdict {

	final := clampScore(math.Min(baseAdj, math.Min(bayesAdj, contextAdj)))
	class := Classify(final)

	floor := report.Floor
	if highConfidence >= 5 && rankOf(ClassHigh) > rankOf(floor) {
		floor = ClassHigh
	} else if highConfidence >= 3 && rankOf(ClassModerate) > rankOf(floor) {
		floor = ClassModerate
	}
	if floor != "" && rankOf(floor) > rankOf(class) {
		class = floor
	}

	conf := confidence(baseAdj, bayesAdj, wordCount, markersFound)
	return Verdict{
		FinalScore:      round2(final),
		Classification:  class,
		Confidence:      round2(conf),
		ConfidenceLabel: confidenceLabel(conf),
		Recommendation:  recommendationFor(class),
	}
}

// confidence blends document length, agreement between the base and Bayesian
// paths, and evidence volume at 0.4/0.3/0.3.
func confidence(baseAdj, bayesAdj float64, wordCount, markersFound int) float64 {
	length := 1.0
	switch {
	case wordCount < 500:
		length = 0.7
	case wordCount < 1000:
		length = 0.85
	}
	agreement := 1 - math.Abs(baseAdj-bayesAdj)/100
	if agreement < 0 {
		agreement = 0
	}
	evidence := 0.7
	if markersFound >= 5 {
		evidence = 1.0
	}
	return 0.4*length + 0.3*agreement + 0.3*evidence
}

func confidenceLabel(c float64) ConfidenceLabel {
	switch {
	case c >= 0.9:
		return ConfidenceHigh
	case c >= 0.75:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func recommendationFor(c Classification) string {
	switch c {
	case ClassCritical:
		return "Very strong indicators of AI generation. Manual review strongly recommended before acting on this document."
	case ClassHigh:
		return "Multiple strong indicators present. Verify provenance with the author and review flagged passages."
	case ClassModerate:
		return "Some indicators present. Consider the context and review the flagged passages before drawing conclusions."
	case ClassLow:
		return "Few indicators present. Document is most likely human-written."
	default:
		return "No significant indicators. Document appears human-written."
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
