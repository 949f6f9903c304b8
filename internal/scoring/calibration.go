// Package scoring turns raw marker detections and metrics into the final
// score: category aggregation, adaptive weighting, composite-pattern
// correlation, Bayesian and contextual adjustment, and conservative
// reconciliation.
package scoring

import (
	"fmt"
	"math"

	"aware/internal/catalog"
	"aware/internal/document"
)

// weightEpsilon is the tolerance for the weights-sum-to-one invariant.
const weightEpsilon = 1e-6

// Calibration is the immutable scoring configuration: category weights and
// caps, Bayesian priors, and the likelihood table. It is constructed once at
// startup and passed into every stage, never mutated.
type Calibration struct {
	Weights map[catalog.Category]float64
	Caps    map[catalog.Category]float64

	Priors       map[document.Type]float64 // percentages, 0-100
	DefaultPrior float64
}

// Default returns the canonical 10-category calibration. The weights, caps
// and priors are part of the output compatibility surface.
func Default() Calibration {
	return Calibration{
		Weights: map[catalog.Category]float64{
			"A": 0.30, "B": 0.15, "C": 0.15, "D": 0.05, "E": 0.10,
			"F": 0.08, "G": 0.07, "H": 0.05, "I": 0.03, "J": 0.02,
		},
		Caps: map[catalog.Category]float64{
			"A": 450, "B": 270, "C": 225, "D": 125, "E": 155,
			"F": 100, "G": 125, "H": 180, "I": 120, "J": 105,
		},
		Priors: map[document.Type]float64{
			document.TypeAcademic: 15,
			document.TypeBusiness: 25,
			document.TypeGeneral:  30,
		},
		DefaultPrior: 25,
	}
}

// Validate checks the structural invariants a custom calibration must hold.
func (c Calibration) Validate() error {
	sum := 0.0
	for _, cat := range catalog.Categories {
		w, ok := c.Weights[cat]
		if !ok {
			return fmt.Errorf("calibration: missing weight for category %s", cat)
		}
		if w < 0 {
			return fmt.Errorf("calibration: negative weight for category %s", cat)
		}
		if _, ok := c.Caps[cat]; !ok {
			return fmt.Errorf("calibration: missing cap for category %s", cat)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightEpsilon {
		return fmt.Errorf("calibration: weights sum to %.6f, want 1.0", sum)
	}
	for t, p := range c.Priors {
		if p <= 0 || p >= 100 {
			return fmt.Errorf("calibration: prior for %s out of (0,100): %.2f", t, p)
		}
	}
	return nil
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
