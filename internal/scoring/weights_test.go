package scoring

import (
	"math"
	"testing"

	"aware/internal/catalog"
)

func TestAdaptiveWeightsAlwaysNormalized(t *testing.T) {
	base := Default().Weights
	for _, academic := range []bool{false, true} {
		for _, edits := range []bool{false, true} {
			for _, timing := range []bool{false, true} {
				avail := Availability{Academic: academic, EditStream: edits, TimingData: timing}
				w := AdaptiveWeights(base, avail)
				sum := 0.0
				for _, v := range w {
					sum += v
				}
				if math.Abs(sum-1.0) > weightEpsilon {
					t.Fatalf("%+v: weights sum %.9f", avail, sum)
				}
			}
		}
	}
}

func TestAdaptiveWeightsDoesNotMutateBase(t *testing.T) {
	base := Default().Weights
	before := base["A"]
	AdaptiveWeights(base, Availability{Academic: true})
	if base["A"] != before {
		t.Fatalf("base weights mutated: A=%.3f, was %.3f", base["A"], before)
	}
}

func TestAcademicShiftsPunctuationToAcademic(t *testing.T) {
	base := Default().Weights
	w := AdaptiveWeights(base, Availability{Academic: true, EditStream: true, TimingData: true})
	if w["A"] >= base["A"] {
		t.Fatalf("A should shrink: %.3f -> %.3f", base["A"], w["A"])
	}
	if w["I"] <= base["I"] {
		t.Fatalf("I should grow: %.3f -> %.3f", base["I"], w["I"])
	}
}

func TestNoEditHistoryZeroesEditPatterns(t *testing.T) {
	w := AdaptiveWeights(Default().Weights, Availability{EditStream: false, TimingData: true})
	if w["J"] != 0 {
		t.Fatalf("J weight %.3f, want 0", w["J"])
	}
}

func TestNoTimingHalvesRevisionWeight(t *testing.T) {
	base := Default().Weights
	w := AdaptiveWeights(base, Availability{EditStream: true, TimingData: false})
	// C halves and E absorbs it; compare ratios since the map renormalizes.
	if ratio := w["C"] / w["E"]; ratio >= base["C"]/base["E"] {
		t.Fatalf("C/E ratio should fall, got %.3f", ratio)
	}
}

func TestDefaultCalibrationValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default calibration invalid: %v", err)
	}
}

func TestValidateRejectsBrokenWeights(t *testing.T) {
	cal := Default()
	cal.Weights[catalog.CatPunctuation] = 0.5
	if err := cal.Validate(); err == nil {
		t.Fatalf("expected validation failure for non-normal weights")
	}
}
