package scoring

import (
	"aware/internal/catalog"
	"aware/internal/document"
)

// Availability records which input channels the document actually carried.
// Derived once from the document, before scoring.
type Availability struct {
	Academic   bool
	EditStream bool
	TimingData bool
}

// AvailabilityFor inspects a document for the channels the adaptive
// weighting cares about.
func AvailabilityFor(doc *document.Document) Availability {
	return Availability{
		Academic:   doc.Type == document.TypeAcademic,
		EditStream: doc.HasEditHistory(),
		TimingData: doc.HasTimingData(),
	}
}

// AdaptiveWeights derives the effective category weights from the base
// calibration and the document's availability flags. It is a pure function:
// the base map is never mutated, and the result always sums to 1.0 within
// tolerance.
//
// Adjustments, applied in order before renormalization:
//   - academic documents shift 0.05 from punctuation (A) to academic
//     patterns (I)
//   - no edit stream: edit-pattern weight (J) moves entirely to A
//   - no timing data: half the revision weight (C) moves to vocabulary (E)
func AdaptiveWeights(base map[catalog.Category]float64, avail Availability) map[catalog.Category]float64 {
	w := make(map[catalog.Category]float64, len(base))
	for cat, v := range base {
		w[cat] = v
	}

	if avail.Academic {
		shift := 0.05
		if w["A"] < shift {
			shift = w["A"]
		}
		w["A"] -= shift
		w["I"] += shift
	}
	if !avail.EditStream {
		w["A"] += w["J"]
		w["J"] = 0
	}
	if !avail.TimingData {
		half := w["C"] / 2
		w["C"] -= half
		w["E"] += half
	}

	sum := 0.0
	for _, v := range w {
		sum += v
	}
	if sum > 0 {
		for cat := range w {
			w[cat] /= sum
		}
	}
	return w
}
