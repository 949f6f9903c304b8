package scoring

import (
	"aware/internal/catalog"
)

// CategoryScore is the per-category aggregation of marker results. Capped
// serializes as "score": it is the category score consumers read.
type CategoryScore struct {
	Category catalog.Category `json:"category"`
	Raw      float64          `json:"raw_score"`
	Capped   float64          `json:"score"`
	Cap      float64          `json:"cap"`
	Weight   float64          `json:"weight"`
	Markers  int              `json:"markers_found"`
	Results  []catalog.Result `json:"markers"`
}

// Aggregate sums marker results into per-category scores, applying the
// calibration caps. Synthetic metric markers carry their category like any
// catalogue marker, so they fold in here with no special casing.
func Aggregate(results []catalog.Result, cal Calibration, weights map[catalog.Category]float64) map[catalog.Category]*CategoryScore {
	out := make(map[catalog.Category]*CategoryScore, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		out[cat] = &CategoryScore{
			Category: cat,
			Cap:      cal.Caps[cat],
			Weight:   weights[cat],
		}
	}
	for _, r := range results {
		cs, ok := out[r.Category]
		if !ok {
			continue
		}
		if r.Score > 0 {
			cs.Markers++
		}
		cs.Raw += r.Score
		cs.Results = append(cs.Results, r)
	}
	for _, cs := range out {
		cs.Capped = cs.Raw
		if cs.Capped > cs.Cap {
			cs.Capped = cs.Cap
		}
	}
	return out
}

// BaseScore normalizes the weighted category scores to 0-100: the weighted
// sum of capped scores over the weighted sum of caps. Categories with zero
// weight drop out of both numerator and denominator.
func BaseScore(categories map[catalog.Category]*CategoryScore) float64 {
	var got, max float64
	for _, cs := range categories {
		if cs.Weight <= 0 {
			continue
		}
		got += cs.Capped * cs.Weight
		max += cs.Cap * cs.Weight
	}
	if max <= 0 {
		return 0
	}
	return clampScore(got / max * 100)
}

// MarkersFound counts the markers that contributed a positive score.
func MarkersFound(results []catalog.Result) int {
	n := 0
	for _, r := range results {
		if r.Score > 0 {
			n++
		}
	}
	return n
}

// HighConfidenceCount counts positive-scoring markers in the punctuation
// category, the strongest single-marker evidence the catalogue has.
func HighConfidenceCount(results []catalog.Result) int {
	n := 0
	for _, r := range results {
		if r.Category == catalog.CatPunctuation && r.Score > 0 {
			n++
		}
	}
	return n
}
