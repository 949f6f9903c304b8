package scoring

import (
	"aware/internal/catalog"
	"aware/internal/document"
)

// MarkerDelta is the per-marker difference between the original and edited
// versions of a document.
type MarkerDelta struct {
	ID             string  `json:"id"`
	OriginalCount  int     `json:"original_count"`
	EditedCount    int     `json:"edited_count"`
	Introduced     int     `json:"introduced"`
	AdjustedScore  float64 `json:"adjusted_score"`
	OriginalScore  float64 `json:"original_score"`
	EditedScore    float64 `json:"edited_score"`
	ScoreReduction float64 `json:"score_reduction"`
}

// CompareVersions rescores each marker against only the occurrences the
// editing session introduced. Markers already present in the original are
// the original author's habits, not evidence about the edit: the introduced
// count is max(0, edited - original), and the marker is rescored at that
// count against the edited document.
func CompareVersions(cat *catalog.Catalog, original, edited []catalog.Result, editedDoc *document.Document) ([]catalog.Result, []MarkerDelta) {
	origByID := catalog.ByID(original)

	rescored := make([]catalog.Result, 0, len(edited))
	deltas := make([]MarkerDelta, 0, len(edited))
	for _, er := range edited {
		or, had := origByID[er.ID]
		if !had {
			rescored = append(rescored, er)
			continue
		}

		introduced := er.Count - or.Count
		if introduced < 0 {
			introduced = 0
		}
		var adj catalog.Result
		if introduced == 0 {
			// Nothing introduced: the marker is the original author's
			// style and must not score at all, so the running value is
			// zeroed too, not just the count.
			adj = er
			adj.Count = 0
			adj.Value = 0
			adj.Score = 0
			adj.Evidence = nil
		} else {
			det := catalog.Detection{Count: introduced, Value: er.Value, Evidence: er.Evidence}
			var ok bool
			adj, ok = cat.Rescore(er.ID, det, editedDoc)
			if !ok {
				rescored = append(rescored, er)
				continue
			}
		}

		deltas = append(deltas, MarkerDelta{
			ID:             er.ID,
			OriginalCount:  or.Count,
			EditedCount:    er.Count,
			Introduced:     introduced,
			AdjustedScore:  adj.Score,
			OriginalScore:  or.Score,
			EditedScore:    er.Score,
			ScoreReduction: er.Score - adj.Score,
		})
		rescored = append(rescored, adj)
	}
	return rescored, deltas
}
