package catalog

import (
	"fmt"
	"regexp"
	"time"

	"aware/internal/document"
)

// hiddenCharRE matches zero-width and other invisible characters that
// survive a copy-paste from chat interfaces.
var hiddenCharRE = regexp.MustCompile("[\u200B\u200C\u200D\uFEFF\u00A0\uFFFC]")

// Category H: document artifacts. H1-H3 depend on format metadata supplied
// by the ingestion collaborator and degrade to zero when it is absent.
func artifactMarkers() []Definition {
	return []Definition{
		{
			ID:              "H1",
			Category:        CatArtifacts,
			Name:            "Font Inconsistencies",
			Description:     "Abrupt font changes in the document.",
			MaxContribution: 40,
			Detect: func(doc *document.Document) Detection {
				if doc.Fonts == nil || doc.Fonts.Clusters == 0 {
					return Detection{}
				}
				return Detection{
					Count:    doc.Fonts.Clusters,
					Evidence: noteSnippet(fmt.Sprintf("Font change clusters: %d", doc.Fonts.Clusters)),
				}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 10
			},
		},
		{
			ID:              "H2",
			Category:        CatArtifacts,
			Name:            "Style Inconsistencies",
			Description:     "Mixed heading, list, or spacing styles.",
			MaxContribution: 25,
			Detect: func(doc *document.Document) Detection {
				if doc.Styles == nil {
					return Detection{}
				}
				count := 0
				evidence := make([]Snippet, 0, 3)
				if len(doc.Styles.HeadingStyles) > 1 {
					count++
					evidence = append(evidence, Snippet{Text: "Multiple heading styles detected."})
				}
				if len(doc.Styles.ListStyles) > 1 {
					count++
					evidence = append(evidence, Snippet{Text: "Multiple list styles detected."})
				}
				if len(doc.Styles.SpacingValues) > 1 {
					count++
					evidence = append(evidence, Snippet{Text: "Paragraph spacing inconsistencies detected."})
				}
				return Detection{Count: count, Evidence: evidence}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 5
			},
		},
		{
			ID:              "H3",
			Category:        CatArtifacts,
			Name:            "Metadata Timestamp Anomalies",
			Description:     "Suspicious metadata timing for large documents.",
			MaxContribution: 25,
			Detect:          detectMetadataAnomalies,
			Score: func(det Detection, _ *document.Document) float64 {
				return det.Value
			},
		},
		{
			ID:              "H5",
			Category:        CatArtifacts,
			Name:            "Clipboard Artifacts",
			Description:     "Unusual whitespace or hidden characters from copy-paste.",
			MaxContribution: 40,
			Detect: func(doc *document.Document) Detection {
				offsets := hiddenCharRE.FindAllStringIndex(doc.Text, -1)
				clusters := 0
				lastPos := -1
				for _, m := range offsets {
					if lastPos < 0 || m[0]-lastPos > 5 {
						clusters++
					}
					lastPos = m[0]
				}
				return Detection{Count: clusters, Evidence: snippetsAt(doc.Text, offsets)}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 10
			},
		},
	}
}

// detectMetadataAnomalies checks for revision counts and timestamps that do
// not plausibly belong to a large, human-authored document. The anomaly
// score is carried in Value because the two findings weigh differently.
func detectMetadataAnomalies(doc *document.Document) Detection {
	if doc.Meta == nil {
		return Detection{}
	}
	anomalies := 0
	score := 0.0
	evidence := make([]Snippet, 0, 2)
	if doc.WordCount > 5000 && doc.Meta.Revision != nil && *doc.Meta.Revision < 3 {
		anomalies++
		score += 20
		evidence = append(evidence, Snippet{
			Text: fmt.Sprintf("Low revision count (%d) for large doc.", *doc.Meta.Revision),
		})
	}
	if doc.WordCount > 5000 && doc.Meta.Created != nil && doc.Meta.Modified != nil &&
		doc.Meta.Modified.Before(doc.Meta.Created.Add(10*time.Minute)) {
		anomalies++
		score += 15
		evidence = append(evidence, Snippet{Text: "Modification time close to creation time."})
	}
	return Detection{Count: anomalies, Value: score, Evidence: evidence}
}
