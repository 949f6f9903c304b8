package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"aware/internal/document"
)

var (
	authorYearRE  = regexp.MustCompile(`\([A-Z][A-Za-z]+,?\s+\d{4}\)`)
	numericCiteRE = regexp.MustCompile(`\[\d+\]`)
	etAlRE        = regexp.MustCompile(`(?i)\bet al\.`)
	roundYearRE   = regexp.MustCompile(`\b(2020|2021|2022)\b`)
	resultsHeadRE = regexp.MustCompile(`(?i)^\s*(results|findings)\b`)
	anyDigitRE    = regexp.MustCompile(`\d`)
)

var methodologyPhrases = []string{
	"standard procedures were followed",
	"appropriate statistical methods",
	"conventional techniques",
	"established protocols",
}

var methodologyRE = compilePhrases(methodologyPhrases...)

var qualitativeResultRE = compilePhrases(
	"showed significant improvement",
	"demonstrated positive results",
	"indicated a trend",
)

// Category I: academic integrity signals.
func academicMarkers() []Definition {
	return []Definition{
		{
			ID:              "I1",
			Category:        CatAcademic,
			Name:            "Citation Anomalies",
			Description:     "Suspicious or inconsistent citation patterns.",
			MaxContribution: 45,
			Detect: func(doc *document.Document) Detection {
				authorYear := len(authorYearRE.FindAllStringIndex(doc.Text, -1))
				numeric := len(numericCiteRE.FindAllStringIndex(doc.Text, -1))
				etAl := len(etAlRE.FindAllStringIndex(doc.Text, -1))
				roundYears := len(roundYearRE.FindAllStringIndex(doc.Text, -1))

				clusters := 0
				evidence := make([]Snippet, 0, 3)
				if authorYear > 0 && numeric > 0 {
					clusters++
					evidence = append(evidence, Snippet{Text: "Mixed citation styles detected."})
				}
				if roundYears >= 3 {
					clusters++
					evidence = append(evidence, Snippet{Text: fmt.Sprintf("Round-year citations: %d", roundYears)})
				}
				if etAl >= 3 {
					clusters++
					evidence = append(evidence, Snippet{Text: fmt.Sprintf("Et al. usage: %d", etAl)})
				}
				return Detection{Count: clusters, Evidence: evidence}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 15
			},
		},
		{
			ID:              "I2",
			Category:        CatAcademic,
			Name:            "Generic Methodology",
			Description:     "Vague methodology language without specific details.",
			MaxContribution: 20,
			Detect: func(doc *document.Document) Detection {
				count := 0
				evidence := make([]Snippet, 0, snippetLimit)
				for i, re := range methodologyRE {
					hits := re.FindAllStringIndex(doc.Text, -1)
					count += len(hits)
					if len(hits) > 0 && len(evidence) < snippetLimit {
						evidence = append(evidence, Snippet{Text: methodologyPhrases[i]})
					}
				}
				return Detection{Count: count, Evidence: evidence}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				switch {
				case det.Count >= 4:
					return 20
				case det.Count >= 2:
					return 10
				default:
					return 0
				}
			},
		},
		{
			ID:              "I3",
			Category:        CatAcademic,
			Name:            "Results Without Data",
			Description:     "Results described qualitatively without quantitative data.",
			MaxContribution: 15,
			Detect: func(doc *document.Document) Detection {
				headIdx := -1
				for idx, para := range doc.Paragraphs {
					if resultsHeadRE.MatchString(para) {
						headIdx = idx
						break
					}
				}
				if headIdx < 0 {
					return Detection{}
				}
				end := headIdx + 5
				if end > len(doc.Paragraphs) {
					end = len(doc.Paragraphs)
				}
				section := strings.Join(doc.Paragraphs[headIdx:end], " ")
				if anyDigitRE.MatchString(section) {
					return Detection{}
				}
				for _, re := range qualitativeResultRE {
					if re.MatchString(section) {
						return Detection{
							Count:    1,
							Evidence: []Snippet{{Text: truncate(doc.Paragraphs[headIdx], 160), Index: headIdx}},
						}
					}
				}
				return Detection{}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 15
			},
		},
	}
}
