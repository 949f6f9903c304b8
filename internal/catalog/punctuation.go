package catalog

import (
	"regexp"

	"aware/internal/document"
)

var (
	emDashRE        = regexp.MustCompile(`—|--`)
	subSuperRE      = regexp.MustCompile(`[₀₁₂₃₄₅₆₇₈₉⁰¹²³⁴⁵⁶⁷⁸⁹ⁿ⁺⁻⁼⁽⁾]`)
	straightQuoteRE = regexp.MustCompile(`["']`)
	smartQuoteRE    = regexp.MustCompile(`[“”‘’]`)
)

// Category A: punctuation and typography. These are the high-confidence
// markers; category A hits drive the Bayesian likelihood table.
func punctuationMarkers() []Definition {
	return []Definition{
		{
			ID:              "A1",
			Category:        CatPunctuation,
			Name:            "Em-Dash Usage",
			Description:     "Excessive em-dash usage can indicate AI-generated text.",
			MaxContribution: 150,
			Detect: func(doc *document.Document) Detection {
				offsets := emDashRE.FindAllStringIndex(doc.Text, -1)
				return Detection{Count: len(offsets), Evidence: snippetsAt(doc.Text, offsets)}
			},
			// Tiered: up to 2 is normal prose, 3-5 is suspicious, beyond 5
			// scales steeply. Published constants; do not retune casually.
			Score: func(det Detection, _ *document.Document) float64 {
				switch {
				case det.Count <= 2:
					return 0
				case det.Count <= 5:
					return float64(det.Count-2) * 15
				default:
					return 45 + float64(det.Count-5)*20
				}
			},
		},
		{
			ID:              "A2",
			Category:        CatPunctuation,
			Name:            "Colon/Semicolon Density",
			Description:     "Unusually high colon/semicolon density in running text.",
			MaxContribution: 100,
			Detect: func(doc *document.Document) Detection {
				offsets := proseColonOffsets(doc.Text)
				return Detection{Count: len(offsets), Evidence: snippetsAt(doc.Text, offsets)}
			},
			Score: func(det Detection, doc *document.Document) float64 {
				if doc.WordCount == 0 {
					return 0
				}
				density := float64(det.Count) / float64(doc.WordCount) * 500
				excess := density - 1.0
				if excess < 0 {
					return 0
				}
				return excess * 10 * (float64(doc.WordCount) / 500)
			},
		},
		{
			ID:              "A3",
			Category:        CatPunctuation,
			Name:            "Unicode Sub/Superscripts",
			Description:     "Unicode sub/superscripts used instead of proper formatting.",
			MaxContribution: 150,
			Detect: func(doc *document.Document) Detection {
				offsets := subSuperRE.FindAllStringIndex(doc.Text, -1)
				return Detection{Count: len(offsets), Evidence: snippetsAt(doc.Text, offsets)}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 25
			},
		},
		{
			ID:              "A4",
			Category:        CatPunctuation,
			Name:            "Mixed Quotation Styles",
			Description:     "Mixed straight and smart quotes in the same document.",
			MaxContribution: 50,
			Detect: func(doc *document.Document) Detection {
				if !straightQuoteRE.MatchString(doc.Text) || !smartQuoteRE.MatchString(doc.Text) {
					return Detection{}
				}
				clusters := 0
				evidence := make([]Snippet, 0, snippetLimit)
				for i, para := range doc.Paragraphs {
					if straightQuoteRE.MatchString(para) && smartQuoteRE.MatchString(para) {
						clusters++
						if len(evidence) < snippetLimit {
							evidence = append(evidence, Snippet{Text: truncate(para, 160), Index: i})
						}
					}
				}
				return Detection{Count: clusters, Evidence: evidence}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 5
			},
		},
	}
}

// proseColonOffsets finds colons and semicolons in running text, skipping
// digit-adjacent uses (times, ratios, paths) that are normal in any prose.
func proseColonOffsets(text string) [][]int {
	var offsets [][]int
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != ':' && c != ';' {
			continue
		}
		if i > 0 && isDigit(text[i-1]) {
			continue
		}
		if i+1 < len(text) && (isDigit(text[i+1]) || text[i+1] == '/') {
			continue
		}
		offsets = append(offsets, []int{i, i + 1})
	}
	return offsets
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
