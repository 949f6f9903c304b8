package catalog

import (
	"fmt"
	"regexp"

	"aware/internal/document"
)

var hedgingRE = []*regexp.Regexp{
	regexp.MustCompile(`(?i)It (is|should be) (important|worth|interesting) to (note|mention|observe) that`),
	regexp.MustCompile(`(?i)This (suggests|indicates|demonstrates) that`),
}

var formalPhraseRE = compilePhrases(
	"in light of the above",
	"taking into consideration",
	"with regard to",
	"in terms of",
	"it is evident that",
	"it can be observed that",
)

func compilePhrases(phrases ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(phrases))
	for i, p := range phrases {
		res[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p))
	}
	return res
}

var passiveRE = regexp.MustCompile(`(?i)\b(is|are|was|were|been|being)\s+\w+ed\b`)

// Category D: language patterns.
func languageMarkers() []Definition {
	return []Definition{
		{
			ID:              "D1",
			Category:        CatLanguage,
			Name:            "Hedging Language Overuse",
			Description:     "Overuse of hedging phrases.",
			MaxContribution: 40,
			Detect: func(doc *document.Document) Detection {
				count := 0
				evidence := make([]Snippet, 0, snippetLimit)
				for _, re := range hedgingRE {
					offsets := re.FindAllStringIndex(doc.Text, -1)
					count += len(offsets)
					for _, s := range snippetsAt(doc.Text, offsets) {
						if len(evidence) < snippetLimit {
							evidence = append(evidence, s)
						}
					}
				}
				return Detection{Count: count, Evidence: evidence}
			},
			Score: func(det Detection, doc *document.Document) float64 {
				expected := float64(doc.WordCount) / 1000 * 2
				excess := float64(det.Count) - expected
				if excess < 0 {
					return 0
				}
				return excess * 4
			},
		},
		{
			ID:              "D2",
			Category:        CatLanguage,
			Name:            "Overly Formal Transitions",
			Description:     "Formal transition phrases associated with AI writing.",
			MaxContribution: 30,
			Detect: func(doc *document.Document) Detection {
				count := 0
				evidence := make([]Snippet, 0, snippetLimit)
				for _, re := range formalPhraseRE {
					offsets := re.FindAllStringIndex(doc.Text, -1)
					count += len(offsets)
					for _, s := range snippetsAt(doc.Text, offsets) {
						if len(evidence) < snippetLimit {
							evidence = append(evidence, s)
						}
					}
				}
				return Detection{Count: count, Evidence: evidence}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 3
			},
		},
		{
			ID:              "D3",
			Category:        CatLanguage,
			Name:            "Passive Voice Density",
			Description:     "High passive voice density.",
			MaxContribution: 25,
			Detect: func(doc *document.Document) Detection {
				offsets := passiveRE.FindAllStringIndex(doc.Text, -1)
				det := Detection{Count: len(offsets), Evidence: snippetsAt(doc.Text, offsets)}
				if doc.WordCount > 0 {
					det.Value = float64(len(offsets)) / float64(doc.WordCount) * 100
				}
				return det
			},
			// Above 25% of words participating in passive constructions the
			// excess percentage scores directly.
			Score: func(det Detection, _ *document.Document) float64 {
				if det.Value <= 25 {
					return 0
				}
				return det.Value - 25
			},
		},
		{
			ID:              "D4",
			Category:        CatLanguage,
			Name:            "Sentence Length Uniformity",
			Description:     "Unusually uniform sentence lengths.",
			MaxContribution: 30,
			Detect: func(doc *document.Document) Detection {
				lengths := sentenceWordLengths(doc.Sentences)
				if len(lengths) < 2 {
					return Detection{}
				}
				_, sd := meanStd(lengths)
				det := Detection{Value: sd}
				if sd < 5 {
					det.Count = 1
					det.Evidence = noteSnippet(fmt.Sprintf("Sentence length SD %.2f", sd))
				}
				return det
			},
			Score: func(det Detection, _ *document.Document) float64 {
				if det.Count == 0 {
					return 0
				}
				return (5 - det.Value) * 10
			},
		},
	}
}

func sentenceWordLengths(sentences []string) []float64 {
	lengths := make([]float64, 0, len(sentences))
	for _, s := range sentences {
		if n := document.CountWords(s); n > 0 {
			lengths = append(lengths, float64(n))
		}
	}
	return lengths
}
