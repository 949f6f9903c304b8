package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"aware/internal/document"
)

// aiFavoriteRE matches vocabulary that large models reach for far more often
// than human writers do.
var aiFavoriteRE = regexp.MustCompile(`(?i)\b(delve|delving|crucial|crucially|pivotal|multifaceted|nuanced|comprehensive|robust|leverage[sd]?|facilitate[sd]?|utilize[sd]?|landscape|paradigm|synergy|holistic|streamline[sd]?|foster[sd]?|underscores?|realm|encompasses?|intricate|notably|essentially|arguably|proliferation|unprecedented|simultaneously|inadvertently|perpetuate[sd]?|necessitat\w+|optimal|optimiz\w+|genuine|authentic|fundamental\w*|contemporary|methodolog\w+|empirical|demonstrate[sd]?|cohort|disparit\w+|discourse|evolve[sd]?|imperative[s]?|rigor)\b`)

var expandedForms = []string{
	"do not", "does not", "did not", "cannot", "will not", "would not",
	"should not", "could not", "is not", "are not", "have not", "has not",
	"it is", "that is",
}

var contractionForms = []string{
	"don't", "doesn't", "didn't", "can't", "won't", "wouldn't",
	"shouldn't", "couldn't", "isn't", "aren't", "haven't", "hasn't",
	"it's", "that's",
}

var (
	expandedFormRE    = compilePhraseWords(expandedForms)
	contractionFormRE = compilePhraseWords(contractionForms)
)

func compilePhraseWords(terms []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(terms))
	for i, t := range terms {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(t) + `\b`)
	}
	return res
}

// intensifierLexicon flags polish-style intensifiers that cluster in
// machine-edited prose.
var intensifierLexicon = map[string]struct{}{
	"very": {}, "extremely": {}, "utterly": {}, "absolutely": {},
	"perfectly": {}, "incredibly": {}, "deeply": {}, "completely": {},
	"remarkably": {}, "undeniably": {}, "profoundly": {}, "undoubtedly": {},
	"inherently": {}, "seamlessly": {}, "effortlessly": {},
}

// Category E: vocabulary choices.
func vocabularyMarkers() []Definition {
	return []Definition{
		{
			ID:              "E1",
			Category:        CatVocabulary,
			Name:            "AI-Favorite Words",
			Description:     "AI-favored vocabulary words detected.",
			MaxContribution: 70,
			Detect: func(doc *document.Document) Detection {
				offsets := aiFavoriteRE.FindAllStringIndex(doc.Text, -1)
				freq := make(map[string]int)
				for _, m := range offsets {
					freq[strings.ToLower(doc.Text[m[0]:m[1]])]++
				}
				det := Detection{Count: len(freq), Evidence: snippetsAt(doc.Text, offsets)}
				for _, n := range freq {
					if n >= 3 {
						det.Value = 1 // some flagged word recurs heavily
						break
					}
				}
				return det
			},
			// Bucketed by distinct flagged words; recurrence adds a flat 10.
			Score: func(det Detection, _ *document.Document) float64 {
				score := 0.0
				switch {
				case det.Count >= 9:
					score = 50
				case det.Count >= 6:
					score = 30
				case det.Count >= 3:
					score = 15
				}
				if det.Value > 0 {
					score += 10
				}
				return score
			},
		},
		{
			ID:              "E2",
			Category:        CatVocabulary,
			Name:            "Contraction Avoidance",
			Description:     "Preference for expanded forms over contractions.",
			MaxContribution: 25,
			Detect: func(doc *document.Document) Detection {
				lower := strings.ToLower(doc.Text)
				expanded := 0
				for _, re := range expandedFormRE {
					expanded += len(re.FindAllStringIndex(lower, -1))
				}
				contracted := 0
				for _, re := range contractionFormRE {
					contracted += len(re.FindAllStringIndex(lower, -1))
				}
				total := expanded + contracted
				det := Detection{Count: total}
				if total > 0 {
					det.Value = float64(expanded) / float64(total)
					det.Evidence = noteSnippet(fmt.Sprintf("Avoidance ratio %.2f", det.Value))
				}
				return det
			},
			// Needs more than 10 samples before the ratio is trusted.
			Score: func(det Detection, _ *document.Document) float64 {
				if det.Count <= 10 {
					return 0
				}
				switch {
				case det.Value > 0.9:
					return 25
				case det.Value > 0.8:
					return 15
				case det.Value > 0.7:
					return 5
				default:
					return 0
				}
			},
		},
		{
			ID:              "E3",
			Category:        CatVocabulary,
			Name:            "Vocabulary Sophistication Uniformity",
			Description:     "Low variability in paragraph word-length averages.",
			MaxContribution: 20,
			Detect: func(doc *document.Document) Detection {
				avgs := make([]float64, 0, len(doc.Paragraphs))
				for _, para := range doc.Paragraphs {
					words := document.SplitWords(para)
					if len(words) == 0 {
						continue
					}
					total := 0
					for _, w := range words {
						total += len(w)
					}
					avgs = append(avgs, float64(total)/float64(len(words)))
				}
				if len(avgs) < 2 {
					return Detection{}
				}
				_, sd := meanStd(avgs)
				det := Detection{Value: sd, Evidence: noteSnippet(fmt.Sprintf("Avg word length SD %.2f", sd))}
				if sd < 0.3 {
					det.Count = 1
				}
				return det
			},
			Score: func(det Detection, _ *document.Document) float64 {
				if det.Count == 0 {
					return 0
				}
				if det.Value < 0.2 {
					return 20
				}
				return 10
			},
		},
		{
			ID:              "E4",
			Category:        CatVocabulary,
			Name:            "Intensifier Overuse",
			Description:     "High density of polish-style intensifiers.",
			MaxContribution: 20,
			Detect: func(doc *document.Document) Detection {
				if doc.WordCount == 0 {
					return Detection{}
				}
				count := 0
				for _, w := range doc.Words {
					if _, ok := intensifierLexicon[strings.ToLower(w)]; ok {
						count++
					}
				}
				density := float64(count) / float64(doc.WordCount) * 1000
				det := Detection{Count: count, Value: density}
				if count > 0 {
					det.Evidence = noteSnippet(fmt.Sprintf("Intensifier density %.1f per 1k words", density))
				}
				return det
			},
			// Up to ~8 intensifiers per thousand words is ordinary prose.
			Score: func(det Detection, _ *document.Document) float64 {
				if det.Value <= 8 {
					return 0
				}
				return (det.Value - 8) * 2
			},
		},
	}
}
