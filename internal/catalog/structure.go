package catalog

import (
	"regexp"
	"strings"

	"aware/internal/document"
)

var transitionWords = []string{
	"furthermore", "moreover", "additionally", "consequently",
	"subsequently", "nevertheless", "nonetheless", "correspondingly",
}

var enumerationWords = []string{
	"firstly", "first", "secondly", "second", "thirdly", "third",
	"fourthly", "fourth", "finally", "lastly",
}

var spacingAnomalyRE = []*regexp.Regexp{
	regexp.MustCompile(`\(\s+\S`),     // space after opening parenthesis
	regexp.MustCompile(`\S\s+\)`),     // space before closing parenthesis
	regexp.MustCompile(`\s—\s`),       // spaces around em-dash
	regexp.MustCompile(`\d\s+–\s+\d`), // spaces around en-dash in ranges
	regexp.MustCompile(`\w\s+/\s+\w`), // spaces around slash
}

var midSentenceBreakRE = regexp.MustCompile(`[^\n]\n[a-z]`)

// Category B: structural formatting habits.
func structureMarkers() []Definition {
	return []Definition{
		{
			ID:              "B1",
			Category:        CatStructure,
			Name:            "Transitional Word Patterns",
			Description:     "AI-style transitional phrases at sentence starts.",
			MaxContribution: 80,
			Detect: func(doc *document.Document) Detection {
				count := 0
				evidence := make([]Snippet, 0, snippetLimit)
				for idx, sent := range doc.Sentences {
					lower := strings.ToLower(strings.TrimSpace(sent))
					for _, word := range transitionWords {
						if strings.HasPrefix(lower, word+",") {
							count++
							if len(evidence) < snippetLimit {
								evidence = append(evidence, Snippet{Text: truncate(sent, 160), Index: idx})
							}
							break
						}
					}
				}
				return Detection{Count: count, Evidence: evidence}
			},
			// Two sentence-initial transitions per thousand words is normal;
			// only the excess scores.
			Score: func(det Detection, doc *document.Document) float64 {
				expected := float64(doc.WordCount) / 1000 * 2
				excess := float64(det.Count) - expected
				if excess < 0 {
					return 0
				}
				return excess * 8
			},
		},
		{
			ID:              "B2",
			Category:        CatStructure,
			Name:            "Enumeration Patterns",
			Description:     "Firstly/Secondly/Finally enumeration sequences.",
			MaxContribution: 60,
			Detect:          detectEnumerationRuns,
			Score: func(det Detection, _ *document.Document) float64 {
				return det.Value
			},
		},
		{
			ID:              "B3",
			Category:        CatStructure,
			Name:            "Spacing Anomalies",
			Description:     "Unusual spacing around punctuation or symbols.",
			MaxContribution: 50,
			Detect: func(doc *document.Document) Detection {
				count := 0
				evidence := make([]Snippet, 0, snippetLimit)
				for _, re := range spacingAnomalyRE {
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
				return float64(det.Count) * 5
			},
		},
		{
			ID:              "B4",
			Category:        CatStructure,
			Name:            "Line Break Irregularities",
			Description:     "Unexpected mid-sentence line breaks.",
			MaxContribution: 30,
			Detect: func(doc *document.Document) Detection {
				offsets := midSentenceBreakRE.FindAllStringIndex(doc.Text, -1)
				return Detection{Count: len(offsets), Evidence: snippetsAt(doc.Text, offsets)}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 3
			},
		},
		{
			ID:              "B5",
			Category:        CatStructure,
			Name:            "Repetitive Sentence Structures",
			Description:     "Consecutive sentences with highly similar structures.",
			MaxContribution: 50,
			Detect:          detectRepetitiveShapes,
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 10
			},
		},
	}
}

// detectEnumerationRuns finds runs of consecutive sentences that open with
// enumeration words. Pairs score 6, runs of three or more score 12; the run
// score is carried in Value so rescoring stays count-consistent.
func detectEnumerationRuns(doc *document.Document) Detection {
	flags := make([]bool, len(doc.Sentences))
	evidence := make([]Snippet, 0, snippetLimit)
	for idx, sent := range doc.Sentences {
		lower := strings.ToLower(strings.TrimSpace(sent))
		for _, word := range enumerationWords {
			if strings.HasPrefix(lower, word+",") {
				flags[idx] = true
				if len(evidence) < snippetLimit {
					evidence = append(evidence, Snippet{Text: truncate(sent, 160), Index: idx})
				}
				break
			}
		}
	}

	score := 0.0
	sequences := 0
	i := 0
	for i < len(flags) {
		if !flags[i] {
			i++
			continue
		}
		start := i
		for i < len(flags) && flags[i] {
			i++
		}
		switch run := i - start; {
		case run >= 3:
			score += 12
			sequences++
		case run == 2:
			score += 6
			sequences++
		}
	}
	return Detection{Count: sequences, Value: score, Evidence: evidence}
}

// detectRepetitiveShapes flags clusters of three consecutive sentences whose
// token shapes are nearly identical. Token shape (word-length classes plus
// punctuation skeleton) stands in for part-of-speech tagging.
func detectRepetitiveShapes(doc *document.Document) Detection {
	shapes := make([]string, len(doc.Sentences))
	for i, sent := range doc.Sentences {
		shapes[i] = sentenceShape(sent)
	}

	clusters := 0
	evidence := make([]Snippet, 0, 3)
	for i := 0; i+2 < len(shapes); i++ {
		if shapes[i] == "" || shapes[i+1] == "" || shapes[i+2] == "" {
			continue
		}
		if shapeSimilarity(shapes[i], shapes[i+1]) >= 0.7 &&
			shapeSimilarity(shapes[i+1], shapes[i+2]) >= 0.7 {
			clusters++
			if len(evidence) < 3 {
				joined := strings.Join(doc.Sentences[i:i+3], " | ")
				evidence = append(evidence, Snippet{Text: truncate(joined, 240), Index: i})
			}
		}
	}
	return Detection{Count: clusters, Evidence: evidence}
}

func sentenceShape(sent string) string {
	words := document.SplitWords(strings.ToLower(sent))
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range words {
		switch {
		case len(w) <= 3:
			b.WriteByte('s')
		case len(w) <= 6:
			b.WriteByte('m')
		default:
			b.WriteByte('l')
		}
	}
	return b.String()
}

// shapeSimilarity is a Dice coefficient over shape bigrams.
func shapeSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if len(a) < 2 || len(b) < 2 {
		return 0
	}
	bigrams := func(s string) map[string]int {
		m := make(map[string]int, len(s))
		for i := 0; i+2 <= len(s); i++ {
			m[s[i:i+2]]++
		}
		return m
	}
	ma, mb := bigrams(a), bigrams(b)
	shared := 0
	for k, ca := range ma {
		if cb, ok := mb[k]; ok {
			if ca < cb {
				shared += ca
			} else {
				shared += cb
			}
		}
	}
	total := (len(a) - 1) + (len(b) - 1)
	return 2 * float64(shared) / float64(total)
}
