package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"aware/internal/document"
)

var listItemRE = regexp.MustCompile(`^\d+\.`)

// Category F: structural uniformity. Distributional markers need at least
// two data points or they contribute nothing.
func uniformityMarkers() []Definition {
	return []Definition{
		{
			ID:              "F1",
			Category:        CatUniformity,
			Name:            "Paragraph Length Uniformity",
			Description:     "Paragraph lengths show unusually low variance.",
			MaxContribution: 25,
			Detect: func(doc *document.Document) Detection {
				lengths := make([]float64, 0, len(doc.Paragraphs))
				for _, p := range doc.Paragraphs {
					if n := document.CountWords(p); n > 0 {
						lengths = append(lengths, float64(n))
					}
				}
				if len(lengths) < 2 {
					return Detection{}
				}
				mean, sd := meanStd(lengths)
				if mean == 0 {
					return Detection{}
				}
				cv := sd / mean
				det := Detection{Value: cv, Evidence: noteSnippet(fmt.Sprintf("Paragraph length CV %.2f", cv))}
				if cv < 0.35 {
					det.Count = 1
				}
				return det
			},
			Score: func(det Detection, _ *document.Document) float64 {
				if det.Count == 0 {
					return 0
				}
				switch {
				case det.Value < 0.15:
					return 25
				case det.Value < 0.25:
					return 15
				default:
					return 5
				}
			},
		},
		{
			ID:              "F2",
			Category:        CatUniformity,
			Name:            "Perfect Parallel Structures",
			Description:     "Multiple list items with identical structure.",
			MaxContribution: 30,
			Detect:          detectParallelRuns,
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 10
			},
		},
		{
			ID:              "F3",
			Category:        CatUniformity,
			Name:            "Balanced Argument Pattern",
			Description:     "Pros and cons lists perfectly balanced.",
			MaxContribution: 15,
			Detect: func(doc *document.Document) Detection {
				pros, cons := balancedSections(doc.Text)
				if pros >= 4 && pros == cons {
					return Detection{
						Count:    1,
						Evidence: noteSnippet(fmt.Sprintf("Pros %d vs Cons %d", pros, cons)),
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

// detectParallelRuns flags runs of four or more consecutive sentences that
// open with the same three words.
func detectParallelRuns(doc *document.Document) Detection {
	openings := make([]string, len(doc.Sentences))
	for i, sent := range doc.Sentences {
		words := document.SplitWords(strings.ToLower(sent))
		if len(words) > 3 {
			words = words[:3]
		}
		openings[i] = strings.Join(words, " ")
	}

	sets := 0
	evidence := make([]Snippet, 0, 3)
	i := 0
	for i < len(openings) {
		if openings[i] == "" {
			i++
			continue
		}
		start := i
		for i < len(openings) && openings[i] == openings[start] {
			i++
		}
		if i-start >= 4 {
			sets++
			if len(evidence) < 3 {
				joined := strings.Join(doc.Sentences[start:i], " | ")
				evidence = append(evidence, Snippet{Text: truncate(joined, 240), Index: start})
			}
		}
	}
	return Detection{Count: sets, Evidence: evidence}
}

// balancedSections counts bullet items under pros-style and cons-style
// headers.
func balancedSections(text string) (pros, cons int) {
	current := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		header := strings.ToLower(line)
		switch {
		case strings.HasPrefix(header, "pros"), strings.HasPrefix(header, "advantages"), strings.HasPrefix(header, "benefits"):
			current = "pros"
			continue
		case strings.HasPrefix(header, "cons"), strings.HasPrefix(header, "disadvantages"), strings.HasPrefix(header, "limitations"):
			current = "cons"
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || listItemRE.MatchString(line) {
			switch current {
			case "pros":
				pros++
			case "cons":
				cons++
			}
		}
	}
	return pros, cons
}
