package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"aware/internal/document"
)

var vagueTermRE = compilePhrases(
	"many studies show",
	"research indicates",
	"experts agree",
	"some researchers",
	"various factors",
	"numerous examples",
	"several aspects",
)

var genericStatementRE = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\w+ is important\b`),
	regexp.MustCompile(`(?i)\b\w+ plays a crucial role\b`),
	regexp.MustCompile(`(?i)\b\w+ has both advantages and disadvantages\b`),
	regexp.MustCompile(`(?i)\b\w+ is a complex topic\b`),
	regexp.MustCompile(`(?i)\b\w+ requires careful consideration\b`),
	regexp.MustCompile(`(?i)\b\w+ is essential for success\b`),
	regexp.MustCompile(`(?i)\b\w+ has become increasingly important\b`),
}

var (
	definitionRE = regexp.MustCompile(`(?i)\b(\w+)\b\s+(is defined as|refers to|means)\s+([^.]+)`)
	properNounRE = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	numberRE     = regexp.MustCompile(`\d+`)
)

// stockFrameRE matches stock narrative framings that generated prose leans
// on.
var stockFrameRE = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bthe unmistakable\b`),
	regexp.MustCompile(`(?i)\ba testament to\b`),
	regexp.MustCompile(`(?i)\bin today's (fast-paced|ever-changing|digital) world\b`),
	regexp.MustCompile(`(?i)\bat the end of the day\b`),
	regexp.MustCompile(`(?i)\bserves as a reminder\b`),
	regexp.MustCompile(`(?i)\bplays a (vital|pivotal) part\b`),
}

// Category G: content specificity.
func contentMarkers() []Definition {
	return []Definition{
		{
			ID:              "G1",
			Category:        CatContent,
			Name:            "Lack of Specific Examples",
			Description:     "High ratio of vague quantifiers to specific details.",
			MaxContribution: 25,
			Detect: func(doc *document.Document) Detection {
				vague := 0
				for _, re := range vagueTermRE {
					vague += len(re.FindAllStringIndex(doc.Text, -1))
				}
				// Proper nouns and numbers stand in for concrete detail.
				specific := len(properNounRE.FindAllStringIndex(doc.Text, -1)) +
					len(numberRE.FindAllStringIndex(doc.Text, -1))
				ratio := float64(vague) / float64(specific+1)
				det := Detection{Count: vague, Value: ratio}
				if vague > 0 {
					det.Evidence = noteSnippet(fmt.Sprintf("Vague/specific ratio %.2f", ratio))
				}
				return det
			},
			Score: func(det Detection, _ *document.Document) float64 {
				switch {
				case det.Value > 3.0:
					return 25
				case det.Value > 2.0:
					return 15
				case det.Value > 1.0:
					return 5
				default:
					return 0
				}
			},
		},
		{
			ID:              "G2",
			Category:        CatContent,
			Name:            "Circular Definitions",
			Description:     "Definitions that reuse the term being defined.",
			MaxContribution: 30,
			Detect: func(doc *document.Document) Detection {
				count := 0
				evidence := make([]Snippet, 0, snippetLimit)
				for idx, sent := range doc.Sentences {
					m := definitionRE.FindStringSubmatch(sent)
					if m == nil {
						continue
					}
					subject := strings.ToLower(m[1])
					definition := strings.ToLower(m[3])
					if strings.Contains(definition, subject) {
						count++
						if len(evidence) < snippetLimit {
							evidence = append(evidence, Snippet{Text: truncate(sent, 160), Index: idx})
						}
					}
				}
				return Detection{Count: count, Evidence: evidence}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 15
			},
		},
		{
			ID:              "G3",
			Category:        CatContent,
			Name:            "Generic Statements",
			Description:     "Generic statements that lack concrete substance.",
			MaxContribution: 30,
			Detect: func(doc *document.Document) Detection {
				count := 0
				evidence := make([]Snippet, 0, snippetLimit)
				for _, re := range genericStatementRE {
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
			ID:              "G4",
			Category:        CatContent,
			Name:            "Stock Narrative Frames",
			Description:     "Stock framing phrases common in generated prose.",
			MaxContribution: 15,
			Detect: func(doc *document.Document) Detection {
				count := 0
				evidence := make([]Snippet, 0, snippetLimit)
				for _, re := range stockFrameRE {
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
	}
}
