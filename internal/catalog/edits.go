package catalog

import (
	"fmt"
	"math"
	"sort"

	"aware/internal/document"
)

// Categories C and J read the edit-history side of the document. Both are
// marked inapplicable upstream (weight redistributed) when the ingestion
// collaborator could not recover tracked changes.

func editContextMarkers() []Definition {
	return []Definition{
		{
			ID:              "C1",
			Category:        CatEditContext,
			Name:            "Extent of Edit",
			Description:     "Comparison of original vs edited extent of changes.",
			MaxContribution: 80,
			Detect: func(doc *document.Document) Detection {
				if doc.Original == nil || doc.WordCount == 0 {
					return Detection{}
				}
				changed := changedWords(doc.Original.Words, doc.Words)
				eoe := float64(changed) / float64(doc.WordCount) * 100
				det := Detection{Value: eoe}
				if eoe > 100 {
					det.Count = 1
				}
				if eoe > 0 {
					det.Evidence = noteSnippet(fmt.Sprintf("EoE %.1f%%", eoe))
				}
				return det
			},
			// Over 100% means more text changed than the edited draft holds,
			// i.e. the draft was substantially regenerated.
			Score: func(det Detection, _ *document.Document) float64 {
				if det.Value <= 100 {
					return 0
				}
				return 30 + math.Floor((det.Value-100)/10)*5
			},
		},
		{
			ID:              "C2",
			Category:        CatEditContext,
			Name:            "Large Inserted Chunks",
			Description:     "Large inserted text blocks without granular edits.",
			MaxContribution: 100,
			Detect: func(doc *document.Document) Detection {
				count := 0
				evidence := make([]Snippet, 0, snippetLimit)
				for _, edit := range doc.Edits {
					if edit.Kind != "ins" || edit.WordCount <= 50 {
						continue
					}
					count++
					if len(evidence) < snippetLimit {
						evidence = append(evidence, Snippet{Text: truncate(edit.Text, 160), Index: edit.ParagraphIndex})
					}
				}
				return Detection{Count: count, Evidence: evidence}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 20
			},
		},
		{
			ID:              "C3",
			Category:        CatEditContext,
			Name:            "Editing Time Analysis",
			Description:     "Editing time compared to expected human editing speed.",
			MaxContribution: 30,
			Detect: func(doc *document.Document) Detection {
				if !doc.HasTimingData() || doc.WordCount == 0 {
					return Detection{}
				}
				expectedHours := float64(doc.WordCount) / 1000
				actualHours := float64(*doc.Meta.EditingMinutes) / 60
				ratio := actualHours / expectedHours
				det := Detection{Value: ratio, Evidence: noteSnippet(fmt.Sprintf("Edit time ratio %.2f", ratio))}
				if ratio < 0.7 {
					det.Count = 1
				}
				return det
			},
			Score: func(det Detection, doc *document.Document) float64 {
				if !doc.HasTimingData() || det.Count == 0 {
					return 0
				}
				switch {
				case det.Value < 0.3:
					return 30
				case det.Value < 0.5:
					return 15
				case det.Value < 0.7:
					return 5
				default:
					return 0
				}
			},
		},
		{
			ID:              "C4",
			Category:        CatEditContext,
			Name:            "Edit Cluster Analysis",
			Description:     "High concentration of edits in limited sections.",
			MaxContribution: 15,
			Detect: func(doc *document.Document) Detection {
				if len(doc.Edits) == 0 || doc.ParagraphCount == 0 {
					return Detection{}
				}
				segments := make([]int, 10)
				total := 0
				for _, edit := range doc.Edits {
					if edit.ParagraphIndex < 0 {
						continue
					}
					seg := edit.ParagraphIndex * 10 / doc.ParagraphCount
					if seg > 9 {
						seg = 9
					}
					segments[seg]++
					total++
				}
				if total == 0 {
					return Detection{}
				}
				sort.Sort(sort.Reverse(sort.IntSlice(segments)))
				topTwo := segments[0] + segments[1]
				if float64(topTwo)/float64(total) > 0.6 {
					return Detection{Count: 1, Evidence: noteSnippet("Edits clustered in small document segments.")}
				}
				return Detection{}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				return float64(det.Count) * 15
			},
		},
	}
}

func editPatternMarkers() []Definition {
	return []Definition{
		{
			ID:              "J1",
			Category:        CatEditPattern,
			Name:            "Wholesale Replacement Pattern",
			Description:     "Large percentage of paragraphs rewritten.",
			MaxContribution: 35,
			Detect: func(doc *document.Document) Detection {
				if len(doc.Edits) == 0 || doc.ParagraphCount == 0 {
					return Detection{}
				}
				editWords := make(map[int]int)
				for _, edit := range doc.Edits {
					if edit.ParagraphIndex >= 0 {
						editWords[edit.ParagraphIndex] += edit.WordCount
					}
				}
				rewritten := 0
				for idx, words := range editWords {
					if idx >= len(doc.Paragraphs) {
						continue
					}
					total := document.CountWords(doc.Paragraphs[idx])
					if total > 0 && float64(words)/float64(total) > 0.5 {
						rewritten++
					}
				}
				ratio := float64(rewritten) / float64(doc.ParagraphCount)
				return Detection{
					Count:    rewritten,
					Value:    ratio,
					Evidence: noteSnippet(fmt.Sprintf("Rewrite ratio %.2f", ratio)),
				}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				switch {
				case det.Value > 0.8:
					return 35
				case det.Value > 0.6:
					return 20
				case det.Value > 0.4:
					return 10
				default:
					return 0
				}
			},
		},
		{
			ID:              "J2",
			Category:        CatEditPattern,
			Name:            "Edit Granularity",
			Description:     "High ratio of sentence-level edits vs word-level edits.",
			MaxContribution: 25,
			Detect: func(doc *document.Document) Detection {
				sentenceLevel := 0
				total := 0
				for _, edit := range doc.Edits {
					if edit.WordCount == 0 {
						continue
					}
					total++
					if edit.WordCount >= 20 {
						sentenceLevel++
					}
				}
				if total == 0 {
					return Detection{}
				}
				ratio := float64(sentenceLevel) / float64(total)
				return Detection{
					Count:    sentenceLevel,
					Value:    ratio,
					Evidence: noteSnippet(fmt.Sprintf("Sentence-level edit ratio %.2f", ratio)),
				}
			},
			Score: func(det Detection, _ *document.Document) float64 {
				switch {
				case det.Value > 0.7:
					return 25
				case det.Value > 0.5:
					return 15
				default:
					return 0
				}
			},
		},
	}
}

// changedWordsMaxTokens bounds the quadratic alignment; beyond it the
// estimate falls back to a frequency-bag difference.
const changedWordsMaxTokens = 4000

// changedWords estimates how many word tokens differ between two drafts.
func changedWords(original, edited []string) int {
	if len(original) == 0 {
		return len(edited)
	}
	if len(edited) == 0 {
		return len(original)
	}
	if len(original) > changedWordsMaxTokens || len(edited) > changedWordsMaxTokens {
		return bagDifference(original, edited)
	}
	common := lcsLength(original, edited)
	removed := len(original) - common
	added := len(edited) - common
	if removed > added {
		return removed
	}
	return added
}

func lcsLength(a, b []string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func bagDifference(a, b []string) int {
	freq := make(map[string]int, len(a))
	for _, w := range a {
		freq[w]++
	}
	added := 0
	for _, w := range b {
		if freq[w] > 0 {
			freq[w]--
		} else {
			added++
		}
	}
	removed := 0
	for _, n := range freq {
		removed += n
	}
	if removed > added {
		return removed
	}
	return added
}
