package catalog

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	snippetWindow = 40
	snippetLimit  = 5
)

// snippetsAt builds evidence excerpts around match offsets, mirroring what
// the annotation layer highlights. offsets are [start,end) byte pairs.
func snippetsAt(text string, offsets [][]int) []Snippet {
	snippets := make([]Snippet, 0, snippetLimit)
	for _, m := range offsets {
		if len(snippets) >= snippetLimit {
			break
		}
		start := runeFloor(text, m[0]-snippetWindow)
		end := runeCeil(text, m[1]+snippetWindow)
		excerpt := strings.TrimSpace(strings.ReplaceAll(text[start:end], "\n", " "))
		snippets = append(snippets, Snippet{Text: excerpt, Index: m[0]})
	}
	return snippets
}

func noteSnippet(text string) []Snippet {
	return []Snippet{{Text: text, Index: 0}}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:runeFloor(s, n)]
}

// runeFloor backs i off to the nearest rune boundary at or before it, so a
// window cut never splits a multi-byte character.
func runeFloor(s string, i int) int {
	if i < 0 {
		return 0
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// runeCeil advances i to the nearest rune boundary at or after it.
func runeCeil(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return i
}

func meanStd(values []float64) (mean, sd float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	if len(values) == 1 {
		return mean, 0
	}
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}
