package metrics

import (
	"math"
	"sort"
	"strings"
)

// RepeatedNgram is one n-gram that occurs more than once.
type RepeatedNgram struct {
	Ngram string `json:"ngram"`
	Count int    `json:"count"`
}

// NgramRepetition summarizes phrase reuse across the document.
type NgramRepetition struct {
	RepetitionScore float64         `json:"repetition_score"`
	RepeatedNgrams  []RepeatedNgram `json:"repeated_ngrams"`
	MaxRepetitions  int             `json:"max_repetitions"`
}

func computeNgramRepetition(words []string, n int) NgramRepetition {
	if len(words) < n {
		return NgramRepetition{RepeatedNgrams: []RepeatedNgram{}}
	}

	total := len(words) - n + 1
	freq := make(map[string]int, total)
	for i := 0; i < total; i++ {
		freq[strings.Join(words[i:i+n], " ")]++
	}

	repeated := make([]RepeatedNgram, 0)
	repeatedCount := 0
	maxReps := 0
	for ng, count := range freq {
		if count > 1 {
			repeated = append(repeated, RepeatedNgram{Ngram: ng, Count: count})
			repeatedCount += count
			if count > maxReps {
				maxReps = count
			}
		}
	}
	if len(repeated) == 0 {
		return NgramRepetition{RepeatedNgrams: []RepeatedNgram{}}
	}

	sort.Slice(repeated, func(i, j int) bool {
		if repeated[i].Count != repeated[j].Count {
			return repeated[i].Count > repeated[j].Count
		}
		return repeated[i].Ngram < repeated[j].Ngram
	})
	if len(repeated) > 5 {
		repeated = repeated[:5]
	}

	return NgramRepetition{
		RepetitionScore: round(float64(repeatedCount)/float64(total)*100, 2),
		RepeatedNgrams:  repeated,
		MaxRepetitions:  maxReps,
	}
}

// computeEntropy is Shannon entropy over characters, in bits. Lower entropy
// means more predictable text.
func computeEntropy(text string) float64 {
	if text == "" {
		return 0
	}
	lower := strings.ToLower(text)
	freq := make(map[rune]int)
	total := 0
	for _, r := range lower {
		freq[r]++
		total++
	}
	entropy := 0.0
	for _, n := range freq {
		p := float64(n) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return round(entropy, 4)
}
