package metrics

import (
	"math"
	"strings"
)

// Readability holds the six closed-form readability scores.
type Readability struct {
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	GunningFog         float64 `json:"gunning_fog"`
	SMOGIndex          float64 `json:"smog_index"`
	ColemanLiauIndex   float64 `json:"coleman_liau_index"`
	ARI                float64 `json:"ari"`
}

// GradeConsistency is the spread of the grade-level metrics; a very small
// spread is itself a uniformity signal.
func (r Readability) GradeConsistency() float64 {
	return pstdev([]float64{r.FleschKincaidGrade, r.GunningFog, r.ColemanLiauIndex})
}

func computeReadability(words []string, sentenceCount int) Readability {
	if len(words) == 0 || sentenceCount == 0 {
		return Readability{}
	}

	totalWords := float64(len(words))
	totalSentences := float64(sentenceCount)
	syllables := 0
	complexWords := 0
	characters := 0
	for _, w := range words {
		s := countSyllables(w)
		syllables += s
		if s >= 3 {
			complexWords++
		}
		characters += len(w)
	}

	avgSentenceLen := totalWords / totalSentences
	avgSyllables := float64(syllables) / totalWords

	flesch := 206.835 - 1.015*avgSentenceLen - 84.6*avgSyllables
	kincaid := 0.39*avgSentenceLen + 11.8*avgSyllables - 15.59
	if kincaid < 0 {
		kincaid = 0
	}

	percentComplex := float64(complexWords) / totalWords * 100
	fog := 0.4 * (avgSentenceLen + percentComplex)

	// SMOG is only defined for samples of 30+ sentences.
	smog := 0.0
	if sentenceCount >= 30 {
		smog = 1.0430*math.Sqrt(float64(complexWords)*(30/totalSentences)) + 3.1291
	}

	l := float64(characters) / totalWords * 100
	s := totalSentences / totalWords * 100
	colemanLiau := 0.0588*l - 0.296*s - 15.8

	ari := 4.71*(float64(characters)/totalWords) + 0.5*avgSentenceLen - 21.43

	return Readability{
		FleschReadingEase:  round(flesch, 2),
		FleschKincaidGrade: round(kincaid, 2),
		GunningFog:         round(fog, 2),
		SMOGIndex:          round(smog, 2),
		ColemanLiauIndex:   round(colemanLiau, 2),
		ARI:                round(ari, 2),
	}
}

// countSyllables estimates syllables by counting vowel groups, with a silent
// trailing e adjustment. Always at least one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, c := range word {
		vowel := strings.ContainsRune("aeiouy", c)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
