package metrics

import (
	"regexp"
	"strings"

	"aware/internal/document"
)

// Burstiness measures variation in sentence length and complexity. Human
// writing is bursty; generated text is flatter.
type Burstiness struct {
	BurstinessScore     float64 `json:"burstiness_score"`
	PerplexityVariance  float64 `json:"perplexity_variance"`
	ComplexityVariation float64 `json:"complexity_variation"`
}

var conjunctionRE = regexp.MustCompile(`\b(and|but|or|while|because|if|when|although)\b`)

func computeBurstiness(sentences []string) Burstiness {
	if len(sentences) < 2 {
		return Burstiness{}
	}

	lengths := make([]float64, 0, len(sentences))
	complexities := make([]float64, 0, len(sentences))
	for _, sent := range sentences {
		words := document.SplitWords(sent)
		lengths = append(lengths, float64(len(words)))
		if len(words) == 0 {
			complexities = append(complexities, 0)
			continue
		}
		chars := 0
		for _, w := range words {
			chars += len(w)
		}
		avgWordLen := float64(chars) / float64(len(words))
		commas := float64(strings.Count(sent, ","))
		conjunctions := float64(len(conjunctionRE.FindAllString(strings.ToLower(sent), -1)))
		complexities = append(complexities, avgWordLen+commas*2+conjunctions*1.5)
	}

	// Coefficient of variation of sentence lengths.
	burstiness := 0.0
	if m := mean(lengths); m > 0 {
		burstiness = pstdev(lengths) / m
	}

	// Sliding 3-sentence windows approximate local perplexity swings.
	const window = 3
	locals := make([]float64, 0, len(lengths))
	for i := 0; i+window <= len(lengths); i++ {
		locals = append(locals, pstdev(lengths[i:i+window]))
	}

	return Burstiness{
		BurstinessScore:     round(burstiness, 4),
		PerplexityVariance:  round(mean(locals), 2),
		ComplexityVariation: round(pstdev(complexities), 2),
	}
}
