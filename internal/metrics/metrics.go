// Package metrics computes the advanced linguistic metrics independently of
// the marker catalogue: lexical diversity, readability, burstiness, n-gram
// repetition, entropy, and statistical anomalies. The metrics feed the result
// payload and the pattern/contextual stages; only the explicitly enumerated
// thresholds in Bonuses contribute points to the score.
package metrics

import (
	"math"
	"strings"

	"aware/internal/document"
)

// Metrics is the full advanced-analysis payload.
type Metrics struct {
	LexicalDiversity     LexicalDiversity `json:"lexical_diversity"`
	Readability          Readability      `json:"readability_metrics"`
	NgramRepetition      NgramRepetition  `json:"ngram_repetition"`
	Burstiness           Burstiness       `json:"burstiness"`
	TextEntropy          float64          `json:"text_entropy"`
	StatisticalAnomalies Anomalies        `json:"statistical_anomalies"`
}

// maxScanWords bounds the heavier scans so a pathological upload cannot pin
// a worker.
const maxScanWords = 200000

// Compute derives every metric from the document. Pure; safe to run
// concurrently with marker detection.
func Compute(doc *document.Document) Metrics {
	words := doc.Words
	if len(words) > maxScanWords {
		words = words[:maxScanWords]
	}
	lower := lowercaseAll(words)

	return Metrics{
		LexicalDiversity:     computeLexicalDiversity(lower),
		Readability:          computeReadability(words, doc.SentenceCount),
		NgramRepetition:      computeNgramRepetition(lower, 3),
		Burstiness:           computeBurstiness(doc.Sentences),
		TextEntropy:          computeEntropy(doc.Text),
		StatisticalAnomalies: detectAnomalies(doc),
	}
}

func lowercaseAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// pstdev is the population standard deviation, zero for fewer than two
// values.
func pstdev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	variance := 0.0
	for _, v := range values {
		d := v - m
		variance += d * d
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
