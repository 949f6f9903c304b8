package metrics

// LexicalDiversity bundles the vocabulary-richness metrics. Generated text
// tends to score low on all of them at once.
type LexicalDiversity struct {
	TypeTokenRatio     float64 `json:"type_token_ratio"`
	YuleK              float64 `json:"yule_k"`
	SimpsonIndex       float64 `json:"simpson_index"`
	HapaxLegomenaRatio float64 `json:"hapax_legomena_ratio"`
	MTLD               float64 `json:"mtld"`
}

func computeLexicalDiversity(words []string) LexicalDiversity {
	if len(words) == 0 {
		return LexicalDiversity{}
	}

	freq := make(map[string]int, len(words))
	for _, w := range words {
		freq[w]++
	}
	total := float64(len(words))
	unique := float64(len(freq))

	// Yule's K: lower means more diverse.
	m2 := 0.0
	for _, n := range freq {
		m2 += float64(n) * float64(n)
	}
	yuleK := 10000 * (m2 - total) / (total * total)

	// Simpson's index: probability two random tokens differ.
	simpson := 0.0
	if len(words) > 1 {
		sum := 0.0
		for _, n := range freq {
			p := float64(n) / total
			sum += p * p
		}
		simpson = 1 - sum
	}

	hapax := 0
	for _, n := range freq {
		if n == 1 {
			hapax++
		}
	}

	return LexicalDiversity{
		TypeTokenRatio:     round(unique/total, 4),
		YuleK:              round(yuleK, 2),
		SimpsonIndex:       round(simpson, 4),
		HapaxLegomenaRatio: round(float64(hapax)/unique, 4),
		MTLD:               round(computeMTLD(words, 0.72), 2),
	}
}

// computeMTLD is the Measure of Textual Lexical Diversity: the mean factor
// length at which the running type-token ratio decays to the threshold,
// averaged over a forward and a backward pass. Needs at least 50 tokens.
func computeMTLD(words []string, threshold float64) float64 {
	if len(words) < 50 {
		return 0
	}
	forward := mtldPass(words, threshold)

	reversed := make([]string, len(words))
	for i, w := range words {
		reversed[len(words)-1-i] = w
	}
	backward := mtldPass(reversed, threshold)

	return (forward + backward) / 2
}

func mtldPass(words []string, threshold float64) float64 {
	ttr := 1.0
	tokens := 0
	types := make(map[string]struct{})
	factors := 0.0

	for _, w := range words {
		tokens++
		types[w] = struct{}{}
		ttr = float64(len(types)) / float64(tokens)
		if ttr <= threshold {
			factors++
			tokens = 0
			types = make(map[string]struct{})
		}
	}
	if tokens > 0 {
		factors += (1 - ttr) / (1 - threshold)
	}
	if factors == 0 {
		return float64(len(words))
	}
	return float64(len(words)) / factors
}
