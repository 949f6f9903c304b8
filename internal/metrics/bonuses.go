package metrics

import "aware/internal/catalog"

// Bonuses converts the enumerated metric thresholds into synthetic
// marker-like contributions, injected before category aggregation so the
// category caps and weights apply to them like any other marker. The metric
// values themselves never touch the base score.
func Bonuses(m Metrics) []catalog.Result {
	out := make([]catalog.Result, 0, 10)
	add := func(id string, cat catalog.Category, name string, score, max float64, desc string) {
		out = append(out, catalog.Result{
			ID:              id,
			Category:        cat,
			Name:            name,
			Count:           1,
			Score:           score,
			MaxContribution: max,
			Description:     desc,
		})
	}

	if m.LexicalDiversity.TypeTokenRatio > 0 && m.LexicalDiversity.TypeTokenRatio < 0.35 {
		add("M1", catalog.CatVocabulary, "Low Type-Token Ratio", 8, 8,
			"Overall vocabulary variety is unusually low.")
	}
	if m.LexicalDiversity.MTLD > 0 && m.LexicalDiversity.MTLD < 50 {
		add("M2", catalog.CatVocabulary, "Low MTLD", 12, 12,
			"Lexical diversity collapses over sustained stretches.")
	}
	if m.LexicalDiversity.HapaxLegomenaRatio > 0 && m.LexicalDiversity.HapaxLegomenaRatio < 0.25 {
		add("M3", catalog.CatVocabulary, "Few Hapax Legomena", 6, 6,
			"Very few words appear exactly once.")
	}
	if m.TextEntropy > 0 && m.TextEntropy < 4.0 {
		add("M4", catalog.CatVocabulary, "Low Character Entropy", 10, 10,
			"Character distribution is unusually predictable.")
	}

	if m.Burstiness.BurstinessScore > 0 && m.Burstiness.BurstinessScore < 0.3 {
		add("M5", catalog.CatUniformity, "Low Burstiness", 10, 10,
			"Sentence lengths barely vary across the document.")
	}
	if m.Burstiness.ComplexityVariation > 0 && m.Burstiness.ComplexityVariation < 3.0 {
		add("M6", catalog.CatUniformity, "Flat Sentence Complexity", 8, 8,
			"Sentence complexity stays within a narrow band.")
	}
	if gc := m.Readability.GradeConsistency(); gc > 0 && gc < 2.0 {
		add("M7", catalog.CatUniformity, "Consistent Readability Grades", 7, 7,
			"Independent readability formulas agree suspiciously closely.")
	}

	switch {
	case m.NgramRepetition.RepetitionScore > 15:
		add("M8", catalog.CatLanguage, "Heavy Phrase Repetition", 15, 15,
			"Trigram reuse is far above human baselines.")
	case m.NgramRepetition.RepetitionScore > 8:
		add("M8", catalog.CatLanguage, "Elevated Phrase Repetition", 8, 15,
			"Trigram reuse is above human baselines.")
	}

	if m.StatisticalAnomalies.Score > 0 {
		add("M9", catalog.CatUniformity, "Statistical Anomalies",
			m.StatisticalAnomalies.Score, 30,
			"Z-score based distribution checks flagged irregularities.")
		out[len(out)-1].Count = m.StatisticalAnomalies.Count
	}

	return out
}
