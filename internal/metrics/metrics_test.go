package metrics

import (
	"math"
	"strings"
	"testing"

	"aware/internal/document"
)

func TestTypeTokenRatio(t *testing.T) {
	ld := computeLexicalDiversity([]string{"a", "b", "c", "d"})
	if ld.TypeTokenRatio != 1.0 {
		t.Fatalf("all-unique TTR=%.4f, want 1.0", ld.TypeTokenRatio)
	}
	ld = computeLexicalDiversity([]string{"a", "a", "a", "a"})
	if ld.TypeTokenRatio != 0.25 {
		t.Fatalf("single-type TTR=%.4f, want 0.25", ld.TypeTokenRatio)
	}
	if ld.HapaxLegomenaRatio != 0 {
		t.Fatalf("hapax=%.4f, want 0 for no singletons", ld.HapaxLegomenaRatio)
	}
}

func TestMTLDNeedsMinimumTokens(t *testing.T) {
	if got := computeMTLD(make([]string, 49), 0.72); got != 0 {
		t.Fatalf("MTLD on 49 tokens = %.2f, want 0", got)
	}
}

func TestMTLDLowerForRepetitiveText(t *testing.T) {
	repetitive := strings.Fields(strings.Repeat("the quick brown fox jumps ", 40))
	varied := make([]string, 200)
	for i := range varied {
		varied[i] = string(rune('a'+i%26)) + string(rune('a'+(i/26)%26)) + string(rune('a'+i%7))
	}
	low := computeMTLD(repetitive, 0.72)
	high := computeMTLD(varied, 0.72)
	if low >= high {
		t.Fatalf("repetitive MTLD %.2f should be below varied %.2f", low, high)
	}
}

func TestEntropyOrdering(t *testing.T) {
	if e := computeEntropy(""); e != 0 {
		t.Fatalf("empty entropy=%.4f, want 0", e)
	}
	flat := computeEntropy(strings.Repeat("aaaa ", 100))
	rich := computeEntropy("The 39 steps wound past quartz cliffs; behind, a jackdaw squawked vexingly.")
	if flat >= rich {
		t.Fatalf("flat text entropy %.4f should be below rich text %.4f", flat, rich)
	}
}

func TestNgramRepetitionScore(t *testing.T) {
	words := strings.Fields(strings.Repeat("it is important to note that ", 10))
	rep := computeNgramRepetition(words, 3)
	if rep.RepetitionScore <= 15 {
		t.Fatalf("repetition score %.2f, want > 15 for looped phrase", rep.RepetitionScore)
	}
	if rep.MaxRepetitions < 9 {
		t.Fatalf("max repetitions %d, want >= 9", rep.MaxRepetitions)
	}
	if len(rep.RepeatedNgrams) == 0 || len(rep.RepeatedNgrams) > 5 {
		t.Fatalf("repeated ngrams length %d, want 1..5", len(rep.RepeatedNgrams))
	}

	unique := strings.Fields("each word here differs from every other token present")
	rep = computeNgramRepetition(unique, 3)
	if rep.RepetitionScore != 0 {
		t.Fatalf("unique text repetition %.2f, want 0", rep.RepetitionScore)
	}
}

func TestBurstinessFlatVsVaried(t *testing.T) {
	flat := make([]string, 10)
	for i := range flat {
		flat[i] = "one two three four five six seven"
	}
	varied := []string{
		"Stop.",
		"The long afternoon dragged on through the archive halls while we sorted brittle folders.",
		"Rain.",
		"Nobody had catalogued the east wing since the flood, and it showed in every drawer.",
	}
	fb := computeBurstiness(flat)
	vb := computeBurstiness(varied)
	if fb.BurstinessScore != 0 {
		t.Fatalf("identical sentences burstiness %.4f, want 0", fb.BurstinessScore)
	}
	if vb.BurstinessScore <= fb.BurstinessScore {
		t.Fatalf("varied burstiness %.4f should exceed flat %.4f", vb.BurstinessScore, fb.BurstinessScore)
	}
}

func TestAnomalyUniformParagraphs(t *testing.T) {
	para := strings.TrimSpace(strings.Repeat("steady words fill this paragraph with even measure today ", 7))
	text := strings.Join([]string{para, para, para, para}, "\n\n")
	doc := document.Build(text, "", document.TypeGeneral)
	a := detectAnomalies(doc)
	found := false
	for _, f := range a.Findings {
		if f.Type == "Uniform Paragraph Lengths" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected uniform-paragraph anomaly, got %+v", a.Findings)
	}
	if a.Score < 15 {
		t.Fatalf("anomaly score %.1f, want >= 15", a.Score)
	}
}

func TestGradeConsistency(t *testing.T) {
	r := Readability{FleschKincaidGrade: 10, GunningFog: 10.5, ColemanLiauIndex: 9.8}
	if gc := r.GradeConsistency(); gc >= 2.0 {
		t.Fatalf("tight grades consistency %.2f, want < 2.0", gc)
	}
	r = Readability{FleschKincaidGrade: 4, GunningFog: 13, ColemanLiauIndex: 8}
	if gc := r.GradeConsistency(); gc < 2.0 {
		t.Fatalf("spread grades consistency %.2f, want >= 2.0", gc)
	}
}

func TestBonusesThresholds(t *testing.T) {
	m := Metrics{
		LexicalDiversity: LexicalDiversity{TypeTokenRatio: 0.2, MTLD: 30, HapaxLegomenaRatio: 0.1},
		TextEntropy:      3.5,
		Burstiness:       Burstiness{BurstinessScore: 0.2, ComplexityVariation: 1.5},
		Readability:      Readability{FleschKincaidGrade: 10, GunningFog: 10.2, ColemanLiauIndex: 10.4},
		NgramRepetition:  NgramRepetition{RepetitionScore: 20},
		StatisticalAnomalies: Anomalies{
			Findings: []Anomaly{{Type: "x"}, {Type: "y"}},
			Score:    25,
			Count:    2,
		},
	}
	bonuses := Bonuses(m)
	if len(bonuses) != 9 {
		t.Fatalf("got %d bonuses, want 9", len(bonuses))
	}
	total := 0.0
	for _, b := range bonuses {
		if b.Score > b.MaxContribution {
			t.Fatalf("%s score %.1f exceeds max %.1f", b.ID, b.Score, b.MaxContribution)
		}
		total += b.Score
	}
	if want := 8.0 + 12 + 6 + 10 + 10 + 8 + 7 + 15 + 25; total != want {
		t.Fatalf("total bonus %.1f, want %.1f", total, want)
	}

	// Healthy metrics contribute nothing.
	healthy := Metrics{
		LexicalDiversity: LexicalDiversity{TypeTokenRatio: 0.6, MTLD: 90, HapaxLegomenaRatio: 0.5},
		TextEntropy:      4.4,
		Burstiness:       Burstiness{BurstinessScore: 0.55, ComplexityVariation: 6},
		Readability:      Readability{FleschKincaidGrade: 6, GunningFog: 12, ColemanLiauIndex: 9},
		NgramRepetition:  NgramRepetition{RepetitionScore: 2},
	}
	if got := Bonuses(healthy); len(got) != 0 {
		t.Fatalf("healthy metrics produced bonuses: %+v", got)
	}
}

func TestComputeBoundedAndComplete(t *testing.T) {
	text := strings.Repeat("The survey covered nine districts, and each clerk filed separate notes. ", 60)
	doc := document.Build(text, "", document.TypeGeneral)
	m := Compute(doc)
	if m.LexicalDiversity.TypeTokenRatio <= 0 || m.LexicalDiversity.TypeTokenRatio > 1 {
		t.Fatalf("TTR out of range: %.4f", m.LexicalDiversity.TypeTokenRatio)
	}
	if m.TextEntropy <= 0 {
		t.Fatalf("entropy %.4f, want > 0", m.TextEntropy)
	}
	if m.Readability.FleschKincaidGrade < 0 {
		t.Fatalf("negative grade %.2f", m.Readability.FleschKincaidGrade)
	}
	if math.IsNaN(m.Burstiness.BurstinessScore) {
		t.Fatalf("burstiness is NaN")
	}
}
