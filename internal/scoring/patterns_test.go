package scoring

import (
	"strings"
	"testing"
	"time"

	"aware/internal/catalog"
	"aware/internal/document"
)

func TestSmokingGunTemplateWriting(t *testing.T) {
	doc := document.Build("plain text", "", document.TypeGeneral)
	results := []catalog.Result{
		{ID: "E1", Category: "E", Count: 6, Score: 30},
		{ID: "B1", Category: "B", Count: 5, Score: 24},
		{ID: "F1", Category: "F", Count: 1, Score: 15},
	}
	report := EvaluatePatterns(doc, results)
	if len(report.Composites) != 1 || report.Composites[0].ID != "SMOKING_GUN_2" {
		t.Fatalf("composites=%+v, want SMOKING_GUN_2", report.Composites)
	}
	if report.CompositeBonus != 40 {
		t.Fatalf("bonus=%.1f, want 40", report.CompositeBonus)
	}
	if report.Floor != ClassHigh {
		t.Fatalf("floor=%s, want HIGH", report.Floor)
	}
}

func TestWholesaleReplacementFloorsCritical(t *testing.T) {
	doc := document.Build("plain text", "", document.TypeGeneral)
	results := []catalog.Result{
		{ID: "C1", Category: "C", Count: 1, Value: 140, Score: 50},
		{ID: "C2", Category: "C", Count: 2, Score: 40},
		{ID: "J1", Category: "J", Count: 3, Value: 0.7, Score: 20},
	}
	report := EvaluatePatterns(doc, results)
	if report.Floor != ClassCritical {
		t.Fatalf("floor=%s, want CRITICAL", report.Floor)
	}
}

// TestCompositeConstants pins the published bonus and floor of every
// composite pattern; these are part of the compatibility surface.
func TestCompositeConstants(t *testing.T) {
	want := map[string]struct {
		bonus float64
		floor Classification
	}{
		"SMOKING_GUN_1":      {50, ClassHigh},
		"SMOKING_GUN_2":      {40, ClassHigh},
		"SMOKING_GUN_3":      {60, ClassCritical},
		"SUSPICIOUS_COMBO_1": {25, ClassModerate},
		"SUSPICIOUS_COMBO_2": {30, ClassModerate},
	}
	if len(compositePatterns) != len(want) {
		t.Fatalf("got %d composite patterns, want %d", len(compositePatterns), len(want))
	}
	for _, cp := range compositePatterns {
		w, ok := want[cp.ID]
		if !ok {
			t.Fatalf("unexpected pattern %s", cp.ID)
		}
		if cp.Bonus != w.bonus {
			t.Fatalf("%s bonus=%.0f, want %.0f", cp.ID, cp.Bonus, w.bonus)
		}
		if cp.Floor != w.floor {
			t.Fatalf("%s floor=%s, want %s", cp.ID, cp.Floor, w.floor)
		}
	}
}

func TestSuspiciousComboFloorsModerate(t *testing.T) {
	doc := document.Build("plain text", "", document.TypeGeneral)
	results := []catalog.Result{
		{ID: "H1", Category: "H", Count: 2, Score: 20},
		{ID: "H2", Category: "H", Count: 3, Score: 15},
		{ID: "H5", Category: "H", Count: 1, Score: 10},
	}
	report := EvaluatePatterns(doc, results)
	if len(report.Composites) != 1 || report.Composites[0].ID != "SUSPICIOUS_COMBO_2" {
		t.Fatalf("composites=%+v, want SUSPICIOUS_COMBO_2", report.Composites)
	}
	if report.Floor != ClassModerate {
		t.Fatalf("floor=%s, want MODERATE", report.Floor)
	}
}

// Value thresholds in correlation patterns are inclusive: a vague-to-specific
// ratio of exactly 1.5 still counts as generic content.
func TestCorrelationValueThresholdInclusive(t *testing.T) {
	doc := document.Build("plain text", "", document.TypeGeneral)
	results := []catalog.Result{
		{ID: "F1", Category: "F", Count: 1, Score: 15},
		{ID: "G1", Category: "G", Count: 3, Value: 1.5, Score: 15},
		{ID: "D1", Category: "D", Count: 2, Score: 8},
	}
	report := EvaluatePatterns(doc, results)
	for _, c := range report.Correlations {
		if c.ID == "CORR_GENERIC_CONTENT" {
			return
		}
	}
	t.Fatalf("CORR_GENERIC_CONTENT should trigger at ratio exactly 1.5, got %+v", report.Correlations)
}

func TestTimeGapRequiresPauseThenLargeInsert(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	later := base.Add(5 * time.Hour)
	soon := base.Add(10 * time.Minute)

	doc := &document.Document{Edits: []document.Edit{
		{Kind: document.EditInsert, WordCount: 10, Timestamp: &base},
		{Kind: document.EditInsert, WordCount: 120, Timestamp: &later},
	}}
	if !hasEditTimeGap(doc) {
		t.Fatalf("expected time gap for 5h pause before 120-word insert")
	}

	doc.Edits[1].Timestamp = &soon
	if hasEditTimeGap(doc) {
		t.Fatalf("10-minute gap should not trigger")
	}

	doc.Edits[1].Timestamp = &later
	doc.Edits[1].WordCount = 20
	if hasEditTimeGap(doc) {
		t.Fatalf("small insert after pause should not trigger")
	}
}

func TestCorrelationBonusCapped(t *testing.T) {
	doc := document.Build("plain text", "", document.TypeGeneral)
	// Trip all four strong correlations at once: 15+20+18+12 = 65, capped 50.
	results := []catalog.Result{
		{ID: "A1", Category: "A", Count: 4, Score: 30},
		{ID: "D1", Category: "D", Count: 3, Score: 12},
		{ID: "D2", Category: "D", Count: 3, Score: 9},
		{ID: "E1", Category: "E", Count: 5, Score: 30},
		{ID: "E2", Category: "E", Count: 12, Value: 0.9, Score: 15},
		{ID: "F1", Category: "F", Count: 1, Score: 15},
		{ID: "F2", Category: "F", Count: 2, Score: 20},
		{ID: "B1", Category: "B", Count: 5, Score: 24},
		{ID: "B2", Category: "B", Count: 2, Score: 12},
		{ID: "G1", Category: "G", Count: 4, Value: 2.0, Score: 15},
	}
	report := EvaluatePatterns(doc, results)
	if len(report.Correlations) != 4 {
		t.Fatalf("got %d correlations, want 4", len(report.Correlations))
	}
	if report.CorrelationBonus != 50 {
		t.Fatalf("bonus=%.1f, want capped 50", report.CorrelationBonus)
	}
}

func TestPersonalVoiceIndicator(t *testing.T) {
	text := strings.Repeat("I think we tried and my notes say our plan held. ", 40)
	doc := document.Build(text, "", document.TypeGeneral)
	report := EvaluatePatterns(doc, nil)
	found := false
	for _, h := range report.HumanIndicators {
		if h.ID == "PERSONAL_VOICE" {
			found = true
			if h.Reduction != 20 {
				t.Fatalf("reduction=%.1f, want 20", h.Reduction)
			}
		}
	}
	if !found {
		t.Fatalf("expected PERSONAL_VOICE for first-person heavy text, got %+v", report.HumanIndicators)
	}
}

func TestTypoPatternIndicator(t *testing.T) {
	edits := make([]document.Edit, 0, 6)
	for i := 0; i < 3; i++ {
		edits = append(edits,
			document.Edit{Kind: document.EditDelete, WordCount: 1, ParagraphIndex: i},
			document.Edit{Kind: document.EditInsert, WordCount: 1, ParagraphIndex: i},
		)
	}
	doc := &document.Document{Edits: edits}
	report := EvaluatePatterns(doc, nil)
	found := false
	for _, h := range report.HumanIndicators {
		if h.ID == "TYPO_PATTERN" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected TYPO_PATTERN for paired small corrections")
	}
}

func TestColloquialismsIndicator(t *testing.T) {
	doc := document.Build("Honestly it was kinda rough, basically a mess, but anyway we shipped.", "", document.TypeGeneral)
	report := EvaluatePatterns(doc, nil)
	found := false
	for _, h := range report.HumanIndicators {
		if h.ID == "COLLOQUIALISMS" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected COLLOQUIALISMS, got %+v", report.HumanIndicators)
	}
}
