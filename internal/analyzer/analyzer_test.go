package analyzer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"aware/internal/document"
	"aware/internal/scoring"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := New(scoring.Default(), log)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

// generatedFixture reads like heavily polished machine output: em-dashes,
// colons, AI vocabulary, transition-led sentences, uniform paragraphs.
func generatedFixture() string {
	para := "Furthermore, the multifaceted landscape underscores a pivotal paradigm — " +
		"one that is crucial: robust frameworks facilitate holistic synergy. " +
		"Moreover, it is important to note that comprehensive methodologies foster " +
		"nuanced outcomes — outcomes that leverage intricate discourse. " +
		"Additionally, stakeholders utilize streamlined processes; these processes " +
		"demonstrate unprecedented rigor — rigor that is essential for success."
	blocks := make([]string, 6)
	for i := range blocks {
		blocks[i] = para
	}
	return strings.Join(blocks, "\n\n")
}

func humanFixture() string {
	return `I spent most of last March fixing the fence behind Harvey's barn. The posts
had rotted clean through, so we dug them out one muddy afternoon and swore a lot.

Harvey kept saying we'd finish by Friday. We didn't. The auger broke on Tuesday,
and the rental place in Dunmore wasn't open until the weekend anyway.

What stuck with me was the smell of the creosote, honestly. You don't forget it.
My gloves still smell faintly of it, and that was two months ago.`
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	a := newTestAnalyzer(t)
	_, err := a.Analyze(context.Background(), Request{Text: "   \n\t "})
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("err=%v, want ErrEmptyDocument", err)
	}
}

func TestAnalyzeSeparatesGeneratedFromHuman(t *testing.T) {
	a := newTestAnalyzer(t)

	gen, err := a.Analyze(context.Background(), Request{Text: generatedFixture(), Filename: "gen.txt"})
	if err != nil {
		t.Fatalf("analyze generated: %v", err)
	}
	hum, err := a.Analyze(context.Background(), Request{Text: humanFixture(), Filename: "hum.txt"})
	if err != nil {
		t.Fatalf("analyze human: %v", err)
	}

	if gen.Score <= hum.Score {
		t.Fatalf("generated score %.1f should exceed human score %.1f", gen.Score, hum.Score)
	}
	if gen.Score < 0 || gen.Score > 100 || hum.Score < 0 || hum.Score > 100 {
		t.Fatalf("scores out of range: %.1f, %.1f", gen.Score, hum.Score)
	}
	if hum.Classification != scoring.ClassMinimal && hum.Classification != scoring.ClassLow {
		t.Fatalf("human text classified %s", hum.Classification)
	}
}

func TestAnalyzeResultShape(t *testing.T) {
	a := newTestAnalyzer(t)
	res, err := a.Analyze(context.Background(), Request{Text: generatedFixture(), Filename: "doc.txt"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if res.Meta.ID == "" {
		t.Fatalf("missing analysis id")
	}
	if res.Meta.Version != Version {
		t.Fatalf("version=%s, want %s", res.Meta.Version, Version)
	}
	if res.Meta.AnalyzedAt.IsZero() {
		t.Fatalf("missing timestamp")
	}
	if len(res.Categories) != 10 {
		t.Fatalf("got %d categories, want 10", len(res.Categories))
	}
	sum := 0.0
	for _, w := range res.Weights {
		sum += w
	}
	if sum < 0.999999 || sum > 1.000001 {
		t.Fatalf("weights sum %.9f", sum)
	}
	if len(res.Markers) == 0 {
		t.Fatalf("no marker results")
	}
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected detection errors: %+v", res.Errors)
	}
	// Minimum of the three paths.
	b := res.Breakdown
	min := b.BaseAdjusted
	if b.BayesianAdjusted < min {
		min = b.BayesianAdjusted
	}
	if b.ContextualAdjusted < min {
		min = b.ContextualAdjusted
	}
	if res.Score > min+0.01 {
		t.Fatalf("final %.2f above path minimum %.2f", res.Score, min)
	}
}

func TestAnalyzeComparativeReducesIntroducedMarkers(t *testing.T) {
	a := newTestAnalyzer(t)
	// Both drafts carry the same em-dash habit; the edit introduces none.
	shared := strings.Repeat("word ", 300) + strings.Repeat("a thought — continued. ", 6)
	res, err := a.Analyze(context.Background(), Request{
		Text:         shared + " One extra closing line.",
		OriginalText: shared,
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(res.Deltas) == 0 {
		t.Fatalf("expected comparative deltas")
	}
	for _, d := range res.Deltas {
		if d.ID != "A1" {
			continue
		}
		if d.Introduced != 0 {
			t.Fatalf("A1 introduced=%d, want 0", d.Introduced)
		}
		if d.AdjustedScore != 0 {
			t.Fatalf("A1 adjusted score %.1f, want 0 when nothing introduced", d.AdjustedScore)
		}
		return
	}
	t.Fatalf("A1 delta missing: %+v", res.Deltas)
}

func TestAnalyzeHonorsCancelledContext(t *testing.T) {
	a := newTestAnalyzer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.Analyze(ctx, Request{Text: generatedFixture()})
	if err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

func TestAnalyzeShortDocumentLowersConfidence(t *testing.T) {
	a := newTestAnalyzer(t)
	res, err := a.Analyze(context.Background(), Request{Text: "Just a few plain words in a tiny note."})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.ConfidenceScore >= 0.9 {
		t.Fatalf("confidence %.2f too high for a 9-word document", res.ConfidenceScore)
	}
	if res.Meta.DocumentType != document.TypeGeneral {
		t.Fatalf("type=%s, want general", res.Meta.DocumentType)
	}
}
