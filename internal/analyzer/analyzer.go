// Package analyzer orchestrates a full analysis: marker detection and metric
// computation run concurrently, then the scoring pipeline folds their output
// into the final verdict.
package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"aware/internal/catalog"
	"aware/internal/document"
	"aware/internal/metrics"
	"aware/internal/scoring"
)

// Version is stamped into every result payload.
const Version = "2.1.0"

// ErrEmptyDocument is returned when the request carries no analyzable text.
var ErrEmptyDocument = errors.New("analyzer: document contains no text")

// Request is everything the caller recovered from one document. Only Text is
// required; the optional channels widen the marker coverage.
type Request struct {
	Text     string
	Filename string
	DocType  document.Type // inferred from content when empty

	OriginalText string // enables the comparative path
	Edits        []document.Edit
	Fonts        *document.FontInfo
	Styles       *document.StyleInfo
	Meta         *document.FileMeta
}

// Meta identifies one analysis run.
type Meta struct {
	ID           string        `json:"analysis_id"`
	Version      string        `json:"engine_version"`
	AnalyzedAt   time.Time     `json:"analyzed_at"`
	Filename     string        `json:"filename,omitempty"`
	DocumentType document.Type `json:"document_type"`
	WordCount    int           `json:"word_count"`
	Duration     float64       `json:"duration_ms"`
}

// Breakdown exposes each scoring path's intermediate value. The field names
// are load-bearing: existing consumers read scoring_breakdown by these keys.
type Breakdown struct {
	BaseScore          float64 `json:"base_score"`
	CompositeBonus     float64 `json:"composite_bonus"`
	CorrelationBonus   float64 `json:"correlation_bonus"`
	BaseAdjusted       float64 `json:"base_adjusted"`
	BayesianAdjusted   float64 `json:"bayesian_adjusted"`
	ContextualAdjusted float64 `json:"contextual_adjusted"`
	FinalScore         float64 `json:"final_score"`
}

// AdvancedAnalysis bundles the metric suite with the probabilistic and
// contextual adjustment detail for the display payload.
type AdvancedAnalysis struct {
	metrics.Metrics
	Bayesian   scoring.BayesianResult   `json:"bayesian_analysis"`
	Contextual scoring.ContextualResult `json:"contextual_analysis"`
}

// Result is the full analysis payload.
type Result struct {
	Meta Meta `json:"meta"`

	Score           float64                 `json:"score"`
	Classification  scoring.Classification  `json:"classification"`
	Confidence      scoring.ConfidenceLabel `json:"confidence"`
	ConfidenceScore float64                 `json:"confidence_score"`
	Recommendation  string                  `json:"recommendation"`

	Breakdown       Breakdown                                   `json:"scoring_breakdown"`
	Categories      map[catalog.Category]*scoring.CategoryScore `json:"categories"`
	Weights         map[catalog.Category]float64                `json:"weights"`
	Composites      []scoring.TriggeredPattern                  `json:"composite_patterns"`
	Correlations    []scoring.TriggeredPattern                  `json:"correlation_patterns"`
	HumanIndicators []scoring.TriggeredIndicator                `json:"human_indicators"`
	Advanced        AdvancedAnalysis                            `json:"advanced_analysis"`
	Deltas          []scoring.MarkerDelta                       `json:"comparative_deltas,omitempty"`
	Errors          []catalog.DetectionError                    `json:"detection_errors,omitempty"`

	// Markers is the flat result list the CLI and tests read; the wire
	// payload carries markers per category instead.
	Markers []catalog.Result `json:"-"`
}

// Analyzer binds the immutable catalogue and calibration. One instance
// serves all requests.
type Analyzer struct {
	catalog *catalog.Catalog
	cal     scoring.Calibration
	log     *slog.Logger
}

// New builds an analyzer around the given calibration. A nil logger falls
// back to slog's default.
func New(cal scoring.Calibration, log *slog.Logger) (*Analyzer, error) {
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{catalog: catalog.Default(), cal: cal, log: log}, nil
}

// Analyze runs the full pipeline over one request.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	if len(document.SplitWords(req.Text)) == 0 {
		return nil, ErrEmptyDocument
	}

	doc := document.Build(req.Text, req.Filename, req.DocType)
	doc.Edits = req.Edits
	doc.Fonts = req.Fonts
	doc.Styles = req.Styles
	doc.Meta = req.Meta
	if req.OriginalText != "" {
		doc.Original = document.Build(req.OriginalText, req.Filename, doc.Type)
	}

	var (
		results     []catalog.Result
		detErrs     []catalog.DetectionError
		origResults []catalog.Result
		origErrs    []catalog.DetectionError
		m           metrics.Metrics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		results, detErrs = a.catalog.Detect(doc)
		return gctx.Err()
	})
	g.Go(func() error {
		m = metrics.Compute(doc)
		return gctx.Err()
	})
	if doc.Original != nil {
		g.Go(func() error {
			origResults, origErrs = a.catalog.Detect(doc.Original)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	detErrs = append(detErrs, origErrs...)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var deltas []scoring.MarkerDelta
	if doc.Original != nil {
		results, deltas = scoring.CompareVersions(a.catalog, origResults, results, doc)
	}
	results = append(results, metrics.Bonuses(m)...)

	avail := scoring.AvailabilityFor(doc)
	weights := scoring.AdaptiveWeights(a.cal.Weights, avail)
	categories := scoring.Aggregate(results, a.cal, weights)
	base := scoring.BaseScore(categories)

	markersFound := scoring.MarkersFound(results)
	highConf := scoring.HighConfidenceCount(results)

	report := scoring.EvaluatePatterns(doc, results)
	baseAdj := scoring.AdjustedBase(base, report, markersFound)
	bayes := scoring.BayesianAdjust(baseAdj, doc.Type, highConf, a.cal)
	contextual := scoring.ContextualAdjust(baseAdj, doc, results, m)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	verdict := scoring.Reconcile(baseAdj, bayes.Adjusted, contextual.Adjusted,
		report, doc.WordCount, markersFound, highConf)

	res := &Result{
		Meta: Meta{
			ID:           uuid.NewString(),
			Version:      Version,
			AnalyzedAt:   time.Now().UTC(),
			Filename:     doc.Filename,
			DocumentType: doc.Type,
			WordCount:    doc.WordCount,
			Duration:     float64(time.Since(start).Microseconds()) / 1000,
		},
		Score:           verdict.FinalScore,
		Classification:  verdict.Classification,
		Confidence:      verdict.ConfidenceLabel,
		ConfidenceScore: verdict.Confidence,
		Recommendation:  verdict.Recommendation,
		Breakdown: Breakdown{
			BaseScore:          base,
			CompositeBonus:     report.CompositeBonus,
			CorrelationBonus:   report.CorrelationBonus,
			BaseAdjusted:       baseAdj,
			BayesianAdjusted:   bayes.Adjusted,
			ContextualAdjusted: contextual.Adjusted,
			FinalScore:         verdict.FinalScore,
		},
		Categories:      categories,
		Weights:         weights,
		Composites:      report.Composites,
		Correlations:    report.Correlations,
		HumanIndicators: report.HumanIndicators,
		Advanced: AdvancedAnalysis{
			Metrics:    m,
			Bayesian:   bayes,
			Contextual: contextual,
		},
		Deltas:  deltas,
		Errors:  detErrs,
		Markers: results,
	}

	a.log.LogAttrs(ctx, slog.LevelInfo, "analysis complete",
		slog.String("analysis_id", res.Meta.ID),
		slog.String("filename", doc.Filename),
		slog.Int("word_count", doc.WordCount),
		slog.Float64("final_score", verdict.FinalScore),
		slog.String("classification", string(verdict.Classification)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}
