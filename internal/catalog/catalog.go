// Package catalog holds the marker definitions the engine scores against:
// ten weighted categories (A through J) of textual patterns, each with its
// own detector and closed-form scoring rule. The catalog is assembled once
// at process start and shared read-only across concurrent analyses.
package catalog

import (
	"fmt"
	"sort"

	"aware/internal/document"
)

// Category identifies one of the ten marker groups.
type Category string

const (
	CatPunctuation Category = "A" // punctuation and typography
	CatStructure   Category = "B" // structural formatting
	CatEditContext Category = "C" // edit-history context
	CatLanguage    Category = "D" // language patterns
	CatVocabulary  Category = "E" // vocabulary choices
	CatUniformity  Category = "F" // structural uniformity
	CatContent     Category = "G" // content specificity
	CatArtifacts   Category = "H" // document artifacts
	CatAcademic    Category = "I" // academic integrity
	CatEditPattern Category = "J" // edit patterns
)

// Categories lists all category ids in order.
var Categories = []Category{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// Snippet is a short evidence excerpt around one marker occurrence.
type Snippet struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

// Detection is the raw outcome of one detector over one document: an
// occurrence count, an optional measured statistic (ratios, densities,
// standard deviations) and evidence excerpts.
type Detection struct {
	Count    int
	Value    float64
	Evidence []Snippet
}

// Definition describes one marker. Detect and Score are pure; Score maps a
// Detection onto points and must be monotonic non-decreasing in the count.
// The analyzer caps the score at MaxContribution.
type Definition struct {
	ID              string
	Category        Category
	Name            string
	Description     string
	MaxContribution float64
	Detect          func(doc *document.Document) Detection
	Score           func(det Detection, doc *document.Document) float64
}

// Result is one scored marker, produced fresh per analysis.
type Result struct {
	ID              string    `json:"id"`
	Category        Category  `json:"category"`
	Name            string    `json:"name"`
	Count           int       `json:"count"`
	Value           float64   `json:"-"`
	Score           float64   `json:"score"`
	MaxContribution float64   `json:"max_contribution"`
	Evidence        []Snippet `json:"evidence,omitempty"`
	Description     string    `json:"description"`
}

// DetectionError records a detector that failed. Failures are non-fatal:
// the marker degrades to a zero-score result and the rest proceed.
type DetectionError struct {
	MarkerID string `json:"marker_id"`
	Message  string `json:"message"`
}

// Catalog is the process-wide, read-only marker table.
type Catalog struct {
	defs []Definition
}

// Default assembles the canonical marker catalogue.
func Default() *Catalog {
	defs := make([]Definition, 0, 40)
	defs = append(defs, punctuationMarkers()...)
	defs = append(defs, structureMarkers()...)
	defs = append(defs, editContextMarkers()...)
	defs = append(defs, languageMarkers()...)
	defs = append(defs, vocabularyMarkers()...)
	defs = append(defs, uniformityMarkers()...)
	defs = append(defs, contentMarkers()...)
	defs = append(defs, artifactMarkers()...)
	defs = append(defs, academicMarkers()...)
	defs = append(defs, editPatternMarkers()...)
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return &Catalog{defs: defs}
}

// Definitions returns the marker table in id order.
func (c *Catalog) Definitions() []Definition { return c.defs }

// Definition looks up a marker by id.
func (c *Catalog) Definition(id string) (Definition, bool) {
	for _, d := range c.defs {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// Detect runs every marker over the document. A detector fault is isolated:
// the marker contributes a zero-score result and the fault is reported as a
// DetectionError alongside the results.
func (c *Catalog) Detect(doc *document.Document) ([]Result, []DetectionError) {
	results := make([]Result, 0, len(c.defs))
	var errs []DetectionError
	for _, def := range c.defs {
		res, err := runDefinition(def, doc)
		if err != nil {
			errs = append(errs, DetectionError{MarkerID: def.ID, Message: err.Error()})
		}
		results = append(results, res)
	}
	return results, errs
}

// Rescore recomputes a marker result from an adjusted detection, reapplying
// the contribution cap. Used by the comparative path after count deltas.
func (c *Catalog) Rescore(id string, det Detection, doc *document.Document) (Result, bool) {
	def, ok := c.Definition(id)
	if !ok {
		return Result{}, false
	}
	score := def.Score(det, doc)
	if score > def.MaxContribution {
		score = def.MaxContribution
	}
	if score < 0 {
		score = 0
	}
	return Result{
		ID:              def.ID,
		Category:        def.Category,
		Name:            def.Name,
		Count:           det.Count,
		Value:           det.Value,
		Score:           score,
		MaxContribution: def.MaxContribution,
		Evidence:        det.Evidence,
		Description:     def.Description,
	}, true
}

func runDefinition(def Definition, doc *document.Document) (res Result, err error) {
	res = Result{
		ID:              def.ID,
		Category:        def.Category,
		Name:            def.Name,
		MaxContribution: def.MaxContribution,
		Description:     def.Description,
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("marker %s: %v", def.ID, r)
			res.Count = 0
			res.Score = 0
			res.Evidence = nil
		}
	}()

	det := def.Detect(doc)
	score := def.Score(det, doc)
	if score > def.MaxContribution {
		score = def.MaxContribution
	}
	if score < 0 {
		score = 0
	}
	res.Count = det.Count
	res.Value = det.Value
	res.Score = score
	res.Evidence = det.Evidence
	return res, nil
}

// ByID indexes results for predicate evaluation.
func ByID(results []Result) map[string]Result {
	m := make(map[string]Result, len(results))
	for _, r := range results {
		m[r.ID] = r
	}
	return m
}
