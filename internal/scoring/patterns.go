package scoring

import (
	"math"
	"regexp"
	"sort"
	"time"

	"aware/internal/catalog"
	"aware/internal/document"
)

// correlationBonusCap bounds the total correlation bonus added to the base
// score.
const correlationBonusCap = 50

// editTimeGapThreshold is the gap between consecutive timestamped edits that
// counts as a suspicious pause before a large paste.
const editTimeGapThreshold = 4 * time.Hour

// PredicateKind selects how a predicate reads the marker it references.
type PredicateKind int

const (
	// CountAtLeast fires when the marker's occurrence count meets a threshold.
	CountAtLeast PredicateKind = iota
	// ValueAbove fires when the marker's auxiliary value strictly exceeds a
	// threshold.
	ValueAbove
	// ValueAtLeast fires when the marker's auxiliary value meets a threshold.
	ValueAtLeast
	// Present fires when the marker scored at all.
	Present
	// TimeGapFlag fires on a long pause in the edit stream followed by a
	// large insertion. It reads the edit history, not a marker.
	TimeGapFlag
)

// Predicate is one typed condition inside a composite or correlation
// pattern. Marker is empty for TimeGapFlag.
type Predicate struct {
	Kind      PredicateKind
	Marker    string
	Threshold float64
}

func (p Predicate) holds(byID map[string]catalog.Result, timeGap bool) bool {
	if p.Kind == TimeGapFlag {
		return timeGap
	}
	r, ok := byID[p.Marker]
	if !ok {
		return false
	}
	switch p.Kind {
	case CountAtLeast:
		return float64(r.Count) >= p.Threshold
	case ValueAbove:
		return r.Value > p.Threshold
	case ValueAtLeast:
		return r.Value >= p.Threshold
	case Present:
		return r.Score > 0
	}
	return false
}

// compositePattern is a near-certain marker combination. Triggering one adds
// its bonus and can floor the classification.
type compositePattern struct {
	ID          string
	Name        string
	Description string
	Predicates  []Predicate
	Bonus       float64
	Floor       Classification // empty when the pattern does not floor
}

// correlationPattern is a weaker co-occurrence signal. Bonuses accumulate
// under correlationBonusCap and never floor the classification.
type correlationPattern struct {
	ID         string
	Name       string
	Predicates []Predicate
	Bonus      float64
	Strength   string // "strong" or "moderate"
}

var compositePatterns = []compositePattern{
	{
		ID:          "SMOKING_GUN_1",
		Name:        "Classic AI Fingerprint",
		Description: "Heavy em-dash use with hidden characters after a long editing pause",
		Predicates: []Predicate{
			{Kind: CountAtLeast, Marker: "A1", Threshold: 5},
			{Kind: Present, Marker: "H5"},
			{Kind: TimeGapFlag},
		},
		Bonus: 50,
		Floor: ClassHigh,
	},
	{
		ID:          "SMOKING_GUN_2",
		Name:        "Template Writing Pattern",
		Description: "AI-favored vocabulary layered over transition-heavy, uniform structure",
		Predicates: []Predicate{
			{Kind: CountAtLeast, Marker: "E1", Threshold: 5},
			{Kind: CountAtLeast, Marker: "B1", Threshold: 4},
			{Kind: Present, Marker: "F1"},
		},
		Bonus: 40,
		Floor: ClassHigh,
	},
	{
		ID:          "SMOKING_GUN_3",
		Name:        "Wholesale Replacement",
		Description: "Extreme extent-of-edit with large insertions rewriting the document",
		Predicates: []Predicate{
			{Kind: ValueAbove, Marker: "C1", Threshold: 100},
			{Kind: CountAtLeast, Marker: "C2", Threshold: 2},
			{Kind: Present, Marker: "J1"},
		},
		Bonus: 60,
		Floor: ClassCritical,
	},
	{
		ID:          "SUSPICIOUS_COMBO_1",
		Name:        "Hollow Academic Prose",
		Description: "Methodology boilerplate and hedging with no concrete specifics",
		Predicates: []Predicate{
			{Kind: ValueAbove, Marker: "G1", Threshold: 0},
			{Kind: CountAtLeast, Marker: "I2", Threshold: 2},
			{Kind: CountAtLeast, Marker: "D1", Threshold: 2},
		},
		Bonus: 25,
		Floor: ClassModerate,
	},
	{
		ID:          "SUSPICIOUS_COMBO_2",
		Name:        "Paste Artifacts",
		Description: "Font, style and hidden-character artifacts co-occurring",
		Predicates: []Predicate{
			{Kind: Present, Marker: "H1"},
			{Kind: Present, Marker: "H2"},
			{Kind: Present, Marker: "H5"},
		},
		Bonus: 30,
		Floor: ClassModerate,
	},
}

var correlationPatterns = []correlationPattern{
	{
		ID:   "CORR_FORMAL_AI",
		Name: "Formal AI Writing Pattern",
		Predicates: []Predicate{
			{Kind: CountAtLeast, Marker: "A1", Threshold: 3},
			{Kind: CountAtLeast, Marker: "D2", Threshold: 2},
			{Kind: CountAtLeast, Marker: "E1", Threshold: 3},
		},
		Bonus:    15,
		Strength: "strong",
	},
	{
		ID:   "CORR_GENERIC_CONTENT",
		Name: "Generic Content Pattern",
		Predicates: []Predicate{
			{Kind: Present, Marker: "F1"},
			{Kind: ValueAtLeast, Marker: "G1", Threshold: 1.5},
			{Kind: CountAtLeast, Marker: "D1", Threshold: 2},
		},
		Bonus:    20,
		Strength: "strong",
	},
	{
		ID:   "CORR_STRUCTURED",
		Name: "Structured AI Pattern",
		Predicates: []Predicate{
			{Kind: CountAtLeast, Marker: "B1", Threshold: 4},
			{Kind: CountAtLeast, Marker: "B2", Threshold: 1},
			{Kind: CountAtLeast, Marker: "F2", Threshold: 1},
		},
		Bonus:    18,
		Strength: "strong",
	},
	{
		ID:   "CORR_OVERLY_FORMAL",
		Name: "Overly Formal Pattern",
		Predicates: []Predicate{
			{Kind: ValueAtLeast, Marker: "E2", Threshold: 0.7},
			{Kind: CountAtLeast, Marker: "E1", Threshold: 4},
			{Kind: CountAtLeast, Marker: "D2", Threshold: 2},
		},
		Bonus:    12,
		Strength: "strong",
	},
	{
		ID:   "CORR_UNIFORMITY",
		Name: "Overall Uniformity",
		Predicates: []Predicate{
			{Kind: Present, Marker: "E3"},
			{Kind: Present, Marker: "D4"},
		},
		Bonus:    10,
		Strength: "moderate",
	},
	{
		ID:   "CORR_ACADEMIC",
		Name: "Academic Red Flags",
		Predicates: []Predicate{
			{Kind: CountAtLeast, Marker: "I1", Threshold: 1},
			{Kind: CountAtLeast, Marker: "I2", Threshold: 2},
		},
		Bonus:    15,
		Strength: "moderate",
	},
}

// TriggeredPattern reports one matched composite or correlation pattern.
type TriggeredPattern struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Bonus       float64        `json:"bonus"`
	Floor       Classification `json:"auto_classify,omitempty"`
}

// TriggeredIndicator reports one matched human-authorship indicator.
type TriggeredIndicator struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Reduction   float64 `json:"score_reduction"`
	Rationale   string  `json:"rationale"`
}

// PatternReport is the full output of the pattern engine for one document.
type PatternReport struct {
	Composites       []TriggeredPattern   `json:"composite_patterns"`
	Correlations     []TriggeredPattern   `json:"correlation_patterns"`
	HumanIndicators  []TriggeredIndicator `json:"human_indicators"`
	CompositeBonus   float64              `json:"composite_bonus"`
	CorrelationBonus float64              `json:"correlation_bonus"`
	HumanReduction   float64              `json:"human_reduction"`
	Floor            Classification       `json:"classification_floor,omitempty"`
}

// EvaluatePatterns runs the composite, correlation and human-indicator
// tables against the marker results for one document.
func EvaluatePatterns(doc *document.Document, results []catalog.Result) PatternReport {
	byID := catalog.ByID(results)
	timeGap := hasEditTimeGap(doc)

	var report PatternReport
	for _, cp := range compositePatterns {
		if !allHold(cp.Predicates, byID, timeGap) {
			continue
		}
		report.Composites = append(report.Composites, TriggeredPattern{
			ID: cp.ID, Name: cp.Name, Description: cp.Description,
			Bonus: cp.Bonus, Floor: cp.Floor,
		})
		report.CompositeBonus += cp.Bonus
		if rankOf(cp.Floor) > rankOf(report.Floor) {
			report.Floor = cp.Floor
		}
	}
	for _, cr := range correlationPatterns {
		if !allHold(cr.Predicates, byID, timeGap) {
			continue
		}
		report.Correlations = append(report.Correlations, TriggeredPattern{
			ID: cr.ID, Name: cr.Name, Bonus: cr.Bonus,
		})
		report.CorrelationBonus += cr.Bonus
	}
	if report.CorrelationBonus > correlationBonusCap {
		report.CorrelationBonus = correlationBonusCap
	}
	for _, hi := range humanIndicators {
		if !hi.detect(doc, byID) {
			continue
		}
		report.HumanIndicators = append(report.HumanIndicators, TriggeredIndicator{
			ID: hi.id, Description: hi.description, Reduction: hi.reduction, Rationale: hi.rationale,
		})
		report.HumanReduction += hi.reduction
	}
	return report
}

func allHold(preds []Predicate, byID map[string]catalog.Result, timeGap bool) bool {
	for _, p := range preds {
		if !p.holds(byID, timeGap) {
			return false
		}
	}
	return true
}

// hasEditTimeGap reports a pause of at least editTimeGapThreshold between
// consecutive timestamped edits followed by an insertion of 50+ words.
func hasEditTimeGap(doc *document.Document) bool {
	var timed []document.Edit
	for _, e := range doc.Edits {
		if e.Timestamp != nil {
			timed = append(timed, e)
		}
	}
	if len(timed) < 2 {
		return false
	}
	sort.Slice(timed, func(i, j int) bool { return timed[i].Timestamp.Before(*timed[j].Timestamp) })
	for i := 1; i < len(timed); i++ {
		gap := timed[i].Timestamp.Sub(*timed[i-1].Timestamp)
		if gap >= editTimeGapThreshold && timed[i].Kind == document.EditInsert && timed[i].WordCount >= 50 {
			return true
		}
	}
	return false
}

// Human-authorship indicators. Each reduces the adjusted score; reductions
// stack but the final score still clamps at zero.

var (
	firstPersonRE   = regexp.MustCompile(`(?i)\b(i|we|my|our|me|mine|i'm|i've|i'd|we're|we've)\b`)
	colloquialismRE = regexp.MustCompile(`(?i)\b(gonna|kinda|sorta|stuff|basically|honestly|anyway|pretty much|you know|a lot of|sort of|kind of|to be fair)\b`)
	namedEntityRE   = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	figureRE        = regexp.MustCompile(`\d+(\.\d+)?%?`)
)

type humanIndicator struct {
	id          string
	description string
	rationale   string
	reduction   float64
	detect      func(doc *document.Document, byID map[string]catalog.Result) bool
}

var humanIndicators = []humanIndicator{
	{
		id:          "TYPO_PATTERN",
		rationale:   "Small typo-like edits suggest human revision.",
		description: "Edit history shows small natural typo corrections",
		reduction:   15,
		detect: func(doc *document.Document, _ map[string]catalog.Result) bool {
			fixes := 0
			for i := 1; i < len(doc.Edits); i++ {
				prev, cur := doc.Edits[i-1], doc.Edits[i]
				if prev.Kind == document.EditDelete && cur.Kind == document.EditInsert &&
					prev.WordCount <= 3 && cur.WordCount <= 3 &&
					prev.ParagraphIndex == cur.ParagraphIndex {
					fixes++
				}
			}
			return fixes >= 3
		},
	},
	{
		id:          "INCONSISTENT_STYLE",
		rationale:   "Natural variation suggests human writing.",
		description: "Natural variation in sentence rhythm and paragraph shape",
		reduction:   10,
		detect: func(doc *document.Document, byID map[string]catalog.Result) bool {
			// Uniformity markers silent plus genuinely uneven paragraphs.
			if r, ok := byID["F1"]; ok && r.Score > 0 {
				return false
			}
			if r, ok := byID["D4"]; ok && r.Score > 0 {
				return false
			}
			if len(doc.Paragraphs) < 4 {
				return false
			}
			lengths := make([]float64, len(doc.Paragraphs))
			for i, p := range doc.Paragraphs {
				lengths[i] = float64(document.CountWords(p))
			}
			m, sd := meanStd(lengths)
			return m > 0 && sd/m > 0.6
		},
	},
	{
		id:          "PERSONAL_VOICE",
		rationale:   "Personal voice is less typical of AI output.",
		description: "Consistent first-person perspective throughout",
		reduction:   20,
		detect: func(doc *document.Document, _ map[string]catalog.Result) bool {
			if doc.WordCount == 0 {
				return false
			}
			n := len(firstPersonRE.FindAllStringIndex(doc.Text, -1))
			return float64(n)/float64(doc.WordCount)*1000 >= 5
		},
	},
	{
		id:          "DOMAIN_EXPERTISE",
		rationale:   "Specific domain details suggest human expertise.",
		description: "Dense concrete specifics: named entities, figures, dates",
		reduction:   15,
		detect: func(doc *document.Document, byID map[string]catalog.Result) bool {
			if r, ok := byID["G1"]; ok && r.Score > 0 {
				return false
			}
			if doc.WordCount < 200 {
				return false
			}
			specifics := len(namedEntityRE.FindAllStringIndex(doc.Text, -1)) +
				len(figureRE.FindAllStringIndex(doc.Text, -1))
			return float64(specifics)/float64(doc.WordCount)*1000 >= 40
		},
	},
	{
		id:          "COLLOQUIALISMS",
		rationale:   "Colloquial tone suggests human writing.",
		description: "Informal register and conversational asides",
		reduction:   10,
		detect: func(doc *document.Document, _ map[string]catalog.Result) bool {
			return len(colloquialismRE.FindAllStringIndex(doc.Text, -1)) >= 3
		},
	},
}

func meanStd(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	m := sum / float64(len(xs))
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return m, math.Sqrt(ss / float64(len(xs)))
}
