// Package document defines the immutable value the scoring engine consumes.
// A Document is built once per request from already-extracted text plus
// whatever optional context the ingestion side could recover (edit history,
// file metadata, font/style info) and is never mutated afterwards.
package document

import (
	"regexp"
	"strings"
	"time"
)

// Type is the coarse genre of a document. It selects the Bayesian prior and
// steers adaptive category weighting.
type Type string

const (
	TypeAcademic Type = "academic"
	TypeBusiness Type = "business"
	TypeGeneral  Type = "general"
)

// SizeClass buckets an edit span by how much text it touches.
type SizeClass string

const (
	SizeWord      SizeClass = "word"
	SizePhrase    SizeClass = "phrase"
	SizeSentence  SizeClass = "sentence"
	SizeParagraph SizeClass = "paragraph"
)

// Edit kinds as they appear in tracked-change payloads.
const (
	EditInsert = "ins"
	EditDelete = "del"
)

// Edit is one tracked change recovered by the ingestion collaborator.
// ParagraphIndex is -1 when the edit could not be located.
type Edit struct {
	Kind           string     `json:"type"` // "ins" or "del"
	WordCount      int        `json:"word_count"`
	ParagraphIndex int        `json:"paragraph_index"`
	Text           string     `json:"text,omitempty"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
}

// Size derives the edit's size class from its word count.
func (e Edit) Size() SizeClass {
	switch {
	case e.WordCount <= 2:
		return SizeWord
	case e.WordCount <= 8:
		return SizePhrase
	case e.WordCount < 50:
		return SizeSentence
	default:
		return SizeParagraph
	}
}

// FontInfo summarizes font usage for formats that carry it.
type FontInfo struct {
	Clusters int    `json:"clusters"`
	Dominant string `json:"dominant,omitempty"`
}

// StyleInfo lists the distinct heading/list/spacing styles seen in the file.
type StyleInfo struct {
	HeadingStyles []string  `json:"heading_styles,omitempty"`
	ListStyles    []string  `json:"list_styles,omitempty"`
	SpacingValues []float64 `json:"spacing_values,omitempty"`
}

// FileMeta carries file-level metadata when the source format exposes it.
// Nil pointer fields mean the value was not recoverable.
type FileMeta struct {
	Created        *time.Time `json:"created,omitempty"`
	Modified       *time.Time `json:"modified,omitempty"`
	Revision       *int       `json:"revision,omitempty"`
	EditingMinutes *int       `json:"editing_minutes,omitempty"`
}

// Document is the engine's sole input. All slices are precomputed at build
// time so concurrent detectors can share one instance without locking.
type Document struct {
	Filename   string
	Text       string
	Paragraphs []string
	Sentences  []string
	Words      []string

	WordCount      int
	SentenceCount  int
	ParagraphCount int

	Type     Type
	Original *Document
	Edits    []Edit
	Fonts    *FontInfo
	Styles   *StyleInfo
	Meta     *FileMeta
}

var (
	wordRE     = regexp.MustCompile(`\w+`)
	sentenceRE = regexp.MustCompile(`[.!?]+\s+`)
	paraRE     = regexp.MustCompile(`\n\s*\n`)
)

// Words extracts word tokens the same way every stage of the engine does.
func SplitWords(text string) []string {
	return wordRE.FindAllString(text, -1)
}

// CountWords reports the number of word tokens in text.
func CountWords(text string) int {
	return len(wordRE.FindAllStringIndex(text, -1))
}

// Build constructs a Document from raw text, normalizing line endings and
// precomputing paragraph/sentence/word segmentation. When docType is empty
// the type is inferred from content signals.
func Build(text, filename string, docType Type) *Document {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	paragraphs := make([]string, 0, 16)
	for _, p := range paraRE.Split(normalized, -1) {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}

	sentences := make([]string, 0, 64)
	for _, s := range sentenceRE.Split(normalized, -1) {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}

	words := SplitWords(normalized)
	if docType == "" {
		docType = DetectType(normalized)
	}

	return &Document{
		Filename:       filename,
		Text:           normalized,
		Paragraphs:     paragraphs,
		Sentences:      sentences,
		Words:          words,
		WordCount:      len(words),
		SentenceCount:  len(sentences),
		ParagraphCount: len(paragraphs),
		Type:           docType,
	}
}

var academicSignals = []string{
	"abstract", "introduction", "methodology", "results", "discussion",
	"conclusion", "references", "et al.", "p-value", "hypothesis", "statistical",
}

var businessSignals = []string{
	"executive summary", "stakeholder", "roi", "kpi", "deliverable",
	"milestone", "quarterly",
}

// DetectType infers the document genre from signal phrases. Academic wins
// over business when both thresholds are met.
func DetectType(text string) Type {
	lower := strings.ToLower(text)
	academic := 0
	for _, s := range academicSignals {
		if strings.Contains(lower, s) {
			academic++
		}
	}
	business := 0
	for _, s := range businessSignals {
		if strings.Contains(lower, s) {
			business++
		}
	}
	if academic > 5 {
		return TypeAcademic
	}
	if business > 3 {
		return TypeBusiness
	}
	return TypeGeneral
}

// HasEditHistory reports whether tracked changes were supplied.
func (d *Document) HasEditHistory() bool { return len(d.Edits) > 0 }

// HasTimingData reports whether total editing time was supplied.
func (d *Document) HasTimingData() bool {
	return d.Meta != nil && d.Meta.EditingMinutes != nil
}
