// Package ingest turns uploaded text files into analyzer input. Binary
// document formats are out of scope: edit history, fonts, styles, and file
// metadata arrive pre-extracted through the API contract instead.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Parsed is everything recovered from one file.
type Parsed struct {
	Filename string
	Text     string
}

// ParseFile reads and parses path by extension. Supported: .txt, .md.
func ParseFile(path string) (*Parsed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(raw, filepath.Base(path))
}

// Parse parses an in-memory file by the extension of filename.
func Parse(raw []byte, filename string) (*Parsed, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", "":
		return &Parsed{Filename: filename, Text: normalizeWhitespace(string(raw))}, nil
	case ".md", ".markdown":
		return &Parsed{Filename: filename, Text: normalizeWhitespace(stripMarkdown(string(raw)))}, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

var (
	fencedCodeRE = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRE = regexp.MustCompile("`[^`\n]*`")
	imageRE      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRE       = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
)

// stripMarkdown removes the markup that is not prose: fenced and inline code
// and link targets. Structural characters like list bullets and headings stay
// in place so structural markers still see them.
func stripMarkdown(text string) string {
	text = fencedCodeRE.ReplaceAllString(text, "")
	text = inlineCodeRE.ReplaceAllString(text, "")
	text = imageRE.ReplaceAllString(text, "")
	text = linkRE.ReplaceAllString(text, "$1")
	return text
}

// normalizeWhitespace normalizes line endings and collapses runs of blank
// lines to one. Intra-line spacing is left untouched: spacing irregularities
// are themselves evidence the markers read.
func normalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 1 {
				continue
			}
			out = append(out, "")
			continue
		}
		blanks = 0
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
