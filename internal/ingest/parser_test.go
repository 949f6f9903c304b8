package ingest

import (
	"strings"
	"testing"
)

func TestParsePlainText(t *testing.T) {
	raw := "First line.\r\n\r\n\r\n\r\nSecond  paragraph with  odd   spacing."
	p, err := Parse([]byte(raw), "note.txt")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if strings.Contains(p.Text, "\r") {
		t.Fatalf("line endings not normalized")
	}
	if strings.Count(p.Text, "\n\n") != 1 {
		t.Fatalf("blank-line runs should collapse to one: %q", p.Text)
	}
	if !strings.Contains(p.Text, "odd   spacing") {
		t.Fatalf("intra-line spacing must be preserved: %q", p.Text)
	}
}

func TestParseMarkdownStripsCodeAndLinks(t *testing.T) {
	raw := "# Title\n\nSee [the docs](https://example.com/x) and `inline` use.\n\n```go\nfunc secret() {}\n```\n\nTail text."
	p, err := Parse([]byte(raw), "readme.md")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if strings.Contains(p.Text, "example.com") {
		t.Fatalf("link target leaked: %q", p.Text)
	}
	if !strings.Contains(p.Text, "the docs") {
		t.Fatalf("link text dropped: %q", p.Text)
	}
	if strings.Contains(p.Text, "secret") || strings.Contains(p.Text, "inline") {
		t.Fatalf("code leaked into prose: %q", p.Text)
	}
	if !strings.Contains(p.Text, "# Title") {
		t.Fatalf("structural markup should stay: %q", p.Text)
	}
}

func TestParseNoExtensionTreatedAsText(t *testing.T) {
	p, err := Parse([]byte("bare text"), "LICENSE")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Text != "bare text" {
		t.Fatalf("text=%q", p.Text)
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	for _, name := range []string{"file.pdf", "file.docx", "file.doc"} {
		if _, err := Parse([]byte("x"), name); err == nil {
			t.Fatalf("%s: expected error for unsupported extension", name)
		}
	}
}
