// Command aware analyzes one document from the command line and prints the
// verdict, or the full result as JSON with -json.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"aware/internal/analyzer"
	"aware/internal/catalog"
	"aware/internal/document"
	"aware/internal/ingest"
	"aware/internal/scoring"
)

func main() {
	docType := flag.String("type", "", "document type: academic, business or general (default: auto-detect)")
	originalPath := flag.String("original", "", "path to the pre-edit version for comparative scoring")
	asJSON := flag.Bool("json", false, "print the full result as JSON")
	verbose := flag.Bool("v", false, "also print per-marker findings")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file|->\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if err := run(flag.Arg(0), *originalPath, *docType, *asJSON, *verbose, log); err != nil {
		fmt.Fprintln(os.Stderr, "aware:", err)
		os.Exit(1)
	}
}

func run(path, originalPath, docType string, asJSON, verbose bool, log *slog.Logger) error {
	parsed, err := parseArg(path)
	if err != nil {
		return err
	}
	req := analyzer.Request{
		Text:     parsed.Text,
		Filename: parsed.Filename,
		DocType:  document.Type(docType),
	}
	if originalPath != "" {
		orig, err := parseArg(originalPath)
		if err != nil {
			return fmt.Errorf("original: %w", err)
		}
		req.OriginalText = orig.Text
	}

	a, err := analyzer.New(scoring.Default(), log)
	if err != nil {
		return err
	}
	res, err := a.Analyze(context.Background(), req)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printSummary(res, verbose)
	return nil
}

// parseArg resolves a CLI path argument; "-" reads from stdin.
func parseArg(path string) (*ingest.Parsed, error) {
	if path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return ingest.Parse(raw, "stdin")
	}
	return ingest.ParseFile(path)
}

func printSummary(res *analyzer.Result, verbose bool) {
	fmt.Printf("%s  (%d words, %s)\n", res.Meta.Filename, res.Meta.WordCount, res.Meta.DocumentType)
	fmt.Printf("score          %.1f / 100\n", res.Score)
	fmt.Printf("classification %s\n", res.Classification)
	fmt.Printf("confidence     %.2f (%s)\n", res.ConfidenceScore, res.Confidence)
	fmt.Println(res.Recommendation)

	if len(res.Composites) > 0 {
		fmt.Println("\npatterns:")
		for _, p := range res.Composites {
			fmt.Printf("  %s (+%.0f)\n", p.Name, p.Bonus)
		}
	}
	if len(res.HumanIndicators) > 0 {
		fmt.Println("\nhuman indicators:")
		for _, h := range res.HumanIndicators {
			fmt.Printf("  %s (-%.0f)\n", h.Description, h.Reduction)
		}
	}
	if !verbose {
		return
	}

	found := make([]catalog.Result, 0, len(res.Markers))
	for _, m := range res.Markers {
		if m.Score > 0 {
			found = append(found, m)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Score > found[j].Score })
	if len(found) > 0 {
		fmt.Println("\nmarkers:")
		for _, m := range found {
			fmt.Printf("  %-4s %-40s %5.1f (x%d)\n", m.ID, m.Name, m.Score, m.Count)
		}
	}
}
