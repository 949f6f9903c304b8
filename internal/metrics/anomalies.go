package metrics

import (
	"math"

	"aware/internal/document"
)

// Anomaly is one statistical irregularity worth surfacing.
type Anomaly struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// Anomalies aggregates the z-score based irregularity checks.
type Anomalies struct {
	Findings []Anomaly `json:"anomalies"`
	Score    float64   `json:"anomaly_score"`
	Count    int       `json:"anomaly_count"`
}

// detectAnomalies looks for distributions that are too clean to be human:
// outlier-free sentence lengths, near-identical paragraph sizes, and word
// lengths pinned to the model-typical band.
func detectAnomalies(doc *document.Document) Anomalies {
	findings := make([]Anomaly, 0, 3)
	score := 0.0

	sentLengths := make([]float64, 0, len(doc.Sentences))
	for _, s := range doc.Sentences {
		if n := document.CountWords(s); n > 0 {
			sentLengths = append(sentLengths, float64(n))
		}
	}
	if len(sentLengths) >= 5 {
		m := mean(sentLengths)
		sd := pstdev(sentLengths)
		outliers := 0
		if sd > 0 {
			for _, l := range sentLengths {
				if math.Abs((l-m)/sd) > 2.5 {
					outliers++
				}
			}
		}
		if float64(outliers)/float64(len(sentLengths)) < 0.05 {
			findings = append(findings, Anomaly{
				Type:        "Uniform Sentence Lengths",
				Description: "Unusually consistent sentence lengths",
				Severity:    "medium",
			})
			score += 10
		}
	}

	paraLengths := make([]float64, 0, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		if n := document.CountWords(p); n > 0 {
			paraLengths = append(paraLengths, float64(n))
		}
	}
	if len(paraLengths) >= 3 {
		minLen, maxLen := paraLengths[0], paraLengths[0]
		for _, l := range paraLengths {
			if l < minLen {
				minLen = l
			}
			if l > maxLen {
				maxLen = l
			}
		}
		avg := mean(paraLengths)
		if avg > 50 && (maxLen-minLen)/avg < 0.3 {
			findings = append(findings, Anomaly{
				Type:        "Uniform Paragraph Lengths",
				Description: "Paragraphs are suspiciously similar in length",
				Severity:    "high",
			})
			score += 15
		}
	}

	if len(doc.Words) >= 50 {
		short := 0
		long := 0
		for _, w := range doc.Words {
			switch {
			case len(w) <= 3:
				short++
			case len(w) >= 8:
				long++
			}
		}
		shortRatio := float64(short) / float64(len(doc.Words))
		longRatio := float64(long) / float64(len(doc.Words))
		if shortRatio > 0.35 && shortRatio < 0.45 && longRatio > 0.08 && longRatio < 0.15 {
			findings = append(findings, Anomaly{
				Type:        "Optimal Word Length Distribution",
				Description: "Word lengths follow AI-typical distribution",
				Severity:    "low",
			})
			score += 5
		}
	}

	return Anomalies{Findings: findings, Score: score, Count: len(findings)}
}
