package evaluation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// TestSummary carries run-level bookkeeping for the report header.
type TestSummary struct {
	Date            string  `json:"date"`
	TotalTestCases  int     `json:"total_test_cases"`
	SuccessfulTests int     `json:"successful_tests"`
	FailedTests     int     `json:"failed_tests"`
	TotalTimeSecs   float64 `json:"total_processing_time"`
	Model           string  `json:"api_model_used"`
	Temperature     float32 `json:"temperature_setting"`
}

// OverallMetrics aggregates the whole battery: a Summary of the composite
// scores plus the mean of each component score.
type OverallMetrics struct {
	Summary
	AvgSemantic float64 `json:"average_semantic_score"`
	AvgGrammar  float64 `json:"average_grammatical_score"`
	AvgCultural float64 `json:"average_cultural_score"`
	AvgTerms    float64 `json:"average_term_preservation_score"`
}

// Metrics groups the statistics of a run.
type Metrics struct {
	Overall      OverallMetrics     `json:"overall"`
	ByCategory   map[string]Summary `json:"by_category"`
	ByDifficulty map[string]Summary `json:"by_difficulty"`
}

// Report is the serializable output of an evaluation run.
type Report struct {
	TestSummary     TestSummary `json:"test_summary"`
	AccuracyMetrics Metrics     `json:"accuracy_metrics"`
	DetailedResults []Result    `json:"detailed_results"`
	Recommendations []string    `json:"recommendations"`
}

// Recommendation thresholds. Fixed by convention; the wording is consumed by
// humans skimming the report, nothing parses it.
const (
	excellentThreshold  = 90
	goodThreshold       = 80
	acceptableThreshold = 70
	categoryThreshold   = 80
	difficultyThreshold = 75
)

// BuildReport aggregates results into the final report structure.
func BuildReport(results []Result, model string, temperature float32, totalTime time.Duration) *Report {
	summary := TestSummary{
		Date:           time.Now().Format(time.RFC3339),
		TotalTestCases: len(results),
		TotalTimeSecs:  totalTime.Seconds(),
		Model:          model,
		Temperature:    temperature,
	}
	for _, r := range results {
		if r.Failed() {
			summary.FailedTests++
		} else {
			summary.SuccessfulTests++
		}
	}

	metrics := buildMetrics(results)

	return &Report{
		TestSummary:     summary,
		AccuracyMetrics: metrics,
		DetailedResults: results,
		Recommendations: recommendations(metrics),
	}
}

func buildMetrics(results []Result) Metrics {
	var (
		overall  []float64
		semantic float64
		grammar  float64
		cultural float64
		terms    float64
	)
	byCategory := map[string][]float64{}
	byDifficulty := map[string][]float64{}

	for _, r := range results {
		overall = append(overall, r.OverallScore)
		semantic += r.Scores.Semantic
		grammar += r.Scores.Grammar
		cultural += r.Scores.Cultural
		terms += r.Scores.Terms
		byCategory[r.Category] = append(byCategory[r.Category], r.OverallScore)
		byDifficulty[r.Difficulty] = append(byDifficulty[r.Difficulty], r.OverallScore)
	}

	m := Metrics{
		Overall:      OverallMetrics{Summary: Summarize(overall)},
		ByCategory:   map[string]Summary{},
		ByDifficulty: map[string]Summary{},
	}
	if n := float64(len(results)); n > 0 {
		m.Overall.AvgSemantic = semantic / n
		m.Overall.AvgGrammar = grammar / n
		m.Overall.AvgCultural = cultural / n
		m.Overall.AvgTerms = terms / n
	}
	for cat, scores := range byCategory {
		m.ByCategory[cat] = Summarize(scores)
	}
	for diff, scores := range byDifficulty {
		m.ByDifficulty[diff] = Summarize(scores)
	}
	return m
}

// recommendations turns fixed score thresholds into human-readable remarks.
func recommendations(m Metrics) []string {
	var recs []string

	overall := m.Overall.Mean
	switch {
	case overall >= excellentThreshold:
		recs = append(recs, "Excellent overall performance. The translation system demonstrates high accuracy across all categories.")
	case overall >= goodThreshold:
		recs = append(recs, "Good performance with room for improvement in specific areas.")
	case overall >= acceptableThreshold:
		recs = append(recs, "Acceptable performance but significant improvements needed.")
	default:
		recs = append(recs, "Performance below acceptable standards. Major improvements required.")
	}

	// Deterministic order for stable reports.
	for _, cat := range sortedKeys(m.ByCategory) {
		if s := m.ByCategory[cat]; s.Mean < categoryThreshold {
			recs = append(recs, fmt.Sprintf("Focus on improving %s translations - current average: %.1f%%", cat, s.Mean))
		}
	}
	for _, diff := range sortedKeys(m.ByDifficulty) {
		if s := m.ByDifficulty[diff]; s.Mean < difficultyThreshold {
			recs = append(recs, fmt.Sprintf("Enhance handling of %s difficulty content - current average: %.1f%%", diff, s.Mean))
		}
	}

	return recs
}

func sortedKeys(m map[string]Summary) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteJSON serializes the report to path as indented UTF-8 JSON. HTML
// escaping is disabled so Tagalog punctuation and other non-ASCII characters
// stay readable in the file.
func (r *Report) WriteJSON(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
