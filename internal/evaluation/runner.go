package evaluation

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/valpere/tagasalin/internal/scorer"
	"github.com/valpere/tagasalin/internal/translator"
)

// Result is the scored outcome of one test case. Constructed once, never
// mutated. A failed remote call leaves the scores zeroed and the error
// recorded; the run always continues to the next case.
type Result struct {
	TestID         string        `json:"test_id"`
	Category       string        `json:"category"`
	Difficulty     string        `json:"difficulty"`
	English        string        `json:"english"`
	Reference      string        `json:"reference"`
	Translated     string        `json:"translated"`
	Scores         scorer.Scores `json:"scores"`
	OverallScore   float64       `json:"overall_score"`
	ProcessingSecs float64       `json:"processing_time"`
	Errors         []string      `json:"errors"`
}

// Failed reports whether the case recorded any error.
func (r Result) Failed() bool {
	return len(r.Errors) > 0
}

// Runner executes the battery sequentially against one translation service.
type Runner struct {
	service  translator.TranslationService
	cfg      translator.ServiceConfig
	scorer   *scorer.Scorer
	cases    []TestCase
	progress io.Writer
}

// NewRunner builds a Runner over the fixed battery. progress receives
// per-case status lines; pass io.Discard to silence them.
func NewRunner(service translator.TranslationService, cfg translator.ServiceConfig, sc *scorer.Scorer, progress io.Writer) *Runner {
	return &Runner{
		service:  service,
		cfg:      cfg,
		scorer:   sc,
		cases:    Battery(),
		progress: progress,
	}
}

// WithCases substitutes the battery, used by tests.
func (r *Runner) WithCases(cases []TestCase) *Runner {
	r.cases = cases
	return r
}

// Run translates and scores every test case in order. Each case blocks until
// complete before the next begins; a remote failure is captured into that
// case's result and never aborts the run.
func (r *Runner) Run(ctx context.Context) []Result {
	results := make([]Result, 0, len(r.cases))

	for i, tc := range r.cases {
		fmt.Fprintf(r.progress, "[%d/%d] %s (%s)\n", i+1, len(r.cases), tc.ID, tc.Category)
		result := r.runCase(ctx, tc)
		results = append(results, result)

		if result.Failed() {
			fmt.Fprintf(r.progress, "  ERROR: %s\n", result.Errors[0])
			continue
		}
		fmt.Fprintf(r.progress, "  semantic=%.1f grammar=%.1f cultural=%.1f terms=%.1f overall=%.1f (%.2fs)\n",
			result.Scores.Semantic, result.Scores.Grammar, result.Scores.Cultural,
			result.Scores.Terms, result.OverallScore, result.ProcessingSecs)
	}

	return results
}

func (r *Runner) runCase(ctx context.Context, tc TestCase) Result {
	result := Result{
		TestID:     tc.ID,
		Category:   tc.Category,
		Difficulty: tc.Difficulty,
		English:    tc.English,
		Reference:  tc.Reference,
		Errors:     []string{},
	}

	// Expected terms double as the keep-verbatim glossary for the oracle.
	req := translator.TranslateRequest{
		Text:              tc.English,
		SystemInstruction: translator.BuildSystemInstruction(true, tc.ExpectedTerms),
	}

	start := time.Now()
	res, err := r.service.Translate(ctx, r.cfg, req)
	result.ProcessingSecs = time.Since(start).Seconds()

	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	result.Translated = res.TranslatedText
	result.Scores, result.OverallScore = r.scorer.Score(
		res.TranslatedText, tc.Reference, tc.Category, tc.ExpectedTerms)
	return result
}
