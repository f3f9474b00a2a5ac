/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/tagasalin/internal/evaluation"
	"github.com/valpere/tagasalin/internal/scorer"
	"github.com/valpere/tagasalin/internal/store"
	"github.com/valpere/tagasalin/internal/translator"
)

var (
	evalModel   string
	evalService string
	evalOut     string
	evalProfile string
	evalDBPath  string
	evalTimeout time.Duration
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the translation accuracy test battery",
	Long: `Run the fixed battery of English-to-Tagalog test cases through the
configured model, score each translation against its reference, and write
a JSON report with overall, per-category, and per-difficulty statistics.

Scoring profiles:
  simple  semantic 40%, grammar 30%, terms 30% (Jaccard token overlap)
  full    semantic 35%, grammar 30%, cultural 20%, terms 15%`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(evalService)
		if err != nil {
			return err
		}
		if evalModel == "" {
			evalModel = defaultModelFor(evalService)
		}

		var scoreCfg scorer.Config
		switch evalProfile {
		case "simple":
			scoreCfg = scorer.SimpleConfig
		case "full":
			scoreCfg = scorer.FullConfig
		default:
			return fmt.Errorf("unknown profile %q (available: simple, full)", evalProfile)
		}

		ctx := context.Background()
		cfg := translator.ServiceConfig{Model: evalModel, Timeout: evalTimeout}

		runner := evaluation.NewRunner(svc, cfg, scorer.New(scoreCfg), os.Stderr)

		start := time.Now()
		results := runner.Run(ctx)
		report := evaluation.BuildReport(results, evalModel, translator.DefaultTemperature, time.Since(start))

		if err := report.WriteJSON(evalOut); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		if evalDBPath != "" {
			db, err := store.New(evalDBPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			_, err = db.SaveEvaluationRun(ctx, store.EvaluationRun{
				Model:        evalModel,
				Profile:      evalProfile,
				TotalCases:   report.TestSummary.TotalTestCases,
				Successful:   report.TestSummary.SuccessfulTests,
				Failed:       report.TestSummary.FailedTests,
				OverallScore: report.AccuracyMetrics.Overall.Mean,
				ReportPath:   evalOut,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to record run: %v\n", err)
			}
		}

		printReportSummary(report)
		fmt.Printf("\nReport written to %s\n", evalOut)
		return nil
	},
}

func printReportSummary(report *evaluation.Report) {
	overall := report.AccuracyMetrics.Overall

	fmt.Printf("Model: %s\n", report.TestSummary.Model)
	fmt.Printf("Tests: %d total, %d successful, %d failed\n",
		report.TestSummary.TotalTestCases,
		report.TestSummary.SuccessfulTests,
		report.TestSummary.FailedTests)
	fmt.Printf("Overall score: %.1f (min %.1f, max %.1f, stddev %.1f)\n",
		overall.Mean, overall.Min, overall.Max, overall.StdDev)
	fmt.Printf("Components: semantic %.1f, grammar %.1f, cultural %.1f, terms %.1f\n",
		overall.AvgSemantic, overall.AvgGrammar, overall.AvgCultural, overall.AvgTerms)

	if len(report.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, r := range report.Recommendations {
			fmt.Printf("  - %s\n", r)
		}
	}
}

var evaluateHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded evaluation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if evalDBPath == "" {
			return fmt.Errorf("--db is required")
		}

		db, err := store.New(evalDBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		runs, err := db.ListEvaluationRuns(context.Background())
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No evaluation runs recorded")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tMODEL\tPROFILE\tCASES\tOK\tFAILED\tSCORE\tREPORT")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%.1f\t%s\n",
				r.CreatedAt.Format("2006-01-02 15:04"),
				r.Model, r.Profile, r.TotalCases, r.Successful, r.Failed,
				r.OverallScore, r.ReportPath)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.AddCommand(evaluateHistoryCmd)

	evaluateCmd.PersistentFlags().StringVar(&evalDBPath, "db", "", "SQLite database for run history")

	evaluateCmd.Flags().StringVar(&evalModel, "model", "", "Model name (default per service)")
	evaluateCmd.Flags().StringVar(&evalService, "service", "openai", "Backend service: openai or openrouter")
	evaluateCmd.Flags().StringVar(&evalOut, "out", "tagalog_translation_test_results.json", "Report output path")
	evaluateCmd.Flags().StringVar(&evalProfile, "profile", "full", "Scoring profile: simple or full")
	evaluateCmd.Flags().DurationVar(&evalTimeout, "timeout", 120*time.Second, "Per-request timeout")
}
