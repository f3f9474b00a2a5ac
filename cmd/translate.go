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
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/tagasalin/internal/chunker"
	"github.com/valpere/tagasalin/internal/markdown"
	"github.com/valpere/tagasalin/internal/placeholder"
	"github.com/valpere/tagasalin/internal/store"
	"github.com/valpere/tagasalin/internal/translator"
	"github.com/valpere/tagasalin/internal/validator"
)

var (
	inputFile     string
	outputFile    string
	model         string
	service       string
	formal        bool
	glossaryTerms []string
	maxWords      int
	contextWords  int
	stripMarkdown bool
	dbPath        string
	noCache       bool
	timeout       time.Duration
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate English text into Tagalog",
	Long: `Translate English text into Tagalog (Filipino) through an LLM
chat-completions API.

Input is read from --input or stdin; output goes to --output or stdout.
Long texts are split into paragraph-aligned chunks under a word budget,
translated sequentially, and rejoined. The tail of each translated chunk
is fed to the next request as context so the tone stays continuous.

Glossary terms (from --glossary and the database) are kept verbatim.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(inputFile)
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("input text is empty")
		}

		if stripMarkdown {
			text = markdown.ToPlainText([]byte(text))
		}

		svc, err := newService(service)
		if err != nil {
			return err
		}
		if model == "" {
			model = defaultModelFor(service)
		}

		ctx := context.Background()

		var db *store.Store
		if dbPath != "" {
			db, err = store.New(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()
		}

		glossary := append([]string(nil), glossaryTerms...)
		if db != nil {
			stored, err := db.ListGlossaryTerms(ctx)
			if err != nil {
				return fmt.Errorf("failed to load glossary: %w", err)
			}
			for _, e := range stored {
				glossary = append(glossary, e.Term)
			}
		}

		if db != nil && !noCache {
			if cached, found, cacheErr := db.GetCachedTranslation(ctx, text, formal); cacheErr == nil && found {
				fmt.Fprintln(os.Stderr, "Using cached translation")
				return writeOutput(outputFile, cached)
			}
		}

		// Protect code spans and markup before chunking so the model does
		// not translate them.
		protected, markers := placeholder.Protect(text)

		systemInstruction := translator.BuildSystemInstruction(formal, glossary)
		if len(markers) > 0 {
			systemInstruction += "\n" + placeholder.InstructionHint()
		}

		chunks := chunker.Chunk(protected, maxWords)
		fmt.Fprintf(os.Stderr, "Translating %d chunk(s) with %s (%s)\n", len(chunks), service, model)

		cfg := translator.ServiceConfig{Model: model, Timeout: timeout}

		var (
			translated []string
			prevTail   string
		)
		for i, chunk := range chunks {
			fmt.Fprintf(os.Stderr, "[%d/%d] %d words\n", i+1, len(chunks), chunker.WordCount(chunk))

			result, err := svc.Translate(ctx, cfg, translator.TranslateRequest{
				Text:              chunk,
				SystemInstruction: systemInstruction,
				PreviousContext:   prevTail,
			})
			if err != nil {
				return fmt.Errorf("chunk %d/%d failed: %w", i+1, len(chunks), err)
			}

			translated = append(translated, result.TranslatedText)
			prevTail = chunker.ExtractContext(result.TranslatedText, contextWords)
		}

		finalText := strings.Join(translated, "\n\n")
		if len(markers) > 0 {
			if missing := placeholder.Validate(finalText, markers); len(missing) > 0 {
				fmt.Fprintf(os.Stderr, "Warning: %d placeholder(s) lost in translation\n", len(missing))
			}
			finalText = placeholder.Restore(finalText, markers)
		}

		v := validator.New()
		if ok, verr := v.IsTagalog(finalText); !ok {
			fmt.Fprintf(os.Stderr, "Warning: output may not be Tagalog: %v\n", verr)
		}

		if db != nil && !noCache {
			if err := db.SaveToMemory(ctx, text, formal, finalText, model); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to cache translation: %v\n", err)
			}
		}

		return writeOutput(outputFile, finalText)
	},
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

func writeOutput(path, text string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate (default stdin)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for translation (default stdout)")
	translateCmd.Flags().StringVar(&model, "model", "", "Model name (default per service)")
	translateCmd.Flags().StringVar(&service, "service", "openai", "Backend service: openai or openrouter")
	translateCmd.Flags().BoolVar(&formal, "formal", false, "Use a polite, formal register (po/opo)")
	translateCmd.Flags().StringSliceVar(&glossaryTerms, "glossary", nil, "Terms to keep untranslated (comma-separated)")
	translateCmd.Flags().IntVar(&maxWords, "max-words", chunker.DefaultMaxWords, "Word budget per chunk")
	translateCmd.Flags().IntVar(&contextWords, "context-words", chunker.DefaultContextWords, "Trailing words carried as context between chunks")
	translateCmd.Flags().BoolVar(&stripMarkdown, "strip-markdown", false, "Reduce Markdown input to plain text first")
	translateCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database for translation memory and glossary")
	translateCmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the translation memory")
	translateCmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "Per-request timeout")
}
