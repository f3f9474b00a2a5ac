// Package chunker splits large texts into translatable chunks under an
// advisory word budget while preserving paragraph and sentence integrity.
// It also extracts a sliding-window context snippet (last N words) for use
// with LLM translators to maintain continuity across chunk boundaries.
package chunker

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// DefaultMaxWords is the default word budget per chunk.
	DefaultMaxWords = 4000

	// DefaultContextWords is the default number of words extracted by
	// ExtractContext for use as a sliding-window context.
	DefaultContextWords = 25
)

var paragraphSep = regexp.MustCompile(`\n{2,}`)

// WordCount returns the number of whitespace-delimited tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SplitParagraphs splits text into paragraphs on blank lines. Windows line
// endings are normalized first; empty paragraphs are dropped.
func SplitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := paragraphSep.Split(strings.TrimSpace(text), -1)

	paras := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// Chunk greedily packs paragraphs into chunks of at most maxWords words.
// Paragraphs inside a chunk stay separated by a blank line. A paragraph
// larger than the budget is resplit at sentence boundaries; a single
// sentence group that still exceeds the budget is emitted as one chunk
// rather than truncated; the budget is advisory, not a hard limit.
//
// Empty or whitespace-only input yields no chunks. If maxWords ≤ 0,
// DefaultMaxWords is used.
func Chunk(text string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}

	var (
		chunks []string
		buff   []string
		count  int
	)

	flush := func() {
		if len(buff) > 0 {
			chunks = append(chunks, strings.Join(buff, "\n\n"))
			buff, count = nil, 0
		}
	}

	for _, para := range SplitParagraphs(text) {
		wc := WordCount(para)

		if wc > maxWords {
			// Oversized paragraph: pack its sentences into groups and
			// treat each group as a paragraph-sized unit.
			for _, group := range packSentences(para, maxWords) {
				gwc := WordCount(group)
				if count+gwc > maxWords {
					flush()
				}
				buff = append(buff, group)
				count += gwc
				if count >= maxWords {
					flush()
				}
			}
			continue
		}

		if count+wc > maxWords {
			flush()
		}
		buff = append(buff, para)
		count += wc
	}
	flush()

	return chunks
}

// packSentences splits a paragraph at sentence boundaries and greedily
// packs the sentences into groups of at most maxWords words. A single
// sentence over the budget becomes its own group, emitted verbatim.
func packSentences(para string, maxWords int) []string {
	sentences := splitSentences(para)

	var (
		groups []string
		cur    []string
		curWC  int
	)
	for _, s := range sentences {
		swc := WordCount(s)
		if curWC+swc > maxWords && len(cur) > 0 {
			groups = append(groups, strings.Join(cur, " "))
			cur, curWC = nil, 0
		}
		cur = append(cur, s)
		curWC += swc
	}
	if len(cur) > 0 {
		groups = append(groups, strings.Join(cur, " "))
	}
	return groups
}

// splitSentences splits text after terminal punctuation (. ! ?) followed by
// whitespace. The terminator stays attached to its sentence.
func splitSentences(text string) []string {
	var (
		sentences []string
		start     int
	)
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		r := runes[i]
		if (r == '.' || r == '!' || r == '?') && unicode.IsSpace(runes[i+1]) {
			s := strings.TrimSpace(string(runes[start : i+1]))
			if s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// ExtractContext returns the last wordCount words of text, joined by a single
// space. It is intended for use as a sliding-window context snippet passed to
// LLM translators so they can maintain narrative continuity across chunks.
// If text has fewer words than wordCount, the entire text is returned.
// If wordCount ≤ 0, DefaultContextWords is used.
func ExtractContext(text string, wordCount int) string {
	if wordCount <= 0 {
		wordCount = DefaultContextWords
	}
	words := strings.Fields(text)
	if len(words) <= wordCount {
		return strings.TrimSpace(text)
	}
	return strings.Join(words[len(words)-wordCount:], " ")
}
