package chunker_test

import (
	"strings"
	"testing"

	"github.com/valpere/tagasalin/internal/chunker"
)

// makeWords returns n copies of word joined by spaces.
func makeWords(word string, n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = word
	}
	return strings.Join(words, " ")
}

// --- WordCount tests ---

func TestWordCount(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"  padded \t out\nwords  ", 3},
	}
	for _, c := range cases {
		if got := chunker.WordCount(c.text); got != c.want {
			t.Errorf("WordCount(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

// --- SplitParagraphs tests ---

func TestSplitParagraphs_BlankLines(t *testing.T) {
	text := "First para.\n\nSecond para.\n\n\n\nThird para."
	paras := chunker.SplitParagraphs(text)
	if len(paras) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d: %v", len(paras), paras)
	}
	if paras[1] != "Second para." {
		t.Errorf("expected %q, got %q", "Second para.", paras[1])
	}
}

func TestSplitParagraphs_WindowsNewlines(t *testing.T) {
	text := "First.\r\n\r\nSecond."
	paras := chunker.SplitParagraphs(text)
	if len(paras) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %v", len(paras), paras)
	}
}

func TestSplitParagraphs_NoSeparator(t *testing.T) {
	text := "One block\nwith a single newline inside."
	paras := chunker.SplitParagraphs(text)
	if len(paras) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paras))
	}
}

func TestSplitParagraphs_Empty(t *testing.T) {
	if paras := chunker.SplitParagraphs(""); len(paras) != 0 {
		t.Errorf("expected no paragraphs, got %v", paras)
	}
	if paras := chunker.SplitParagraphs("  \n\n  "); len(paras) != 0 {
		t.Errorf("expected no paragraphs for whitespace input, got %v", paras)
	}
}

// --- Chunk tests ---

func TestChunk_EmptyInput(t *testing.T) {
	if chunks := chunker.Chunk("", 100); len(chunks) != 0 {
		t.Errorf("expected no chunks for empty input, got %v", chunks)
	}
}

func TestChunk_SingleSmallParagraph(t *testing.T) {
	text := "A short paragraph that fits easily."
	chunks := chunker.Chunk(text, 100)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("expected %q, got %q", text, chunks[0])
	}
}

func TestChunk_TwoParagraphsExceedBudgetTogether(t *testing.T) {
	// 3000 + 2000 words against a 4000-word budget: paragraph 2 cannot
	// join paragraph 1, so each becomes its own chunk.
	para1 := makeWords("isa", 3000)
	para2 := makeWords("dalawa", 2000)
	chunks := chunker.Chunk(para1+"\n\n"+para2, 4000)

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if got := chunker.WordCount(chunks[0]); got != 3000 {
		t.Errorf("chunk 1 word count = %d, want 3000", got)
	}
	if got := chunker.WordCount(chunks[1]); got != 2000 {
		t.Errorf("chunk 2 word count = %d, want 2000", got)
	}
}

func TestChunk_ParagraphsPackTogether(t *testing.T) {
	para1 := makeWords("a", 1000)
	para2 := makeWords("b", 1000)
	chunks := chunker.Chunk(para1+"\n\n"+para2, 4000)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	// Paragraph boundary must survive inside the chunk.
	if !strings.Contains(chunks[0], "\n\n") {
		t.Error("expected blank-line separator preserved inside the chunk")
	}
}

func TestChunk_OversizedParagraphSplitAtSentences(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString(makeWords("salita", 10))
		sb.WriteString(". ")
	}
	// One paragraph, 330 words including terminators, 50-word budget.
	chunks := chunker.Chunk(sb.String(), 50)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if wc := chunker.WordCount(c); wc > 50 {
			t.Errorf("chunk %d exceeds budget: %d words", i, wc)
		}
	}
}

func TestChunk_SingleOversizedSentenceEmittedWhole(t *testing.T) {
	// No terminal punctuation anywhere: one sentence group over budget
	// must come back verbatim in exactly one chunk.
	sentence := makeWords("mahaba", 120)
	chunks := chunker.Chunk(sentence, 50)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != sentence {
		t.Errorf("oversized sentence was altered:\n got %q\nwant %q", chunks[0], sentence)
	}
}

func TestChunk_BudgetCompliance(t *testing.T) {
	var sb strings.Builder
	for p := 0; p < 8; p++ {
		for s := 0; s < 5; s++ {
			sb.WriteString(makeWords("w", 7))
			sb.WriteString(". ")
		}
		sb.WriteString("\n\n")
	}
	chunks := chunker.Chunk(sb.String(), 60)
	for i, c := range chunks {
		if wc := chunker.WordCount(c); wc > 60 {
			t.Errorf("chunk %d exceeds budget: %d words", i, wc)
		}
	}
}

func TestChunk_PreservesContentAndOrder(t *testing.T) {
	text := "Alpha beta gamma. Delta epsilon zeta.\n\n" +
		"Eta theta iota kappa. Lambda mu.\n\n" +
		"Nu xi omicron pi rho sigma tau."
	chunks := chunker.Chunk(text, 8)

	rejoined := strings.Join(chunks, "\n\n")
	want := strings.Fields(text)
	got := strings.Fields(rejoined)

	if len(got) != len(want) {
		t.Fatalf("token count changed: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d reordered: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestChunk_DefaultBudget(t *testing.T) {
	text := makeWords("x", 100)
	chunks := chunker.Chunk(text, 0)
	if len(chunks) != 1 {
		t.Errorf("expected 1 chunk under the default budget, got %d", len(chunks))
	}
}

// --- ExtractContext tests ---

func TestExtractContext_FewerWordsThanLimit(t *testing.T) {
	text := "short text"
	ctx := chunker.ExtractContext(text, 25)
	if ctx != text {
		t.Errorf("expected %q, got %q", text, ctx)
	}
}

func TestExtractContext_MoreWordsThanLimit(t *testing.T) {
	text := makeWords("word", 50)
	ctx := chunker.ExtractContext(text, 25)
	if got := len(strings.Fields(ctx)); got != 25 {
		t.Errorf("expected 25 words, got %d", got)
	}
}

func TestExtractContext_DefaultWordCount(t *testing.T) {
	text := makeWords("w", 50)
	ctx := chunker.ExtractContext(text, 0)
	if got := len(strings.Fields(ctx)); got != chunker.DefaultContextWords {
		t.Errorf("expected %d words, got %d", chunker.DefaultContextWords, got)
	}
}

func TestExtractContext_LastWordsCorrect(t *testing.T) {
	text := "alpha beta gamma delta epsilon"
	ctx := chunker.ExtractContext(text, 3)
	if ctx != "gamma delta epsilon" {
		t.Errorf("expected last 3 words, got %q", ctx)
	}
}
