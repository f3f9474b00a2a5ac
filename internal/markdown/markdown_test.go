package markdown

import (
	"strings"
	"testing"
)

func TestToPlainText_StripsFormatting(t *testing.T) {
	input := "# Heading\n\nSome **bold** and *italic* text with a [link](https://example.com).\n"
	got := ToPlainText([]byte(input))

	for _, forbidden := range []string{"#", "**", "*", "[", "]", "(", ")"} {
		if strings.Contains(got, forbidden) {
			t.Errorf("plain text still contains %q: %q", forbidden, got)
		}
	}
	for _, want := range []string{"Heading", "bold", "italic", "link"} {
		if !strings.Contains(got, want) {
			t.Errorf("plain text lost %q: %q", want, got)
		}
	}
}

func TestToPlainText_KeepsParagraphBreaks(t *testing.T) {
	input := "First paragraph.\n\nSecond paragraph.\n"
	got := ToPlainText([]byte(input))

	parts := strings.Split(got, "\n\n")
	if len(parts) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %q", len(parts), got)
	}
}

func TestToPlainText_DecodesEntities(t *testing.T) {
	got := ToPlainText([]byte("Cats & dogs are \"friends\"."))
	if strings.Contains(got, "&amp;") || strings.Contains(got, "&quot;") {
		t.Errorf("entities not decoded: %q", got)
	}
	if !strings.Contains(got, "&") {
		t.Errorf("ampersand lost: %q", got)
	}
}

func TestStripHTMLTags(t *testing.T) {
	got := StripHTMLTags("<p>Hello <em>world</em></p>")
	if got != "Hello world" {
		t.Errorf("got %q, want %q", got, "Hello world")
	}
}
