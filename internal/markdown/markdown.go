// Package markdown reduces Markdown input to plain text so that only prose
// is sent for translation.
package markdown

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

func ToHTML(md []byte) string {
	opts := html.RendererOptions{
		Flags: html.CommonFlags,
	}
	renderer := html.NewRenderer(opts)
	ext := parser.CommonExtensions | parser.Attributes
	p := parser.NewWithExtensions(ext)
	doc := p.Parse(md)
	return string(markdown.Render(doc, renderer))
}

// ToPlainText strips Markdown formatting. Paragraph breaks survive so the
// result still chunks on blank lines.
func ToPlainText(md []byte) string {
	plain := StripHTMLTags(ToHTML(md))
	plain = decodeEntities(plain)
	return tidyBlankLines(plain)
}

func StripHTMLTags(htmlContent string) string {
	var result bytes.Buffer
	inTag := false

	for _, ch := range htmlContent {
		switch ch {
		case '<':
			inTag = true
		case '>':
			inTag = false
		default:
			if !inTag {
				result.WriteRune(ch)
			}
		}
	}

	return result.String()
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&#39;", "'",
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&lsquo;", "‘",
	"&rsquo;", "’",
	"&hellip;", "…",
	"&ndash;", "–",
	"&mdash;", "—",
	"&nbsp;", " ",
)

func decodeEntities(s string) string {
	return entityReplacer.Replace(s)
}

var reExtraBlankLines = regexp.MustCompile(`\n{3,}`)

func tidyBlankLines(s string) string {
	s = reExtraBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
