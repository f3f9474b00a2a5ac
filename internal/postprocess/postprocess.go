// Package postprocess removes common LLM artifacts from oracle output.
//
// Applied to the raw text returned by every LLM-backed translation service
// before the result is used downstream. The instruction template forbids
// commentary, but models still occasionally emit reasoning blocks, echo the
// prompt, or quote-wrap the whole translation.
package postprocess

import (
	"regexp"
	"strings"
)

// Clean removes LLM artifacts from text in three phases and returns the
// trimmed result:
//  1. Thinking / reasoning block removal
//  2. Instruction echo removal (prompt leakage, English or Tagalog)
//  3. Quote wrapping removal
func Clean(text string) string {
	text = removeThinkingBlocks(text)
	text = removeInstructionEchoes(text)
	text = removeQuoteWrapping(text)
	return strings.TrimSpace(text)
}

// thinkingBlockRe matches complete <thinking>…</thinking> style blocks.
// Each tag variant is listed explicitly because Go's RE2 engine does not
// support backreferences.
var thinkingBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>`,
)

// truncatedThinkingRe matches an opened thinking tag whose closing tag never
// arrived (the model was cut off mid-thought).
var truncatedThinkingRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>).*$`,
)

func removeThinkingBlocks(text string) string {
	text = thinkingBlockRe.ReplaceAllString(text, "")
	text = truncatedThinkingRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// echoPatterns match introductory phrases models prepend even when told not
// to. Anchored to the start of the string and requiring a colon to avoid
// eating legitimate content. Tagalog-capable models echo in either language.
var echoPatterns = []*regexp.Regexp{
	// "Here is / Here's [the] [Tagalog|Filipino] translation:"
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the)? (?:tagalog |filipino )?(?:translation|text)\s*:`),
	// "[The] [Tagalog|Filipino] translation:"
	regexp.MustCompile(`(?i)^(?:the )?(?:tagalog |filipino )?(?:translation|translated text)\s*:`),
	// "Narito ang [pagsasalin|salin] [sa Tagalog]:" / "Ang salin:" / "Salin:"
	regexp.MustCompile(`(?i)^narito ang (?:pagsasalin|salin)(?: sa tagalog| sa filipino)?\s*:`),
	regexp.MustCompile(`(?i)^(?:ang )?(?:pagsasalin|salin)(?: sa tagalog| sa filipino)?\s*:`),
}

func removeInstructionEchoes(text string) string {
	for _, re := range echoPatterns {
		if loc := re.FindStringIndex(text); loc != nil && loc[0] == 0 {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

// removeQuoteWrapping strips a matching pair of outer quotes when the entire
// text is wrapped in them. Supported pairs:
//
//	"…"  '…'  «…»  “…”  ‘…’
func removeQuoteWrapping(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	first, last := runes[0], runes[n-1]
	if (first == '"' && last == '"') ||
		(first == '\'' && last == '\'') ||
		(first == '«' && last == '»') ||
		(first == '“' && last == '”') ||
		(first == '‘' && last == '’') {
		return strings.TrimSpace(string(runes[1 : n-1]))
	}
	return text
}
