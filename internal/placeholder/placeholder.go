// Package placeholder shields structured content from the translation
// oracle. Fenced code blocks, inline code spans, and HTML tags are replaced
// with numbered markers ([PH0], [PH1], …) before the text is chunked, and
// substituted back after translation.
package placeholder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// reProtected matches, in order of preference, fenced code blocks, inline
// code spans, and HTML/XML tags. One combined pass numbers the markers in
// the order they appear in the text.
var reProtected = regexp.MustCompile("(?s)```.*?```|`[^`\n]+`|<[^>\n]+>")

var reMarker = regexp.MustCompile(`\[PH(\d+)\]`)

// Protect replaces structured markup in text with [PHn] markers and returns
// the captured originals in marker order.
func Protect(text string) (string, []string) {
	var markers []string
	protected := reProtected.ReplaceAllStringFunc(text, func(match string) string {
		id := fmt.Sprintf("[PH%d]", len(markers))
		markers = append(markers, match)
		return id
	})
	return protected, markers
}

// Restore substitutes [PHn] markers in text back with the originals captured
// by Protect. Markers the translation dropped simply do not reappear; indices
// outside the captured range are left as-is.
func Restore(text string, markers []string) string {
	return reMarker.ReplaceAllStringFunc(text, func(match string) string {
		sub := reMarker.FindStringSubmatch(match)
		idx, err := strconv.Atoi(sub[1])
		if err != nil || idx < 0 || idx >= len(markers) {
			return match
		}
		return markers[idx]
	})
}

// InstructionHint is appended to the system instruction when markers are in
// play, in the same language as the rest of the prompt.
func InstructionHint() string {
	return "Panatilihin ang lahat ng [PHn] marker nang eksakto; huwag isalin, ilipat, o tanggalin ang mga ito."
}

// Validate returns the indices of markers that no longer appear in the
// translated text.
func Validate(text string, markers []string) []int {
	var missing []int
	for i := range markers {
		if !strings.Contains(text, fmt.Sprintf("[PH%d]", i)) {
			missing = append(missing, i)
		}
	}
	return missing
}
