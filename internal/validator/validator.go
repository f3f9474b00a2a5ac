// Package validator checks that oracle output is actually Tagalog.
package validator

import (
	"fmt"
	"strings"

	"github.com/valpere/tagasalin/internal/detector"
)

// minValidationLength is the minimum rune count required to attempt language
// detection. Shorter texts produce unreliable results and are accepted
// without validation.
const minValidationLength = 20

// Validator checks that a produced translation is written in Tagalog.
// The underlying language detector is expensive to build; reuse the instance.
type Validator struct {
	det *detector.Detector
}

// New creates a Validator backed by the lingua-go language detector.
func New() *Validator {
	return &Validator{det: detector.New()}
}

// IsTagalog returns true when translatedText appears to be written in
// Tagalog. Short texts and texts whose language cannot be determined pass
// without error. The check is advisory: callers warn, they never abort.
func (v *Validator) IsTagalog(translatedText string) (bool, error) {
	text := strings.TrimSpace(translatedText)
	if text == "" {
		return false, fmt.Errorf("translation is empty")
	}

	// Detector is unreliable for very short texts; skip validation.
	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	isTagalog, ok := v.det.IsTagalog(text)
	if !ok {
		// Ambiguous language, cannot validate. Pass through.
		return true, nil
	}

	if !isTagalog {
		return false, fmt.Errorf("expected Tagalog but output reads as another language")
	}

	return true, nil
}
