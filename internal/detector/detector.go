// Package detector wraps lingua-go language detection for the one language
// pair this tool cares about. Restricting the detector to English and
// Tagalog keeps it small and sharpens its accuracy on short texts.
package detector

import (
	lingua "github.com/pemistahl/lingua-go"
)

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Tagalog).
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// IsTagalog reports whether text is detected as Tagalog. The second return
// is false when the detector cannot decide.
func (d *Detector) IsTagalog(text string) (bool, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return false, false
	}
	return lang == lingua.Tagalog, true
}
