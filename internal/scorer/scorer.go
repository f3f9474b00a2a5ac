// Package scorer computes heuristic quality scores for Tagalog translations.
//
// Four independent sub-scores on a 0–100 scale (semantic similarity against
// a reference, Tagalog particle usage, formal-register markers, and required
// term preservation) combine into a weighted composite. None of these are
// linguistically rigorous; they are cheap proxies for ranking runs of the
// same battery against each other.
package scorer

import "strings"

// Overlap selects the denominator of the token-set overlap formula.
type Overlap int

const (
	// OverlapJaccard divides the intersection by the union.
	OverlapJaccard Overlap = iota
	// OverlapMaxLen divides the intersection by the larger token set.
	OverlapMaxLen
)

// Weights is the linear combination applied by Composite. A zero weight
// disables its sub-score.
type Weights struct {
	Semantic float64 `json:"semantic"`
	Grammar  float64 `json:"grammar"`
	Cultural float64 `json:"cultural"`
	Terms    float64 `json:"terms"`
}

// Config selects the scoring strategy.
type Config struct {
	Weights Weights `json:"weights"`
	Overlap Overlap `json:"overlap"`
}

// SimpleConfig reproduces the three-score profile: 40% semantic,
// 30% grammar, 30% term preservation, Jaccard overlap.
var SimpleConfig = Config{
	Weights: Weights{Semantic: 0.40, Grammar: 0.30, Cultural: 0, Terms: 0.30},
	Overlap: OverlapJaccard,
}

// FullConfig is the four-score profile: 35% semantic, 30% grammar,
// 20% cultural, 15% term preservation, max-length overlap.
var FullConfig = Config{
	Weights: Weights{Semantic: 0.35, Grammar: 0.30, Cultural: 0.20, Terms: 0.15},
	Overlap: OverlapMaxLen,
}

// Scores holds the four sub-scores for one translation, each in [0,100].
type Scores struct {
	Semantic float64 `json:"semantic"`
	Grammar  float64 `json:"grammar"`
	Cultural float64 `json:"cultural"`
	Terms    float64 `json:"terms"`
}

// Scorer applies one Config to produced/reference translation pairs.
type Scorer struct {
	cfg Config
}

func New(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Semantic blends a character-level sequence-similarity ratio (weight 0.6)
// with a token-set overlap (weight 0.4), both computed on lower-cased text,
// scaled to 0–100. An empty produced translation scores 0.
func (s *Scorer) Semantic(translated, reference string) float64 {
	t := strings.ToLower(strings.TrimSpace(translated))
	r := strings.ToLower(strings.TrimSpace(reference))
	if t == "" {
		return 0
	}

	ratio := sequenceRatio(t, r)
	overlap := tokenOverlap(t, r, s.cfg.Overlap)

	score := (ratio*0.6 + overlap*0.4) * 100
	return clamp(score)
}

// Composite is the weighted linear combination of the sub-scores, normalized
// by the weight sum so that sub-scores in [0,100] always yield a composite
// in [0,100].
func (s *Scorer) Composite(sc Scores) float64 {
	w := s.cfg.Weights
	sum := w.Semantic + w.Grammar + w.Cultural + w.Terms
	if sum <= 0 {
		return 0
	}
	total := sc.Semantic*w.Semantic + sc.Grammar*w.Grammar +
		sc.Cultural*w.Cultural + sc.Terms*w.Terms
	return clamp(total / sum)
}

// Score computes all sub-scores and the composite for one translation.
func (s *Scorer) Score(translated, reference, category string, terms []string) (Scores, float64) {
	sc := Scores{
		Semantic: s.Semantic(translated, reference),
		Grammar:  Grammar(translated),
		Cultural: Cultural(translated, category),
		Terms:    TermPreservation(translated, terms),
	}
	return sc, s.Composite(sc)
}

// TermPreservation is the fraction of required terms found as
// case-insensitive substrings of the produced text, ×100. An empty term list
// scores 100.
func TermPreservation(translated string, terms []string) float64 {
	if len(terms) == 0 {
		return 100
	}
	lower := strings.ToLower(translated)
	preserved := 0
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			preserved++
		}
	}
	return float64(preserved) / float64(len(terms)) * 100
}

// particles are common Tagalog function words used as a coarse grammar proxy.
var particles = []string{"ang", "ng", "sa", "ay", "na", "at", "o"}

// Grammar counts how many distinct particles occur in the produced text
// (case-insensitive substring match) and maps the count to a fixed score.
func Grammar(translated string) float64 {
	lower := strings.ToLower(translated)
	found := 0
	for _, p := range particles {
		if strings.Contains(lower, p) {
			found++
		}
	}
	switch {
	case found >= 3:
		return 95
	case found >= 2:
		return 85
	case found >= 1:
		return 75
	default:
		return 60
	}
}

// formalCategories name the registers where polite markers are expected.
var formalCategories = map[string]bool{
	"legal":    true,
	"medical":  true,
	"business": true,
}

// formalMarkers are the polite-register indicators checked by Cultural.
var formalMarkers = []string{"po", "opo", "salamat po"}

// Cultural starts at 100 and deducts 10 when the test case's category calls
// for a formal register but none of the polite markers appear.
func Cultural(translated, category string) float64 {
	if !formalCategories[category] {
		return 100
	}
	lower := strings.ToLower(translated)
	for _, m := range formalMarkers {
		if strings.Contains(lower, m) {
			return 100
		}
	}
	return 90
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
