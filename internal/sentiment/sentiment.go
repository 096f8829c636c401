// Package sentiment labels text as positive, negative or neutral from a
// polarity score in [-1, 1].
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

// Display is the label as rendered on the page.
func (l Label) Display() string {
	switch l {
	case Positive:
		return "😊 Positive"
	case Negative:
		return "😟 Negative"
	case Neutral:
		return "😐 Neutral"
	default:
		return string(l)
	}
}

// Analyzer computes a polarity in [-1, 1].
type Analyzer interface {
	Polarity(text string) float64
}

// VaderAnalyzer scores text with the VADER lexicon and reports the compound score.
type VaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderAnalyzer) Polarity(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}

// LabelFor maps a polarity onto a Label by sign alone.
func LabelFor(polarity float64) Label {
	switch {
	case polarity > 0:
		return Positive
	case polarity < 0:
		return Negative
	default:
		return Neutral
	}
}

// Scorer turns text into a Label.
type Scorer struct {
	analyzer Analyzer
}

// NewScorer uses VADER when analyzer is nil.
func NewScorer(analyzer Analyzer) *Scorer {
	if analyzer == nil {
		analyzer = NewVaderAnalyzer()
	}
	return &Scorer{analyzer: analyzer}
}

// Score is total: blank text is Neutral without consulting the analyzer.
func (s *Scorer) Score(text string) Label {
	if strings.TrimSpace(text) == "" {
		return Neutral
	}
	return LabelFor(s.analyzer.Polarity(text))
}
