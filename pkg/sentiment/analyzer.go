// Package sentiment scores text polarity with VADER.
package sentiment

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"
)

// Scores is the polarity breakdown of a text.
type Scores struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// Analyzer scores sentiment with the full VADER lexicon and rules
// (negation, boosters, caps emphasis, "but" shifts, punctuation).
// It is read-only after New and safe for concurrent use.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// New loads the VADER lexicon. Build it once and share it.
func New() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// PolarityScores returns compound polarity in [-1, 1] and the positive,
// negative and neutral proportions of the text.
func (a *Analyzer) PolarityScores(text string) Scores {
	if strings.TrimSpace(text) == "" {
		return Scores{Neutral: 1}
	}

	s := a.vader.PolarityScores(text)
	return Scores{
		Compound: round(clamp(s.Compound), 4),
		Positive: round(s.Positive, 3),
		Negative: round(s.Negative, 3),
		Neutral:  round(s.Neutral, 3),
	}
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
