package usecase

import (
	"fmt"
	"math"

	"mindcare-api/internal/model"
	"mindcare-api/pkg/linguistics"
	"mindcare-api/pkg/sentiment"
)

const (
	maxWellness = 10.0

	sentimentWeight    = 2.0
	negativeWordWeight = 0.5
	maxNegativePenalty = 2.0
)

var wellnessBase = map[model.Emotion]float64{
	model.EmotionJoy:     8.0,
	model.EmotionNeutral: 5.0,
	model.EmotionSadness: 3.0,
	model.EmotionAnxiety: 3.5,
	model.EmotionAnger:   2.5,
}

// wellnessScore is base(emotion) + 2*compound - min(0.5*negative_words, 2),
// clamped to [0, 10] and rounded to one decimal.
func wellnessScore(e model.Emotion, s sentiment.Scores, f linguistics.Features) float64 {
	base, ok := wellnessBase[e]
	if !ok {
		base = wellnessBase[model.EmotionNeutral]
	}

	penalty := math.Min(float64(f.NegativeWords)*negativeWordWeight, maxNegativePenalty)
	score := base + s.Compound*sentimentWeight - penalty
	score = math.Max(0, math.Min(maxWellness, score))
	return math.Round(score*10) / 10
}

func interpretation(score float64, e model.Emotion) string {
	switch {
	case score >= 7.5:
		return fmt.Sprintf("You seem to be in a positive state with %s emotion. Keep it up!", e)
	case score >= 5.0:
		return fmt.Sprintf("Your emotional state appears balanced, though showing %s.", e)
	case score >= 3.0:
		return fmt.Sprintf("You seem to be experiencing %s. Consider talking to someone.", e)
	default:
		return fmt.Sprintf("Your indicators suggest significant %s. Please reach out for support.", e)
	}
}
