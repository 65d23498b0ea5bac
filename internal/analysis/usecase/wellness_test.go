package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mindcare-api/internal/model"
	"mindcare-api/pkg/linguistics"
	"mindcare-api/pkg/sentiment"
)

func TestWellnessScore(t *testing.T) {
	tests := []struct {
		name     string
		emotion  model.Emotion
		compound float64
		negative int
		want     float64
	}{
		{"joy positive", model.EmotionJoy, 0.8, 0, 9.6},
		{"neutral flat", model.EmotionNeutral, 0, 0, 5.0},
		{"sadness with penalty", model.EmotionSadness, -0.5, 1, 1.5},
		{"penalty is capped", model.EmotionAnxiety, 0, 10, 1.5},
		{"clamped at zero", model.EmotionAnger, -1, 4, 0},
		{"clamped at ten", model.EmotionJoy, 1, 0, 10},
		{"rounded to one decimal", model.EmotionNeutral, 0.123, 0, 5.2},
		{"unknown emotion uses neutral base", model.Emotion("surprise"), 0, 0, 5.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wellnessScore(tt.emotion, sentiment.Scores{Compound: tt.compound}, linguistics.Features{NegativeWords: tt.negative})
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestInterpretation(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{9.0, "You seem to be in a positive state with joy emotion. Keep it up!"},
		{7.5, "You seem to be in a positive state with joy emotion. Keep it up!"},
		{5.0, "Your emotional state appears balanced, though showing joy."},
		{3.0, "You seem to be experiencing joy. Consider talking to someone."},
		{2.9, "Your indicators suggest significant joy. Please reach out for support."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, interpretation(tt.score, model.EmotionJoy))
	}
}

func TestAssessCrisis(t *testing.T) {
	uc := &implUseCase{}

	tests := []struct {
		name       string
		text       string
		wellness   float64
		features   linguistics.Features
		severity   model.CrisisSeverity
		indicators []string
	}{
		{
			name:       "self harm phrase",
			text:       "Some days I just want to die.",
			wellness:   6,
			severity:   model.CrisisHigh,
			indicators: []string{IndicatorSelfHarm},
		},
		{
			name:       "self harm with apostrophe and punctuation",
			text:       "I don't want to live anymore!!",
			wellness:   4,
			severity:   model.CrisisHigh,
			indicators: []string{IndicatorSelfHarm},
		},
		{
			name:       "low wellness and heavy negative language",
			text:       "sad, hopeless, worthless",
			wellness:   1.0,
			features:   linguistics.Features{NegativeWords: 3},
			severity:   model.CrisisModerate,
			indicators: []string{IndicatorVeryLowWellness, IndicatorNegativeLanguage},
		},
		{
			name:       "low wellness and absolute thinking",
			text:       "nothing ever changes, nobody cares",
			wellness:   2.0,
			features:   linguistics.Features{AbsoluteWords: 2},
			severity:   model.CrisisModerate,
			indicators: []string{IndicatorVeryLowWellness, IndicatorAbsoluteThinking},
		},
		{
			name:       "low wellness alone is not enough",
			text:       "bad day",
			wellness:   0.5,
			features:   linguistics.Features{NegativeWords: 1},
			severity:   model.CrisisNone,
			indicators: []string{},
		},
		{
			name:       "negative language with fine wellness",
			text:       "sad tired alone",
			wellness:   2.1,
			features:   linguistics.Features{NegativeWords: 3},
			severity:   model.CrisisNone,
			indicators: []string{},
		},
		{
			name:       "substring is not a phrase match",
			text:       "the suicidesquad movie",
			wellness:   5,
			severity:   model.CrisisNone,
			indicators: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uc.assessCrisis(tt.text, tt.wellness, tt.features)
			assert.Equal(t, tt.severity, got.Severity)
			assert.Equal(t, tt.severity != model.CrisisNone, got.Detected)
			assert.Equal(t, tt.indicators, got.Indicators)
			if got.Detected {
				assert.NotEmpty(t, got.SupportMessage)
			} else {
				assert.Empty(t, got.SupportMessage)
			}
		})
	}
}
