package model

import "strings"

// Emotion is one of the closed set of labels the classifier predicts.
type Emotion string

const (
	EmotionJoy     Emotion = "joy"
	EmotionSadness Emotion = "sadness"
	EmotionAnger   Emotion = "anger"
	EmotionAnxiety Emotion = "anxiety"
	EmotionNeutral Emotion = "neutral"
)

// DefaultEmotions is the model's id -> label order (index == class id).
var DefaultEmotions = []Emotion{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionAnxiety,
	EmotionNeutral,
}

// ParseEmotion resolves a label name case-insensitively.
func ParseEmotion(s string) (Emotion, bool) {
	e := Emotion(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range DefaultEmotions {
		if e == known {
			return e, true
		}
	}
	return "", false
}

func (e Emotion) String() string {
	return string(e)
}
