package classifier

import (
	"context"

	"mindcare-api/internal/model"
	"mindcare-api/pkg/lexicon"
)

const (
	DefaultLexiconModel = "mindcare-lexicon-v1"
	DefaultNeutralPrior = 0.5

	lexiconHitWeight = 1.5
)

var emotionKeywords = map[model.Emotion][]string{
	model.EmotionJoy: {
		"happy", "glad", "great", "good", "wonderful", "amazing", "awesome", "fantastic",
		"excited", "joy", "joyful", "love", "loved", "fun", "grateful", "thankful",
		"proud", "delighted", "cheerful", "friends", "laughed", "smile", "smiling",
		"enjoyed", "celebrate", "blessed", "relaxed", "content", "hopeful",
	},
	model.EmotionSadness: {
		"sad", "depressed", "hopeless", "worthless", "empty", "lonely", "alone",
		"crying", "cry", "cried", "miserable", "heartbroken", "exhausted", "tired",
		"numb", "grief", "unhappy", "helpless", "useless", "give up", "gave up",
		"broken", "hurt", "lost", "down", "pointless", "defeated",
	},
	model.EmotionAnger: {
		"angry", "furious", "mad", "hate", "annoyed", "frustrated", "rage",
		"irritated", "pissed", "resent", "unfair", "fed up", "livid", "outraged",
		"disgusted", "bitter",
	},
	model.EmotionAnxiety: {
		"anxious", "anxiety", "worried", "worry", "nervous", "panic", "panicking",
		"scared", "afraid", "fear", "stressed", "overwhelmed", "tense", "restless",
		"cant sleep", "dread", "terrified", "uneasy", "on edge", "insecure",
	},
}

// LexiconProvider is an offline keyword model. Each matched keyword adds a
// fixed logit to its emotion unless a negator precedes it ("not happy").
// Neutral carries a constant prior so text with no emotional keywords
// classifies as neutral. Deterministic and always healthy.
type LexiconProvider struct {
	model        string
	neutralPrior float64
	matchers     map[model.Emotion]*lexicon.Matcher
}

// NewLexiconProvider creates a new offline provider.
func NewLexiconProvider(modelName string, neutralPrior float64) (*LexiconProvider, error) {
	if modelName == "" {
		modelName = DefaultLexiconModel
	}
	if neutralPrior <= 0 {
		neutralPrior = DefaultNeutralPrior
	}

	matchers := make(map[model.Emotion]*lexicon.Matcher, len(emotionKeywords))
	for e, words := range emotionKeywords {
		m, err := lexicon.NewMatcher(words)
		if err != nil {
			return nil, err
		}
		matchers[e] = m
	}

	return &LexiconProvider{
		model:        modelName,
		neutralPrior: neutralPrior,
		matchers:     matchers,
	}, nil
}

// Classify implements Provider interface
func (p *LexiconProvider) Classify(ctx context.Context, text string) (*Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pred := &Prediction{
		Scores:       make([]Score, 0, len(model.DefaultEmotions)),
		Logits:       true,
		ProviderName: p.Name(),
		ModelName:    p.Model(),
	}
	for _, e := range model.DefaultEmotions {
		var logit float64
		if e == model.EmotionNeutral {
			logit = p.neutralPrior
		} else {
			logit = lexiconHitWeight * float64(p.matchers[e].CountUnnegated(text))
		}
		pred.Scores = append(pred.Scores, Score{Label: e.String(), Score: logit})
	}
	return pred, nil
}

// Name implements Provider interface
func (p *LexiconProvider) Name() string {
	return "lexicon"
}

// Model implements Provider interface
func (p *LexiconProvider) Model() string {
	return p.model
}
