package usecase

import (
	"context"

	"mindcare-api/internal/analysis"
	"mindcare-api/internal/model"
	"mindcare-api/pkg/alert"
	"mindcare-api/pkg/lexicon"
	"mindcare-api/pkg/linguistics"
	"mindcare-api/pkg/log"
)

const (
	IndicatorSelfHarm         = "self_harm_language"
	IndicatorVeryLowWellness  = "very_low_wellness"
	IndicatorNegativeLanguage = "high_negative_language"
	IndicatorAbsoluteThinking = "absolute_thinking"

	crisisWellnessThreshold = 2.0
	crisisNegativeWords     = 3
	crisisAbsoluteWords     = 2

	supportMessageHigh     = "If you are thinking about harming yourself, please contact your local emergency number or a crisis line right now. You are not alone."
	supportMessageModerate = "It sounds like things are very hard right now. Talking to someone you trust or a mental health professional can help."
)

var selfHarmPhrases = lexicon.MustNewMatcher([]string{
	"kill myself", "killing myself", "end my life", "ending my life", "take my own life",
	"want to die", "wanna die", "wish i was dead", "wish i were dead", "better off dead",
	"suicide", "suicidal", "self harm", "hurt myself", "hurting myself", "cut myself",
	"no reason to live", "dont want to live", "dont want to be alive", "end it all",
	"overdose",
})

// assessCrisis grades the text:
// high when self-harm language is present, moderate when wellness is at
// most 2.0 together with heavy negative or absolute language.
func (uc *implUseCase) assessCrisis(text string, wellness float64, f linguistics.Features) analysis.Crisis {
	indicators := []string{}
	selfHarm := selfHarmPhrases.Contains(text)
	if selfHarm {
		indicators = append(indicators, IndicatorSelfHarm)
	}

	lowWellness := wellness <= crisisWellnessThreshold
	heavyNegative := f.NegativeWords >= crisisNegativeWords
	absolute := f.AbsoluteWords >= crisisAbsoluteWords
	if lowWellness && (heavyNegative || absolute) {
		indicators = append(indicators, IndicatorVeryLowWellness)
		if heavyNegative {
			indicators = append(indicators, IndicatorNegativeLanguage)
		}
		if absolute {
			indicators = append(indicators, IndicatorAbsoluteThinking)
		}
	}

	switch {
	case selfHarm:
		return analysis.Crisis{Detected: true, Severity: model.CrisisHigh, Indicators: indicators, SupportMessage: supportMessageHigh}
	case len(indicators) > 0:
		return analysis.Crisis{Detected: true, Severity: model.CrisisModerate, Indicators: indicators, SupportMessage: supportMessageModerate}
	default:
		return analysis.Crisis{Severity: model.CrisisNone, Indicators: indicators}
	}
}

// notifyCrisis records and publishes a detected crisis. Failures are logged only.
func (uc *implUseCase) notifyCrisis(ctx context.Context, out analysis.AnalyzeOutput) {
	c := out.Analysis.Crisis
	if !c.Detected {
		return
	}
	uc.metrics.CrisisDetected(c.Severity.String())

	err := uc.publisher.PublishCrisis(ctx, alert.CrisisAlert{
		RequestID:      log.RequestID(ctx),
		UserID:         out.UserID,
		Severity:       c.Severity,
		Indicators:     c.Indicators,
		PrimaryEmotion: out.Analysis.Emotion.Primary,
		WellnessScore:  out.Analysis.WellnessScore,
		Timestamp:      out.Timestamp,
	})
	if err != nil {
		uc.metrics.AlertFailed()
		uc.l.Warnf(ctx, "analysis.usecase.notifyCrisis.PublishCrisis: %v", err)
	}
}
