// Package alert publishes crisis notifications for downstream responders.
package alert

import (
	"context"
	"time"

	"mindcare-api/internal/model"
)

// CrisisAlert is the published payload. It never carries the analysed text.
type CrisisAlert struct {
	AlertID        string               `json:"alert_id"`
	RequestID      string               `json:"request_id,omitempty"`
	UserID         string               `json:"user_id,omitempty"`
	Severity       model.CrisisSeverity `json:"severity"`
	Indicators     []string             `json:"indicators"`
	PrimaryEmotion model.Emotion        `json:"primary_emotion"`
	WellnessScore  float64              `json:"wellness_score"`
	Timestamp      time.Time            `json:"timestamp"`
}

// Publisher delivers crisis alerts.
type Publisher interface {
	PublishCrisis(ctx context.Context, a CrisisAlert) error
	Close() error
}

// Noop discards alerts. Used when no broker is configured.
type Noop struct{}

func (Noop) PublishCrisis(context.Context, CrisisAlert) error { return nil }
func (Noop) Close() error                                     { return nil }
