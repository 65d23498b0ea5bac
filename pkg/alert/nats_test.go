package alert

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcare-api/internal/model"
)

type fakeConn struct {
	subject    string
	data       []byte
	publishErr error
	drained    bool
}

func (f *fakeConn) Publish(subj string, data []byte) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.subject = subj
	f.data = data
	return nil
}

func (f *fakeConn) FlushWithContext(context.Context) error { return nil }

func (f *fakeConn) Drain() error {
	f.drained = true
	return nil
}

func TestNATSPublisher_PublishCrisis(t *testing.T) {
	fc := &fakeConn{}
	p := newNATSPublisher(fc, "mindcare.crisis")

	err := p.PublishCrisis(context.Background(), CrisisAlert{
		UserID:         "u-1",
		Severity:       model.CrisisHigh,
		Indicators:     []string{"self_harm_language"},
		PrimaryEmotion: model.EmotionSadness,
		WellnessScore:  0.4,
	})
	require.NoError(t, err)
	assert.Equal(t, "mindcare.crisis", fc.subject)

	var got map[string]any
	require.NoError(t, json.Unmarshal(fc.data, &got))
	assert.Equal(t, "high", got["severity"])
	assert.Equal(t, "sadness", got["primary_emotion"])
	assert.NotEmpty(t, got["alert_id"])
	assert.NotEmpty(t, got["timestamp"])
	assert.NotContains(t, got, "text")

	require.NoError(t, p.Close())
	assert.True(t, fc.drained)
}

func TestNATSPublisher_KeepsProvidedFields(t *testing.T) {
	fc := &fakeConn{}
	p := newNATSPublisher(fc, "s")
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, p.PublishCrisis(context.Background(), CrisisAlert{AlertID: "fixed", Timestamp: ts}))

	var got CrisisAlert
	require.NoError(t, json.Unmarshal(fc.data, &got))
	assert.Equal(t, "fixed", got.AlertID)
	assert.True(t, ts.Equal(got.Timestamp))
}

func TestNATSPublisher_PublishError(t *testing.T) {
	p := newNATSPublisher(&fakeConn{publishErr: errors.New("nats: connection closed")}, "s")
	assert.Error(t, p.PublishCrisis(context.Background(), CrisisAlert{}))
}

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.PublishCrisis(context.Background(), CrisisAlert{}))
	assert.NoError(t, p.Close())
}
