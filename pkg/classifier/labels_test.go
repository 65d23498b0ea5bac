package classifier

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcare-api/internal/model"
)

func TestLabelMap_Resolve(t *testing.T) {
	m := DefaultLabelMap()

	tests := []struct {
		raw  string
		want model.Emotion
		ok   bool
	}{
		{"joy", model.EmotionJoy, true},
		{"SADNESS", model.EmotionSadness, true},
		{"LABEL_2", model.EmotionAnger, true},
		{"label_3", model.EmotionAnxiety, true},
		{"4", model.EmotionNeutral, true},
		{"LABEL_9", "", false},
		{"surprise", "", false},
		{"-1", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := m.Resolve(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabelMap_Distribution(t *testing.T) {
	m := DefaultLabelMap()

	t.Run("renormalises partial probabilities", func(t *testing.T) {
		res, err := m.Distribution(&Prediction{Scores: []Score{
			{Label: "joy", Score: 0.3},
			{Label: "neutral", Score: 0.1},
		}})
		require.NoError(t, err)
		assert.Equal(t, model.EmotionJoy, res.Primary)
		assert.InDelta(t, 0.75, res.Confidence, 1e-9)
		assert.Len(t, res.Probabilities, 5)
		assert.Equal(t, 0.0, res.Probabilities[model.EmotionAnger])
		assertSumsToOne(t, res.Probabilities)
	})

	t.Run("softmax over logits", func(t *testing.T) {
		res, err := m.Distribution(&Prediction{Logits: true, Scores: []Score{
			{Label: "LABEL_0", Score: -1.2},
			{Label: "LABEL_1", Score: 3.4},
			{Label: "LABEL_2", Score: 0.1},
			{Label: "LABEL_3", Score: 1.0},
			{Label: "LABEL_4", Score: -0.5},
		}})
		require.NoError(t, err)
		assert.Equal(t, model.EmotionSadness, res.Primary)
		for _, p := range res.Probabilities {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		}
		assertSumsToOne(t, res.Probabilities)
	})

	t.Run("ties go to the lowest class id", func(t *testing.T) {
		res, err := m.Distribution(&Prediction{Scores: []Score{
			{Label: "neutral", Score: 0.5},
			{Label: "sadness", Score: 0.5},
		}})
		require.NoError(t, err)
		assert.Equal(t, model.EmotionSadness, res.Primary)
	})

	t.Run("unknown labels are dropped", func(t *testing.T) {
		res, err := m.Distribution(&Prediction{Scores: []Score{
			{Label: "surprise", Score: 0.9},
			{Label: "anger", Score: 0.1},
		}})
		require.NoError(t, err)
		assert.Equal(t, model.EmotionAnger, res.Primary)
		assert.InDelta(t, 1.0, res.Confidence, 1e-9)
	})

	invalid := []struct {
		name string
		pred *Prediction
	}{
		{"nil", nil},
		{"no known labels", &Prediction{Scores: []Score{{Label: "surprise", Score: 1}}}},
		{"negative probability", &Prediction{Scores: []Score{{Label: "joy", Score: -0.1}}}},
		{"all zero", &Prediction{Scores: []Score{{Label: "joy", Score: 0}}}},
		{"nan", &Prediction{Scores: []Score{{Label: "joy", Score: math.NaN()}}}},
		{"inf logit", &Prediction{Logits: true, Scores: []Score{{Label: "joy", Score: math.Inf(1)}}}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Distribution(tt.pred)
			assert.True(t, errors.Is(err, ErrInvalidPrediction), "got %v", err)
		})
	}
}

func TestLoadLabelMap(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}

	t.Run("reordered mapping", func(t *testing.T) {
		path := write("ok.json", `{"id_to_label":{"0":"neutral","1":"joy","2":"sadness","3":"anger","4":"anxiety"}}`)
		m, err := LoadLabelMap(path)
		require.NoError(t, err)
		assert.Equal(t, model.EmotionNeutral, m.Labels()[0])

		got, ok := m.Resolve("LABEL_1")
		assert.True(t, ok)
		assert.Equal(t, model.EmotionJoy, got)
	})

	bad := map[string]string{
		"missing.json":   "",
		"garbage.json":   `not json`,
		"short.json":     `{"id_to_label":{"0":"joy"}}`,
		"unknown.json":   `{"id_to_label":{"0":"joy","1":"sadness","2":"anger","3":"anxiety","4":"surprise"}}`,
		"duplicate.json": `{"id_to_label":{"0":"joy","1":"joy","2":"anger","3":"anxiety","4":"neutral"}}`,
		"bad_id.json":    `{"id_to_label":{"0":"joy","1":"sadness","2":"anger","3":"anxiety","9":"neutral"}}`,
	}
	for name, body := range bad {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if body != "" {
				path = write(name, body)
			}
			_, err := LoadLabelMap(path)
			assert.Error(t, err)
		})
	}
}

func TestLabelMap_Distribution_BitStable(t *testing.T) {
	m := DefaultLabelMap()
	provider, err := NewLexiconProvider("", 0)
	require.NoError(t, err)

	texts := []string{
		"I feel hopeless and exhausted but happy with friends and a bit worried",
		"angry, frustrated, sad and anxious",
	}
	for _, text := range texts {
		first, err := m.Distribution(mustClassify(t, provider, text))
		require.NoError(t, err)

		for range 200 {
			got, err := m.Distribution(mustClassify(t, provider, text))
			require.NoError(t, err)
			require.Equal(t, first, got)
		}
	}

	raw := &Prediction{Scores: []Score{
		{Label: "LABEL_0", Score: 0.1}, {Label: "LABEL_1", Score: 0.3},
		{Label: "LABEL_2", Score: 0.7}, {Label: "LABEL_3", Score: 0.11}, {Label: "LABEL_4", Score: 0.13},
	}}
	first, err := m.Distribution(raw)
	require.NoError(t, err)
	for range 200 {
		got, err := m.Distribution(raw)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

func assertSumsToOne(t *testing.T, probs map[model.Emotion]float64) {
	t.Helper()
	var sum float64
	for _, p := range probs {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}
