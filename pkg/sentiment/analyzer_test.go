package sentiment

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzer_PolarityScores(t *testing.T) {
	a := New()

	tests := []struct {
		name     string
		input    string
		positive bool
		negative bool
	}{
		{name: "positive day", input: "I had a great day with friends", positive: true},
		{name: "hopeless", input: "I feel hopeless and exhausted", negative: true},
		{name: "negated positive", input: "I am not happy at all", negative: true},
		{name: "negated negative", input: "I am not sad", positive: true},
		{name: "but shifts weight", input: "The food was good but the service was terrible", negative: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := a.PolarityScores(tt.input)
			if tt.positive {
				assert.Greater(t, s.Compound, 0.0)
			}
			if tt.negative {
				assert.Less(t, s.Compound, 0.0)
			}
			assert.GreaterOrEqual(t, s.Compound, -1.0)
			assert.LessOrEqual(t, s.Compound, 1.0)
			assert.InDelta(t, 1.0, s.Positive+s.Negative+s.Neutral, 0.01)
		})
	}
}

func TestAnalyzer_NeutralAndEmpty(t *testing.T) {
	a := New()

	s := a.PolarityScores("The meeting is on Tuesday")
	assert.Equal(t, 0.0, s.Compound)
	assert.Equal(t, 1.0, s.Neutral)

	s = a.PolarityScores("   ")
	assert.Equal(t, Scores{Neutral: 1}, s)
}

func TestAnalyzer_Emphasis(t *testing.T) {
	a := New()

	plain := a.PolarityScores("I am happy")
	boosted := a.PolarityScores("I am very happy")
	shouted := a.PolarityScores("I am very happy!!!")
	caps := a.PolarityScores("I am very HAPPY")

	assert.Greater(t, boosted.Compound, plain.Compound)
	assert.Greater(t, shouted.Compound, boosted.Compound)
	assert.Greater(t, caps.Compound, boosted.Compound)
	assert.LessOrEqual(t, shouted.Compound, 1.0)
}

func TestAnalyzer_ConcurrentUse(t *testing.T) {
	a := New()
	want := a.PolarityScores("I feel hopeless and exhausted")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, a.PolarityScores("I feel hopeless and exhausted"))
		}()
	}
	wg.Wait()
}
