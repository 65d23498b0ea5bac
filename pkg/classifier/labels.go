package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"mindcare-api/internal/model"
)

// LabelMap maps model class ids to emotion labels.
type LabelMap struct {
	idToLabel []model.Emotion
}

// DefaultLabelMap is {0: joy, 1: sadness, 2: anger, 3: anxiety, 4: neutral}.
func DefaultLabelMap() LabelMap {
	labels := make([]model.Emotion, len(model.DefaultEmotions))
	copy(labels, model.DefaultEmotions)
	return LabelMap{idToLabel: labels}
}

type labelMappingsFile struct {
	IDToLabel map[string]string `json:"id_to_label"`
}

// LoadLabelMap reads a label_mappings.json file. The file may only reorder
// the known emotions; every emotion must appear exactly once.
func LoadLabelMap(path string) (LabelMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return LabelMap{}, fmt.Errorf("read label mappings: %w", err)
	}

	var f labelMappingsFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return LabelMap{}, fmt.Errorf("parse label mappings: %w", err)
	}
	if len(f.IDToLabel) != len(model.DefaultEmotions) {
		return LabelMap{}, fmt.Errorf("label mappings: expected %d labels, got %d", len(model.DefaultEmotions), len(f.IDToLabel))
	}

	labels := make([]model.Emotion, len(f.IDToLabel))
	seen := make(map[model.Emotion]bool, len(labels))
	for k, v := range f.IDToLabel {
		id, err := strconv.Atoi(k)
		if err != nil || id < 0 || id >= len(labels) {
			return LabelMap{}, fmt.Errorf("label mappings: invalid id %q", k)
		}
		e, ok := model.ParseEmotion(v)
		if !ok {
			return LabelMap{}, fmt.Errorf("label mappings: unknown label %q", v)
		}
		if seen[e] {
			return LabelMap{}, fmt.Errorf("label mappings: duplicate label %q", v)
		}
		seen[e] = true
		labels[id] = e
	}
	return LabelMap{idToLabel: labels}, nil
}

// Labels returns the emotions in class-id order.
func (m LabelMap) Labels() []model.Emotion {
	out := make([]model.Emotion, len(m.idToLabel))
	copy(out, m.idToLabel)
	return out
}

// Resolve maps a raw backend label ("sadness", "LABEL_1", "1") to an emotion.
func (m LabelMap) Resolve(raw string) (model.Emotion, bool) {
	if e, ok := model.ParseEmotion(raw); ok {
		return e, true
	}
	s := strings.TrimSpace(raw)
	if len(s) > len("label_") && strings.EqualFold(s[:len("label_")], "label_") {
		s = s[len("label_"):]
	}
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 || id >= len(m.idToLabel) {
		return "", false
	}
	return m.idToLabel[id], true
}

// Distribution turns a raw prediction into probabilities over every label.
// The result always contains every label, values lie in [0, 1] and sum to 1.
// Ties for the primary label go to the lowest class id.
func (m LabelMap) Distribution(p *Prediction) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil prediction", ErrInvalidPrediction)
	}

	// indexed by class id; sums run in id order so results are bit-stable
	values := make([]float64, len(m.idToLabel))
	present := make([]bool, len(m.idToLabel))
	found := false
	for _, s := range p.Scores {
		if math.IsNaN(s.Score) || math.IsInf(s.Score, 0) {
			return nil, fmt.Errorf("%w: non-finite score for %q", ErrInvalidPrediction, s.Label)
		}
		e, ok := m.Resolve(s.Label)
		if !ok {
			continue
		}
		if !p.Logits && s.Score < 0 {
			return nil, fmt.Errorf("%w: negative probability for %q", ErrInvalidPrediction, s.Label)
		}
		id := m.classID(e)
		values[id] = s.Score
		present[id] = true
		found = true
	}
	if !found {
		return nil, fmt.Errorf("%w: no known labels", ErrInvalidPrediction)
	}

	if p.Logits {
		softmax(values, present)
	} else {
		var sum float64
		for _, v := range values {
			sum += v
		}
		if sum <= 0 {
			return nil, fmt.Errorf("%w: scores sum to zero", ErrInvalidPrediction)
		}
		for i := range values {
			values[i] /= sum
		}
	}

	res := &Result{
		Probabilities: make(map[model.Emotion]float64, len(m.idToLabel)),
		ProviderName:  p.ProviderName,
		ModelName:     p.ModelName,
	}
	for id, e := range m.idToLabel {
		v := values[id]
		res.Probabilities[e] = v
		if res.Primary == "" || v > res.Confidence {
			res.Primary = e
			res.Confidence = v
		}
	}
	return res, nil
}

// softmax replaces the present logits with probabilities in place.
// Absent labels stay at zero.
func softmax(logits []float64, present []bool) {
	maxLogit := math.Inf(-1)
	for i, v := range logits {
		if present[i] {
			maxLogit = math.Max(maxLogit, v)
		}
	}

	var sum float64
	for i, v := range logits {
		if !present[i] {
			logits[i] = 0
			continue
		}
		logits[i] = math.Exp(v - maxLogit)
		sum += logits[i]
	}
	for i := range logits {
		logits[i] /= sum
	}
}

func (m LabelMap) classID(e model.Emotion) int {
	for id, l := range m.idToLabel {
		if l == e {
			return id
		}
	}
	return -1
}
