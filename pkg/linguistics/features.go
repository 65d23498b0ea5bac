// Package linguistics extracts mental-health relevant surface features
// from free text.
package linguistics

import (
	"math"
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// minLanguageConfidence is the whatlanggo confidence below which the
// detected language is not reported.
const minLanguageConfidence = 0.2

// Features are the linguistic markers of a single text.
type Features struct {
	FirstPersonPronouns int     `json:"first_person_pronouns"`
	NegativeWords       int     `json:"negative_words"`
	AbsoluteWords       int     `json:"absolute_words"`
	LexicalDiversity    float64 `json:"lexical_diversity"`
	AvgSentenceLength   float64 `json:"avg_sentence_length"`
	TotalWords          int     `json:"total_words"`
	Language            string  `json:"language"`
}

// Extract computes Features for text.
func Extract(text string) Features {
	words := words(text)

	unique := make(map[string]struct{}, len(words))
	pronouns := 0
	for _, w := range words {
		unique[w] = struct{}{}
		if _, ok := firstPersonPronouns[w]; ok {
			pronouns++
		}
	}

	f := Features{
		FirstPersonPronouns: pronouns,
		NegativeWords:       negativeMatcher.Count(text),
		AbsoluteWords:       absoluteMatcher.Count(text),
		AvgSentenceLength:   round(avgSentenceLength(text), 2),
		TotalWords:          len(words),
		Language:            detectLanguage(text),
	}
	if len(words) > 0 {
		f.LexicalDiversity = round(float64(len(unique))/float64(len(words)), 3)
	}
	return f
}

func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// avgSentenceLength splits on terminal punctuation and averages the number
// of whitespace-separated words per non-empty sentence.
func avgSentenceLength(text string) float64 {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var count, total int
	for _, s := range sentences {
		n := len(strings.Fields(s))
		if n == 0 {
			continue
		}
		count++
		total += n
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if info.Confidence < minLanguageConfidence {
		return ""
	}
	return info.Lang.Iso6391()
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
