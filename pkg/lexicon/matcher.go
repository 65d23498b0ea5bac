// Package lexicon matches whole-word phrases from a fixed vocabulary using an
// Aho-Corasick automaton.
package lexicon

import (
	"slices"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Match is a single phrase occurrence.
type Match struct {
	Phrase string
	Pos    int // rune offset in the normalized text
}

// Matcher finds whole-word occurrences of its phrases. A Matcher is
// immutable after construction and safe for concurrent use.
type Matcher struct {
	machine *goahocorasick.Machine
}

// NewMatcher builds a matcher over phrases. Phrases are normalized the same
// way as searched text; empty and duplicate phrases are ignored.
func NewMatcher(phrases []string) (*Matcher, error) {
	seen := make(map[string]struct{}, len(phrases))
	keys := make([]string, 0, len(phrases))
	for _, p := range phrases {
		n := Normalize(p)
		if strings.TrimSpace(n) == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		keys = append(keys, n)
	}
	if len(keys) == 0 {
		return &Matcher{}, nil
	}
	slices.Sort(keys)

	patterns := make([][]rune, len(keys))
	for i, k := range keys {
		patterns[i] = []rune(k)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Matcher{machine: m}, nil
}

// MustNewMatcher is NewMatcher for package-level vocabularies.
func MustNewMatcher(phrases []string) *Matcher {
	m, err := NewMatcher(phrases)
	if err != nil {
		panic(err)
	}
	return m
}

// FindAll returns every whole-word occurrence of a phrase in text.
func (m *Matcher) FindAll(text string) []Match {
	if m == nil || m.machine == nil {
		return nil
	}
	content := []rune(Normalize(text))
	if len(content) == 0 {
		return nil
	}

	terms := m.machine.MultiPatternSearch(content, false)
	matches := make([]Match, 0, len(terms))
	for _, t := range terms {
		matches = append(matches, Match{
			Phrase: strings.TrimSpace(string(t.Word)),
			Pos:    t.Pos,
		})
	}
	return matches
}

// Count returns the number of phrase occurrences in text.
func (m *Matcher) Count(text string) int {
	return len(m.FindAll(text))
}

// CountUnnegated counts occurrences that are not preceded by a negator
// within NegationWindow words, so "not happy" does not count "happy".
func (m *Matcher) CountUnnegated(text string) int {
	if m == nil || m.machine == nil {
		return 0
	}
	content := []rune(Normalize(text))
	if len(content) == 0 {
		return 0
	}

	var n int
	for _, t := range m.machine.MultiPatternSearch(content, false) {
		if !negatedAt(content, t.Pos) {
			n++
		}
	}
	return n
}

// Contains reports whether at least one phrase occurs in text.
func (m *Matcher) Contains(text string) bool {
	if m == nil || m.machine == nil {
		return false
	}
	content := []rune(Normalize(text))
	return len(m.machine.MultiPatternSearch(content, true)) > 0
}

// Normalize lowercases text, folds apostrophes away and collapses every run
// of non letter/digit runes into one space. The result is padded with a space
// on both sides so a padded phrase only matches on word boundaries.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteRune(' ')
	lastSpace := true
	for _, r := range text {
		switch {
		case r == '\'' || r == '’':
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	if !lastSpace {
		b.WriteRune(' ')
	}
	return b.String()
}
