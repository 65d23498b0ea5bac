package lexicon

import "strings"

// NegationWindow is how many preceding words can negate a match.
const NegationWindow = 3

// negators are in normalized form (apostrophes folded away).
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "nor": {}, "neither": {}, "without": {},
	"hardly": {}, "barely": {}, "nothing": {}, "nobody": {}, "aint": {},
	"dont": {}, "doesnt": {}, "didnt": {}, "cant": {}, "cannot": {}, "couldnt": {},
	"wont": {}, "wouldnt": {}, "shouldnt": {}, "isnt": {}, "arent": {},
	"wasnt": {}, "werent": {}, "havent": {}, "hasnt": {}, "hadnt": {},
}

// IsNegator reports whether word negates what follows it.
func IsNegator(word string) bool {
	_, ok := negators[strings.ToLower(word)]
	return ok
}

// negatedAt reports whether one of the NegationWindow words before rune
// offset pos of normalized content is a negator.
func negatedAt(content []rune, pos int) bool {
	if pos <= 0 {
		return false
	}
	pos = min(pos, len(content))

	words := strings.Fields(string(content[:pos]))
	for i := len(words) - 1; i >= 0 && i >= len(words)-NegationWindow; i-- {
		if IsNegator(words[i]) {
			return true
		}
	}
	return false
}
