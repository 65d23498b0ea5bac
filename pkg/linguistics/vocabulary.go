package linguistics

import "mindcare-api/pkg/lexicon"

var firstPersonPronouns = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "mine": {}, "myself": {},
}

// NegativeWords are depression-associated terms.
var NegativeWords = []string{
	"sad", "depressed", "hopeless", "worthless", "tired", "exhausted",
	"alone", "lonely", "empty", "numb", "helpless", "useless",
	"horrible", "terrible", "awful", "miserable", "hate", "hurt",
}

// AbsoluteWords are absolutist terms associated with distorted thinking.
var AbsoluteWords = []string{
	"always", "never", "nothing", "nobody", "none", "everyone", "everything",
}

var (
	negativeMatcher = lexicon.MustNewMatcher(NegativeWords)
	absoluteMatcher = lexicon.MustNewMatcher(AbsoluteWords)
)
